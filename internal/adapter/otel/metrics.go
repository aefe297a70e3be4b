package otel

import (
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

const meterName = "pigeon"

// Metrics holds all mail gateway metric instruments.
type Metrics struct {
	SendsStarted     metric.Int64Counter
	SendsSucceeded   metric.Int64Counter
	SendsFailed      metric.Int64Counter
	DispatchDuration metric.Float64Histogram
}

// NewMetrics creates all metric instruments.
func NewMetrics() (*Metrics, error) {
	meter := otel.Meter(meterName)
	m := &Metrics{}
	var err error

	m.SendsStarted, err = meter.Int64Counter("pigeon.sends.started",
		metric.WithDescription("Number of send requests dispatched to the relay"))
	if err != nil {
		return nil, err
	}

	m.SendsSucceeded, err = meter.Int64Counter("pigeon.sends.succeeded",
		metric.WithDescription("Number of emails accepted by the relay"))
	if err != nil {
		return nil, err
	}

	m.SendsFailed, err = meter.Int64Counter("pigeon.sends.failed",
		metric.WithDescription("Number of dispatch failures"))
	if err != nil {
		return nil, err
	}

	m.DispatchDuration, err = meter.Float64Histogram("pigeon.dispatch.duration_seconds",
		metric.WithDescription("SMTP dispatch duration in seconds"))
	if err != nil {
		return nil, err
	}

	return m, nil
}
