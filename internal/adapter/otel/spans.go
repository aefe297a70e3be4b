package otel

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "pigeon"

// StartDispatchSpan starts a span for an SMTP dispatch.
// Recipient addresses are not recorded, only the count.
func StartDispatchSpan(ctx context.Context, recipients int) (context.Context, trace.Span) {
	return otel.Tracer(tracerName).Start(ctx, "dispatch",
		trace.WithAttributes(
			attribute.Int("mail.recipients", recipients),
		),
	)
}
