// Package service contains application services.
package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	pigeonotel "github.com/oralcagan/pixel-pigeon/internal/adapter/otel"
	"github.com/oralcagan/pixel-pigeon/internal/domain"
	"github.com/oralcagan/pixel-pigeon/internal/domain/notification"
	"github.com/oralcagan/pixel-pigeon/internal/logger"
	"github.com/oralcagan/pixel-pigeon/internal/port/mailer"
)

// Renderer produces the HTML and plain-text bodies for a request.
type Renderer interface {
	Render(req notification.Request) (notification.Rendered, error)
}

// SendService renders a notification and hands it to the mail relay.
// One call is one atomic transmit; there is no retry on failure.
type SendService struct {
	renderer Renderer
	relay    mailer.Mailer
	from     string
	metrics  *pigeonotel.Metrics
}

// NewSendService creates a SendService. metrics may be nil.
func NewSendService(renderer Renderer, relay mailer.Mailer, from string, metrics *pigeonotel.Metrics) *SendService {
	return &SendService{
		renderer: renderer,
		relay:    relay,
		from:     from,
		metrics:  metrics,
	}
}

// Send validates, renders and dispatches a notification to the given
// recipients. The full dispatch error is logged here; callers surface
// only a generic message.
func (s *SendService) Send(ctx context.Context, recipients []string, req notification.Request) (*notification.SendResult, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if len(recipients) == 0 {
		return nil, fmt.Errorf("%w: no recipients resolved", domain.ErrUnknownToken)
	}

	rendered, err := s.renderer.Render(req)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}

	ctx, span := pigeonotel.StartDispatchSpan(ctx, len(recipients))
	defer span.End()

	if s.metrics != nil {
		s.metrics.SendsStarted.Add(ctx, 1)
	}

	start := time.Now()
	err = s.relay.Send(ctx, mailer.Message{
		From:     s.from,
		To:       recipients,
		Subject:  rendered.Subject,
		HTML:     rendered.HTML,
		Text:     rendered.Text,
		LogoPath: rendered.LogoPath,
	})
	elapsed := time.Since(start)

	if s.metrics != nil {
		s.metrics.DispatchDuration.Record(ctx, elapsed.Seconds())
	}

	if err != nil {
		if s.metrics != nil {
			s.metrics.SendsFailed.Add(ctx, 1)
		}
		span.RecordError(err)
		slog.Error("email dispatch failed",
			"error", err,
			"recipients", len(recipients),
			"token", logger.TokenHint(ctx),
			"request_id", logger.RequestID(ctx),
		)
		return nil, fmt.Errorf("%w: %v", domain.ErrDispatch, err)
	}

	if s.metrics != nil {
		s.metrics.SendsSucceeded.Add(ctx, 1)
	}
	slog.Info("notification sent",
		"title", req.Title,
		"recipients", recipients,
		"token", logger.TokenHint(ctx),
		"duration_ms", elapsed.Milliseconds(),
		"request_id", logger.RequestID(ctx),
	)

	return &notification.SendResult{
		Status:     "sent",
		Recipients: recipients,
	}, nil
}
