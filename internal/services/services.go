package services

import (
	"context"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var tracer = otel.Tracer("github.com/vishyarjun/fyyur/internal/services")

// Clock returns the current instant. Services read it once per request so
// every past/upcoming decision in a response uses the same boundary.
type Clock func() time.Time

// Deps holds what every service needs.
type Deps struct {
	Logger         *slog.Logger
	Clock          Clock
	ContextTimeout time.Duration
}

func (d Deps) withDefaults() Deps {
	if d.Logger == nil {
		d.Logger = slog.Default()
	}
	if d.Clock == nil {
		d.Clock = time.Now
	}
	if d.ContextTimeout <= 0 {
		d.ContextTimeout = 10 * time.Second
	}
	return d
}

// start applies the per-operation timeout and opens a span.
func (d Deps) start(ctx context.Context, name string) (context.Context, trace.Span, context.CancelFunc) {
	ctx, cancel := context.WithTimeout(ctx, d.ContextTimeout)
	ctx, span := tracer.Start(ctx, name)
	return ctx, span, cancel
}

// fail records err on the span and returns it unchanged.
func fail(span trace.Span, err error) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	return err
}
