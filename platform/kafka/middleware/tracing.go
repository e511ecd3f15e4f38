package middleware

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/you-humble/autoparts/platform/kafka"
	"github.com/you-humble/autoparts/platform/tracing"
)

// Tracing continues the trace carried in the message headers with a consumer span.
func Tracing(tracerName string) kafka.Middleware {
	tracer := tracing.Tracer(tracerName)

	return func(next kafka.MessageHandler) kafka.MessageHandler {
		return func(ctx context.Context, msg kafka.Message) error {
			ctx = tracing.Extract(ctx, msg.StringHeaders())

			ctx, span := tracer.Start(ctx, "kafka.consume "+msg.Topic,
				trace.WithSpanKind(trace.SpanKindConsumer),
				trace.WithAttributes(
					attribute.String("messaging.system", "kafka"),
					attribute.String("messaging.destination.name", msg.Topic),
					attribute.Int64("messaging.kafka.offset", msg.Offset),
				),
			)
			defer span.End()

			err := next(ctx, msg)
			if err != nil {
				span.RecordError(err)
				span.SetStatus(codes.Error, err.Error())
			}
			return err
		}
	}
}
