package middleware

import (
	"context"
	"time"

	"github.com/you-humble/autoparts/platform/kafka"
	"github.com/you-humble/autoparts/platform/logger"
)

type InfoLogger interface {
	Info(ctx context.Context, msg string, fields ...logger.Field)
}

func Logging(log InfoLogger) kafka.Middleware {
	return func(next kafka.MessageHandler) kafka.MessageHandler {
		return func(ctx context.Context, msg kafka.Message) error {
			start := time.Now()
			err := next(ctx, msg)
			log.Info(ctx, "kafka msg handled",
				logger.String("topic", msg.Topic),
				logger.Int32("partition", msg.Partition),
				logger.Int64("offset", msg.Offset),
				logger.Duration("duration", time.Since(start)),
				logger.Bool("ok", err == nil),
			)
			return err
		}
	}
}
