package middleware

import (
	"context"
	"fmt"

	"github.com/you-humble/autoparts/platform/kafka"
	"github.com/you-humble/autoparts/platform/logger"
)

type ErrorLogger interface {
	Error(ctx context.Context, msg string, fields ...logger.Field)
}

// Recovery turns a panic in the handler into an error so the message is not marked.
func Recovery(log ErrorLogger) kafka.Middleware {
	return func(next kafka.MessageHandler) kafka.MessageHandler {
		return func(ctx context.Context, msg kafka.Message) (err error) {
			defer func() {
				if r := recover(); r != nil {
					log.Error(ctx, "recovered from panic in message processing",
						logger.String("topic", msg.Topic),
						logger.Any("panic", r),
					)
					err = fmt.Errorf("panic in kafka handler: %v", r)
				}
			}()
			return next(ctx, msg)
		}
	}
}
