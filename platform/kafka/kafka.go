package kafka

import (
	"context"
)

type (
	Middleware     func(next MessageHandler) MessageHandler
	MessageHandler func(ctx context.Context, msg Message) error
)

type Consumer interface {
	Consume(ctx context.Context, handler MessageHandler) error
}

type Producer interface {
	Send(ctx context.Context, key, value []byte) error
}

// Chain wraps handler so that the first middleware is the outermost.
func Chain(handler MessageHandler, middlewares ...Middleware) MessageHandler {
	for i := len(middlewares) - 1; i >= 0; i-- {
		handler = middlewares[i](handler)
	}
	return handler
}
