package middleware

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/you-humble/autoparts/platform/kafka"
	"github.com/you-humble/autoparts/platform/logger"
)

func TestRecovery(t *testing.T) {
	t.Parallel()

	h := kafka.Chain(
		func(context.Context, kafka.Message) error { panic("boom") },
		Recovery(logger.NoopLogger{}),
	)

	err := h(context.Background(), kafka.Message{Topic: "invoices"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "boom")
}

func TestChainOrder(t *testing.T) {
	t.Parallel()

	var calls []string
	mw := func(name string) kafka.Middleware {
		return func(next kafka.MessageHandler) kafka.MessageHandler {
			return func(ctx context.Context, msg kafka.Message) error {
				calls = append(calls, name)
				return next(ctx, msg)
			}
		}
	}
	sentinel := errors.New("handled")

	h := kafka.Chain(
		func(context.Context, kafka.Message) error {
			calls = append(calls, "handler")
			return sentinel
		},
		mw("outer"),
		Logging(logger.NoopLogger{}),
		Tracing("test"),
		mw("inner"),
	)

	err := h(context.Background(), kafka.Message{Topic: "invoices"})
	assert.ErrorIs(t, err, sentinel)
	assert.Equal(t, []string{"outer", "inner", "handler"}, calls)
}
