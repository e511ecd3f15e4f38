package consumer

import (
	"github.com/IBM/sarama"

	"github.com/you-humble/autoparts/platform/kafka"
	"github.com/you-humble/autoparts/platform/logger"
)

type groupHandler struct {
	handler kafka.MessageHandler
	logger  Logger
}

func NewGroupHandler(handler kafka.MessageHandler, logger Logger, middlewares ...kafka.Middleware) *groupHandler {
	return &groupHandler{
		handler: kafka.Chain(handler, middlewares...),
		logger:  logger,
	}
}

func (g *groupHandler) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (g *groupHandler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

// ConsumeClaim marks a message only after the handler succeeded; failed ones are redelivered
// after the next rebalance.
func (g *groupHandler) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	ctx := session.Context()

	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				g.logger.Info(ctx, "kafka message channel closed")
				return nil
			}

			msg := kafka.Message{
				Key:            message.Key,
				Value:          message.Value,
				Topic:          message.Topic,
				Partition:      message.Partition,
				Offset:         message.Offset,
				Timestamp:      message.Timestamp,
				BlockTimestamp: message.BlockTimestamp,
				Headers:        extractHeaders(message.Headers),
			}

			if err := g.handler(ctx, msg); err != nil {
				g.logger.Error(ctx, "kafka handler error",
					logger.String("topic", msg.Topic),
					logger.Int64("offset", msg.Offset),
					logger.ErrorF(err),
				)
				continue
			}

			session.MarkMessage(message, "")

		case <-ctx.Done():
			g.logger.Info(ctx, "kafka session context done")
			return nil
		}
	}
}

func extractHeaders(headers []*sarama.RecordHeader) map[string][]byte {
	result := make(map[string][]byte, len(headers))
	for _, h := range headers {
		if h != nil && h.Key != nil {
			result[string(h.Key)] = h.Value
		}
	}

	return result
}
