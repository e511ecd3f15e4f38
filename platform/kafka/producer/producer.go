package producer

import (
	"context"

	"github.com/IBM/sarama"

	"github.com/you-humble/autoparts/platform/logger"
	"github.com/you-humble/autoparts/platform/tracing"
)

type Logger interface {
	Info(ctx context.Context, msg string, fields ...logger.Field)
	Error(ctx context.Context, msg string, fields ...logger.Field)
}

type producer struct {
	syncProducer sarama.SyncProducer
	topic        string
	logger       Logger
}

func NewProducer(syncProducer sarama.SyncProducer, topic string, logger Logger) *producer {
	return &producer{
		syncProducer: syncProducer,
		topic:        topic,
		logger:       logger,
	}
}

// Send publishes one record and carries the span context of ctx in the record headers.
func (p *producer) Send(ctx context.Context, key, value []byte) error {
	carrier := map[string]string{}
	tracing.Inject(ctx, carrier)

	headers := make([]sarama.RecordHeader, 0, len(carrier))
	for k, v := range carrier {
		headers = append(headers, sarama.RecordHeader{Key: []byte(k), Value: []byte(v)})
	}

	partition, offset, err := p.syncProducer.SendMessage(&sarama.ProducerMessage{
		Topic:   p.topic,
		Key:     sarama.ByteEncoder(key),
		Value:   sarama.ByteEncoder(value),
		Headers: headers,
	})
	if err != nil {
		p.logger.Error(ctx, "failed to send message",
			logger.String("topic", p.topic),
			logger.ErrorF(err),
		)
		return err
	}

	p.logger.Info(ctx, "message sent",
		logger.String("topic", p.topic),
		logger.Int32("partition", partition),
		logger.Int64("offset", offset),
		logger.String("key", string(key)),
	)

	return nil
}
