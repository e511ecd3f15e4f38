package invproducer

import (
	"context"
	"fmt"

	"github.com/you-humble/autoparts/internal/model"
	"github.com/you-humble/autoparts/platform/kafka"
)

type Converter interface {
	InvoiceEventToPayload(e model.InvoiceEvent) ([]byte, error)
}

type service struct {
	producer kafka.Producer
	conv     Converter
}

func NewInvoiceProducer(producer kafka.Producer, conv Converter) *service {
	return &service{producer: producer, conv: conv}
}

// SendInvoiceEvent publishes the event keyed by invoice number, so every event
// of one invoice lands on the same partition.
func (s *service) SendInvoiceEvent(ctx context.Context, event model.InvoiceEvent) error {
	payload, err := s.conv.InvoiceEventToPayload(event)
	if err != nil {
		return fmt.Errorf("converter invoice_event_to_payload error: %w", err)
	}

	if err := s.producer.Send(ctx, []byte(event.Number), payload); err != nil {
		return fmt.Errorf("producer to invoice events topic error: %w", err)
	}

	return nil
}

type noop struct{}

// NewNoop returns a sender that drops every event. Used when Kafka is not configured.
func NewNoop() *noop { return &noop{} }

func (noop) SendInvoiceEvent(context.Context, model.InvoiceEvent) error { return nil }
