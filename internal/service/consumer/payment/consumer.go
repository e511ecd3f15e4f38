package pmtconsumer

import (
	"context"
	"errors"
	"fmt"

	"github.com/you-humble/autoparts/internal/model"
	"github.com/you-humble/autoparts/platform/kafka"
	"github.com/you-humble/autoparts/platform/logger"
)

type Converter interface {
	PaymentReceivedToModel(data []byte) (model.PaymentReceived, error)
}

type Service interface {
	InvoiceByNumber(ctx context.Context, number string) (*model.Invoice, error)
	SetStatus(ctx context.Context, id int64, status model.InvoiceStatus) (*model.Invoice, error)
}

type service struct {
	consumer kafka.Consumer
	conv     Converter
	svc      Service
}

func NewPaymentConsumer(
	consumer kafka.Consumer,
	conv Converter,
	svc Service,
) *service {
	return &service{consumer: consumer, conv: conv, svc: svc}
}

func (s *service) RunPaymentReceivedConsume(ctx context.Context) error {
	logger.Info(ctx, "Starting payment received consumer")

	if err := s.consumer.Consume(ctx, s.paymentReceivedHandler); err != nil {
		logger.Error(ctx, "Consume from payments topic error", logger.ErrorF(err))
		return err
	}

	return nil
}

// paymentReceivedHandler marks the invoice as paid. Payments for missing or
// already settled invoices are logged and acknowledged, redelivery cannot fix them.
func (s *service) paymentReceivedHandler(ctx context.Context, msg kafka.Message) error {
	payment, err := s.conv.PaymentReceivedToModel(msg.Value)
	if err != nil {
		logger.Error(ctx, "Failed to decode payment record",
			logger.Int64("offset", msg.Offset),
			logger.ErrorF(err),
		)
		return nil
	}
	log := logger.With(
		logger.String("event_id", payment.EventID),
		logger.Int64("invoice_id", payment.InvoiceID),
		logger.String("invoice_number", payment.InvoiceNumber),
	)

	id := payment.InvoiceID
	if id <= 0 {
		inv, err := s.svc.InvoiceByNumber(ctx, payment.InvoiceNumber)
		if err != nil {
			if errors.Is(err, model.ErrInvoiceNotFound) {
				log.Warn(ctx, "payment for unknown invoice")
				return nil
			}
			return fmt.Errorf("invoice by number: %w", err)
		}
		id = inv.ID
	}

	if _, err := s.svc.SetStatus(ctx, id, model.StatusPaid); err != nil {
		if isPermanent(err) {
			log.Warn(ctx, "payment not applied", logger.ErrorF(err))
			return nil
		}
		log.Error(ctx, "consumer.SetStatus", logger.ErrorF(err))
		return err
	}

	log.Info(ctx, "invoice paid")
	return nil
}

func isPermanent(err error) bool {
	return errors.Is(err, model.ErrInvoiceNotFound) ||
		errors.Is(err, model.ErrStatusTransition) ||
		errors.Is(err, model.ErrInvoiceConflict)
}
