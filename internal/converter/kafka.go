package converter

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/you-humble/autoparts/internal/model"
)

type invoiceEventRecord struct {
	EventID    string          `json:"eventId"`
	Type       string          `json:"type"`
	InvoiceID  int64           `json:"invoiceId"`
	Number     string          `json:"number"`
	Status     string          `json:"status"`
	Total      decimal.Decimal `json:"total"`
	OccurredAt time.Time       `json:"occurredAt"`
}

type paymentReceivedRecord struct {
	EventID       string `json:"eventId"`
	InvoiceID     int64  `json:"invoiceId"`
	InvoiceNumber string `json:"invoiceNumber"`
}

type kafkaConverter struct{}

func NewKafkaConverter() *kafkaConverter { return &kafkaConverter{} }

func (c *kafkaConverter) InvoiceEventToPayload(e model.InvoiceEvent) ([]byte, error) {
	payload, err := json.Marshal(invoiceEventRecord{
		EventID:    e.EventID.String(),
		Type:       string(e.Type),
		InvoiceID:  e.InvoiceID,
		Number:     e.Number,
		Status:     e.Status.Wire(),
		Total:      e.Total,
		OccurredAt: e.OccurredAt.UTC(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal invoice event: %w", err)
	}

	return payload, nil
}

func (c *kafkaConverter) PaymentReceivedToModel(data []byte) (model.PaymentReceived, error) {
	var rec paymentReceivedRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return model.PaymentReceived{}, fmt.Errorf("failed to unmarshal payment record: %w", err)
	}

	if rec.InvoiceID <= 0 && rec.InvoiceNumber == "" {
		return model.PaymentReceived{}, fmt.Errorf("%w: payment record names no invoice", model.ErrValidation)
	}

	return model.PaymentReceived{
		EventID:       rec.EventID,
		InvoiceID:     rec.InvoiceID,
		InvoiceNumber: rec.InvoiceNumber,
	}, nil
}
