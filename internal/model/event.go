package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type InvoiceEventType string

const (
	EventInvoiceCreated       InvoiceEventType = "invoice.created"
	EventInvoiceStatusChanged InvoiceEventType = "invoice.status_changed"
	EventInvoiceVoided        InvoiceEventType = "invoice.voided"
)

type InvoiceEvent struct {
	EventID    uuid.UUID
	Type       InvoiceEventType
	InvoiceID  int64
	Number     string
	Status     InvoiceStatus
	Total      decimal.Decimal
	OccurredAt time.Time
}

func NewInvoiceEvent(t InvoiceEventType, inv *Invoice, at time.Time) InvoiceEvent {
	return InvoiceEvent{
		EventID:    uuid.New(),
		Type:       t,
		InvoiceID:  inv.ID,
		Number:     inv.Number,
		Status:     inv.Status,
		Total:      inv.Total,
		OccurredAt: at,
	}
}

// PaymentReceived is consumed from the payments topic. Either field identifies the invoice.
type PaymentReceived struct {
	EventID       string
	InvoiceID     int64
	InvoiceNumber string
}
