package model

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type InvoiceStatus string

const (
	StatusPending InvoiceStatus = "PENDING"
	StatusPaid    InvoiceStatus = "PAID"
	StatusVoided  InvoiceStatus = "VOIDED"
	StatusOverdue InvoiceStatus = "OVERDUE"
)

var wireStatus = map[InvoiceStatus]string{
	StatusPending: "PENDIENTE",
	StatusPaid:    "PAGADA",
	StatusVoided:  "ANULADA",
	StatusOverdue: "VENCIDA",
}

var transitions = map[InvoiceStatus][]InvoiceStatus{
	StatusPending: {StatusPaid, StatusOverdue, StatusVoided},
	StatusOverdue: {StatusPaid, StatusPending, StatusVoided},
	StatusPaid:    nil,
	StatusVoided:  nil,
}

// ParseStatus accepts both the wire names (PENDIENTE, PAGADA, ANULADA, VENCIDA)
// and the internal names, case-insensitively.
func ParseStatus(s string) (InvoiceStatus, error) {
	v := strings.ToUpper(strings.TrimSpace(s))
	for st, wire := range wireStatus {
		if v == wire || v == string(st) {
			return st, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidStatus, s)
}

func (s InvoiceStatus) Valid() bool {
	_, ok := wireStatus[s]
	return ok
}

// Wire returns the name used on the HTTP API and in events.
func (s InvoiceStatus) Wire() string {
	if w, ok := wireStatus[s]; ok {
		return w
	}
	return string(s)
}

// CanTransition reports whether an invoice in status from may move to status to.
// Staying in the same status is always allowed.
func CanTransition(from, to InvoiceStatus) bool {
	if !from.Valid() || !to.Valid() {
		return false
	}
	if from == to {
		return true
	}
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

type Invoice struct {
	ID int64
	// Unique business key, FAC-YYYYMMDD-NNNNNN by default.
	Number           string
	CustomerName     string
	CustomerDocument string
	CustomerEmail    string
	CustomerPhone    string
	Subtotal         decimal.Decimal
	Tax              decimal.Decimal
	Total            decimal.Decimal
	Status           InvoiceStatus
	CreatedAt        time.Time
	// Set on the transition to PAID.
	PaidAt *time.Time
	Items  []InvoiceItem
}

type InvoiceItem struct {
	ID        int64
	InvoiceID int64
	// Nil once the referenced part has been deleted.
	PartID *int64
	// Snapshots taken when the invoice was created.
	PartCode  string
	PartName  string
	Quantity  int
	UnitPrice decimal.Decimal
	Subtotal  decimal.Decimal
	Note      string
}

type CreateInvoiceParams struct {
	// Generated when empty.
	Number           string
	CustomerName     string
	CustomerDocument string
	CustomerEmail    string
	CustomerPhone    string
	Items            []CreateInvoiceItemParams
}

type CreateInvoiceItemParams struct {
	PartID   int64
	Quantity int
	Note     string
}

// InvoicesFilter combines with AND; a zero value matches every invoice.
type InvoicesFilter struct {
	CustomerLike     string
	CustomerDocument string
	// Substring of customer name or invoice number.
	Term        string
	Status      *InvoiceStatus
	CreatedFrom *time.Time
	CreatedTo   *time.Time
	MinTotal    *decimal.Decimal
}

type InvoiceStats struct {
	Count     int64
	PaidTotal decimal.Decimal
}

// Totals holds the computed money fields of an invoice.
type Totals struct {
	Subtotal decimal.Decimal
	Tax      decimal.Decimal
	Total    decimal.Decimal
}

// ComputeTotals sums the line subtotals and applies taxRate, rounding the tax
// half away from zero to cents.
func ComputeTotals(items []InvoiceItem, taxRate decimal.Decimal) Totals {
	subtotal := decimal.Zero
	for _, it := range items {
		subtotal = subtotal.Add(it.Subtotal)
	}
	subtotal = subtotal.Round(2)
	tax := subtotal.Mul(taxRate).Round(2)

	return Totals{
		Subtotal: subtotal,
		Tax:      tax,
		Total:    subtotal.Add(tax),
	}
}

// LineSubtotal returns unitPrice × quantity in cents.
func LineSubtotal(unitPrice decimal.Decimal, quantity int) decimal.Decimal {
	return unitPrice.Mul(decimal.NewFromInt(int64(quantity))).Round(2)
}
