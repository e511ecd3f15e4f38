package model

import "time"

type MovementKind string

const (
	MovementInitial     MovementKind = "INITIAL"
	MovementManualSet   MovementKind = "MANUAL_SET"
	MovementInvoiceSale MovementKind = "INVOICE_SALE"
	MovementInvoiceVoid MovementKind = "INVOICE_VOID"
)

// StockMovement is one entry of a part's stock ledger.
type StockMovement struct {
	ID          int64
	PartID      int64
	Kind        MovementKind
	Delta       int
	StockBefore int
	StockAfter  int
	InvoiceID   *int64
	CreatedAt   time.Time
}
