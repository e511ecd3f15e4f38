package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type Part struct {
	// System-assigned identifier, immutable once set.
	ID int64
	// Unique business key.
	Code        string
	Name        string
	Description string
	Brand       string
	// Vehicle model the part fits.
	Model    string
	Category string
	Price    decimal.Decimal
	// Units currently in stock. Never negative.
	Stock     int
	CreatedAt time.Time
	UpdatedAt time.Time
}

// PartParams carries the mutable fields of a part for create and full-replace update.
type PartParams struct {
	Code        string
	Name        string
	Description string
	Brand       string
	Model       string
	Category    string
	Price       decimal.Decimal
	Stock       int
}

// PartsFilter combines with AND; a zero value matches every part.
type PartsFilter struct {
	NameLike     string
	BrandLike    string
	CategoryLike string
	// Substring of name, description or code.
	Term       string
	StockBelow *int
	PriceMin   *decimal.Decimal
	PriceMax   *decimal.Decimal
}
