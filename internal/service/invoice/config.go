package service

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	defaultPrefix     = "FAC"
	defaultDateLayout = "20060102"
	defaultSeqWidth   = 6
)

var defaultTaxRate = decimal.RequireFromString("0.21")

// Config holds the billing rules of the invoice service.
type Config struct {
	TaxRate    decimal.Decimal
	Prefix     string
	DateLayout string
	SeqWidth   int
	// Time zone of the date embedded in generated numbers.
	Location *time.Location
	Now      func() time.Time
}

func (c Config) withDefaults() Config {
	if c.TaxRate.IsZero() {
		c.TaxRate = defaultTaxRate
	}
	if c.Prefix == "" {
		c.Prefix = defaultPrefix
	}
	if c.DateLayout == "" {
		c.DateLayout = defaultDateLayout
	}
	if c.SeqWidth <= 0 {
		c.SeqWidth = defaultSeqWidth
	}
	if c.Location == nil {
		c.Location = time.UTC
	}
	if c.Now == nil {
		c.Now = time.Now
	}
	return c
}
