package envconfig

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/shopspring/decimal"
)

type billingEnv struct {
	TaxRate          string `env:"BILLING_TAX_RATE" envDefault:"0.21"`
	InvoicePrefix    string `env:"BILLING_INVOICE_PREFIX" envDefault:"FAC"`
	NumberDateLayout string `env:"BILLING_NUMBER_DATE_LAYOUT" envDefault:"20060102"`
	NumberSeqWidth   int    `env:"BILLING_NUMBER_SEQ_WIDTH" envDefault:"6"`
	Timezone         string `env:"BILLING_TIMEZONE" envDefault:"UTC"`
	SeedOnStart      bool   `env:"SEED_ON_START" envDefault:"true"`
}

type billing struct {
	raw      billingEnv
	taxRate  decimal.Decimal
	location *time.Location
}

func NewBillingConfig() (*billing, error) {
	var raw billingEnv
	if err := env.Parse(&raw); err != nil {
		return nil, err
	}

	rate, err := decimal.NewFromString(raw.TaxRate)
	if err != nil {
		return nil, fmt.Errorf("BILLING_TAX_RATE: %w", err)
	}
	if rate.IsNegative() || rate.GreaterThanOrEqual(decimal.NewFromInt(1)) {
		return nil, fmt.Errorf("BILLING_TAX_RATE: %s is out of range [0, 1)", raw.TaxRate)
	}

	loc, err := time.LoadLocation(raw.Timezone)
	if err != nil {
		return nil, fmt.Errorf("BILLING_TIMEZONE: %w", err)
	}

	return &billing{raw: raw, taxRate: rate, location: loc}, nil
}

func (cfg *billing) TaxRate() decimal.Decimal { return cfg.taxRate }
func (cfg *billing) InvoicePrefix() string    { return cfg.raw.InvoicePrefix }
func (cfg *billing) NumberDateLayout() string { return cfg.raw.NumberDateLayout }
func (cfg *billing) NumberSeqWidth() int      { return cfg.raw.NumberSeqWidth }
func (cfg *billing) Location() *time.Location { return cfg.location }
func (cfg *billing) SeedOnStart() bool        { return cfg.raw.SeedOnStart }
