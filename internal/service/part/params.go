package service

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"

	"github.com/you-humble/autoparts/internal/model"
)

var maxPrice = decimal.RequireFromString("9999999999.99")

type fieldLimit struct {
	name  string
	value string
	max   int
}

// normalizePartParams trims text fields, rounds the price to cents and checks
// the limits enforced by the parts table.
func normalizePartParams(p model.PartParams) (model.PartParams, error) {
	p.Code = strings.TrimSpace(p.Code)
	p.Name = strings.TrimSpace(p.Name)
	p.Description = strings.TrimSpace(p.Description)
	p.Brand = strings.TrimSpace(p.Brand)
	p.Model = strings.TrimSpace(p.Model)
	p.Category = strings.TrimSpace(p.Category)
	p.Price = p.Price.Round(2)

	if p.Code == "" {
		return p, fmt.Errorf("%w: code is required", model.ErrValidation)
	}
	if p.Name == "" {
		return p, fmt.Errorf("%w: name is required", model.ErrValidation)
	}
	if p.Price.IsNegative() || p.Price.GreaterThan(maxPrice) {
		return p, fmt.Errorf("%w: price out of range", model.ErrValidation)
	}
	if p.Stock < 0 {
		return p, fmt.Errorf("%w: stock must not be negative", model.ErrValidation)
	}

	limits := []fieldLimit{
		{"code", p.Code, 50},
		{"name", p.Name, 100},
		{"description", p.Description, 200},
		{"brand", p.Brand, 50},
		{"model", p.Model, 50},
		{"category", p.Category, 50},
	}
	for _, l := range limits {
		if utf8.RuneCountInString(l.value) > l.max {
			return p, fmt.Errorf("%w: %s longer than %d characters", model.ErrValidation, l.name, l.max)
		}
	}

	return p, nil
}

func partFromParams(p model.PartParams) *model.Part {
	return &model.Part{
		Code:        p.Code,
		Name:        p.Name,
		Description: p.Description,
		Brand:       p.Brand,
		Model:       p.Model,
		Category:    p.Category,
		Price:       p.Price,
		Stock:       p.Stock,
	}
}
