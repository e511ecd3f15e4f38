package seed

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/you-humble/autoparts/internal/model"
	"github.com/you-humble/autoparts/platform/logger"
)

type PartCounter interface {
	Count(ctx context.Context) (int64, error)
}

type PartCreator interface {
	Create(ctx context.Context, params model.PartParams) (*model.Part, error)
}

// Catalog is the sample inventory loaded into an empty database.
func Catalog() []model.PartParams {
	return []model.PartParams{
		part("FIL001", "Filtro de Aceite", "Filtro de aceite de motor de alta calidad", "25.50", 50, "Bosch", "Universal", "Motor"),
		part("BUJ002", "Bujía de Encendido", "Bujía de encendido de iridio", "15.75", 100, "NGK", "Iridium", "Motor"),
		part("PAST003", "Pastilla de Freno", "Pastilla de freno delantera", "45.00", 30, "Brembo", "Sport", "Frenos"),
		part("DIS004", "Disco de Freno", "Disco de freno ventilado", "85.25", 20, "Brembo", "Ventilated", "Frenos"),
		part("AMO005", "Amortiguador", "Amortiguador delantero", "120.00", 15, "Monroe", "Gas-Matic", "Suspensión"),
		part("BAT006", "Batería", "Batería de 12V 60Ah", "95.50", 25, "Varta", "Blue Dynamic", "Eléctrico"),
		part("ESP007", "Espejo Retrovisor", "Espejo retrovisor derecho", "65.00", 10, "OEM", "Universal", "Carrocería"),
		part("ACE008", "Aceite de Transmisión", "Aceite de transmisión automática", "35.75", 40, "Castrol", "Transmax", "Transmisión"),
	}
}

func part(code, name, description, price string, stock int, brand, vehicle, category string) model.PartParams {
	return model.PartParams{
		Code:        code,
		Name:        name,
		Description: description,
		Price:       decimal.RequireFromString(price),
		Stock:       stock,
		Brand:       brand,
		Model:       vehicle,
		Category:    category,
	}
}

// PartsBootstrap loads the catalog when there are no parts yet and reports how
// many parts were created.
func PartsBootstrap(ctx context.Context, counter PartCounter, creator PartCreator) (int, error) {
	const op = "seed.PartsBootstrap"

	n, err := counter.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("%s: count parts: %w", op, err)
	}
	if n > 0 {
		logger.Info(ctx, "parts table not empty, skipping seed", logger.Int64("parts", n))
		return 0, nil
	}

	created := 0
	for _, p := range Catalog() {
		if _, err := creator.Create(ctx, p); err != nil {
			return created, fmt.Errorf("%s: create %s: %w", op, p.Code, err)
		}
		created++
	}

	logger.Info(ctx, "sample parts loaded", logger.Int("parts", created))
	return created, nil
}
