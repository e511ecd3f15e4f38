package converter

import (
	"github.com/samber/lo"

	"github.com/you-humble/autoparts/internal/model"
	apiv1 "github.com/you-humble/autoparts/internal/transport/http/api/v1"
)

func PartToAPI(p *model.Part) apiv1.Part {
	return apiv1.Part{
		ID:                 p.ID,
		Nombre:             p.Name,
		Codigo:             p.Code,
		Descripcion:        p.Description,
		Precio:             apiv1.NewMoney(p.Price),
		Stock:              p.Stock,
		Marca:              p.Brand,
		Modelo:             p.Model,
		Categoria:          p.Category,
		FechaRegistro:      p.CreatedAt,
		FechaActualizacion: p.UpdatedAt,
	}
}

func PartsToAPI(parts []model.Part) []apiv1.Part {
	return lo.Map(parts, func(p model.Part, _ int) apiv1.Part {
		return PartToAPI(&p)
	})
}

// PartRequestToParams expects a validated request.
func PartRequestToParams(req *apiv1.PartRequest) model.PartParams {
	params := model.PartParams{
		Code:        req.Codigo,
		Name:        req.Nombre,
		Description: req.Descripcion,
		Brand:       req.Marca,
		Model:       req.Modelo,
		Category:    req.Categoria,
	}
	if req.Precio != nil {
		params.Price = req.Precio.Decimal
	}
	if req.Stock != nil {
		params.Stock = *req.Stock
	}
	return params
}

func MovementsToAPI(movements []model.StockMovement) []apiv1.StockMovement {
	return lo.Map(movements, func(m model.StockMovement, _ int) apiv1.StockMovement {
		return apiv1.StockMovement{
			ID:            m.ID,
			PiezaID:       m.PartID,
			Tipo:          string(m.Kind),
			Cantidad:      m.Delta,
			StockAnterior: m.StockBefore,
			StockNuevo:    m.StockAfter,
			FacturaID:     m.InvoiceID,
			Fecha:         m.CreatedAt,
		}
	})
}
