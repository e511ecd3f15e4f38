package converter

import (
	"github.com/samber/lo"

	"github.com/you-humble/autoparts/internal/model"
	apiv1 "github.com/you-humble/autoparts/internal/transport/http/api/v1"
)

func InvoiceToAPI(inv *model.Invoice) apiv1.Invoice {
	return apiv1.Invoice{
		ID:               inv.ID,
		NumeroFactura:    inv.Number,
		ClienteNombre:    inv.CustomerName,
		ClienteDocumento: inv.CustomerDocument,
		ClienteEmail:     inv.CustomerEmail,
		ClienteTelefono:  inv.CustomerPhone,
		Subtotal:         apiv1.NewMoney(inv.Subtotal),
		Impuesto:         apiv1.NewMoney(inv.Tax),
		Total:            apiv1.NewMoney(inv.Total),
		Estado:           inv.Status.Wire(),
		FechaCreacion:    inv.CreatedAt,
		FechaPago:        inv.PaidAt,
		Items: lo.Map(inv.Items, func(it model.InvoiceItem, _ int) apiv1.InvoiceItem {
			return apiv1.InvoiceItem{
				ID:             it.ID,
				PiezaID:        it.PartID,
				PiezaNombre:    it.PartName,
				PiezaCodigo:    it.PartCode,
				Cantidad:       it.Quantity,
				PrecioUnitario: apiv1.NewMoney(it.UnitPrice),
				Subtotal:       apiv1.NewMoney(it.Subtotal),
				Descripcion:    it.Note,
			}
		}),
	}
}

func InvoicesToAPI(invoices []model.Invoice) []apiv1.Invoice {
	return lo.Map(invoices, func(inv model.Invoice, _ int) apiv1.Invoice {
		return InvoiceToAPI(&inv)
	})
}

func CreateInvoiceRequestToParams(req *apiv1.CreateInvoiceRequest) model.CreateInvoiceParams {
	return model.CreateInvoiceParams{
		Number:           req.NumeroFactura,
		CustomerName:     req.ClienteNombre,
		CustomerDocument: req.ClienteDocumento,
		CustomerEmail:    req.ClienteEmail,
		CustomerPhone:    req.ClienteTelefono,
		Items: lo.Map(req.Items, func(it apiv1.CreateInvoiceItemRequest, _ int) model.CreateInvoiceItemParams {
			return model.CreateInvoiceItemParams{
				PartID:   it.PiezaID,
				Quantity: it.Cantidad,
				Note:     it.Descripcion,
			}
		}),
	}
}

func StatsToAPI(s model.InvoiceStats) apiv1.InvoiceStats {
	return apiv1.InvoiceStats{
		CantidadFacturas:     s.Count,
		TotalFacturasPagadas: apiv1.NewMoney(s.PaidTotal),
	}
}
