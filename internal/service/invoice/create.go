package service

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"go.opentelemetry.io/otel/attribute"

	"github.com/you-humble/autoparts/internal/model"
	"github.com/you-humble/autoparts/platform/logger"
)

// Create issues an invoice in a single transaction: every referenced part is
// locked, its price and name are snapshotted and its stock is decremented.
// The invoice.created event is published after commit.
func (svc *service) Create(ctx context.Context, params model.CreateInvoiceParams) (*model.Invoice, error) {
	const op = "invoice.service.Create"

	ctx, span := svc.tracer.Start(ctx, op)
	defer span.End()

	params, err := normalizeCreateParams(params)
	if err != nil {
		logger.Error(ctx, "wrong params", logger.ErrorF(err))
		return nil, fail(span, fmt.Errorf("%s: %w", op, err))
	}
	log := logger.With(
		logger.String("customer", params.CustomerName),
		logger.Int("number_items", len(params.Items)),
	)

	ctx, cancel := context.WithTimeout(ctx, svc.writeDBTimeout)
	defer cancel()

	var inv *model.Invoice
	err = svc.tx.WithTx(ctx, func(ctx context.Context) error {
		var err error
		inv, err = svc.create(ctx, params)
		return err
	})
	if err != nil {
		if !isClientError(err) {
			log.Error(ctx, "create invoice", logger.ErrorF(err))
		}
		return nil, fail(span, fmt.Errorf("%s: %w", op, err))
	}

	span.SetAttributes(
		attribute.Int64("invoice.id", inv.ID),
		attribute.String("invoice.number", inv.Number),
	)
	log.Info(ctx, "invoice created",
		logger.Int64("invoice_id", inv.ID),
		logger.String("invoice_number", inv.Number),
		logger.String("total", inv.Total.StringFixed(2)),
	)

	svc.publish(ctx, model.EventInvoiceCreated, inv)
	return inv, nil
}

func (svc *service) create(ctx context.Context, params model.CreateInvoiceParams) (*model.Invoice, error) {
	number := params.Number
	if number == "" {
		var err error
		if number, err = svc.nextNumber(ctx); err != nil {
			return nil, fmt.Errorf("generate number: %w", err)
		}
	}

	exists, err := svc.repo.ExistsByNumber(ctx, number)
	if err != nil {
		return nil, fmt.Errorf("exists by number: %w", err)
	}
	if exists {
		return nil, fmt.Errorf("%w: %s", model.ErrDuplicateInvoiceNumber, number)
	}

	items := make([]model.InvoiceItem, 0, len(params.Items))
	sales := make([]model.StockMovement, 0, len(params.Items))
	for _, ip := range params.Items {
		part, err := svc.parts.PartByIDForUpdate(ctx, ip.PartID)
		if err != nil {
			return nil, fmt.Errorf("part %d: %w", ip.PartID, err)
		}

		before, after, err := svc.parts.AdjustStock(ctx, part.ID, -ip.Quantity)
		if err != nil {
			return nil, fmt.Errorf("part %s: %w", part.Code, err)
		}

		partID := part.ID
		items = append(items, model.InvoiceItem{
			PartID:    &partID,
			PartCode:  part.Code,
			PartName:  part.Name,
			Quantity:  ip.Quantity,
			UnitPrice: part.Price,
			Subtotal:  model.LineSubtotal(part.Price, ip.Quantity),
			Note:      ip.Note,
		})
		sales = append(sales, model.StockMovement{
			PartID:      part.ID,
			Kind:        model.MovementInvoiceSale,
			Delta:       -ip.Quantity,
			StockBefore: before,
			StockAfter:  after,
		})
	}

	totals := model.ComputeTotals(items, svc.cfg.TaxRate)
	inv := &model.Invoice{
		Number:           number,
		CustomerName:     params.CustomerName,
		CustomerDocument: params.CustomerDocument,
		CustomerEmail:    params.CustomerEmail,
		CustomerPhone:    params.CustomerPhone,
		Subtotal:         totals.Subtotal,
		Tax:              totals.Tax,
		Total:            totals.Total,
		Status:           model.StatusPending,
		CreatedAt:        svc.cfg.Now().UTC(),
		Items:            items,
	}

	if err := svc.repo.Create(ctx, inv); err != nil {
		return nil, fmt.Errorf("insert invoice: %w", err)
	}

	for i := range sales {
		sales[i].InvoiceID = &inv.ID
		if err := svc.parts.AddMovement(ctx, &sales[i]); err != nil {
			return nil, fmt.Errorf("add movement: %w", err)
		}
	}

	return inv, nil
}

type fieldLimit struct {
	name  string
	value string
	max   int
}

func normalizeCreateParams(p model.CreateInvoiceParams) (model.CreateInvoiceParams, error) {
	p.Number = strings.TrimSpace(p.Number)
	p.CustomerName = strings.TrimSpace(p.CustomerName)
	p.CustomerDocument = strings.TrimSpace(p.CustomerDocument)
	p.CustomerEmail = strings.TrimSpace(p.CustomerEmail)
	p.CustomerPhone = strings.TrimSpace(p.CustomerPhone)

	if p.CustomerName == "" {
		return p, fmt.Errorf("%w: customer name is required", model.ErrValidation)
	}
	if len(p.Items) == 0 {
		return p, fmt.Errorf("%w: invoice has no items", model.ErrValidation)
	}

	limits := []fieldLimit{
		{"number", p.Number, 50},
		{"customer name", p.CustomerName, 100},
		{"customer document", p.CustomerDocument, 20},
		{"customer email", p.CustomerEmail, 100},
		{"customer phone", p.CustomerPhone, 20},
	}

	items := make([]model.CreateInvoiceItemParams, len(p.Items))
	for i, it := range p.Items {
		if it.PartID <= 0 {
			return p, fmt.Errorf("%w: item %d: part id is required", model.ErrValidation, i+1)
		}
		if it.Quantity <= 0 {
			return p, fmt.Errorf("%w: item %d: quantity must be positive", model.ErrValidation, i+1)
		}
		it.Note = strings.TrimSpace(it.Note)
		limits = append(limits, fieldLimit{"item note", it.Note, 200})
		items[i] = it
	}
	p.Items = items

	for _, l := range limits {
		if utf8.RuneCountInString(l.value) > l.max {
			return p, fmt.Errorf("%w: %s longer than %d characters", model.ErrValidation, l.name, l.max)
		}
	}

	return p, nil
}
