package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/you-humble/autoparts/internal/model"
	"github.com/you-humble/autoparts/platform/logger"
)

// SetStatus moves an invoice to status. Setting the current status is a no-op;
// voiding goes through Cancel so that stock is restored.
func (svc *service) SetStatus(ctx context.Context, id int64, status model.InvoiceStatus) (*model.Invoice, error) {
	const op = "invoice.service.SetStatus"
	log := logger.With(
		logger.Int64("invoice_id", id),
		logger.String("status", string(status)),
	)

	if !status.Valid() {
		log.Error(ctx, "unknown status")
		return nil, fmt.Errorf("%s: %w: %q", op, model.ErrInvalidStatus, status)
	}
	if status == model.StatusVoided {
		return svc.Cancel(ctx, id)
	}

	ctx, span := svc.tracer.Start(ctx, op)
	defer span.End()
	span.SetAttributes(
		attribute.Int64("invoice.id", id),
		attribute.String("invoice.status", string(status)),
	)

	ctx, cancel := context.WithTimeout(ctx, svc.writeDBTimeout)
	defer cancel()

	inv, err := svc.repo.InvoiceByID(ctx, id)
	if err != nil {
		if !isClientError(err) {
			log.Error(ctx, "repository invoice by id", logger.ErrorF(err))
		}
		return nil, fail(span, fmt.Errorf("%s: %w", op, err))
	}

	if inv.Status == status {
		return inv, nil
	}
	if !model.CanTransition(inv.Status, status) {
		return nil, fail(span, fmt.Errorf("%s: %w: %s to %s",
			op, model.ErrStatusTransition, inv.Status.Wire(), status.Wire()))
	}

	var paidAt *time.Time
	if status == model.StatusPaid {
		now := svc.cfg.Now().UTC()
		paidAt = &now
	}

	if err := svc.repo.UpdateStatus(ctx, id, inv.Status, status, paidAt); err != nil {
		if !isClientError(err) {
			log.Error(ctx, "repository update status", logger.ErrorF(err))
		}
		return nil, fail(span, fmt.Errorf("%s: %w", op, err))
	}

	inv.Status = status
	if paidAt != nil {
		inv.PaidAt = paidAt
	}

	log.Info(ctx, "invoice status changed")
	svc.publish(ctx, model.EventInvoiceStatusChanged, inv)
	return inv, nil
}

// Cancel voids a pending or overdue invoice and returns every sold unit to
// stock. Paid and already voided invoices are rejected with ErrInvoiceConflict.
func (svc *service) Cancel(ctx context.Context, id int64) (*model.Invoice, error) {
	const op = "invoice.service.Cancel"
	log := logger.With(logger.Int64("invoice_id", id))

	ctx, span := svc.tracer.Start(ctx, op)
	defer span.End()
	span.SetAttributes(attribute.Int64("invoice.id", id))

	ctx, cancel := context.WithTimeout(ctx, svc.writeDBTimeout)
	defer cancel()

	var inv *model.Invoice
	err := svc.tx.WithTx(ctx, func(ctx context.Context) error {
		var err error
		inv, err = svc.repo.InvoiceByID(ctx, id)
		if err != nil {
			return err
		}

		switch inv.Status {
		case model.StatusPaid:
			return fmt.Errorf("%w: paid invoice cannot be voided", model.ErrInvoiceConflict)
		case model.StatusVoided:
			return fmt.Errorf("%w: invoice already voided", model.ErrInvoiceConflict)
		}

		if err := svc.repo.UpdateStatus(ctx, id, inv.Status, model.StatusVoided, nil); err != nil {
			return err
		}

		for _, it := range inv.Items {
			if it.PartID == nil {
				continue
			}
			if err := svc.restock(ctx, inv.ID, *it.PartID, it.Quantity); err != nil {
				return err
			}
		}

		inv.Status = model.StatusVoided
		return nil
	})
	if err != nil {
		if !isClientError(err) {
			log.Error(ctx, "cancel invoice", logger.ErrorF(err))
		}
		return nil, fail(span, fmt.Errorf("%s: %w", op, err))
	}

	log.Info(ctx, "invoice voided")
	svc.publish(ctx, model.EventInvoiceVoided, inv)
	return inv, nil
}

// restock returns quantity units of a part sold on an invoice. Parts deleted
// since the sale are skipped.
func (svc *service) restock(ctx context.Context, invoiceID, partID int64, quantity int) error {
	before, after, err := svc.parts.AdjustStock(ctx, partID, quantity)
	if err != nil {
		if errors.Is(err, model.ErrPartNotFound) {
			logger.Warn(ctx, "restock skipped, part deleted",
				logger.Int64("invoice_id", invoiceID),
				logger.Int64("part_id", partID),
			)
			return nil
		}
		return fmt.Errorf("restock part %d: %w", partID, err)
	}

	return svc.parts.AddMovement(ctx, &model.StockMovement{
		PartID:      partID,
		Kind:        model.MovementInvoiceVoid,
		Delta:       quantity,
		StockBefore: before,
		StockAfter:  after,
		InvoiceID:   &invoiceID,
	})
}
