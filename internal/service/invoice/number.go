package service

import (
	"context"
	"fmt"
	"time"

	"github.com/you-humble/autoparts/internal/model"
	"github.com/you-humble/autoparts/platform/logger"
)

// GenerateNumber proposes the next invoice number, e.g. FAC-20261018-000001.
// The sequence is the number of existing invoices plus one, so two concurrent
// callers may get the same value; the unique index on invoices.number rejects
// the second insert.
func (svc *service) GenerateNumber(ctx context.Context) (string, error) {
	const op = "invoice.service.GenerateNumber"

	ctx, span := svc.tracer.Start(ctx, op)
	defer span.End()

	ctx, cancel := context.WithTimeout(ctx, svc.readDBTimeout)
	defer cancel()

	number, err := svc.nextNumber(ctx)
	if err != nil {
		logger.Error(ctx, "generate invoice number", logger.ErrorF(err))
		return "", fail(span, fmt.Errorf("%s: %w", op, err))
	}

	return number, nil
}

func (svc *service) nextNumber(ctx context.Context) (string, error) {
	count, err := svc.repo.Count(ctx)
	if err != nil {
		return "", err
	}

	return svc.formatNumber(count + 1), nil
}

func (svc *service) formatNumber(seq int64) string {
	date := svc.cfg.Now().In(svc.cfg.Location).Format(svc.cfg.DateLayout)
	return fmt.Sprintf("%s-%s-%0*d", svc.cfg.Prefix, date, svc.cfg.SeqWidth, seq)
}

// Stats counts the invoices created in [from, to] and sums the totals of the
// paid ones.
func (svc *service) Stats(ctx context.Context, from, to time.Time) (model.InvoiceStats, error) {
	const op = "invoice.service.Stats"
	log := logger.With(
		logger.Time("from", from),
		logger.Time("to", to),
	)

	if from.After(to) {
		return model.InvoiceStats{}, fmt.Errorf("%s: %w: start of period after its end", op, model.ErrValidation)
	}

	ctx, span := svc.tracer.Start(ctx, op)
	defer span.End()

	ctx, cancel := context.WithTimeout(ctx, svc.readDBTimeout)
	defer cancel()

	count, err := svc.repo.CountByPeriod(ctx, from, to)
	if err != nil {
		log.Error(ctx, "repository count by period", logger.ErrorF(err))
		return model.InvoiceStats{}, fail(span, fmt.Errorf("%s: %w", op, err))
	}

	paid, err := svc.repo.SumPaidTotalByPeriod(ctx, from, to)
	if err != nil {
		log.Error(ctx, "repository sum paid total", logger.ErrorF(err))
		return model.InvoiceStats{}, fail(span, fmt.Errorf("%s: %w", op, err))
	}

	return model.InvoiceStats{Count: count, PaidTotal: paid}, nil
}
