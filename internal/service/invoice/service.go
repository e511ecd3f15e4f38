package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/you-humble/autoparts/internal/model"
	"github.com/you-humble/autoparts/platform/logger"
	"github.com/you-humble/autoparts/platform/tracing"
)

const tracerName = "autoparts/invoice"

type InvoiceRepository interface {
	Create(ctx context.Context, inv *model.Invoice) error
	InvoiceByID(ctx context.Context, id int64) (*model.Invoice, error)
	InvoiceByNumber(ctx context.Context, number string) (*model.Invoice, error)
	ExistsByNumber(ctx context.Context, number string) (bool, error)
	Count(ctx context.Context) (int64, error)
	List(ctx context.Context, filter model.InvoicesFilter) ([]model.Invoice, error)
	UpdateStatus(ctx context.Context, id int64, from, to model.InvoiceStatus, paidAt *time.Time) error
	CountByPeriod(ctx context.Context, from, to time.Time) (int64, error)
	SumPaidTotalByPeriod(ctx context.Context, from, to time.Time) (decimal.Decimal, error)
}

type PartRepository interface {
	PartByIDForUpdate(ctx context.Context, id int64) (*model.Part, error)
	AdjustStock(ctx context.Context, id int64, delta int) (before int, after int, err error)
	AddMovement(ctx context.Context, m *model.StockMovement) error
}

type TxManager interface {
	WithTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type EventSender interface {
	SendInvoiceEvent(ctx context.Context, event model.InvoiceEvent) error
}

type service struct {
	repo           InvoiceRepository
	parts          PartRepository
	tx             TxManager
	events         EventSender
	cfg            Config
	tracer         trace.Tracer
	readDBTimeout  time.Duration
	writeDBTimeout time.Duration
}

func NewInvoiceService(
	repository InvoiceRepository,
	parts PartRepository,
	tx TxManager,
	events EventSender,
	cfg Config,
	readDBTimeout time.Duration,
	writeDBTimeout time.Duration,
) *service {
	return &service{
		repo:           repository,
		parts:          parts,
		tx:             tx,
		events:         events,
		cfg:            cfg.withDefaults(),
		tracer:         tracing.Tracer(tracerName),
		readDBTimeout:  readDBTimeout,
		writeDBTimeout: writeDBTimeout,
	}
}

func (svc *service) List(ctx context.Context) ([]model.Invoice, error) {
	return svc.list(ctx, "invoice.service.List", model.InvoicesFilter{})
}

func (svc *service) SearchByCustomer(ctx context.Context, name string) ([]model.Invoice, error) {
	return svc.list(ctx, "invoice.service.SearchByCustomer", model.InvoicesFilter{CustomerLike: name})
}

// SearchByDocument matches the customer document exactly.
func (svc *service) SearchByDocument(ctx context.Context, document string) ([]model.Invoice, error) {
	return svc.list(ctx, "invoice.service.SearchByDocument", model.InvoicesFilter{CustomerDocument: document})
}

func (svc *service) SearchByStatus(ctx context.Context, status model.InvoiceStatus) ([]model.Invoice, error) {
	const op = "invoice.service.SearchByStatus"

	if !status.Valid() {
		return nil, fmt.Errorf("%s: %w: %q", op, model.ErrInvalidStatus, status)
	}

	return svc.list(ctx, op, model.InvoicesFilter{Status: &status})
}

// SearchByPeriod returns invoices created in [from, to].
func (svc *service) SearchByPeriod(ctx context.Context, from, to time.Time) ([]model.Invoice, error) {
	const op = "invoice.service.SearchByPeriod"

	if from.After(to) {
		return nil, fmt.Errorf("%s: %w: start of period after its end", op, model.ErrValidation)
	}

	return svc.list(ctx, op, model.InvoicesFilter{CreatedFrom: &from, CreatedTo: &to})
}

// SearchByTerm matches term in the customer name or the invoice number.
func (svc *service) SearchByTerm(ctx context.Context, term string) ([]model.Invoice, error) {
	return svc.list(ctx, "invoice.service.SearchByTerm", model.InvoicesFilter{Term: term})
}

func (svc *service) SearchByMinTotal(ctx context.Context, minTotal decimal.Decimal) ([]model.Invoice, error) {
	return svc.list(ctx, "invoice.service.SearchByMinTotal", model.InvoicesFilter{MinTotal: &minTotal})
}

func (svc *service) list(ctx context.Context, op string, filter model.InvoicesFilter) ([]model.Invoice, error) {
	ctx, span := svc.tracer.Start(ctx, op)
	defer span.End()

	ctx, cancel := context.WithTimeout(ctx, svc.readDBTimeout)
	defer cancel()

	invoices, err := svc.repo.List(ctx, filter)
	if err != nil {
		logger.Error(ctx, "repository list invoices", logger.String("op", op), logger.ErrorF(err))
		return nil, fail(span, fmt.Errorf("%s: %w", op, err))
	}

	return invoices, nil
}

func (svc *service) InvoiceByID(ctx context.Context, id int64) (*model.Invoice, error) {
	const op = "invoice.service.InvoiceByID"
	log := logger.With(logger.Int64("invoice_id", id))

	ctx, span := svc.tracer.Start(ctx, op)
	defer span.End()

	ctx, cancel := context.WithTimeout(ctx, svc.readDBTimeout)
	defer cancel()

	inv, err := svc.repo.InvoiceByID(ctx, id)
	if err != nil {
		if !errors.Is(err, model.ErrInvoiceNotFound) {
			log.Error(ctx, "repository invoice by id", logger.ErrorF(err))
		}
		return nil, fail(span, fmt.Errorf("%s: %w", op, err))
	}

	return inv, nil
}

func (svc *service) InvoiceByNumber(ctx context.Context, number string) (*model.Invoice, error) {
	const op = "invoice.service.InvoiceByNumber"
	log := logger.With(logger.String("invoice_number", number))

	ctx, span := svc.tracer.Start(ctx, op)
	defer span.End()

	ctx, cancel := context.WithTimeout(ctx, svc.readDBTimeout)
	defer cancel()

	inv, err := svc.repo.InvoiceByNumber(ctx, number)
	if err != nil {
		if !errors.Is(err, model.ErrInvoiceNotFound) {
			log.Error(ctx, "repository invoice by number", logger.ErrorF(err))
		}
		return nil, fail(span, fmt.Errorf("%s: %w", op, err))
	}

	return inv, nil
}

// publish sends an invoice event. Delivery failures are logged and never
// reach the caller.
func (svc *service) publish(ctx context.Context, t model.InvoiceEventType, inv *model.Invoice) {
	event := model.NewInvoiceEvent(t, inv, svc.cfg.Now())
	if err := svc.events.SendInvoiceEvent(ctx, event); err != nil {
		logger.Warn(ctx, "send invoice event",
			logger.String("event_type", string(t)),
			logger.Int64("invoice_id", inv.ID),
			logger.ErrorF(err),
		)
	}
}

func fail(span trace.Span, err error) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	return err
}

func isClientError(err error) bool {
	for _, target := range []error{
		model.ErrValidation,
		model.ErrPartNotFound,
		model.ErrInvoiceNotFound,
		model.ErrDuplicateInvoiceNumber,
		model.ErrInsufficientStock,
		model.ErrInvalidStatus,
		model.ErrStatusTransition,
		model.ErrInvoiceConflict,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
