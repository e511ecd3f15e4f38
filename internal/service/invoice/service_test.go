package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/you-humble/autoparts/internal/model"
	"github.com/you-humble/autoparts/internal/service/invoice/mocks"
)

var fixedNow = time.Date(2026, time.October, 18, 10, 30, 0, 0, time.UTC)

type deps struct {
	repository *mocks.MockInvoiceRepository
	parts      *mocks.MockPartRepository
	tx         *mocks.MockTxManager
	events     *mocks.MockEventSender
}

func newDeps(t *testing.T) deps {
	return deps{
		repository: mocks.NewMockInvoiceRepository(t),
		parts:      mocks.NewMockPartRepository(t),
		tx:         mocks.NewMockTxManager(t),
		events:     mocks.NewMockEventSender(t),
	}
}

func newSvc(d deps) *service {
	return NewInvoiceService(d.repository, d.parts, d.tx, d.events, Config{
		TaxRate: decimal.RequireFromString("0.21"),
		Now:     func() time.Time { return fixedNow },
	}, time.Second, time.Second)
}

func passThroughTx(d deps) {
	d.tx.
		On("WithTx", mock.Anything, mock.Anything).
		Return(func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		}).
		Once()
}

func expectEvent(d deps, t model.InvoiceEventType) {
	d.events.
		On("SendInvoiceEvent", mock.Anything, mock.MatchedBy(func(e model.InvoiceEvent) bool {
			return e.Type == t
		})).
		Return(nil).
		Once()
}

func TestServiceCreate(t *testing.T) {
	t.Parallel()

	filter := &model.Part{
		ID:    1,
		Code:  "FIL001",
		Name:  "Filtro de Aceite",
		Price: decimal.RequireFromString("150"),
		Stock: 50,
	}
	customer := gofakeit.Name()

	valid := model.CreateInvoiceParams{
		CustomerName:     customer,
		CustomerDocument: "12345678",
		Items:            []model.CreateInvoiceItemParams{{PartID: 1, Quantity: 2}},
	}

	type testCase struct {
		name   string
		params model.CreateInvoiceParams
		setup  func(d deps)
		assert func(t *testing.T, res *model.Invoice, err error, d deps)
	}

	tests := []testCase{
		{
			name:   "validation error: no customer",
			params: model.CreateInvoiceParams{Items: valid.Items},
			assert: func(t *testing.T, res *model.Invoice, err error, d deps) {
				assert.ErrorIs(t, err, model.ErrValidation)
				assert.Nil(t, res)

				d.tx.AssertNotCalled(t, "WithTx", mock.Anything, mock.Anything)
			},
		},
		{
			name:   "validation error: no items",
			params: model.CreateInvoiceParams{CustomerName: customer},
			assert: func(t *testing.T, res *model.Invoice, err error, d deps) {
				assert.ErrorIs(t, err, model.ErrValidation)
				assert.Nil(t, res)
			},
		},
		{
			name: "validation error: zero quantity",
			params: model.CreateInvoiceParams{
				CustomerName: customer,
				Items:        []model.CreateInvoiceItemParams{{PartID: 1, Quantity: 0}},
			},
			assert: func(t *testing.T, res *model.Invoice, err error, d deps) {
				assert.ErrorIs(t, err, model.ErrValidation)
				assert.Nil(t, res)
			},
		},
		{
			name: "duplicate explicit number",
			params: func() model.CreateInvoiceParams {
				p := valid
				p.Number = "FAC-1"
				return p
			}(),
			setup: func(d deps) {
				passThroughTx(d)
				d.repository.On("ExistsByNumber", mock.Anything, "FAC-1").Return(true, nil).Once()
			},
			assert: func(t *testing.T, res *model.Invoice, err error, d deps) {
				assert.ErrorIs(t, err, model.ErrDuplicateInvoiceNumber)
				assert.Nil(t, res)

				d.parts.AssertNotCalled(t, "PartByIDForUpdate", mock.Anything, mock.Anything)
			},
		},
		{
			name:   "part not found",
			params: valid,
			setup: func(d deps) {
				passThroughTx(d)
				d.repository.On("Count", mock.Anything).Return(int64(0), nil).Once()
				d.repository.On("ExistsByNumber", mock.Anything, "FAC-20261018-000001").Return(false, nil).Once()
				d.parts.On("PartByIDForUpdate", mock.Anything, int64(1)).Return(nil, model.ErrPartNotFound).Once()
			},
			assert: func(t *testing.T, res *model.Invoice, err error, d deps) {
				assert.ErrorIs(t, err, model.ErrPartNotFound)
				assert.Nil(t, res)

				d.repository.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
				d.events.AssertNotCalled(t, "SendInvoiceEvent", mock.Anything, mock.Anything)
			},
		},
		{
			name:   "insufficient stock",
			params: valid,
			setup: func(d deps) {
				passThroughTx(d)
				d.repository.On("Count", mock.Anything).Return(int64(0), nil).Once()
				d.repository.On("ExistsByNumber", mock.Anything, mock.Anything).Return(false, nil).Once()
				d.parts.On("PartByIDForUpdate", mock.Anything, int64(1)).Return(filter, nil).Once()
				d.parts.On("AdjustStock", mock.Anything, int64(1), -2).Return(0, 0, model.ErrInsufficientStock).Once()
			},
			assert: func(t *testing.T, res *model.Invoice, err error, d deps) {
				assert.ErrorIs(t, err, model.ErrInsufficientStock)
				assert.Nil(t, res)

				d.repository.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
			},
		},
		{
			name:   "success: generated number, snapshots and totals",
			params: valid,
			setup: func(d deps) {
				passThroughTx(d)
				d.repository.On("Count", mock.Anything).Return(int64(4), nil).Once()
				d.repository.On("ExistsByNumber", mock.Anything, "FAC-20261018-000005").Return(false, nil).Once()
				d.parts.On("PartByIDForUpdate", mock.Anything, int64(1)).Return(filter, nil).Once()
				d.parts.On("AdjustStock", mock.Anything, int64(1), -2).Return(50, 48, nil).Once()
				d.repository.
					On("Create", mock.Anything, mock.MatchedBy(func(inv *model.Invoice) bool {
						return inv.Status == model.StatusPending &&
							inv.CreatedAt.Equal(fixedNow) &&
							len(inv.Items) == 1 &&
							inv.Items[0].PartCode == "FIL001" &&
							inv.Items[0].UnitPrice.Equal(decimal.RequireFromString("150"))
					})).
					Return(func(_ context.Context, inv *model.Invoice) error {
						inv.ID = 10
						return nil
					}).
					Once()
				d.parts.
					On("AddMovement", mock.Anything, mock.MatchedBy(func(m *model.StockMovement) bool {
						return m.Kind == model.MovementInvoiceSale &&
							m.Delta == -2 &&
							m.StockBefore == 50 &&
							m.StockAfter == 48 &&
							m.InvoiceID != nil && *m.InvoiceID == 10
					})).
					Return(nil).
					Once()
				expectEvent(d, model.EventInvoiceCreated)
			},
			assert: func(t *testing.T, res *model.Invoice, err error, d deps) {
				require.NoError(t, err)
				require.NotNil(t, res)

				assert.Equal(t, int64(10), res.ID)
				assert.Equal(t, "FAC-20261018-000005", res.Number)
				assert.Equal(t, "300.00", res.Subtotal.StringFixed(2))
				assert.Equal(t, "63.00", res.Tax.StringFixed(2))
				assert.Equal(t, "363.00", res.Total.StringFixed(2))
				assert.Equal(t, "300.00", res.Items[0].Subtotal.StringFixed(2))
			},
		},
		{
			name: "event failure does not fail the invoice",
			params: func() model.CreateInvoiceParams {
				p := valid
				p.Number = "MANUAL-1"
				return p
			}(),
			setup: func(d deps) {
				passThroughTx(d)
				d.repository.On("ExistsByNumber", mock.Anything, "MANUAL-1").Return(false, nil).Once()
				d.parts.On("PartByIDForUpdate", mock.Anything, int64(1)).Return(filter, nil).Once()
				d.parts.On("AdjustStock", mock.Anything, int64(1), -2).Return(50, 48, nil).Once()
				d.repository.On("Create", mock.Anything, mock.Anything).Return(nil).Once()
				d.parts.On("AddMovement", mock.Anything, mock.Anything).Return(nil).Once()
				d.events.On("SendInvoiceEvent", mock.Anything, mock.Anything).Return(errors.New("broker down")).Once()
			},
			assert: func(t *testing.T, res *model.Invoice, err error, d deps) {
				require.NoError(t, err)
				assert.Equal(t, "MANUAL-1", res.Number)

				d.repository.AssertNotCalled(t, "Count", mock.Anything)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			d := newDeps(t)
			if tt.setup != nil {
				tt.setup(d)
			}

			res, err := newSvc(d).Create(context.Background(), tt.params)
			tt.assert(t, res, err, d)
		})
	}
}

func TestServiceSetStatus(t *testing.T) {
	t.Parallel()

	invoice := func(status model.InvoiceStatus) *model.Invoice {
		return &model.Invoice{ID: 5, Number: "FAC-5", Status: status, Total: decimal.NewFromInt(121)}
	}

	type testCase struct {
		name   string
		status model.InvoiceStatus
		setup  func(d deps)
		assert func(t *testing.T, res *model.Invoice, err error, d deps)
	}

	tests := []testCase{
		{
			name:   "unknown status",
			status: model.InvoiceStatus("LOST"),
			assert: func(t *testing.T, res *model.Invoice, err error, d deps) {
				assert.ErrorIs(t, err, model.ErrInvalidStatus)
				assert.Nil(t, res)
			},
		},
		{
			name:   "invoice not found",
			status: model.StatusPaid,
			setup: func(d deps) {
				d.repository.On("InvoiceByID", mock.Anything, int64(5)).Return(nil, model.ErrInvoiceNotFound).Once()
			},
			assert: func(t *testing.T, res *model.Invoice, err error, d deps) {
				assert.ErrorIs(t, err, model.ErrInvoiceNotFound)
				assert.Nil(t, res)
			},
		},
		{
			name:   "same status is a no-op",
			status: model.StatusPending,
			setup: func(d deps) {
				d.repository.On("InvoiceByID", mock.Anything, int64(5)).Return(invoice(model.StatusPending), nil).Once()
			},
			assert: func(t *testing.T, res *model.Invoice, err error, d deps) {
				require.NoError(t, err)
				assert.Equal(t, model.StatusPending, res.Status)

				d.repository.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
				d.events.AssertNotCalled(t, "SendInvoiceEvent", mock.Anything, mock.Anything)
			},
		},
		{
			name:   "paid invoice cannot go back to pending",
			status: model.StatusPending,
			setup: func(d deps) {
				d.repository.On("InvoiceByID", mock.Anything, int64(5)).Return(invoice(model.StatusPaid), nil).Once()
			},
			assert: func(t *testing.T, res *model.Invoice, err error, d deps) {
				assert.ErrorIs(t, err, model.ErrStatusTransition)
				assert.Nil(t, res)
			},
		},
		{
			name:   "pending to paid stamps the payment time",
			status: model.StatusPaid,
			setup: func(d deps) {
				d.repository.On("InvoiceByID", mock.Anything, int64(5)).Return(invoice(model.StatusPending), nil).Once()
				d.repository.
					On("UpdateStatus", mock.Anything, int64(5), model.StatusPending, model.StatusPaid,
						mock.MatchedBy(func(at *time.Time) bool { return at != nil && at.Equal(fixedNow) })).
					Return(nil).
					Once()
				expectEvent(d, model.EventInvoiceStatusChanged)
			},
			assert: func(t *testing.T, res *model.Invoice, err error, d deps) {
				require.NoError(t, err)
				assert.Equal(t, model.StatusPaid, res.Status)
				require.NotNil(t, res.PaidAt)
				assert.True(t, res.PaidAt.Equal(fixedNow))
			},
		},
		{
			name:   "overdue back to pending",
			status: model.StatusPending,
			setup: func(d deps) {
				d.repository.On("InvoiceByID", mock.Anything, int64(5)).Return(invoice(model.StatusOverdue), nil).Once()
				d.repository.
					On("UpdateStatus", mock.Anything, int64(5), model.StatusOverdue, model.StatusPending, (*time.Time)(nil)).
					Return(nil).
					Once()
				expectEvent(d, model.EventInvoiceStatusChanged)
			},
			assert: func(t *testing.T, res *model.Invoice, err error, d deps) {
				require.NoError(t, err)
				assert.Equal(t, model.StatusPending, res.Status)
				assert.Nil(t, res.PaidAt)
			},
		},
		{
			name:   "concurrent change surfaces as conflict",
			status: model.StatusOverdue,
			setup: func(d deps) {
				d.repository.On("InvoiceByID", mock.Anything, int64(5)).Return(invoice(model.StatusPending), nil).Once()
				d.repository.
					On("UpdateStatus", mock.Anything, int64(5), model.StatusPending, model.StatusOverdue, mock.Anything).
					Return(model.ErrInvoiceConflict).
					Once()
			},
			assert: func(t *testing.T, res *model.Invoice, err error, d deps) {
				assert.ErrorIs(t, err, model.ErrInvoiceConflict)
				assert.Nil(t, res)
			},
		},
		{
			name:   "voided delegates to cancel",
			status: model.StatusVoided,
			setup: func(d deps) {
				passThroughTx(d)
				d.repository.On("InvoiceByID", mock.Anything, int64(5)).Return(invoice(model.StatusPending), nil).Once()
				d.repository.
					On("UpdateStatus", mock.Anything, int64(5), model.StatusPending, model.StatusVoided, (*time.Time)(nil)).
					Return(nil).
					Once()
				expectEvent(d, model.EventInvoiceVoided)
			},
			assert: func(t *testing.T, res *model.Invoice, err error, d deps) {
				require.NoError(t, err)
				assert.Equal(t, model.StatusVoided, res.Status)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			d := newDeps(t)
			if tt.setup != nil {
				tt.setup(d)
			}

			res, err := newSvc(d).SetStatus(context.Background(), 5, tt.status)
			tt.assert(t, res, err, d)
		})
	}
}

func TestServiceCancel(t *testing.T) {
	t.Parallel()

	partA, partB := int64(1), int64(2)
	withItems := func(status model.InvoiceStatus) *model.Invoice {
		return &model.Invoice{
			ID:     9,
			Number: "FAC-9",
			Status: status,
			Items: []model.InvoiceItem{
				{PartID: &partA, Quantity: 2},
				{PartID: &partB, Quantity: 1},
				{PartID: nil, Quantity: 4},
			},
		}
	}

	type testCase struct {
		name   string
		setup  func(d deps)
		assert func(t *testing.T, res *model.Invoice, err error, d deps)
	}

	tests := []testCase{
		{
			name: "paid invoice is a conflict",
			setup: func(d deps) {
				passThroughTx(d)
				d.repository.On("InvoiceByID", mock.Anything, int64(9)).Return(withItems(model.StatusPaid), nil).Once()
			},
			assert: func(t *testing.T, res *model.Invoice, err error, d deps) {
				assert.ErrorIs(t, err, model.ErrInvoiceConflict)
				assert.Nil(t, res)

				d.parts.AssertNotCalled(t, "AdjustStock", mock.Anything, mock.Anything, mock.Anything)
			},
		},
		{
			name: "double cancel is a conflict",
			setup: func(d deps) {
				passThroughTx(d)
				d.repository.On("InvoiceByID", mock.Anything, int64(9)).Return(withItems(model.StatusVoided), nil).Once()
			},
			assert: func(t *testing.T, res *model.Invoice, err error, d deps) {
				assert.ErrorIs(t, err, model.ErrInvoiceConflict)
				assert.Nil(t, res)

				d.repository.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
			},
		},
		{
			name: "invoice not found",
			setup: func(d deps) {
				passThroughTx(d)
				d.repository.On("InvoiceByID", mock.Anything, int64(9)).Return(nil, model.ErrInvoiceNotFound).Once()
			},
			assert: func(t *testing.T, res *model.Invoice, err error, d deps) {
				assert.ErrorIs(t, err, model.ErrInvoiceNotFound)
				assert.Nil(t, res)
			},
		},
		{
			name: "restores stock and skips deleted parts",
			setup: func(d deps) {
				passThroughTx(d)
				d.repository.On("InvoiceByID", mock.Anything, int64(9)).Return(withItems(model.StatusOverdue), nil).Once()
				d.repository.
					On("UpdateStatus", mock.Anything, int64(9), model.StatusOverdue, model.StatusVoided, (*time.Time)(nil)).
					Return(nil).
					Once()
				d.parts.On("AdjustStock", mock.Anything, partA, 2).Return(3, 5, nil).Once()
				d.parts.On("AdjustStock", mock.Anything, partB, 1).Return(0, 0, model.ErrPartNotFound).Once()
				d.parts.
					On("AddMovement", mock.Anything, mock.MatchedBy(func(m *model.StockMovement) bool {
						return m.PartID == partA &&
							m.Kind == model.MovementInvoiceVoid &&
							m.Delta == 2 &&
							m.StockBefore == 3 &&
							m.StockAfter == 5 &&
							*m.InvoiceID == 9
					})).
					Return(nil).
					Once()
				expectEvent(d, model.EventInvoiceVoided)
			},
			assert: func(t *testing.T, res *model.Invoice, err error, d deps) {
				require.NoError(t, err)
				assert.Equal(t, model.StatusVoided, res.Status)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			d := newDeps(t)
			tt.setup(d)

			res, err := newSvc(d).Cancel(context.Background(), 9)
			tt.assert(t, res, err, d)
		})
	}
}

func TestServiceGenerateNumber(t *testing.T) {
	t.Parallel()

	t.Run("default format", func(t *testing.T) {
		t.Parallel()

		d := newDeps(t)
		d.repository.On("Count", mock.Anything).Return(int64(0), nil).Once()

		number, err := newSvc(d).GenerateNumber(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "FAC-20261018-000001", number)
	})

	t.Run("date follows the configured zone", func(t *testing.T) {
		t.Parallel()

		d := newDeps(t)
		d.repository.On("Count", mock.Anything).Return(int64(1233), nil).Once()

		svc := NewInvoiceService(d.repository, d.parts, d.tx, d.events, Config{
			Prefix:   "INV",
			SeqWidth: 4,
			Location: time.FixedZone("UTC+14", 14*3600),
			Now:      func() time.Time { return fixedNow },
		}, time.Second, time.Second)

		number, err := svc.GenerateNumber(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "INV-20261019-1234", number)
	})

	t.Run("count failure", func(t *testing.T) {
		t.Parallel()

		d := newDeps(t)
		d.repository.On("Count", mock.Anything).Return(int64(0), errors.New("db down")).Once()

		number, err := newSvc(d).GenerateNumber(context.Background())
		require.Error(t, err)
		assert.Empty(t, number)
	})
}

func TestServiceStats(t *testing.T) {
	t.Parallel()

	from := fixedNow.Add(-24 * time.Hour)

	t.Run("inverted period", func(t *testing.T) {
		t.Parallel()

		d := newDeps(t)
		_, err := newSvc(d).Stats(context.Background(), fixedNow, from)
		assert.ErrorIs(t, err, model.ErrValidation)
	})

	t.Run("count and paid total", func(t *testing.T) {
		t.Parallel()

		d := newDeps(t)
		d.repository.On("CountByPeriod", mock.Anything, from, fixedNow).Return(int64(3), nil).Once()
		d.repository.On("SumPaidTotalByPeriod", mock.Anything, from, fixedNow).Return(decimal.RequireFromString("484.00"), nil).Once()

		stats, err := newSvc(d).Stats(context.Background(), from, fixedNow)
		require.NoError(t, err)
		assert.Equal(t, int64(3), stats.Count)
		assert.Equal(t, "484.00", stats.PaidTotal.StringFixed(2))
	})
}

func TestServiceSearchByPeriod(t *testing.T) {
	t.Parallel()

	d := newDeps(t)
	res, err := newSvc(d).SearchByPeriod(context.Background(), fixedNow, fixedNow.Add(-time.Minute))

	assert.ErrorIs(t, err, model.ErrValidation)
	assert.Nil(t, res)
}
