package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/you-humble/autoparts/internal/model"
	"github.com/you-humble/autoparts/internal/transport/http/invoice/v1/mocks"
)

var created = time.Date(2026, time.October, 18, 12, 0, 0, 0, time.UTC)

func sampleInvoice(status model.InvoiceStatus) *model.Invoice {
	partID := int64(1)
	return &model.Invoice{
		ID:           1,
		Number:       "FAC-20261018-000001",
		CustomerName: "Juan Perez",
		Subtotal:     decimal.RequireFromString("300"),
		Tax:          decimal.RequireFromString("63"),
		Total:        decimal.RequireFromString("363"),
		Status:       status,
		CreatedAt:    created,
		Items: []model.InvoiceItem{{
			ID:        1,
			PartID:    &partID,
			PartCode:  "FIL001",
			PartName:  "Filtro de Aceite",
			Quantity:  2,
			UnitPrice: decimal.RequireFromString("150"),
			Subtotal:  decimal.RequireFromString("300"),
		}},
	}
}

func TestInvoiceHandler(t *testing.T) {
	t.Parallel()

	loc := time.FixedZone("UTC-3", -3*3600)

	type testCase struct {
		name   string
		method string
		target string
		body   string
		setup  func(svc *mocks.MockInvoiceService)
		code   int
		check  func(t *testing.T, w *httptest.ResponseRecorder)
	}

	tests := []testCase{
		{
			name:   "get by id",
			method: http.MethodGet,
			target: "/api/facturas/1",
			setup: func(svc *mocks.MockInvoiceService) {
				svc.On("InvoiceByID", mock.Anything, int64(1)).Return(sampleInvoice(model.StatusPending), nil).Once()
			},
			code: http.StatusOK,
			check: func(t *testing.T, w *httptest.ResponseRecorder) {
				var got map[string]any
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
				assert.Equal(t, "PENDIENTE", got["estado"])
				assert.Equal(t, 363.0, got["total"])
				assert.Nil(t, got["fechaPago"])
			},
		},
		{
			name:   "get by number not found",
			method: http.MethodGet,
			target: "/api/facturas/numero/FAC-X",
			setup: func(svc *mocks.MockInvoiceService) {
				svc.On("InvoiceByNumber", mock.Anything, "FAC-X").Return(nil, model.ErrInvoiceNotFound).Once()
			},
			code: http.StatusNotFound,
		},
		{
			name:   "by customer name",
			method: http.MethodGet,
			target: "/api/facturas/cliente?nombre=juan",
			setup: func(svc *mocks.MockInvoiceService) {
				svc.On("SearchByCustomer", mock.Anything, "juan").Return([]model.Invoice{*sampleInvoice(model.StatusPaid)}, nil).Once()
			},
			code: http.StatusOK,
		},
		{
			name:   "by customer document",
			method: http.MethodGet,
			target: "/api/facturas/cliente?documento=123",
			setup: func(svc *mocks.MockInvoiceService) {
				svc.On("SearchByDocument", mock.Anything, "123").Return([]model.Invoice{}, nil).Once()
			},
			code: http.StatusOK,
		},
		{
			name:   "by customer without filter",
			method: http.MethodGet,
			target: "/api/facturas/cliente",
			code:   http.StatusBadRequest,
		},
		{
			name:   "by wire status",
			method: http.MethodGet,
			target: "/api/facturas/estado/pagada",
			setup: func(svc *mocks.MockInvoiceService) {
				svc.On("SearchByStatus", mock.Anything, model.StatusPaid).Return([]model.Invoice{}, nil).Once()
			},
			code: http.StatusOK,
		},
		{
			name:   "by unknown status",
			method: http.MethodGet,
			target: "/api/facturas/estado/PERDIDA",
			code:   http.StatusBadRequest,
		},
		{
			name:   "by period with local date-times",
			method: http.MethodGet,
			target: "/api/facturas/periodo?fechaInicio=2026-10-01T00:00:00&fechaFin=2026-10-31T23:59:59",
			setup: func(svc *mocks.MockInvoiceService) {
				svc.On("SearchByPeriod", mock.Anything,
					mock.MatchedBy(func(from time.Time) bool {
						return from.Equal(time.Date(2026, 10, 1, 3, 0, 0, 0, time.UTC))
					}),
					mock.Anything,
				).Return([]model.Invoice{}, nil).Once()
			},
			code: http.StatusOK,
		},
		{
			name:   "by period missing end",
			method: http.MethodGet,
			target: "/api/facturas/periodo?fechaInicio=2026-10-01T00:00:00",
			code:   http.StatusBadRequest,
		},
		{
			name:   "min total",
			method: http.MethodGet,
			target: "/api/facturas/monto-minimo?montoMinimo=100.5",
			setup: func(svc *mocks.MockInvoiceService) {
				svc.On("SearchByMinTotal", mock.Anything,
					mock.MatchedBy(func(d decimal.Decimal) bool { return d.Equal(decimal.RequireFromString("100.5")) }),
				).Return([]model.Invoice{}, nil).Once()
			},
			code: http.StatusOK,
		},
		{
			name:   "create",
			method: http.MethodPost,
			target: "/api/facturas",
			body:   `{"clienteNombre":"Juan Perez","clienteEmail":"juan@example.com","items":[{"piezaId":1,"cantidad":2}]}`,
			setup: func(svc *mocks.MockInvoiceService) {
				svc.On("Create", mock.Anything, mock.MatchedBy(func(p model.CreateInvoiceParams) bool {
					return p.CustomerName == "Juan Perez" &&
						p.Number == "" &&
						len(p.Items) == 1 &&
						p.Items[0].PartID == 1 &&
						p.Items[0].Quantity == 2
				})).Return(sampleInvoice(model.StatusPending), nil).Once()
			},
			code: http.StatusCreated,
			check: func(t *testing.T, w *httptest.ResponseRecorder) {
				assert.Contains(t, w.Body.String(), `"numeroFactura":"FAC-20261018-000001"`)
				assert.Contains(t, w.Body.String(), `"impuesto":63.00`)
			},
		},
		{
			name:   "create without items",
			method: http.MethodPost,
			target: "/api/facturas",
			body:   `{"clienteNombre":"Juan Perez","items":[]}`,
			code:   http.StatusBadRequest,
		},
		{
			name:   "create with bad email",
			method: http.MethodPost,
			target: "/api/facturas",
			body:   `{"clienteNombre":"Juan","clienteEmail":"nope","items":[{"piezaId":1,"cantidad":1}]}`,
			code:   http.StatusBadRequest,
		},
		{
			name:   "create with insufficient stock",
			method: http.MethodPost,
			target: "/api/facturas",
			body:   `{"clienteNombre":"Juan","items":[{"piezaId":1,"cantidad":1000}]}`,
			setup: func(svc *mocks.MockInvoiceService) {
				svc.On("Create", mock.Anything, mock.Anything).Return(nil, model.ErrInsufficientStock).Once()
			},
			code: http.StatusBadRequest,
		},
		{
			name:   "create with missing part",
			method: http.MethodPost,
			target: "/api/facturas",
			body:   `{"clienteNombre":"Juan","items":[{"piezaId":404,"cantidad":1}]}`,
			setup: func(svc *mocks.MockInvoiceService) {
				svc.On("Create", mock.Anything, mock.Anything).Return(nil, model.ErrPartNotFound).Once()
			},
			code: http.StatusNotFound,
		},
		{
			name:   "set status",
			method: http.MethodPut,
			target: "/api/facturas/1/estado?nuevoEstado=PAGADA",
			setup: func(svc *mocks.MockInvoiceService) {
				inv := sampleInvoice(model.StatusPaid)
				inv.PaidAt = &created
				svc.On("SetStatus", mock.Anything, int64(1), model.StatusPaid).Return(inv, nil).Once()
			},
			code: http.StatusOK,
			check: func(t *testing.T, w *httptest.ResponseRecorder) {
				assert.Contains(t, w.Body.String(), `"estado":"PAGADA"`)
				assert.Contains(t, w.Body.String(), `"fechaPago":"2026-10-18T12:00:00Z"`)
			},
		},
		{
			name:   "set status with bad value",
			method: http.MethodPut,
			target: "/api/facturas/1/estado?nuevoEstado=LOST",
			code:   http.StatusBadRequest,
		},
		{
			name:   "forbidden transition",
			method: http.MethodPut,
			target: "/api/facturas/1/estado?nuevoEstado=PENDIENTE",
			setup: func(svc *mocks.MockInvoiceService) {
				svc.On("SetStatus", mock.Anything, int64(1), model.StatusPending).Return(nil, model.ErrStatusTransition).Once()
			},
			code: http.StatusBadRequest,
		},
		{
			name:   "cancel",
			method: http.MethodPut,
			target: "/api/facturas/1/anular",
			setup: func(svc *mocks.MockInvoiceService) {
				svc.On("Cancel", mock.Anything, int64(1)).Return(sampleInvoice(model.StatusVoided), nil).Once()
			},
			code: http.StatusOK,
		},
		{
			name:   "cancel missing invoice",
			method: http.MethodPut,
			target: "/api/facturas/9/anular",
			setup: func(svc *mocks.MockInvoiceService) {
				svc.On("Cancel", mock.Anything, int64(9)).Return(nil, model.ErrInvoiceNotFound).Once()
			},
			code: http.StatusNotFound,
		},
		{
			name:   "generate number",
			method: http.MethodGet,
			target: "/api/facturas/generar-numero",
			setup: func(svc *mocks.MockInvoiceService) {
				svc.On("GenerateNumber", mock.Anything).Return("FAC-20261018-000002", nil).Once()
			},
			code: http.StatusOK,
			check: func(t *testing.T, w *httptest.ResponseRecorder) {
				assert.Equal(t, "FAC-20261018-000002", w.Body.String())
				assert.True(t, strings.HasPrefix(w.Header().Get("Content-Type"), "text/plain"))
			},
		},
		{
			name:   "stats",
			method: http.MethodGet,
			target: "/api/facturas/estadisticas/periodo?fechaInicio=2026-10-01T00:00:00Z&fechaFin=2026-10-31T00:00:00Z",
			setup: func(svc *mocks.MockInvoiceService) {
				svc.On("Stats", mock.Anything, mock.Anything, mock.Anything).
					Return(model.InvoiceStats{Count: 3, PaidTotal: decimal.RequireFromString("484")}, nil).
					Once()
			},
			code: http.StatusOK,
			check: func(t *testing.T, w *httptest.ResponseRecorder) {
				assert.JSONEq(t, `{"cantidadFacturas":3,"totalFacturasPagadas":484.00}`, w.Body.String())
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			svc := mocks.NewMockInvoiceService(t)
			if tt.setup != nil {
				tt.setup(svc)
			}

			r := chi.NewRouter()
			NewInvoiceHandler(svc, loc).Register(r)

			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(tt.method, tt.target, strings.NewReader(tt.body)))

			assert.Equal(t, tt.code, w.Code, w.Body.String())
			if tt.check != nil {
				tt.check(t, w)
			}
		})
	}
}
