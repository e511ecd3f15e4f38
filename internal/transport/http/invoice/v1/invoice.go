package http

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/you-humble/autoparts/internal/converter"
	"github.com/you-humble/autoparts/internal/model"
	apiv1 "github.com/you-humble/autoparts/internal/transport/http/api/v1"
	"github.com/you-humble/autoparts/internal/transport/http/rest"
)

type InvoiceService interface {
	List(ctx context.Context) ([]model.Invoice, error)
	InvoiceByID(ctx context.Context, id int64) (*model.Invoice, error)
	InvoiceByNumber(ctx context.Context, number string) (*model.Invoice, error)
	SearchByCustomer(ctx context.Context, name string) ([]model.Invoice, error)
	SearchByDocument(ctx context.Context, document string) ([]model.Invoice, error)
	SearchByStatus(ctx context.Context, status model.InvoiceStatus) ([]model.Invoice, error)
	SearchByPeriod(ctx context.Context, from, to time.Time) ([]model.Invoice, error)
	SearchByTerm(ctx context.Context, term string) ([]model.Invoice, error)
	SearchByMinTotal(ctx context.Context, minTotal decimal.Decimal) ([]model.Invoice, error)
	Create(ctx context.Context, params model.CreateInvoiceParams) (*model.Invoice, error)
	SetStatus(ctx context.Context, id int64, status model.InvoiceStatus) (*model.Invoice, error)
	Cancel(ctx context.Context, id int64) (*model.Invoice, error)
	GenerateNumber(ctx context.Context) (string, error)
	Stats(ctx context.Context, from, to time.Time) (model.InvoiceStats, error)
}

type handler struct {
	svc InvoiceService
	// Zone of date-times sent without an offset.
	loc *time.Location
}

func NewInvoiceHandler(service InvoiceService, loc *time.Location) *handler {
	if loc == nil {
		loc = time.UTC
	}
	return &handler{svc: service, loc: loc}
}

// Register mounts the invoices API under /api/facturas.
func (h *handler) Register(r chi.Router) {
	r.Route("/api/facturas", func(r chi.Router) {
		r.Get("/", h.List)
		r.Post("/", h.Create)
		r.Get("/numero/{numero}", h.GetByNumber)
		r.Get("/cliente", h.SearchByCustomer)
		r.Get("/estado/{estado}", h.SearchByStatus)
		r.Get("/periodo", h.SearchByPeriod)
		r.Get("/buscar", h.SearchByTerm)
		r.Get("/monto-minimo", h.SearchByMinTotal)
		r.Get("/generar-numero", h.GenerateNumber)
		r.Get("/estadisticas/periodo", h.Stats)

		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", h.GetByID)
			r.Put("/estado", h.SetStatus)
			r.Put("/anular", h.Cancel)
		})
	})
}

func (h *handler) List(w http.ResponseWriter, r *http.Request) {
	invoices, err := h.svc.List(r.Context())
	h.writeList(w, r, invoices, err)
}

func (h *handler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := rest.PathID(r, "id")
	if err != nil {
		rest.WriteError(w, http.StatusBadRequest, "invalid_id", err.Error(), nil) // 400
		return
	}

	inv, err := h.svc.InvoiceByID(r.Context(), id)
	h.writeOne(w, r, http.StatusOK, inv, err)
}

func (h *handler) GetByNumber(w http.ResponseWriter, r *http.Request) {
	number := strings.TrimSpace(chi.URLParam(r, "numero"))
	if number == "" {
		rest.WriteError(w, http.StatusBadRequest, "invalid_number", "invoice number is required", nil) // 400
		return
	}

	inv, err := h.svc.InvoiceByNumber(r.Context(), number)
	h.writeOne(w, r, http.StatusOK, inv, err)
}

// SearchByCustomer filters by a name substring (?nombre=) or by the exact
// customer document (?documento=).
func (h *handler) SearchByCustomer(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	var (
		invoices []model.Invoice
		err      error
	)
	switch {
	case q.Has("documento"):
		invoices, err = h.svc.SearchByDocument(r.Context(), q.Get("documento"))
	case q.Has("nombre"):
		invoices, err = h.svc.SearchByCustomer(r.Context(), q.Get("nombre"))
	default:
		rest.WriteError(w, http.StatusBadRequest, "validation_error", "nombre or documento is required", nil) // 400
		return
	}

	h.writeList(w, r, invoices, err)
}

func (h *handler) SearchByStatus(w http.ResponseWriter, r *http.Request) {
	status, err := model.ParseStatus(chi.URLParam(r, "estado"))
	if err != nil {
		rest.WriteServiceError(r.Context(), w, err)
		return
	}

	invoices, err := h.svc.SearchByStatus(r.Context(), status)
	h.writeList(w, r, invoices, err)
}

func (h *handler) SearchByPeriod(w http.ResponseWriter, r *http.Request) {
	from, to, err := h.period(r)
	if err != nil {
		rest.WriteServiceError(r.Context(), w, err)
		return
	}

	invoices, err := h.svc.SearchByPeriod(r.Context(), from, to)
	h.writeList(w, r, invoices, err)
}

func (h *handler) SearchByTerm(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	if !q.Has("termino") {
		rest.WriteError(w, http.StatusBadRequest, "validation_error", "termino is required", nil) // 400
		return
	}

	invoices, err := h.svc.SearchByTerm(r.Context(), q.Get("termino"))
	h.writeList(w, r, invoices, err)
}

func (h *handler) SearchByMinTotal(w http.ResponseWriter, r *http.Request) {
	minTotal, err := rest.QueryDecimal(r, "montoMinimo")
	if err != nil {
		rest.WriteServiceError(r.Context(), w, err)
		return
	}

	invoices, err := h.svc.SearchByMinTotal(r.Context(), minTotal)
	h.writeList(w, r, invoices, err)
}

func (h *handler) Create(w http.ResponseWriter, r *http.Request) {
	var req apiv1.CreateInvoiceRequest
	if !rest.DecodeJSON(w, r, &req) {
		return
	}

	inv, err := h.svc.Create(r.Context(), converter.CreateInvoiceRequestToParams(&req))
	h.writeOne(w, r, http.StatusCreated, inv, err)
}

func (h *handler) SetStatus(w http.ResponseWriter, r *http.Request) {
	id, err := rest.PathID(r, "id")
	if err != nil {
		rest.WriteError(w, http.StatusBadRequest, "invalid_id", err.Error(), nil) // 400
		return
	}

	status, err := model.ParseStatus(r.URL.Query().Get("nuevoEstado"))
	if err != nil {
		rest.WriteServiceError(r.Context(), w, err)
		return
	}

	inv, err := h.svc.SetStatus(r.Context(), id, status)
	h.writeOne(w, r, http.StatusOK, inv, err)
}

func (h *handler) Cancel(w http.ResponseWriter, r *http.Request) {
	id, err := rest.PathID(r, "id")
	if err != nil {
		rest.WriteError(w, http.StatusBadRequest, "invalid_id", err.Error(), nil) // 400
		return
	}

	inv, err := h.svc.Cancel(r.Context(), id)
	h.writeOne(w, r, http.StatusOK, inv, err)
}

func (h *handler) GenerateNumber(w http.ResponseWriter, r *http.Request) {
	number, err := h.svc.GenerateNumber(r.Context())
	if err != nil {
		rest.WriteServiceError(r.Context(), w, err)
		return
	}

	rest.WriteText(w, http.StatusOK, number)
}

func (h *handler) Stats(w http.ResponseWriter, r *http.Request) {
	from, to, err := h.period(r)
	if err != nil {
		rest.WriteServiceError(r.Context(), w, err)
		return
	}

	stats, err := h.svc.Stats(r.Context(), from, to)
	if err != nil {
		rest.WriteServiceError(r.Context(), w, err)
		return
	}

	rest.WriteJSON(w, http.StatusOK, converter.StatsToAPI(stats))
}

func (h *handler) period(r *http.Request) (time.Time, time.Time, error) {
	from, err := rest.QueryTime(r, "fechaInicio", h.loc)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	to, err := rest.QueryTime(r, "fechaFin", h.loc)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return from, to, nil
}

func (h *handler) writeOne(w http.ResponseWriter, r *http.Request, status int, inv *model.Invoice, err error) {
	if err != nil {
		rest.WriteServiceError(r.Context(), w, err)
		return
	}
	rest.WriteJSON(w, status, converter.InvoiceToAPI(inv))
}

func (h *handler) writeList(w http.ResponseWriter, r *http.Request, invoices []model.Invoice, err error) {
	if err != nil {
		rest.WriteServiceError(r.Context(), w, err)
		return
	}
	rest.WriteJSON(w, http.StatusOK, converter.InvoicesToAPI(invoices))
}
