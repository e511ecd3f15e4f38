package http

import (
	"context"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/you-humble/autoparts/internal/converter"
	"github.com/you-humble/autoparts/internal/model"
	apiv1 "github.com/you-humble/autoparts/internal/transport/http/api/v1"
	"github.com/you-humble/autoparts/internal/transport/http/rest"
)

type PartService interface {
	List(ctx context.Context) ([]model.Part, error)
	PartByID(ctx context.Context, id int64) (*model.Part, error)
	PartByCode(ctx context.Context, code string) (*model.Part, error)
	SearchByName(ctx context.Context, name string) ([]model.Part, error)
	SearchByBrand(ctx context.Context, brand string) ([]model.Part, error)
	SearchByCategory(ctx context.Context, category string) ([]model.Part, error)
	SearchLowStock(ctx context.Context, threshold int) ([]model.Part, error)
	SearchByPriceRange(ctx context.Context, minPrice, maxPrice decimal.Decimal) ([]model.Part, error)
	SearchByTerm(ctx context.Context, term string) ([]model.Part, error)
	Create(ctx context.Context, params model.PartParams) (*model.Part, error)
	Update(ctx context.Context, id int64, params model.PartParams) (*model.Part, error)
	UpdateStock(ctx context.Context, id int64, stock int) (*model.Part, error)
	Delete(ctx context.Context, id int64) error
	Movements(ctx context.Context, id int64) ([]model.StockMovement, error)
}

type handler struct {
	svc PartService
}

func NewPartHandler(service PartService) *handler {
	return &handler{svc: service}
}

// Register mounts the parts API under /api/piezas.
func (h *handler) Register(r chi.Router) {
	r.Route("/api/piezas", func(r chi.Router) {
		r.Get("/", h.List)
		r.Post("/", h.Create)
		r.Get("/codigo/{codigo}", h.GetByCode)

		r.Route("/buscar", func(r chi.Router) {
			r.Get("/nombre", h.searchByText("nombre", h.svc.SearchByName))
			r.Get("/marca", h.searchByText("marca", h.svc.SearchByBrand))
			r.Get("/categoria", h.searchByText("categoria", h.svc.SearchByCategory))
			r.Get("/termino", h.searchByText("termino", h.svc.SearchByTerm))
			r.Get("/stock-bajo", h.SearchLowStock)
			r.Get("/precio", h.SearchByPriceRange)
		})

		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", h.GetByID)
			r.Put("/", h.Update)
			r.Delete("/", h.Delete)
			r.Patch("/stock", h.UpdateStock)
			r.Get("/movimientos", h.Movements)
		})
	})
}

func (h *handler) List(w http.ResponseWriter, r *http.Request) {
	parts, err := h.svc.List(r.Context())
	if err != nil {
		rest.WriteServiceError(r.Context(), w, err)
		return
	}

	rest.WriteJSON(w, http.StatusOK, converter.PartsToAPI(parts))
}

func (h *handler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := rest.PathID(r, "id")
	if err != nil {
		rest.WriteError(w, http.StatusBadRequest, "invalid_id", err.Error(), nil) // 400
		return
	}

	p, err := h.svc.PartByID(r.Context(), id)
	if err != nil {
		rest.WriteServiceError(r.Context(), w, err)
		return
	}

	rest.WriteJSON(w, http.StatusOK, converter.PartToAPI(p))
}

func (h *handler) GetByCode(w http.ResponseWriter, r *http.Request) {
	code := strings.TrimSpace(chi.URLParam(r, "codigo"))
	if code == "" {
		rest.WriteError(w, http.StatusBadRequest, "invalid_code", "part code is required", nil) // 400
		return
	}

	p, err := h.svc.PartByCode(r.Context(), code)
	if err != nil {
		rest.WriteServiceError(r.Context(), w, err)
		return
	}

	rest.WriteJSON(w, http.StatusOK, converter.PartToAPI(p))
}

func (h *handler) searchByText(param string, search func(context.Context, string) ([]model.Part, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if !q.Has(param) {
			rest.WriteError(w, http.StatusBadRequest, "validation_error", param+" is required", nil) // 400
			return
		}

		parts, err := search(r.Context(), q.Get(param))
		if err != nil {
			rest.WriteServiceError(r.Context(), w, err)
			return
		}

		rest.WriteJSON(w, http.StatusOK, converter.PartsToAPI(parts))
	}
}

func (h *handler) SearchLowStock(w http.ResponseWriter, r *http.Request) {
	threshold, err := rest.QueryInt(r, "stockMinimo")
	if err != nil {
		rest.WriteServiceError(r.Context(), w, err)
		return
	}

	parts, err := h.svc.SearchLowStock(r.Context(), threshold)
	if err != nil {
		rest.WriteServiceError(r.Context(), w, err)
		return
	}

	rest.WriteJSON(w, http.StatusOK, converter.PartsToAPI(parts))
}

func (h *handler) SearchByPriceRange(w http.ResponseWriter, r *http.Request) {
	minPrice, err := rest.QueryDecimal(r, "precioMin")
	if err != nil {
		rest.WriteServiceError(r.Context(), w, err)
		return
	}
	maxPrice, err := rest.QueryDecimal(r, "precioMax")
	if err != nil {
		rest.WriteServiceError(r.Context(), w, err)
		return
	}

	parts, err := h.svc.SearchByPriceRange(r.Context(), minPrice, maxPrice)
	if err != nil {
		rest.WriteServiceError(r.Context(), w, err)
		return
	}

	rest.WriteJSON(w, http.StatusOK, converter.PartsToAPI(parts))
}

func (h *handler) Create(w http.ResponseWriter, r *http.Request) {
	var req apiv1.PartRequest
	if !rest.DecodeJSON(w, r, &req) {
		return
	}

	p, err := h.svc.Create(r.Context(), converter.PartRequestToParams(&req))
	if err != nil {
		rest.WriteServiceError(r.Context(), w, err)
		return
	}

	rest.WriteJSON(w, http.StatusCreated, converter.PartToAPI(p))
}

func (h *handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := rest.PathID(r, "id")
	if err != nil {
		rest.WriteError(w, http.StatusBadRequest, "invalid_id", err.Error(), nil) // 400
		return
	}

	var req apiv1.PartRequest
	if !rest.DecodeJSON(w, r, &req) {
		return
	}

	p, err := h.svc.Update(r.Context(), id, converter.PartRequestToParams(&req))
	if err != nil {
		rest.WriteServiceError(r.Context(), w, err)
		return
	}

	rest.WriteJSON(w, http.StatusOK, converter.PartToAPI(p))
}

func (h *handler) UpdateStock(w http.ResponseWriter, r *http.Request) {
	id, err := rest.PathID(r, "id")
	if err != nil {
		rest.WriteError(w, http.StatusBadRequest, "invalid_id", err.Error(), nil) // 400
		return
	}

	stock, err := rest.QueryInt(r, "nuevoStock")
	if err != nil {
		rest.WriteServiceError(r.Context(), w, err)
		return
	}

	p, err := h.svc.UpdateStock(r.Context(), id, stock)
	if err != nil {
		rest.WriteServiceError(r.Context(), w, err)
		return
	}

	rest.WriteJSON(w, http.StatusOK, converter.PartToAPI(p))
}

func (h *handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := rest.PathID(r, "id")
	if err != nil {
		rest.WriteError(w, http.StatusBadRequest, "invalid_id", err.Error(), nil) // 400
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		rest.WriteServiceError(r.Context(), w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *handler) Movements(w http.ResponseWriter, r *http.Request) {
	id, err := rest.PathID(r, "id")
	if err != nil {
		rest.WriteError(w, http.StatusBadRequest, "invalid_id", err.Error(), nil) // 400
		return
	}

	movements, err := h.svc.Movements(r.Context(), id)
	if err != nil {
		rest.WriteServiceError(r.Context(), w, err)
		return
	}

	rest.WriteJSON(w, http.StatusOK, converter.MovementsToAPI(movements))
}
