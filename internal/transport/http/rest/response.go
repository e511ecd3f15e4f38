package rest

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/you-humble/autoparts/internal/model"
	apiv1 "github.com/you-humble/autoparts/internal/transport/http/api/v1"
	"github.com/you-humble/autoparts/platform/logger"
)

const maxBodyBytes = 1 << 20

func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if v == nil {
		return
	}

	_ = json.NewEncoder(w).Encode(v)
}

func WriteText(w http.ResponseWriter, status int, s string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	_, _ = io.WriteString(w, s)
}

func WriteError(w http.ResponseWriter, status int, code, message string, details any) {
	WriteJSON(w, status, apiv1.Error{
		Error:   code,
		Message: message,
		Details: details,
	})
}

// DecodeJSON reads and validates a request body into dst. On failure it
// writes a 400 response and returns false.
func DecodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	if err := dec.Decode(dst); err != nil {
		WriteError(w, http.StatusBadRequest, "bad_request", "invalid json body", map[string]any{"error": err.Error()})
		return false
	}

	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		WriteError(w, http.StatusBadRequest, "bad_request", "invalid json body", map[string]any{"error": "extra data after json"})
		return false
	}

	if err := validate.Struct(dst); err != nil {
		WriteError(w, http.StatusBadRequest, "validation_error", "invalid request", validationDetails(err))
		return false
	}

	return true
}

// WriteServiceError maps a service error onto the HTTP status space.
func WriteServiceError(ctx context.Context, w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, model.ErrPartNotFound):
		WriteError(w, http.StatusNotFound, "part_not_found", err.Error(), nil) // 404
	case errors.Is(err, model.ErrInvoiceNotFound):
		WriteError(w, http.StatusNotFound, "invoice_not_found", err.Error(), nil) // 404
	case errors.Is(err, model.ErrDuplicatePartCode),
		errors.Is(err, model.ErrDuplicateInvoiceNumber):
		WriteError(w, http.StatusBadRequest, "duplicate", err.Error(), nil) // 400
	case errors.Is(err, model.ErrInsufficientStock):
		WriteError(w, http.StatusBadRequest, "insufficient_stock", err.Error(), nil) // 400
	case errors.Is(err, model.ErrInvalidStatus),
		errors.Is(err, model.ErrStatusTransition),
		errors.Is(err, model.ErrInvoiceConflict):
		WriteError(w, http.StatusBadRequest, "invalid_status", err.Error(), nil) // 400
	case errors.Is(err, model.ErrValidation):
		WriteError(w, http.StatusBadRequest, "validation_error", err.Error(), nil) // 400
	default:
		logger.Error(ctx, "unhandled service error", logger.ErrorF(err))
		WriteError(w, http.StatusInternalServerError, "internal_error", "internal server error", nil) // 500
	}
}
