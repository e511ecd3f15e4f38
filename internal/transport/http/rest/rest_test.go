package rest

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/you-humble/autoparts/internal/model"
	apiv1 "github.com/you-humble/autoparts/internal/transport/http/api/v1"
)

func TestDecodeJSON(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		body   string
		ok     bool
		detail string
	}{
		{
			name: "valid part",
			body: `{"nombre":"Filtro","codigo":"FIL001","precio":25.5,"stock":0}`,
			ok:   true,
		},
		{
			name: "price as string",
			body: `{"nombre":"Filtro","codigo":"FIL001","precio":"25.50","stock":3}`,
			ok:   true,
		},
		{
			name:   "missing price",
			body:   `{"nombre":"Filtro","codigo":"FIL001","stock":3}`,
			detail: "precio",
		},
		{
			name:   "negative price",
			body:   `{"nombre":"Filtro","codigo":"FIL001","precio":-1,"stock":3}`,
			detail: "precio",
		},
		{
			name:   "negative stock",
			body:   `{"nombre":"Filtro","codigo":"FIL001","precio":1,"stock":-3}`,
			detail: "stock",
		},
		{
			name: "unknown field",
			body: `{"nombre":"Filtro","codigo":"FIL001","precio":1,"stock":1,"color":"red"}`,
		},
		{
			name: "trailing data",
			body: `{"nombre":"Filtro","codigo":"FIL001","precio":1,"stock":1} {}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			w := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body))

			var req apiv1.PartRequest
			ok := DecodeJSON(w, r, &req)

			assert.Equal(t, tt.ok, ok)
			if !tt.ok {
				assert.Equal(t, http.StatusBadRequest, w.Code)
			}
			if tt.detail != "" {
				assert.Contains(t, w.Body.String(), tt.detail)
			}
		})
	}
}

func TestDecodeJSONInvoiceItems(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(
		`{"clienteNombre":"Ana","clienteEmail":"ana@example.com","items":[{"piezaId":1,"cantidad":0}]}`))

	var req apiv1.CreateInvoiceRequest
	require.False(t, DecodeJSON(w, r, &req))
	assert.Contains(t, w.Body.String(), "items[0].cantidad")
}

func TestWriteServiceError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		err  error
		code int
	}{
		{model.ErrPartNotFound, http.StatusNotFound},
		{model.ErrInvoiceNotFound, http.StatusNotFound},
		{model.ErrDuplicatePartCode, http.StatusBadRequest},
		{model.ErrDuplicateInvoiceNumber, http.StatusBadRequest},
		{model.ErrInsufficientStock, http.StatusBadRequest},
		{model.ErrStatusTransition, http.StatusBadRequest},
		{model.ErrInvoiceConflict, http.StatusBadRequest},
		{model.ErrInvalidStatus, http.StatusBadRequest},
		{model.ErrValidation, http.StatusBadRequest},
		{errors.New("db down"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			t.Parallel()

			w := httptest.NewRecorder()
			WriteServiceError(context.Background(), w, fmt.Errorf("op: %w", tt.err))

			assert.Equal(t, tt.code, w.Code)
			assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
		})
	}
}

func TestQueryTime(t *testing.T) {
	t.Parallel()

	loc := time.FixedZone("UTC-5", -5*3600)

	r := httptest.NewRequest(http.MethodGet, "/?a=2026-10-18T10:00:00&b=2026-10-18T10:00:00Z&c=18/10/2026", nil)

	a, err := QueryTime(r, "a", loc)
	require.NoError(t, err)
	assert.True(t, a.Equal(time.Date(2026, 10, 18, 15, 0, 0, 0, time.UTC)))

	b, err := QueryTime(r, "b", loc)
	require.NoError(t, err)
	assert.True(t, b.Equal(time.Date(2026, 10, 18, 10, 0, 0, 0, time.UTC)))

	_, err = QueryTime(r, "c", loc)
	assert.ErrorIs(t, err, model.ErrValidation)

	t.Run("offset with unescaped plus", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/?d=2026-10-18T12:00:00+02:00&e=2026-10-18T12:00:00%2B02:00", nil)

		d, err := QueryTime(r, "d", loc)
		require.NoError(t, err)
		assert.True(t, d.Equal(time.Date(2026, 10, 18, 10, 0, 0, 0, time.UTC)))

		e, err := QueryTime(r, "e", loc)
		require.NoError(t, err)
		assert.True(t, e.Equal(d))
	})

	_, err = QueryTime(r, "missing", loc)
	assert.ErrorIs(t, err, model.ErrValidation)
}
