package health

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHealthCheck(t *testing.T) {
	t.Parallel()

	ok := func(context.Context) error { return nil }
	down := func(context.Context) error { return errors.New("connection refused") }

	tests := []struct {
		name   string
		checks map[string]Check
		code   int
		body   string
	}{
		{"no checks", nil, http.StatusOK, "SERVING"},
		{"all pass", map[string]Check{"postgres": ok, "redis": ok}, http.StatusOK, "SERVING"},
		{"one fails", map[string]Check{"postgres": ok, "redis": down}, http.StatusServiceUnavailable, "NOT_SERVING"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			w := httptest.NewRecorder()
			NewHealthHandler(tt.checks).HealthCheck(w, httptest.NewRequest(http.MethodGet, "/health", nil))

			assert.Equal(t, tt.code, w.Code)
			assert.Equal(t, tt.body, w.Body.String())
		})
	}
}
