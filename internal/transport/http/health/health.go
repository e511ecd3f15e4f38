package health

import (
	"context"
	"net/http"
	"time"

	"github.com/you-humble/autoparts/platform/logger"
)

const checkTimeout = 2 * time.Second

type Check func(ctx context.Context) error

type handler struct {
	checks map[string]Check
}

// NewHealthHandler reports SERVING while every named check passes.
func NewHealthHandler(checks map[string]Check) *handler {
	return &handler{checks: checks}
}

func (h *handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), checkTimeout)
	defer cancel()

	status, body := http.StatusOK, "SERVING"
	for name, check := range h.checks {
		if err := check(ctx); err != nil {
			logger.Error(ctx, "health check", logger.String("check", name), logger.ErrorF(err))
			status, body = http.StatusServiceUnavailable, "NOT_SERVING"
			break
		}
	}

	w.WriteHeader(status)
	if _, err := w.Write([]byte(body)); err != nil {
		logger.Error(r.Context(), "health check", logger.ErrorF(err))
	}
}
