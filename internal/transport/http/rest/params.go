package rest

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/you-humble/autoparts/internal/model"
)

// localLayout is the ISO local date-time accepted besides RFC 3339.
const localLayout = "2006-01-02T15:04:05"

func PathID(r *http.Request, name string) (int64, error) {
	raw := chi.URLParam(r, name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: invalid %s %q", model.ErrValidation, name, raw)
	}
	return id, nil
}

func QueryInt(r *http.Request, name string) (int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return 0, fmt.Errorf("%w: %s is required", model.ErrValidation, name)
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid %s %q", model.ErrValidation, name, raw)
	}
	return v, nil
}

func QueryDecimal(r *http.Request, name string) (decimal.Decimal, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return decimal.Zero, fmt.Errorf("%w: %s is required", model.ErrValidation, name)
	}
	v, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: invalid %s %q", model.ErrValidation, name, raw)
	}
	return v, nil
}

// QueryTime parses an RFC 3339 timestamp or an ISO local date-time, the latter
// interpreted in loc. An unescaped "+hh:mm" offset arrives as " hh:mm" and is
// restored before parsing.
func QueryTime(r *http.Request, name string, loc *time.Location) (time.Time, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return time.Time{}, fmt.Errorf("%w: %s is required", model.ErrValidation, name)
	}
	raw = strings.ReplaceAll(raw, " ", "+")
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	if t, err := time.ParseInLocation(localLayout, raw, loc); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("%w: invalid %s %q", model.ErrValidation, name, raw)
}
