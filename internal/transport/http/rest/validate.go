package rest

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	apiv1 "github.com/you-humble/autoparts/internal/transport/http/api/v1"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})

	// Money is compared as a number by gte/gt/lte.
	v.RegisterCustomTypeFunc(func(field reflect.Value) any {
		m, ok := field.Interface().(apiv1.Money)
		if !ok {
			return nil
		}
		f, _ := m.Float64()
		return f
	}, apiv1.Money{})

	return v
}

func validationDetails(err error) map[string]string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return map[string]string{"error": err.Error()}
	}

	out := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		key := fe.Namespace()
		if _, field, ok := strings.Cut(key, "."); ok {
			key = field
		}
		if fe.Param() != "" {
			out[key] = fe.Tag() + "=" + fe.Param()
		} else {
			out[key] = fe.Tag()
		}
	}
	return out
}
