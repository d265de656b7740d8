package handlers

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/GOFONCK/VPN-Landing-STEALTHNET/api/internal/core/domain"
)

// Use a single instance of Validate, it caches struct info
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report JSON field names so messages match what the admin panel sent.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	v.RegisterValidation("currency_code", func(fl validator.FieldLevel) bool {
		_, ok := domain.CurrencySymbols[fl.Field().String()]
		return ok
	})
	v.RegisterValidation("tariff_period", func(fl validator.FieldLevel) bool {
		return domain.IsKnownPeriod(fl.Field().String())
	})
	return v
}
