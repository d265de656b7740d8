package domain

import (
	"context"
	"strconv"
)

// Tariff is a purchasable plan shown on the home page.
type Tariff struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Price     float64  `json:"price"`
	Currency  string   `json:"currency"`
	Period    string   `json:"period"`
	Features  []string `json:"features"`
	Popular   bool     `json:"popular"`
	SortOrder int      `json:"sortOrder"`
	ButtonURL string   `json:"buttonUrl"`
}

// TariffPatch is a partially specified tariff. Nil fields are left untouched.
// There is no ID field: ids are assigned by the server and never change.
type TariffPatch struct {
	Name      *string   `json:"name" validate:"omitempty,min=1,max=200"`
	Price     *float64  `json:"price" validate:"omitempty,gte=0"`
	Currency  *string   `json:"currency" validate:"omitempty,currency_code"`
	Period    *string   `json:"period" validate:"omitempty,tariff_period"`
	Features  *[]string `json:"features" validate:"omitempty,max=50,dive,max=300"`
	Popular   *bool     `json:"popular"`
	SortOrder *int      `json:"sortOrder"`
	ButtonURL *string   `json:"buttonUrl" validate:"omitempty,max=2048"`
}

// Apply overwrites the fields of t that are set in p.
func (p TariffPatch) Apply(t *Tariff) {
	if p.Name != nil {
		t.Name = *p.Name
	}
	if p.Price != nil {
		t.Price = *p.Price
	}
	if p.Currency != nil {
		t.Currency = *p.Currency
	}
	if p.Period != nil {
		t.Period = *p.Period
	}
	if p.Features != nil {
		t.Features = append([]string(nil), (*p.Features)...)
	}
	if p.Popular != nil {
		t.Popular = *p.Popular
	}
	if p.SortOrder != nil {
		t.SortOrder = *p.SortOrder
	}
	if p.ButtonURL != nil {
		t.ButtonURL = *p.ButtonURL
	}
}

const (
	DefaultCurrency   = "RUB"
	DefaultPeriod     = "1 месяц"
	DefaultTariffName = "Новый тариф"
)

// CurrencySymbols maps the supported currency codes to their display symbol.
var CurrencySymbols = map[string]string{
	"RUB": "₽", "USD": "$", "EUR": "€", "UAH": "₴", "KZT": "₸", "BYN": "Br",
	"GEL": "₾", "AMD": "֏", "UZS": "сўм", "AZN": "₼", "KGS": "с", "TJS": "ЅМ", "TRY": "₺",
}

// Periods is the catalog of billing period labels offered in the admin panel.
var Periods = []string{
	"1 неделя", "2 недели", "3 недели", "4 недели",
	"1 месяц", "2 месяца", "3 месяца", "4 месяца", "5 месяцев", "6 месяцев",
	"9 месяцев", "12 месяцев", "18 месяцев", "24 месяца", "36 месяцев",
}

// IsKnownPeriod reports whether label is in the Periods catalog.
func IsKnownPeriod(label string) bool {
	for _, p := range Periods {
		if p == label {
			return true
		}
	}
	return false
}

// CurrencySymbol returns the display symbol for code, or the code itself when unknown.
func CurrencySymbol(code string) string {
	if code == "" {
		code = DefaultCurrency
	}
	if s, ok := CurrencySymbols[code]; ok {
		return s
	}
	return code
}

// FormatPrice renders "<price> <symbol>", e.g. "299 ₽".
func FormatPrice(price float64, currency string) string {
	return strconv.FormatFloat(price, 'f', -1, 64) + " " + CurrencySymbol(currency)
}

// TariffRepository is the collection contract used by handlers and pages.
type TariffRepository interface {
	List(ctx context.Context) ([]Tariff, error)
	Create(ctx context.Context, patch TariffPatch) (Tariff, error)
	Update(ctx context.Context, id string, patch TariffPatch) (Tariff, error)
	Delete(ctx context.Context, id string) error
}
