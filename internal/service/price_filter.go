package service

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"hbnb-front/internal/domain"
)

const (
	FilterAll      = "all"
	currencyMarker = "$"
)

// PriceFilter es "all" o un umbral máximo por noche.
type PriceFilter struct {
	all bool
	max float64
}

// ParsePriceFilter acepta "all" o un número con prefijo de moneda opcional ("$100").
func ParsePriceFilter(value string) (PriceFilter, error) {
	v := strings.TrimSpace(value)
	if v == FilterAll {
		return PriceFilter{all: true}, nil
	}
	numeric := strings.TrimSpace(strings.TrimPrefix(v, currencyMarker))
	max, err := strconv.ParseFloat(numeric, 64)
	if err != nil {
		return PriceFilter{}, &domain.ParseError{What: "price filter", Input: value, Err: err}
	}
	if math.IsNaN(max) {
		return PriceFilter{}, &domain.ParseError{What: "price filter", Input: value, Err: errors.New("not a number")}
	}
	return PriceFilter{max: max}, nil
}

func (f PriceFilter) All() bool { return f.all }

// Retain aplica la regla: all o price <= umbral.
func (f PriceFilter) Retain(price float64) bool {
	return f.all || price <= f.max
}

// ParseRating convierte el valor del formulario a entero.
func ParseRating(input string) (int, error) {
	rating, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil {
		return 0, &domain.ParseError{What: "rating", Input: input, Err: err}
	}
	return rating, nil
}

func formatPrice(price float64) string {
	return strconv.FormatFloat(price, 'f', -1, 64)
}
