package usecase

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/jhoicas/turismo-api/internal/domain"
	"github.com/jhoicas/turismo-api/internal/domain/entity"
)

// Reglas de campo compartidas por los tres kinds de listado. Cada helper
// acumula mensajes en el ValidationError; el caller decide si hay error final.

var ratingMax = decimal.NewFromInt(5)

func checkTitle(ve *domain.ValidationError, title string) {
	if title == "" {
		ve.Addf("title", "el título es requerido")
	} else if len(title) > 200 {
		ve.Addf("title", "máximo 200 caracteres")
	}
}

func checkLocation(ve *domain.ValidationError, location string) {
	if location == "" {
		ve.Addf("location", "la ubicación es requerida")
	}
}

func checkCategory(ve *domain.ValidationError, category string) {
	if !entity.ValidCategory(category) {
		ve.Addf("category", "categoría desconocida: %q", category)
	}
}

func checkPrice(ve *domain.ValidationError, price decimal.Decimal) {
	if !price.IsPositive() {
		ve.Addf("price", "el precio debe ser mayor que cero")
	}
}

// checkDiscount exige discount_price estrictamente menor que price.
func checkDiscount(ve *domain.ValidationError, price decimal.Decimal, discount *decimal.Decimal) {
	if discount == nil {
		return
	}
	if !discount.IsPositive() {
		ve.Addf("discount_price", "el precio con descuento debe ser mayor que cero")
		return
	}
	if discount.GreaterThanOrEqual(price) {
		ve.Addf("discount_price", "el precio con descuento debe ser menor que el precio")
	}
}

func checkRating(ve *domain.ValidationError, rating decimal.Decimal) {
	if rating.IsNegative() || rating.GreaterThan(ratingMax) {
		ve.Addf("rating", "el rating debe estar entre 0 y 5")
	}
}

func checkDiscountType(ve *domain.ValidationError, dt string) {
	if dt != entity.DiscountPercentage && dt != entity.DiscountFixed {
		ve.Addf("discount_type", "debe ser percentage o fixed")
	}
}

// checkDates valida start ≤ end. Al crear, start tampoco puede estar en el
// pasado (se compara contra el inicio del día para no rechazar "hoy").
func checkDates(ve *domain.ValidationError, start, end time.Time, creating bool, now time.Time) {
	if start.IsZero() {
		ve.Addf("start_date", "la fecha de inicio es requerida")
		return
	}
	if end.IsZero() {
		ve.Addf("end_date", "la fecha de fin es requerida")
		return
	}
	if end.Before(start) {
		ve.Addf("end_date", "la fecha de fin debe ser posterior o igual al inicio")
	}
	if creating {
		today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
		if start.Before(today) {
			ve.Addf("start_date", "la fecha de inicio no puede estar en el pasado")
		}
	}
}

// errOrNil devuelve el ValidationError como error solo si acumuló campos.
func errOrNil(ve *domain.ValidationError) error {
	if len(ve.Fields) > 0 {
		return ve
	}
	return nil
}
