package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Destination representa un destino turístico publicado por una empresa.
// DiscountPrice es opcional; cuando existe debe ser estrictamente menor que Price.
type Destination struct {
	ID            string
	CompanyID     string
	Title         string
	Description   string
	Location      string
	Category      string // ver constantes Category*
	Price         decimal.Decimal
	DiscountPrice *decimal.Decimal // nil = sin descuento
	ImageKey      string           // clave en el Media Store; vacío = sin imagen
	Rating        decimal.Decimal  // 0–5
	IsFeatured    bool
	IsActive      bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// EffectivePrice devuelve el precio con descuento si existe, o el precio base.
func (d *Destination) EffectivePrice() decimal.Decimal {
	if d.DiscountPrice != nil {
		return *d.DiscountPrice
	}
	return d.Price
}
