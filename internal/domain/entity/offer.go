package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Offer representa una oferta temporal sobre un destino de la misma empresa.
// Rango de vigencia: StartDate ≤ EndDate, con StartDate no en el pasado al crearla.
type Offer struct {
	ID            string
	CompanyID     string
	DestinationID string // destino vinculado, debe pertenecer a la misma empresa
	Title         string
	Description   string
	Location      string
	Category      string
	Price         decimal.Decimal
	DiscountPrice *decimal.Decimal
	DiscountType  string // percentage | fixed
	StartDate     time.Time
	EndDate       time.Time
	ImageKey      string
	Rating        decimal.Decimal
	IsFeatured    bool
	IsActive      bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// EffectivePrice devuelve el precio con descuento si existe, o el precio base.
func (o *Offer) EffectivePrice() decimal.Decimal {
	if o.DiscountPrice != nil {
		return *o.DiscountPrice
	}
	return o.Price
}
