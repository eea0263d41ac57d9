package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Package representa un paquete turístico: misma forma que Offer más un
// subtítulo opcional.
type Package struct {
	ID            string
	CompanyID     string
	DestinationID string
	Title         string
	Subtitle      string // opcional
	Description   string
	Location      string
	Category      string
	Price         decimal.Decimal
	DiscountPrice *decimal.Decimal
	DiscountType  string
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
func (p *Package) EffectivePrice() decimal.Decimal {
	if p.DiscountPrice != nil {
		return *p.DiscountPrice
	}
	return p.Price
}
