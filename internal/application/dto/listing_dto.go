package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateDestinationRequest entrada para crear un destino.
type CreateDestinationRequest struct {
	Title         string           `json:"title" validate:"required,min=1,max=200"`
	Description   string           `json:"description"`
	Location      string           `json:"location" validate:"required"`
	Category      string           `json:"category" validate:"required"`
	Price         decimal.Decimal  `json:"price"`
	DiscountPrice *decimal.Decimal `json:"discount_price"`
	Rating        decimal.Decimal  `json:"rating"`
	IsFeatured    bool             `json:"is_featured"`
	IsActive      bool             `json:"is_active"`
}

// UpdateDestinationRequest entrada para actualizar un destino (campos opcionales).
/// DiscountPrice usa doble puntero vía ClearDiscount: true borra el descuento.
type UpdateDestinationRequest struct {
	Title         *string          `json:"title" validate:"omitempty,min=1,max=200"`
	Description   *string          `json:"description"`
	Location      *string          `json:"location"`
	Category      *string          `json:"category"`
	Price         *decimal.Decimal `json:"price"`
	DiscountPrice *decimal.Decimal `json:"discount_price"`
	ClearDiscount bool             `json:"clear_discount"`
	Rating        *decimal.Decimal `json:"rating"`
}

// OfferFields campos adicionales de Offer/Package sobre los de Destination.
type OfferFields struct {
	DestinationID string    `json:"destination_id" validate:"required"`
	DiscountType  string    `json:"discount_type" validate:"required"`
	StartDate     time.Time `json:"start_date"`
	EndDate       time.Time `json:"end_date"`
}

// CreateOfferRequest entrada para crear una oferta.
type CreateOfferRequest struct {
	CreateDestinationRequest
	OfferFields
}

// UpdateOfferRequest entrada para actualizar una oferta.
type UpdateOfferRequest struct {
	UpdateDestinationRequest
	DestinationID *string    `json:"destination_id"`
	DiscountType  *string    `json:"discount_type"`
	StartDate     *time.Time `json:"start_date"`
	EndDate       *time.Time `json:"end_date"`
}

// CreatePackageRequest entrada para crear un paquete.
type CreatePackageRequest struct {
	CreateOfferRequest
	Subtitle string `json:"subtitle"`
}

// UpdatePackageRequest entrada para actualizar un paquete.
type UpdatePackageRequest struct {
	UpdateOfferRequest
	Subtitle *string `json:"subtitle"`
}

// DestinationRef destino vinculado reducido a {id, name} para ofertas y paquetes.
type DestinationRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ListingResponse listado moldeado para presentación: defaults aplicados,
// imagen resuelta a URL pública y destino vinculado reducido.
// Los campos de oferta/paquete van vacíos para destinos.
type ListingResponse struct {
	ID            string           `json:"id"`
	Kind          string           `json:"kind"`
	Title         string           `json:"title"`
	Subtitle      string           `json:"subtitle,omitempty"`
	Description   string           `json:"description"`
	Location      string           `json:"location"`
	Category      string           `json:"category"`
	Price         decimal.Decimal  `json:"price"`
	DiscountPrice *decimal.Decimal `json:"discount_price"`
	DiscountType  string           `json:"discount_type,omitempty"`
	StartDate     *time.Time       `json:"start_date,omitempty"`
	EndDate       *time.Time       `json:"end_date,omitempty"`
	ImageURL      *string          `json:"image_url"`
	Rating        decimal.Decimal  `json:"rating"`
	IsFeatured    bool             `json:"is_featured"`
	IsActive      bool             `json:"is_active"`
	Destination   *DestinationRef  `json:"destination,omitempty"`
	CreatedAt     time.Time        `json:"created_at"`
	UpdatedAt     time.Time        `json:"updated_at"`
}

// ListingListResponse lista paginada de listados moldeados.
type ListingListResponse struct {
	Items []ListingResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
