package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// UserSummary viajero reducido para incrustar en reservas.
// Cuando la reserva no tiene viajero asociado se usan los placeholders
// "Anonymous" / "N/A".
type UserSummary struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// BookedItemSummary listado reservado reducido a {id, kind, title}.
type BookedItemSummary struct {
	ID    string `json:"id"`
	Kind  string `json:"kind"`
	Title string `json:"title"`
}

// BookingResponse reserva moldeada para presentación. De los tres campos de
// item exactamente uno es no-nil (el kind reservado); los otros dos van null.
type BookingResponse struct {
	ID          string             `json:"id"`
	Status      string             `json:"status"`
	TotalPrice  decimal.Decimal    `json:"total_price"`
	Guests      int                `json:"guests"`
	CheckIn     time.Time          `json:"check_in"`
	CheckOut    time.Time          `json:"check_out"`
	User        UserSummary        `json:"user"`
	Destination *BookedItemSummary `json:"destination"`
	Offer       *BookedItemSummary `json:"offer"`
	Package     *BookedItemSummary `json:"package"`
	CreatedAt   time.Time          `json:"created_at"`
}

// BookingListResponse lista paginada de reservas moldeadas.
type BookingListResponse struct {
	Items []BookingResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}

// CreateCheckoutRequest entrada para que un viajero reserve un listado.
type CreateCheckoutRequest struct {
	ItemKind string    `json:"item_kind" validate:"required"`
	ItemID   string    `json:"item_id" validate:"required"`
	Guests   int       `json:"guests" validate:"min=1"`
	CheckIn  time.Time `json:"check_in"`
	CheckOut time.Time `json:"check_out"`
}
