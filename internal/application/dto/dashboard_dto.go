package dto

import "github.com/shopspring/decimal"

// DashboardCounts totales de propiedad de la empresa. Cada reserva cuenta una
// sola vez: referencia exactamente un listado.
type DashboardCounts struct {
	Destinations int `json:"destinations"`
	Offers       int `json:"offers"`
	Packages     int `json:"packages"`
	Checkouts    int `json:"checkouts"`
}

// DashboardSummaryDTO respuesta de GET /api/dashboard.
// Todo el contenido está acotado a la empresa autenticada; el revenue se
// deriva fresco en cada llamada (nunca se mantiene incrementalmente).
type DashboardSummaryDTO struct {
	Counts       DashboardCounts     `json:"counts"`
	TotalRevenue decimal.Decimal     `json:"total_revenue"` // suma de reservas confirmadas
	Destinations ListingListResponse `json:"destinations"`
	Offers       ListingListResponse `json:"offers"`
	Packages     ListingListResponse `json:"packages"`
	Bookings     BookingListResponse `json:"bookings"`
}
