package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una reserva. pending → confirmed | cancelled.
// cancelled es terminal; confirmed solo admite cancelación.
const (
	CheckoutStatusPending   = "pending"
	CheckoutStatusConfirmed = "confirmed"
	CheckoutStatusCancelled = "cancelled"
)

// BookedItemRef referencia polimórfica al listado reservado: exactamente uno
// de los tres kinds. Se modela como unión etiquetada (kind + id) en vez de
// tres foreign keys nullable para que "exactamente uno" sea un invariante y
// no una convención.
type BookedItemRef struct {
	Kind ListingKind
	ID   string
}

// Checkout representa una reserva de un viajero sobre un listado.
// La empresa dueña se deriva transitivamente a través del listado referenciado.
type Checkout struct {
	ID         string
	UserID     string // puede ser vacío (reserva anónima importada)
	Item       BookedItemRef
	Status     string // ver constantes CheckoutStatus*
	TotalPrice decimal.Decimal
	Guests     int
	CheckIn    time.Time
	CheckOut   time.Time
	CreatedAt  time.Time
}

// CanConfirm indica si la reserva admite la transición a confirmed.
func (c *Checkout) CanConfirm() bool {
	return c.Status == CheckoutStatusPending
}

// CanCancel indica si la reserva admite la transición a cancelled.
func (c *Checkout) CanCancel() bool {
	return c.Status == CheckoutStatusPending || c.Status == CheckoutStatusConfirmed
}
