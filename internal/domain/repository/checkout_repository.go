package repository

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/jhoicas/turismo-api/internal/domain/entity"
)

// CheckoutRow fila cruda de un listado de reservas: la reserva más los datos
// reducidos del viajero y del listado reservado que necesita el shaping.
// Lo produce la DB; el use case lo convierte en DTO.
type CheckoutRow struct {
	Checkout  entity.Checkout
	UserName  *string // nil cuando la reserva no tiene viajero asociado
	UserEmail *string
	ItemTitle string // título del listado reservado (vacío si fue borrado)
}

// CheckoutRepository define el puerto de persistencia para reservas.
//
// La empresa dueña de una reserva se deriva transitivamente: el listado
// referenciado por Item debe pertenecer a la empresa. Todos los métodos
// *ByCompany aplican esa unión de pertenencia sobre los tres kinds.
type CheckoutRepository interface {
	Create(ctx context.Context, c *entity.Checkout) error

	// GetByCompany devuelve la reserva solo si su listado pertenece a la
	// empresa. Inexistente y ajena colapsan en nil para no filtrar la
	// existencia de reservas de otros tenants.
	GetByCompany(ctx context.Context, id, companyID string) (*CheckoutRow, error)

	// ListByCompany lista reservas de la empresa, created_at descendente.
	ListByCompany(ctx context.Context, companyID string, limit, offset int) ([]CheckoutRow, error)
	CountByCompany(ctx context.Context, companyID string) (int, error)

	// SumConfirmedRevenue suma total_price de las reservas confirmadas de la
	// empresa. Devuelve cero (no NULL) cuando no hay ninguna.
	SumConfirmedRevenue(ctx context.Context, companyID string) (decimal.Decimal, error)

	// TransitionStatus cambia el estado solo si el actual está en allowedFrom
	// (chequeo optimista en el UPDATE). Devuelve false si ninguna fila cambió,
	// es decir si la precondición dejó de cumplirse entre lectura y escritura.
	TransitionStatus(ctx context.Context, id string, allowedFrom []string, to string) (bool, error)

	ListByUser(ctx context.Context, userID string, limit, offset int) ([]CheckoutRow, error)
}
