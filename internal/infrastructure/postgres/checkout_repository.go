package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/jhoicas/turismo-api/internal/domain/entity"
	"github.com/jhoicas/turismo-api/internal/domain/repository"
)

var _ repository.CheckoutRepository = (*CheckoutRepo)(nil)

// ownedByCompany filtro de pertenencia transitiva: la reserva es de la empresa
// si el listado referenciado (según item_kind) pertenece a ella.
const ownedByCompany = `(
	   (c.item_kind = 'destination' AND EXISTS (SELECT 1 FROM destinations d WHERE d.id = c.item_id AND d.company_id = $1))
	OR (c.item_kind = 'offer'       AND EXISTS (SELECT 1 FROM offers o      WHERE o.id = c.item_id AND o.company_id = $1))
	OR (c.item_kind = 'package'     AND EXISTS (SELECT 1 FROM packages p    WHERE p.id = c.item_id AND p.company_id = $1))
)`

// checkoutRowSelect proyección completa de un CheckoutRow: la reserva, el
// viajero (LEFT JOIN, puede faltar) y el título del listado según su kind.
const checkoutRowSelect = `
	SELECT c.id, c.user_id, c.item_kind, c.item_id, c.status, c.total_price,
	       c.guests, c.check_in, c.check_out, c.created_at,
	       u.name, u.email,
	       COALESCE(d.title, o.title, p.title, '') AS item_title
	FROM checkouts c
	LEFT JOIN users u        ON u.id = c.user_id
	LEFT JOIN destinations d ON c.item_kind = 'destination' AND d.id = c.item_id
	LEFT JOIN offers o       ON c.item_kind = 'offer'       AND o.id = c.item_id
	LEFT JOIN packages p     ON c.item_kind = 'package'     AND p.id = c.item_id`

// CheckoutRepo implementación del puerto CheckoutRepository sobre PostgreSQL.
type CheckoutRepo struct {
	q Querier
}

// NewCheckoutRepository construye el adaptador.
func NewCheckoutRepository(q Querier) *CheckoutRepo {
	return &CheckoutRepo{q: q}
}

// Create persiste una nueva reserva.
func (r *CheckoutRepo) Create(ctx context.Context, c *entity.Checkout) error {
	query := `
		INSERT INTO checkouts (id, user_id, item_kind, item_id, status, total_price, guests, check_in, check_out, created_at)
		VALUES ($1, NULLIF($2, ''), $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(ctx, query,
		c.ID, c.UserID, c.Item.Kind, c.Item.ID, c.Status,
		c.TotalPrice, c.Guests, c.CheckIn, c.CheckOut, c.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert checkout: %w", err)
	}
	return nil
}

// GetByCompany devuelve la reserva solo si su listado pertenece a la empresa.
// Inexistente y ajena colapsan en nil.
func (r *CheckoutRepo) GetByCompany(ctx context.Context, id, companyID string) (*repository.CheckoutRow, error) {
	query := checkoutRowSelect + ` WHERE c.id = $2 AND ` + ownedByCompany
	row, err := scanCheckoutRow(r.q.QueryRow(ctx, query, companyID, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get checkout: %w", err)
	}
	return row, nil
}

// ListByCompany lista reservas de la empresa, created_at descendente.
func (r *CheckoutRepo) ListByCompany(ctx context.Context, companyID string, limit, offset int) ([]repository.CheckoutRow, error) {
	query := checkoutRowSelect + `
		WHERE ` + ownedByCompany + `
		ORDER BY c.created_at DESC LIMIT $2 OFFSET $3`
	return r.list(ctx, query, companyID, limit, offset)
}

// CountByCompany cuenta las reservas de la empresa.
func (r *CheckoutRepo) CountByCompany(ctx context.Context, companyID string) (int, error) {
	var n int
	query := `SELECT COUNT(*) FROM checkouts c WHERE ` + ownedByCompany
	if err := r.q.QueryRow(ctx, query, companyID).Scan(&n); err != nil {
		return 0, fmt.Errorf("count checkouts: %w", err)
	}
	return n, nil
}

// SumConfirmedRevenue suma total_price de las reservas confirmadas de la
// empresa. COALESCE garantiza cero en vez de NULL cuando no hay ninguna.
func (r *CheckoutRepo) SumConfirmedRevenue(ctx context.Context, companyID string) (decimal.Decimal, error) {
	var total decimal.Decimal
	query := `
		SELECT COALESCE(SUM(c.total_price), 0) FROM checkouts c
		WHERE c.status = 'confirmed' AND ` + ownedByCompany
	if err := r.q.QueryRow(ctx, query, companyID).Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("sum revenue: %w", err)
	}
	return total, nil
}

// TransitionStatus cambia el estado solo si el actual sigue en allowedFrom.
// El UPDATE condicional serializa transiciones concurrentes sin transacción.
func (r *CheckoutRepo) TransitionStatus(ctx context.Context, id string, allowedFrom []string, to string) (bool, error) {
	tag, err := r.q.Exec(ctx,
		`UPDATE checkouts SET status = $2 WHERE id = $1 AND status = ANY($3)`,
		id, to, allowedFrom,
	)
	if err != nil {
		return false, fmt.Errorf("transition checkout: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// ListByUser lista las reservas del viajero, created_at descendente.
func (r *CheckoutRepo) ListByUser(ctx context.Context, userID string, limit, offset int) ([]repository.CheckoutRow, error) {
	query := checkoutRowSelect + `
		WHERE c.user_id = $1
		ORDER BY c.created_at DESC LIMIT $2 OFFSET $3`
	return r.list(ctx, query, userID, limit, offset)
}

func (r *CheckoutRepo) list(ctx context.Context, query string, args ...any) ([]repository.CheckoutRow, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list checkouts: %w", err)
	}
	defer rows.Close()
	var list []repository.CheckoutRow
	for rows.Next() {
		row, err := scanCheckoutRow(rows)
		if err != nil {
			return nil, fmt.Errorf("scan checkout: %w", err)
		}
		list = append(list, *row)
	}
	return list, rows.Err()
}

func scanCheckoutRow(row pgx.Row) (*repository.CheckoutRow, error) {
	var cr repository.CheckoutRow
	var userID *string
	err := row.Scan(
		&cr.Checkout.ID, &userID, &cr.Checkout.Item.Kind, &cr.Checkout.Item.ID,
		&cr.Checkout.Status, &cr.Checkout.TotalPrice, &cr.Checkout.Guests,
		&cr.Checkout.CheckIn, &cr.Checkout.CheckOut, &cr.Checkout.CreatedAt,
		&cr.UserName, &cr.UserEmail, &cr.ItemTitle,
	)
	if err != nil {
		return nil, err
	}
	if userID != nil {
		cr.Checkout.UserID = *userID
	}
	return &cr, nil
}
