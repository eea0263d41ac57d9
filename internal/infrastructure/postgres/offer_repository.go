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

var _ repository.OfferRepository = (*OfferRepo)(nil)

const offerColumns = `id, company_id, destination_id, title, description, location, category, price, discount_price, discount_type, start_date, end_date, image_key, rating, is_featured, is_active, created_at, updated_at`

// OfferRepo implementación del puerto OfferRepository sobre PostgreSQL.
type OfferRepo struct {
	q Querier
}

// NewOfferRepository construye el adaptador. Pasar pool o tx (Querier).
func NewOfferRepository(q Querier) *OfferRepo {
	return &OfferRepo{q: q}
}

// Create persiste una nueva oferta.
func (r *OfferRepo) Create(ctx context.Context, o *entity.Offer) error {
	query := `
		INSERT INTO offers (` + offerColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)`
	_, err := r.q.Exec(ctx, query,
		o.ID, o.CompanyID, o.DestinationID, o.Title, o.Description, o.Location,
		o.Category, o.Price, nullDecimal(o.DiscountPrice), o.DiscountType,
		o.StartDate, o.EndDate, o.ImageKey, o.Rating, o.IsFeatured, o.IsActive,
		o.CreatedAt, o.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert offer: %w", err)
	}
	return nil
}

// GetByID obtiene una oferta por ID. Devuelve nil si no existe.
func (r *OfferRepo) GetByID(ctx context.Context, id string) (*entity.Offer, error) {
	query := `SELECT ` + offerColumns + ` FROM offers WHERE id = $1`
	o, err := scanOffer(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get offer: %w", err)
	}
	return o, nil
}

// Update actualiza una oferta existente.
func (r *OfferRepo) Update(ctx context.Context, o *entity.Offer) error {
	query := `
		UPDATE offers
		SET destination_id = $2, title = $3, description = $4, location = $5,
		    category = $6, price = $7, discount_price = $8, discount_type = $9,
		    start_date = $10, end_date = $11, image_key = $12, rating = $13,
		    is_featured = $14, is_active = $15, updated_at = $16
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		o.ID, o.DestinationID, o.Title, o.Description, o.Location, o.Category,
		o.Price, nullDecimal(o.DiscountPrice), o.DiscountType, o.StartDate,
		o.EndDate, o.ImageKey, o.Rating, o.IsFeatured, o.IsActive, o.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update offer: %w", err)
	}
	return nil
}

// Delete elimina una oferta por ID.
func (r *OfferRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM offers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete offer: %w", err)
	}
	return nil
}

// ListByCompany lista ofertas de la empresa con paginación, created_at desc.
func (r *OfferRepo) ListByCompany(ctx context.Context, companyID string, limit, offset int) ([]*entity.Offer, error) {
	query := `
		SELECT ` + offerColumns + ` FROM offers
		WHERE company_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	return r.list(ctx, query, companyID, limit, offset)
}

// CountByCompany cuenta las ofertas de la empresa.
func (r *OfferRepo) CountByCompany(ctx context.Context, companyID string) (int, error) {
	var n int
	err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM offers WHERE company_id = $1`, companyID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count offers: %w", err)
	}
	return n, nil
}

// ListPublic lista ofertas activas del catálogo público con filtros opcionales.
func (r *OfferRepo) ListPublic(ctx context.Context, f repository.PublicFilter, limit, offset int) ([]*entity.Offer, error) {
	query := `SELECT ` + offerColumns + ` FROM offers WHERE is_active = TRUE`
	args := []any{}
	if f.Category != "" {
		args = append(args, f.Category)
		query += fmt.Sprintf(" AND category = $%d", len(args))
	}
	if f.Featured != nil {
		args = append(args, *f.Featured)
		query += fmt.Sprintf(" AND is_featured = $%d", len(args))
	}
	args = append(args, limit, offset)
	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", len(args)-1, len(args))
	return r.list(ctx, query, args...)
}

func (r *OfferRepo) list(ctx context.Context, query string, args ...any) ([]*entity.Offer, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list offers: %w", err)
	}
	defer rows.Close()
	var list []*entity.Offer
	for rows.Next() {
		o, err := scanOffer(rows)
		if err != nil {
			return nil, fmt.Errorf("scan offer: %w", err)
		}
		list = append(list, o)
	}
	return list, rows.Err()
}

func scanOffer(row pgx.Row) (*entity.Offer, error) {
	var o entity.Offer
	var discount decimal.NullDecimal
	err := row.Scan(
		&o.ID, &o.CompanyID, &o.DestinationID, &o.Title, &o.Description,
		&o.Location, &o.Category, &o.Price, &discount, &o.DiscountType,
		&o.StartDate, &o.EndDate, &o.ImageKey, &o.Rating, &o.IsFeatured,
		&o.IsActive, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	o.DiscountPrice = fromNullDecimal(discount)
	return &o, nil
}
