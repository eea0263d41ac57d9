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

var _ repository.DestinationRepository = (*DestinationRepo)(nil)

const destinationColumns = `id, company_id, title, description, location, category, price, discount_price, image_key, rating, is_featured, is_active, created_at, updated_at`

// DestinationRepo implementación del puerto DestinationRepository sobre PostgreSQL.
type DestinationRepo struct {
	q Querier
}

// NewDestinationRepository construye el adaptador. Pasar pool o tx (Querier).
func NewDestinationRepository(q Querier) *DestinationRepo {
	return &DestinationRepo{q: q}
}

// Create persiste un nuevo destino.
func (r *DestinationRepo) Create(ctx context.Context, d *entity.Destination) error {
	query := `
		INSERT INTO destinations (` + destinationColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err := r.q.Exec(ctx, query,
		d.ID, d.CompanyID, d.Title, d.Description, d.Location, d.Category,
		d.Price, nullDecimal(d.DiscountPrice), d.ImageKey, d.Rating,
		d.IsFeatured, d.IsActive, d.CreatedAt, d.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert destination: %w", err)
	}
	return nil
}

// GetByID obtiene un destino por ID. Devuelve nil si no existe.
func (r *DestinationRepo) GetByID(ctx context.Context, id string) (*entity.Destination, error) {
	query := `SELECT ` + destinationColumns + ` FROM destinations WHERE id = $1`
	d, err := scanDestination(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get destination: %w", err)
	}
	return d, nil
}

// Update actualiza un destino existente.
func (r *DestinationRepo) Update(ctx context.Context, d *entity.Destination) error {
	query := `
		UPDATE destinations
		SET title = $2, description = $3, location = $4, category = $5, price = $6,
		    discount_price = $7, image_key = $8, rating = $9, is_featured = $10,
		    is_active = $11, updated_at = $12
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		d.ID, d.Title, d.Description, d.Location, d.Category, d.Price,
		nullDecimal(d.DiscountPrice), d.ImageKey, d.Rating, d.IsFeatured,
		d.IsActive, d.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update destination: %w", err)
	}
	return nil
}

// Delete elimina un destino por ID.
func (r *DestinationRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM destinations WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete destination: %w", err)
	}
	return nil
}

// ListByCompany lista destinos de la empresa con paginación, created_at desc.
func (r *DestinationRepo) ListByCompany(ctx context.Context, companyID string, limit, offset int) ([]*entity.Destination, error) {
	query := `
		SELECT ` + destinationColumns + ` FROM destinations
		WHERE company_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	return r.list(ctx, query, companyID, limit, offset)
}

// CountByCompany cuenta los destinos de la empresa.
func (r *DestinationRepo) CountByCompany(ctx context.Context, companyID string) (int, error) {
	var n int
	err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM destinations WHERE company_id = $1`, companyID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count destinations: %w", err)
	}
	return n, nil
}

// ListPublic lista destinos activos del catálogo público con filtros opcionales.
func (r *DestinationRepo) ListPublic(ctx context.Context, f repository.PublicFilter, limit, offset int) ([]*entity.Destination, error) {
	query := `SELECT ` + destinationColumns + ` FROM destinations WHERE is_active = TRUE`
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

// NamesByIDs devuelve id → título para el conjunto de ids dado.
func (r *DestinationRepo) NamesByIDs(ctx context.Context, ids []string) (map[string]string, error) {
	names := make(map[string]string, len(ids))
	if len(ids) == 0 {
		return names, nil
	}
	rows, err := r.q.Query(ctx, `SELECT id, title FROM destinations WHERE id = ANY($1)`, ids)
	if err != nil {
		return nil, fmt.Errorf("destination names: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var id, title string
		if err := rows.Scan(&id, &title); err != nil {
			return nil, fmt.Errorf("scan destination name: %w", err)
		}
		names[id] = title
	}
	return names, rows.Err()
}

func (r *DestinationRepo) list(ctx context.Context, query string, args ...any) ([]*entity.Destination, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list destinations: %w", err)
	}
	defer rows.Close()
	var list []*entity.Destination
	for rows.Next() {
		d, err := scanDestination(rows)
		if err != nil {
			return nil, fmt.Errorf("scan destination: %w", err)
		}
		list = append(list, d)
	}
	return list, rows.Err()
}

// scanDestination escanea una fila de destinations (row o rows).
func scanDestination(row pgx.Row) (*entity.Destination, error) {
	var d entity.Destination
	var discount decimal.NullDecimal
	err := row.Scan(
		&d.ID, &d.CompanyID, &d.Title, &d.Description, &d.Location, &d.Category,
		&d.Price, &discount, &d.ImageKey, &d.Rating, &d.IsFeatured, &d.IsActive,
		&d.CreatedAt, &d.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	d.DiscountPrice = fromNullDecimal(discount)
	return &d, nil
}

// nullDecimal convierte *decimal.Decimal al tipo nullable de la librería.
func nullDecimal(d *decimal.Decimal) decimal.NullDecimal {
	if d == nil {
		return decimal.NullDecimal{}
	}
	return decimal.NullDecimal{Decimal: *d, Valid: true}
}

func fromNullDecimal(nd decimal.NullDecimal) *decimal.Decimal {
	if !nd.Valid {
		return nil
	}
	d := nd.Decimal
	return &d
}
