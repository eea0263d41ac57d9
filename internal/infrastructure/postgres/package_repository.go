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

var _ repository.PackageRepository = (*PackageRepo)(nil)

const packageColumns = `id, company_id, destination_id, title, subtitle, description, location, category, price, discount_price, discount_type, start_date, end_date, image_key, rating, is_featured, is_active, created_at, updated_at`

// PackageRepo implementación del puerto PackageRepository sobre PostgreSQL.
type PackageRepo struct {
	q Querier
}

// NewPackageRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPackageRepository(q Querier) *PackageRepo {
	return &PackageRepo{q: q}
}

// Create persiste un nuevo paquete.
func (r *PackageRepo) Create(ctx context.Context, p *entity.Package) error {
	query := `
		INSERT INTO packages (` + packageColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)`
	_, err := r.q.Exec(ctx, query,
		p.ID, p.CompanyID, p.DestinationID, p.Title, p.Subtitle, p.Description,
		p.Location, p.Category, p.Price, nullDecimal(p.DiscountPrice),
		p.DiscountType, p.StartDate, p.EndDate, p.ImageKey, p.Rating,
		p.IsFeatured, p.IsActive, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert package: %w", err)
	}
	return nil
}

// GetByID obtiene un paquete por ID. Devuelve nil si no existe.
func (r *PackageRepo) GetByID(ctx context.Context, id string) (*entity.Package, error) {
	query := `SELECT ` + packageColumns + ` FROM packages WHERE id = $1`
	p, err := scanPackage(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get package: %w", err)
	}
	return p, nil
}

// Update actualiza un paquete existente.
func (r *PackageRepo) Update(ctx context.Context, p *entity.Package) error {
	query := `
		UPDATE packages
		SET destination_id = $2, title = $3, subtitle = $4, description = $5,
		    location = $6, category = $7, price = $8, discount_price = $9,
		    discount_type = $10, start_date = $11, end_date = $12, image_key = $13,
		    rating = $14, is_featured = $15, is_active = $16, updated_at = $17
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		p.ID, p.DestinationID, p.Title, p.Subtitle, p.Description, p.Location,
		p.Category, p.Price, nullDecimal(p.DiscountPrice), p.DiscountType,
		p.StartDate, p.EndDate, p.ImageKey, p.Rating, p.IsFeatured, p.IsActive,
		p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update package: %w", err)
	}
	return nil
}

// Delete elimina un paquete por ID.
func (r *PackageRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM packages WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete package: %w", err)
	}
	return nil
}

// ListByCompany lista paquetes de la empresa con paginación, created_at desc.
func (r *PackageRepo) ListByCompany(ctx context.Context, companyID string, limit, offset int) ([]*entity.Package, error) {
	query := `
		SELECT ` + packageColumns + ` FROM packages
		WHERE company_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	return r.list(ctx, query, companyID, limit, offset)
}

// CountByCompany cuenta los paquetes de la empresa.
func (r *PackageRepo) CountByCompany(ctx context.Context, companyID string) (int, error) {
	var n int
	err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM packages WHERE company_id = $1`, companyID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count packages: %w", err)
	}
	return n, nil
}

// ListPublic lista paquetes activos del catálogo público con filtros opcionales.
func (r *PackageRepo) ListPublic(ctx context.Context, f repository.PublicFilter, limit, offset int) ([]*entity.Package, error) {
	query := `SELECT ` + packageColumns + ` FROM packages WHERE is_active = TRUE`
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

func (r *PackageRepo) list(ctx context.Context, query string, args ...any) ([]*entity.Package, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list packages: %w", err)
	}
	defer rows.Close()
	var list []*entity.Package
	for rows.Next() {
		p, err := scanPackage(rows)
		if err != nil {
			return nil, fmt.Errorf("scan package: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

func scanPackage(row pgx.Row) (*entity.Package, error) {
	var p entity.Package
	var discount decimal.NullDecimal
	err := row.Scan(
		&p.ID, &p.CompanyID, &p.DestinationID, &p.Title, &p.Subtitle,
		&p.Description, &p.Location, &p.Category, &p.Price, &discount,
		&p.DiscountType, &p.StartDate, &p.EndDate, &p.ImageKey, &p.Rating,
		&p.IsFeatured, &p.IsActive, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	p.DiscountPrice = fromNullDecimal(discount)
	return &p, nil
}
