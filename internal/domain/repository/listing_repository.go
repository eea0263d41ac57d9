package repository

import (
	"context"

	"github.com/jhoicas/turismo-api/internal/domain/entity"
)

// PublicFilter filtros del catálogo público (solo listados activos).
type PublicFilter struct {
	Category string // vacío = todas
	Featured *bool  // nil = sin filtrar
}

// DestinationRepository define el puerto de persistencia para Destination.
// Los listados por empresa se ordenan por created_at descendente.
type DestinationRepository interface {
	Create(ctx context.Context, d *entity.Destination) error
	GetByID(ctx context.Context, id string) (*entity.Destination, error)
	Update(ctx context.Context, d *entity.Destination) error
	Delete(ctx context.Context, id string) error
	ListByCompany(ctx context.Context, companyID string, limit, offset int) ([]*entity.Destination, error)
	CountByCompany(ctx context.Context, companyID string) (int, error)
	ListPublic(ctx context.Context, f PublicFilter, limit, offset int) ([]*entity.Destination, error)

	// NamesByIDs devuelve id → título para reducir el destino vinculado de
	// ofertas y paquetes sin una consulta por fila.
	NamesByIDs(ctx context.Context, ids []string) (map[string]string, error)
}

// OfferRepository define el puerto de persistencia para Offer.
type OfferRepository interface {
	Create(ctx context.Context, o *entity.Offer) error
	GetByID(ctx context.Context, id string) (*entity.Offer, error)
	Update(ctx context.Context, o *entity.Offer) error
	Delete(ctx context.Context, id string) error
	ListByCompany(ctx context.Context, companyID string, limit, offset int) ([]*entity.Offer, error)
	CountByCompany(ctx context.Context, companyID string) (int, error)
	ListPublic(ctx context.Context, f PublicFilter, limit, offset int) ([]*entity.Offer, error)
}

// PackageRepository define el puerto de persistencia para Package.
type PackageRepository interface {
	Create(ctx context.Context, p *entity.Package) error
	GetByID(ctx context.Context, id string) (*entity.Package, error)
	Update(ctx context.Context, p *entity.Package) error
	Delete(ctx context.Context, id string) error
	ListByCompany(ctx context.Context, companyID string, limit, offset int) ([]*entity.Package, error)
	CountByCompany(ctx context.Context, companyID string) (int, error)
	ListPublic(ctx context.Context, f PublicFilter, limit, offset int) ([]*entity.Package, error)
}
