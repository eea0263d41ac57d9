package repository

import (
	"context"

	"github.com/jhoicas/turismo-api/internal/domain/entity"
)

// CompanyRepository define el puerto de persistencia para Company (DIP).
type CompanyRepository interface {
	Create(ctx context.Context, company *entity.Company) error
	GetByID(ctx context.Context, id string) (*entity.Company, error)
	GetByEmail(ctx context.Context, email string) (*entity.Company, error)
	GetByLicense(ctx context.Context, license string) (*entity.Company, error)
	// Update persiste nombre, teléfono, descripción, logo y hash de password.
	// LicenseNumber y Email son inmutables después del registro.
	Update(ctx context.Context, company *entity.Company) error
}
