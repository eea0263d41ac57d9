package usecase

import (
	"context"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/turismo-api/internal/application/dto"
	"github.com/jhoicas/turismo-api/internal/application/ports"
	"github.com/jhoicas/turismo-api/internal/domain"
	"github.com/jhoicas/turismo-api/internal/domain/entity"
	"github.com/jhoicas/turismo-api/internal/domain/repository"
)

// CompanyUseCase perfil de la empresa autenticada: lectura, edición y cambio
// de contraseña. Email y número de licencia son inmutables tras el registro.
type CompanyUseCase struct {
	repo  repository.CompanyRepository
	media ports.MediaStore
}

// NewCompanyUseCase construye el caso de uso.
func NewCompanyUseCase(repo repository.CompanyRepository, media ports.MediaStore) *CompanyUseCase {
	return &CompanyUseCase{repo: repo, media: media}
}

// GetProfile devuelve el perfil de la empresa con el logo resuelto a URL.
func (uc *CompanyUseCase) GetProfile(ctx context.Context, companyID string) (*dto.CompanyProfileResponse, error) {
	c, err := uc.repo.GetByID(ctx, companyID)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	return uc.toProfile(c), nil
}

// UpdateProfile actualiza nombre, teléfono y descripción; el logo nuevo se
// guarda primero y el anterior se borra después de persistir.
func (uc *CompanyUseCase) UpdateProfile(ctx context.Context, companyID string, in dto.UpdateCompanyProfileRequest, logo *ports.Upload) (*dto.CompanyProfileResponse, error) {
	c, err := uc.repo.GetByID(ctx, companyID)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}

	if in.Name != nil {
		if *in.Name == "" {
			return nil, domain.NewValidationError("name", "el nombre no puede quedar vacío")
		}
		c.Name = *in.Name
	}
	if in.Phone != nil {
		c.Phone = *in.Phone
	}
	if in.Description != nil {
		c.Description = *in.Description
	}

	newKey, err := storeUpload(uc.media, logo, nsLogos)
	if err != nil {
		return nil, err
	}
	oldKey := c.LogoKey
	if newKey != "" {
		c.LogoKey = newKey
	}
	c.UpdatedAt = time.Now()

	if err := swapImage(uc.media, oldKey, newKey, func() error { return uc.repo.Update(ctx, c) }); err != nil {
		return nil, err
	}
	return uc.toProfile(c), nil
}

// ChangePassword verifica la contraseña actual y persiste el hash de la nueva.
func (uc *CompanyUseCase) ChangePassword(ctx context.Context, companyID string, in dto.ChangePasswordRequest) error {
	if len(in.NewPassword) < 8 {
		return domain.NewValidationError("new_password", "mínimo 8 caracteres")
	}
	c, err := uc.repo.GetByID(ctx, companyID)
	if err != nil {
		return err
	}
	if c == nil {
		return domain.ErrNotFound
	}
	if bcrypt.CompareHashAndPassword([]byte(c.PasswordHash), []byte(in.CurrentPassword)) != nil {
		return domain.ErrUnauthorized
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	c.PasswordHash = string(hash)
	c.UpdatedAt = time.Now()
	return uc.repo.Update(ctx, c)
}

func (uc *CompanyUseCase) toProfile(c *entity.Company) *dto.CompanyProfileResponse {
	var logoURL *string
	if c.LogoKey != "" {
		if u := uc.media.URLFor(c.LogoKey); u != "" {
			logoURL = &u
		}
	}
	return &dto.CompanyProfileResponse{
		ID:            c.ID,
		Name:          c.Name,
		LicenseNumber: c.LicenseNumber,
		Email:         c.Email,
		Phone:         c.Phone,
		Description:   c.Description,
		LogoURL:       logoURL,
		Status:        c.Status,
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     c.UpdatedAt,
	}
}
