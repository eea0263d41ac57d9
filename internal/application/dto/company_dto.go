package dto

import "time"

// CompanyProfileResponse perfil de la empresa autenticada.
type CompanyProfileResponse struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	LicenseNumber string    `json:"license_number"`
	Email         string    `json:"email"`
	Phone         string    `json:"phone"`
	Description   string    `json:"description"`
	LogoURL       *string   `json:"logo_url"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// UpdateCompanyProfileRequest entrada para actualizar el perfil.
// Email y número de licencia son inmutables.
type UpdateCompanyProfileRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=1,max=200"`
	Phone       *string `json:"phone"`
	Description *string `json:"description"`
}

// ChangePasswordRequest entrada para cambiar la contraseña de la empresa.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=8"`
}
