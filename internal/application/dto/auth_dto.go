package dto

// RegisterCompanyRequest registro de una empresa de turismo.
type RegisterCompanyRequest struct {
	Name          string `json:"name" validate:"required,min=1,max=200"`
	LicenseNumber string `json:"license_number" validate:"required"`
	Email         string `json:"email" validate:"required,email"`
	Phone         string `json:"phone"`
	Password      string `json:"password" validate:"required,min=8"`
}

// RegisterUserRequest registro de un viajero.
type RegisterUserRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Phone    string `json:"phone"`
	Password string `json:"password" validate:"required,min=8"`
}

// LoginRequest credenciales de login (empresa o viajero según endpoint).
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// TokenResponse respuesta de login/registro con el JWT emitido.
type TokenResponse struct {
	Token string `json:"token"`
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}
