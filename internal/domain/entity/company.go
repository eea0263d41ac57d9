package entity

import "time"

// Estados posibles de una empresa (deben coincidir con el CHECK de la tabla companies).
const (
	CompanyStatusActive    = "active"
	CompanyStatusSuspended = "suspended"
)

// Company representa una empresa de turismo (tenant del marketplace).
// Todo listado (Destination, Offer, Package) pertenece a una empresa y solo
// ella puede administrarlo.
type Company struct {
	ID            string
	Name          string
	LicenseNumber string // número de licencia turística, único en el sistema
	Email         string // único
	Phone         string
	Description   string
	LogoKey       string // clave en el Media Store; vacío = sin logo
	PasswordHash  string
	Status        string // ver constantes CompanyStatus*
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// IsActive indica si la empresa puede operar (login y gestión de listados).
func (c *Company) IsActive() bool {
	return c.Status == CompanyStatusActive
}
