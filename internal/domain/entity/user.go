package entity

import "time"

// User representa un viajero (usuario final que navega, guarda favoritos y reserva).
type User struct {
	ID           string
	Name         string
	Email        string // único
	PasswordHash string
	Phone        string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
