package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrConflict           = errors.New("conflicto con el estado actual")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrCompanySuspended   = errors.New("empresa suspendida")
)

// ValidationError error de validación con mensajes por campo.
// Se construye en los use cases y el handler lo serializa con HTTP 400.
type ValidationError struct {
	Fields map[string]string
}

// Error implementa error. Lista los campos inválidos en orden indefinido.
func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for f, msg := range e.Fields {
		parts = append(parts, f+": "+msg)
	}
	return "validación: " + strings.Join(parts, "; ")
}

// NewValidationError construye un ValidationError para un solo campo.
func NewValidationError(field, msg string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: msg}}
}

// Addf agrega un mensaje formateado para el campo dado.
func (e *ValidationError) Addf(field, format string, args ...any) {
	if e.Fields == nil {
		e.Fields = map[string]string{}
	}
	e.Fields[field] = fmt.Sprintf(format, args...)
}

// AsValidation devuelve el *ValidationError si err lo es (o lo envuelve).
func AsValidation(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
