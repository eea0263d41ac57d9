package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/turismo-api/pkg/jwt"
)

// Locals keys para la identidad autenticada en Fiber.
const (
	LocalCompanyID = "company_id"
	LocalUserID    = "user_id"
)

// RequireCompany valida el Bearer Token, exige que sea de una empresa y deja
// su id en c.Locals(LocalCompanyID).
func RequireCompany(jwtSecret string) fiber.Handler {
	return requireKind(jwtSecret, jwt.KindCompany, LocalCompanyID)
}

// RequireUser valida el Bearer Token, exige que sea de un viajero y deja su
// id en c.Locals(LocalUserID).
func RequireUser(jwtSecret string) fiber.Handler {
	return requireKind(jwtSecret, jwt.KindUser, LocalUserID)
}

func requireKind(jwtSecret, wantKind, localKey string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token, errMsg := bearerToken(c)
		if token == "" {
			return unauthorized(c, "MISSING_TOKEN", errMsg)
		}
		subjectID, kind, err := jwt.Parse(jwtSecret, token)
		if err != nil {
			return unauthorized(c, "INVALID_TOKEN", "token inválido o expirado")
		}
		if kind != wantKind {
			// Un token de viajero no sirve en rutas de empresa ni al revés.
			return unauthorized(c, "WRONG_KIND", "el token no corresponde a este tipo de ruta")
		}
		c.Locals(localKey, subjectID)
		return c.Next()
	}
}

func bearerToken(c *fiber.Ctx) (token, errMsg string) {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return "", "Authorization header requerido"
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", "formato: Bearer <token>"
	}
	t := strings.TrimSpace(parts[1])
	if t == "" {
		return "", "token vacío"
	}
	return t, ""
}

// GetCompanyID devuelve el id de la empresa autenticada (después de RequireCompany).
func GetCompanyID(c *fiber.Ctx) string {
	v := c.Locals(LocalCompanyID)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

// GetUserID devuelve el id del viajero autenticado (después de RequireUser).
func GetUserID(c *fiber.Ctx) string {
	v := c.Locals(LocalUserID)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}
