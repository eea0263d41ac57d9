package http_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apphttp "github.com/jhoicas/turismo-api/internal/interfaces/http"
	pkgjwt "github.com/jhoicas/turismo-api/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testCompanyID = "00000000-0000-0000-0000-000000000001"
	testUserID    = "00000000-0000-0000-0000-000000000002"
	testIssuer    = "turismo-api-test"
	testExpMin    = 60
)

// buildTestApp construye una aplicación Fiber mínima con una ruta de empresa
// y una de viajero, cada una con un handler dummy que devuelve la identidad.
func buildTestApp() *fiber.App {
	app := fiber.New()
	app.Get("/company-only", apphttp.RequireCompany(testJWTSecret), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"company_id": apphttp.GetCompanyID(c)})
	})
	app.Get("/traveler-only", apphttp.RequireUser(testJWTSecret), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"user_id": apphttp.GetUserID(c)})
	})
	return app
}

// tokenFor genera un JWT del kind indicado.
func tokenFor(t *testing.T, subjectID, kind string) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, subjectID, kind, testIssuer, testExpMin)
	require.NoError(t, err, "debe generarse un token JWT válido")
	return "Bearer " + tok
}

// doRequest lanza una petición GET y devuelve la respuesta.
func doRequest(t *testing.T, app *fiber.App, path, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests RequireCompany / RequireUser
// ──────────────────────────────────────────────────────────────────────────────

// Caso 1: token de empresa en ruta de empresa → HTTP 200 con el company_id.
func TestRequireCompany_TokenDeEmpresaPasa(t *testing.T) {
	app := buildTestApp()
	resp := doRequest(t, app, "/company-only", tokenFor(t, testCompanyID, pkgjwt.KindCompany))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, testCompanyID, body["company_id"])
}

// Caso 2: token de viajero en ruta de empresa → HTTP 401 WRONG_KIND.
// Un viajero nunca puede operar rutas de gestión.
func TestRequireCompany_TokenDeViajeroBloqueado(t *testing.T) {
	app := buildTestApp()
	resp := doRequest(t, app, "/company-only", tokenFor(t, testUserID, pkgjwt.KindUser))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "WRONG_KIND",
		"la respuesta debe indicar que el token no corresponde al tipo de ruta")
}

// Caso 3: token de empresa en ruta de viajero → HTTP 401.
func TestRequireUser_TokenDeEmpresaBloqueado(t *testing.T) {
	app := buildTestApp()
	resp := doRequest(t, app, "/traveler-only", tokenFor(t, testCompanyID, pkgjwt.KindCompany))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// Caso 4: token de viajero en ruta de viajero → HTTP 200 con el user_id.
func TestRequireUser_TokenDeViajeroPasa(t *testing.T) {
	app := buildTestApp()
	resp := doRequest(t, app, "/traveler-only", tokenFor(t, testUserID, pkgjwt.KindUser))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, testUserID, body["user_id"])
}

// Caso 5: sin header Authorization → HTTP 401 MISSING_TOKEN.
func TestRequireCompany_SinAuthHeader_Retorna401(t *testing.T) {
	app := buildTestApp()
	resp := doRequest(t, app, "/company-only", "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "MISSING_TOKEN")
}

// Caso 6: token malformado → HTTP 401 INVALID_TOKEN.
func TestRequireCompany_TokenInvalido_Retorna401(t *testing.T) {
	app := buildTestApp()
	resp := doRequest(t, app, "/company-only", "Bearer token.invalido.aqui")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// Caso 7: header sin esquema Bearer → HTTP 401.
func TestRequireCompany_EsquemaIncorrecto_Retorna401(t *testing.T) {
	app := buildTestApp()
	resp := doRequest(t, app, "/company-only", "Basic abc123")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests del paquete jwt: integridad del generate/parse con kind
// ──────────────────────────────────────────────────────────────────────────────

func TestJWT_GenerateAndParse_ConKind(t *testing.T) {
	tok, err := pkgjwt.Generate(testJWTSecret, testCompanyID, pkgjwt.KindCompany, testIssuer, testExpMin)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	subjectID, kind, err := pkgjwt.Parse(testJWTSecret, tok)
	require.NoError(t, err)

	assert.Equal(t, testCompanyID, subjectID)
	assert.Equal(t, pkgjwt.KindCompany, kind)
}

func TestJWT_TokenExpirado_RetornaError(t *testing.T) {
	// Token con expiración -1 minuto (ya expirado)
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, pkgjwt.KindUser, testIssuer, -1)
	require.NoError(t, err)

	_, _, err = pkgjwt.Parse(testJWTSecret, tok)
	assert.Error(t, err, "token expirado debe retornar error")
}

func TestJWT_SecretIncorrecto_RetornaError(t *testing.T) {
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, pkgjwt.KindUser, testIssuer, testExpMin)
	require.NoError(t, err)

	_, _, err = pkgjwt.Parse("otro-secret-completamente-distinto", tok)
	assert.Error(t, err, "secret incorrecto debe invalidar el token")
}
