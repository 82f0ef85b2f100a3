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

	apphttp "github.com/bcrcell/bcr-erp/internal/interfaces/http"
	pkgjwt "github.com/bcrcell/bcr-erp/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret = "secret-key-untuk-unit-test"
	testIssuer    = "bcr-erp-test"
	testExpMin    = 60
)

// buildTestApp aplikasi Fiber minimal: AuthMiddleware + handler dummy yang
// memantulkan username dari token.
func buildTestApp() *fiber.App {
	app := fiber.New()
	app.Get("/me", apphttp.AuthMiddleware(testJWTSecret), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"username": apphttp.GetUsername(c)})
	})
	return app
}

func validToken(t *testing.T) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, "admin", testIssuer, testExpMin)
	require.NoError(t, err, "token JWT valid harus bisa dibuat")
	return "Bearer " + tok
}

func doRequest(t *testing.T, app *fiber.App, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// AuthMiddleware
// ──────────────────────────────────────────────────────────────────────────────

func TestAuthMiddleware_TokenValidMeneruskanUsername(t *testing.T) {
	app := buildTestApp()
	resp := doRequest(t, app, validToken(t))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "admin", body["username"])
}

func TestAuthMiddleware_TanpaHeaderRetorna401(t *testing.T) {
	app := buildTestApp()
	resp := doRequest(t, app, "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "MISSING_TOKEN")
}

func TestAuthMiddleware_FormatHeaderSalah(t *testing.T) {
	app := buildTestApp()
	resp := doRequest(t, app, "Basic admin:admin")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "INVALID_TOKEN")
}

func TestAuthMiddleware_TokenRusak(t *testing.T) {
	app := buildTestApp()
	resp := doRequest(t, app, "Bearer token.rusak.disini")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_TokenKedaluwarsa(t *testing.T) {
	tok, err := pkgjwt.Generate(testJWTSecret, "admin", testIssuer, -1)
	require.NoError(t, err)

	app := buildTestApp()
	resp := doRequest(t, app, "Bearer "+tok)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// pkg/jwt — integritas generate/parse
// ──────────────────────────────────────────────────────────────────────────────

func TestJWT_GenerateDanParse(t *testing.T) {
	tok, err := pkgjwt.Generate(testJWTSecret, "admin", testIssuer, testExpMin)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	username, err := pkgjwt.Parse(testJWTSecret, tok)
	require.NoError(t, err)
	assert.Equal(t, "admin", username)
}

func TestJWT_SecretBerbedaDitolak(t *testing.T) {
	tok, err := pkgjwt.Generate(testJWTSecret, "admin", testIssuer, testExpMin)
	require.NoError(t, err)

	_, err = pkgjwt.Parse("secret-lain-sama-sekali", tok)
	assert.Error(t, err, "secret berbeda harus menggagalkan verifikasi")
}
