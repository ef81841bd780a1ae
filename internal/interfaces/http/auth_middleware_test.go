package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/sweetshop-api/internal/application/auth"
	"github.com/jhoicas/sweetshop-api/internal/application/inventory"
	"github.com/jhoicas/sweetshop-api/internal/application/usecase"
	"github.com/jhoicas/sweetshop-api/internal/domain/entity"
	apphttp "github.com/jhoicas/sweetshop-api/internal/interfaces/http"
	pkgjwt "github.com/jhoicas/sweetshop-api/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testIssuer    = "sweet-shop-test"
	testExpMin    = 60
)

// testEnv aplicación Fiber completa sobre repos en memoria, con un usuario
// normal y un admin ya registrados.
type testEnv struct {
	app    *fiber.App
	users  *memUserRepo
	sweets *memSweetRepo
	admin  *entity.User
	user   *entity.User
}

// stubReportGen evita generar un PDF real en los tests del handler.
type stubReportGen struct{}

func (stubReportGen) GenerateStockReport(_ context.Context, _ []*entity.Sweet, _ time.Time) ([]byte, error) {
	return []byte("%PDF-1.7 stub"), nil
}

// newTestEnv monta el router real con todos los casos de uso cableados a
// los fakes en memoria.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	users := newMemUserRepo()
	sweets := newMemSweetRepo()
	txRunner := &memTxRunner{sweets: sweets}

	authUC := auth.NewAuthUseCase(users, auth.JWTConfig{
		Secret:     testJWTSecret,
		ExpMinutes: testExpMin,
		Issuer:     testIssuer,
	})
	sweetUC := usecase.NewSweetUseCase(sweets)
	stockUC := inventory.NewStockUseCase(txRunner)
	reportUC := usecase.NewReportUseCase(sweets, stubReportGen{})

	app := fiber.New(fiber.Config{
		ErrorHandler: apphttp.ErrorHandler(false),
	})
	apphttp.Router(app, apphttp.RouterDeps{
		AuthUC:      authUC,
		SweetUC:     sweetUC,
		StockUC:     stockUC,
		ReportUC:    reportUC,
		UserRepo:    users,
		JWTSecret:   testJWTSecret,
		Development: false,
	})

	env := &testEnv{app: app, users: users, sweets: sweets}
	env.admin = env.seedUser(t, "admin", "admin@test.local", entity.RoleAdmin)
	env.user = env.seedUser(t, "cliente", "cliente@test.local", entity.RoleUser)
	return env
}

func (e *testEnv) seedUser(t *testing.T, username, email string, role entity.Role) *entity.User {
	t.Helper()
	now := time.Now()
	u := &entity.User{
		ID:        uuid.New().String(),
		Username:  username,
		Email:     email,
		Role:      role,
		CreatedAt: now,
		UpdatedAt: now,
	}
	require.NoError(t, u.SetPassword("password123"))
	require.NoError(t, e.users.Create(u))
	return u
}

func (e *testEnv) seedSweet(t *testing.T, name, category, price string, quantity int) *entity.Sweet {
	t.Helper()
	now := time.Now()
	s := &entity.Sweet{
		ID:        uuid.New().String(),
		Name:      name,
		Category:  category,
		Price:     decimal.RequireFromString(price),
		Quantity:  quantity,
		CreatedAt: now,
		UpdatedAt: now,
	}
	require.NoError(t, e.sweets.Create(s))
	return s
}

// tokenFor genera un Bearer token válido para el usuario dado.
func tokenFor(t *testing.T, u *entity.User) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, u.ID, u.Role.String(), testIssuer, testExpMin)
	require.NoError(t, err, "debe generarse un token JWT válido")
	return "Bearer " + tok
}

// doJSON lanza una petición con body JSON opcional y header Authorization opcional.
func doJSON(t *testing.T, app *fiber.App, method, path, authHeader string, body interface{}) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// decodeBody decodifica el envelope JSON de la respuesta.
func decodeBody(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests AuthMiddleware
// ──────────────────────────────────────────────────────────────────────────────

// Caso 1: Sin header Authorization → HTTP 401.
func TestAuthMiddleware_SinAuthHeader_Retorna401(t *testing.T) {
	env := newTestEnv(t)
	resp := doJSON(t, env.app, http.MethodGet, "/api/sweets/", "", nil)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Not authorized, no token", body["message"])
}

// Caso 2: Header sin esquema Bearer → HTTP 401 sin token.
func TestAuthMiddleware_EsquemaIncorrecto_Retorna401(t *testing.T) {
	env := newTestEnv(t)
	resp := doJSON(t, env.app, http.MethodGet, "/api/sweets/", "Basic abc123", nil)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "Not authorized, no token", decodeBody(t, resp)["message"])
}

// Caso 3: Token malformado → HTTP 401 token failed.
func TestAuthMiddleware_TokenInvalido_Retorna401(t *testing.T) {
	env := newTestEnv(t)
	resp := doJSON(t, env.app, http.MethodGet, "/api/sweets/", "Bearer token.invalido.aqui", nil)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "Not authorized, token failed", decodeBody(t, resp)["message"])
}

// Caso 4: Token expirado → HTTP 401 token failed.
func TestAuthMiddleware_TokenExpirado_Retorna401(t *testing.T) {
	env := newTestEnv(t)
	tok, err := pkgjwt.Generate(testJWTSecret, env.user.ID, env.user.Role.String(), testIssuer, -1)
	require.NoError(t, err)

	resp := doJSON(t, env.app, http.MethodGet, "/api/sweets/", "Bearer "+tok, nil)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "Not authorized, token failed", decodeBody(t, resp)["message"])
}

// Caso 5: Token firmado válido pero el usuario ya no existe en la DB → HTTP 401.
// Así un usuario dado de baja pierde acceso aunque su token siga vigente.
func TestAuthMiddleware_UsuarioInexistente_Retorna401(t *testing.T) {
	env := newTestEnv(t)
	ghost := &entity.User{ID: uuid.New().String(), Role: entity.RoleUser}
	resp := doJSON(t, env.app, http.MethodGet, "/api/sweets/", tokenFor(t, ghost), nil)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "User not found", decodeBody(t, resp)["message"])
}

// Caso 6: Token válido de usuario existente → HTTP 200.
func TestAuthMiddleware_TokenValido_Pasa(t *testing.T) {
	env := newTestEnv(t)
	resp := doJSON(t, env.app, http.MethodGet, "/api/sweets/", tokenFor(t, env.user), nil)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests RequireRole
// ──────────────────────────────────────────────────────────────────────────────

// Caso 1: Usuario sin rol admin en ruta de escritura → HTTP 403.
func TestRequireRole_UserBloqueadoEnRutaAdmin(t *testing.T) {
	env := newTestEnv(t)
	resp := doJSON(t, env.app, http.MethodPost, "/api/sweets/", tokenFor(t, env.user), map[string]interface{}{
		"name":     "Toffee",
		"category": "caramel",
		"price":    "1.50",
		"quantity": 10,
	})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode,
		"un usuario normal no debe poder crear dulces")
	assert.Equal(t, "Not authorized to access this route", decodeBody(t, resp)["message"])
}

// Caso 2: Admin en ruta de escritura → pasa (HTTP 201).
func TestRequireRole_AdminAccedeRutaAdmin(t *testing.T) {
	env := newTestEnv(t)
	resp := doJSON(t, env.app, http.MethodPost, "/api/sweets/", tokenFor(t, env.admin), map[string]interface{}{
		"name":     "Toffee",
		"category": "caramel",
		"price":    "1.50",
		"quantity": 10,
	})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusCreated, resp.StatusCode)
}

// Caso 3: El rol del usuario en la DB manda, no el claim del token.
// Un token con claim "admin" pero cuyo usuario real es "user" debe ser 403.
func TestRequireRole_RolDeLaDBPrevaleceSobreElClaim(t *testing.T) {
	env := newTestEnv(t)
	tok, err := pkgjwt.Generate(testJWTSecret, env.user.ID, "admin", testIssuer, testExpMin)
	require.NoError(t, err)

	resp := doJSON(t, env.app, http.MethodDelete, "/api/sweets/"+uuid.New().String(), "Bearer "+tok, nil)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode,
		"el rol efectivo sale de la DB, no del claim del token")
}

// ──────────────────────────────────────────────────────────────────────────────
// Rutas no registradas
// ──────────────────────────────────────────────────────────────────────────────

func TestRouter_RutaInexistente_Retorna404(t *testing.T) {
	env := newTestEnv(t)
	resp := doJSON(t, env.app, http.MethodGet, "/api/no-existe", "", nil)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Route not found", decodeBody(t, resp)["message"])
}
