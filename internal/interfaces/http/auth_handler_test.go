package http_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ──────────────────────────────────────────────────────────────────────────────
// Tests registro
// ──────────────────────────────────────────────────────────────────────────────

func TestAuthHandler_Register_Crea201ConTokenYUsuario(t *testing.T) {
	env := newTestEnv(t)
	resp := doJSON(t, env.app, http.MethodPost, "/api/auth/register", "", map[string]interface{}{
		"username": "maria",
		"email":    "maria@test.local",
		"password": "secreta123",
	})
	defer resp.Body.Close()

	require.Equal(t, http.StatusCreated, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, true, body["success"])

	data := body["data"].(map[string]interface{})
	assert.NotEmpty(t, data["token"], "el registro debe devolver un token")

	user := data["user"].(map[string]interface{})
	assert.Equal(t, "maria", user["username"])
	assert.Equal(t, "user", user["role"], "los registros públicos siempre crean rol user")
	assert.NotContains(t, user, "password", "la respuesta nunca expone el password")

	// El token recién emitido sirve para rutas protegidas
	protected := doJSON(t, env.app, http.MethodGet, "/api/sweets/", "Bearer "+data["token"].(string), nil)
	defer protected.Body.Close()
	assert.Equal(t, http.StatusOK, protected.StatusCode)
}

func TestAuthHandler_Register_CamposFaltantes400(t *testing.T) {
	env := newTestEnv(t)
	resp := doJSON(t, env.app, http.MethodPost, "/api/auth/register", "", map[string]interface{}{
		"username": "maria",
	})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Please provide all required fields", decodeBody(t, resp)["message"])
}

func TestAuthHandler_Register_EmailDuplicado400(t *testing.T) {
	env := newTestEnv(t)
	resp := doJSON(t, env.app, http.MethodPost, "/api/auth/register", "", map[string]interface{}{
		"username": "otro",
		"email":    env.user.Email,
		"password": "secreta123",
	})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "User already exists", decodeBody(t, resp)["message"])
}

func TestAuthHandler_Register_UsernameDuplicado400(t *testing.T) {
	env := newTestEnv(t)
	resp := doJSON(t, env.app, http.MethodPost, "/api/auth/register", "", map[string]interface{}{
		"username": env.user.Username,
		"email":    "nuevo@test.local",
		"password": "secreta123",
	})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "User already exists", decodeBody(t, resp)["message"])
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests login
// ──────────────────────────────────────────────────────────────────────────────

func TestAuthHandler_Login_CredencialesValidas200(t *testing.T) {
	env := newTestEnv(t)
	resp := doJSON(t, env.app, http.MethodPost, "/api/auth/login", "", map[string]interface{}{
		"email":    env.user.Email,
		"password": "password123",
	})
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	data := decodeBody(t, resp)["data"].(map[string]interface{})
	assert.NotEmpty(t, data["token"])
	assert.Equal(t, env.user.Email, data["user"].(map[string]interface{})["email"])
}

func TestAuthHandler_Login_PasswordIncorrecto401(t *testing.T) {
	env := newTestEnv(t)
	resp := doJSON(t, env.app, http.MethodPost, "/api/auth/login", "", map[string]interface{}{
		"email":    env.user.Email,
		"password": "equivocado",
	})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "Invalid credentials", decodeBody(t, resp)["message"])
}

// Email desconocido responde igual que password incorrecto para no revelar
// qué cuentas existen.
func TestAuthHandler_Login_EmailDesconocido401(t *testing.T) {
	env := newTestEnv(t)
	resp := doJSON(t, env.app, http.MethodPost, "/api/auth/login", "", map[string]interface{}{
		"email":    "nadie@test.local",
		"password": "password123",
	})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "Invalid credentials", decodeBody(t, resp)["message"])
}

func TestAuthHandler_Login_CamposFaltantes400(t *testing.T) {
	env := newTestEnv(t)
	resp := doJSON(t, env.app, http.MethodPost, "/api/auth/login", "", map[string]interface{}{
		"email": env.user.Email,
	})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Please provide email and password", decodeBody(t, resp)["message"])
}
