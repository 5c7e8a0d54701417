package middleware

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"movie_ratings_api/configs"
	"movie_ratings_api/util"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setJwtSecret(t *testing.T, secret string) {
	t.Helper()
	t.Setenv("JWT_SECRET", secret)
	configs.LoadEnvVariables()
}

func newGateApp() *fiber.App {
	app := fiber.New()
	app.Post("/graphql", AuthMiddleware, func(c *fiber.Ctx) error {
		claims := UserFromLocals(c)
		if claims == nil {
			return c.SendString("anonymous")
		}
		return c.SendString("user:" + claims.Username)
	})
	return app
}

func gateRequest(t *testing.T, app *fiber.App, body string, header string) string {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/graphql", strings.NewReader(body))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	if header != "" {
		req.Header.Set(fiber.HeaderAuthorization, header)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	out, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(out)
}

func TestAuthMiddlewareNoToken(t *testing.T) {
	setJwtSecret(t, "gate-secret")
	app := newGateApp()

	out := gateRequest(t, app, `{"query":"{ me { id } }"}`, "")
	assert.Equal(t, "anonymous", out)
}

func TestAuthMiddlewareValidToken(t *testing.T) {
	setJwtSecret(t, "gate-secret")
	app := newGateApp()

	token, err := util.CreateJwtToken(7, "alice", false)
	require.NoError(t, err)

	out := gateRequest(t, app, `{"query":"{ me { id } }"}`, "Bearer "+token)
	assert.Equal(t, "user:alice", out)
}

// invalid tokens degrade to anonymous, the gate never rejects
func TestAuthMiddlewareInvalidTokenFailsOpen(t *testing.T) {
	setJwtSecret(t, "gate-secret")
	app := newGateApp()

	out := gateRequest(t, app, `{"query":"{ me { id } }"}`, "Bearer not.a.token")
	assert.Equal(t, "anonymous", out)
}

// an expired token is treated exactly like an invalid one
func TestAuthMiddlewareExpiredTokenFailsOpen(t *testing.T) {
	setJwtSecret(t, "gate-secret")
	app := newGateApp()

	now := time.Now()
	claims := util.AuthClaims{
		UserId:   7,
		Username: "alice",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "7",
			IssuedAt:  jwt.NewNumericDate(now.Add(-2 * time.Hour)),
			ExpiresAt: jwt.NewNumericDate(now.Add(-time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("gate-secret"))
	require.NoError(t, err)

	out := gateRequest(t, app, `{"query":"{ me { id } }"}`, "Bearer "+token)
	assert.Equal(t, "anonymous", out)
}

// named public operations skip token handling entirely
func TestAuthMiddlewarePublicOperationStaysAnonymous(t *testing.T) {
	setJwtSecret(t, "gate-secret")
	app := newGateApp()

	token, err := util.CreateJwtToken(7, "alice", false)
	require.NoError(t, err)

	body := `{"operationName":"GetPopularMovies","query":"query GetPopularMovies { getPopularMovies { id } }"}`
	out := gateRequest(t, app, body, "Bearer "+token)
	assert.Equal(t, "anonymous", out)
}

func TestAuthMiddlewareBodyTokenFallback(t *testing.T) {
	setJwtSecret(t, "gate-secret")
	app := newGateApp()

	token, err := util.CreateJwtToken(9, "carol", false)
	require.NoError(t, err)

	body := `{"token":"` + token + `","query":"{ me { id } }"}`
	out := gateRequest(t, app, body, "")
	assert.Equal(t, "user:carol", out)
}
