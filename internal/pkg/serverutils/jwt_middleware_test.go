package serverutils

import (
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func signTestToken(t *testing.T, userId, role string, ttl time.Duration) string {
	t.Helper()
	claims := jwt.MapClaims{
		"user_id": userId,
		"role":    role,
		"exp":     time.Now().Add(ttl).Unix(),
	}
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "default_secret"
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	assert.NoError(t, err)
	return token
}

func newGatedApp() *fiber.App {
	app := fiber.New()
	app.Get("/api/protected", JwtMiddleware, func(ctx *fiber.Ctx) error {
		return ctx.SendString("ok")
	})
	app.Get("/chat", ViewSessionGate, func(ctx *fiber.Ctx) error {
		return ctx.SendString("chat view")
	})
	return app
}

func TestJwtMiddlewareRejectsMissingAndInvalidTokens(t *testing.T) {
	app := newGatedApp()

	req := httptest.NewRequest("GET", "/api/protected", nil)
	res, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, res.StatusCode)

	req = httptest.NewRequest("GET", "/api/protected", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	res, err = app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, res.StatusCode)

	// Expired token.
	expired := signTestToken(t, uuid.NewString(), "user", -time.Hour)
	req = httptest.NewRequest("GET", "/api/protected", nil)
	req.Header.Set("Authorization", "Bearer "+expired)
	res, err = app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, res.StatusCode)
}

func TestJwtMiddlewareAcceptsHeaderAndCookie(t *testing.T) {
	app := newGatedApp()
	token := signTestToken(t, uuid.NewString(), "user", time.Hour)

	req := httptest.NewRequest("GET", "/api/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	res, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, res.StatusCode)

	req = httptest.NewRequest("GET", "/api/protected", nil)
	req.AddCookie(&http.Cookie{Name: AuthCookieName, Value: token})
	res, err = app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, res.StatusCode)
}

func TestViewSessionGateRedirectsToLogin(t *testing.T) {
	app := newGatedApp()

	// No cookie at all.
	req := httptest.NewRequest("GET", "/chat", nil)
	res, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusFound, res.StatusCode)
	assert.Equal(t, "/login", res.Header.Get("Location"))

	// Garbage cookie fails closed the same way.
	req = httptest.NewRequest("GET", "/chat", nil)
	req.AddCookie(&http.Cookie{Name: AuthCookieName, Value: "garbage"})
	res, err = app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusFound, res.StatusCode)

	// A valid session passes through.
	token := signTestToken(t, uuid.NewString(), "user", time.Hour)
	req = httptest.NewRequest("GET", "/chat", nil)
	req.AddCookie(&http.Cookie{Name: AuthCookieName, Value: token})
	res, err = app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, res.StatusCode)
}
