package serverutils

import (
	"errors"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

// AuthCookieName is the cookie carrying the access token for browser page
// loads, where an Authorization header is not available.
const AuthCookieName = "access_token"

type SessionClaims struct {
	UserId string
	Role   string
}

// ParseSessionToken validates a raw token and extracts the session claims.
func ParseSessionToken(tokenStr string) (*SessionClaims, error) {
	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		secret := os.Getenv("JWT_SECRET")
		if secret == "" {
			secret = "default_secret"
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return nil, errors.New("invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("invalid claims")
	}

	userId, _ := claims["user_id"].(string)
	role, _ := claims["role"].(string)
	if userId == "" {
		return nil, errors.New("invalid claims")
	}
	return &SessionClaims{UserId: userId, Role: role}, nil
}

func tokenFromRequest(ctx *fiber.Ctx) string {
	authHeader := ctx.Get("Authorization")
	if len(authHeader) > 7 && authHeader[:7] == "Bearer " {
		return authHeader[7:]
	}
	return ctx.Cookies(AuthCookieName)
}

// JwtMiddleware guards the API surface: missing or invalid session is a 401.
func JwtMiddleware(ctx *fiber.Ctx) error {
	tokenStr := tokenFromRequest(ctx)
	if tokenStr == "" {
		return ctx.Status(fiber.StatusUnauthorized).JSON(ErrorResponse(401, "Missing token"))
	}

	claims, err := ParseSessionToken(tokenStr)
	if err != nil {
		return ctx.Status(fiber.StatusUnauthorized).JSON(ErrorResponse(401, "Invalid token"))
	}

	ctx.Locals("user_id", claims.UserId)
	ctx.Locals("role", claims.Role)
	return ctx.Next()
}

// ViewSessionGate guards browser page routes: any token problem is treated
// the same as no session and redirects to the login view (fail closed).
func ViewSessionGate(ctx *fiber.Ctx) error {
	tokenStr := ctx.Cookies(AuthCookieName)
	if tokenStr == "" {
		return ctx.Redirect("/login", fiber.StatusFound)
	}
	claims, err := ParseSessionToken(tokenStr)
	if err != nil {
		return ctx.Redirect("/login", fiber.StatusFound)
	}
	ctx.Locals("user_id", claims.UserId)
	ctx.Locals("role", claims.Role)
	return ctx.Next()
}
