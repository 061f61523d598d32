package serverutils

import (
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

func sessionSecret() []byte {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "dev-secret-change-me"
	}
	return []byte(secret)
}

// GenerateSessionToken issues the bearer token handed back on session
// creation. The token scopes the caller to a single studio session.
func GenerateSessionToken(sessionId uuid.UUID, ttl time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"session_id": sessionId.String(),
		"exp":        time.Now().Add(ttl).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(sessionSecret())
}

func JwtMiddleware(ctx *fiber.Ctx) error {
	authHeader := ctx.Get("Authorization")
	var tokenStr string
	switch {
	case len(authHeader) >= 7 && authHeader[:7] == "Bearer ":
		tokenStr = authHeader[7:]
	case ctx.Query("token") != "":
		// iframe src URLs cannot carry headers, so the artifact
		// preview authenticates the same way the stream does.
		tokenStr = ctx.Query("token")
	default:
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Missing token"})
	}

	sessionId, err := parseSessionToken(tokenStr)
	if err != nil {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": err.Error()})
	}

	ctx.Locals("session_id", sessionId)
	return ctx.Next()
}

// ParseSessionTokenFromQuery validates the token carried in the "token"
// query parameter. Websocket clients cannot set headers, so the stream
// handshake authenticates this way.
func ParseSessionTokenFromQuery(ctx *fiber.Ctx) (uuid.UUID, error) {
	return parseSessionToken(ctx.Query("token"))
}

func parseSessionToken(tokenStr string) (uuid.UUID, error) {
	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		return sessionSecret(), nil
	})
	if err != nil || !token.Valid {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid claims")
	}

	raw, _ := claims["session_id"].(string)
	sessionId, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid session claim")
	}
	return sessionId, nil
}
