package middleware

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"

	"github.com/pascaretta5/tech-z-one-backend/httperr"
)

const userIDKey = "user_id"

// AuthRequired rejects requests without a valid bearer token before the
// handler runs, and stashes the token subject (user id) in Locals.
func AuthRequired(secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		if !strings.HasPrefix(header, "Bearer ") {
			return httperr.Unauthorized(c, "Missing or invalid authorization header")
		}
		tokenStr := strings.TrimPrefix(header, "Bearer ")

		token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errors.New("unexpected signing method")
			}
			return []byte(secret), nil
		})
		if err != nil || !token.Valid {
			return httperr.Unauthorized(c, "Invalid token")
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			return httperr.Unauthorized(c, "Invalid token")
		}
		sub, ok := claims["sub"].(float64)
		if !ok {
			return httperr.Unauthorized(c, "Invalid token")
		}

		c.Locals(userIDKey, uint(sub))
		return c.Next()
	}
}

// UserID returns the authenticated subject set by AuthRequired.
func UserID(c *fiber.Ctx) uint {
	id, _ := c.Locals(userIDKey).(uint)
	return id
}
