package middleware

import (
	"cafe_directory/constants"
	"cafe_directory/helper"
	"cafe_directory/utils"
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
)

func tokenFromRequest(c *fiber.Ctx) string {
	token := c.Cookies("access_token")

	if token == "" {
		auth := c.Get("Authorization")
		if strings.HasPrefix(auth, "Bearer ") {
			token = strings.TrimPrefix(auth, "Bearer ")
		}
	}

	return token
}

// Protected rejects anonymous callers with 403 before the handler runs.
func Protected() fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := tokenFromRequest(c)
		if token == "" {
			return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_LOGGED_IN, errors.New("no token"))
		}

		jwtToken, err := helper.ParseToken(token)
		if err != nil || !jwtToken.Valid {
			return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_LOGGED_IN, errors.New("invalid token"))
		}

		c.Locals("user", jwtToken)
		return c.Next()
	}
}

// OptionalAuth resolves the session when present and lets guests through.
func OptionalAuth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := tokenFromRequest(c)
		if token == "" {
			c.Locals("user", nil)
			return c.Next()
		}

		jwtToken, err := helper.ParseToken(token)
		if err != nil || !jwtToken.Valid {
			c.Locals("user", nil)
			return c.Next()
		}

		c.Locals("user", jwtToken)
		return c.Next()
	}
}
