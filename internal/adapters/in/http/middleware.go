package http

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

// userEmailKey is the echo context key the authenticated identity lives
// under. The scheme is deliberately header-based: the storefront trusts the
// X-User-Email header the way the original deployment did, with no tokens.
const userEmailKey = "userEmail"

// Authenticate reads and validates the X-User-Email header and stores the
// normalized identity on the request context.
func Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		email := c.Request().Header.Get("X-User-Email")
		if !IsValidEmail(email) {
			return respondError(c, http.StatusUnauthorized,
				"A valid email is required (X-User-Email header)")
		}

		c.Set(userEmailKey, strings.ToLower(strings.TrimSpace(email)))
		return next(c)
	}
}

// AdminOnly requires the authenticated identity to be the configured
// administrator. Must run after Authenticate.
func AdminOnly(adminEmail string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if userEmail(c) != adminEmail {
				return respondError(c, http.StatusForbidden, "Admin access required")
			}
			return next(c)
		}
	}
}

func userEmail(c echo.Context) string {
	email, _ := c.Get(userEmailKey).(string)
	return email
}
