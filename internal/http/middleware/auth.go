package middleware

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"docshare/internal/session"
)

const (
	// SessionTokenLocalKey holds the raw session token for the request.
	SessionTokenLocalKey = "session_token"
	// UserIDLocalKey holds the authenticated user's id, if any.
	UserIDLocalKey = "user_id"
	// UsernameLocalKey holds the authenticated user's name, if any.
	UsernameLocalKey = "username"
)

// Authenticate resolves the session cookie against the session store and, on
// success, binds the user identity into context locals. It never rejects the
// request itself: gating is left to RequireAuth / RequirePage so that open
// routes (auth_status, login pages) can still observe the identity.
func Authenticate(store session.Store, cookieName string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Cookies(cookieName)
		if token == "" {
			return c.Next()
		}
		c.Locals(SessionTokenLocalKey, token)

		s, err := store.Get(c.UserContext(), token)
		if err != nil {
			// An expired or unknown token just leaves the request anonymous;
			// store outages do the same rather than failing every request.
			if !errors.Is(err, session.ErrNotFound) {
				logAuthError(c, err)
			}
			return c.Next()
		}

		c.Locals(UserIDLocalKey, s.UserID)
		c.Locals(UsernameLocalKey, s.Username)
		return c.Next()
	}
}

// RequireAuth gates API routes: requests without a bound user identity get a
// 401 JSON error in the standard envelope instead of a redirect, since JSON
// clients cannot follow an HTML redirect.
func RequireAuth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if Username(c) == "" {
			rid, _ := c.Locals(RequestIDLocalKey).(string)
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"request_id": rid,
				"error": fiber.Map{
					"code":    "UNAUTHORIZED",
					"message": "authentication required",
				},
			})
		}
		return c.Next()
	}
}

// RequirePage gates page routes: requests without a bound user identity are
// redirected to the login page.
func RequirePage(loginPath string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if Username(c) == "" {
			return c.Redirect(loginPath, fiber.StatusFound)
		}
		return c.Next()
	}
}

// Username returns the authenticated username bound to the request, or "".
func Username(c *fiber.Ctx) string {
	if v, ok := c.Locals(UsernameLocalKey).(string); ok {
		return v
	}
	return ""
}

// UserID returns the authenticated user id bound to the request, or "".
func UserID(c *fiber.Ctx) string {
	if v, ok := c.Locals(UserIDLocalKey).(string); ok {
		return v
	}
	return ""
}
