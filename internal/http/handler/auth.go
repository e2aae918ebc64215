package handler

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"docshare/internal/config"
	"docshare/internal/http/middleware"
	"docshare/internal/service"
	"docshare/internal/session"
)

// credentialsRequest is the JSON body for register and login.
type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Register creates a new account. It never logs the user in; the client is
// expected to follow up with a login call.
func Register(svc service.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req credentialsRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}

		if _, err := svc.Register(c.UserContext(), req.Username, req.Password); err != nil {
			switch {
			case errors.Is(err, service.ErrCredentialsRequired):
				return writeError(c, fiber.StatusBadRequest, "VALIDATION_ERROR", err.Error())
			case errors.Is(err, service.ErrUsernameTaken):
				return writeError(c, fiber.StatusConflict, "CONFLICT", err.Error())
			default:
				return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
			}
		}

		return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "registration successful"})
	}
}

// Login verifies credentials, creates a server-side session, and hands the
// opaque token back in an HttpOnly cookie.
func Login(svc service.AuthService, sessions session.Store, cfg config.SessionConfig) fiber.Handler {
	ttl := time.Duration(cfg.TTLSec) * time.Second

	return func(c *fiber.Ctx) error {
		var req credentialsRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}

		u, err := svc.Login(c.UserContext(), req.Username, req.Password)
		if err != nil {
			if errors.Is(err, service.ErrInvalidCredentials) {
				// Same status and message for unknown usernames and wrong
				// passwords.
				return writeError(c, fiber.StatusUnauthorized, "INVALID_CREDENTIALS", service.ErrInvalidCredentials.Error())
			}
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}

		token, err := sessions.Create(c.UserContext(), session.Session{UserID: u.ID, Username: u.Username})
		if err != nil {
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}

		c.Cookie(&fiber.Cookie{
			Name:     cfg.CookieName,
			Value:    token,
			Path:     "/",
			Expires:  time.Now().Add(ttl),
			HTTPOnly: true,
			SameSite: fiber.CookieSameSiteLaxMode,
		})

		return c.JSON(fiber.Map{"message": "login successful", "username": u.Username})
	}
}

// Logout destroys the server-side session and expires the cookie. A request
// without a live session still gets a 200; logout is idempotent.
func Logout(sessions session.Store, cfg config.SessionConfig) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if token, ok := c.Locals(middleware.SessionTokenLocalKey).(string); ok && token != "" {
			if err := sessions.Destroy(c.UserContext(), token); err != nil {
				return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
			}
		}

		c.Cookie(&fiber.Cookie{
			Name:     cfg.CookieName,
			Value:    "",
			Path:     "/",
			Expires:  time.Now().Add(-time.Hour),
			HTTPOnly: true,
			SameSite: fiber.CookieSameSiteLaxMode,
		})

		return c.JSON(fiber.Map{"message": "logout successful"})
	}
}

// AuthStatus reports whether the request carries a live session. It never
// returns 401 so pages can poll it before rendering.
func AuthStatus() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if username := middleware.Username(c); username != "" {
			return c.JSON(fiber.Map{"authenticated": true, "username": username})
		}
		return c.JSON(fiber.Map{"authenticated": false})
	}
}
