package handler

import (
	"path/filepath"

	"github.com/gofiber/fiber/v2"
)

// Page serves one static markup file from the web directory.
func Page(webDir, name string) fiber.Handler {
	path := filepath.Join(webDir, name)
	return func(c *fiber.Ctx) error {
		return c.SendFile(path)
	}
}
