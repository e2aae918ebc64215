package middleware

import (
	"encoding/json"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
)

// Logger is a middleware that logs each HTTP request as one JSON object per
// line on stdout. Fields: request_id (set by RequestID), method, path,
// status, latency in milliseconds, and username when the request carries a
// valid session.
func Logger() fiber.Handler {
	enc := json.NewEncoder(os.Stdout)

	return func(c *fiber.Ctx) error {
		start := time.Now()

		err := c.Next()

		// Collect fields after handler executed to capture final status and
		// the identity bound by the Authenticate middleware.
		rid, _ := c.Locals(RequestIDLocalKey).(string)
		entry := map[string]any{
			"request_id": rid,
			"method":     c.Method(),
			"path":       c.Path(),
			"status":     c.Response().StatusCode(),
			"latency":    float64(time.Since(start).Milliseconds()),
		}
		if username := Username(c); username != "" {
			entry["username"] = username
		}
		_ = enc.Encode(entry)

		return err
	}
}

// logAuthError emits a one-line JSON error entry for session store failures.
// The request itself proceeds anonymously.
func logAuthError(c *fiber.Ctx, err error) {
	rid, _ := c.Locals(RequestIDLocalKey).(string)
	b, merr := json.Marshal(map[string]any{
		"level":      "error",
		"msg":        "session_lookup_failed",
		"request_id": rid,
		"path":       c.Path(),
		"error":      err.Error(),
	})
	if merr == nil {
		os.Stdout.Write(append(b, '\n'))
	}
}
