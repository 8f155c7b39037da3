package http

import (
	"crypto/sha256"
	"encoding/base64"
	"io"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/encryptcookie"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
)

type AppOptions struct {
	SecretKey string
	AccessLog io.Writer
}

// NewApp builds a Fiber app with the standard middleware stack and all
// routes registered.
func NewApp(h *Handler, opts AppOptions) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "resume-builder",
		DisableStartupMessage: true,
	})

	out := opts.AccessLog
	if out == nil {
		out = os.Stdout
	}
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(logger.New(logger.Config{
		Format: "${time} ${locals:requestid} ${status} - ${method} ${path} ${latency}\n",
		Output: out,
	}))
	app.Use(encryptcookie.New(encryptcookie.Config{
		Key: CookieKey(opts.SecretKey),
	}))

	Register(app, h)
	return app
}

// Register wires all HTTP routes onto given Fiber app.
func Register(app *fiber.App, h *Handler) {
	app.Get("/", h.Form)
	app.Post("/generate", h.Generate)
	app.Post("/generate_summary", h.GenerateSummary)

	// Health and readiness endpoints for probes/monitoring
	app.Get("/health", h.Health)
	app.Get("/ready", h.Ready)
}

// CookieKey derives a 32-byte base64 AES key from an arbitrary secret.
func CookieKey(secret string) string {
	sum := sha256.Sum256([]byte(secret))
	return base64.StdEncoding.EncodeToString(sum[:])
}
