package http

import (
	"net/url"

	"github.com/gofiber/fiber/v2"
)

const flashCookie = "flash"

// setFlash stores a one-shot message for the next page render. The cookie
// is encrypted by the encryptcookie middleware when it is installed.
func setFlash(c *fiber.Ctx, msg string) {
	c.Cookie(&fiber.Cookie{
		Name:     flashCookie,
		Value:    url.QueryEscape(msg),
		Path:     "/",
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}

func popFlash(c *fiber.Ctx) string {
	raw := c.Cookies(flashCookie)
	if raw == "" {
		return ""
	}
	c.ClearCookie(flashCookie)
	msg, err := url.QueryUnescape(raw)
	if err != nil {
		return ""
	}
	return msg
}
