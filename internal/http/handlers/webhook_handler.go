package handlers

import (
	"crypto/subtle"
	"encoding/json"

	applog "luxhaven/internal/log"
	"luxhaven/internal/services"

	"github.com/gofiber/fiber/v2"
)

// WebhookHandler accepts CMS publish notifications and triggers a full-site
// revalidation when the shared secret matches.
type WebhookHandler struct {
	Secret      string
	Revalidator *services.Revalidator
}

// Revalidate handles POST /api/revalidate. Token mismatch is a 401; a
// malformed body or missing configuration is a 500 with a JSON error body.
func (h *WebhookHandler) Revalidate(c *fiber.Ctx) error {
	var body struct {
		Secret string `json:"secret"`
	}
	if err := json.Unmarshal(c.Body(), &body); err != nil {
		applog.Error(c, "webhook.revalidate.badbody", err, nil)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "invalid request body"})
	}
	if h.Secret == "" {
		applog.Error(c, "webhook.revalidate.unconfigured", nil, nil)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "revalidation not configured"})
	}
	if subtle.ConstantTimeCompare([]byte(body.Secret), []byte(h.Secret)) != 1 {
		applog.Security(c, "webhook.revalidate.denied", nil)
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid secret"})
	}

	epoch := h.Revalidator.Bump()
	applog.Audit(c, "webhook.revalidate", map[string]any{"epoch": epoch})
	return c.JSON(fiber.Map{
		"revalidated": true,
		"epoch":       epoch,
		"now":         h.Revalidator.LastBump().UTC(),
	})
}
