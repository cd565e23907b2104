package handlers

import (
	"github.com/gofiber/fiber/v2"

	"luxhaven/internal/domain"
)

// defaultMeta fills the literal fallbacks when neither SEO source had a
// value for the page.
func defaultMeta(m domain.Meta, pageName string) domain.Meta {
	if m.Title == "" {
		m.Title = pageName + " | LuxHaven Estates"
	}
	if m.Description == "" {
		m.Description = "Curated luxury residences, villas and commercial spaces."
	}
	if m.Keywords == "" {
		m.Keywords = "luxury real estate, premium apartments, villas"
	}
	return m
}

func render(c *fiber.Ctx, tmpl string, data fiber.Map) error {
	if data == nil {
		data = fiber.Map{}
	}
	if u := c.Locals("user"); u != nil {
		data["User"] = u
	}
	if tok, _ := c.Locals("CSRFToken").(string); tok != "" {
		data["CSRFToken"] = tok
	} else if cookTok := c.Cookies("csrf_"); cookTok != "" {
		data["CSRFToken"] = cookTok
	}
	return c.Render(tmpl, data)
}
