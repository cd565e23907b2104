package handlers

import (
	applog "luxhaven/internal/log"
	"luxhaven/internal/services"

	"github.com/gofiber/fiber/v2"
)

// SiteHandler serves the brochure pages: home and about.
type SiteHandler struct {
	Catalog *services.CatalogService
	SEO     *services.SEOService
}

func (h *SiteHandler) Home(c *fiber.Ctx) error {
	props, err := h.Catalog.ListProperties(c.Context())
	if err != nil {
		applog.Error(c, "home.properties.fail", err, nil)
		props = nil
	}
	blogs, err := h.Catalog.ListBlogs(c.Context())
	if err != nil {
		applog.Error(c, "home.blogs.fail", err, nil)
		blogs = nil
	}
	if len(blogs) > 3 {
		blogs = blogs[:3]
	}

	meta := defaultMeta(h.SEO.Resolve(c.Context(), "/"), "Home")
	return render(c, "home", fiber.Map{
		"Meta":     meta,
		"Featured": services.Featured(props),
		"Blogs":    blogs,
	})
}

func (h *SiteHandler) About(c *fiber.Ctx) error {
	meta := defaultMeta(h.SEO.Resolve(c.Context(), "/about"), "About Us")
	return render(c, "about", fiber.Map{"Meta": meta})
}
