package handlers

import (
	"errors"
	"strconv"

	"luxhaven/internal/content"
	"luxhaven/internal/domain"
	applog "luxhaven/internal/log"
	"luxhaven/internal/services"

	"github.com/gofiber/fiber/v2"
)

type PropertyHandler struct {
	Catalog *services.CatalogService
	SEO     *services.SEOService
}

// List renders the property listing. Query params seed the filter state;
// the full set is fetched once and filtered in memory.
func (h *PropertyHandler) List(c *fiber.Ctx) error {
	props, err := h.Catalog.ListProperties(c.Context())
	if err != nil {
		applog.Error(c, "properties.list.fail", err, nil)
		return c.Status(500).Render("notfound", fiber.Map{"Message": "Could not load properties. Please retry."})
	}

	f := services.NewFilterState()
	f.Search = c.Query("search")
	// "location" is the legacy seed param; it matches through the search text.
	if loc := c.Query("location"); loc != "" && f.Search == "" {
		f.Search = loc
	}
	f.SetType(c.Query("type"))
	f.SetCountry(c.Query("country"))
	f.SetState(c.Query("state"))
	f.SetCity(c.Query("city"))
	if b, err := strconv.Atoi(c.Query("price", "0")); err == nil {
		f.SetPriceBucket(b)
	}

	filtered := services.Apply(props, f)
	opts := services.DeriveOptions(props, f)

	meta := defaultMeta(h.SEO.Resolve(c.Context(), "/properties"), "Properties")
	return render(c, "properties", fiber.Map{
		"Meta":       meta,
		"Properties": filtered,
		"Count":      len(filtered),
		"Filters":    f,
		"Options":    opts,
		"Buckets":    services.PriceBuckets,
	})
}

// Detail renders one property plus similar listings.
func (h *PropertyHandler) Detail(c *fiber.Ctx) error {
	slug := c.Params("slug")
	p, err := h.Catalog.GetProperty(c.Context(), slug)
	if err != nil {
		if !errors.Is(err, content.ErrNotFound) {
			applog.Error(c, "properties.detail.fail", err, map[string]any{"slug": slug})
		}
		return c.Status(404).Render("notfound", fiber.Map{"Message": "This property is no longer available"})
	}

	similar, err := h.Catalog.SimilarProperties(c.Context(), p)
	if err != nil {
		applog.Error(c, "properties.similar.fail", err, map[string]any{"slug": slug})
		similar = nil
	}

	meta := defaultMeta(propertyMeta(p), p.Name)
	return render(c, "property", fiber.Map{
		"Meta":    meta,
		"P":       p,
		"Similar": similar,
	})
}

// propertyMeta prefers the entity's own SEO overrides; absent values fall
// back to derived defaults.
func propertyMeta(p domain.Property) domain.Meta {
	m := domain.Meta{
		Title:       p.MetaTitle,
		Description: p.MetaDescription,
		Keywords:    p.Keywords,
	}
	if m.Title == "" {
		m.Title = p.Name + " | Real Estate"
	}
	if m.Description == "" {
		m.Description = p.ShortDescription
	}
	return m
}
