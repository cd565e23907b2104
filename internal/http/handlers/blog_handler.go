package handlers

import (
	"errors"

	"luxhaven/internal/content"
	"luxhaven/internal/domain"
	applog "luxhaven/internal/log"
	"luxhaven/internal/repos"
	"luxhaven/internal/services"

	"github.com/gofiber/fiber/v2"
)

type BlogHandler struct {
	Catalog    *services.CatalogService
	Categories *repos.CategoryRepo
	SEO        *services.SEOService
}

// List renders the blog listing. Blogs and categories are independent
// fetches; a category failure degrades to an empty filter bar.
func (h *BlogHandler) List(c *fiber.Ctx) error {
	blogs, err := h.Catalog.ListBlogs(c.Context())
	if err != nil {
		applog.Error(c, "blogs.list.fail", err, nil)
		return c.Status(500).Render("notfound", fiber.Map{"Message": "Could not load articles. Please retry."})
	}
	cats, err := h.Categories.List()
	if err != nil {
		applog.Error(c, "blogs.categories.fail", err, nil)
		cats = nil
	}

	if sel := c.Query("category"); sel != "" {
		filtered := blogs[:0:0]
		for _, b := range blogs {
			if b.Category == sel {
				filtered = append(filtered, b)
			}
		}
		blogs = filtered
	}

	meta := defaultMeta(h.SEO.Resolve(c.Context(), "/blogs"), "Blogs")
	return render(c, "blogs", fiber.Map{
		"Meta":       meta,
		"Blogs":      blogs,
		"Categories": cats,
		"Selected":   c.Query("category"),
	})
}

func (h *BlogHandler) Detail(c *fiber.Ctx) error {
	slug := c.Params("slug")
	b, err := h.Catalog.GetBlog(c.Context(), slug)
	if err != nil {
		if !errors.Is(err, content.ErrNotFound) {
			applog.Error(c, "blogs.detail.fail", err, map[string]any{"slug": slug})
		}
		return c.Status(404).Render("notfound", fiber.Map{"Message": "This article is no longer available"})
	}

	meta := defaultMeta(blogMeta(b), b.Title)
	return render(c, "blog", fiber.Map{"Meta": meta, "B": b})
}

func blogMeta(b domain.Blog) domain.Meta {
	m := domain.Meta{
		Title:       b.MetaTitle,
		Description: b.MetaDescription,
		Keywords:    b.Keywords,
	}
	if m.Title == "" {
		m.Title = b.Title + " | LuxHaven Journal"
	}
	if m.Description == "" {
		m.Description = b.Excerpt
	}
	return m
}
