package handlers

import (
	"database/sql"
	"errors"
	"io"
	"strings"

	"luxhaven/internal/content"
	"luxhaven/internal/domain"
	applog "luxhaven/internal/log"
	"luxhaven/internal/repos"
	"luxhaven/internal/services"
	"luxhaven/internal/storage"
	"luxhaven/internal/validate"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// AdminBlogHandler mirrors the property screen for blog posts. Content is
// authored as Markdown and normalized to sanitized HTML before it is
// stored, so the rendering layer only ever sees one representation.
type AdminBlogHandler struct {
	Blogs      *repos.BlogRepo
	Categories *repos.CategoryRepo
	Uploads    *services.UploadService
}

func (h *AdminBlogHandler) List(c *fiber.Ctx) error {
	blogs, err := h.Blogs.List()
	if err != nil {
		applog.Error(c, "admin.blogs.list.fail", err, nil)
		return render(c.Status(500), "notfound", fiber.Map{"Message": "Could not load blogs"})
	}

	q := strings.ToLower(strings.TrimSpace(c.Query("q")))
	if q != "" {
		filtered := blogs[:0:0]
		for _, b := range blogs {
			hay := strings.ToLower(b.Title + "\n" + b.Category)
			if strings.Contains(hay, q) {
				filtered = append(filtered, b)
			}
		}
		blogs = filtered
	}

	return render(c, "admin_blogs", fiber.Map{
		"Blogs": blogs,
		"Q":     c.Query("q"),
		"Flash": c.Query("flash"),
	})
}

func (h *AdminBlogHandler) NewForm(c *fiber.Ctx) error {
	cats, _ := h.Categories.List()
	return render(c, "admin_blog_form", fiber.Map{"B": domain.Blog{}, "Categories": cats, "IsEdit": false, "FieldErr": fiber.Map{}})
}

func (h *AdminBlogHandler) EditForm(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return render(c.Status(404), "notfound", fiber.Map{"Message": "Article not found"})
	}
	b, err := h.Blogs.Get(id)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			applog.Error(c, "admin.blogs.edit.load.fail", err, map[string]any{"id": id})
		}
		return render(c.Status(404), "notfound", fiber.Map{"Message": "Article not found"})
	}
	cats, _ := h.Categories.List()
	return render(c, "admin_blog_form", fiber.Map{"B": b, "Categories": cats, "IsEdit": true, "FieldErr": fiber.Map{}})
}

func (h *AdminBlogHandler) Create(c *fiber.Ctx) error {
	b, fieldErr := h.blogFromForm(c)
	if fieldErr != nil {
		cats, _ := h.Categories.List()
		return render(c.Status(400), "admin_blog_form", fiber.Map{
			"B": b, "Categories": cats, "IsEdit": false, "FieldErr": fieldErr,
		})
	}
	b.ID = uuid.NewString()
	b.Slug = validate.Slugify(b.Title)

	if err := h.Blogs.Insert(b); err != nil {
		applog.Error(c, "admin.blogs.create.fail", err, map[string]any{"title": b.Title})
		cats, _ := h.Categories.List()
		return render(c.Status(400), "admin_blog_form", fiber.Map{
			"B": b, "Categories": cats, "IsEdit": false, "FieldErr": fiber.Map{}, "Err": "Could not save the article. Please try again.",
		})
	}
	applog.Audit(c, "admin.blogs.create", map[string]any{"id": b.ID, "slug": b.Slug})
	return c.Redirect("/admin/blogs?flash=created")
}

func (h *AdminBlogHandler) Update(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return render(c.Status(404), "notfound", fiber.Map{"Message": "Article not found"})
	}
	b, fieldErr := h.blogFromForm(c)
	b.ID = id
	if fieldErr != nil {
		cats, _ := h.Categories.List()
		return render(c.Status(400), "admin_blog_form", fiber.Map{
			"B": b, "Categories": cats, "IsEdit": true, "FieldErr": fieldErr,
		})
	}
	b.Slug = validate.Slugify(b.Title)

	if err := h.Blogs.Update(b); err != nil {
		applog.Error(c, "admin.blogs.update.fail", err, map[string]any{"id": id})
		cats, _ := h.Categories.List()
		return render(c.Status(400), "admin_blog_form", fiber.Map{
			"B": b, "Categories": cats, "IsEdit": true, "FieldErr": fiber.Map{}, "Err": "Could not save the article. Please try again.",
		})
	}
	applog.Audit(c, "admin.blogs.update", map[string]any{"id": id, "slug": b.Slug})
	return c.Redirect("/admin/blogs?flash=updated")
}

func (h *AdminBlogHandler) Delete(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(400).SendString("missing id")
	}
	if c.FormValue("confirm") != "yes" {
		return c.Status(400).SendString("delete not confirmed")
	}
	if err := h.Blogs.Delete(id); err != nil {
		applog.Error(c, "admin.blogs.delete.fail", err, map[string]any{"id": id})
		return c.Redirect("/admin/blogs?flash=delete_failed")
	}
	applog.Audit(c, "admin.blogs.delete", map[string]any{"id": id})
	return c.Redirect("/admin/blogs?flash=deleted")
}

// UploadImage stores the single hero image for an article.
func (h *AdminBlogHandler) UploadImage(c *fiber.Ctx) error {
	slug := validate.Slugify(c.FormValue("title"))
	if slug == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Enter a title before uploading an image"})
	}
	fh, err := c.FormFile("image")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "no file selected"})
	}
	f, err := fh.Open()
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "could not read file"})
	}
	defer f.Close()
	data := make([]byte, fh.Size)
	if _, err := io.ReadFull(f, data); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "could not read file"})
	}

	res := h.Uploads.UploadImages(storage.BucketBlogImages, slug, []services.ImageFile{{Name: fh.Filename, Data: data}})
	if res.Uploaded == 0 {
		return c.Status(500).JSON(fiber.Map{"error": "upload failed"})
	}
	return c.JSON(fiber.Map{"url": res.URLs[0]})
}

// blogFromForm binds the dialog fields. A typed-in category name that does
// not exist yet is created on the fly.
func (h *AdminBlogHandler) blogFromForm(c *fiber.Ctx) (domain.Blog, fiber.Map) {
	b := domain.Blog{
		Title:           strings.TrimSpace(c.FormValue("title")),
		Excerpt:         strings.TrimSpace(c.FormValue("excerpt")),
		Content:         content.NormalizeRichText(c.FormValue("content")),
		Image:           strings.TrimSpace(c.FormValue("image")),
		Author:          strings.TrimSpace(c.FormValue("author")),
		PublishDate:     strings.TrimSpace(c.FormValue("publish_date")),
		MetaTitle:       strings.TrimSpace(c.FormValue("meta_title")),
		MetaDescription: strings.TrimSpace(c.FormValue("meta_description")),
		Keywords:        strings.TrimSpace(c.FormValue("keywords")),
		FAQs:            faqsFromForm(c),
	}

	if _, ok := validate.Name(b.Title); !ok {
		return b, fiber.Map{"Title": "Title is required"}
	}

	if name := strings.TrimSpace(c.FormValue("category")); name != "" {
		slug := validate.Slugify(name)
		cat, err := h.Categories.Ensure(uuid.NewString(), name, slug)
		if err != nil {
			applog.Error(c, "admin.blogs.category.fail", err, map[string]any{"name": name})
		} else {
			b.CategoryID = cat.ID
			b.Category = cat.Name
		}
	}
	return b, nil
}
