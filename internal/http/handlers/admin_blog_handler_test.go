package handlers_test

import (
	"io"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"

	"luxhaven/internal/http/handlers"
	"luxhaven/internal/repos"
	"luxhaven/internal/services"
	"luxhaven/internal/storage"
)

func newAdminBlogApp(t *testing.T) (*fiber.App, *repos.BlogRepo) {
	t.Helper()
	db, err := repos.OpenDB(":memory:")
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = db.Close() })

	blogRepo := repos.NewBlogRepo(db)
	catRepo := repos.NewCategoryRepo(db)
	uploads := services.NewUploadService(storage.NewMediaStore(t.TempDir()))
	h := &handlers.AdminBlogHandler{Blogs: blogRepo, Categories: catRepo, Uploads: uploads}

	app := fiber.New(fiber.Config{Views: testEngine()})
	app.Get("/admin/blogs", h.List)
	app.Get("/admin/blogs/edit/:id", h.EditForm)
	app.Post("/admin/blogs", h.Create)
	app.Post("/admin/blogs/:id", h.Update)
	return app, blogRepo
}

// The date input holds the raw yyyy-mm-dd value, never the display string:
// a formatted value would be rejected by the browser and blanked on save.
func TestAdminBlogEditFormRendersRawPublishDate(t *testing.T) {
	app, _ := newAdminBlogApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/admin/blogs/edit/blog-luxury-2026", nil))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != 200 {
		t.Fatalf("status: %d", resp.StatusCode)
	}
	body, _ := io.ReadAll(resp.Body)
	if !strings.Contains(string(body), `name="publish_date" value="2026-01-15"`) {
		t.Fatalf("date input should carry the raw value, body: %s", body)
	}
	if strings.Contains(string(body), `value="January 15, 2026"`) {
		t.Fatal("date input must not carry the display string")
	}
}

func TestAdminBlogUpdateKeepsPublishDate(t *testing.T) {
	app, blogRepo := newAdminBlogApp(t)

	before, err := blogRepo.Get("blog-luxury-2026")
	if err != nil {
		t.Fatal(err)
	}

	// resubmit the edit form unchanged
	form := url.Values{
		"title":        {before.Title},
		"excerpt":      {before.Excerpt},
		"content":      {before.Content},
		"image":        {before.Image},
		"author":       {before.Author},
		"publish_date": {before.PublishDate},
		"category":     {before.Category},
	}
	resp := postForm(t, app, "/admin/blogs/blog-luxury-2026", form)
	if resp.StatusCode != 302 {
		t.Fatalf("status: %d", resp.StatusCode)
	}

	after, err := blogRepo.Get("blog-luxury-2026")
	if err != nil {
		t.Fatal(err)
	}
	if after.PublishDate != "2026-01-15" {
		t.Fatalf("publish date: got %q", after.PublishDate)
	}
	if after.Date != "January 15, 2026" {
		t.Fatalf("display date: got %q", after.Date)
	}
}
