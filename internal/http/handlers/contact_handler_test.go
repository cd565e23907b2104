package handlers_test

import (
	"html/template"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/gofiber/fiber/v2"
	html "github.com/gofiber/template/html/v2"

	"luxhaven/internal/content/cms"
	"luxhaven/internal/http/handlers"
	"luxhaven/internal/repos"
	"luxhaven/internal/services"
)

func testEngine() *html.Engine {
	engine := html.New("../../../web/templates", ".html")
	engine.AddFunc("safe", func(s string) template.HTML { return template.HTML(s) })
	return engine
}

// newContactApp wires the contact form against a counting relay so tests
// can assert whether a network call happened.
func newContactApp(t *testing.T) (*fiber.App, *atomic.Int64) {
	t.Helper()
	db, err := repos.OpenDB(":memory:")
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = db.Close() })

	var calls atomic.Int64
	relay := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	}))
	t.Cleanup(relay.Close)

	contactSvc := services.NewContactService("svc", "tpl", "key")
	contactSvc.Endpoint = relay.URL
	seoSvc := services.NewSEOService(cms.New("", ""), repos.NewPageMetaRepo(db))

	h := &handlers.ContactHandler{Contact: contactSvc, SEO: seoSvc}
	app := fiber.New(fiber.Config{Views: testEngine()})
	app.Get("/contact", h.Form)
	app.Post("/contact", h.Submit)
	return app, &calls
}

func submitContact(t *testing.T, app *fiber.App, form url.Values) (*http.Response, string) {
	t.Helper()
	req := httptest.NewRequest("POST", "/contact", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	resp, err := app.Test(req, 5000)
	if err != nil {
		t.Fatal(err)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatal(err)
	}
	return resp, string(body)
}

func TestContactSubmitEmptyName(t *testing.T) {
	app, calls := newContactApp(t)

	resp, body := submitContact(t, app, url.Values{
		"name":    {""},
		"email":   {"a@b.co"},
		"message": {"Interested in Palm Court"},
	})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("want 400, got %d", resp.StatusCode)
	}
	if !strings.Contains(body, "Name is required") {
		t.Fatal("inline field error missing")
	}
	// Entered values survive the re-render.
	if !strings.Contains(body, "a@b.co") || !strings.Contains(body, "Interested in Palm Court") {
		t.Fatal("entered values lost on re-render")
	}
	if calls.Load() != 0 {
		t.Fatal("invalid submission must not hit the relay")
	}
}

func TestContactSubmitBadEmail(t *testing.T) {
	app, calls := newContactApp(t)

	resp, body := submitContact(t, app, url.Values{
		"name":    {"Asha"},
		"email":   {"not-an-email"},
		"message": {"hello"},
	})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("want 400, got %d", resp.StatusCode)
	}
	if !strings.Contains(body, "Enter a valid email address") {
		t.Fatal("inline field error missing")
	}
	if calls.Load() != 0 {
		t.Fatal("invalid submission must not hit the relay")
	}
}

func TestContactSubmitSuccess(t *testing.T) {
	app, calls := newContactApp(t)

	resp, body := submitContact(t, app, url.Values{
		"name":    {"Asha"},
		"email":   {"asha@example.com"},
		"message": {"Please share the brochure."},
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("want 200, got %d", resp.StatusCode)
	}
	if calls.Load() != 1 {
		t.Fatalf("relay calls: got %d", calls.Load())
	}
	if !strings.Contains(body, "Thank you") {
		t.Fatal("confirmation missing")
	}
}

func TestContactFormRenders(t *testing.T) {
	app, _ := newContactApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/contact", nil))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("want 200, got %d", resp.StatusCode)
	}
}
