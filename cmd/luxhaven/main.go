package main

import (
	"html/template"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/csrf"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	html "github.com/gofiber/template/html/v2"

	"luxhaven/internal/config"
	"luxhaven/internal/http/handlers"
	applog "luxhaven/internal/log"
	"luxhaven/internal/repos"
	"luxhaven/internal/services"
)

func main() {
	cfg := config.Load()

	// Optional file logging
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			log.Printf("[warn] could not open log file %s: %v", cfg.LogFile, err)
		} else {
			mw := io.MultiWriter(os.Stdout, f)
			log.SetOutput(mw)
		}
	}

	db, err := repos.OpenDB(cfg.DBDSN)
	if err != nil {
		log.Fatal(err)
	}

	// Auth wiring
	userRepo := repos.NewUserRepo(db)
	authSvc := &services.AuthService{Users: userRepo}
	authH := &handlers.AuthHandler{Auth: authSvc}

	// Templates & app
	engine := html.New("./web/templates", ".html")
	engine.Reload(true)
	// Rich text is sanitized once at the mapping boundary; templates may
	// emit it without re-escaping.
	engine.AddFunc("safe", func(s string) template.HTML { return template.HTML(s) })

	app := fiber.New(fiber.Config{
		Views: engine,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			applog.Error(c, "server.error", err, nil)
			// Avoid leaking internals; best-effort render
			if rerr := c.Status(fiber.StatusInternalServerError).Render("notfound", fiber.Map{
				"Message": "Something went wrong. Please try again.",
			}); rerr != nil {
				return c.Status(fiber.StatusInternalServerError).SendString("Something went wrong. Please try again.")
			}
			return nil
		},
	})
	// Uploads are the largest request bodies we accept
	app.Server().MaxRequestBodySize = 32 << 20

	// ---------- Middlewares ----------
	app.Use(requestid.New())
	app.Use(logger.New())
	app.Use(helmet.New())
	// Attach user to context if logged in (for templates/headers)
	app.Use(func(c *fiber.Ctx) error {
		if sid := c.Cookies("sid"); sid != "" {
			if u, err := authSvc.CurrentUser(sid); err == nil && u != nil {
				c.Locals("user", u)
			}
		}
		return c.Next()
	})
	app.Use(limiter.New(limiter.Config{
		Max:        120,
		Expiration: time.Minute,
		Next: func(c *fiber.Ctx) bool {
			p := string(c.Request().URI().Path())
			return strings.HasPrefix(p, "/static/") || strings.HasPrefix(p, "/media/")
		},
	}))
	app.Use(csrf.New(csrf.Config{
		KeyLookup:      "form:csrf",
		CookieName:     "csrf_",
		CookieSameSite: "Lax",
		CookieSecure:   false, // set true behind HTTPS
		Next: func(c *fiber.Ctx) bool {
			// The CMS webhook authenticates with its own shared secret.
			return c.Path() == "/api/revalidate"
		},
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			applog.Security(c, "csrf.fail", map[string]any{"form": c.FormValue("csrf")})
			return c.Status(fiber.StatusForbidden).Render("notfound", fiber.Map{"Message": "Security check failed. Please refresh and try again."})
		},
	}))
	app.Use(func(c *fiber.Ctx) error {
		if tok := c.Locals("csrf"); tok != nil {
			c.Locals("CSRFToken", tok.(string))
		}
		return c.Next()
	})

	// ---------- Static assets ----------
	mediaDir := cfg.MediaDir
	if !filepath.IsAbs(mediaDir) {
		if abs, err := filepath.Abs(mediaDir); err == nil {
			mediaDir = abs
		}
	}
	log.Printf("[static] /static -> ./web/static")
	log.Printf("[static] /media  -> %s", mediaDir)

	app.Static("/static", "./web/static")
	// Guarded media to avoid traversal
	app.Get("/media/*", func(c *fiber.Ctx) error {
		path := c.Params("*")
		rawLower := strings.ToLower(path)
		// Block encoded traversal attempts as well as raw .. or null bytes
		if strings.Contains(rawLower, "..") || strings.Contains(rawLower, "%2e") || strings.Contains(rawLower, "\x00") {
			applog.Security(c, "media.traversal.block", map[string]any{"path": path})
			return c.SendStatus(fiber.StatusNotFound)
		}
		clean := filepath.Clean(path)
		if clean == "." || strings.Contains(clean, "..") || filepath.IsAbs(clean) {
			applog.Security(c, "media.traversal.block", map[string]any{"path": path})
			return c.SendStatus(fiber.StatusNotFound)
		}
		full := filepath.Join(mediaDir, clean)
		return c.SendFile(full, true)
	})

	// ---------- App handlers ----------
	deps := handlers.NewDeps(db, cfg, authSvc)

	// Public pages
	app.Get("/", deps.SiteHandler.Home)
	app.Get("/about", deps.SiteHandler.About)
	app.Get("/properties", deps.PropertyHandler.List)
	app.Get("/properties/:slug", deps.PropertyHandler.Detail)
	app.Get("/blogs", deps.BlogHandler.List)
	app.Get("/blogs/:slug", deps.BlogHandler.Detail)
	app.Get("/contact", deps.ContactHandler.Form)
	app.Post("/contact", limiter.New(limiter.Config{Max: 10, Expiration: time.Minute}), deps.ContactHandler.Submit)

	// Machine endpoints
	app.Get("/sitemap.xml", deps.SitemapHandler.Sitemap)
	app.Post("/api/revalidate", deps.WebhookHandler.Revalidate)
	app.Get("/api/geocode/reverse", limiter.New(limiter.Config{
		Max:        20,
		Expiration: time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP() + "|geo"
		},
		LimitReached: func(c *fiber.Ctx) error {
			applog.Security(c, "rate.geocode.hit", nil)
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{"error": "rate limit exceeded, retry soon"})
		},
	}), deps.GeoHandler.Reverse)

	// Auth routes (login throttled)
	app.Get("/login", authH.LoginForm)
	app.Post("/login", limiter.New(limiter.Config{
		Max:        5,
		Expiration: 10 * time.Minute,
		LimitReached: func(c *fiber.Ctx) error {
			applog.Security(c, "rate.login.hit", nil)
			return c.Status(fiber.StatusTooManyRequests).Render("login", fiber.Map{"Err": "Too many attempts. Please try again later."})
		},
	}), authH.Login)
	app.Post("/logout", authH.Logout)

	// Admin
	admin := app.Group("/admin", handlers.RequireAdmin(authSvc))
	admin.Get("/", func(c *fiber.Ctx) error {
		return c.Render("admin_dashboard", fiber.Map{
			"User":      c.Locals("user"),
			"CSRFToken": c.Locals("CSRFToken"),
		})
	})

	admin.Get("/properties", deps.AdminProperties.List)
	admin.Get("/properties/new", deps.AdminProperties.NewForm)
	admin.Get("/properties/edit/:id", deps.AdminProperties.EditForm)
	admin.Post("/properties", deps.AdminProperties.Create)
	admin.Post("/properties/:id", deps.AdminProperties.Update)
	admin.Post("/properties/:id/delete", deps.AdminProperties.Delete)
	admin.Post("/uploads/property-images", deps.AdminProperties.UploadImages)
	admin.Post("/uploads/brochure", deps.AdminProperties.UploadBrochure)

	admin.Get("/blogs", deps.AdminBlogs.List)
	admin.Get("/blogs/new", deps.AdminBlogs.NewForm)
	admin.Get("/blogs/edit/:id", deps.AdminBlogs.EditForm)
	admin.Post("/blogs", deps.AdminBlogs.Create)
	admin.Post("/blogs/:id", deps.AdminBlogs.Update)
	admin.Post("/blogs/:id/delete", deps.AdminBlogs.Delete)
	admin.Post("/uploads/blog-image", deps.AdminBlogs.UploadImage)

	admin.Get("/page-metadata", deps.AdminPageMeta.List)
	admin.Post("/page-metadata", deps.AdminPageMeta.Save)

	// Health & 404
	app.Get("/healthz", func(c *fiber.Ctx) error { return c.JSON(fiber.Map{"ok": true}) })
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(404).Render("notfound", fiber.Map{"Message": "Page not found"})
	})

	log.Fatal(app.Listen(":" + cfg.Port))
}
