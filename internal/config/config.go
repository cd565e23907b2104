package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port     string
	DBDSN    string
	MediaDir string
	LogFile  string

	// Which content backend feeds the public pages: "db" or "cms".
	ContentSource string

	// Headless CMS read API. Empty token means the CMS client runs in
	// not-configured mode and every lookup falls through to the database.
	CMSBaseURL     string
	CMSAccessToken string

	// Shared secret for the revalidation webhook.
	RevalidateSecret string

	// Email relay credentials. All three empty => contact sends are simulated.
	EmailServiceID  string
	EmailTemplateID string
	EmailPublicKey  string

	// Reverse-geocoding endpoint; empty disables the lookup.
	GeocodeBaseURL string

	// Canonical site origin used by the sitemap.
	SiteURL string
}

func Load() Config {
	// Best effort: a missing .env is fine.
	_ = godotenv.Load()

	cfg := Config{
		Port:             getenv("PORT", "8080"),
		DBDSN:            getenv("DB_DSN", "luxhaven.db"),
		MediaDir:         getenv("MEDIA_DIR", "./web/media"),
		LogFile:          getenv("LOG_FILE", "./luxhaven.log"),
		ContentSource:    getenv("CONTENT_SOURCE", "db"),
		CMSBaseURL:       os.Getenv("CMS_BASE_URL"),
		CMSAccessToken:   os.Getenv("CMS_ACCESS_TOKEN"),
		RevalidateSecret: os.Getenv("REVALIDATE_SECRET"),
		EmailServiceID:   os.Getenv("EMAIL_SERVICE_ID"),
		EmailTemplateID:  os.Getenv("EMAIL_TEMPLATE_ID"),
		EmailPublicKey:   os.Getenv("EMAIL_PUBLIC_KEY"),
		GeocodeBaseURL:   os.Getenv("GEOCODE_BASE_URL"),
		SiteURL:          getenv("SITE_URL", "https://luxhaven.example.com"),
	}
	log.Printf("[config] PORT=%s DB_DSN=%s MEDIA_DIR=%s CONTENT_SOURCE=%s cms=%v email=%v",
		cfg.Port, cfg.DBDSN, cfg.MediaDir, cfg.ContentSource,
		cfg.CMSAccessToken != "", cfg.EmailServiceID != "")
	return cfg
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
