package handlers

import (
	"encoding/xml"

	applog "luxhaven/internal/log"
	"luxhaven/internal/repos"

	"github.com/gofiber/fiber/v2"
)

// SitemapHandler emits sitemap.xml from the fixed static routes plus every
// property and blog slug. Database errors drop the dynamic portion; the
// endpoint itself never fails.
type SitemapHandler struct {
	SiteURL    string
	Properties *repos.PropertyRepo
	Blogs      *repos.BlogRepo
}

type sitemapURL struct {
	Loc        string  `xml:"loc"`
	LastMod    string  `xml:"lastmod,omitempty"`
	ChangeFreq string  `xml:"changefreq,omitempty"`
	Priority   float64 `xml:"priority,omitempty"`
}

type urlSet struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

var staticRoutes = []sitemapURL{
	{Loc: "/", ChangeFreq: "daily", Priority: 1.0},
	{Loc: "/properties", ChangeFreq: "daily", Priority: 0.9},
	{Loc: "/blogs", ChangeFreq: "weekly", Priority: 0.7},
	{Loc: "/about", ChangeFreq: "monthly", Priority: 0.5},
	{Loc: "/contact", ChangeFreq: "monthly", Priority: 0.5},
}

func (h *SitemapHandler) Sitemap(c *fiber.Ctx) error {
	set := urlSet{XMLNS: "http://www.sitemaps.org/schemas/sitemap/0.9"}
	for _, r := range staticRoutes {
		r.Loc = h.SiteURL + r.Loc
		set.URLs = append(set.URLs, r)
	}

	if slugs, err := h.Properties.Slugs(); err != nil {
		applog.Error(c, "sitemap.properties.fail", err, nil)
	} else {
		for _, s := range slugs {
			set.URLs = append(set.URLs, sitemapURL{
				Loc:        h.SiteURL + "/properties/" + s.Slug,
				LastMod:    s.LastModified,
				ChangeFreq: "weekly",
				Priority:   0.8,
			})
		}
	}
	if slugs, err := h.Blogs.Slugs(); err != nil {
		applog.Error(c, "sitemap.blogs.fail", err, nil)
	} else {
		for _, s := range slugs {
			set.URLs = append(set.URLs, sitemapURL{
				Loc:        h.SiteURL + "/blogs/" + s.Slug,
				LastMod:    s.LastModified,
				ChangeFreq: "weekly",
				Priority:   0.6,
			})
		}
	}

	out, err := xml.MarshalIndent(set, "", "  ")
	if err != nil {
		return c.SendStatus(fiber.StatusInternalServerError)
	}
	c.Set("Content-Type", "application/xml; charset=utf-8")
	return c.SendString(xml.Header + string(out))
}
