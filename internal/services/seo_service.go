package services

import (
	"context"
	"strings"

	"luxhaven/internal/content"
	"luxhaven/internal/content/cms"
	"luxhaven/internal/domain"
	"luxhaven/internal/repos"
)

// SEOService resolves page-level metadata with a strict two-tier fallback:
// CMS page document first, then the page_metadata table, then an empty Meta
// so the caller's own literal defaults apply. Nothing is cached between
// requests.
type SEOService struct {
	CMS   *cms.Client
	Pages *repos.PageMetaRepo
}

func NewSEOService(client *cms.Client, pages *repos.PageMetaRepo) *SEOService {
	return &SEOService{CMS: client, Pages: pages}
}

// Resolve looks up metadata for a route path. Any CMS error, including a
// missing access token, silently falls through to the database row.
func (s *SEOService) Resolve(ctx context.Context, path string) domain.Meta {
	// A page document without a title does not count as populated, even
	// if stray keywords are present; the database row wins in that case.
	if doc, err := s.CMS.GetByUID(ctx, "page", pageUID(path)); err == nil {
		if m := content.MapPageMeta(doc); m.Title != "" {
			return m
		}
	}
	if row, err := s.Pages.GetByPath(path); err == nil {
		return domain.Meta{
			Title:       row.MetaTitle,
			Description: row.MetaDescription,
			Keywords:    row.Keywords,
		}
	}
	return domain.Meta{}
}

// pageUID maps a route path to a CMS page UID: leading slash stripped, the
// root path becomes "home".
func pageUID(path string) string {
	uid := strings.TrimPrefix(path, "/")
	if uid == "" {
		return "home"
	}
	return uid
}
