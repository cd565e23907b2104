package handlers

import (
	"luxhaven/internal/config"
	"luxhaven/internal/content"
	"luxhaven/internal/content/cms"
	"luxhaven/internal/geo"
	"luxhaven/internal/repos"
	"luxhaven/internal/services"
	"luxhaven/internal/storage"

	"github.com/jmoiron/sqlx"
)

type Deps struct {
	SiteHandler     *SiteHandler
	PropertyHandler *PropertyHandler
	BlogHandler     *BlogHandler
	ContactHandler  *ContactHandler
	WebhookHandler  *WebhookHandler
	SitemapHandler  *SitemapHandler
	GeoHandler      *GeoHandler

	AdminProperties *AdminPropertyHandler
	AdminBlogs      *AdminBlogHandler
	AdminPageMeta   *AdminPageMetaHandler
}

func NewDeps(db *sqlx.DB, cfg config.Config, auth *services.AuthService) *Deps {
	propRepo := repos.NewPropertyRepo(db)
	blogRepo := repos.NewBlogRepo(db)
	catRepo := repos.NewCategoryRepo(db)
	pageRepo := repos.NewPageMetaRepo(db)

	cmsClient := cms.New(cfg.CMSBaseURL, cfg.CMSAccessToken)
	provider := content.Select(cfg.ContentSource, cmsClient, propRepo, blogRepo)

	catalogSvc := services.NewCatalogService(provider)
	seoSvc := services.NewSEOService(cmsClient, pageRepo)
	uploadSvc := services.NewUploadService(storage.NewMediaStore(cfg.MediaDir))
	contactSvc := services.NewContactService(cfg.EmailServiceID, cfg.EmailTemplateID, cfg.EmailPublicKey)
	revalidator := services.NewRevalidator()

	return &Deps{
		SiteHandler:     &SiteHandler{Catalog: catalogSvc, SEO: seoSvc},
		PropertyHandler: &PropertyHandler{Catalog: catalogSvc, SEO: seoSvc},
		BlogHandler:     &BlogHandler{Catalog: catalogSvc, Categories: catRepo, SEO: seoSvc},
		ContactHandler:  &ContactHandler{Contact: contactSvc, SEO: seoSvc},
		WebhookHandler:  &WebhookHandler{Secret: cfg.RevalidateSecret, Revalidator: revalidator},
		SitemapHandler:  &SitemapHandler{SiteURL: cfg.SiteURL, Properties: propRepo, Blogs: blogRepo},
		GeoHandler:      &GeoHandler{Geo: geo.New(cfg.GeocodeBaseURL)},

		AdminProperties: &AdminPropertyHandler{Props: propRepo, Uploads: uploadSvc},
		AdminBlogs:      &AdminBlogHandler{Blogs: blogRepo, Categories: catRepo, Uploads: uploadSvc},
		AdminPageMeta:   &AdminPageMetaHandler{Pages: pageRepo},
	}
}
