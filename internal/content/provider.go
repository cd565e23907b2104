package content

import (
	"context"
	"database/sql"
	"errors"

	"luxhaven/internal/content/cms"
	"luxhaven/internal/domain"
	"luxhaven/internal/repos"
)

// ErrNotFound is the backend-independent "no such entity" signal; pages
// render their not-found state on it.
var ErrNotFound = errors.New("content: not found")

// Provider is the single read interface over the two content backends. Each
// deployment picks one via CONTENT_SOURCE; call sites never hard-code a
// backend.
type Provider interface {
	ListProperties(ctx context.Context) ([]domain.Property, error)
	GetProperty(ctx context.Context, slug string) (domain.Property, error)
	SimilarProperties(ctx context.Context, p domain.Property, limit int) ([]domain.Property, error)
	ListBlogs(ctx context.Context) ([]domain.Blog, error)
	GetBlog(ctx context.Context, slug string) (domain.Blog, error)
}

// Select picks the provider for the configured source. Any value other than
// "cms" means the database; a cms selection without credentials also falls
// back to the database so the site works unconfigured.
func Select(source string, client *cms.Client, props *repos.PropertyRepo, blogs *repos.BlogRepo) Provider {
	if source == "cms" && client.Configured() {
		return &cmsProvider{client: client}
	}
	return &dbProvider{props: props, blogs: blogs}
}

type dbProvider struct {
	props *repos.PropertyRepo
	blogs *repos.BlogRepo
}

func (p *dbProvider) ListProperties(ctx context.Context) ([]domain.Property, error) {
	return p.props.List()
}

func (p *dbProvider) GetProperty(ctx context.Context, slug string) (domain.Property, error) {
	prop, err := p.props.GetBySlug(slug)
	if errors.Is(err, sql.ErrNoRows) {
		return prop, ErrNotFound
	}
	return prop, err
}

func (p *dbProvider) SimilarProperties(ctx context.Context, prop domain.Property, limit int) ([]domain.Property, error) {
	return p.props.Similar(prop.ID, prop.Type, prop.City, limit)
}

func (p *dbProvider) ListBlogs(ctx context.Context) ([]domain.Blog, error) {
	return p.blogs.List()
}

func (p *dbProvider) GetBlog(ctx context.Context, slug string) (domain.Blog, error) {
	b, err := p.blogs.GetBySlug(slug)
	if errors.Is(err, sql.ErrNoRows) {
		return b, ErrNotFound
	}
	return b, err
}

type cmsProvider struct {
	client *cms.Client
}

func (p *cmsProvider) ListProperties(ctx context.Context) ([]domain.Property, error) {
	docs, err := p.client.GetAllByType(ctx, "property", cms.Options{
		Orderings: "first_publication_date desc",
	})
	if err != nil {
		return nil, err
	}
	out := make([]domain.Property, 0, len(docs))
	for i := range docs {
		out = append(out, MapProperty(&docs[i]))
	}
	return out, nil
}

func (p *cmsProvider) GetProperty(ctx context.Context, slug string) (domain.Property, error) {
	doc, err := p.client.GetByUID(ctx, "property", slug)
	if errors.Is(err, cms.ErrNotFound) {
		return domain.Property{}, ErrNotFound
	}
	if err != nil {
		return domain.Property{}, err
	}
	return MapProperty(doc), nil
}

func (p *cmsProvider) SimilarProperties(ctx context.Context, prop domain.Property, limit int) ([]domain.Property, error) {
	docs, err := p.client.GetAllByType(ctx, "property", cms.Options{
		Limit: limit,
		Filters: []cms.Filter{
			{Field: "type", Equals: prop.Type},
			{NotDocID: prop.ID},
		},
	})
	if err != nil {
		return nil, err
	}
	out := make([]domain.Property, 0, len(docs))
	for i := range docs {
		out = append(out, MapProperty(&docs[i]))
	}
	return out, nil
}

func (p *cmsProvider) ListBlogs(ctx context.Context) ([]domain.Blog, error) {
	docs, err := p.client.GetAllByType(ctx, "blog_post", cms.Options{
		Orderings: "first_publication_date desc",
	})
	if err != nil {
		return nil, err
	}
	out := make([]domain.Blog, 0, len(docs))
	for i := range docs {
		out = append(out, MapBlog(&docs[i]))
	}
	return out, nil
}

func (p *cmsProvider) GetBlog(ctx context.Context, slug string) (domain.Blog, error) {
	doc, err := p.client.GetByUID(ctx, "blog_post", slug)
	if errors.Is(err, cms.ErrNotFound) {
		return domain.Blog{}, ErrNotFound
	}
	if err != nil {
		return domain.Blog{}, err
	}
	return MapBlog(doc), nil
}
