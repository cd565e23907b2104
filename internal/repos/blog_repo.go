package repos

import (
	"luxhaven/internal/domain"

	"github.com/jmoiron/sqlx"
)

// The category name rides along via the join; a dangling or missing
// category renders as "Uncategorized".
const blogCols = `
  b.id, b.slug, b.title, COALESCE(b.category_id,'') AS category_id,
  COALESCE(c.name,'Uncategorized') AS category,
  b.excerpt, b.content, b.image, b.author, b.publish_date,
  COALESCE(NULLIF(b.publish_date,''), b.created_at) AS date,
  b.meta_title, b.meta_description, b.keywords, b.faqs,
  b.created_at, COALESCE(b.updated_at,'') AS updated_at`

type BlogRepo struct{ db *sqlx.DB }

func NewBlogRepo(db *sqlx.DB) *BlogRepo { return &BlogRepo{db: db} }

func (r *BlogRepo) List() ([]domain.Blog, error) {
	var out []domain.Blog
	err := r.db.Select(&out, `
	  SELECT `+blogCols+`
	  FROM blogs b LEFT JOIN categories c ON c.id = b.category_id
	  ORDER BY b.created_at DESC, b.id DESC`)
	if err != nil {
		return nil, err
	}
	for i := range out {
		out[i].Date = domain.DeriveDisplayDate(out[i].Date)
	}
	return out, nil
}

func (r *BlogRepo) Get(id string) (domain.Blog, error) {
	var b domain.Blog
	err := r.db.Get(&b, `
	  SELECT `+blogCols+`
	  FROM blogs b LEFT JOIN categories c ON c.id = b.category_id
	  WHERE b.id = ?`, id)
	if err == nil {
		b.Date = domain.DeriveDisplayDate(b.Date)
	}
	return b, err
}

func (r *BlogRepo) GetBySlug(slug string) (domain.Blog, error) {
	var b domain.Blog
	err := r.db.Get(&b, `
	  SELECT `+blogCols+`
	  FROM blogs b LEFT JOIN categories c ON c.id = b.category_id
	  WHERE b.slug = ?`, slug)
	if err == nil {
		b.Date = domain.DeriveDisplayDate(b.Date)
	}
	return b, err
}

func (r *BlogRepo) Insert(b domain.Blog) error {
	_, err := r.db.Exec(`
	  INSERT INTO blogs(id, slug, title, category_id, excerpt, content, image, author,
	                    publish_date, meta_title, meta_description, keywords, faqs)
	  VALUES (?,?,?,NULLIF(?,''),?,?,?,?,?,?,?,?,?)`,
		b.ID, b.Slug, b.Title, b.CategoryID, b.Excerpt, b.Content, b.Image, b.Author,
		b.PublishDate, b.MetaTitle, b.MetaDescription, b.Keywords, b.FAQs)
	return err
}

func (r *BlogRepo) Update(b domain.Blog) error {
	_, err := r.db.Exec(`
	  UPDATE blogs SET
	    slug=?, title=?, category_id=NULLIF(?,''), excerpt=?, content=?, image=?, author=?,
	    publish_date=?, meta_title=?, meta_description=?, keywords=?, faqs=?,
	    updated_at=CURRENT_TIMESTAMP
	  WHERE id=?`,
		b.Slug, b.Title, b.CategoryID, b.Excerpt, b.Content, b.Image, b.Author,
		b.PublishDate, b.MetaTitle, b.MetaDescription, b.Keywords, b.FAQs, b.ID)
	return err
}

func (r *BlogRepo) Delete(id string) error {
	_, err := r.db.Exec(`DELETE FROM blogs WHERE id = ?`, id)
	return err
}

func (r *BlogRepo) Slugs() ([]SlugEntry, error) {
	var out []SlugEntry
	err := r.db.Select(&out, `
	  SELECT slug, COALESCE(NULLIF(updated_at,''), created_at) AS last_modified
	  FROM blogs ORDER BY created_at DESC`)
	return out, err
}
