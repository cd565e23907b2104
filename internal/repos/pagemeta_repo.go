package repos

import (
	"luxhaven/internal/domain"

	"github.com/jmoiron/sqlx"
)

type PageMetaRepo struct{ db *sqlx.DB }

func NewPageMetaRepo(db *sqlx.DB) *PageMetaRepo { return &PageMetaRepo{db: db} }

func (r *PageMetaRepo) List() ([]domain.PageMeta, error) {
	var out []domain.PageMeta
	err := r.db.Select(&out, `
	  SELECT page_path, page_name, meta_title, meta_description, keywords,
	         COALESCE(updated_at,'') AS updated_at
	  FROM page_metadata ORDER BY page_path`)
	return out, err
}

func (r *PageMetaRepo) GetByPath(path string) (domain.PageMeta, error) {
	var m domain.PageMeta
	err := r.db.Get(&m, `
	  SELECT page_path, page_name, meta_title, meta_description, keywords,
	         COALESCE(updated_at,'') AS updated_at
	  FROM page_metadata WHERE page_path = ?`, path)
	return m, err
}

// Upsert inserts or replaces the row keyed by page_path.
func (r *PageMetaRepo) Upsert(m domain.PageMeta) error {
	_, err := r.db.Exec(`
	  INSERT INTO page_metadata(page_path, page_name, meta_title, meta_description, keywords, updated_at)
	  VALUES(?,?,?,?,?,CURRENT_TIMESTAMP)
	  ON CONFLICT(page_path) DO UPDATE SET
	    page_name=excluded.page_name,
	    meta_title=excluded.meta_title,
	    meta_description=excluded.meta_description,
	    keywords=excluded.keywords,
	    updated_at=CURRENT_TIMESTAMP`,
		m.PagePath, m.PageName, m.MetaTitle, m.MetaDescription, m.Keywords)
	return err
}
