package repos

import (
	"database/sql"
	"errors"

	"luxhaven/internal/domain"

	"github.com/jmoiron/sqlx"
)

type CategoryRepo struct{ db *sqlx.DB }

func NewCategoryRepo(db *sqlx.DB) *CategoryRepo { return &CategoryRepo{db: db} }

func (r *CategoryRepo) List() ([]domain.Category, error) {
	var out []domain.Category
	err := r.db.Select(&out, `SELECT id, name, slug, created_at FROM categories ORDER BY name`)
	return out, err
}

// Ensure returns the category with the given name, inserting it when the
// blog form introduces a name nobody has used before.
func (r *CategoryRepo) Ensure(id, name, slug string) (domain.Category, error) {
	var c domain.Category
	err := r.db.Get(&c, `SELECT id, name, slug, created_at FROM categories WHERE slug = ?`, slug)
	if err == nil {
		return c, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return c, err
	}
	if _, err := r.db.Exec(`INSERT INTO categories(id,name,slug) VALUES(?,?,?)`, id, name, slug); err != nil {
		return c, err
	}
	return domain.Category{ID: id, Name: name, Slug: slug}, nil
}
