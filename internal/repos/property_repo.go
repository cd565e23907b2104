package repos

import (
	"luxhaven/internal/domain"

	"github.com/jmoiron/sqlx"
)

const propertyCols = `
  id, slug, name, category, type, location, address, country, state, city,
  coordinates, price, price_on_request, short_description, full_description,
  images, brochure_url, project_units, project_area, size_range, project_size,
  launch_date, possession_date, possession_status, avg_price, configuration,
  rera_id, area_name, map_url, features, amenities, faqs,
  meta_title, meta_description, keywords, is_featured,
  created_at, COALESCE(updated_at,'') AS updated_at`

type PropertyRepo struct{ db *sqlx.DB }

func NewPropertyRepo(db *sqlx.DB) *PropertyRepo { return &PropertyRepo{db: db} }

// List returns the whole table, newest first. There is no pagination; the
// admin screen and the public listing both filter the full slice in memory.
func (r *PropertyRepo) List() ([]domain.Property, error) {
	var out []domain.Property
	err := r.db.Select(&out, `SELECT `+propertyCols+` FROM properties ORDER BY created_at DESC, id DESC`)
	return out, err
}

func (r *PropertyRepo) Featured() ([]domain.Property, error) {
	var out []domain.Property
	err := r.db.Select(&out, `SELECT `+propertyCols+` FROM properties WHERE is_featured = 1 ORDER BY created_at DESC, id DESC`)
	return out, err
}

func (r *PropertyRepo) Get(id string) (domain.Property, error) {
	var p domain.Property
	err := r.db.Get(&p, `SELECT `+propertyCols+` FROM properties WHERE id = ?`, id)
	return p, err
}

func (r *PropertyRepo) GetBySlug(slug string) (domain.Property, error) {
	var p domain.Property
	err := r.db.Get(&p, `SELECT `+propertyCols+` FROM properties WHERE slug = ?`, slug)
	return p, err
}

// Similar returns up to limit properties sharing the type, excluding the
// given id. City matches sort first.
func (r *PropertyRepo) Similar(id, typ, city string, limit int) ([]domain.Property, error) {
	var out []domain.Property
	err := r.db.Select(&out, `
	  SELECT `+propertyCols+`
	  FROM properties
	  WHERE id != ? AND type = ?
	  ORDER BY (city = ?) DESC, created_at DESC
	  LIMIT ?`, id, typ, city, limit)
	return out, err
}

func (r *PropertyRepo) Insert(p domain.Property) error {
	_, err := r.db.NamedExec(`
	  INSERT INTO properties(
	    id, slug, name, category, type, location, address, country, state, city,
	    coordinates, price, price_on_request, short_description, full_description,
	    images, brochure_url, project_units, project_area, size_range, project_size,
	    launch_date, possession_date, possession_status, avg_price, configuration,
	    rera_id, area_name, map_url, features, amenities, faqs,
	    meta_title, meta_description, keywords, is_featured
	  ) VALUES (
	    :id, :slug, :name, :category, :type, :location, :address, :country, :state, :city,
	    :coordinates, :price, :price_on_request, :short_description, :full_description,
	    :images, :brochure_url, :project_units, :project_area, :size_range, :project_size,
	    :launch_date, :possession_date, :possession_status, :avg_price, :configuration,
	    :rera_id, :area_name, :map_url, :features, :amenities, :faqs,
	    :meta_title, :meta_description, :keywords, :is_featured
	  )`, p)
	return err
}

func (r *PropertyRepo) Update(p domain.Property) error {
	_, err := r.db.NamedExec(`
	  UPDATE properties SET
	    slug=:slug, name=:name, category=:category, type=:type,
	    location=:location, address=:address, country=:country, state=:state, city=:city,
	    coordinates=:coordinates, price=:price, price_on_request=:price_on_request,
	    short_description=:short_description, full_description=:full_description,
	    images=:images, brochure_url=:brochure_url,
	    project_units=:project_units, project_area=:project_area, size_range=:size_range,
	    project_size=:project_size, launch_date=:launch_date, possession_date=:possession_date,
	    possession_status=:possession_status, avg_price=:avg_price, configuration=:configuration,
	    rera_id=:rera_id, area_name=:area_name, map_url=:map_url,
	    features=:features, amenities=:amenities, faqs=:faqs,
	    meta_title=:meta_title, meta_description=:meta_description, keywords=:keywords,
	    is_featured=:is_featured, updated_at=CURRENT_TIMESTAMP
	  WHERE id=:id`, p)
	return err
}

// Delete removes a row by id. There is no soft-delete; the row is gone.
func (r *PropertyRepo) Delete(id string) error {
	_, err := r.db.Exec(`DELETE FROM properties WHERE id = ?`, id)
	return err
}

// Slugs returns slug + last-modified pairs for the sitemap.
func (r *PropertyRepo) Slugs() ([]SlugEntry, error) {
	var out []SlugEntry
	err := r.db.Select(&out, `
	  SELECT slug, COALESCE(NULLIF(updated_at,''), created_at) AS last_modified
	  FROM properties ORDER BY created_at DESC`)
	return out, err
}

type SlugEntry struct {
	Slug         string `db:"slug"`
	LastModified string `db:"last_modified"`
}
