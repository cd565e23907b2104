package repos

import (
	"log"

	"github.com/jmoiron/sqlx"
	"golang.org/x/crypto/bcrypt"
	_ "modernc.org/sqlite"
)

func OpenDB(dsn string) (*sqlx.DB, error) {
	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	if err = db.Ping(); err != nil {
		return nil, err
	}

	if err := ensureSchema(db); err != nil {
		return nil, err
	}
	// Seed baseline content if the DB is empty (idempotent; safe on every start)
	if err := seedIfEmpty(db); err != nil {
		return nil, err
	}
	if err := seedPageMeta(db); err != nil {
		return nil, err
	}
	if err := seedUsers(db); err != nil {
		return nil, err
	}

	return db, nil
}

func ensureSchema(db *sqlx.DB) error {
	schema := `
PRAGMA foreign_keys = ON;

-- Blog categories, created ad hoc from the blog form
CREATE TABLE IF NOT EXISTS categories(
  id TEXT PRIMARY KEY,
  name TEXT NOT NULL,
  slug TEXT NOT NULL,
  created_at TEXT DEFAULT CURRENT_TIMESTAMP
);
CREATE UNIQUE INDEX IF NOT EXISTS idx_categories_slug ON categories(slug);

-- Properties
CREATE TABLE IF NOT EXISTS properties(
  id TEXT PRIMARY KEY,
  slug TEXT NOT NULL UNIQUE,
  name TEXT NOT NULL,
  category TEXT NOT NULL CHECK (category IN ('Residential','Commercial','Plot')),
  type TEXT NOT NULL CHECK (type IN ('Apartment','Villa','Plot','Commercial')),
  location TEXT DEFAULT '',
  address TEXT DEFAULT '',
  country TEXT DEFAULT '',
  state TEXT DEFAULT '',
  city TEXT DEFAULT '',
  coordinates TEXT,
  price INTEGER NOT NULL DEFAULT 0 CHECK (price >= 0),
  price_on_request INTEGER NOT NULL DEFAULT 0,
  short_description TEXT DEFAULT '',
  full_description TEXT DEFAULT '',
  images TEXT,
  brochure_url TEXT DEFAULT '',
  project_units TEXT DEFAULT '',
  project_area TEXT DEFAULT '',
  size_range TEXT DEFAULT '',
  project_size TEXT DEFAULT '',
  launch_date TEXT DEFAULT '',
  possession_date TEXT DEFAULT '',
  possession_status TEXT DEFAULT '',
  avg_price TEXT DEFAULT '',
  configuration TEXT DEFAULT '',
  rera_id TEXT DEFAULT '',
  area_name TEXT DEFAULT '',
  map_url TEXT DEFAULT '',
  features TEXT,
  amenities TEXT,
  faqs TEXT,
  meta_title TEXT DEFAULT '',
  meta_description TEXT DEFAULT '',
  keywords TEXT DEFAULT '',
  is_featured INTEGER NOT NULL DEFAULT 0,
  created_at TEXT DEFAULT CURRENT_TIMESTAMP,
  updated_at TEXT
);
CREATE INDEX IF NOT EXISTS idx_properties_created_at ON properties(created_at);
CREATE INDEX IF NOT EXISTS idx_properties_type       ON properties(type);
CREATE INDEX IF NOT EXISTS idx_properties_featured   ON properties(is_featured);

-- Blogs
CREATE TABLE IF NOT EXISTS blogs(
  id TEXT PRIMARY KEY,
  slug TEXT NOT NULL UNIQUE,
  title TEXT NOT NULL,
  category_id TEXT REFERENCES categories(id) ON DELETE SET NULL,
  excerpt TEXT DEFAULT '',
  content TEXT DEFAULT '',
  image TEXT DEFAULT '',
  author TEXT DEFAULT '',
  publish_date TEXT DEFAULT '',
  meta_title TEXT DEFAULT '',
  meta_description TEXT DEFAULT '',
  keywords TEXT DEFAULT '',
  faqs TEXT,
  created_at TEXT DEFAULT CURRENT_TIMESTAMP,
  updated_at TEXT
);
CREATE INDEX IF NOT EXISTS idx_blogs_created_at ON blogs(created_at);
CREATE INDEX IF NOT EXISTS idx_blogs_category   ON blogs(category_id);

-- Page-level SEO metadata, upserted by path
CREATE TABLE IF NOT EXISTS page_metadata(
  page_path TEXT PRIMARY KEY,
  page_name TEXT NOT NULL,
  meta_title TEXT DEFAULT '',
  meta_description TEXT DEFAULT '',
  keywords TEXT DEFAULT '',
  updated_at TEXT
);

-- Users & Sessions
CREATE TABLE IF NOT EXISTS users(
  id TEXT PRIMARY KEY,
  email TEXT NOT NULL UNIQUE,
  name TEXT NOT NULL,
  password_hash TEXT NOT NULL,
  role TEXT NOT NULL CHECK (role IN ('USER','ADMIN')),
  created_at TEXT DEFAULT CURRENT_TIMESTAMP,
  updated_at TEXT
);
CREATE UNIQUE INDEX IF NOT EXISTS idx_users_email ON users(LOWER(email));

CREATE TABLE IF NOT EXISTS sessions(
  id TEXT PRIMARY KEY,               -- same value as the 'sid' cookie
  user_id TEXT NULL REFERENCES users(id) ON DELETE SET NULL,
  created_at TEXT DEFAULT CURRENT_TIMESTAMP,
  last_seen  TEXT
);
CREATE INDEX IF NOT EXISTS idx_sessions_user ON sessions(user_id);
`
	_, err := db.Exec(schema)
	return err
}

func seedIfEmpty(db *sqlx.DB) error {
	var n int
	if err := db.Get(&n, `SELECT COUNT(*) FROM properties`); err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	log.Println("[seed] inserting demo properties/blogs/categories")

	tx := db.MustBegin()
	tx.MustExec(`INSERT INTO categories(id,name,slug) VALUES
	  ('cat-market-insights','Market Insights','market-insights'),
	  ('cat-buying-guides','Buying Guides','buying-guides')`)

	tx.MustExec(`INSERT INTO properties(
	    id,slug,name,category,type,location,address,country,state,city,
	    coordinates,price,price_on_request,short_description,full_description,
	    images,features,amenities,faqs,is_featured) VALUES
	  ('prop-skyline-one','skyline-residences','Skyline Residences','Residential','Apartment',
	   'Worli, Mumbai','Dr Annie Besant Road, Worli','IN','MH','Mumbai',
	   '{"lat":19.0176,"lng":72.8562}',65000000,0,
	   'Sea-facing 3 and 4 BHK residences in Worli.',
	   '<p>Signature residences with uninterrupted views of the Arabian Sea.</p>',
	   '["/media/properties/skyline-residences/hero.jpg"]',
	   '{"area":2450,"facing":"West"}',
	   '["Infinity Pool","Concierge","Private Theatre"]',
	   '[{"question":"Is the project RERA registered?","answer":"Yes, registration details are available on request."}]',
	   1),
	  ('prop-palm-court','palm-court-villas','Palm Court Villas','Residential','Villa',
	   'Alibaug','Mandwa-Alibaug Road','IN','MH','Alibaug',
	   '{"lat":18.6411,"lng":72.8722}',0,1,
	   'Private beach villas with landscaped courts.',
	   '<p>Four-bedroom villas set in a private palm grove.</p>',
	   '["/media/properties/palm-court-villas/hero.jpg"]',
	   '{"area":5200,"facing":"North"}',
	   '["Private Pool","Beach Access"]','[]',1),
	  ('prop-crest-park','crest-business-park','Crest Business Park','Commercial','Commercial',
	   'Gurugram','Golf Course Extension Road','IN','HR','Gurugram',
	   NULL,120000000,0,
	   'Grade-A office floors on Golf Course Extension.',
	   '<p>LEED Platinum certified commercial tower.</p>',
	   '["/media/properties/crest-business-park/hero.jpg"]',
	   NULL,NULL,NULL,0)`)

	tx.MustExec(`INSERT INTO blogs(id,slug,title,category_id,excerpt,content,image,author,publish_date) VALUES
	  ('blog-luxury-2026','luxury-market-outlook-2026','Luxury Market Outlook 2026','cat-market-insights',
	   'Where the premium segment is headed this year.',
	   '<p>Premium housing demand continues to outpace supply in the top seven cities.</p>',
	   '/media/blog-images/luxury-market-outlook-2026/hero.jpg','Editorial Desk','2026-01-15'),
	  ('blog-villa-checklist','villa-buying-checklist','The Villa Buying Checklist','cat-buying-guides',
	   'Ten things to verify before you sign.',
	   '<p>From title diligence to maintenance covenants, here is what matters.</p>',
	   '/media/blog-images/villa-buying-checklist/hero.jpg','Editorial Desk','')`)

	return tx.Commit()
}

// seedPageMeta ensures a row per known route (idempotent; existing edits win).
func seedPageMeta(db *sqlx.DB) error {
	pages := []struct{ Path, Name string }{
		{"/", "Home"},
		{"/properties", "Properties"},
		{"/blogs", "Blogs"},
		{"/about", "About Us"},
		{"/contact", "Contact"},
	}
	tx := db.MustBegin()
	defer func() { _ = tx.Rollback() }()
	for _, p := range pages {
		if _, err := tx.Exec(`
			INSERT INTO page_metadata(page_path,page_name)
			VALUES(?,?)
			ON CONFLICT(page_path) DO NOTHING
		`, p.Path, p.Name); err != nil {
			return err
		}
	}
	return tx.Commit()
}

// seedUsers ensures an ADMIN and a plain USER exist (idempotent).
func seedUsers(db *sqlx.DB) error {
	type u struct {
		ID, Email, Name, Role, Hash string
	}
	mk := func(id, email, name, role, raw string) u {
		h, _ := bcrypt.GenerateFromPassword([]byte(raw), 12)
		return u{ID: id, Email: email, Name: name, Role: role, Hash: string(h)}
	}

	users := []u{
		mk("u-admin", "admin@luxhaven.test", "Admin", "ADMIN", "Passw0rd!"),
		mk("u-editor", "editor@luxhaven.test", "Editor", "USER", "Passw0rd!"),
	}

	tx := db.MustBegin()
	defer func() { _ = tx.Rollback() }()

	for _, x := range users {
		if _, err := tx.Exec(`
			INSERT INTO users(id,email,name,password_hash,role)
			VALUES(?,?,?,?,?)
			ON CONFLICT(email) DO NOTHING
		`, x.ID, x.Email, x.Name, x.Hash, x.Role); err != nil {
			return err
		}
	}

	return tx.Commit()
}
