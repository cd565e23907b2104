package repos_test

import (
	"database/sql"
	"errors"
	"testing"

	"luxhaven/internal/domain"
	"luxhaven/internal/repos"
)

func TestBlogCategoryJoin(t *testing.T) {
	r := repos.NewBlogRepo(memdb(t))

	b, err := r.GetBySlug("luxury-market-outlook-2026")
	if err != nil {
		t.Fatal(err)
	}
	if b.Category != "Market Insights" {
		t.Fatalf("joined category: got %q", b.Category)
	}
	if b.Date != "January 15, 2026" {
		t.Fatalf("display date: got %q", b.Date)
	}
}

func TestBlogMissingPublishDateUsesCreatedAt(t *testing.T) {
	r := repos.NewBlogRepo(memdb(t))

	// seeded with an empty publish_date
	b, err := r.GetBySlug("villa-buying-checklist")
	if err != nil {
		t.Fatal(err)
	}
	if b.Date == "" {
		t.Fatal("date should fall back to created_at")
	}
}

func TestBlogDanglingCategoryRendersUncategorized(t *testing.T) {
	db := memdb(t)
	r := repos.NewBlogRepo(db)

	if _, err := db.Exec(`DELETE FROM categories WHERE id = 'cat-market-insights'`); err != nil {
		t.Fatal(err)
	}
	b, err := r.GetBySlug("luxury-market-outlook-2026")
	if err != nil {
		t.Fatal(err)
	}
	if b.Category != "Uncategorized" {
		t.Fatalf("got %q", b.Category)
	}
}

func TestBlogInsertEmptyCategoryStoresNull(t *testing.T) {
	db := memdb(t)
	r := repos.NewBlogRepo(db)

	in := domain.Blog{ID: "b-new", Slug: "pricing-signals", Title: "Pricing Signals", CategoryID: ""}
	if err := r.Insert(in); err != nil {
		t.Fatal(err)
	}

	var catID sql.NullString
	if err := db.Get(&catID, `SELECT category_id FROM blogs WHERE id = 'b-new'`); err != nil {
		t.Fatal(err)
	}
	if catID.Valid {
		t.Fatalf("empty category should store NULL, got %q", catID.String)
	}

	got, err := r.Get("b-new")
	if err != nil {
		t.Fatal(err)
	}
	if got.Category != "Uncategorized" {
		t.Fatalf("got %q", got.Category)
	}
}

func TestBlogDelete(t *testing.T) {
	r := repos.NewBlogRepo(memdb(t))

	b, err := r.GetBySlug("villa-buying-checklist")
	if err != nil {
		t.Fatal(err)
	}
	if err := r.Delete(b.ID); err != nil {
		t.Fatal(err)
	}
	if _, err := r.GetBySlug("villa-buying-checklist"); !errors.Is(err, sql.ErrNoRows) {
		t.Fatalf("deleted blog still readable: %v", err)
	}
}

func TestCategoryEnsureIdempotent(t *testing.T) {
	r := repos.NewCategoryRepo(memdb(t))

	first, err := r.Ensure("cat-x", "Legal Corner", "legal-corner")
	if err != nil {
		t.Fatal(err)
	}
	second, err := r.Ensure("cat-y", "Legal Corner", "legal-corner")
	if err != nil {
		t.Fatal(err)
	}
	if first.ID != second.ID {
		t.Fatalf("Ensure created a duplicate: %q vs %q", first.ID, second.ID)
	}
}

func TestPageMetaUpsert(t *testing.T) {
	r := repos.NewPageMetaRepo(memdb(t))

	m := domain.PageMeta{PagePath: "/about", PageName: "About Us", MetaTitle: "First"}
	if err := r.Upsert(m); err != nil {
		t.Fatal(err)
	}
	m.MetaTitle = "Second"
	if err := r.Upsert(m); err != nil {
		t.Fatal(err)
	}

	got, err := r.GetByPath("/about")
	if err != nil {
		t.Fatal(err)
	}
	if got.MetaTitle != "Second" {
		t.Fatalf("upsert did not overwrite: %q", got.MetaTitle)
	}

	rows, err := r.List()
	if err != nil {
		t.Fatal(err)
	}
	seen := 0
	for _, row := range rows {
		if row.PagePath == "/about" {
			seen++
		}
	}
	if seen != 1 {
		t.Fatalf("upsert duplicated the row: %d", seen)
	}
}
