package services

import (
	"context"
	"math"
	"strings"

	"luxhaven/internal/content"
	"luxhaven/internal/domain"
)

// All is the sentinel selection that passes every predicate at its level.
const All = "All"

// PriceBucket is one fixed coarse price range, half-open [Min,Max).
type PriceBucket struct {
	Label string
	Min   int64
	Max   int64
}

const crore = 10_000_000

// PriceBuckets is the literal ordered bucket list. Index 0 ("All") spans
// [0,∞) and therefore always passes.
var PriceBuckets = []PriceBucket{
	{Label: "All", Min: 0, Max: math.MaxInt64},
	{Label: "Under ₹5 Cr", Min: 0, Max: 5 * crore},
	{Label: "₹5 Cr – ₹10 Cr", Min: 5 * crore, Max: 10 * crore},
	{Label: "₹10 Cr – ₹20 Cr", Min: 10 * crore, Max: 20 * crore},
	{Label: "Above ₹20 Cr", Min: 20 * crore, Max: math.MaxInt64},
}

// FilterState holds the current listing selections. Mutate it through the
// setters: the location levels cascade downward and never upward.
type FilterState struct {
	Search      string
	Type        string
	Country     string
	State       string
	City        string
	PriceBucket int
}

func NewFilterState() FilterState {
	return FilterState{Type: All, Country: All, State: All, City: All}
}

// SetCountry resets state and city; choosing a new country invalidates the
// narrower selections.
func (f *FilterState) SetCountry(c string) {
	f.Country = orAll(c)
	f.State = All
	f.City = All
}

// SetState resets city only; the country selection is untouched.
func (f *FilterState) SetState(s string) {
	f.State = orAll(s)
	f.City = All
}

func (f *FilterState) SetCity(c string) { f.City = orAll(c) }

func (f *FilterState) SetType(t string) { f.Type = orAll(t) }

func (f *FilterState) SetPriceBucket(i int) {
	if i < 0 || i >= len(PriceBuckets) {
		i = 0
	}
	f.PriceBucket = i
}

func orAll(s string) string {
	if strings.TrimSpace(s) == "" {
		return All
	}
	return s
}

// Matches is the conjunction of every predicate; the order predicates are
// evaluated in never affects the outcome.
func (f FilterState) Matches(p domain.Property) bool {
	if q := strings.ToLower(strings.TrimSpace(f.Search)); q != "" {
		hay := strings.ToLower(strings.Join([]string{
			p.Name, p.City, p.Location, p.ShortDescription, p.FullDescription, p.Type,
		}, "\n"))
		if !strings.Contains(hay, q) {
			return false
		}
	}
	if f.Type != All && p.Type != f.Type {
		return false
	}
	if f.Country != All && p.Country != f.Country {
		return false
	}
	if f.State != All && p.State != f.State {
		return false
	}
	if f.City != All && p.City != f.City {
		return false
	}
	b := PriceBuckets[0]
	if f.PriceBucket >= 0 && f.PriceBucket < len(PriceBuckets) {
		b = PriceBuckets[f.PriceBucket]
	}
	if p.Price < b.Min || (b.Max != math.MaxInt64 && p.Price >= b.Max) {
		return false
	}
	return true
}

// Apply returns the subset of properties passing every predicate, in input
// order. Pure; the input slice is never mutated.
func Apply(props []domain.Property, f FilterState) []domain.Property {
	out := make([]domain.Property, 0, len(props))
	for _, p := range props {
		if f.Matches(p) {
			out = append(out, p)
		}
	}
	return out
}

// LocationOptions are the dropdown contents, derived strictly from the data
// present in the fetched set; a country with no properties never appears.
type LocationOptions struct {
	Countries []string
	States    []string
	Cities    []string
}

// DeriveOptions computes the option lists for the current selection. States
// narrow to the chosen country and cities to the chosen country+state,
// de-duplicated in first-seen order.
func DeriveOptions(props []domain.Property, f FilterState) LocationOptions {
	var opts LocationOptions
	seenCountry := map[string]bool{}
	seenState := map[string]bool{}
	seenCity := map[string]bool{}
	for _, p := range props {
		if p.Country != "" && !seenCountry[p.Country] {
			seenCountry[p.Country] = true
			opts.Countries = append(opts.Countries, p.Country)
		}
		if f.Country != All && p.Country != f.Country {
			continue
		}
		if p.State != "" && !seenState[p.State] {
			seenState[p.State] = true
			opts.States = append(opts.States, p.State)
		}
		if f.State != All && p.State != f.State {
			continue
		}
		if p.City != "" && !seenCity[p.City] {
			seenCity[p.City] = true
			opts.Cities = append(opts.Cities, p.City)
		}
	}
	return opts
}

// CatalogService serves the public listing and detail pages from whichever
// content provider is configured.
type CatalogService struct {
	Content content.Provider
}

func NewCatalogService(p content.Provider) *CatalogService { return &CatalogService{Content: p} }

func (s *CatalogService) ListProperties(ctx context.Context) ([]domain.Property, error) {
	return s.Content.ListProperties(ctx)
}

func (s *CatalogService) GetProperty(ctx context.Context, slug string) (domain.Property, error) {
	return s.Content.GetProperty(ctx, slug)
}

func (s *CatalogService) SimilarProperties(ctx context.Context, p domain.Property) ([]domain.Property, error) {
	return s.Content.SimilarProperties(ctx, p, 3)
}

func (s *CatalogService) ListBlogs(ctx context.Context) ([]domain.Blog, error) {
	return s.Content.ListBlogs(ctx)
}

func (s *CatalogService) GetBlog(ctx context.Context, slug string) (domain.Blog, error) {
	return s.Content.GetBlog(ctx, slug)
}

// Featured filters the full set down to carousel entries. Backend return
// order is preserved; no further ordering is promised.
func Featured(props []domain.Property) []domain.Property {
	out := make([]domain.Property, 0, len(props))
	for _, p := range props {
		if p.IsFeatured {
			out = append(out, p)
		}
	}
	return out
}
