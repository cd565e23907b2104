package services_test

import (
	"testing"

	"luxhaven/internal/domain"
	"luxhaven/internal/services"
)

func fixtureProperties() []domain.Property {
	return []domain.Property{
		{ID: "p1", Name: "Skyline Residences", Type: "Apartment", Country: "India", State: "Maharashtra", City: "Mumbai", Price: 30_000_000},
		{ID: "p2", Name: "Palm Court Villas", Type: "Villa", Country: "India", State: "Maharashtra", City: "Pune", Price: 80_000_000},
		{ID: "p3", Name: "Crest Business Park", Type: "Commercial", Country: "India", State: "Karnataka", City: "Bengaluru", Price: 250_000_000},
		{ID: "p4", Name: "Marina Bay Lofts", Type: "Apartment", Country: "UAE", State: "Dubai", City: "Dubai", Price: 120_000_000},
	}
}

func ids(props []domain.Property) []string {
	out := make([]string, len(props))
	for i, p := range props {
		out[i] = p.ID
	}
	return out
}

func TestApplyConjunction(t *testing.T) {
	props := fixtureProperties()

	f := services.NewFilterState()
	f.SetCountry("India")
	f.SetType("Apartment")

	got := services.Apply(props, f)
	if len(got) != 1 || got[0].ID != "p1" {
		t.Fatalf("want [p1], got %v", ids(got))
	}
}

func TestApplyOrderIndependent(t *testing.T) {
	props := fixtureProperties()

	// Same selections reached through different setter orders must agree.
	a := services.NewFilterState()
	a.SetCountry("India")
	a.SetState("Maharashtra")
	a.SetType("Villa")

	b := services.NewFilterState()
	b.SetType("Villa")
	b.SetCountry("India")
	b.SetState("Maharashtra")

	ra, rb := services.Apply(props, a), services.Apply(props, b)
	if len(ra) != len(rb) {
		t.Fatalf("order changed result: %v vs %v", ids(ra), ids(rb))
	}
	for i := range ra {
		if ra[i].ID != rb[i].ID {
			t.Fatalf("order changed result: %v vs %v", ids(ra), ids(rb))
		}
	}
	if len(ra) != 1 || ra[0].ID != "p2" {
		t.Fatalf("want [p2], got %v", ids(ra))
	}
}

func TestApplyDoesNotMutateInput(t *testing.T) {
	props := fixtureProperties()
	f := services.NewFilterState()
	f.SetCity("Pune")
	services.Apply(props, f)
	if len(props) != 4 || props[0].ID != "p1" {
		t.Fatal("input slice mutated")
	}
}

func TestCascadeResets(t *testing.T) {
	f := services.NewFilterState()
	f.SetCountry("India")
	f.SetState("Maharashtra")
	f.SetCity("Mumbai")

	f.SetState("Karnataka")
	if f.City != services.All {
		t.Fatalf("changing state must reset city, got %q", f.City)
	}

	f.SetCity("Bengaluru")
	f.SetCountry("UAE")
	if f.State != services.All || f.City != services.All {
		t.Fatalf("changing country must reset state and city, got %q/%q", f.State, f.City)
	}

	// City changes never cascade upward.
	f.SetCountry("India")
	f.SetState("Maharashtra")
	f.SetCity("Pune")
	if f.Country != "India" || f.State != "Maharashtra" {
		t.Fatal("city change cascaded upward")
	}
}

func TestPriceBuckets(t *testing.T) {
	props := fixtureProperties()

	f := services.NewFilterState()
	f.SetPriceBucket(1) // under 5 Cr
	got := services.Apply(props, f)
	if len(got) != 1 || got[0].ID != "p1" {
		t.Fatalf("under 5cr: want [p1], got %v", ids(got))
	}

	f.SetPriceBucket(2) // 5-10 Cr, lower bound inclusive, upper exclusive
	got = services.Apply(props, f)
	if len(got) != 1 || got[0].ID != "p2" {
		t.Fatalf("5-10cr: want [p2], got %v", ids(got))
	}

	f.SetPriceBucket(4) // above 20 Cr, unbounded
	got = services.Apply(props, f)
	if len(got) != 1 || got[0].ID != "p3" {
		t.Fatalf("above 20cr: want [p3], got %v", ids(got))
	}

	f.SetPriceBucket(0) // All
	if got = services.Apply(props, f); len(got) != 4 {
		t.Fatalf("All bucket: want 4, got %v", ids(got))
	}

	f.SetPriceBucket(99) // out of range falls back to All
	if got = services.Apply(props, f); len(got) != 4 {
		t.Fatalf("out-of-range bucket: want 4, got %v", ids(got))
	}
}

func TestSearchMatchesAcrossFields(t *testing.T) {
	props := fixtureProperties()
	f := services.NewFilterState()
	f.Search = "marina"
	got := services.Apply(props, f)
	if len(got) != 1 || got[0].ID != "p4" {
		t.Fatalf("want [p4], got %v", ids(got))
	}

	f.Search = "BENGALURU"
	got = services.Apply(props, f)
	if len(got) != 1 || got[0].ID != "p3" {
		t.Fatalf("case-insensitive city search: want [p3], got %v", ids(got))
	}
}

func TestDeriveOptionsFromData(t *testing.T) {
	props := fixtureProperties()

	f := services.NewFilterState()
	opts := services.DeriveOptions(props, f)
	if len(opts.Countries) != 2 || opts.Countries[0] != "India" || opts.Countries[1] != "UAE" {
		t.Fatalf("countries: got %v", opts.Countries)
	}

	f.SetCountry("India")
	opts = services.DeriveOptions(props, f)
	if len(opts.States) != 2 {
		t.Fatalf("states for India: got %v", opts.States)
	}
	for _, s := range opts.States {
		if s == "Dubai" {
			t.Fatal("state from another country leaked in")
		}
	}

	f.SetState("Maharashtra")
	opts = services.DeriveOptions(props, f)
	if len(opts.Cities) != 2 || opts.Cities[0] != "Mumbai" || opts.Cities[1] != "Pune" {
		t.Fatalf("cities for Maharashtra: got %v", opts.Cities)
	}
}

func TestFeatured(t *testing.T) {
	props := fixtureProperties()
	props[1].IsFeatured = true
	props[3].IsFeatured = true
	got := services.Featured(props)
	if len(got) != 2 || got[0].ID != "p2" || got[1].ID != "p4" {
		t.Fatalf("got %v", ids(got))
	}
}
