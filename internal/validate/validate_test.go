package validate

import "testing"

func TestSlugify(t *testing.T) {
	cases := []struct{ in, want string }{
		{"Skyline Residences", "skyline-residences"},
		{"  The Palm -- Court!  ", "the-palm-court"},
		{"Crest (Phase 2)", "crest-phase-2"},
		{"ALLCAPS", "allcaps"},
		{"---", ""},
	}
	for _, c := range cases {
		if got := Slugify(c.in); got != c.want {
			t.Errorf("Slugify(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestEmail(t *testing.T) {
	if _, ok := Email("a@b.co"); !ok {
		t.Error("valid email rejected")
	}
	for _, bad := range []string{"", "no-at", "a@b", "a @b.co"} {
		if _, ok := Email(bad); ok {
			t.Errorf("accepted %q", bad)
		}
	}
}

func TestPrice(t *testing.T) {
	if n, ok := Price(""); !ok || n != 0 {
		t.Errorf("empty price: got (%d,%v), want (0,true)", n, ok)
	}
	if n, ok := Price("15000000"); !ok || n != 15000000 {
		t.Errorf("got (%d,%v)", n, ok)
	}
	if _, ok := Price("-5"); ok {
		t.Error("negative price accepted")
	}
	if _, ok := Price("1.5e6"); ok {
		t.Error("non-integer price accepted")
	}
}

func TestCategoryAndType(t *testing.T) {
	for _, good := range []string{"Residential", "Commercial", "Plot"} {
		if _, ok := Category(good); !ok {
			t.Errorf("rejected category %q", good)
		}
	}
	if _, ok := Category("residential"); ok {
		t.Error("case-insensitive category accepted")
	}
	for _, good := range []string{"Apartment", "Villa", "Plot", "Commercial"} {
		if _, ok := PropertyType(good); !ok {
			t.Errorf("rejected type %q", good)
		}
	}
	if _, ok := PropertyType("Penthouse"); ok {
		t.Error("unknown type accepted")
	}
}

func TestPassword(t *testing.T) {
	if !Password("Passw0rd!") {
		t.Error("valid password rejected")
	}
	for _, bad := range []string{"short1!", "alllowercase1!", "NoDigits!!", "NoSymbols11a"} {
		if Password(bad) {
			t.Errorf("accepted %q", bad)
		}
	}
}
