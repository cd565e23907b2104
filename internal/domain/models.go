package domain

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strconv"
)

// Property categories and types are fixed enums; anything else is rejected
// at the validation layer.
const (
	CategoryResidential = "Residential"
	CategoryCommercial  = "Commercial"
	CategoryPlot        = "Plot"
)

const (
	TypeApartment  = "Apartment"
	TypeVilla      = "Villa"
	TypePlot       = "Plot"
	TypeCommercial = "Commercial"
)

// PriceOnRequestLabel is the literal shown instead of a formatted price.
const PriceOnRequestLabel = "Price on Request"

type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// IsSet reports whether coordinates were ever provided; (0,0) means unset.
func (c Coordinates) IsSet() bool { return c.Lat != 0 || c.Lng != 0 }

type Features struct {
	Area   float64 `json:"area"`
	Facing string  `json:"facing,omitempty"`
}

type FAQ struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

type FAQList []FAQ

type StringList []string

// Scan/Value implementations let sqlx read and write the JSON-typed columns.
// A NULL column always maps to the empty shape, never to a nil exposed as
// null downstream.

func (c *Coordinates) Scan(src any) error {
	if src == nil {
		*c = Coordinates{}
		return nil
	}
	return scanJSON(src, c)
}

func (c Coordinates) Value() (driver.Value, error) { return jsonValue(c) }

func (f *Features) Scan(src any) error {
	if src == nil {
		*f = Features{}
		return nil
	}
	return scanJSON(src, f)
}

func (f Features) Value() (driver.Value, error) { return jsonValue(f) }

func (l *FAQList) Scan(src any) error {
	*l = FAQList{}
	if src == nil {
		return nil
	}
	return scanJSON(src, l)
}

func (l FAQList) Value() (driver.Value, error) {
	if l == nil {
		l = FAQList{}
	}
	return jsonValue(l)
}

func (l *StringList) Scan(src any) error {
	*l = StringList{}
	if src == nil {
		return nil
	}
	return scanJSON(src, l)
}

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		l = StringList{}
	}
	return jsonValue(l)
}

func scanJSON(src, dst any) error {
	switch v := src.(type) {
	case []byte:
		if len(v) == 0 {
			return nil
		}
		return json.Unmarshal(v, dst)
	case string:
		if v == "" {
			return nil
		}
		return json.Unmarshal([]byte(v), dst)
	default:
		return fmt.Errorf("cannot scan %T into JSON column", src)
	}
}

func jsonValue(v any) (driver.Value, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

type Property struct {
	ID   string `db:"id"`
	Slug string `db:"slug"`
	Name string `db:"name"`

	Category string `db:"category"` // Residential | Commercial | Plot
	Type     string `db:"type"`     // Apartment | Villa | Plot | Commercial

	Location    string      `db:"location"`
	Address     string      `db:"address"`
	Country     string      `db:"country"`
	State       string      `db:"state"`
	City        string      `db:"city"`
	Coordinates Coordinates `db:"coordinates"`

	Price          int64 `db:"price"`
	PriceOnRequest bool  `db:"price_on_request"`

	ShortDescription string `db:"short_description"`
	FullDescription  string `db:"full_description"` // sanitized HTML

	Images      StringList `db:"images"` // ordered; first entry is the hero image
	BrochureURL string     `db:"brochure_url"`

	ProjectUnits     string   `db:"project_units"`
	ProjectArea      string   `db:"project_area"`
	SizeRange        string   `db:"size_range"`
	ProjectSize      string   `db:"project_size"`
	LaunchDate       string   `db:"launch_date"`
	PossessionDate   string   `db:"possession_date"`
	PossessionStatus string   `db:"possession_status"`
	AvgPrice         string   `db:"avg_price"`
	Configuration    string   `db:"configuration"`
	ReraID           string   `db:"rera_id"`
	AreaName         string   `db:"area_name"`
	MapURL           string   `db:"map_url"`
	Features         Features `db:"features"`

	Amenities StringList `db:"amenities"`
	FAQs      FAQList    `db:"faqs"`

	MetaTitle       string `db:"meta_title"`
	MetaDescription string `db:"meta_description"`
	Keywords        string `db:"keywords"`

	IsFeatured bool   `db:"is_featured"`
	CreatedAt  string `db:"created_at"`
	UpdatedAt  string `db:"updated_at"`
}

// PriceLabel is the display string for the price: the literal
// "Price on Request" when the flag is set, otherwise the formatted amount.
func (p Property) PriceLabel() string {
	if p.PriceOnRequest {
		return PriceOnRequestLabel
	}
	return FormatPrice(p.Price)
}

// HeroImage returns the first image, or "" when no images are present.
func (p Property) HeroImage() string {
	if len(p.Images) == 0 {
		return ""
	}
	return p.Images[0]
}

// FormatPrice renders an amount with Indian digit grouping and the rupee
// symbol, e.g. 15000000 -> "₹ 1,50,00,000".
func FormatPrice(amount int64) string {
	neg := amount < 0
	if neg {
		amount = -amount
	}
	s := strconv.FormatInt(amount, 10)
	// Indian grouping: last three digits, then pairs.
	if len(s) > 3 {
		head, tail := s[:len(s)-3], s[len(s)-3:]
		for len(head) > 2 {
			tail = head[len(head)-2:] + "," + tail
			head = head[:len(head)-2]
		}
		s = head + "," + tail
	}
	if neg {
		s = "-" + s
	}
	return "₹ " + s
}

type Blog struct {
	ID          string `db:"id"`
	Slug        string `db:"slug"`
	Title       string `db:"title"`
	CategoryID  string `db:"category_id"`
	Category    string `db:"category"` // joined categories.name, "Uncategorized" fallback
	Excerpt     string `db:"excerpt"`
	Content     string `db:"content"` // canonical sanitized HTML
	Image       string `db:"image"`
	Author      string `db:"author"`
	PublishDate string `db:"publish_date"` // raw yyyy-mm-dd as authored, may be empty
	Date        string `db:"date"`         // display string, derived once at fetch

	MetaTitle       string `db:"meta_title"`
	MetaDescription string `db:"meta_description"`
	Keywords        string `db:"keywords"`

	FAQs FAQList `db:"faqs"`

	CreatedAt string `db:"created_at"`
	UpdatedAt string `db:"updated_at"`
}

type Category struct {
	ID        string `db:"id"`
	Name      string `db:"name"`
	Slug      string `db:"slug"`
	CreatedAt string `db:"created_at"`
}

type PageMeta struct {
	PagePath        string `db:"page_path"`
	PageName        string `db:"page_name"`
	MetaTitle       string `db:"meta_title"`
	MetaDescription string `db:"meta_description"`
	Keywords        string `db:"keywords"`
	UpdatedAt       string `db:"updated_at"`
}

// Meta is resolved page-level SEO metadata. The zero value means "no source
// had anything"; callers apply their own literal defaults.
type Meta struct {
	Title       string
	Description string
	Keywords    string
}

func (m Meta) IsEmpty() bool { return m.Title == "" && m.Description == "" && m.Keywords == "" }
