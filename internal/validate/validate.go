package validate

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	reEmail    = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)
	reID       = regexp.MustCompile(`^[A-Za-z0-9_-]{1,64}$`)
	reCategory = regexp.MustCompile(`^(Residential|Commercial|Plot)$`)
	reType     = regexp.MustCompile(`^(Apartment|Villa|Plot|Commercial)$`)
	reSlugGap  = regexp.MustCompile(`[^a-z0-9]+`)
)

// Slugify lowercases and hyphenates a display name into a URL-safe slug.
// No uniqueness check happens here; the database unique index decides.
func Slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = reSlugGap.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

func Email(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if len(s) == 0 || len(s) > 100 {
		return "", false
	}
	return s, reEmail.MatchString(s)
}

// ID validates a resource identifier (property/blog/category ids).
func ID(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, s != "" && reID.MatchString(s)
}

// Name validates a displayable name with a reasonable max length.
func Name(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" || len(s) > 120 {
		return "", false
	}
	return s, true
}

// Category validates the fixed property category enum.
func Category(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, s != "" && reCategory.MatchString(s)
}

// PropertyType validates the fixed property type enum.
func PropertyType(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, s != "" && reType.MatchString(s)
}

// Price parses a non-negative integer amount; anything unparsable or
// negative is rejected.
func Price(s string) (int64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, true // absent price defaults to 0
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}

// Message validates a free-text message body.
func Message(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" || len(s) > 4000 {
		return "", false
	}
	return s, true
}

// Password enforces a length window plus character-class mix for logins.
func Password(s string) bool {
	l := len(s)
	if l < 8 || l > 64 {
		return false
	}
	var hasLower, hasUpper, hasDigit, hasSymbol bool
	for _, r := range s {
		switch {
		case 'a' <= r && r <= 'z':
			hasLower = true
		case 'A' <= r && r <= 'Z':
			hasUpper = true
		case '0' <= r && r <= '9':
			hasDigit = true
		default:
			hasSymbol = true
		}
	}
	return hasLower && hasUpper && hasDigit && hasSymbol
}
