package domain

import "time"

var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// DeriveDisplayDate picks the first non-empty candidate and formats it for
// display. It runs once at fetch time; entities carry the result as a plain
// string. An unparsable candidate is returned as-is rather than dropped.
func DeriveDisplayDate(candidates ...string) string {
	for _, c := range candidates {
		if c == "" {
			continue
		}
		for _, layout := range dateLayouts {
			if t, err := time.Parse(layout, c); err == nil {
				return t.Format("January 2, 2006")
			}
		}
		return c
	}
	return ""
}
