package cms

import (
	"encoding/json"
	"html"
	"strings"
)

// Typed accessors over Document.Data. Missing or malformed fields return
// zero values so mappers never see partial decode errors.

func (d *Document) Text(field string) string {
	raw, ok := d.Data[field]
	if !ok {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	return ""
}

func (d *Document) Number(field string) float64 {
	raw, ok := d.Data[field]
	if !ok {
		return 0
	}
	var n float64
	if err := json.Unmarshal(raw, &n); err == nil {
		return n
	}
	return 0
}

func (d *Document) Bool(field string) bool {
	raw, ok := d.Data[field]
	if !ok {
		return false
	}
	var b bool
	if err := json.Unmarshal(raw, &b); err == nil {
		return b
	}
	return false
}

type imageField struct {
	URL string `json:"url"`
	Alt string `json:"alt"`
}

// ImageURL returns the url of an image field, "" when the field is empty.
func (d *Document) ImageURL(field string) string {
	raw, ok := d.Data[field]
	if !ok {
		return ""
	}
	var img imageField
	if err := json.Unmarshal(raw, &img); err != nil {
		return ""
	}
	return img.URL
}

// GalleryURLs collects every filled gallery-item image url in authoring
// order. Empty gallery entries are skipped, not placeheld.
func (d *Document) GalleryURLs(field string) []string {
	raw, ok := d.Data[field]
	if !ok {
		return nil
	}
	var items []struct {
		Image imageField `json:"image"`
	}
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil
	}
	var out []string
	for _, it := range items {
		if it.Image.URL != "" {
			out = append(out, it.Image.URL)
		}
	}
	return out
}

// GroupTexts maps a repeatable group field to the flat list of values under
// key, dropping falsy entries.
func (d *Document) GroupTexts(field, key string) []string {
	raw, ok := d.Data[field]
	if !ok {
		return nil
	}
	var items []map[string]json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil
	}
	var out []string
	for _, it := range items {
		var s string
		if err := json.Unmarshal(it[key], &s); err == nil && s != "" {
			out = append(out, s)
		}
	}
	return out
}

// Pair is one question/answer group entry.
type Pair struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

func (d *Document) Pairs(field string) []Pair {
	raw, ok := d.Data[field]
	if !ok {
		return nil
	}
	var out []Pair
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil
	}
	return out
}

type richBlock struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// RichTextHTML renders a structured rich-text field to an HTML string.
// Absent or empty rich text yields "", never an error. The output is still
// sanitized downstream before it reaches a template.
func (d *Document) RichTextHTML(field string) string {
	raw, ok := d.Data[field]
	if !ok {
		return ""
	}
	var blocks []richBlock
	if err := json.Unmarshal(raw, &blocks); err != nil {
		// Some documents carry rich text already flattened to a string.
		var s string
		if err := json.Unmarshal(raw, &s); err == nil {
			return s
		}
		return ""
	}
	var b strings.Builder
	for _, blk := range blocks {
		if strings.TrimSpace(blk.Text) == "" {
			continue
		}
		tag := "p"
		switch blk.Type {
		case "heading1":
			tag = "h1"
		case "heading2":
			tag = "h2"
		case "heading3":
			tag = "h3"
		case "list-item":
			tag = "li"
		}
		b.WriteString("<" + tag + ">")
		b.WriteString(html.EscapeString(blk.Text))
		b.WriteString("</" + tag + ">")
	}
	return b.String()
}
