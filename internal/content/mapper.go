// Package content converts raw backend records into the page-level entities
// the rendering layer consumes. There is exactly one mapper per direction;
// every route shares it.
package content

import (
	"luxhaven/internal/content/cms"
	"luxhaven/internal/domain"
)

// MapProperty converts a CMS property document into a fully-populated
// entity. Missing numerics map to 0, missing booleans to false, missing rich
// text to ""; no required field is ever left unset.
func MapProperty(doc *cms.Document) domain.Property {
	images := domain.StringList{}
	if main := doc.ImageURL("main_image"); main != "" {
		images = append(images, main)
	}
	images = append(images, doc.GalleryURLs("gallery")...)

	amenities := domain.StringList(doc.GroupTexts("amenities", "name"))
	if amenities == nil {
		amenities = domain.StringList{}
	}

	faqs := domain.FAQList{}
	for _, p := range doc.Pairs("faqs") {
		faqs = append(faqs, domain.FAQ{Question: p.Question, Answer: p.Answer})
	}

	return domain.Property{
		ID:               doc.ID,
		Slug:             doc.UID,
		Name:             doc.Text("name"),
		Category:         doc.Text("category"),
		Type:             doc.Text("type"),
		Location:         doc.Text("location"),
		Address:          doc.Text("address"),
		Country:          doc.Text("country"),
		State:            doc.Text("state"),
		City:             doc.Text("city"),
		Coordinates:      domain.Coordinates{Lat: doc.Number("latitude"), Lng: doc.Number("longitude")},
		Price:            int64(doc.Number("price")),
		PriceOnRequest:   doc.Bool("price_on_request"),
		ShortDescription: doc.Text("short_description"),
		FullDescription:  NormalizeRichText(doc.RichTextHTML("full_description")),
		Images:           images,
		BrochureURL:      doc.Text("brochure_url"),
		ProjectUnits:     doc.Text("project_units"),
		ProjectArea:      doc.Text("project_area"),
		SizeRange:        doc.Text("size_range"),
		ProjectSize:      doc.Text("project_size"),
		LaunchDate:       doc.Text("launch_date"),
		PossessionDate:   doc.Text("possession_date"),
		PossessionStatus: doc.Text("possession_status"),
		AvgPrice:         doc.Text("avg_price"),
		Configuration:    doc.Text("configuration"),
		ReraID:           doc.Text("rera_id"),
		AreaName:         doc.Text("area_name"),
		MapURL:           doc.Text("map_url"),
		Features: domain.Features{
			Area:   doc.Number("area_sqft"),
			Facing: doc.Text("facing"),
		},
		Amenities:       amenities,
		FAQs:            faqs,
		MetaTitle:       doc.Text("meta_title"),
		MetaDescription: doc.Text("meta_description"),
		Keywords:        doc.Text("keywords"),
		IsFeatured:      doc.Bool("is_featured"),
		CreatedAt:       doc.FirstPublicationDate,
		UpdatedAt:       doc.LastPublicationDate,
	}
}

// MapBlog converts a CMS blog_post document into a Blog entity. Content is
// normalized to sanitized HTML; the display date is derived once here.
func MapBlog(doc *cms.Document) domain.Blog {
	faqs := domain.FAQList{}
	for _, p := range doc.Pairs("faqs") {
		faqs = append(faqs, domain.FAQ{Question: p.Question, Answer: p.Answer})
	}

	category := doc.Text("category")
	if category == "" {
		category = "Uncategorized"
	}

	return domain.Blog{
		ID:              doc.ID,
		Slug:            doc.UID,
		Title:           doc.Text("title"),
		Category:        category,
		Excerpt:         doc.Text("excerpt"),
		Content:         NormalizeRichText(doc.RichTextHTML("content")),
		Image:           doc.ImageURL("image"),
		Author:          doc.Text("author"),
		PublishDate:     doc.Text("publish_date"),
		Date:            domain.DeriveDisplayDate(doc.Text("publish_date"), doc.FirstPublicationDate),
		MetaTitle:       doc.Text("meta_title"),
		MetaDescription: doc.Text("meta_description"),
		Keywords:        doc.Text("keywords"),
		FAQs:            faqs,
		CreatedAt:       doc.FirstPublicationDate,
		UpdatedAt:       doc.LastPublicationDate,
	}
}

// MapPageMeta extracts the SEO triple from a CMS page document.
func MapPageMeta(doc *cms.Document) domain.Meta {
	return domain.Meta{
		Title:       doc.Text("meta_title"),
		Description: doc.Text("meta_description"),
		Keywords:    doc.Text("keywords"),
	}
}
