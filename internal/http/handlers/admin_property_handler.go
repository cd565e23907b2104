package handlers

import (
	"database/sql"
	"errors"
	"io"
	"strconv"
	"strings"

	"luxhaven/internal/domain"
	applog "luxhaven/internal/log"
	"luxhaven/internal/repos"
	"luxhaven/internal/services"
	"luxhaven/internal/storage"
	"luxhaven/internal/validate"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// AdminPropertyHandler is the property CRUD screen: full-table list, create
// and edit forms, explicit-confirm delete, and the upload endpoints.
type AdminPropertyHandler struct {
	Props   *repos.PropertyRepo
	Uploads *services.UploadService
}

// List fetches the entire table and filters the already-fetched slice by
// substring on name, location and category. No pagination.
func (h *AdminPropertyHandler) List(c *fiber.Ctx) error {
	props, err := h.Props.List()
	if err != nil {
		applog.Error(c, "admin.properties.list.fail", err, nil)
		return render(c.Status(500), "notfound", fiber.Map{"Message": "Could not load properties"})
	}

	q := strings.ToLower(strings.TrimSpace(c.Query("q")))
	if q != "" {
		filtered := props[:0:0]
		for _, p := range props {
			hay := strings.ToLower(p.Name + "\n" + p.Location + "\n" + p.Category)
			if strings.Contains(hay, q) {
				filtered = append(filtered, p)
			}
		}
		props = filtered
	}

	return render(c, "admin_properties", fiber.Map{
		"Properties": props,
		"Q":          c.Query("q"),
		"Flash":      c.Query("flash"),
	})
}

// NewForm opens the create dialog with empty defaults.
func (h *AdminPropertyHandler) NewForm(c *fiber.Ctx) error {
	return render(c, "admin_property_form", fiber.Map{
		"P":      domain.Property{Category: domain.CategoryResidential, Type: domain.TypeApartment},
		"IsEdit": false, "FieldErr": fiber.Map{},
	})
}

// EditForm is the deep-link target: the URL itself is the open-dialog
// state, so landing here pre-fills the form once per navigation.
func (h *AdminPropertyHandler) EditForm(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return render(c.Status(404), "notfound", fiber.Map{"Message": "Property not found"})
	}
	p, err := h.Props.Get(id)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			applog.Error(c, "admin.properties.edit.load.fail", err, map[string]any{"id": id})
		}
		return render(c.Status(404), "notfound", fiber.Map{"Message": "Property not found"})
	}
	return render(c, "admin_property_form", fiber.Map{"P": p, "IsEdit": true, "FieldErr": fiber.Map{}})
}

// Create inserts a new row. On failure the form re-renders with the
// entered values intact so nothing has to be retyped.
func (h *AdminPropertyHandler) Create(c *fiber.Ctx) error {
	p, fieldErr := propertyFromForm(c)
	if fieldErr != nil {
		return render(c.Status(400), "admin_property_form", fiber.Map{
			"P": p, "IsEdit": false, "FieldErr": fieldErr,
		})
	}
	p.ID = uuid.NewString()
	p.Slug = validate.Slugify(p.Name)

	if err := h.Props.Insert(p); err != nil {
		applog.Error(c, "admin.properties.create.fail", err, map[string]any{"name": p.Name})
		return render(c.Status(400), "admin_property_form", fiber.Map{
			"P": p, "IsEdit": false, "FieldErr": fiber.Map{}, "Err": "Could not save the property. Please try again.",
		})
	}
	applog.Audit(c, "admin.properties.create", map[string]any{"id": p.ID, "slug": p.Slug})
	return c.Redirect("/admin/properties?flash=created")
}

// Update edits by id; identical to Create except for the write verb.
func (h *AdminPropertyHandler) Update(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return render(c.Status(404), "notfound", fiber.Map{"Message": "Property not found"})
	}
	p, fieldErr := propertyFromForm(c)
	p.ID = id
	if fieldErr != nil {
		return render(c.Status(400), "admin_property_form", fiber.Map{
			"P": p, "IsEdit": true, "FieldErr": fieldErr,
		})
	}
	p.Slug = validate.Slugify(p.Name)

	if err := h.Props.Update(p); err != nil {
		applog.Error(c, "admin.properties.update.fail", err, map[string]any{"id": id})
		return render(c.Status(400), "admin_property_form", fiber.Map{
			"P": p, "IsEdit": true, "FieldErr": fiber.Map{}, "Err": "Could not save the property. Please try again.",
		})
	}
	applog.Audit(c, "admin.properties.update", map[string]any{"id": id, "slug": p.Slug})
	return c.Redirect("/admin/properties?flash=updated")
}

// Delete requires the explicit confirm field; there is no undo.
func (h *AdminPropertyHandler) Delete(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(400).SendString("missing id")
	}
	if c.FormValue("confirm") != "yes" {
		return c.Status(400).SendString("delete not confirmed")
	}
	if err := h.Props.Delete(id); err != nil {
		applog.Error(c, "admin.properties.delete.fail", err, map[string]any{"id": id})
		return c.Redirect("/admin/properties?flash=delete_failed")
	}
	applog.Audit(c, "admin.properties.delete", map[string]any{"id": id})
	return c.Redirect("/admin/properties?flash=deleted")
}

// UploadImages handles the multipart image batch. A name must be entered
// first: the destination path is derived from its slug.
func (h *AdminPropertyHandler) UploadImages(c *fiber.Ctx) error {
	slug := validate.Slugify(c.FormValue("name"))
	if slug == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Enter a property name before uploading images"})
	}
	form, err := c.MultipartForm()
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid upload"})
	}
	files := form.File["images"]
	if len(files) == 0 {
		return c.Status(400).JSON(fiber.Map{"error": "no files selected"})
	}

	batch := make([]services.ImageFile, 0, len(files))
	for _, fh := range files {
		f, err := fh.Open()
		if err != nil {
			batch = append(batch, services.ImageFile{Name: fh.Filename}) // decode will fail, counted as failure
			continue
		}
		data := make([]byte, fh.Size)
		_, rerr := io.ReadFull(f, data)
		f.Close()
		if rerr != nil {
			batch = append(batch, services.ImageFile{Name: fh.Filename})
			continue
		}
		batch = append(batch, services.ImageFile{Name: fh.Filename, Data: data})
	}

	res := h.Uploads.UploadImages(storage.BucketProperties, slug, batch)
	applog.Info(c, "admin.properties.upload", map[string]any{"uploaded": res.Uploaded, "failed": res.Failed})
	return c.JSON(fiber.Map{"urls": res.URLs, "uploaded": res.Uploaded, "failed": res.Failed, "message": res.Message()})
}

// UploadBrochure accepts a single PDF, hard-capped at 5MB.
func (h *AdminPropertyHandler) UploadBrochure(c *fiber.Ctx) error {
	slug := validate.Slugify(c.FormValue("name"))
	if slug == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Enter a property name before uploading a brochure"})
	}
	fh, err := c.FormFile("brochure")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "no file selected"})
	}
	if fh.Size > services.BrochureMaxBytes {
		return c.Status(400).JSON(fiber.Map{"error": "Brochure must be 5MB or smaller"})
	}
	if ct := fh.Header.Get("Content-Type"); ct != "application/pdf" {
		return c.Status(400).JSON(fiber.Map{"error": "Brochure must be a PDF"})
	}
	f, err := fh.Open()
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "could not read file"})
	}
	defer f.Close()
	data := make([]byte, fh.Size)
	if _, err := io.ReadFull(f, data); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "could not read file"})
	}

	url, err := h.Uploads.UploadBrochure(slug, data)
	if err != nil {
		applog.Error(c, "admin.properties.brochure.fail", err, map[string]any{"slug": slug})
		return c.Status(500).JSON(fiber.Map{"error": "upload failed"})
	}
	applog.Info(c, "admin.properties.brochure", map[string]any{"slug": slug})
	return c.JSON(fiber.Map{"url": url})
}

// propertyFromForm binds and validates the dialog fields. The ordered image
// list arrives as one value per line, already permuted by the client-side
// reordering; it is persisted exactly as submitted.
func propertyFromForm(c *fiber.Ctx) (domain.Property, fiber.Map) {
	p := domain.Property{
		Name:             strings.TrimSpace(c.FormValue("name")),
		Category:         c.FormValue("category"),
		Type:             c.FormValue("type"),
		Location:         strings.TrimSpace(c.FormValue("location")),
		Address:          strings.TrimSpace(c.FormValue("address")),
		Country:          strings.TrimSpace(c.FormValue("country")),
		State:            strings.TrimSpace(c.FormValue("state")),
		City:             strings.TrimSpace(c.FormValue("city")),
		PriceOnRequest:   c.FormValue("price_on_request") == "on",
		ShortDescription: strings.TrimSpace(c.FormValue("short_description")),
		FullDescription:  c.FormValue("full_description"),
		Images:           splitLines(c.FormValue("images")),
		BrochureURL:      strings.TrimSpace(c.FormValue("brochure_url")),
		ProjectUnits:     strings.TrimSpace(c.FormValue("project_units")),
		ProjectArea:      strings.TrimSpace(c.FormValue("project_area")),
		SizeRange:        strings.TrimSpace(c.FormValue("size_range")),
		ProjectSize:      strings.TrimSpace(c.FormValue("project_size")),
		LaunchDate:       strings.TrimSpace(c.FormValue("launch_date")),
		PossessionDate:   strings.TrimSpace(c.FormValue("possession_date")),
		PossessionStatus: strings.TrimSpace(c.FormValue("possession_status")),
		AvgPrice:         strings.TrimSpace(c.FormValue("avg_price")),
		Configuration:    strings.TrimSpace(c.FormValue("configuration")),
		ReraID:           strings.TrimSpace(c.FormValue("rera_id")),
		AreaName:         strings.TrimSpace(c.FormValue("area_name")),
		MapURL:           strings.TrimSpace(c.FormValue("map_url")),
		Amenities:        splitLines(c.FormValue("amenities")),
		MetaTitle:        strings.TrimSpace(c.FormValue("meta_title")),
		MetaDescription:  strings.TrimSpace(c.FormValue("meta_description")),
		Keywords:         strings.TrimSpace(c.FormValue("keywords")),
		IsFeatured:       c.FormValue("is_featured") == "on",
	}

	if _, ok := validate.Name(p.Name); !ok {
		return p, fiber.Map{"Name": "Name is required"}
	}
	if _, ok := validate.Category(p.Category); !ok {
		return p, fiber.Map{"Category": "Choose a valid category"}
	}
	if _, ok := validate.PropertyType(p.Type); !ok {
		return p, fiber.Map{"Type": "Choose a valid type"}
	}
	price, ok := validate.Price(c.FormValue("price"))
	if !ok {
		return p, fiber.Map{"Price": "Price must be a non-negative number"}
	}
	p.Price = price

	if lat, err := strconv.ParseFloat(c.FormValue("lat"), 64); err == nil {
		p.Coordinates.Lat = lat
	}
	if lng, err := strconv.ParseFloat(c.FormValue("lng"), 64); err == nil {
		p.Coordinates.Lng = lng
	}
	if area, err := strconv.ParseFloat(c.FormValue("area_sqft"), 64); err == nil {
		p.Features.Area = area
	}
	p.Features.Facing = strings.TrimSpace(c.FormValue("facing"))
	p.FAQs = faqsFromForm(c)

	return p, nil
}

// faqsFromForm zips the parallel question/answer fields, skipping pairs
// with an empty question.
func faqsFromForm(c *fiber.Ctx) domain.FAQList {
	out := domain.FAQList{}
	questions := formValues(c, "faq_question")
	answers := formValues(c, "faq_answer")
	for i, q := range questions {
		q = strings.TrimSpace(q)
		if q == "" {
			continue
		}
		a := ""
		if i < len(answers) {
			a = strings.TrimSpace(answers[i])
		}
		out = append(out, domain.FAQ{Question: q, Answer: a})
	}
	return out
}

func formValues(c *fiber.Ctx, key string) []string {
	if form, err := c.MultipartForm(); err == nil {
		if vs, ok := form.Value[key]; ok {
			return vs
		}
	}
	var vs []string
	c.Request().PostArgs().VisitAll(func(k, v []byte) {
		if string(k) == key {
			vs = append(vs, string(v))
		}
	})
	return vs
}

func splitLines(s string) domain.StringList {
	out := domain.StringList{}
	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			out = append(out, line)
		}
	}
	return out
}
