package handlers

import (
	"strings"

	"luxhaven/internal/domain"
	applog "luxhaven/internal/log"
	"luxhaven/internal/repos"

	"github.com/gofiber/fiber/v2"
)

// AdminPageMetaHandler edits the per-route SEO rows that back the second
// tier of the metadata resolver.
type AdminPageMetaHandler struct {
	Pages *repos.PageMetaRepo
}

func (h *AdminPageMetaHandler) List(c *fiber.Ctx) error {
	rows, err := h.Pages.List()
	if err != nil {
		applog.Error(c, "admin.pagemeta.list.fail", err, nil)
		return render(c.Status(500), "notfound", fiber.Map{"Message": "Could not load page metadata"})
	}
	return render(c, "admin_pagemeta", fiber.Map{"Rows": rows, "Flash": c.Query("flash")})
}

func (h *AdminPageMetaHandler) Save(c *fiber.Ctx) error {
	path := strings.TrimSpace(c.FormValue("page_path"))
	name := strings.TrimSpace(c.FormValue("page_name"))
	if path == "" || !strings.HasPrefix(path, "/") || name == "" {
		return c.Status(400).SendString("invalid page path or name")
	}
	m := domain.PageMeta{
		PagePath:        path,
		PageName:        name,
		MetaTitle:       strings.TrimSpace(c.FormValue("meta_title")),
		MetaDescription: strings.TrimSpace(c.FormValue("meta_description")),
		Keywords:        strings.TrimSpace(c.FormValue("keywords")),
	}
	if err := h.Pages.Upsert(m); err != nil {
		applog.Error(c, "admin.pagemeta.save.fail", err, map[string]any{"path": path})
		return c.Redirect("/admin/page-metadata?flash=save_failed")
	}
	applog.Audit(c, "admin.pagemeta.save", map[string]any{"path": path})
	return c.Redirect("/admin/page-metadata?flash=saved")
}
