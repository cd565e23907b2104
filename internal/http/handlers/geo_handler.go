package handlers

import (
	"strconv"

	"luxhaven/internal/geo"
	applog "luxhaven/internal/log"

	"github.com/gofiber/fiber/v2"
)

// GeoHandler exposes reverse geocoding to the property detail page. A
// failed lookup answers with ok=false so the page keeps the raw address.
type GeoHandler struct {
	Geo *geo.Client
}

func (h *GeoHandler) Reverse(c *fiber.Ctx) error {
	lat, errLat := strconv.ParseFloat(c.Query("lat"), 64)
	lng, errLng := strconv.ParseFloat(c.Query("lng"), 64)
	if errLat != nil || errLng != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"ok": false, "error": "invalid coordinates"})
	}

	locality, err := h.Geo.Reverse(c.Context(), lat, lng)
	if err != nil {
		applog.Error(c, "geo.reverse.fail", err, map[string]any{"lat": lat, "lng": lng})
		return c.JSON(fiber.Map{"ok": false})
	}
	return c.JSON(fiber.Map{"ok": true, "locality": locality})
}
