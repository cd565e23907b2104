package handlers

import (
	applog "luxhaven/internal/log"
	"luxhaven/internal/services"
	"luxhaven/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type ContactHandler struct {
	Contact *services.ContactService
	SEO     *services.SEOService
}

func (h *ContactHandler) Form(c *fiber.Ctx) error {
	meta := defaultMeta(h.SEO.Resolve(c.Context(), "/contact"), "Contact")
	return render(c, "contact", fiber.Map{"Meta": meta, "Form": fiber.Map{}, "FieldErr": fiber.Map{}})
}

// Submit validates field by field; the first failure re-renders the form
// with an inline message and the entered values intact. No relay call is
// issued for an invalid submission.
func (h *ContactHandler) Submit(c *fiber.Ctx) error {
	form := fiber.Map{
		"Name":    c.FormValue("name"),
		"Email":   c.FormValue("email"),
		"Phone":   c.FormValue("phone"),
		"Message": c.FormValue("message"),
	}
	meta := defaultMeta(h.SEO.Resolve(c.Context(), "/contact"), "Contact")

	name, ok := validate.Name(c.FormValue("name"))
	if !ok {
		return render(c.Status(400), "contact", fiber.Map{
			"Meta": meta, "Form": form, "FieldErr": fiber.Map{"Name": "Name is required"},
		})
	}
	email, ok := validate.Email(c.FormValue("email"))
	if !ok {
		return render(c.Status(400), "contact", fiber.Map{
			"Meta": meta, "Form": form, "FieldErr": fiber.Map{"Email": "Enter a valid email address"},
		})
	}
	msg, ok := validate.Message(c.FormValue("message"))
	if !ok {
		return render(c.Status(400), "contact", fiber.Map{
			"Meta": meta, "Form": form, "FieldErr": fiber.Map{"Message": "Message is required"},
		})
	}

	err := h.Contact.Send(c.Context(), services.ContactMessage{
		Name:    name,
		Email:   email,
		Phone:   c.FormValue("phone"),
		Message: msg,
	})
	if err != nil {
		applog.Error(c, "contact.send.fail", err, map[string]any{"email": email})
		return render(c.Status(502), "contact", fiber.Map{
			"Meta": meta, "Form": form, "FieldErr": fiber.Map{}, "Err": "Could not send your message. Please try again.",
		})
	}

	applog.Info(c, "contact.send.success", map[string]any{"email": email})
	return render(c, "contact", fiber.Map{"Meta": meta, "Form": fiber.Map{}, "FieldErr": fiber.Map{}, "Sent": true})
}
