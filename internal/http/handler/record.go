package handler

import (
	"github.com/gofiber/fiber/v2"

	"sigtransportes/internal/http/middleware"
	"sigtransportes/internal/model"
	"sigtransportes/internal/service"
)

func recordsViewData(c *fiber.Ctx, recs service.RecordService, banner fiber.Map) (fiber.Map, error) {
	sess, _ := middleware.SessionFromCtx(c)

	items, err := recs.List(c.UserContext())
	if err != nil {
		return nil, err
	}

	data := fiber.Map{
		"Session": sess,
		"Records": items,
		"Areas":   model.Areas(),
	}
	for k, v := range banner {
		data[k] = v
	}
	return data, nil
}

// RecordsPage lists the stored records (content rendered as markup) and the
// create form.
func RecordsPage(recs service.RecordService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		data, err := recordsViewData(c, recs, nil)
		if err != nil {
			return renderError(c, fiber.StatusInternalServerError, "No se pudieron cargar los registros")
		}
		return c.Render("registros", data)
	}
}

// CreateRecord handles the create form: title and content are both required.
func CreateRecord(recs service.RecordService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		title := c.FormValue("titulo")
		area := c.FormValue("area")
		content := c.FormValue("contenido")

		if title == "" || content == "" {
			data, err := recordsViewData(c, recs, fiber.Map{
				"Error": "Debe ingresar título y contenido",
			})
			if err != nil {
				return renderError(c, fiber.StatusInternalServerError, "No se pudieron cargar los registros")
			}
			return c.Status(fiber.StatusBadRequest).Render("registros", data)
		}

		if _, err := recs.Add(c.UserContext(), title, area, content); err != nil {
			if err == service.ErrInvalidArea {
				data, derr := recordsViewData(c, recs, fiber.Map{"Error": "Área inválida"})
				if derr != nil {
					return renderError(c, fiber.StatusInternalServerError, "No se pudieron cargar los registros")
				}
				return c.Status(fiber.StatusBadRequest).Render("registros", data)
			}
			return renderError(c, fiber.StatusInternalServerError, "No se pudo agregar el registro")
		}

		data, err := recordsViewData(c, recs, fiber.Map{"Success": "Registro agregado"})
		if err != nil {
			return renderError(c, fiber.StatusInternalServerError, "No se pudieron cargar los registros")
		}
		return c.Render("registros", data)
	}
}
