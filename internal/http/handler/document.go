package handler

import (
	"github.com/gofiber/fiber/v2"

	"sigtransportes/internal/http/middleware"
	"sigtransportes/internal/model"
	"sigtransportes/internal/service"
)

// documentsViewData assembles everything the documentos template needs:
// the full listing, a download URL per file, the fixed select options and
// an optional banner.
func documentsViewData(c *fiber.Ctx, docs service.DocumentService, banner fiber.Map) (fiber.Map, error) {
	sess, _ := middleware.SessionFromCtx(c)

	items, err := docs.List(c.UserContext())
	if err != nil {
		return nil, err
	}

	urls := make(map[string]string, len(items))
	for _, d := range items {
		// A failed presign leaves the plain path; the view degrades to text.
		if u, err := docs.FileURL(c.UserContext(), d.FileRef); err == nil {
			urls[d.FileRef] = u
		}
	}

	data := fiber.Map{
		"Session":   sess,
		"Documents": items,
		"FileURLs":  urls,
		"Areas":     model.Areas(),
		"Types":     model.DocumentTypes(),
	}
	for k, v := range banner {
		data[k] = v
	}
	return data, nil
}

// DocumentsPage lists the cataloged documents and the create form.
func DocumentsPage(docs service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		data, err := documentsViewData(c, docs, nil)
		if err != nil {
			return renderError(c, fiber.StatusInternalServerError, "No se pudieron cargar los documentos")
		}
		return c.Render("documentos", data)
	}
}

// CreateDocument handles the create form: both a file and a title are
// required; the file bytes go to the blob store under the original filename
// and the catalog row references the stored path.
func CreateDocument(docs service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		title := c.FormValue("titulo")
		area := c.FormValue("area")
		tipo := c.FormValue("tipo")

		fh, fileErr := c.FormFile("archivo")
		if title == "" || fileErr != nil {
			data, err := documentsViewData(c, docs, fiber.Map{
				"Error": "Debe subir un archivo y poner título",
			})
			if err != nil {
				return renderError(c, fiber.StatusInternalServerError, "No se pudieron cargar los documentos")
			}
			return c.Status(fiber.StatusBadRequest).Render("documentos", data)
		}

		f, err := fh.Open()
		if err != nil {
			data, derr := documentsViewData(c, docs, fiber.Map{
				"Error": "No se pudo leer el archivo subido",
			})
			if derr != nil {
				return renderError(c, fiber.StatusInternalServerError, "No se pudieron cargar los documentos")
			}
			return c.Status(fiber.StatusBadRequest).Render("documentos", data)
		}
		defer f.Close()

		if _, err := docs.Add(c.UserContext(), title, area, tipo, f, fh.Filename, fh.Size); err != nil {
			switch err {
			case service.ErrInvalidArea, service.ErrInvalidType:
				data, derr := documentsViewData(c, docs, fiber.Map{
					"Error": "Área o tipo de documento inválido",
				})
				if derr != nil {
					return renderError(c, fiber.StatusInternalServerError, "No se pudieron cargar los documentos")
				}
				return c.Status(fiber.StatusBadRequest).Render("documentos", data)
			}
			return renderError(c, fiber.StatusInternalServerError, "No se pudo agregar el documento")
		}

		data, err := documentsViewData(c, docs, fiber.Map{"Success": "Documento agregado"})
		if err != nil {
			return renderError(c, fiber.StatusInternalServerError, "No se pudieron cargar los documentos")
		}
		return c.Render("documentos", data)
	}
}
