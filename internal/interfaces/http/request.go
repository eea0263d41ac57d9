package http

import (
	"encoding/json"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/turismo-api/internal/application/dto"
	"github.com/jhoicas/turismo-api/internal/application/ports"
)

// parseBody decodifica el cuerpo de la petición en out. Las rutas con imagen
// aceptan multipart/form-data con el JSON en el campo "data" y el archivo en
// "image"; el resto usa JSON plano.
func parseBody(c *fiber.Ctx, out any) error {
	if strings.HasPrefix(c.Get(fiber.HeaderContentType), fiber.MIMEMultipartForm) {
		data := c.FormValue("data")
		if data == "" {
			return fiber.NewError(fiber.StatusBadRequest, "campo data requerido en multipart")
		}
		return json.Unmarshal([]byte(data), out)
	}
	return c.BodyParser(out)
}

// imageUpload extrae el archivo "image" de una petición multipart.
// Devuelve nil (sin error) cuando la petición no trae imagen.
func imageUpload(c *fiber.Ctx) (*ports.Upload, error) {
	fh, err := c.FormFile("image")
	if err != nil {
		return nil, nil
	}
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	// Fiber cierra el multipart form al terminar el handler; no hace falta
	// cerrar f aparte.
	return &ports.Upload{Reader: f, Filename: fh.Filename}, nil
}

// pageFromQuery lee limit y offset del query string con defaults del listado.
func pageFromQuery(c *fiber.Ctx) dto.PageRequest {
	p := dto.PageRequest{
		Limit:  c.QueryInt("limit", 20),
		Offset: c.QueryInt("offset", 0),
	}
	p.DefaultPage()
	return p
}
