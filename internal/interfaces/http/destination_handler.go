package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/turismo-api/internal/application/dto"
	"github.com/jhoicas/turismo-api/internal/application/usecase"
)

// DestinationHandler maneja los destinos de la empresa autenticada (protegido).
// Las rutas de creación y actualización aceptan multipart/form-data con el
// JSON en "data" y la imagen en "image".
type DestinationHandler struct {
	uc *usecase.DestinationUseCase
}

// NewDestinationHandler construye el handler.
func NewDestinationHandler(uc *usecase.DestinationUseCase) *DestinationHandler {
	return &DestinationHandler{uc: uc}
}

// Create godoc
// @Summary      Crear destino
// @Tags         destinations
// @Security     Bearer
// @Accept       mpfd
// @Produce      json
// @Success      201  {object}  dto.ListingResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/destinations [post]
func (h *DestinationHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateDestinationRequest
	if err := parseBody(c, &in); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	image, err := imageUpload(c)
	if err != nil {
		return badRequest(c, "INVALID_IMAGE", "imagen ilegible")
	}
	out, err := h.uc.Create(c.Context(), GetCompanyID(c), in, image)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar destinos de la empresa
// @Tags         destinations
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Límite"  default(20)
// @Param        offset  query  int  false  "Offset"  default(0)
// @Success      200  {object}  dto.ListingListResponse
// @Router       /api/destinations [get]
func (h *DestinationHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context(), GetCompanyID(c), pageFromQuery(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener destino por ID
// @Tags         destinations
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del destino"
// @Success      200  {object}  dto.ListingResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/destinations/{id} [get]
func (h *DestinationHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), GetCompanyID(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar destino
// @Tags         destinations
// @Security     Bearer
// @Accept       mpfd
// @Produce      json
// @Param        id  path  string  true  "ID del destino"
// @Success      200  {object}  dto.ListingResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/destinations/{id} [put]
func (h *DestinationHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateDestinationRequest
	if err := parseBody(c, &in); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	image, err := imageUpload(c)
	if err != nil {
		return badRequest(c, "INVALID_IMAGE", "imagen ilegible")
	}
	out, err := h.uc.Update(c.Context(), GetCompanyID(c), c.Params("id"), in, image)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar destino
// @Tags         destinations
// @Security     Bearer
// @Param        id  path  string  true  "ID del destino"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/destinations/{id} [delete]
func (h *DestinationHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), GetCompanyID(c), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ToggleFeatured alterna el flag de destacado. PATCH /api/destinations/:id/featured
func (h *DestinationHandler) ToggleFeatured(c *fiber.Ctx) error {
	out, err := h.uc.ToggleFeatured(c.Context(), GetCompanyID(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ToggleActive alterna el flag de activo. PATCH /api/destinations/:id/active
func (h *DestinationHandler) ToggleActive(c *fiber.Ctx) error {
	out, err := h.uc.ToggleActive(c.Context(), GetCompanyID(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
