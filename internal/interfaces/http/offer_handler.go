package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/turismo-api/internal/application/dto"
	"github.com/jhoicas/turismo-api/internal/application/usecase"
)

// OfferHandler maneja las ofertas de la empresa autenticada (protegido).
// Mismo contrato que DestinationHandler más el destino vinculado.
type OfferHandler struct {
	uc *usecase.OfferUseCase
}

// NewOfferHandler construye el handler.
func NewOfferHandler(uc *usecase.OfferUseCase) *OfferHandler {
	return &OfferHandler{uc: uc}
}

// Create crea una oferta. POST /api/offers
func (h *OfferHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateOfferRequest
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

// List lista las ofertas de la empresa. GET /api/offers
func (h *OfferHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context(), GetCompanyID(c), pageFromQuery(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByID obtiene una oferta. GET /api/offers/:id
func (h *OfferHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), GetCompanyID(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update actualiza una oferta. PUT /api/offers/:id
func (h *OfferHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateOfferRequest
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

// Delete elimina una oferta. DELETE /api/offers/:id
func (h *OfferHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), GetCompanyID(c), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ToggleFeatured alterna el flag de destacado. PATCH /api/offers/:id/featured
func (h *OfferHandler) ToggleFeatured(c *fiber.Ctx) error {
	out, err := h.uc.ToggleFeatured(c.Context(), GetCompanyID(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ToggleActive alterna el flag de activo. PATCH /api/offers/:id/active
func (h *OfferHandler) ToggleActive(c *fiber.Ctx) error {
	out, err := h.uc.ToggleActive(c.Context(), GetCompanyID(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
