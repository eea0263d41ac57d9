package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/turismo-api/internal/application/dto"
	"github.com/jhoicas/turismo-api/internal/application/usecase"
)

// PackageHandler maneja los paquetes de la empresa autenticada (protegido).
type PackageHandler struct {
	uc *usecase.PackageUseCase
}

// NewPackageHandler construye el handler.
func NewPackageHandler(uc *usecase.PackageUseCase) *PackageHandler {
	return &PackageHandler{uc: uc}
}

// Create crea un paquete. POST /api/packages
func (h *PackageHandler) Create(c *fiber.Ctx) error {
	var in dto.CreatePackageRequest
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

// List lista los paquetes de la empresa. GET /api/packages
func (h *PackageHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context(), GetCompanyID(c), pageFromQuery(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByID obtiene un paquete. GET /api/packages/:id
func (h *PackageHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), GetCompanyID(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update actualiza un paquete. PUT /api/packages/:id
func (h *PackageHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdatePackageRequest
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

// Delete elimina un paquete. DELETE /api/packages/:id
func (h *PackageHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), GetCompanyID(c), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ToggleFeatured alterna el flag de destacado. PATCH /api/packages/:id/featured
func (h *PackageHandler) ToggleFeatured(c *fiber.Ctx) error {
	out, err := h.uc.ToggleFeatured(c.Context(), GetCompanyID(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ToggleActive alterna el flag de activo. PATCH /api/packages/:id/active
func (h *PackageHandler) ToggleActive(c *fiber.Ctx) error {
	out, err := h.uc.ToggleActive(c.Context(), GetCompanyID(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
