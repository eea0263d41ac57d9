package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/turismo-api/internal/application/dto"
	"github.com/jhoicas/turismo-api/internal/application/usecase"
)

// CompanyHandler maneja el perfil de la empresa autenticada (protegido).
type CompanyHandler struct {
	uc *usecase.CompanyUseCase
}

// NewCompanyHandler construye el handler.
func NewCompanyHandler(uc *usecase.CompanyUseCase) *CompanyHandler {
	return &CompanyHandler{uc: uc}
}

// GetProfile godoc
// @Summary      Perfil de la empresa
// @Tags         company
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.CompanyProfileResponse
// @Router       /api/company/profile [get]
func (h *CompanyHandler) GetProfile(c *fiber.Ctx) error {
	out, err := h.uc.GetProfile(c.Context(), GetCompanyID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// UpdateProfile godoc
// @Summary      Actualizar perfil (multipart: data + logo en "image")
// @Tags         company
// @Security     Bearer
// @Accept       mpfd
// @Produce      json
// @Success      200  {object}  dto.CompanyProfileResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/company/profile [put]
func (h *CompanyHandler) UpdateProfile(c *fiber.Ctx) error {
	var in dto.UpdateCompanyProfileRequest
	if err := parseBody(c, &in); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	logo, err := imageUpload(c)
	if err != nil {
		return badRequest(c, "INVALID_IMAGE", "imagen ilegible")
	}
	out, err := h.uc.UpdateProfile(c.Context(), GetCompanyID(c), in, logo)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ChangePassword godoc
// @Summary      Cambiar contraseña
// @Tags         company
// @Security     Bearer
// @Accept       json
// @Success      204
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/company/password [put]
func (h *CompanyHandler) ChangePassword(c *fiber.Ctx) error {
	var in dto.ChangePasswordRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	if err := h.uc.ChangePassword(c.Context(), GetCompanyID(c), in); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
