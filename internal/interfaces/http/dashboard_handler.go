package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/turismo-api/internal/application/dashboard"
)

// DashboardHandler expone el panel agregado de la empresa autenticada.
type DashboardHandler struct {
	uc *dashboard.UseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *dashboard.UseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// GetSummary godoc
// @Summary      Panel de la empresa
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Límite por vista"  default(20)
// @Param        offset  query  int  false  "Offset por vista"  default(0)
// @Success      200  {object}  dto.DashboardSummaryDTO
// @Router       /api/dashboard [get]
//
// Conteos, vistas paginadas de los tres kinds, reservas y revenue confirmado,
// todo acotado a la empresa del token. limit y offset aplican por igual a las
// cuatro vistas.
func (h *DashboardHandler) GetSummary(c *fiber.Ctx) error {
	page := pageFromQuery(c)
	pages := dashboard.Pages{
		Destinations: page,
		Offers:       page,
		Packages:     page,
		Bookings:     page,
	}
	out, err := h.uc.GetSummary(c.Context(), GetCompanyID(c), pages)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
