package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/turismo-api/internal/application/booking"
	"github.com/jhoicas/turismo-api/internal/application/dto"
)

// BookingHandler maneja las reservas: la vista de empresa (listado,
// transiciones de estado, comprobante PDF) y la de viajero (crear, mis
// reservas).
type BookingHandler struct {
	uc *booking.UseCase
}

// NewBookingHandler construye el handler.
func NewBookingHandler(uc *booking.UseCase) *BookingHandler {
	return &BookingHandler{uc: uc}
}

// List godoc
// @Summary      Listar reservas de la empresa
// @Tags         bookings
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Límite"  default(20)
// @Param        offset  query  int  false  "Offset"  default(0)
// @Success      200  {object}  dto.BookingListResponse
// @Router       /api/bookings [get]
func (h *BookingHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.ListByCompany(c.Context(), GetCompanyID(c), pageFromQuery(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Confirm godoc
// @Summary      Confirmar reserva pendiente
// @Tags         bookings
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la reserva"
// @Success      200  {object}  dto.BookingResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/bookings/{id}/confirm [post]
func (h *BookingHandler) Confirm(c *fiber.Ctx) error {
	out, err := h.uc.Confirm(c.Context(), c.Params("id"), GetCompanyID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Cancel godoc
// @Summary      Cancelar reserva (desde pending o confirmed)
// @Tags         bookings
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la reserva"
// @Success      200  {object}  dto.BookingResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/bookings/{id}/cancel [post]
func (h *BookingHandler) Cancel(c *fiber.Ctx) error {
	out, err := h.uc.Cancel(c.Context(), c.Params("id"), GetCompanyID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Voucher godoc
// @Summary      Comprobante PDF de una reserva confirmada
// @Tags         bookings
// @Security     Bearer
// @Produce      application/pdf
// @Param        id  path  string  true  "ID de la reserva"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/bookings/{id}/pdf [get]
func (h *BookingHandler) Voucher(c *fiber.Ctx) error {
	pdfBytes, err := h.uc.Voucher(c.Context(), c.Params("id"), GetCompanyID(c))
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="reserva-`+c.Params("id")+`.pdf"`)
	return c.Send(pdfBytes)
}

// Checkout godoc
// @Summary      Reservar un listado (viajero)
// @Tags         checkout
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateCheckoutRequest  true  "Datos de la reserva"
// @Success      201   {object}  dto.BookingResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/checkout [post]
func (h *BookingHandler) Checkout(c *fiber.Ctx) error {
	var in dto.CreateCheckoutRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	out, err := h.uc.Create(c.Context(), GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// MyBookings lista las reservas del viajero autenticado. GET /api/my/bookings
func (h *BookingHandler) MyBookings(c *fiber.Ctx) error {
	out, err := h.uc.ListByUser(c.Context(), GetUserID(c), pageFromQuery(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
