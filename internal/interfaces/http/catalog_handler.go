package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/turismo-api/internal/application/usecase"
	"github.com/jhoicas/turismo-api/internal/domain/repository"
)

// CatalogHandler expone el catálogo público: listados activos de todas las
// empresas, sin autenticación. Solo lectura.
type CatalogHandler struct {
	dests    *usecase.DestinationUseCase
	offers   *usecase.OfferUseCase
	packages *usecase.PackageUseCase
}

// NewCatalogHandler construye el handler.
func NewCatalogHandler(
	dests *usecase.DestinationUseCase,
	offers *usecase.OfferUseCase,
	packages *usecase.PackageUseCase,
) *CatalogHandler {
	return &CatalogHandler{dests: dests, offers: offers, packages: packages}
}

// publicFilter lee los filtros opcionales del catálogo del query string.
func publicFilter(c *fiber.Ctx) repository.PublicFilter {
	f := repository.PublicFilter{Category: c.Query("category")}
	if c.Query("featured") != "" {
		v := c.QueryBool("featured")
		f.Featured = &v
	}
	return f
}

// ListDestinations godoc
// @Summary      Catálogo público de destinos
// @Tags         public
// @Produce      json
// @Param        category  query  string  false  "Filtrar por categoría"
// @Param        featured  query  bool    false  "Solo destacados"
// @Success      200  {object}  dto.ListingListResponse
// @Router       /api/public/destinations [get]
func (h *CatalogHandler) ListDestinations(c *fiber.Ctx) error {
	out, err := h.dests.ListPublic(c.Context(), publicFilter(c), pageFromQuery(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetDestination detalle público de un destino activo. GET /api/public/destinations/:id
func (h *CatalogHandler) GetDestination(c *fiber.Ctx) error {
	out, err := h.dests.GetPublic(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ListOffers catálogo público de ofertas. GET /api/public/offers
func (h *CatalogHandler) ListOffers(c *fiber.Ctx) error {
	out, err := h.offers.ListPublic(c.Context(), publicFilter(c), pageFromQuery(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetOffer detalle público de una oferta activa. GET /api/public/offers/:id
func (h *CatalogHandler) GetOffer(c *fiber.Ctx) error {
	out, err := h.offers.GetPublic(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ListPackages catálogo público de paquetes. GET /api/public/packages
func (h *CatalogHandler) ListPackages(c *fiber.Ctx) error {
	out, err := h.packages.ListPublic(c.Context(), publicFilter(c), pageFromQuery(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetPackage detalle público de un paquete activo. GET /api/public/packages/:id
func (h *CatalogHandler) GetPackage(c *fiber.Ctx) error {
	out, err := h.packages.GetPublic(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
