package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/turismo-api/internal/application/auth"
	"github.com/jhoicas/turismo-api/internal/application/booking"
	"github.com/jhoicas/turismo-api/internal/application/dashboard"
	"github.com/jhoicas/turismo-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC        *auth.UseCase
	CompanyUC     *usecase.CompanyUseCase
	DestinationUC *usecase.DestinationUseCase
	OfferUC       *usecase.OfferUseCase
	PackageUC     *usecase.PackageUseCase
	FavoriteUC    *usecase.FavoriteUseCase
	BookingUC     *booking.UseCase
	DashboardUC   *dashboard.UseCase
	JWTSecret     string
	MediaDir      string // raíz del Media Store, servida como /media
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	// Archivos de media (imágenes de listados y logos)
	app.Static("/media", deps.MediaDir)

	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/company/register", authHandler.RegisterCompany)
	authGroup.Post("/company/login", authHandler.LoginCompany)
	authGroup.Post("/register", authHandler.RegisterUser)
	authGroup.Post("/login", authHandler.LoginUser)

	// Catálogo público (solo listados activos, sin token)
	public := api.Group("/public")
	catalogHandler := NewCatalogHandler(deps.DestinationUC, deps.OfferUC, deps.PackageUC)
	public.Get("/destinations", catalogHandler.ListDestinations)
	public.Get("/destinations/:id", catalogHandler.GetDestination)
	public.Get("/offers", catalogHandler.ListOffers)
	public.Get("/offers/:id", catalogHandler.GetOffer)
	public.Get("/packages", catalogHandler.ListPackages)
	public.Get("/packages/:id", catalogHandler.GetPackage)

	// Rutas de empresa (requieren token de empresa). Cada grupo lleva su
	// propio middleware para no interceptar las rutas de viajero, que cuelgan
	// del mismo /api.
	companyAuth := RequireCompany(deps.JWTSecret)

	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	api.Get("/dashboard", companyAuth, dashboardHandler.GetSummary)

	companyGroup := api.Group("/company", companyAuth)
	companyHandler := NewCompanyHandler(deps.CompanyUC)
	companyGroup.Get("/profile", companyHandler.GetProfile)
	companyGroup.Put("/profile", companyHandler.UpdateProfile)
	companyGroup.Put("/password", companyHandler.ChangePassword)

	destinations := api.Group("/destinations", companyAuth)
	destinationHandler := NewDestinationHandler(deps.DestinationUC)
	destinations.Post("/", destinationHandler.Create)
	destinations.Get("/", destinationHandler.List)
	destinations.Get("/:id", destinationHandler.GetByID)
	destinations.Put("/:id", destinationHandler.Update)
	destinations.Delete("/:id", destinationHandler.Delete)
	destinations.Patch("/:id/featured", destinationHandler.ToggleFeatured)
	destinations.Patch("/:id/active", destinationHandler.ToggleActive)

	offers := api.Group("/offers", companyAuth)
	offerHandler := NewOfferHandler(deps.OfferUC)
	offers.Post("/", offerHandler.Create)
	offers.Get("/", offerHandler.List)
	offers.Get("/:id", offerHandler.GetByID)
	offers.Put("/:id", offerHandler.Update)
	offers.Delete("/:id", offerHandler.Delete)
	offers.Patch("/:id/featured", offerHandler.ToggleFeatured)
	offers.Patch("/:id/active", offerHandler.ToggleActive)

	packages := api.Group("/packages", companyAuth)
	packageHandler := NewPackageHandler(deps.PackageUC)
	packages.Post("/", packageHandler.Create)
	packages.Get("/", packageHandler.List)
	packages.Get("/:id", packageHandler.GetByID)
	packages.Put("/:id", packageHandler.Update)
	packages.Delete("/:id", packageHandler.Delete)
	packages.Patch("/:id/featured", packageHandler.ToggleFeatured)
	packages.Patch("/:id/active", packageHandler.ToggleActive)

	bookingHandler := NewBookingHandler(deps.BookingUC)
	bookings := api.Group("/bookings", companyAuth)
	bookings.Get("/", bookingHandler.List)
	bookings.Post("/:id/confirm", bookingHandler.Confirm)
	bookings.Post("/:id/cancel", bookingHandler.Cancel)
	bookings.Get("/:id/pdf", bookingHandler.Voucher)

	// Rutas de viajero (requieren token de viajero)
	travelerAuth := RequireUser(deps.JWTSecret)
	api.Post("/checkout", travelerAuth, bookingHandler.Checkout)
	api.Get("/my/bookings", travelerAuth, bookingHandler.MyBookings)

	favorites := api.Group("/favorites", travelerAuth)
	favoriteHandler := NewFavoriteHandler(deps.FavoriteUC)
	favorites.Post("/", favoriteHandler.Add)
	favorites.Get("/", favoriteHandler.List)
	favorites.Delete("/:kind/:id", favoriteHandler.Remove)
}
