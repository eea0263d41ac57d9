package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/turismo-api/internal/application/auth"
	"github.com/jhoicas/turismo-api/internal/application/booking"
	"github.com/jhoicas/turismo-api/internal/application/dashboard"
	"github.com/jhoicas/turismo-api/internal/application/usecase"
	inframedia "github.com/jhoicas/turismo-api/internal/infrastructure/media"
	infrapdf "github.com/jhoicas/turismo-api/internal/infrastructure/pdf"
	"github.com/jhoicas/turismo-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/turismo-api/internal/interfaces/http"
	"github.com/jhoicas/turismo-api/pkg/config"
	"github.com/jhoicas/turismo-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	mediaStore, err := inframedia.NewLocalStore(cfg.Media.Dir, cfg.Media.BaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("media store")
	}

	companyRepo := postgres.NewCompanyRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	destinationRepo := postgres.NewDestinationRepository(pool)
	offerRepo := postgres.NewOfferRepository(pool)
	packageRepo := postgres.NewPackageRepository(pool)
	checkoutRepo := postgres.NewCheckoutRepository(pool)
	favoriteRepo := postgres.NewFavoriteRepository(pool)

	authUC := auth.NewUseCase(companyRepo, userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	companyUC := usecase.NewCompanyUseCase(companyRepo, mediaStore)
	destinationUC := usecase.NewDestinationUseCase(destinationRepo, mediaStore)
	offerUC := usecase.NewOfferUseCase(offerRepo, destinationRepo, mediaStore)
	packageUC := usecase.NewPackageUseCase(packageRepo, destinationRepo, mediaStore)
	favoriteUC := usecase.NewFavoriteUseCase(favoriteRepo)

	voucherGen := infrapdf.NewMarotoVoucherGenerator()
	bookingUC := booking.NewUseCase(
		checkoutRepo, destinationRepo, offerRepo, packageRepo, companyRepo, voucherGen,
	)
	dashboardUC := dashboard.NewUseCase(destinationUC, offerUC, packageUC, bookingUC, checkoutRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Turismo API",
	}))

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:        authUC,
		CompanyUC:     companyUC,
		DestinationUC: destinationUC,
		OfferUC:       offerUC,
		PackageUC:     packageUC,
		FavoriteUC:    favoriteUC,
		BookingUC:     bookingUC,
		DashboardUC:   dashboardUC,
		JWTSecret:     cfg.JWT.Secret,
		MediaDir:      cfg.Media.Dir,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
