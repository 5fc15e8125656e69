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

	"github.com/automly/automotora-api/internal/application/auth"
	"github.com/automly/automotora-api/internal/application/quote"
	"github.com/automly/automotora-api/internal/application/twofa"
	"github.com/automly/automotora-api/internal/application/usecase"
	infrapdf "github.com/automly/automotora-api/internal/infrastructure/pdf"
	"github.com/automly/automotora-api/internal/infrastructure/postgres"
	infratotp "github.com/automly/automotora-api/internal/infrastructure/totp"
	httpRouter "github.com/automly/automotora-api/internal/interfaces/http"
	"github.com/automly/automotora-api/pkg/config"
	"github.com/automly/automotora-api/pkg/logger"
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

	dealerRepo := postgres.NewDealerRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	roleRepo := postgres.NewRoleRepository(pool)
	vehicleRepo := postgres.NewVehicleRepository(pool)
	serviceRepo := postgres.NewVehicleServiceRepository(pool)
	twoFARepo := postgres.NewTwoFactorRepository(pool)
	catalogRepo := postgres.NewCatalogRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	totpSvc := infratotp.NewService(cfg.TOTP.Issuer)
	twoFactorUC := twofa.NewUseCase(userRepo, twoFARepo, totpSvc, txRunner, cfg.TOTP.BackupCodes)
	authUC := auth.NewUseCase(userRepo, dealerRepo, roleRepo, twoFactorUC, cfg.JWT)

	dealerUC := usecase.NewDealerUseCase(dealerRepo)
	vehicleUC := usecase.NewVehicleUseCase(vehicleRepo, serviceRepo, dealerRepo)
	serviceUC := usecase.NewVehicleServiceUseCase(serviceRepo, vehicleRepo)
	userUC := usecase.NewUserUseCase(userRepo, roleRepo)
	roleUC := usecase.NewRoleUseCase(roleRepo)
	dashboardUC := usecase.NewDashboardUseCase(dealerRepo, userRepo)
	catalogUC := usecase.NewCatalogUseCase(catalogRepo)

	// PDF: ficha de precio del vehículo
	priceSheetGen := infrapdf.NewMarotoPriceSheetGenerator()
	priceSheetUC := quote.NewPDFUseCase(vehicleRepo, serviceRepo, dealerRepo, priceSheetGen)

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
		Title:    "Automotora API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		DealerUC:    dealerUC,
		VehicleUC:   vehicleUC,
		ServiceUC:   serviceUC,
		UserUC:      userUC,
		RoleUC:      roleUC,
		DashboardUC: dashboardUC,
		CatalogUC:   catalogUC,
		AuthUC:      authUC,
		TwoFactorUC: twoFactorUC,
		PriceSheet:  priceSheetUC,
		JWTSecret:   cfg.JWT.Secret,
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
