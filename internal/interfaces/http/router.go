package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/automly/automotora-api/internal/application/auth"
	"github.com/automly/automotora-api/internal/application/quote"
	"github.com/automly/automotora-api/internal/application/twofa"
	"github.com/automly/automotora-api/internal/application/usecase"
	"github.com/automly/automotora-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	DealerUC    *usecase.DealerUseCase
	VehicleUC   *usecase.VehicleUseCase
	ServiceUC   *usecase.VehicleServiceUseCase
	UserUC      *usecase.UserUseCase
	RoleUC      *usecase.RoleUseCase
	DashboardUC *usecase.DashboardUseCase
	CatalogUC   *usecase.CatalogUseCase
	AuthUC      *auth.UseCase
	TwoFactorUC *twofa.UseCase
	PriceSheet  *quote.PDFUseCase
	JWTSecret   string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// 2FA del usuario autenticado (no requiere tenant: aplica también a bootstrap)
	twoFAGroup := protected.Group("/2fa")
	twoFAHandler := NewTwoFactorHandler(deps.TwoFactorUC)
	twoFAGroup.Post("/enroll", twoFAHandler.Enroll)
	twoFAGroup.Post("/confirm", twoFAHandler.Confirm)
	twoFAGroup.Get("/status", twoFAHandler.Status)

	// Dealers (administración de plataforma, sin scoping por tenant)
	dealers := protected.Group("/dealers")
	dealerHandler := NewDealerHandler(deps.DealerUC)
	dealers.Post("/", dealerHandler.Create)
	dealers.Get("/", dealerHandler.List)
	dealers.Get("/:id", dealerHandler.GetByID)
	dealers.Put("/:id", dealerHandler.Update)
	dealers.Delete("/:id", dealerHandler.Deactivate)

	// Dashboard (administración de plataforma)
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	protected.Get("/dashboard", dashboardHandler.Counts)

	// Catálogo de marcas/modelos (global, solo lectura)
	catalog := protected.Group("/catalog")
	catalogHandler := NewCatalogHandler(deps.CatalogUC)
	catalog.Get("/brands", catalogHandler.Brands)
	catalog.Get("/brands/:brand/models", catalogHandler.ModelsByBrand)

	// Rutas scopeadas por tenant: exigen automotora asociada en el token
	tenant := protected.Group("/", RequireDealer())
	canWrite := RequireRole(entity.RoleOwner, entity.RoleAdmin, entity.RoleSales)
	canManage := RequireRole(entity.RoleOwner, entity.RoleAdmin)

	// Vehicles (protegido, por tenant)
	vehicles := tenant.Group("/vehicles")
	vehicleHandler := NewVehicleHandler(deps.VehicleUC, deps.PriceSheet)
	serviceHandler := NewVehicleServiceHandler(deps.ServiceUC)
	vehicles.Post("/", canWrite, vehicleHandler.Create)
	vehicles.Get("/", vehicleHandler.List)
	vehicles.Get("/:id", vehicleHandler.GetByID)
	vehicles.Get("/:id/pricing", vehicleHandler.GetPricing)
	vehicles.Get("/:id/price-sheet", vehicleHandler.DownloadPriceSheet)
	vehicles.Get("/:id/services", serviceHandler.ListByVehicle)
	vehicles.Put("/:id", canWrite, vehicleHandler.Update)
	vehicles.Delete("/:id", canWrite, vehicleHandler.Deactivate)

	// Vehicle services (protegido, por tenant)
	services := tenant.Group("/services")
	services.Post("/", canWrite, serviceHandler.Create)
	services.Get("/", serviceHandler.List)
	services.Get("/:id", serviceHandler.GetByID)
	services.Put("/:id", canWrite, serviceHandler.Update)
	services.Delete("/:id", canWrite, serviceHandler.Deactivate)

	// Users (protegido, por tenant)
	users := tenant.Group("/users")
	userHandler := NewUserHandler(deps.UserUC)
	roleHandler := NewRoleHandler(deps.RoleUC)
	users.Get("/", userHandler.List)
	users.Get("/:id", userHandler.GetByID)
	users.Get("/:userID/roles", roleHandler.ListByUser)

	// Roles (protegido, por tenant; solo OWNER/ADMIN administran)
	roles := tenant.Group("/roles")
	roles.Post("/", canManage, roleHandler.Create)
	roles.Get("/", roleHandler.List)
	roles.Delete("/:id", canManage, roleHandler.Delete)
	roles.Post("/assign", canManage, roleHandler.Assign)
	roles.Delete("/:roleID/users/:userID", canManage, roleHandler.Revoke)
}
