package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventario-lite/internal/store"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Store     *store.Store
	JWTSecret string
	JWTConfig JWTConfig
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (login público)
	authHandler := NewAuthHandler(deps.Store, deps.JWTConfig)
	api.Post("/auth/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	protected.Post("/auth/logout", authHandler.Logout)

	// Products (protegido)
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.Store)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	// Categories (protegido)
	categories := protected.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.Store)
	categories.Post("/", categoryHandler.Create)
	categories.Get("/", categoryHandler.List)
	categories.Put("/:id", categoryHandler.Update)
	categories.Delete("/:id", categoryHandler.Delete)

	// Inventory movements (protegido)
	invGroup := protected.Group("/inventory")
	inventoryHandler := NewInventoryHandler(deps.Store)
	invGroup.Post("/movements", inventoryHandler.RegisterMovement)
	invGroup.Get("/movements", inventoryHandler.ListMovements)

	// Dashboard (protegido)
	dashboardHandler := NewDashboardHandler(deps.Store)
	protected.Get("/dashboard/stats", dashboardHandler.GetStats)

	// Settings y tema (protegido)
	settingsHandler := NewSettingsHandler(deps.Store)
	protected.Get("/settings", settingsHandler.Get)
	protected.Put("/settings", settingsHandler.Update)
	protected.Post("/theme/toggle", settingsHandler.ToggleTheme)
}
