package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/control-inventario/internal/application/inventory"
	"github.com/jhoicas/control-inventario/internal/application/usecase"
)

// RouterDeps dependencias para el router (inyección explícita, sin globals).
type RouterDeps struct {
	ProductUC     *usecase.ProductUseCase
	UserUC        *usecase.UserUseCase
	PostMovement  *inventory.PostMovementUseCase
	MovementQuery *inventory.MovementQueryUseCase
	StockReport   *inventory.StockReportUseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	// Products
	products := app.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	// Users
	users := app.Group("/users")
	userHandler := NewUserHandler(deps.UserUC)
	users.Post("/", userHandler.Create)
	users.Get("/", userHandler.List)
	users.Get("/:id", userHandler.GetByID)
	users.Put("/:id", userHandler.Update)
	users.Delete("/:id", userHandler.Delete)

	// Movements (report antes de :id para que la ruta fija gane)
	movements := app.Group("/movements")
	movementHandler := NewMovementHandler(deps.PostMovement, deps.MovementQuery, deps.StockReport)
	movements.Post("/", movementHandler.Post)
	movements.Get("/", movementHandler.List)
	movements.Get("/report", movementHandler.Report)
	movements.Get("/report/pdf", movementHandler.ReportPDF)
	movements.Get("/:id", movementHandler.GetByID)
}
