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

	_ "github.com/jhoicas/control-inventario/docs"
	"github.com/jhoicas/control-inventario/internal/application/inventory"
	"github.com/jhoicas/control-inventario/internal/application/usecase"
	infrapdf "github.com/jhoicas/control-inventario/internal/infrastructure/pdf"
	"github.com/jhoicas/control-inventario/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/control-inventario/internal/interfaces/http"
	"github.com/jhoicas/control-inventario/pkg/config"
	"github.com/jhoicas/control-inventario/pkg/logger"
)

// @title       Control de Inventario API
// @version     1.0
// @description CRUD de productos, usuarios y movimientos de stock con registro transaccional.
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

	productRepo := postgres.NewProductRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	movementRepo := postgres.NewStockMovementRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	pdfGenerator := infrapdf.NewMarotoReportGenerator()

	productUC := usecase.NewProductUseCase(productRepo, movementRepo)
	userUC := usecase.NewUserUseCase(userRepo, movementRepo)
	postMovementUC := inventory.NewPostMovementUseCase(txRunner, productRepo, userRepo)
	movementQueryUC := inventory.NewMovementQueryUseCase(movementRepo)
	stockReportUC := inventory.NewStockReportUseCase(productRepo, movementRepo, pdfGenerator)

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
		Title:    "Control de Inventario API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ProductUC:     productUC,
		UserUC:        userUC,
		PostMovement:  postMovementUC,
		MovementQuery: movementQueryUC,
		StockReport:   stockReportUC,
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
