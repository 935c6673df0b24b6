package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/shopspring/decimal"

	"github.com/lcondori/almacen-api/internal/application/catalog"
	"github.com/lcondori/almacen-api/internal/application/inventory"
	"github.com/lcondori/almacen-api/internal/application/pricing"
	domaininv "github.com/lcondori/almacen-api/internal/domain/inventory"
	"github.com/lcondori/almacen-api/internal/domain/repository"
	"github.com/lcondori/almacen-api/internal/infrastructure/memory"
	"github.com/lcondori/almacen-api/internal/infrastructure/postgres"
	httpRouter "github.com/lcondori/almacen-api/internal/interfaces/http"
	"github.com/lcondori/almacen-api/pkg/config"
	"github.com/lcondori/almacen-api/pkg/logger"
	"github.com/lcondori/almacen-api/pkg/migrate"
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
		Str("db_driver", cfg.DB.Driver).
		Msg("iniciando aplicación")

	ctx := context.Background()

	var (
		productRepo  repository.ProductRepository
		movementRepo repository.MovementRepository
		historyRepo  repository.PriceHistoryRepository
		invTx        inventory.TxRunner
		priceTx      pricing.TxRunner
	)

	if cfg.DB.Driver == "memory" {
		store := memory.NewStore()
		runner := memory.NewTxRunner(store)
		productRepo = memory.NewProductRepository(store)
		movementRepo = memory.NewMovementRepository(store)
		historyRepo = memory.NewPriceHistoryRepository(store)
		invTx, priceTx = runner, runner
	} else {
		if err := migrate.Up(ctx, cfg.DB.ConnectionString()); err != nil {
			log.Fatal().Err(err).Msg("migraciones")
		}
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		defer pool.Close()
		runner := postgres.NewTxRunner(pool)
		productRepo = postgres.NewProductRepository(pool)
		movementRepo = postgres.NewMovementRepository(pool)
		historyRepo = postgres.NewPriceHistoryRepository(pool)
		invTx, priceTx = runner, runner
	}

	policy := domaininv.StockPolicy{
		DefaultMinStock: decimal.NewFromInt(int64(cfg.Inventory.StockMinDefault)),
	}

	movementUC := inventory.NewMovementUseCase(invTx, productRepo, movementRepo, log, nil)
	priceUC := pricing.NewPriceUseCase(priceTx, productRepo, historyRepo, nil)
	productUC := catalog.NewProductUseCase(productRepo, policy, cfg.Inventory.ExpirySoonDays, nil)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ProductUC:  productUC,
		MovementUC: movementUC,
		PriceUC:    priceUC,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("apagando servidor")
	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}
}
