package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/lcondori/almacen-api/internal/application/catalog"
	"github.com/lcondori/almacen-api/internal/application/inventory"
	"github.com/lcondori/almacen-api/internal/application/pricing"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductUC  *catalog.ProductUseCase
	MovementUC *inventory.MovementUseCase
	PriceUC    *pricing.PriceUseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Products (catálogo)
	products := api.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	// Precio base e historial
	priceHandler := NewPriceHandler(deps.PriceUC)
	products.Put("/:id/price", priceHandler.ChangePrice)
	api.Get("/price-history/product/:id", priceHandler.History)

	// Libro de movimientos
	movements := api.Group("/movements")
	movementHandler := NewMovementHandler(deps.MovementUC)
	movements.Post("/", movementHandler.Register)
	movements.Get("/", movementHandler.List)
	movements.Delete("/:id", movementHandler.Delete)
}
