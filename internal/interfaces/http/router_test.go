package http

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lcondori/almacen-api/internal/application/catalog"
	"github.com/lcondori/almacen-api/internal/application/inventory"
	"github.com/lcondori/almacen-api/internal/application/pricing"
	domaininv "github.com/lcondori/almacen-api/internal/domain/inventory"
	"github.com/lcondori/almacen-api/internal/infrastructure/memory"
)

// newTestApp levanta la API completa sobre el driver en memoria.
func newTestApp() *fiber.App {
	store := memory.NewStore()
	productRepo := memory.NewProductRepository(store)
	movementRepo := memory.NewMovementRepository(store)
	historyRepo := memory.NewPriceHistoryRepository(store)
	runner := memory.NewTxRunner(store)

	policy := domaininv.StockPolicy{DefaultMinStock: decimal.NewFromInt(10)}

	app := fiber.New()
	Router(app, RouterDeps{
		ProductUC:  catalog.NewProductUseCase(productRepo, policy, 30, nil),
		MovementUC: inventory.NewMovementUseCase(runner, productRepo, movementRepo, nil, nil),
		PriceUC:    pricing.NewPriceUseCase(runner, productRepo, historyRepo, nil),
	})
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body any) (int, map[string]any) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	var out map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return resp.StatusCode, out
}

func createTestProduct(t *testing.T, app *fiber.App, stock int) string {
	t.Helper()
	status, body := doJSON(t, app, fiber.MethodPost, "/api/products", map[string]any{
		"name":            "Azúcar 1kg",
		"code":            fmt.Sprintf("AZU-%d-%s", stock, t.Name()),
		"category_id":     "cat-1",
		"unit_measure_id": "und",
		"base_price":      "150",
		"initial_stock":   fmt.Sprintf("%d", stock),
		"min_stock":       "5",
	})
	require.Equal(t, fiber.StatusCreated, status, "cuerpo: %v", body)
	return body["id"].(string)
}

func TestProducts_CrearYConsultar(t *testing.T) {
	app := newTestApp()

	id := createTestProduct(t, app, 20)

	status, body := doJSON(t, app, fiber.MethodGet, "/api/products/"+id, nil)
	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "Azúcar 1kg", body["name"])
	assert.Equal(t, false, body["low_stock"])
	assert.Equal(t, false, body["expired"])
	// Sin fecha de vencimiento aplica el valor centinela
	assert.Equal(t, float64(999), body["days_until_expiry"])
}

func TestProducts_CodigoDuplicado(t *testing.T) {
	app := newTestApp()
	createTestProduct(t, app, 20)

	status, body := doJSON(t, app, fiber.MethodPost, "/api/products", map[string]any{
		"name":            "Otro",
		"code":            fmt.Sprintf("AZU-%d-%s", 20, t.Name()),
		"category_id":     "cat-1",
		"unit_measure_id": "und",
	})
	assert.Equal(t, fiber.StatusConflict, status)
	assert.Equal(t, "DUPLICATE", body["code"])
}

func TestProducts_DesactivarSaleDelListado(t *testing.T) {
	app := newTestApp()
	id := createTestProduct(t, app, 20)

	status, _ := doJSON(t, app, fiber.MethodDelete, "/api/products/"+id, nil)
	require.Equal(t, fiber.StatusOK, status)

	status, body := doJSON(t, app, fiber.MethodGet, "/api/products", nil)
	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, float64(0), body["total"])

	status, body = doJSON(t, app, fiber.MethodGet, "/api/products?include_inactive=true", nil)
	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, float64(1), body["total"])
}

func TestMovements_RegistroYStockInsuficiente(t *testing.T) {
	app := newTestApp()
	id := createTestProduct(t, app, 20)

	status, body := doJSON(t, app, fiber.MethodPost, "/api/movements", map[string]any{
		"product_id":  id,
		"type":        "ENTRADA",
		"quantity":    "10",
		"unit_price":  "120",
		"supplier_id": "prov-1",
		"reason":      "compra",
	})
	require.Equal(t, fiber.StatusCreated, status, "cuerpo: %v", body)

	// Pedir más de lo disponible responde 409 con el disponible real
	status, body = doJSON(t, app, fiber.MethodPost, "/api/movements", map[string]any{
		"product_id": id,
		"type":       "SALIDA",
		"quantity":   "35",
		"client_id":  "cli-1",
		"reason":     "venta",
	})
	require.Equal(t, fiber.StatusConflict, status)
	assert.Equal(t, "INSUFFICIENT_STOCK", body["code"])
	assert.Equal(t, "30", body["available"])

	status, prod := doJSON(t, app, fiber.MethodGet, "/api/products/"+id, nil)
	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "30", prod["current_stock"])
}

func TestMovements_ValidacionDeCuerpo(t *testing.T) {
	app := newTestApp()
	id := createTestProduct(t, app, 20)

	// Tipo fuera del enum lo ataja el validador antes del caso de uso
	status, body := doJSON(t, app, fiber.MethodPost, "/api/movements", map[string]any{
		"product_id": id,
		"type":       "TRASLADO",
		"quantity":   "5",
		"reason":     "x",
	})
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "VALIDATION", body["code"])

	// SALIDA sin cliente la rechaza el caso de uso
	status, body = doJSON(t, app, fiber.MethodPost, "/api/movements", map[string]any{
		"product_id": id,
		"type":       "SALIDA",
		"quantity":   "5",
		"reason":     "venta",
	})
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "VALIDATION", body["code"])
}

func TestMovements_ProductoInexistente(t *testing.T) {
	app := newTestApp()

	status, body := doJSON(t, app, fiber.MethodPost, "/api/movements", map[string]any{
		"product_id":  "no-existe",
		"type":        "ENTRADA",
		"quantity":    "5",
		"supplier_id": "prov-1",
		"reason":      "compra",
	})
	assert.Equal(t, fiber.StatusNotFound, status)
	assert.Equal(t, "NOT_FOUND", body["code"])
}

func TestMovements_ReversionRestauraStock(t *testing.T) {
	app := newTestApp()
	id := createTestProduct(t, app, 20)

	status, mov := doJSON(t, app, fiber.MethodPost, "/api/movements", map[string]any{
		"product_id": id,
		"type":       "SALIDA",
		"quantity":   "8",
		"client_id":  "cli-1",
		"reason":     "venta",
	})
	require.Equal(t, fiber.StatusCreated, status)

	status, _ = doJSON(t, app, fiber.MethodDelete, "/api/movements/"+mov["id"].(string), nil)
	require.Equal(t, fiber.StatusOK, status)

	status, prod := doJSON(t, app, fiber.MethodGet, "/api/products/"+id, nil)
	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "20", prod["current_stock"])

	status, body := doJSON(t, app, fiber.MethodDelete, "/api/movements/"+mov["id"].(string), nil)
	assert.Equal(t, fiber.StatusNotFound, status)
	assert.Equal(t, "NOT_FOUND", body["code"])
}

func TestPrice_CambioYNoOp(t *testing.T) {
	app := newTestApp()
	id := createTestProduct(t, app, 20)

	req := httptest.NewRequest(fiber.MethodPut, "/api/products/"+id+"/price", bytes.NewReader([]byte(`{"new_price":"180"}`)))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Usuario", "lucia")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	var entry map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&entry))
	assert.Equal(t, "150", entry["old_price"])
	assert.Equal(t, "180", entry["new_price"])
	assert.Equal(t, "lucia", entry["changed_by"])

	// Mismo precio: 200 sin entrada nueva
	status, body := doJSON(t, app, fiber.MethodPut, "/api/products/"+id+"/price", map[string]any{"new_price": "180"})
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "precio sin cambios", body["message"])

	status, list := doJSON(t, app, fiber.MethodGet, "/api/price-history/product/"+id, nil)
	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, float64(1), list["total"])
}

func TestPrice_NegativoRechazado(t *testing.T) {
	app := newTestApp()
	id := createTestProduct(t, app, 20)

	status, body := doJSON(t, app, fiber.MethodPut, "/api/products/"+id+"/price", map[string]any{"new_price": "-1"})
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "INVALID_PRICE", body["code"])
}

func TestPriceHistory_FechaInvalida(t *testing.T) {
	app := newTestApp()
	id := createTestProduct(t, app, 20)

	status, body := doJSON(t, app, fiber.MethodGet, "/api/price-history/product/"+id+"?from=ayer", nil)
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "VALIDATION", body["code"])
}
