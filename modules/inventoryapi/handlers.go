package inventoryapi

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/example/shop-services/modules/inventory"
	"github.com/example/shop-services/modules/validation"
)

// Handlers holds the HTTP handlers for the inventory REST surface.
type Handlers struct {
	service  *inventory.Service
	validate *validator.Validate
}

// NewHandlers creates the inventory handlers.
func NewHandlers(service *inventory.Service) *Handlers {
	return &Handlers{
		service:  service,
		validate: validation.New(),
	}
}

// Register mounts all inventory routes on the given app.
func (h *Handlers) Register(app *fiber.App) {
	app.Get("/health", h.Health)

	api := app.Group("/api/inventory")
	api.Get("/", h.List)
	api.Get("/low-stock", h.LowStock)
	api.Get("/check-stock/:productCode", h.CheckStock)
	api.Get("/product-code/:productCode", h.GetByProductCode)
	api.Get("/product/:productId", h.GetByProductID)
	api.Get("/:id", h.GetByID)
	api.Post("/", h.Create)
	api.Put("/:id", h.Update)
	api.Delete("/:id", h.Delete)
	api.Patch("/quantity/:productCode", h.AdjustQuantity)
}

// Health handles GET /health.
func (h *Handlers) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "healthy"})
}

// List handles GET /api/inventory.
func (h *Handlers) List(c *fiber.Ctx) error {
	items, err := h.service.GetAll(c.Context())
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(items)
}

// GetByID handles GET /api/inventory/:id.
func (h *Handlers) GetByID(c *fiber.Ctx) error {
	item, err := h.service.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, inventory.ErrNotFound) {
			return notFound(c, err)
		}
		return internalError(c, err)
	}
	return c.JSON(item)
}

// GetByProductCode handles GET /api/inventory/product-code/:productCode.
func (h *Handlers) GetByProductCode(c *fiber.Ctx) error {
	item, err := h.service.GetByProductCode(c.Context(), c.Params("productCode"))
	if err != nil {
		if errors.Is(err, inventory.ErrNotFound) {
			return notFound(c, err)
		}
		return internalError(c, err)
	}
	return c.JSON(item)
}

// GetByProductID handles GET /api/inventory/product/:productId.
func (h *Handlers) GetByProductID(c *fiber.Ctx) error {
	items, err := h.service.GetByProductID(c.Context(), c.Params("productId"))
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(items)
}

// Create handles POST /api/inventory.
func (h *Handlers) Create(c *fiber.Ctx) error {
	var req InventoryItemRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request body")
	}
	if err := h.validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(validation.Messages(err))
	}

	item, err := h.service.Create(c.Context(), &inventory.InventoryItem{
		ProductCode:       req.ProductCode,
		Quantity:          *req.Quantity,
		WarehouseLocation: req.WarehouseLocation,
		ProductID:         req.ProductID,
	})
	if err != nil {
		return internalError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(item)
}

// Update handles PUT /api/inventory/:id.
func (h *Handlers) Update(c *fiber.Ctx) error {
	var req InventoryItemRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request body")
	}
	if err := h.validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(validation.Messages(err))
	}

	item, err := h.service.Update(c.Context(), c.Params("id"), &inventory.InventoryItem{
		ProductCode:       req.ProductCode,
		Quantity:          *req.Quantity,
		WarehouseLocation: req.WarehouseLocation,
		ProductID:         req.ProductID,
	})
	if err != nil {
		if errors.Is(err, inventory.ErrNotFound) {
			return notFound(c, err)
		}
		return internalError(c, err)
	}
	return c.JSON(item)
}

// Delete handles DELETE /api/inventory/:id.
func (h *Handlers) Delete(c *fiber.Ctx) error {
	if err := h.service.Delete(c.Context(), c.Params("id")); err != nil {
		if errors.Is(err, inventory.ErrNotFound) {
			return notFound(c, err)
		}
		return internalError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// AdjustQuantity handles PATCH /api/inventory/quantity/:productCode.
func (h *Handlers) AdjustQuantity(c *fiber.Ctx) error {
	var req QuantityChangeRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request body")
	}
	if req.QuantityChange == nil {
		return badRequest(c, "quantityChange is required")
	}

	item, err := h.service.AdjustQuantity(c.Context(), c.Params("productCode"), *req.QuantityChange)
	if err != nil {
		switch {
		case errors.Is(err, inventory.ErrNotFound):
			return notFound(c, err)
		case errors.Is(err, inventory.ErrQuantityBelowZero):
			return badRequest(c, err.Error())
		default:
			return internalError(c, err)
		}
	}
	return c.JSON(item)
}

// CheckStock handles GET /api/inventory/check-stock/:productCode.
// It never fails: any internal error reads as out of stock.
func (h *Handlers) CheckStock(c *fiber.Ctx) error {
	quantity := c.QueryInt("quantity", 1)

	inStock, err := h.service.IsInStock(c.Context(), c.Params("productCode"), quantity)
	if err != nil {
		inStock = false
	}
	return c.JSON(StockStatusResponse{InStock: inStock})
}

// LowStock handles GET /api/inventory/low-stock.
func (h *Handlers) LowStock(c *fiber.Ctx) error {
	threshold := c.QueryInt("threshold", inventory.DefaultStockThreshold)

	items, err := h.service.LowStock(c.Context(), threshold)
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(items)
}

func notFound(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusNotFound).JSON(ErrorDetails{
		Timestamp: time.Now(),
		Message:   err.Error(),
		Details:   "uri=" + c.OriginalURL(),
	})
}

func badRequest(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(ErrorDetails{
		Timestamp: time.Now(),
		Message:   message,
		Details:   "uri=" + c.OriginalURL(),
	})
}

func internalError(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusInternalServerError).JSON(ErrorDetails{
		Timestamp: time.Now(),
		Message:   err.Error(),
		Details:   "uri=" + c.OriginalURL(),
	})
}
