package productapi

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/example/shop-services/modules/product"
	"github.com/example/shop-services/modules/validation"
)

// Handlers holds the HTTP handlers for the product REST surface.
type Handlers struct {
	service  *product.Service
	validate *validator.Validate
}

// NewHandlers creates the product handlers.
func NewHandlers(service *product.Service) *Handlers {
	return &Handlers{
		service:  service,
		validate: validation.New(),
	}
}

// Register mounts all product routes on the given app.
func (h *Handlers) Register(app *fiber.App) {
	app.Get("/health", h.Health)

	api := app.Group("/api/products")
	api.Get("/", h.List)
	api.Get("/category/:category", h.ByCategory)
	api.Get("/price", h.PriceUnder)
	api.Get("/search", h.Search)
	api.Get("/availability/:productCode", h.Availability)
	api.Get("/:id", h.GetByID)
	api.Post("/", h.Create)
	api.Put("/:id", h.Update)
	api.Delete("/:id", h.Delete)
}

// Health handles GET /health.
func (h *Handlers) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "healthy"})
}

// List handles GET /api/products.
func (h *Handlers) List(c *fiber.Ctx) error {
	products, err := h.service.GetAll(c.Context())
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(products)
}

// GetByID handles GET /api/products/:id.
func (h *Handlers) GetByID(c *fiber.Ctx) error {
	p, err := h.service.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, product.ErrNotFound) {
			return notFound(c, err)
		}
		return internalError(c, err)
	}
	return c.JSON(p)
}

// Create handles POST /api/products.
func (h *Handlers) Create(c *fiber.Ctx) error {
	var req ProductRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request body")
	}
	if err := h.validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(validation.Messages(err))
	}

	p, err := h.service.Create(c.Context(), &product.Product{
		Name:          req.Name,
		Description:   req.Description,
		Price:         req.Price,
		Category:      req.Category,
		StockQuantity: req.StockQuantity,
	})
	if err != nil {
		return internalError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(p)
}

// Update handles PUT /api/products/:id.
func (h *Handlers) Update(c *fiber.Ctx) error {
	var req ProductRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request body")
	}
	if err := h.validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(validation.Messages(err))
	}

	p, err := h.service.Update(c.Context(), c.Params("id"), &product.Product{
		Name:          req.Name,
		Description:   req.Description,
		Price:         req.Price,
		Category:      req.Category,
		StockQuantity: req.StockQuantity,
	})
	if err != nil {
		if errors.Is(err, product.ErrNotFound) {
			return notFound(c, err)
		}
		return internalError(c, err)
	}
	return c.JSON(p)
}

// Delete handles DELETE /api/products/:id.
func (h *Handlers) Delete(c *fiber.Ctx) error {
	if err := h.service.Delete(c.Context(), c.Params("id")); err != nil {
		if errors.Is(err, product.ErrNotFound) {
			return notFound(c, err)
		}
		return internalError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ByCategory handles GET /api/products/category/:category.
func (h *Handlers) ByCategory(c *fiber.Ctx) error {
	products, err := h.service.GetByCategory(c.Context(), c.Params("category"))
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(products)
}

// PriceUnder handles GET /api/products/price?max={price}.
func (h *Handlers) PriceUnder(c *fiber.Ctx) error {
	raw := c.Query("max")
	if raw == "" {
		return badRequest(c, "max query parameter is required")
	}
	max, err := decimal.NewFromString(raw)
	if err != nil {
		return badRequest(c, "max must be a decimal number")
	}

	products, err := h.service.GetWithPriceLessThan(c.Context(), max)
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(products)
}

// Search handles GET /api/products/search?name={name}.
func (h *Handlers) Search(c *fiber.Ctx) error {
	name := c.Query("name")
	if name == "" {
		return badRequest(c, "name query parameter is required")
	}

	products, err := h.service.SearchByName(c.Context(), name)
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(products)
}

// Availability handles GET /api/products/availability/:productCode.
// It proxies the inventory service's stock check; an unreachable
// inventory service reads as out of stock.
func (h *Handlers) Availability(c *fiber.Ctx) error {
	quantity := c.QueryInt("quantity", 1)

	inStock := h.service.IsProductInStock(c.Context(), c.Params("productCode"), quantity)
	return c.JSON(StockStatusResponse{InStock: inStock})
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
