package handlers

import (
	"errors"
	"fmt"

	"katalog/internal/logging"
	"katalog/internal/models"
	"katalog/internal/repositories"
	"katalog/internal/response"
	"katalog/internal/services"
	"katalog/internal/validation"
	"katalog/pkg/rabbitmq"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// EventPublisher receives product change events after a successful write.
type EventPublisher interface {
	PublishProductEvent(event rabbitmq.ProductEvent) error
}

// ProductHandler handles HTTP requests for products.
type ProductHandler struct {
	service   *services.ProductService
	validator *validation.Validator
	events    EventPublisher
	logger    *zap.Logger
}

// NewProductHandler creates a new ProductHandler. events may be nil, in which
// case no product events are published.
func NewProductHandler(service *services.ProductService, events EventPublisher, logger *zap.Logger) *ProductHandler {
	return &ProductHandler{
		service:   service,
		validator: validation.New(),
		events:    events,
		logger:    logger,
	}
}

// RegisterRoutes registers the product routes with the Fiber router.
func (h *ProductHandler) RegisterRoutes(router fiber.Router) {
	productRoutes := router.Group("/products")
	productRoutes.Post("/", h.HandleCreateProduct)
	productRoutes.Get("/", h.HandleGetProducts)
	productRoutes.Get("/:id", h.HandleGetProductByID)
	productRoutes.Put("/:id", h.HandleUpdateProduct)
	productRoutes.Delete("/:id", h.HandleDeleteProduct)
}

// HandleCreateProduct creates a new product.
func (h *ProductHandler) HandleCreateProduct(c *fiber.Ctx) error {
	var req models.CreateProductRequest
	if err := c.BodyParser(&req); err != nil {
		return response.Error(c, fiber.StatusBadRequest, "Invalid request body", err)
	}
	if errs := h.validator.ValidateCreate(req); len(errs) > 0 {
		return response.ValidationError(c, errs)
	}

	ctx := c.UserContext()
	product, err := h.service.CreateProduct(ctx, req.Name, *req.Price, *req.Stock)
	if err != nil {
		return h.writeError(c, "Could not create product", err)
	}

	h.publish(c, rabbitmq.ProductCreated, product.ID)
	return response.Success(c, fiber.StatusCreated, "Product created", models.NewProductResponse(product))
}

// HandleGetProducts retrieves all products.
func (h *ProductHandler) HandleGetProducts(c *fiber.Ctx) error {
	products, err := h.service.GetAllProducts(c.UserContext())
	if err != nil {
		return h.writeError(c, "Could not retrieve products", err)
	}
	return response.Success(c, fiber.StatusOK, "Products retrieved", models.NewProductResponses(products))
}

// HandleGetProductByID retrieves a single product by its ID.
func (h *ProductHandler) HandleGetProductByID(c *fiber.Ctx) error {
	productID := c.Params("id")
	product, err := h.service.GetProductByID(c.UserContext(), productID)
	if err != nil {
		return h.writeError(c, "Could not retrieve product", err)
	}
	if product == nil {
		return response.Error(c, fiber.StatusNotFound, "Product not found",
			fmt.Errorf("product with ID %s: %w", productID, repositories.ErrProductNotFound))
	}
	return response.Success(c, fiber.StatusOK, "Product retrieved", models.NewProductResponse(product))
}

// HandleUpdateProduct applies a partial update to a product.
func (h *ProductHandler) HandleUpdateProduct(c *fiber.Ctx) error {
	productID := c.Params("id")

	var req models.UpdateProductRequest
	if err := c.BodyParser(&req); err != nil {
		return response.Error(c, fiber.StatusBadRequest, "Invalid request body", err)
	}
	if errs := h.validator.ValidateUpdate(req); len(errs) > 0 {
		return response.ValidationError(c, errs)
	}

	product, err := h.service.UpdateProduct(c.UserContext(), productID, req.Fields())
	if err != nil {
		return h.writeError(c, "Could not update product", err)
	}

	h.publish(c, rabbitmq.ProductUpdated, product.ID)
	return response.Success(c, fiber.StatusOK, "Product updated", models.NewProductResponse(product))
}

// HandleDeleteProduct deletes a product and reports the number of rows removed.
func (h *ProductHandler) HandleDeleteProduct(c *fiber.Ctx) error {
	productID := c.Params("id")
	count, err := h.service.DeleteProduct(c.UserContext(), productID)
	if err != nil {
		return h.writeError(c, "Could not delete product", err)
	}

	if count > 0 {
		h.publish(c, rabbitmq.ProductDeleted, productID)
	}
	return response.Success(c, fiber.StatusOK, "Product deleted", count)
}

// writeError is the single place where a service error becomes a status code.
// A missing product on update is reported as a generic failure.
func (h *ProductHandler) writeError(c *fiber.Ctx, message string, err error) error {
	status := fiber.StatusInternalServerError
	if errors.Is(err, repositories.ErrInvalidProductID) {
		status = fiber.StatusBadRequest
	}

	logging.Error(c.UserContext(), h.logger, message,
		zap.String("path", c.Path()),
		zap.Int("status", status),
		zap.Error(err),
	)
	return response.Error(c, status, message, err)
}

func (h *ProductHandler) publish(c *fiber.Ctx, eventType, productID string) {
	if h.events == nil {
		return
	}
	if err := h.events.PublishProductEvent(rabbitmq.NewProductEvent(eventType, productID)); err != nil {
		logging.Warn(c.UserContext(), h.logger, "Failed to publish product event",
			zap.String("type", eventType),
			zap.String("product_id", productID),
			zap.Error(err),
		)
	}
}
