package server

import (
	"katalog/internal/handlers"
	"katalog/internal/middleware"
	"katalog/internal/repositories"
	"katalog/internal/services"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// Deps are the collaborators the HTTP app is built from.
type Deps struct {
	ProductRepo repositories.ProductRepository
	// Events is optional.
	Events handlers.EventPublisher
	Logger *zap.Logger
	// Registry receives the HTTP metrics; a fresh one is created when nil.
	Registry *prometheus.Registry
}

// NewApp builds the Fiber app with middleware, product routes under /api,
// /health and /metrics. Every request runs in a server span from the global
// tracer provider, carried in the user context.
func NewApp(deps Deps) *fiber.App {
	registry := deps.Registry
	if registry == nil {
		registry = prometheus.NewRegistry()
		registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
	}
	metrics := middleware.NewMetrics(registry)

	productService := services.NewProductService(deps.ProductRepo)
	productHandler := handlers.NewProductHandler(productService, deps.Events, deps.Logger)

	app := fiber.New(fiber.Config{
		AppName: "katalog",
	})

	app.Use(requestid.New())
	app.Use(otelfiber.Middleware(
		otelfiber.WithSpanNameFormatter(func(c *fiber.Ctx) string {
			return c.Method() + " " + c.Route().Path
		}),
	))
	app.Use(middleware.RequestLogger(deps.Logger))
	app.Use(metrics.Handler())
	// innermost, so a panic still reaches the logger and metrics as a 500
	app.Use(recover.New())

	api := app.Group("/api")
	productHandler.RegisterRoutes(api)

	app.Get("/health", handlers.HandleHealth)
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))

	return app
}
