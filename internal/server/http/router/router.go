package router

import (
	"log/slog"
	"net/http"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/polkiloo/freightorders/internal/config"
	"github.com/polkiloo/freightorders/internal/server/http/dto"
	"github.com/polkiloo/freightorders/internal/server/http/handlers"
	"github.com/polkiloo/freightorders/internal/server/http/middleware"
)

// Setup configures gin router with handlers and middleware.
func Setup(
	service handlers.OrderService,
	health handlers.HealthChecker,
	cfg *config.Config,
	registry *prometheus.Registry,
	logger *slog.Logger,
) (*gin.Engine, error) {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.HandleMethodNotAllowed = true

	metrics, err := middleware.NewHTTPMetrics(registry)
	if err != nil {
		return nil, err
	}

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestID())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(metrics.Handler())
	engine.Use(middleware.CORS(cfg.CORSOrigins))
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	engine.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, dto.Envelope{Message: "method " + c.Request.Method + " is not allowed here"})
	})
	engine.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, dto.Envelope{Message: "route not found"})
	})

	orderHandler := handlers.NewOrderHandler(service)
	healthHandler := handlers.NewHealthHandler(health)

	api := engine.Group("/api")
	order := api.Group("/order")
	order.POST("/create", orderHandler.Create)
	order.GET("/query", orderHandler.Query)
	order.POST("/update", orderHandler.UpdateStatus)
	order.POST("/delete", orderHandler.Delete)
	order.POST("/restore", orderHandler.Restore)

	engine.GET("/health", healthHandler.Check)
	engine.GET("/metrics", gin.WrapH(promhttp.HandlerFor(registry, promhttp.HandlerOpts{Registry: registry})))

	return engine, nil
}
