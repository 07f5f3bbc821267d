package router

import (
	"log/slog"
	"net/http"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/ndavydov/storefront/internal/metrics"
	"github.com/ndavydov/storefront/internal/server/http/handlers"
	"github.com/ndavydov/storefront/internal/server/http/middleware"
	"github.com/ndavydov/storefront/internal/session"
)

// adminRole gates catalog administration and file uploads.
const adminRole = "admin"

// Setup configures gin router with handlers and middleware.
func Setup(
	facade handlers.StorefrontFacade,
	store *session.Store,
	limiter *middleware.LoginLimiter,
	collector *metrics.Collector,
	registry *prometheus.Registry,
	logger *slog.Logger,
) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.CollectMetrics(collector))
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))
	engine.Use(middleware.WithSession(store))

	engine.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	engine.GET("/metrics", gin.WrapH(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))

	authHandler := handlers.NewAuthHandler(facade, store)
	catalogHandler := handlers.NewCatalogHandler(facade)
	cartHandler := handlers.NewCartHandler(facade)
	orderHandler := handlers.NewOrderHandler(facade)
	uploadHandler := handlers.NewUploadHandler(facade)

	api := engine.Group("/api")

	user := api.Group("/user")
	user.POST("/login", limiter.Middleware(), authHandler.Login)
	user.POST("/register", limiter.Middleware(), authHandler.Register)
	user.POST("/logout", authHandler.Logout)

	api.GET("/product", catalogHandler.List)
	api.GET("/product/search", catalogHandler.Search)
	api.GET("/product/:id", catalogHandler.Get)

	authed := api.Group("")
	authed.Use(middleware.AuthRequired())
	authed.GET("/cart", cartHandler.List)
	authed.POST("/cart/edit", cartHandler.Edit)
	authed.POST("/cart/checkout", cartHandler.Checkout)
	authed.GET("/order", orderHandler.List)
	authed.POST("/order", orderHandler.Place)
	authed.POST("/order/:id/cancel", orderHandler.Cancel)
	authed.POST("/payment", orderHandler.CreatePayment)
	authed.GET("/payment/:id/status", orderHandler.Status)
	authed.POST("/payment/:id/cancel", orderHandler.CancelPayment)

	admin := authed.Group("")
	admin.Use(middleware.RoleRequired(adminRole))
	admin.POST("/product", catalogHandler.Create)
	admin.POST("/file/policy", uploadHandler.Policy)
	admin.POST("/file/upload", uploadHandler.Upload)

	return engine
}
