package http

import (
	"github.com/gin-gonic/gin"
	"github.com/greenlens/backend/config"
	"github.com/greenlens/backend/internal/infrastructure/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

type routerOptions struct {
	logger   *zap.Logger
	metrics  *metrics.Metrics
	gatherer prometheus.Gatherer
}

// RouterOption customises SetupRouter
type RouterOption func(*routerOptions)

// WithLogger sets the request logger
func WithLogger(log *zap.Logger) RouterOption {
	return func(o *routerOptions) { o.logger = log }
}

// WithMetrics records request metrics and serves /metrics from gatherer
func WithMetrics(m *metrics.Metrics, gatherer prometheus.Gatherer) RouterOption {
	return func(o *routerOptions) {
		o.metrics = m
		o.gatherer = gatherer
	}
}

// SetupRouter creates and configures the Gin router
func SetupRouter(cfg *config.Config, handler *Handler, opts ...RouterOption) *gin.Engine {
	options := routerOptions{}
	for _, opt := range opts {
		opt(&options)
	}

	// Set Gin mode based on environment
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Global middleware
	router.Use(RecoveryMiddleware())
	router.Use(RequestIDMiddleware())
	router.Use(LoggerMiddleware(options.logger))
	if options.metrics != nil {
		router.Use(MetricsMiddleware(options.metrics))
	}
	router.Use(CORSMiddleware(cfg.Server.AllowedOrigins))

	// Health check endpoint
	router.GET("/health", handler.HealthCheck)

	if options.gatherer != nil && cfg.Metrics.Enabled {
		router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(options.gatherer, promhttp.HandlerOpts{})))
	}

	var onReject func()
	if options.metrics != nil {
		onReject = options.metrics.ObserveRateLimited
	}
	limiter := NewIPRateLimiter(cfg.RateLimit.PerIP, cfg.RateLimit.Burst)

	// API v1 routes
	v1 := router.Group("/api/v1")
	v1.Use(RateLimitMiddleware(limiter, onReject))
	v1.Use(SessionMiddleware())
	{
		v1.GET("/sections", handler.ListSections)
		v1.GET("/sections/:section/form", handler.GetSectionForm)
		v1.GET("/dashboard", handler.Dashboard)

		session := v1.Group("/session")
		{
			session.GET("", handler.GetSession)
			session.PUT("/section", handler.SwitchSection)
		}

		carbon := v1.Group("/carbon")
		{
			carbon.POST("/calculate", handler.CalculateCarbon)
			carbon.GET("/result", handler.GetCarbonResult)
		}

		esg := v1.Group("/esg")
		{
			esg.POST("/analyze", handler.AnalyzeESG)
			esg.GET("/result", handler.GetESGResult)
		}

		packaging := v1.Group("/packaging")
		{
			packaging.POST("/suggest", handler.SuggestPackaging)
			packaging.GET("/result", handler.GetPackagingResult)
		}

		products := v1.Group("/products")
		{
			products.POST("/recommend", handler.RecommendProducts)
			products.GET("/result", handler.GetProductsResult)
		}

		catalog := v1.Group("/catalog")
		{
			catalog.GET("", handler.ListCatalog)
			catalog.GET("/:id", handler.GetProduct)
		}
	}

	return router
}
