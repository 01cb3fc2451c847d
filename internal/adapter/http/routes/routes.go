package routes

import (
	"fmt"
	"net/http"
	"time"

	_ "insurance_quotes/docs"
	"insurance_quotes/internal/adapter/http/handlers"
	"insurance_quotes/internal/infrastructure/logger"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const (
	PathMetrics = "/metrics"
	PathSwagger = "/swagger/*any"
)

// NewCustomerRouter builds the customer-core HTTP API.
func NewCustomerRouter(h *handlers.CustomerQuoteHandler, metrics http.Handler, log *logger.Logger) *gin.Engine {
	router := newEngine(metrics, log)
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addCustomerQuoteRoutes(v1, h)
	return router
}

// NewPolicyRouter builds the policy-management HTTP API.
func NewPolicyRouter(h *handlers.UnderwritingHandler, metrics http.Handler, log *logger.Logger) *gin.Engine {
	router := newEngine(metrics, log)
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addUnderwritingRoutes(v1, h)
	return router
}

// NewServer wraps a router in an http.Server listening on port.
func NewServer(router http.Handler, port int) *http.Server {
	return &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}
}

func newEngine(metrics http.Handler, log *logger.Logger) *gin.Engine {
	router := gin.New()
	setMiddlewares(router, log)

	router.GET(PathSwagger, ginSwagger.WrapHandler(swaggerFiles.Handler))
	if metrics != nil {
		router.GET(PathMetrics, gin.WrapH(metrics))
	}
	return router
}

func setMiddlewares(router *gin.Engine, log *logger.Logger) {
	router.Use(requestLogger(log))
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		log.Error("recovered from panic", "path", c.Request.URL.Path, "panic", recovered)
		c.AbortWithStatus(http.StatusInternalServerError)
	}))
}

func requestLogger(log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		if c.FullPath() == PathMetrics {
			return
		}
		log.Info("http request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"latency", time.Since(start),
		)
	}
}
