// Package v1 provides the HTTP API.
package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"biztime/internal/domain/company"
	"biztime/internal/domain/industry"
	"biztime/internal/domain/invoice"
	"biztime/internal/infrastructure/http/v1/handlers"
	"biztime/internal/infrastructure/http/v1/middleware"
	"biztime/internal/infrastructure/storage/postgres"
	"biztime/pkg/logger"
)

// RouterConfig holds router configuration.
type RouterConfig struct {
	// Logger for request logging
	Logger *logger.Logger

	// Pool is the database connection, used by health checks.
	// Health routes are skipped when nil (tests).
	Pool *postgres.Pool

	CompanyService  *company.Service
	InvoiceService  *invoice.Service
	IndustryService *industry.Service
}

// NewRouter creates and configures the Gin router.
func NewRouter(cfg RouterConfig) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()

	// Global middleware (order matters!)
	router.Use(middleware.Recovery())
	router.Use(middleware.Trace())
	router.Use(middleware.Logger(cfg.Logger))
	router.Use(middleware.ErrorHandler())

	// Any unmatched path is a JSON 404, same shape as every other error.
	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Not Found"})
	})

	if cfg.Pool != nil {
		healthHandler := handlers.NewHealthHandler(cfg.Pool)
		health := router.Group("/health")
		{
			health.GET("/live", healthHandler.Live)
			health.GET("/ready", healthHandler.Ready)
		}
	}

	base := handlers.NewBaseHandler()

	companyHandler := handlers.NewCompanyHandler(base, cfg.CompanyService)
	companies := router.Group("/companies")
	{
		companies.GET("", companyHandler.List)
		companies.POST("", companyHandler.Create)
		companies.GET("/:code", companyHandler.Get)
		companies.PUT("/:code", companyHandler.Update)
		companies.DELETE("/:code", companyHandler.Delete)
	}

	invoiceHandler := handlers.NewInvoiceHandler(base, cfg.InvoiceService)
	invoices := router.Group("/invoices")
	{
		invoices.GET("", invoiceHandler.List)
		invoices.POST("", invoiceHandler.Create)
		invoices.GET("/:id", invoiceHandler.Get)
		invoices.PUT("/:id", invoiceHandler.Update)
		invoices.DELETE("/:id", invoiceHandler.Delete)
	}

	industryHandler := handlers.NewIndustryHandler(base, cfg.IndustryService)
	industries := router.Group("/industries")
	{
		industries.GET("", industryHandler.List)
		industries.POST("", industryHandler.Create)
		industries.POST("/:code", industryHandler.Associate)
	}

	return router
}
