package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"leadportal-api/internal/middleware"
	"leadportal-api/internal/services"
)

// RouterConfig holds configuration for setting up routes
type RouterConfig struct {
	Services      *services.ServiceContainer
	UpstreamDebug bool
}

// SetupRoutes configures all API routes
func SetupRoutes(router *gin.Engine, config *RouterConfig) {
	crmHandler := NewCRMHandler(config.Services.CRMService, config.UpstreamDebug)
	paymentHandler := NewPaymentHandler(config.Services.PaymentService)
	orderHandler := NewOrderHandler(config.Services.OrderService)
	adminHandler := NewAdminHandler(config.Services.AdminService)

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "healthy",
			"service": "leadportal-api",
			"version": "1.0.0",
		})
	})

	// Anything but POST on the API routes is rejected with 405
	router.HandleMethodNotAllowed = true
	router.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{
			"error": "Method not allowed",
		})
	})
	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error":   "Not found",
		})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		admin := v1.Group("/admin")
		{
			admin.POST("/impersonation-lookup", adminHandler.ImpersonationLookup)
		}

		payments := v1.Group("/payments")
		{
			payments.POST("/create-intent", paymentHandler.CreateIntent)
		}

		orders := v1.Group("/orders")
		{
			orders.POST("/submit", orderHandler.SubmitOrder)
		}

		ghl := v1.Group("/ghl")
		{
			ghl.POST("/check-token-scopes", crmHandler.CheckTokenScopes)
			ghl.POST("/create-tag", crmHandler.CreateTag)
			ghl.POST("/get-custom-fields", crmHandler.GetCustomFields)
			ghl.POST("/get-locations", crmHandler.GetLocations)
			ghl.POST("/get-pipelines", crmHandler.GetPipelines)
			ghl.POST("/get-tags", crmHandler.GetTags)
			ghl.POST("/test-contacts", crmHandler.TestContacts)
			ghl.POST("/test-opportunities", crmHandler.TestOpportunities)
			ghl.POST("/test-tags", crmHandler.TestTags)
			ghl.POST("/validate-location", crmHandler.ValidateLocation)
		}
	}
}

// SetupMiddleware configures global middleware
func SetupMiddleware(router *gin.Engine) {
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS())

	// Rate limiting (100 requests per second, burst of 200)
	router.Use(middleware.RateLimiter(100, 200))

	router.Use(middleware.StructuredLogger())
	router.Use(middleware.ErrorHandler())
}
