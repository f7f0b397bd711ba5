package handlers

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"quotes-api/internal/config"
	"quotes-api/internal/middleware"
	"quotes-api/internal/services"
)

// RouterConfig holds configuration for setting up routes
type RouterConfig struct {
	QuoteService services.QuoteService
	RateLimit    config.RateLimitConfig
}

// SetupRoutes configures all API routes
func SetupRoutes(router *gin.Engine, cfg *RouterConfig) {
	quoteHandler := NewQuoteHandler(cfg.QuoteService)

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "healthy",
			"service": "quotes-api",
			"version": "1.0.0",
		})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	if cfg.RateLimit.Enabled {
		v1.Use(middleware.RateLimiter(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst))
	}
	{
		quotes := v1.Group("/quotes")
		{
			quotes.POST("", quoteHandler.CreateQuote)
			quotes.GET("", quoteHandler.ListQuotes)
			quotes.GET("/:id", quoteHandler.GetQuote)
			quotes.PUT("/:id", quoteHandler.UpdateQuote)
			quotes.DELETE("/:id", quoteHandler.DeleteQuote)
		}
	}
}
