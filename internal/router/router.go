// internal/router/router.go
package router

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/freshcart/grocery-backend/internal/config"
	"github.com/freshcart/grocery-backend/internal/handlers"
	"github.com/freshcart/grocery-backend/internal/middleware"
	"github.com/freshcart/grocery-backend/internal/services"
	"github.com/freshcart/grocery-backend/internal/utils"
)

func Initialize(db *gorm.DB, redisClient *redis.Client, cfg *config.Config) *gin.Engine {
	// Initialize services
	storageService, _ := services.NewStorageService(cfg)
	cacheService := services.NewAnalyticsCacheService(redisClient, time.Duration(cfg.Redis.CacheTTL)*time.Second)

	authService := services.NewAuthService(db, cfg)
	productService := services.NewProductService(db)
	categoryService := services.NewCategoryService(db)
	bannerService := services.NewBannerService(db)
	orderService := services.NewOrderService(db)
	analyticsService := services.NewAnalyticsService(db, cfg, cacheService)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	productHandler := handlers.NewProductHandler(productService, storageService, analyticsService)
	categoryHandler := handlers.NewCategoryHandler(categoryService, storageService)
	bannerHandler := handlers.NewBannerHandler(bannerService, storageService)
	orderHandler := handlers.NewOrderHandler(orderService, analyticsService)
	analyticsHandler := handlers.NewAnalyticsHandler(analyticsService)

	// Set JWT secret
	utils.SetJWTSecret(cfg.JWT.SecretKey)

	// Initialize Gin router
	r := gin.New()

	// Global middleware
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORS([]string{cfg.Frontend.BaseURL}))
	r.Use(middleware.GeneralRateLimit())
	r.Use(middleware.AuditLogMiddleware(db))

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"version": "1.0.0",
		})
	})

	// API routes
	api := r.Group("/api")
	{
		// Authentication routes
		auth := api.Group("/auth")
		auth.Use(middleware.AuthRateLimit())
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
			auth.POST("/logout", middleware.AuthRequired(), authHandler.Logout)
			auth.POST("/refresh", authHandler.RefreshToken)
			auth.POST("/forgot-password", authHandler.ForgotPassword)
			auth.POST("/reset-password", authHandler.ResetPassword)
			auth.GET("/me", middleware.AuthRequired(), authHandler.GetProfile)

			// Admin-only account management
			auth.GET("/alluser", middleware.AuthRequired(), middleware.AdminRequired(), authHandler.ListUsers)
			auth.PUT("/users/:id/status", middleware.AuthRequired(), middleware.AdminRequired(), authHandler.UpdateUserStatus)
		}

		// Product routes
		products := api.Group("/products")
		{
			products.GET("", middleware.OptionalAuth(), productHandler.ListProducts)
			products.GET("/:id", middleware.OptionalAuth(), productHandler.GetProduct)

			protected := products.Group("")
			protected.Use(middleware.AuthRequired(), middleware.AdminRequired())
			{
				protected.POST("", productHandler.CreateProduct)
				protected.PUT("/:id", productHandler.UpdateProduct)
				protected.DELETE("/:id", productHandler.DeleteProduct)
				protected.PUT("/:id/stock", productHandler.AdjustStock)
				protected.POST("/upload", middleware.UploadRateLimit(), productHandler.UploadImage)
			}
		}

		// Category routes
		categories := api.Group("/categories")
		{
			categories.GET("", middleware.OptionalAuth(), categoryHandler.ListCategories)
			categories.GET("/:id", middleware.OptionalAuth(), categoryHandler.GetCategory)

			protected := categories.Group("")
			protected.Use(middleware.AuthRequired(), middleware.AdminRequired())
			{
				protected.POST("", categoryHandler.CreateCategory)
				protected.PUT("/:id", categoryHandler.UpdateCategory)
				protected.DELETE("/:id", categoryHandler.DeleteCategory)
				protected.POST("/upload", middleware.UploadRateLimit(), categoryHandler.UploadImage)
			}
		}

		// Subcategory routes
		subcategories := api.Group("/subcategories")
		{
			subcategories.GET("", middleware.OptionalAuth(), categoryHandler.ListSubcategories)

			protected := subcategories.Group("")
			protected.Use(middleware.AuthRequired(), middleware.AdminRequired())
			{
				protected.POST("", categoryHandler.CreateSubcategory)
				protected.PUT("/:id", categoryHandler.UpdateSubcategory)
				protected.DELETE("/:id", categoryHandler.DeleteSubcategory)
			}
		}

		// Banner routes
		banners := api.Group("/banners")
		{
			banners.GET("", middleware.OptionalAuth(), bannerHandler.ListBanners)
			banners.GET("/:id", middleware.OptionalAuth(), bannerHandler.GetBanner)

			protected := banners.Group("")
			protected.Use(middleware.AuthRequired(), middleware.AdminRequired())
			{
				protected.POST("", bannerHandler.CreateBanner)
				protected.PUT("/:id", bannerHandler.UpdateBanner)
				protected.DELETE("/:id", bannerHandler.DeleteBanner)
				protected.POST("/upload", middleware.UploadRateLimit(), bannerHandler.UploadImage)
			}
		}

		// Order routes
		orders := api.Group("/order")
		orders.Use(middleware.AuthRequired())
		{
			orders.POST("", orderHandler.CreateOrder)
			orders.GET("/mine", orderHandler.ListMyOrders)

			admin := orders.Group("")
			admin.Use(middleware.AdminRequired())
			{
				admin.GET("/all", orderHandler.ListOrders)
				admin.GET("/:id", orderHandler.GetOrder)
				admin.PUT("/:id/status", orderHandler.UpdateOrderStatus)
			}
		}

		// Analytics routes (admin only)
		analytics := api.Group("/analytics")
		analytics.Use(middleware.AuthRequired(), middleware.AdminRequired())
		{
			analytics.GET("/demand-trends", analyticsHandler.GetDemandTrends)
			analytics.GET("/catalog-stats", analyticsHandler.GetCatalogStats)
			analytics.GET("/dashboard", analyticsHandler.GetDashboardStats)
		}
	}

	return r
}
