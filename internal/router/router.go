package router

import (
	"github.com/gin-gonic/gin"
	"github.com/seyirtepe/seyirtepe-backend/config"
	"github.com/seyirtepe/seyirtepe-backend/internal/app/controller"
	"github.com/seyirtepe/seyirtepe-backend/internal/middleware"
)

type Router struct {
	authController         *controller.AuthController
	categoryController     *controller.CategoryController
	productController      *controller.ProductController
	orderController        *controller.OrderController
	reservationController  *controller.ReservationController
	galleryController      *controller.GalleryController
	siteSettingsController *controller.SiteSettingsController
	authMiddleware         *middleware.AuthMiddleware
	config                 *config.Config
}

func NewRouter(
	authController *controller.AuthController,
	categoryController *controller.CategoryController,
	productController *controller.ProductController,
	orderController *controller.OrderController,
	reservationController *controller.ReservationController,
	galleryController *controller.GalleryController,
	siteSettingsController *controller.SiteSettingsController,
	authMiddleware *middleware.AuthMiddleware,
	cfg *config.Config,
) *Router {
	return &Router{
		authController:         authController,
		categoryController:     categoryController,
		productController:      productController,
		orderController:        orderController,
		reservationController:  reservationController,
		galleryController:      galleryController,
		siteSettingsController: siteSettingsController,
		authMiddleware:         authMiddleware,
		config:                 cfg,
	}
}

func (r *Router) Setup() *gin.Engine {
	gin.SetMode(r.config.Server.GinMode)

	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(middleware.LoggingMiddleware())
	router.Use(corsMiddleware(r.config.CORS.AllowedOrigins))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "healthy",
			"message": "Seyirtepe API is running",
		})
	})

	// Serve locally stored uploads
	router.Static("/uploads", r.config.Upload.Dir)

	admin := func() []gin.HandlerFunc {
		return []gin.HandlerFunc{
			r.authMiddleware.Authenticate(),
			r.authMiddleware.RequireAdmin(),
		}
	}

	v1 := router.Group("/api/v1")
	{
		auth := v1.Group("/auth")
		{
			auth.POST("/login", r.authController.Login)
		}

		categories := v1.Group("/categories")
		{
			categories.GET("", r.categoryController.GetCategories)
			categories.GET("/with-products", r.categoryController.GetCategoriesWithProducts)
			categories.GET("/:id", r.categoryController.GetCategory)
			categories.GET("/:id/with-products", r.categoryController.GetCategoryWithProducts)

			categories.POST("", append(admin(), r.categoryController.CreateCategory)...)
			categories.PUT("/:id", append(admin(), r.categoryController.UpdateCategory)...)
			categories.DELETE("/:id", append(admin(), r.categoryController.DeleteCategory)...)
		}

		products := v1.Group("/products")
		{
			products.GET("", r.productController.GetProducts)
			products.GET("/:id", r.productController.GetProduct)

			products.POST("", append(admin(), r.productController.CreateProduct)...)
			products.PUT("/:id", append(admin(), r.productController.UpdateProduct)...)
			products.DELETE("/:id", append(admin(), r.productController.DeleteProduct)...)
			products.POST("/upload-image", append(admin(), r.productController.UploadImage)...)
		}

		orders := v1.Group("/orders")
		{
			orders.POST("", r.orderController.CreateOrder)

			orders.GET("", append(admin(), r.orderController.GetOrders)...)
			orders.GET("/export", append(admin(), r.orderController.ExportOrders)...)
			orders.GET("/:id", append(admin(), r.orderController.GetOrder)...)
			orders.PATCH("/:id", append(admin(), r.orderController.UpdateOrderStatus)...)
			orders.DELETE("/:id", append(admin(), r.orderController.DeleteOrder)...)
		}

		reservations := v1.Group("/reservations")
		{
			reservations.POST("", r.reservationController.CreateReservation)

			reservations.GET("", append(admin(), r.reservationController.GetReservations)...)
			reservations.GET("/export", append(admin(), r.reservationController.ExportReservations)...)
			reservations.GET("/:id", append(admin(), r.reservationController.GetReservation)...)
			reservations.PATCH("/:id", append(admin(), r.reservationController.UpdateReservationStatus)...)
		}

		gallery := v1.Group("/gallery")
		{
			gallery.GET("", r.galleryController.GetImages)

			gallery.POST("", append(admin(), r.galleryController.CreateImage)...)
			gallery.PUT("/:id", append(admin(), r.galleryController.UpdateImage)...)
			gallery.DELETE("/:id", append(admin(), r.galleryController.DeleteImage)...)
			gallery.POST("/upload-image", append(admin(), r.galleryController.UploadImage)...)
		}

		settings := v1.Group("/site-settings")
		{
			settings.GET("", r.siteSettingsController.GetSettings)

			settings.POST("/logo", append(admin(), r.siteSettingsController.UploadLogo)...)
			settings.DELETE("/logo", append(admin(), r.siteSettingsController.DeleteLogo)...)
		}
	}

	return router
}

func corsMiddleware(allowedOrigins []string) gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")

		allowed := false
		for _, allowedOrigin := range allowedOrigins {
			if origin == allowedOrigin || allowedOrigin == "*" {
				allowed = true
				break
			}
		}

		if allowed {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		}

		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
