package api

import (
	"net/http"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/stanleyHayes/stayup-api/internal/api/middleware"
)

// Handlers bundles every resource handler the router mounts
type Handlers struct {
	Coupons    *CouponHandler
	Products   *ProductHandler
	Categories *CategoryHandler
	Tags       *TagHandler
	Reviews    *ReviewHandler
	Customers  *CustomerHandler
	Shipping   *ShippingHandler
	Tax        *TaxHandler
}

// NewRouter builds the gin engine with the admin API mounted under
// /api/v1/admin
func NewRouter(h Handlers, log *zap.Logger) *gin.Engine {
	if os.Getenv("GIN_MODE") == "" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(middleware.RequestLogger(log))
	router.Use(middleware.Recovery(log))
	router.Use(middleware.Metrics())
	router.Use(cors.New(cors.Config{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Accept", "Authorization"},
	}))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	admin := router.Group("/api/v1/admin")
	{
		coupons := admin.Group("/coupons")
		{
			coupons.POST("", h.Coupons.Create)
			coupons.GET("", h.Coupons.List)
			coupons.GET("/:id", h.Coupons.Get)
			coupons.PUT("/:id", h.Coupons.Update)
			coupons.DELETE("/:id", h.Coupons.Delete)
		}

		products := admin.Group("/products")
		{
			products.POST("", h.Products.Create)
			products.GET("", h.Products.List)
			products.GET("/:id", h.Products.Get)
			products.PUT("/:id", h.Products.Update)
			products.DELETE("/:id", h.Products.Delete)
		}

		categories := admin.Group("/categories")
		{
			categories.POST("", h.Categories.Create)
			categories.GET("", h.Categories.List)
			categories.GET("/:id", h.Categories.Get)
			categories.PUT("/:id", h.Categories.Update)
			categories.DELETE("/:id", h.Categories.Delete)
		}

		tags := admin.Group("/tags")
		{
			tags.POST("", h.Tags.Create)
			tags.GET("", h.Tags.List)
			tags.GET("/:id", h.Tags.Get)
			tags.PUT("/:id", h.Tags.Update)
			tags.DELETE("/:id", h.Tags.Delete)
		}

		reviews := admin.Group("/reviews")
		{
			reviews.POST("", h.Reviews.Create)
			reviews.GET("", h.Reviews.List)
			reviews.GET("/:id", h.Reviews.Get)
			reviews.PUT("/:id", h.Reviews.Update)
			reviews.DELETE("/:id", h.Reviews.Delete)
		}

		customers := admin.Group("/customers")
		{
			customers.POST("", h.Customers.Create)
			customers.GET("", h.Customers.List)
			customers.GET("/:id", h.Customers.Get)
			customers.PUT("/:id", h.Customers.Update)
			customers.DELETE("/:id", h.Customers.Delete)
		}

		shippingClasses := admin.Group("/shipping-classes")
		{
			shippingClasses.POST("", h.Shipping.CreateClass)
			shippingClasses.POST("/bulk", h.Shipping.CreateClasses)
			shippingClasses.GET("", h.Shipping.ListClasses)
			shippingClasses.GET("/:id", h.Shipping.GetClass)
			shippingClasses.PUT("/:id", h.Shipping.UpdateClass)
			shippingClasses.DELETE("/:id", h.Shipping.DeleteClass)
		}

		shippingMethods := admin.Group("/shipping-methods")
		{
			shippingMethods.POST("", h.Shipping.CreateMethod)
			shippingMethods.GET("", h.Shipping.ListMethods)
			shippingMethods.GET("/:id", h.Shipping.GetMethod)
			shippingMethods.PUT("/:id", h.Shipping.UpdateMethod)
			shippingMethods.DELETE("/:id", h.Shipping.DeleteMethod)
		}

		shippingZones := admin.Group("/shipping-zones")
		{
			shippingZones.POST("", h.Shipping.CreateZone)
			shippingZones.GET("", h.Shipping.ListZones)
			shippingZones.GET("/:id", h.Shipping.GetZone)
			shippingZones.PUT("/:id", h.Shipping.UpdateZone)
			shippingZones.DELETE("/:id", h.Shipping.DeleteZone)
			shippingZones.POST("/:id/locations", h.Shipping.CreateZoneLocation)
			shippingZones.GET("/:id/locations", h.Shipping.ListZoneLocations)
		}

		zoneLocations := admin.Group("/zone-locations")
		{
			zoneLocations.GET("/:id", h.Shipping.GetZoneLocation)
			zoneLocations.PUT("/:id", h.Shipping.UpdateZoneLocation)
			zoneLocations.DELETE("/:id", h.Shipping.DeleteZoneLocation)
		}

		taxClasses := admin.Group("/tax-classes")
		{
			taxClasses.POST("", h.Tax.CreateClass)
			taxClasses.GET("", h.Tax.ListClasses)
			taxClasses.GET("/:id", h.Tax.GetClass)
			taxClasses.PUT("/:id", h.Tax.UpdateClass)
			taxClasses.DELETE("/:id", h.Tax.DeleteClass)
		}

		taxRates := admin.Group("/tax-rates")
		{
			taxRates.POST("", h.Tax.CreateRate)
			taxRates.GET("", h.Tax.ListRates)
			taxRates.GET("/:id", h.Tax.GetRate)
			taxRates.PUT("/:id", h.Tax.UpdateRate)
			taxRates.DELETE("/:id", h.Tax.DeleteRate)
		}
	}

	return router
}
