package router

import (
	"time"

	"github.com/Shangshirestaurant/ShangShiAllergenSelector/internal/menu"
	"github.com/Shangshirestaurant/ShangShiAllergenSelector/internal/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func NewRouter(menuHandler *menu.Handler, log *zap.Logger, origins []string) *gin.Engine {
	r := gin.New()

	r.Use(
		gin.Recovery(),
		middleware.RequestLogger(log),
		cors.New(cors.Config{
			AllowOrigins: origins,
			AllowMethods: []string{"GET", "POST", "OPTIONS"},
			AllowHeaders: []string{"Origin", "Content-Type", middleware.RequestIDHeader},
			MaxAge:       12 * time.Hour,
		}),
	)

	// Health check route
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ───────────────────────── MENU ─────────────────────────
	menus := r.Group("/menu")
	{
		menus.GET("", menuHandler.List)
		menus.GET("/filter", menuHandler.FilterQuery)
		menus.POST("/filter", menuHandler.FilterBody)
	}

	// ───────────────────────── CHIPS ─────────────────────────
	r.GET("/allergens", menuHandler.Allergens)
	r.GET("/categories", menuHandler.Categories)

	return r
}
