package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// registerRoutes sets up all API endpoints
func (app *App) registerRoutes() {
	// Health check endpoint
	app.router.GET("/ping", app.handlePing)

	// Map endpoints
	app.router.GET("/region", app.handleGetRegion)
	app.router.GET("/places", app.handleListPlaces)
	app.router.GET("/places/:id", app.handleGetPlace)

	// Favorites endpoints
	favorites := app.router.Group("/favorites")
	favorites.GET("", app.handleListFavorites)
	favorites.PUT("/:name", app.handleAddFavorite)
	favorites.DELETE("/:name", app.handleRemoveFavorite)
	favorites.POST("/:name/toggle", app.handleToggleFavorite)
	favorites.POST("/:name/select", app.handleSelectFavorite)

	// Proximity endpoints
	app.router.POST("/location", app.handleUpdateLocation)
	app.router.GET("/notifications/stream", app.handleNotificationStream)

	// Swagger documentation
	app.router.GET("/swagger/*any", func(c *gin.Context) {
		path := c.Param("any")
		if path == "/" {
			c.Redirect(http.StatusMovedPermanently, "/swagger/index.html")
			return
		}
		ginSwagger.WrapHandler(swaggerFiles.Handler)(c)
	})
}
