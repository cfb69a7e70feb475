package main

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"whereabouts/internal/favorites"
	"whereabouts/internal/location"
)

// handleListFavorites godoc
// @Summary List favorites
// @Description Favorite place names in the order they were added
// @Tags favorites
// @Produce json
// @Success 200 {object} FavoritesResponse
// @Failure 500 {object} map[string]string
// @Router /favorites [get]
func (app *App) handleListFavorites(c *gin.Context) {
	names, err := app.locationService.Favorites(c.Request.Context())
	if err != nil {
		app.logger.Error("failed to list favorites", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list favorites"})
		return
	}
	c.JSON(http.StatusOK, FavoritesResponse{Favorites: names})
}

// handleAddFavorite godoc
// @Summary Add a favorite
// @Description Mark a place name as favorite. Adding an existing favorite is a no-op.
// @Tags favorites
// @Produce json
// @Param name path string true "Place name" example(Cloud Gate)
// @Success 200 {object} FavoriteStatusResponse
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /favorites/{name} [put]
func (app *App) handleAddFavorite(c *gin.Context) {
	name := c.Param("name")
	if err := app.locationService.AddFavorite(c.Request.Context(), name); err != nil {
		app.favoriteError(c, "failed to add favorite", name, err)
		return
	}
	c.JSON(http.StatusOK, newFavoriteStatusResponse(name, true))
}

// handleRemoveFavorite godoc
// @Summary Remove a favorite
// @Description Unmark a place name. Removing a name that is not a favorite is a no-op.
// @Tags favorites
// @Produce json
// @Param name path string true "Place name" example(Cloud Gate)
// @Success 200 {object} FavoriteStatusResponse
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /favorites/{name} [delete]
func (app *App) handleRemoveFavorite(c *gin.Context) {
	name := c.Param("name")
	if err := app.locationService.RemoveFavorite(c.Request.Context(), name); err != nil {
		app.favoriteError(c, "failed to remove favorite", name, err)
		return
	}
	c.JSON(http.StatusOK, newFavoriteStatusResponse(name, false))
}

// handleToggleFavorite godoc
// @Summary Toggle a favorite
// @Description Flip a place name's favorite state and return the new state
// @Tags favorites
// @Produce json
// @Param name path string true "Place name" example(Cloud Gate)
// @Success 200 {object} FavoriteStatusResponse
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /favorites/{name}/toggle [post]
func (app *App) handleToggleFavorite(c *gin.Context) {
	name := c.Param("name")
	favorite, err := app.locationService.ToggleFavorite(c.Request.Context(), name)
	if err != nil {
		app.favoriteError(c, "failed to toggle favorite", name, err)
		return
	}
	c.JSON(http.StatusOK, newFavoriteStatusResponse(name, favorite))
}

// handleSelectFavorite godoc
// @Summary Select a favorite
// @Description Resolve a favorite chosen from the favorites list to the region the map should zoom to and the place detail to show
// @Tags favorites
// @Produce json
// @Param name path string true "Place name" example(Cloud Gate)
// @Success 200 {object} FocusResponse
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /favorites/{name}/select [post]
func (app *App) handleSelectFavorite(c *gin.Context) {
	name := c.Param("name")
	focus, err := app.locationService.SelectFavorite(c.Request.Context(), name)
	if err != nil {
		app.favoriteError(c, "failed to select favorite", name, err)
		return
	}
	c.JSON(http.StatusOK, FocusResponse{
		Region: focus.Region,
		Place:  newPlaceDetailResponse(focus.Detail),
	})
}

func (app *App) favoriteError(c *gin.Context, msg, name string, err error) {
	switch {
	case errors.Is(err, favorites.ErrInvalidName):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, location.ErrPlaceNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		app.logger.Error(msg, "name", name, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": msg})
	}
}
