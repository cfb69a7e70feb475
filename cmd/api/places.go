package main

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"whereabouts/internal/location"
	_ "whereabouts/internal/types" // imported for swagger type definitions
)

// handleGetRegion godoc
// @Summary Get the initial map region
// @Description Center and span of the viewport the map opens with
// @Tags map
// @Produce json
// @Success 200 {object} types.Region
// @Router /region [get]
func (app *App) handleGetRegion(c *gin.Context) {
	c.JSON(http.StatusOK, app.locationService.Region())
}

// handleListPlaces godoc
// @Summary List places
// @Description All points of interest in dataset order
// @Tags map
// @Produce json
// @Success 200 {object} PlacesResponse
// @Router /places [get]
func (app *App) handleListPlaces(c *gin.Context) {
	places := app.locationService.Places()
	resp := PlacesResponse{Places: make([]PlaceResponse, 0, len(places))}
	for _, p := range places {
		resp.Places = append(resp.Places, newPlaceResponse(p))
	}
	c.JSON(http.StatusOK, resp)
}

// handleGetPlace godoc
// @Summary Get place detail
// @Description A place with its favorite state, favorite icon, and local timezone
// @Tags map
// @Produce json
// @Param id path string true "Place ID"
// @Success 200 {object} PlaceDetailResponse
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /places/{id} [get]
func (app *App) handleGetPlace(c *gin.Context) {
	id := c.Param("id")

	detail, err := app.locationService.Detail(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, location.ErrPlaceNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}

		app.logger.Error("failed to get place detail",
			"id", id,
			"error", err,
		)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get place detail"})
		return
	}

	c.JSON(http.StatusOK, newPlaceDetailResponse(*detail))
}
