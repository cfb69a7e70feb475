package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// PingResponse represents the response for the ping endpoint
type PingResponse struct {
	Message     string `json:"message" example:"pong"`  // Response message
	Places      int    `json:"places" example:"8"`      // Places currently loaded
	Subscribers int    `json:"subscribers" example:"0"` // Open notification streams
}

// handlePing godoc
// @Summary Ping health check
// @Description Check if the API is running and how many places are loaded
// @Tags health
// @Produce json
// @Success 200 {object} PingResponse
// @Router /ping [get]
func (app *App) handlePing(c *gin.Context) {
	c.JSON(http.StatusOK, PingResponse{
		Message:     "pong",
		Places:      len(app.locationService.Places()),
		Subscribers: app.broadcaster.Subscribers(),
	})
}
