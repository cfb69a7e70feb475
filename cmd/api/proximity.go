package main

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"whereabouts/internal/location"
)

// UpdateLocationInput is the user's current location
type UpdateLocationInput struct {
	Latitude  *float64 `json:"latitude" binding:"required" example:"41.8826"`   // Latitude in decimal degrees
	Longitude *float64 `json:"longitude" binding:"required" example:"-87.6226"` // Longitude in decimal degrees
}

// handleUpdateLocation godoc
// @Summary Report the user's location
// @Description Feed a location update to the proximity notifier. Returns one notification per geofence the user has just entered.
// @Tags proximity
// @Accept json
// @Produce json
// @Param location body UpdateLocationInput true "Current location"
// @Success 200 {object} NotificationsResponse
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /location [post]
func (app *App) handleUpdateLocation(c *gin.Context) {
	var input UpdateLocationInput

	// Bind and validate body
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	notifications, err := app.locationService.UpdateLocation(c.Request.Context(), *input.Latitude, *input.Longitude)
	if err != nil {
		if errors.Is(err, location.ErrInvalidLatitude) || errors.Is(err, location.ErrInvalidLongitude) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		app.logger.Error("failed to update location",
			"latitude", *input.Latitude,
			"longitude", *input.Longitude,
			"error", err,
		)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update location"})
		return
	}

	c.JSON(http.StatusOK, NotificationsResponse{Notifications: notifications})
}

// handleNotificationStream godoc
// @Summary Stream proximity notifications
// @Description Server-sent events, one "notification" event per geofence entry. Slow readers miss events.
// @Tags proximity
// @Produce text/event-stream
// @Success 200 {object} proximity.Notification
// @Router /notifications/stream [get]
func (app *App) handleNotificationStream(c *gin.Context) {
	ch, cancel := app.broadcaster.Subscribe()
	defer cancel()

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Status(http.StatusOK)
	c.Writer.Flush()

	ctx := c.Request.Context()
	c.Stream(func(w io.Writer) bool {
		select {
		case n, ok := <-ch:
			if !ok {
				return false
			}
			c.SSEvent("notification", n)
			return true
		case <-ctx.Done():
			return false
		}
	})
}
