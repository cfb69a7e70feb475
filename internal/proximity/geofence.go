// Package proximity registers circular geofences around places and emits a
// local notification when the user's location enters one.
package proximity

import (
	"errors"
	"fmt"

	"github.com/paulmach/orb/geo"

	"whereabouts/internal/place"
	"whereabouts/internal/types"
)

// DefaultRadiusMeters is the geofence radius used when none is configured
const DefaultRadiusMeters = 200.0

var (
	// ErrAuthorizationDenied indicates location or notification permission was refused
	ErrAuthorizationDenied = errors.New("proximity authorization denied")
	// ErrRegistrationFailed indicates a geofence could not be registered
	ErrRegistrationFailed = errors.New("geofence registration failed")
	// ErrInvalidLocation indicates a location update outside WGS84 bounds
	ErrInvalidLocation = errors.New("invalid location")
)

// Geofence is a circular region around a place. Geofences fire on entry
// only, and fire again on every re-entry.
type Geofence struct {
	ID            string
	PlaceID       string
	Name          string
	Center        types.Coords
	RadiusMeters  float64
	NotifyOnEntry bool
	NotifyOnExit  bool
	Repeats       bool
}

// NewGeofence builds the geofence for p
func NewGeofence(p place.Place, radiusMeters float64) (Geofence, error) {
	if !p.Coords.Valid() {
		return Geofence{}, fmt.Errorf("%w: %q has invalid coordinate (%f, %f)",
			ErrRegistrationFailed, p.Name, p.Coords.Latitude, p.Coords.Longitude)
	}
	if radiusMeters <= 0 {
		return Geofence{}, fmt.Errorf("%w: radius must be positive, got %f", ErrRegistrationFailed, radiusMeters)
	}
	return Geofence{
		ID:            p.ID,
		PlaceID:       p.ID,
		Name:          p.Name,
		Center:        p.Coords,
		RadiusMeters:  radiusMeters,
		NotifyOnEntry: true,
		NotifyOnExit:  false,
		Repeats:       true,
	}, nil
}

// Contains reports whether c lies within the geofence
func (g Geofence) Contains(c types.Coords) bool {
	return geo.Distance(g.Center.Point(), c.Point()) <= g.RadiusMeters
}
