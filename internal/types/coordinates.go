package types

import "github.com/paulmach/orb"

type Coords struct {
	Latitude  float64 `json:"latitude" example:"41.8826"`
	Longitude float64 `json:"longitude" example:"-87.6226"`
}

func NewCoords(latitude, longitude float64) Coords {
	return Coords{
		Latitude:  latitude,
		Longitude: longitude,
	}
}

// Valid reports whether the coordinate lies within WGS84 bounds
func (c Coords) Valid() bool {
	return c.Latitude >= -90 && c.Latitude <= 90 &&
		c.Longitude >= -180 && c.Longitude <= 180
}

// Point converts to an orb point, which orders longitude first
func (c Coords) Point() orb.Point {
	return orb.Point{c.Longitude, c.Latitude}
}
