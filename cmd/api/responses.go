package main

import (
	"time"

	"whereabouts/internal/location"
	"whereabouts/internal/place"
	"whereabouts/internal/proximity"
	"whereabouts/internal/types"
)

// PlaceResponse is a place as drawn on the map
type PlaceResponse struct {
	ID          string       `json:"id" example:"0b6d3c58-61f5-5a57-9b8e-1f2f0c3f6e2a"`
	Name        string       `json:"name" example:"Cloud Gate"`
	Description string       `json:"description" example:"The Bean"`
	Coordinate  types.Coords `json:"coordinate"`
	Category    int          `json:"category" example:"1"`
	Marker      place.Marker `json:"marker"`
}

// PlaceDetailResponse is a place with its favorite state and local time
type PlaceDetailResponse struct {
	PlaceResponse
	Favorite     bool       `json:"favorite" example:"true"`
	FavoriteIcon string     `json:"favorite_icon" example:"star.fill"`
	Timezone     string     `json:"timezone,omitempty" example:"America/Chicago"`
	LocalTime    *time.Time `json:"local_time,omitempty"`
}

// PlacesResponse lists places in dataset order
type PlacesResponse struct {
	Places []PlaceResponse `json:"places"`
}

// FocusResponse tells the map where to move after a favorite is chosen
type FocusResponse struct {
	Region types.Region        `json:"region"`
	Place  PlaceDetailResponse `json:"place"`
}

// FavoritesResponse lists favorite names in the order they were added
type FavoritesResponse struct {
	Favorites []string `json:"favorites"`
}

// FavoriteStatusResponse is a name's favorite state after a change
type FavoriteStatusResponse struct {
	Name     string `json:"name" example:"Cloud Gate"`
	Favorite bool   `json:"favorite" example:"true"`
	Icon     string `json:"icon" example:"star.fill"`
}

// NotificationsResponse lists the notifications a location update triggered
type NotificationsResponse struct {
	Notifications []proximity.Notification `json:"notifications"`
}

func newPlaceResponse(p place.Place) PlaceResponse {
	return PlaceResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Coordinate:  p.Coords,
		Category:    p.Category,
		Marker:      place.DefaultMarker,
	}
}

func newPlaceDetailResponse(d location.PlaceDetail) PlaceDetailResponse {
	resp := PlaceDetailResponse{
		PlaceResponse: newPlaceResponse(d.Place),
		Favorite:      d.Favorite,
		FavoriteIcon:  d.FavoriteIcon,
		Timezone:      d.Timezone,
		LocalTime:     d.LocalTime,
	}
	resp.Marker = d.Marker
	return resp
}

func newFavoriteStatusResponse(name string, favorite bool) FavoriteStatusResponse {
	return FavoriteStatusResponse{
		Name:     name,
		Favorite: favorite,
		Icon:     place.FavoriteIconFor(favorite),
	}
}
