package place

// Marker describes how a rendering surface should draw a place pin
type Marker struct {
	ClusteringIdentifier string `json:"clustering_identifier" example:"Place"`
	TintColor            string `json:"tint_color" example:"systemBlue"`
	Glyph                string `json:"glyph" example:"pin.fill"`
}

// DefaultMarker is the style used for every place pin
var DefaultMarker = Marker{
	ClusteringIdentifier: "Place",
	TintColor:            "systemBlue",
	Glyph:                "pin.fill",
}

const (
	FavoriteIcon    = "star.fill"
	NotFavoriteIcon = "star"
)

// FavoriteIconFor returns the icon name for a place's favorite state
func FavoriteIconFor(favorite bool) string {
	if favorite {
		return FavoriteIcon
	}
	return NotFavoriteIcon
}
