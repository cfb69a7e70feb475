package types

// Span is the extent of a map viewport in degrees
type Span struct {
	LatitudeDelta  float64 `json:"latitude_delta" example:"0.15"`
	LongitudeDelta float64 `json:"longitude_delta" example:"0.15"`
}

// Region is a map viewport: a center coordinate and the span around it
type Region struct {
	Center Coords `json:"center"`
	Span   Span   `json:"span"`
}

func NewRegion(center Coords, latitudeDelta, longitudeDelta float64) Region {
	return Region{
		Center: center,
		Span: Span{
			LatitudeDelta:  latitudeDelta,
			LongitudeDelta: longitudeDelta,
		},
	}
}
