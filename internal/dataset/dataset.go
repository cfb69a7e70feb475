// Package dataset loads the bundled points-of-interest dataset: an ordered list
// of place records plus the initial map viewport.
package dataset

import (
	"errors"

	"whereabouts/internal/types"
)

var (
	// ErrResourceNotFound indicates the dataset resource does not exist
	ErrResourceNotFound = errors.New("dataset resource not found")
	// ErrDecode indicates the resource does not match the dataset schema
	ErrDecode = errors.New("dataset decode error")
)

// DefaultRegion is the viewport used when no dataset region can be loaded
var DefaultRegion = RegionSpec{
	CenterLatitude:  41.8781,
	CenterLongitude: -87.6298,
	LatitudeSpan:    0.15,
	LongitudeSpan:   0.15,
}

// PlaceRecord is one point of interest as it appears in the dataset.
// Records are immutable once loaded.
type PlaceRecord struct {
	Name        string
	Description string
	Latitude    float64
	Longitude   float64
	Category    int
}

// Coords returns the record's coordinate
func (r PlaceRecord) Coords() types.Coords {
	return types.NewCoords(r.Latitude, r.Longitude)
}

// RegionSpec is the initial map viewport
type RegionSpec struct {
	CenterLatitude  float64
	CenterLongitude float64
	LatitudeSpan    float64
	LongitudeSpan   float64
}

// Region converts to the shared viewport type
func (r RegionSpec) Region() types.Region {
	return types.NewRegion(types.NewCoords(r.CenterLatitude, r.CenterLongitude), r.LatitudeSpan, r.LongitudeSpan)
}

// Dataset is the loaded, read-only collection of places and viewport
type Dataset struct {
	Places []PlaceRecord
	Region RegionSpec
}

// Empty returns the fallback dataset: no places and the default viewport
func Empty() Dataset {
	return Dataset{
		Places: []PlaceRecord{},
		Region: DefaultRegion,
	}
}

// Duplicates returns the names that appear on more than one record, in order
// of their first repeat. Favorites and notifications key off names, so
// duplicates make those associations ambiguous.
func Duplicates(ds Dataset) []string {
	seen := make(map[string]int, len(ds.Places))
	var dups []string
	for _, p := range ds.Places {
		seen[p.Name]++
		if seen[p.Name] == 2 {
			dups = append(dups, p.Name)
		}
	}
	return dups
}
