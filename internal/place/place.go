// Package place turns dataset records into addressable, map-displayable places.
package place

import (
	"fmt"

	"github.com/google/uuid"

	"whereabouts/internal/dataset"
	"whereabouts/internal/types"
)

// namespace scopes the name-based UUIDs generated for places
var namespace = uuid.MustParse("6f1c1a52-4f0e-5c8e-9b61-8f6d2e0a7c41")

// Annotation is what a map rendering surface needs to draw a marker
type Annotation interface {
	Title() string
	Subtitle() string
	Coordinate() types.Coords
}

// Place is the runtime handle for one dataset record. It never carries
// favorite state; ask the favorites store instead.
type Place struct {
	ID          string
	Name        string
	Description string
	Coords      types.Coords
	Category    int
	Record      dataset.PlaceRecord
}

var _ Annotation = Place{}

// FromRecord builds a Place. ordinal distinguishes records that share a name
// and coordinate, so every record gets its own ID.
func FromRecord(record dataset.PlaceRecord, ordinal int) Place {
	return Place{
		ID:          newID(record, ordinal),
		Name:        record.Name,
		Description: record.Description,
		Coords:      record.Coords(),
		Category:    record.Category,
		Record:      record,
	}
}

// FromDataset builds places for every record, preserving order
func FromDataset(ds dataset.Dataset) []Place {
	seen := make(map[string]int, len(ds.Places))
	places := make([]Place, 0, len(ds.Places))
	for _, r := range ds.Places {
		key := idSeed(r, 0)
		places = append(places, FromRecord(r, seen[key]))
		seen[key]++
	}
	return places
}

func (p Place) Title() string            { return p.Name }
func (p Place) Subtitle() string         { return p.Description }
func (p Place) Coordinate() types.Coords { return p.Coords }

func newID(record dataset.PlaceRecord, ordinal int) string {
	return uuid.NewSHA1(namespace, []byte(idSeed(record, ordinal))).String()
}

func idSeed(record dataset.PlaceRecord, ordinal int) string {
	return fmt.Sprintf("%s|%.6f|%.6f|%d", record.Name, record.Latitude, record.Longitude, ordinal)
}
