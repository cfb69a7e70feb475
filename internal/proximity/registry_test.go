package proximity

import (
	"errors"
	"testing"

	"whereabouts/internal/dataset"
	"whereabouts/internal/place"
	"whereabouts/internal/types"
)

func TestNewGeofence(t *testing.T) {
	p := place.FromRecord(dataset.PlaceRecord{Name: "Cloud Gate", Latitude: 41.8826, Longitude: -87.6226}, 0)

	g, err := NewGeofence(p, 200)
	if err != nil {
		t.Fatalf("NewGeofence() unexpected error = %v", err)
	}
	if g.ID != p.ID || g.PlaceID != p.ID || g.Name != "Cloud Gate" {
		t.Errorf("geofence identity = %+v", g)
	}
	if !g.NotifyOnEntry || g.NotifyOnExit || !g.Repeats {
		t.Errorf("trigger flags = entry:%v exit:%v repeats:%v, want true false true", g.NotifyOnEntry, g.NotifyOnExit, g.Repeats)
	}

	tests := []struct {
		name   string
		coords types.Coords
		radius float64
	}{
		{name: "latitude out of range", coords: types.NewCoords(-95, 0), radius: 200},
		{name: "longitude out of range", coords: types.NewCoords(0, 181), radius: 200},
		{name: "zero radius", coords: types.NewCoords(0, 0), radius: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bad := place.FromRecord(dataset.PlaceRecord{Name: "x", Latitude: tt.coords.Latitude, Longitude: tt.coords.Longitude}, 0)
			if _, err := NewGeofence(bad, tt.radius); !errors.Is(err, ErrRegistrationFailed) {
				t.Errorf("NewGeofence() error = %v, want %v", err, ErrRegistrationFailed)
			}
		})
	}
}

func TestGeofence_Contains(t *testing.T) {
	g := Geofence{Center: types.NewCoords(41.8826, -87.6226), RadiusMeters: 200}

	tests := []struct {
		name   string
		coords types.Coords
		want   bool
	}{
		{name: "center", coords: types.NewCoords(41.8826, -87.6226), want: true},
		{name: "~50m north", coords: types.NewCoords(41.88305, -87.6226), want: true},
		{name: "~150m east", coords: types.NewCoords(41.8826, -87.6208), want: true},
		{name: "~340m away", coords: types.NewCoords(41.8796, -87.6237), want: false},
		{name: "~500m south", coords: types.NewCoords(41.8781, -87.6226), want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := g.Contains(tt.coords); got != tt.want {
				t.Errorf("Contains(%+v) = %v, want %v", tt.coords, got, tt.want)
			}
		})
	}
}

func TestRegistry(t *testing.T) {
	r := NewRegistry()
	a := Geofence{ID: "a", Name: "A", Center: types.NewCoords(41.8826, -87.6226), RadiusMeters: 200}
	b := Geofence{ID: "b", Name: "B", Center: types.NewCoords(41.9484, -87.6553), RadiusMeters: 200}

	if err := r.Register(a); err != nil {
		t.Fatal(err)
	}
	if err := r.Register(b); err != nil {
		t.Fatal(err)
	}
	if err := r.Register(a); !errors.Is(err, ErrRegistrationFailed) {
		t.Errorf("duplicate Register() error = %v, want %v", err, ErrRegistrationFailed)
	}
	if r.Len() != 2 {
		t.Errorf("Len() = %d, want 2", r.Len())
	}

	hits := r.Containing(types.NewCoords(41.8826, -87.6226))
	if len(hits) != 1 || hits[0].ID != "a" {
		t.Errorf("Containing(A) = %+v", hits)
	}
	if hits := r.Containing(types.NewCoords(0, 0)); len(hits) != 0 {
		t.Errorf("Containing(0,0) = %+v", hits)
	}

	all := r.Geofences()
	if len(all) != 2 || all[0].ID != "a" || all[1].ID != "b" {
		t.Errorf("Geofences() = %+v", all)
	}

	if removed := r.UnregisterAll(); removed != 2 {
		t.Errorf("UnregisterAll() = %d, want 2", removed)
	}
	if r.Len() != 0 || len(r.Containing(a.Center)) != 0 {
		t.Error("registry not empty after UnregisterAll")
	}
	if err := r.Register(a); err != nil {
		t.Errorf("Register() after UnregisterAll error = %v", err)
	}
}

func TestRegistry_Antimeridian(t *testing.T) {
	tests := []struct {
		name   string
		center types.Coords
		user   types.Coords
	}{
		{name: "east of the seam, user west", center: types.NewCoords(0, 179.9995), user: types.NewCoords(0, -179.9995)},
		{name: "west of the seam, user east", center: types.NewCoords(0, -179.9995), user: types.NewCoords(0, 179.9995)},
		{name: "user on the seam", center: types.NewCoords(0, 179.9995), user: types.NewCoords(0, 180)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRegistry()
			if err := r.Register(Geofence{ID: "seam", Center: tt.center, RadiusMeters: 200}); err != nil {
				t.Fatal(err)
			}

			hits := r.Containing(tt.user)
			if len(hits) != 1 || hits[0].ID != "seam" {
				t.Errorf("Containing(%+v) = %+v, want one hit", tt.user, hits)
			}
			if hits := r.Containing(types.NewCoords(0, 0)); len(hits) != 0 {
				t.Errorf("Containing(0,0) = %+v, want none", hits)
			}
		})
	}
}
