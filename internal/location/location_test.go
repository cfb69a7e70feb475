package location

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"whereabouts/internal/dataset"
	"whereabouts/internal/favorites"
	"whereabouts/internal/place"
	"whereabouts/internal/prefs"
	"whereabouts/internal/proximity"
	"whereabouts/internal/types"
)

// Mock collaborators for testing

type mockNotifier struct {
	scheduled   [][]place.Place
	scheduleErr error
	updates     []types.Coords
	response    []proximity.Notification
}

func (m *mockNotifier) Schedule(ctx context.Context, places []place.Place) (int, error) {
	m.scheduled = append(m.scheduled, places)
	if m.scheduleErr != nil {
		return 0, m.scheduleErr
	}
	return len(places), nil
}

func (m *mockNotifier) UpdateLocation(ctx context.Context, c types.Coords) ([]proximity.Notification, error) {
	m.updates = append(m.updates, c)
	return m.response, nil
}

type mockTimezone struct {
	zone string
	err  error
}

func (m *mockTimezone) GetTimezone(coords types.Coords) (string, error) {
	return m.zone, m.err
}

type failingFavorites struct {
	err error
}

func (f *failingFavorites) List(context.Context) ([]string, error)           { return nil, f.err }
func (f *failingFavorites) IsFavorite(context.Context, string) (bool, error) { return false, f.err }
func (f *failingFavorites) Add(context.Context, string) error                { return f.err }
func (f *failingFavorites) Remove(context.Context, string) error             { return f.err }
func (f *failingFavorites) Toggle(context.Context, string) (bool, error)     { return false, f.err }

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testDataset() dataset.Dataset {
	return dataset.Dataset{
		Places: []dataset.PlaceRecord{
			{Name: "Cloud Gate", Description: "The Bean", Latitude: 41.8826, Longitude: -87.6226, Category: 1},
			{Name: "Navy Pier", Description: "Lakefront pier", Latitude: 41.8917, Longitude: -87.6086, Category: 2},
		},
		Region: dataset.RegionSpec{CenterLatitude: 41.8781, CenterLongitude: -87.6298, LatitudeSpan: 0.15, LongitudeSpan: 0.15},
	}
}

func newTestService(t *testing.T, notifier ProximityNotifier, tz *mockTimezone) *locationService {
	t.Helper()
	store := favorites.NewStore(prefs.NewMemory(), testLogger())
	var svc Service
	if tz == nil {
		svc = NewLocationService(testDataset(), store, notifier, nil, testLogger())
	} else {
		svc = NewLocationService(testDataset(), store, notifier, tz, testLogger())
	}
	s := svc.(*locationService)
	s.clock = func() time.Time { return time.Date(2024, 1, 15, 18, 0, 0, 0, time.UTC) }
	return s
}

func TestLocationService_RegionAndPlaces(t *testing.T) {
	s := newTestService(t, nil, nil)

	region := s.Region()
	if region.Center.Latitude != 41.8781 || region.Center.Longitude != -87.6298 {
		t.Errorf("Region() center = %+v, want 41.8781,-87.6298", region.Center)
	}
	if region.Span.LatitudeDelta != 0.15 || region.Span.LongitudeDelta != 0.15 {
		t.Errorf("Region() span = %+v, want 0.15x0.15", region.Span)
	}

	places := s.Places()
	if len(places) != 2 {
		t.Fatalf("Places() returned %d places, want 2", len(places))
	}
	if places[0].Name != "Cloud Gate" || places[1].Name != "Navy Pier" {
		t.Errorf("Places() order = %q, %q", places[0].Name, places[1].Name)
	}
}

func TestLocationService_Detail(t *testing.T) {
	tests := []struct {
		name         string
		tz           *mockTimezone
		favorite     bool
		id           func(s *locationService) string
		wantErr      error
		wantTimezone string
		wantIcon     string
		wantLocal    bool
	}{
		{
			name:         "favorite place with timezone",
			tz:           &mockTimezone{zone: "America/Chicago"},
			favorite:     true,
			id:           func(s *locationService) string { return s.Places()[0].ID },
			wantTimezone: "America/Chicago",
			wantIcon:     place.FavoriteIcon,
			wantLocal:    true,
		},
		{
			name:     "not favorite",
			tz:       &mockTimezone{zone: "America/Chicago"},
			id:       func(s *locationService) string { return s.Places()[1].ID },
			wantIcon: place.NotFavoriteIcon,
			// timezone still resolved
			wantTimezone: "America/Chicago",
			wantLocal:    true,
		},
		{
			name:     "timezone lookup failure is not fatal",
			tz:       &mockTimezone{err: errors.New("lookup failed")},
			id:       func(s *locationService) string { return s.Places()[0].ID },
			wantIcon: place.NotFavoriteIcon,
		},
		{
			name:     "timezone disabled",
			id:       func(s *locationService) string { return s.Places()[0].ID },
			wantIcon: place.NotFavoriteIcon,
		},
		{
			name:    "unknown id",
			id:      func(s *locationService) string { return "missing" },
			wantErr: ErrPlaceNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestService(t, nil, tt.tz)
			ctx := context.Background()
			id := tt.id(s)

			if tt.favorite {
				p, err := s.PlaceByID(id)
				if err != nil {
					t.Fatalf("PlaceByID() error = %v", err)
				}
				if err := s.AddFavorite(ctx, p.Name); err != nil {
					t.Fatalf("AddFavorite() error = %v", err)
				}
			}

			detail, err := s.Detail(ctx, id)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Detail() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Detail() unexpected error = %v", err)
			}

			if detail.Favorite != tt.favorite {
				t.Errorf("Favorite = %v, want %v", detail.Favorite, tt.favorite)
			}
			if detail.FavoriteIcon != tt.wantIcon {
				t.Errorf("FavoriteIcon = %q, want %q", detail.FavoriteIcon, tt.wantIcon)
			}
			if detail.Marker != place.DefaultMarker {
				t.Errorf("Marker = %+v, want default", detail.Marker)
			}
			if detail.Timezone != tt.wantTimezone {
				t.Errorf("Timezone = %q, want %q", detail.Timezone, tt.wantTimezone)
			}
			if (detail.LocalTime != nil) != tt.wantLocal {
				t.Errorf("LocalTime = %v, want set=%v", detail.LocalTime, tt.wantLocal)
			}
			if tt.wantLocal && detail.LocalTime.Hour() != 12 {
				t.Errorf("LocalTime hour = %d, want 12", detail.LocalTime.Hour())
			}
		})
	}
}

func TestLocationService_Detail_FavoritesError(t *testing.T) {
	storageErr := errors.New("disk full")
	svc := NewLocationService(testDataset(), &failingFavorites{err: storageErr}, nil, nil, testLogger())

	_, err := svc.Detail(context.Background(), svc.Places()[0].ID)
	if !errors.Is(err, storageErr) {
		t.Fatalf("Detail() error = %v, want %v", err, storageErr)
	}
	if !strings.Contains(err.Error(), "favorite state") {
		t.Errorf("Detail() error = %q, want context about favorite state", err)
	}
}

func TestLocationService_ToggleFavorite(t *testing.T) {
	s := newTestService(t, nil, nil)
	ctx := context.Background()

	got, err := s.ToggleFavorite(ctx, "Cloud Gate")
	if err != nil || !got {
		t.Fatalf("first ToggleFavorite() = %v, %v; want true, nil", got, err)
	}

	favs, err := s.Favorites(ctx)
	if err != nil {
		t.Fatalf("Favorites() error = %v", err)
	}
	if len(favs) != 1 || favs[0] != "Cloud Gate" {
		t.Errorf("Favorites() = %v, want [Cloud Gate]", favs)
	}

	got, err = s.ToggleFavorite(ctx, "Cloud Gate")
	if err != nil || got {
		t.Fatalf("second ToggleFavorite() = %v, %v; want false, nil", got, err)
	}

	isFav, err := s.IsFavorite(ctx, "Cloud Gate")
	if err != nil || isFav {
		t.Errorf("IsFavorite() = %v, %v; want false, nil", isFav, err)
	}
}

func TestLocationService_SelectFavorite(t *testing.T) {
	s := newTestService(t, nil, nil)
	ctx := context.Background()

	if err := s.AddFavorite(ctx, "Navy Pier"); err != nil {
		t.Fatalf("AddFavorite() error = %v", err)
	}

	focus, err := s.SelectFavorite(ctx, "Navy Pier")
	if err != nil {
		t.Fatalf("SelectFavorite() error = %v", err)
	}
	if focus.Region.Center != types.NewCoords(41.8917, -87.6086) {
		t.Errorf("Region.Center = %+v, want Navy Pier", focus.Region.Center)
	}
	if focus.Region.Span.LatitudeDelta != FocusSpan || focus.Region.Span.LongitudeDelta != FocusSpan {
		t.Errorf("Region.Span = %+v, want %v", focus.Region.Span, FocusSpan)
	}
	if focus.Detail.Place.Name != "Navy Pier" || !focus.Detail.Favorite {
		t.Errorf("Detail = %+v, want favorite Navy Pier", focus.Detail)
	}

	if _, err := s.SelectFavorite(ctx, "Atlantis"); !errors.Is(err, ErrPlaceNotFound) {
		t.Errorf("SelectFavorite(unknown) error = %v, want ErrPlaceNotFound", err)
	}
}

func TestLocationService_UpdateLocation(t *testing.T) {
	tests := []struct {
		name    string
		lat     float64
		lon     float64
		wantErr error
	}{
		{name: "valid coordinates", lat: 41.8826, lon: -87.6226},
		{name: "latitude too high", lat: 90.1, lon: 0, wantErr: ErrInvalidLatitude},
		{name: "latitude too low", lat: -90.1, lon: 0, wantErr: ErrInvalidLatitude},
		{name: "longitude too high", lat: 0, lon: 180.1, wantErr: ErrInvalidLongitude},
		{name: "longitude too low", lat: 0, lon: -180.1, wantErr: ErrInvalidLongitude},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			notifier := &mockNotifier{response: []proximity.Notification{{PlaceName: "Cloud Gate"}}}
			s := newTestService(t, notifier, nil)

			got, err := s.UpdateLocation(context.Background(), tt.lat, tt.lon)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("UpdateLocation() error = %v, want %v", err, tt.wantErr)
				}
				if len(notifier.updates) != 0 {
					t.Errorf("notifier received %d updates, want 0", len(notifier.updates))
				}
				return
			}
			if err != nil {
				t.Fatalf("UpdateLocation() unexpected error = %v", err)
			}
			if len(got) != 1 || got[0].PlaceName != "Cloud Gate" {
				t.Errorf("UpdateLocation() = %+v", got)
			}
			if len(notifier.updates) != 1 || notifier.updates[0] != types.NewCoords(tt.lat, tt.lon) {
				t.Errorf("notifier updates = %+v", notifier.updates)
			}
		})
	}
}

func TestLocationService_UpdateLocation_ProximityDisabled(t *testing.T) {
	s := newTestService(t, nil, nil)

	got, err := s.UpdateLocation(context.Background(), 41.8826, -87.6226)
	if err != nil {
		t.Fatalf("UpdateLocation() error = %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Errorf("UpdateLocation() = %v, want empty slice", got)
	}
}

func TestLocationService_StartProximity(t *testing.T) {
	t.Run("schedules current places", func(t *testing.T) {
		notifier := &mockNotifier{}
		s := newTestService(t, notifier, nil)

		if err := s.StartProximity(context.Background()); err != nil {
			t.Fatalf("StartProximity() error = %v", err)
		}
		if len(notifier.scheduled) != 1 || len(notifier.scheduled[0]) != 2 {
			t.Errorf("scheduled = %+v, want one call with 2 places", notifier.scheduled)
		}
	})

	t.Run("authorization denied is not fatal", func(t *testing.T) {
		notifier := &mockNotifier{scheduleErr: proximity.ErrAuthorizationDenied}
		s := newTestService(t, notifier, nil)

		if err := s.StartProximity(context.Background()); err != nil {
			t.Errorf("StartProximity() error = %v, want nil", err)
		}
	})

	t.Run("other errors are returned", func(t *testing.T) {
		boom := errors.New("boom")
		notifier := &mockNotifier{scheduleErr: boom}
		s := newTestService(t, notifier, nil)

		if err := s.StartProximity(context.Background()); !errors.Is(err, boom) {
			t.Errorf("StartProximity() error = %v, want %v", err, boom)
		}
	})
}

func TestLocationService_Reload(t *testing.T) {
	notifier := &mockNotifier{}
	s := newTestService(t, notifier, nil)
	ctx := context.Background()
	oldID := s.Places()[0].ID

	replacement := dataset.Dataset{
		Places: []dataset.PlaceRecord{
			{Name: "Wrigley Field", Description: "Ballpark", Latitude: 41.9484, Longitude: -87.6553, Category: 3},
		},
		Region: dataset.RegionSpec{CenterLatitude: 41.9484, CenterLongitude: -87.6553, LatitudeSpan: 0.05, LongitudeSpan: 0.05},
	}

	if err := s.Reload(ctx, replacement); err != nil {
		t.Fatalf("Reload() error = %v", err)
	}

	places := s.Places()
	if len(places) != 1 || places[0].Name != "Wrigley Field" {
		t.Fatalf("Places() after reload = %+v", places)
	}
	if got := s.Region().Center; got != types.NewCoords(41.9484, -87.6553) {
		t.Errorf("Region().Center after reload = %+v", got)
	}
	if _, err := s.PlaceByID(oldID); !errors.Is(err, ErrPlaceNotFound) {
		t.Errorf("PlaceByID(old) error = %v, want ErrPlaceNotFound", err)
	}
	if len(notifier.scheduled) != 1 || notifier.scheduled[0][0].Name != "Wrigley Field" {
		t.Errorf("scheduled = %+v, want Wrigley Field", notifier.scheduled)
	}
}

func TestLocationService_ReloadWithRealNotifier(t *testing.T) {
	notifier := proximity.NewNotifier(proximity.Options{}, testLogger())
	store := favorites.NewStore(prefs.NewMemory(), testLogger())
	svc := NewLocationService(testDataset(), store, notifier, nil, testLogger())
	ctx := context.Background()

	if err := svc.StartProximity(ctx); err != nil {
		t.Fatalf("StartProximity() error = %v", err)
	}

	replacement := dataset.Dataset{
		Places: []dataset.PlaceRecord{
			{Name: "Navy Pier", Description: "Lakefront pier", Latitude: 41.8917, Longitude: -87.6086, Category: 2},
		},
		Region: testDataset().Region,
	}
	if err := svc.Reload(ctx, replacement); err != nil {
		t.Fatalf("Reload() error = %v", err)
	}

	// Cloud Gate was removed by the reload and must not trigger
	got, err := svc.UpdateLocation(ctx, 41.8826, -87.6226)
	if err != nil {
		t.Fatalf("UpdateLocation() error = %v", err)
	}
	if len(got) != 0 {
		t.Errorf("UpdateLocation(Cloud Gate) = %+v, want none", got)
	}

	got, err = svc.UpdateLocation(ctx, 41.8917, -87.6086)
	if err != nil {
		t.Fatalf("UpdateLocation() error = %v", err)
	}
	if len(got) != 1 || got[0].PlaceName != "Navy Pier" {
		t.Errorf("UpdateLocation(Navy Pier) = %+v, want one Navy Pier notification", got)
	}
}
