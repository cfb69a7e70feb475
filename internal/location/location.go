// Package location is the map-surface service: the places on the map, their
// favorite state, and the proximity notifications for the user's location.
package location

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"whereabouts/internal/dataset"
	"whereabouts/internal/place"
	"whereabouts/internal/proximity"
	"whereabouts/internal/timezone"
	"whereabouts/internal/types"
)

var (
	ErrPlaceNotFound    = errors.New("place not found")
	ErrInvalidLatitude  = errors.New("latitude must be between -90 and 90")
	ErrInvalidLongitude = errors.New("longitude must be between -180 and 180")
)

// FocusSpan is the viewport span, in degrees, used to highlight one place
const FocusSpan = 0.008

// Service provides the operations a map rendering surface calls
type Service interface {
	// Region returns the initial map viewport
	Region() types.Region
	// Places returns the places to draw, in dataset order
	Places() []place.Place
	PlaceByID(id string) (place.Place, error)
	// Detail returns a place with its favorite state and local timezone
	Detail(ctx context.Context, id string) (*PlaceDetail, error)
	Favorites(ctx context.Context) ([]string, error)
	IsFavorite(ctx context.Context, name string) (bool, error)
	AddFavorite(ctx context.Context, name string) error
	RemoveFavorite(ctx context.Context, name string) error
	// ToggleFavorite flips a name's favorite state and returns the new state
	ToggleFavorite(ctx context.Context, name string) (bool, error)
	// SelectFavorite resolves a favorite chosen from the favorites list to
	// the viewport and detail the map should show
	SelectFavorite(ctx context.Context, name string) (*Focus, error)
	// UpdateLocation feeds the user's location to the proximity notifier
	UpdateLocation(ctx context.Context, latitude, longitude float64) ([]proximity.Notification, error)
	// StartProximity registers geofences for the current places
	StartProximity(ctx context.Context) error
	// Reload replaces the dataset and re-registers geofences
	Reload(ctx context.Context, ds dataset.Dataset) error
}

// FavoritesStore defines the favorite set operations the service needs
type FavoritesStore interface {
	List(ctx context.Context) ([]string, error)
	IsFavorite(ctx context.Context, name string) (bool, error)
	Add(ctx context.Context, name string) error
	Remove(ctx context.Context, name string) error
	Toggle(ctx context.Context, name string) (bool, error)
}

// ProximityNotifier defines the geofencing operations the service needs
type ProximityNotifier interface {
	Schedule(ctx context.Context, places []place.Place) (int, error)
	UpdateLocation(ctx context.Context, c types.Coords) ([]proximity.Notification, error)
}

// PlaceDetail is what the detail panel shows for a selected place
type PlaceDetail struct {
	Place        place.Place
	Favorite     bool
	FavoriteIcon string
	Marker       place.Marker
	Timezone     string
	LocalTime    *time.Time
}

// Focus is the result of choosing a favorite: where to move the map and
// what to show there
type Focus struct {
	Region types.Region
	Detail PlaceDetail
}

// locationService implements the Service interface
type locationService struct {
	catalog   atomic.Pointer[place.Catalog]
	favorites FavoritesStore
	notifier  ProximityNotifier
	timezones timezone.Service
	clock     func() time.Time
	logger    *slog.Logger
}

// NewLocationService creates the service for ds. notifier and timezones may
// be nil, which disables proximity notifications and timezone lookups.
func NewLocationService(
	ds dataset.Dataset,
	favorites FavoritesStore,
	notifier ProximityNotifier,
	timezones timezone.Service,
	logger *slog.Logger,
) Service {
	s := &locationService{
		favorites: favorites,
		notifier:  notifier,
		timezones: timezones,
		clock:     time.Now,
		logger:    logger.With("component", "location-service"),
	}
	s.catalog.Store(place.NewCatalog(ds))
	return s
}

func (s *locationService) Region() types.Region {
	return s.catalog.Load().Region().Region()
}

func (s *locationService) Places() []place.Place {
	return s.catalog.Load().Places()
}

func (s *locationService) PlaceByID(id string) (place.Place, error) {
	p, ok := s.catalog.Load().ByID(id)
	if !ok {
		return place.Place{}, fmt.Errorf("%w: %s", ErrPlaceNotFound, id)
	}
	return p, nil
}

func (s *locationService) Detail(ctx context.Context, id string) (*PlaceDetail, error) {
	p, err := s.PlaceByID(id)
	if err != nil {
		return nil, err
	}
	return s.detail(ctx, p)
}

func (s *locationService) detail(ctx context.Context, p place.Place) (*PlaceDetail, error) {
	favorite, err := s.favorites.IsFavorite(ctx, p.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to get favorite state: %w", err)
	}

	detail := &PlaceDetail{
		Place:        p,
		Favorite:     favorite,
		FavoriteIcon: place.FavoriteIconFor(favorite),
		Marker:       place.DefaultMarker,
	}

	if s.timezones != nil {
		local, tz, err := timezone.LocalTime(s.timezones, p.Coords, s.clock())
		if err != nil {
			s.logger.Warn("failed to determine timezone",
				"place", p.Name,
				"latitude", p.Coords.Latitude,
				"longitude", p.Coords.Longitude,
				"error", err,
			)
		} else {
			detail.Timezone = tz
			detail.LocalTime = &local
		}
	}

	return detail, nil
}

func (s *locationService) Favorites(ctx context.Context) ([]string, error) {
	return s.favorites.List(ctx)
}

func (s *locationService) IsFavorite(ctx context.Context, name string) (bool, error) {
	return s.favorites.IsFavorite(ctx, name)
}

func (s *locationService) AddFavorite(ctx context.Context, name string) error {
	return s.favorites.Add(ctx, name)
}

func (s *locationService) RemoveFavorite(ctx context.Context, name string) error {
	return s.favorites.Remove(ctx, name)
}

func (s *locationService) ToggleFavorite(ctx context.Context, name string) (bool, error) {
	favorite, err := s.favorites.Toggle(ctx, name)
	if err != nil {
		return false, err
	}
	s.logger.Info("favorite toggled", "name", name, "favorite", favorite)
	return favorite, nil
}

func (s *locationService) SelectFavorite(ctx context.Context, name string) (*Focus, error) {
	p, ok := s.catalog.Load().ByName(name)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrPlaceNotFound, name)
	}

	detail, err := s.detail(ctx, p)
	if err != nil {
		return nil, err
	}

	return &Focus{
		Region: types.NewRegion(p.Coords, FocusSpan, FocusSpan),
		Detail: *detail,
	}, nil
}

func (s *locationService) UpdateLocation(ctx context.Context, latitude, longitude float64) ([]proximity.Notification, error) {
	if latitude < -90 || latitude > 90 {
		return nil, ErrInvalidLatitude
	}
	if longitude < -180 || longitude > 180 {
		return nil, ErrInvalidLongitude
	}
	if s.notifier == nil {
		return []proximity.Notification{}, nil
	}
	return s.notifier.UpdateLocation(ctx, types.NewCoords(latitude, longitude))
}

func (s *locationService) StartProximity(ctx context.Context) error {
	if s.notifier == nil {
		return nil
	}
	_, err := s.notifier.Schedule(ctx, s.catalog.Load().Places())
	if errors.Is(err, proximity.ErrAuthorizationDenied) {
		// Not fatal: the map works without proximity notifications
		s.logger.Warn("proximity notifications disabled", "error", err)
		return nil
	}
	return err
}

func (s *locationService) Reload(ctx context.Context, ds dataset.Dataset) error {
	s.catalog.Store(place.NewCatalog(ds))
	s.logger.Info("dataset replaced", "places", len(ds.Places))

	if dups := dataset.Duplicates(ds); len(dups) > 0 {
		s.logger.Warn("dataset contains duplicate place names", "names", dups)
	}
	return s.StartProximity(ctx)
}
