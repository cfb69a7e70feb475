package timezone

import (
	"fmt"
	"sync"
	"time"
	_ "time/tzdata"

	"github.com/ringsaturn/tzf"

	"whereabouts/internal/types"
)

// Service resolves the IANA timezone of a coordinate
type Service interface {
	GetTimezone(coords types.Coords) (string, error)
}

// service implements timezone lookup using tzf
type service struct {
	finder tzf.F
	mu     sync.RWMutex
}

var (
	instance *service
	initErr  error
	once     sync.Once
)

// NewService creates or returns the shared timezone service.
// The tzf finder holds its polygon data in memory, so one instance is shared.
func NewService() (Service, error) {
	once.Do(func() {
		finder, err := tzf.NewDefaultFinder()
		if err != nil {
			initErr = fmt.Errorf("failed to initialize timezone finder: %w", err)
			return
		}
		instance = &service{finder: finder}
	})
	if initErr != nil {
		return nil, initErr
	}
	return instance, nil
}

// GetTimezone returns the IANA timezone name for the given coordinate,
// such as "America/Chicago"
func (s *service) GetTimezone(coords types.Coords) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	name := s.finder.GetTimezoneName(coords.Longitude, coords.Latitude)
	if name == "" {
		return "", fmt.Errorf("could not determine timezone for coordinates lat=%f, lon=%f", coords.Latitude, coords.Longitude)
	}
	return name, nil
}

// LocalTime converts now to the wall clock of the timezone containing coords
func LocalTime(svc Service, coords types.Coords, now time.Time) (time.Time, string, error) {
	name, err := svc.GetTimezone(coords)
	if err != nil {
		return time.Time{}, "", err
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return time.Time{}, "", fmt.Errorf("failed to load timezone location %s: %w", name, err)
	}
	return now.In(loc), name, nil
}
