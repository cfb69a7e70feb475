package proximity

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/text/language"

	"whereabouts/internal/place"
	"whereabouts/internal/types"
)

// Options configures a Notifier. Zero values fall back to defaults.
type Options struct {
	RadiusMeters float64
	Authorizer   Authorizer
	Sink         Sink
	Renderer     *Renderer
	Clock        func() time.Time
	NewID        func() string
}

// Notifier owns the registered geofences and turns location updates into
// entry notifications.
type Notifier struct {
	mu         sync.Mutex
	registry   *Registry
	inside     map[string]bool
	radius     float64
	authorizer Authorizer
	sink       Sink
	renderer   *Renderer
	clock      func() time.Time
	newID      func() string
	logger     *slog.Logger
}

func NewNotifier(opts Options, logger *slog.Logger) *Notifier {
	logger = logger.With("component", "proximity-notifier")
	if opts.RadiusMeters <= 0 {
		opts.RadiusMeters = DefaultRadiusMeters
	}
	if opts.Authorizer == nil {
		opts.Authorizer = StaticAuthorizer(true)
	}
	if opts.Sink == nil {
		opts.Sink = NewLogSink(logger)
	}
	if opts.Renderer == nil {
		opts.Renderer = NewRenderer(language.English)
	}
	if opts.Clock == nil {
		opts.Clock = time.Now
	}
	if opts.NewID == nil {
		opts.NewID = uuid.NewString
	}
	return &Notifier{
		registry:   NewRegistry(),
		inside:     make(map[string]bool),
		radius:     opts.RadiusMeters,
		authorizer: opts.Authorizer,
		sink:       opts.Sink,
		renderer:   opts.Renderer,
		clock:      opts.Clock,
		newID:      opts.NewID,
		logger:     logger,
	}
}

// Schedule replaces the registered geofences with one per place. Geofences
// from an earlier Schedule are always unregistered first. If authorization
// is refused nothing is registered and ErrAuthorizationDenied is returned.
// A place whose geofence cannot be registered is logged and skipped.
func (n *Notifier) Schedule(ctx context.Context, places []place.Place) (int, error) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if removed := n.cancelLocked(); removed > 0 {
		n.logger.Info("unregistered previous geofences", "count", removed)
	}

	ok, err := n.authorizer.Authorized(ctx)
	if err != nil {
		n.logger.Warn("authorization check failed, proximity notifications disabled", "error", err)
		return 0, fmt.Errorf("%w: %v", ErrAuthorizationDenied, err)
	}
	if !ok {
		n.logger.Warn("not authorized, proximity notifications disabled")
		return 0, ErrAuthorizationDenied
	}

	registered := 0
	for _, p := range places {
		g, err := NewGeofence(p, n.radius)
		if err == nil {
			err = n.registry.Register(g)
		}
		if err != nil {
			n.logger.Error("failed to register geofence",
				"place", p.Name,
				"place_id", p.ID,
				"error", err,
			)
			continue
		}
		registered++
	}

	n.logger.Info("geofences registered",
		"count", registered,
		"radius_meters", n.radius,
	)
	return registered, nil
}

// Cancel unregisters every geofence and forgets which ones the user is inside
func (n *Notifier) Cancel() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.cancelLocked()
}

func (n *Notifier) cancelLocked() int {
	n.inside = make(map[string]bool)
	return n.registry.UnregisterAll()
}

// Geofences returns the registered geofences
func (n *Notifier) Geofences() []Geofence {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.registry.Geofences()
}

// UpdateLocation records the user's location and delivers a notification for
// every geofence entered since the previous update. Remaining inside a
// geofence or leaving it emits nothing.
func (n *Notifier) UpdateLocation(ctx context.Context, c types.Coords) ([]Notification, error) {
	if !c.Valid() {
		return nil, fmt.Errorf("%w: (%f, %f)", ErrInvalidLocation, c.Latitude, c.Longitude)
	}

	n.mu.Lock()
	containing := n.registry.Containing(c)
	inside := make(map[string]bool, len(containing))
	var entered []Geofence
	for _, g := range containing {
		inside[g.ID] = true
		if !n.inside[g.ID] && g.NotifyOnEntry {
			entered = append(entered, g)
		}
	}
	n.inside = inside
	n.mu.Unlock()

	notifications := make([]Notification, 0, len(entered))
	for _, g := range entered {
		notification := n.renderer.Render(g)
		notification.ID = n.newID()
		notification.CreatedAt = n.clock().UTC()

		if err := n.sink.Deliver(ctx, notification); err != nil {
			if errors.Is(err, context.Canceled) {
				return notifications, err
			}
			n.logger.Warn("failed to deliver notification",
				"place", g.Name,
				"error", err,
			)
		}
		notifications = append(notifications, notification)
	}
	return notifications, nil
}
