// Package favorites keeps the user's set of favorite place names in
// preference storage.
package favorites

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"sync"

	"whereabouts/internal/prefs"
)

// Key is the preference key holding the favorites list
const Key = "Favorites"

// ErrInvalidName indicates an empty or blank place name
var ErrInvalidName = errors.New("place name is required")

// Store manages the favorite set. Names are not checked against any
// dataset: favoriting a name that no place carries still succeeds.
type Store struct {
	prefs  prefs.Store
	logger *slog.Logger
	// mu serialises read-modify-write cycles on the persisted list
	mu sync.Mutex
}

func NewStore(p prefs.Store, logger *slog.Logger) *Store {
	return &Store{
		prefs:  p,
		logger: logger.With("component", "favorites-store"),
	}
}

// List returns the favorites in the order they were added. The persisted
// list is initialised to empty the first time it is read.
func (s *Store) List(ctx context.Context) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.list(ctx)
}

// IsFavorite reports whether name is in the favorite set
func (s *Store) IsFavorite(ctx context.Context, name string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	favorites, err := s.list(ctx)
	if err != nil {
		return false, err
	}
	return slices.Contains(favorites, name), nil
}

// Add inserts name. Adding an existing favorite is a no-op.
func (s *Store) Add(ctx context.Context, name string) error {
	if err := validateName(name); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	favorites, err := s.list(ctx)
	if err != nil {
		return err
	}
	if slices.Contains(favorites, name) {
		return nil
	}
	return s.save(ctx, append(favorites, name))
}

// Remove deletes name. Removing an absent name is a no-op.
func (s *Store) Remove(ctx context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	favorites, err := s.list(ctx)
	if err != nil {
		return err
	}
	kept := slices.DeleteFunc(slices.Clone(favorites), func(f string) bool { return f == name })
	if len(kept) == len(favorites) {
		return nil
	}
	return s.save(ctx, kept)
}

// Toggle adds name if absent and removes it if present. It returns whether
// name is a favorite afterwards.
func (s *Store) Toggle(ctx context.Context, name string) (bool, error) {
	if err := validateName(name); err != nil {
		return false, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	favorites, err := s.list(ctx)
	if err != nil {
		return false, err
	}

	if slices.Contains(favorites, name) {
		kept := slices.DeleteFunc(slices.Clone(favorites), func(f string) bool { return f == name })
		if err := s.save(ctx, kept); err != nil {
			return true, err
		}
		s.logger.Debug("favorite removed", "name", name)
		return false, nil
	}

	if err := s.save(ctx, append(favorites, name)); err != nil {
		return false, err
	}
	s.logger.Debug("favorite added", "name", name)
	return true, nil
}

func (s *Store) list(ctx context.Context) ([]string, error) {
	favorites, ok, err := prefs.StringSlice(ctx, s.prefs, Key)
	if err != nil {
		return nil, fmt.Errorf("failed to read favorites: %w", err)
	}
	if ok {
		return favorites, nil
	}

	if err := prefs.SetStringSlice(ctx, s.prefs, Key, []string{}); err != nil {
		return nil, fmt.Errorf("failed to initialise favorites: %w", err)
	}
	return []string{}, nil
}

func (s *Store) save(ctx context.Context, favorites []string) error {
	if err := prefs.SetStringSlice(ctx, s.prefs, Key, favorites); err != nil {
		return fmt.Errorf("failed to save favorites: %w", err)
	}
	return nil
}

func validateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrInvalidName
	}
	return nil
}
