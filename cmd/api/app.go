package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/text/language"

	_ "whereabouts/docs" // Ensure docs are imported
	"whereabouts/internal/config"
	"whereabouts/internal/dataset"
	"whereabouts/internal/favorites"
	"whereabouts/internal/location"
	"whereabouts/internal/prefs"
	"whereabouts/internal/prefs/sqlite"
	"whereabouts/internal/proximity"
	"whereabouts/internal/timezone"
)

const shutdownTimeout = 5 * time.Second

// App encapsulates application dependencies
type App struct {
	router          *gin.Engine
	logger          *slog.Logger
	locationService location.Service
	broadcaster     *proximity.Broadcaster
	prefsCloser     io.Closer
	cfg             *config.Config
}

// NewApp creates a new application with injected dependencies
func NewApp(cfg *config.Config, logger *slog.Logger) (*App, error) {
	// Set Gin mode from configuration
	gin.SetMode(cfg.Server.GinMode)

	// Create Gin router. Place names may contain an escaped "/", so route
	// on the raw path and unescape parameters afterwards.
	router := gin.New()
	router.UseRawPath = true
	router.UnescapePathValues = true

	// Add middleware
	router.Use(gin.Recovery())

	ds := dataset.LoadOrDefault(cfg.Dataset.Path, logger)

	store, closer, err := openPrefs(cfg.Prefs.Path)
	if err != nil {
		return nil, err
	}

	// Timezone lookups are optional detail, so a failed init only logs
	tzSvc, err := timezone.NewService()
	if err != nil {
		logger.Warn("timezone lookups disabled", "error", err)
	}

	broadcaster := proximity.NewBroadcaster(16, logger)

	var notifier location.ProximityNotifier
	if cfg.Proximity.Enabled {
		notifier = proximity.NewNotifier(proximity.Options{
			RadiusMeters: cfg.Proximity.RadiusMeters,
			Authorizer:   proximity.StaticAuthorizer(cfg.Proximity.Authorized),
			Sink:         proximity.MultiSink{proximity.NewLogSink(logger), broadcaster},
			Renderer:     proximity.NewRenderer(language.Make(cfg.Notifications.Language)),
		}, logger)
	}

	app := &App{
		router: router,
		logger: logger,
		locationService: location.NewLocationService(
			ds,
			favorites.NewStore(store, logger),
			notifier,
			tzSvc,
			logger,
		),
		broadcaster: broadcaster,
		prefsCloser: closer,
		cfg:         cfg,
	}

	if err := app.locationService.StartProximity(context.Background()); err != nil {
		logger.Error("failed to schedule proximity notifications", "error", err)
	}

	// Register routes
	app.registerRoutes()

	return app, nil
}

func openPrefs(path string) (prefs.Store, io.Closer, error) {
	if path == ":memory:" {
		return prefs.NewMemory(), nil, nil
	}
	store, err := sqlite.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open preferences: %w", err)
	}
	return store, store, nil
}

// Run starts the HTTP server and blocks until ctx is done
func (app *App) Run(ctx context.Context, addr string) error {
	if app.cfg.Dataset.Watch && app.cfg.Dataset.Path != "" {
		go app.watchDataset(ctx)
	}

	srv := &http.Server{
		Addr:    addr,
		Handler: app.router,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func (app *App) watchDataset(ctx context.Context) {
	err := dataset.Watch(ctx, app.cfg.Dataset.Path, app.logger, func(ds dataset.Dataset) {
		if err := app.locationService.Reload(ctx, ds); err != nil {
			app.logger.Error("failed to reschedule proximity notifications", "error", err)
		}
	})
	if err != nil {
		app.logger.Error("dataset watcher stopped", "error", err)
	}
}

// Close releases the preference store
func (app *App) Close() error {
	if app.prefsCloser == nil {
		return nil
	}
	return app.prefsCloser.Close()
}
