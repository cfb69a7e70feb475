package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server        ServerConfig
	Log           LogConfig
	Dataset       DatasetConfig
	Prefs         PrefsConfig
	Proximity     ProximityConfig
	Notifications NotificationsConfig
}

// ServerConfig holds server-specific configuration
type ServerConfig struct {
	Port    int
	GinMode string // debug, release, test
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string // debug, info, warn, error
	Format string // json, text
}

// DatasetConfig selects the places dataset
type DatasetConfig struct {
	Path  string // empty uses the dataset built into the binary
	Watch bool   // reload the file when it changes
}

// PrefsConfig holds preference storage configuration
type PrefsConfig struct {
	Path string // sqlite database file, ":memory:" for an ephemeral store
}

// ProximityConfig holds geofencing configuration
type ProximityConfig struct {
	Enabled      bool
	Authorized   bool // whether the user granted notification permission
	RadiusMeters float64
}

// NotificationsConfig holds notification rendering configuration
type NotificationsConfig struct {
	Language string // BCP 47 tag, e.g. en, es
}

// Load reads configuration from the default config file locations and
// environment variables
func Load() (*Config, error) {
	return LoadFrom("")
}

// LoadFrom reads configuration from configFile, or from the default locations
// when configFile is empty
func LoadFrom(configFile string) (*Config, error) {
	v := viper.New()

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
		v.AddConfigPath("$HOME/.whereabouts")
	}

	// Set defaults
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.ginmode", "release")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("dataset.path", "")
	v.SetDefault("dataset.watch", false)
	v.SetDefault("prefs.path", "whereabouts.db")
	v.SetDefault("proximity.enabled", true)
	v.SetDefault("proximity.authorized", true)
	v.SetDefault("proximity.radiusMeters", 200)
	v.SetDefault("notifications.language", "en")

	// Read from environment variables, e.g. WHEREABOUTS_SERVER_PORT
	v.SetEnvPrefix("WHEREABOUTS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		// It's okay if config file doesn't exist, we have defaults
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &configFileNotFoundError) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// Unmarshal into config struct
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// GetServerAddr returns the server address in the format ":port"
func (c *Config) GetServerAddr() string {
	return fmt.Sprintf(":%d", c.Server.Port)
}

// NewLogger creates a new slog.Logger based on the configuration
func (c *Config) NewLogger() *slog.Logger {
	return c.newLogger(os.Stdout)
}

// NewStderrLogger is NewLogger for command line tools whose stdout carries
// the command's output
func (c *Config) NewStderrLogger() *slog.Logger {
	return c.newLogger(os.Stderr)
}

func (c *Config) newLogger(w *os.File) *slog.Logger {
	// Parse log level
	var level slog.Level
	switch strings.ToLower(c.Log.Level) {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn", "warning":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	// Create handler options
	opts := &slog.HandlerOptions{
		Level: level,
	}

	// Choose handler based on format
	var handler slog.Handler
	switch strings.ToLower(c.Log.Format) {
	case "json":
		handler = slog.NewJSONHandler(w, opts)
	default: // "text" or anything else
		handler = slog.NewTextHandler(w, opts)
	}

	return slog.New(handler)
}
