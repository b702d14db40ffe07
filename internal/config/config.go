package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cast"
)

// Config is the runtime configuration read from the environment.
type Config struct {
	Port           string
	MaxUploadBytes int64
	SessionTTL     time.Duration
	SessionSweep   string
	LogLevel       string
	LogFormat      string
	AllowedOrigins []string
	HistogramBins  int
}

// Get returns the environment value for key, or fallback when unset or empty.
func Get(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

// Load reads the configuration, applying defaults for unset variables.
func Load() (Config, error) {
	maxUpload, err := cast.ToInt64E(Get("MAX_UPLOAD_BYTES", "33554432"))
	if err != nil {
		return Config{}, fmt.Errorf("load config: MAX_UPLOAD_BYTES: %w", err)
	}
	if maxUpload <= 0 {
		return Config{}, fmt.Errorf("load config: MAX_UPLOAD_BYTES must be positive, got %d", maxUpload)
	}

	ttl, err := cast.ToDurationE(Get("SESSION_TTL", "30m"))
	if err != nil {
		return Config{}, fmt.Errorf("load config: SESSION_TTL: %w", err)
	}
	// unitless values parse as nanoseconds
	if ttl < time.Second {
		return Config{}, fmt.Errorf("load config: SESSION_TTL must be at least 1s with a unit, got %q", Get("SESSION_TTL", "30m"))
	}

	bins, err := cast.ToIntE(Get("HISTOGRAM_BINS", "40"))
	if err != nil {
		return Config{}, fmt.Errorf("load config: HISTOGRAM_BINS: %w", err)
	}
	if bins < 1 || bins > 500 {
		return Config{}, fmt.Errorf("load config: HISTOGRAM_BINS must be between 1 and 500, got %d", bins)
	}

	format := strings.ToLower(Get("LOG_FORMAT", "json"))
	if format != "json" && format != "text" {
		return Config{}, fmt.Errorf("load config: LOG_FORMAT must be json or text, got %q", format)
	}

	var origins []string
	for _, o := range strings.Split(Get("CORS_ALLOWED_ORIGINS", ""), ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}

	return Config{
		Port:           Get("PORT", "8080"),
		MaxUploadBytes: maxUpload,
		SessionTTL:     ttl,
		SessionSweep:   Get("SESSION_SWEEP", "@every 1m"),
		LogLevel:       strings.ToLower(Get("LOG_LEVEL", "info")),
		LogFormat:      format,
		AllowedOrigins: origins,
		HistogramBins:  bins,
	}, nil
}
