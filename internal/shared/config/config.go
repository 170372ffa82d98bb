package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/viper"

	"resume-renderer/internal/shared/storage/staging"
)

// Config holds application configuration.
type Config struct {
	Port            string
	Env             string
	CORSAllowOrigin []string
	MaxBodyBytes    int64
	StagingMode     string
	StagingDir      string
	MetricsEnabled  bool
}

// Load reads configuration from environment variables with sensible defaults.
func Load() (Config, error) {
	// Best-effort load of local env files for dev convenience.
	loadEnvFiles(".env", "cmd/.env")

	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()
	if err := bindEnv(v); err != nil {
		return Config{}, fmt.Errorf("bind env: %w", err)
	}

	cfg := Config{
		Port:            v.GetString("port"),
		Env:             normalizeEnv(v.GetString("env")),
		CORSAllowOrigin: splitAndTrim(v.GetString("cors.allow_origins")),
		MaxBodyBytes:    v.GetInt64("http.max_body_bytes"),
		StagingMode:     strings.ToLower(strings.TrimSpace(v.GetString("staging.mode"))),
		StagingDir:      v.GetString("staging.dir"),
		MetricsEnabled:  v.GetBool("metrics.enabled"),
	}
	if err := validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// MustLoad wraps Load and panics on failure.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		panic(err)
	}
	return cfg
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("port", "8080")
	v.SetDefault("env", "dev")
	v.SetDefault("cors.allow_origins", "http://localhost:5173")
	v.SetDefault("http.max_body_bytes", 1<<20)
	v.SetDefault("staging.mode", staging.ModeMemory)
	v.SetDefault("staging.dir", os.TempDir())
	v.SetDefault("metrics.enabled", true)
}

func bindEnv(v *viper.Viper) error {
	mappings := map[string]string{
		"port":                "PORT",
		"env":                 "ENV",
		"cors.allow_origins":  "CORS_ALLOW_ORIGINS",
		"http.max_body_bytes": "MAX_BODY_BYTES",
		"staging.mode":        "STAGING_MODE",
		"staging.dir":         "STAGING_DIR",
		"metrics.enabled":     "METRICS_ENABLED",
	}

	for key, env := range mappings {
		if err := v.BindEnv(key, env); err != nil {
			return fmt.Errorf("bind %s to %s: %w", key, env, err)
		}
	}
	return nil
}

func validate(cfg Config) error {
	port, err := strconv.Atoi(cfg.Port)
	if err != nil || port <= 0 || port > 65535 {
		return fmt.Errorf("invalid PORT %q", cfg.Port)
	}
	if cfg.MaxBodyBytes <= 0 {
		return errors.New("MAX_BODY_BYTES must be positive")
	}
	switch cfg.StagingMode {
	case staging.ModeMemory:
	case staging.ModeTempFile:
		if cfg.StagingDir == "" {
			return errors.New("STAGING_DIR is required for tempfile staging")
		}
	default:
		return fmt.Errorf("invalid STAGING_MODE %q", cfg.StagingMode)
	}
	return nil
}

func splitAndTrim(raw string) []string {
	parts := strings.Split(raw, ",")
	var out []string
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func normalizeEnv(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "production", "prod":
		return "production"
	case "staging":
		return "staging"
	case "local":
		return "local"
	default:
		return "dev"
	}
}
