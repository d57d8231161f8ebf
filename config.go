package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"

	"github.com/Zachkp/folio/client"
)

const envPrefix = "FOLIO_"

// Config is read from FOLIO_* environment variables, after .env is loaded.
// FOLIO_SITE_URL maps to site_url and so on.
type Config struct {
	Env     string `koanf:"env" validate:"oneof=development production test"`
	SiteURL string `koanf:"site_url" validate:"required,url"`
	Port    string `koanf:"port" validate:"required,numeric"`

	ContentDir   string `koanf:"content_dir"`
	TemplatesDir string `koanf:"templates_dir" validate:"required"`
	StaticDir    string `koanf:"static_dir" validate:"required"`
	ImagesDir    string `koanf:"images_dir"`
	WatchContent bool   `koanf:"watch_content"`

	LogLevel  string `koanf:"log_level" validate:"oneof=trace debug info warn error"`
	LogFormat string `koanf:"log_format" validate:"oneof=console json"`

	AnalyticsEnabled   bool          `koanf:"analytics_enabled"`
	AnalyticsDSN       string        `koanf:"analytics_dsn" validate:"required_if=AnalyticsEnabled true"`
	AnalyticsRetention time.Duration `koanf:"analytics_retention" validate:"gte=0"`

	AdminUsername string `koanf:"admin_username"`
	AdminPassword string `koanf:"admin_password"`

	// Scroll behaviour handed to the browser client.
	NavLookahead        float64       `koanf:"nav_lookahead" validate:"gte=0"`
	NavHeight           float64       `koanf:"nav_height" validate:"gte=0"`
	ScrolledThreshold   float64       `koanf:"scrolled_threshold" validate:"gte=0"`
	VisibilityThreshold float64       `koanf:"visibility_threshold" validate:"gte=0,lte=1"`
	BaseDuration        time.Duration `koanf:"base_duration" validate:"gt=0"`
}

func defaultConfig() Config {
	return Config{
		Env:                 "development",
		SiteURL:             "https://amandevrani.com",
		Port:                "8080",
		TemplatesDir:        "templates",
		StaticDir:           "static",
		ImagesDir:           "images",
		LogLevel:            "info",
		LogFormat:           "console",
		AnalyticsEnabled:    true,
		AnalyticsDSN:        ":memory:",
		AnalyticsRetention:  365 * 24 * time.Hour,
		NavLookahead:        client.DefaultLookahead,
		NavHeight:           client.DefaultNavHeight,
		ScrolledThreshold:   client.DefaultScrolledThreshold,
		VisibilityThreshold: client.DefaultVisibilityThreshold,
		BaseDuration:        client.DefaultBaseDuration,
	}
}

// AdminEnabled reports whether the admin pages are mounted.
func (c Config) AdminEnabled() bool { return c.AdminPassword != "" }

// loadConfig builds the configuration from the process environment.
func loadConfig() (*Config, error) {
	k := koanf.New(".")
	err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, envPrefix))
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("could not load env variables: %w", err)
	}

	cfg := defaultConfig()
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("could not unmarshal config: %w", err)
	}

	// Hosting platforms set a bare PORT.
	if _, ok := os.LookupEnv(envPrefix + "PORT"); !ok {
		if port := os.Getenv("PORT"); port != "" {
			cfg.Port = port
		}
	}
	cfg.SiteURL = strings.TrimRight(cfg.SiteURL, "/")

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return &cfg, nil
}
