package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Defaults for the Tezos Domains feed.
const (
	DefaultAPIURL        = "https://api.tezos.domains/graphql"
	DefaultDetailURLBase = "https://app.tezos.domains/domain/"
	DefaultPageSize      = 50
)

var validate = newValidator()

// Config holds application configuration.
type Config struct {
	APIURL         string        `validate:"required,url"`
	DetailURLBase  string        `validate:"required,url"`
	Port           string        `validate:"required,numeric"`
	PageSize       int           `validate:"min=1,max=200"`
	WindowFromDays int           `validate:"min=1"` // older edge of the expiry window
	WindowToDays   int           `validate:"min=0"` // newer edge of the expiry window
	HTTPTimeout    time.Duration `validate:"min=0"`
	CacheTTL       time.Duration `validate:"min=0"`
	TrustedOrigins []string
}

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// The window is expressed as "N days before now"; the older edge must
	// lie strictly before the newer edge or the query matches nothing.
	v.RegisterStructValidation(func(sl validator.StructLevel) {
		cfg := sl.Current().Interface().(Config)
		if cfg.WindowFromDays <= cfg.WindowToDays {
			sl.ReportError(cfg.WindowFromDays, "WindowFromDays", "WindowFromDays", "gtfield_window", "")
		}
	}, Config{})

	return v
}

// Validate checks the configuration for values the feed cannot work with.
func (c *Config) Validate() error {
	return validate.Struct(*c)
}

// Load loads configuration from multiple sources with priority:
// 1. Command flags (passed as overrides)
// 2. Config file (./kigen.toml or XDG config dir)
// 3. Environment variables
func Load() (*Config, error) {
	return LoadWithOverrides("", "")
}

// LoadWithOverrides loads config and applies flag overrides.
func LoadWithOverrides(apiURL, port string) (*Config, error) {
	v := newBaseViper()
	_ = v.ReadInConfig()
	cfg := buildConfig(v, apiURL, port)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newBaseViper() *viper.Viper {
	v := viper.New()
	v.SetConfigName("kigen")
	v.SetConfigType("toml")
	v.AddConfigPath(".")

	// Use XDG Base Directory specification
	// Manual implementation to support testing (xdg library caches at init)
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		if home, err := os.UserHomeDir(); err == nil {
			configHome = filepath.Join(home, ".config")
		}
	}
	if configHome != "" {
		v.AddConfigPath(filepath.Join(configHome, "kigen"))
	}

	return v
}

func buildConfig(v *viper.Viper, overrideAPIURL, overridePort string) *Config {
	cfg := &Config{
		APIURL:         DefaultAPIURL,
		DetailURLBase:  DefaultDetailURLBase,
		Port:           "3000",
		PageSize:       DefaultPageSize,
		WindowFromDays: 7,
		WindowToDays:   5,
		HTTPTimeout:    10 * time.Second,
		CacheTTL:       time.Minute,
		TrustedOrigins: []string{},
	}

	// Apply config file values
	if v.IsSet("api_url") {
		cfg.APIURL = v.GetString("api_url")
	}
	if v.IsSet("detail_url_base") {
		cfg.DetailURLBase = v.GetString("detail_url_base")
	}
	if v.IsSet("port") {
		cfg.Port = v.GetString("port")
	}
	if v.IsSet("page_size") {
		cfg.PageSize = v.GetInt("page_size")
	}
	if v.IsSet("window.from_days") {
		cfg.WindowFromDays = v.GetInt("window.from_days")
	}
	if v.IsSet("window.to_days") {
		cfg.WindowToDays = v.GetInt("window.to_days")
	}
	if v.IsSet("http_timeout") {
		cfg.HTTPTimeout = v.GetDuration("http_timeout")
	}
	if v.IsSet("cache_ttl") {
		cfg.CacheTTL = v.GetDuration("cache_ttl")
	}
	if v.IsSet("trusted_origins") {
		cfg.TrustedOrigins = parseTrustedOrigins(v.GetString("trusted_origins"))
	}

	// Environment fallback (only if not configured)
	if !v.IsSet("api_url") {
		if envURL := os.Getenv("KIGEN_API_URL"); envURL != "" {
			cfg.APIURL = envURL
		}
	}
	if !v.IsSet("detail_url_base") {
		if envBase := os.Getenv("KIGEN_DETAIL_URL"); envBase != "" {
			cfg.DetailURLBase = envBase
		}
	}
	if !v.IsSet("port") {
		if envPort := os.Getenv("PORT"); envPort != "" {
			cfg.Port = envPort
		}
	}
	if !v.IsSet("trusted_origins") {
		if envOrigins := os.Getenv("TRUSTED_ORIGINS"); envOrigins != "" {
			cfg.TrustedOrigins = parseTrustedOrigins(envOrigins)
		}
	}

	// Apply overrides (flags) last
	if overrideAPIURL != "" {
		cfg.APIURL = overrideAPIURL
	}
	if overridePort != "" {
		cfg.Port = overridePort
	}

	return cfg
}

// parseTrustedOrigins parses a comma-separated string into a slice of trimmed, lowercased origins
func parseTrustedOrigins(originsStr string) []string {
	if originsStr == "" {
		return []string{}
	}

	parts := strings.Split(originsStr, ",")
	origins := make([]string, 0, len(parts))

	for _, part := range parts {
		origin, err := SanitizeTrustedOrigin(part)
		if err != nil {
			continue
		}
		origins = append(origins, origin)
	}

	return origins
}
