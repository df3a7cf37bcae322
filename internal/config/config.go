package config

import (
	"fmt"
	"sync"

	"github.com/spf13/viper"
)

var (
	instance *Config
	once     sync.Once
	mu       sync.RWMutex
)

// Config represents the console configuration
type Config struct {
	API   APIConfig   `mapstructure:"api"`
	Auth  AuthConfig  `mapstructure:"auth"`
	Pages PagesConfig `mapstructure:"pages"`
	Log   LogConfig   `mapstructure:"log"`
}

// APIConfig points the console at the admin backend
type APIConfig struct {
	BaseURL        string `mapstructure:"base_url" validate:"required"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds" validate:"min=1"`
}

// AuthConfig controls where the session token is persisted
type AuthConfig struct {
	TokenFile string `mapstructure:"token_file" validate:"required"`
}

// PagesConfig holds the per-screen page sizes
type PagesConfig struct {
	Ads          int `mapstructure:"ads" validate:"min=1"`
	Taglines     int `mapstructure:"taglines" validate:"min=1"`
	Testimonials int `mapstructure:"testimonials" validate:"min=1"`
	Blogs        int `mapstructure:"blogs" validate:"min=1"`
	Viewers      int `mapstructure:"viewers" validate:"min=1"`
	Freebies     int `mapstructure:"freebies" validate:"min=1"`
}

// LogConfig holds logging settings
type LogConfig struct {
	Level       string `mapstructure:"level"`
	Development bool   `mapstructure:"development"`
}

// Get returns the singleton configuration instance
func Get() *Config {
	once.Do(func() {
		if instance == nil {
			instance = &Config{}
		}
	})
	mu.RLock()
	defer mu.RUnlock()
	return instance
}

// Load initializes and loads configuration from file and environment variables
func Load(configPath string) error {
	mu.Lock()
	defer mu.Unlock()

	viper.SetConfigType("yaml")
	viper.SetEnvPrefix("APP")
	viper.AutomaticEnv()

	setDefaults()

	if configPath != "" {
		viper.SetConfigFile(configPath)
		if err := viper.ReadInConfig(); err != nil {
			return fmt.Errorf("failed to read config file: %w", err)
		}
	}

	bindEnvVars()

	cfg := &Config{}
	if err := viper.Unmarshal(cfg); err != nil {
		return fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validate(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	instance = cfg
	return nil
}

// setDefaults sets default configuration values
func setDefaults() {
	viper.SetDefault("api.base_url", "http://localhost:5000/api")
	viper.SetDefault("api.timeout_seconds", 15)

	viper.SetDefault("auth.token_file", ".promoconsole/token")

	// Page sizes mirror the screens: narrow layouts page fewer rows.
	viper.SetDefault("pages.ads", 5)
	viper.SetDefault("pages.taglines", 5)
	viper.SetDefault("pages.testimonials", 3)
	viper.SetDefault("pages.blogs", 5)
	viper.SetDefault("pages.viewers", 6)
	viper.SetDefault("pages.freebies", 6)

	viper.SetDefault("log.level", "info")
	viper.SetDefault("log.development", false)
}

// bindEnvVars binds environment variables to viper keys
func bindEnvVars() {
	viper.BindEnv("api.base_url", "APP_API_BASE_URL")
	viper.BindEnv("api.timeout_seconds", "APP_API_TIMEOUT_SECONDS")

	viper.BindEnv("auth.token_file", "APP_AUTH_TOKEN_FILE")

	viper.BindEnv("pages.ads", "APP_PAGES_ADS")
	viper.BindEnv("pages.taglines", "APP_PAGES_TAGLINES")
	viper.BindEnv("pages.testimonials", "APP_PAGES_TESTIMONIALS")
	viper.BindEnv("pages.blogs", "APP_PAGES_BLOGS")
	viper.BindEnv("pages.viewers", "APP_PAGES_VIEWERS")
	viper.BindEnv("pages.freebies", "APP_PAGES_FREEBIES")

	viper.BindEnv("log.level", "APP_LOG_LEVEL")
	viper.BindEnv("log.development", "APP_LOG_DEVELOPMENT")
}

// validate performs validation on the configuration
func validate(cfg *Config) error {
	if cfg.API.BaseURL == "" {
		return fmt.Errorf("api.base_url is required")
	}
	if cfg.API.TimeoutSeconds < 1 {
		return fmt.Errorf("api.timeout_seconds must be at least 1")
	}
	if cfg.Auth.TokenFile == "" {
		return fmt.Errorf("auth.token_file is required")
	}

	sizes := map[string]int{
		"pages.ads":          cfg.Pages.Ads,
		"pages.taglines":     cfg.Pages.Taglines,
		"pages.testimonials": cfg.Pages.Testimonials,
		"pages.blogs":        cfg.Pages.Blogs,
		"pages.viewers":      cfg.Pages.Viewers,
		"pages.freebies":     cfg.Pages.Freebies,
	}
	for key, size := range sizes {
		if size < 1 {
			return fmt.Errorf("%s must be at least 1", key)
		}
	}

	return nil
}

// Reload reloads the configuration (thread-safe)
func Reload(configPath string) error {
	mu.Lock()
	instance = nil
	once = sync.Once{}
	mu.Unlock()

	return Load(configPath)
}
