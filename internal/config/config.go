// Package config loads application configuration from defaults, an optional
// YAML file and environment variables, in that order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config 应用配置
type Config struct {
	Port         string        `yaml:"port"`
	DBPath       string        `yaml:"db_path"`
	JWTSecret    string        `yaml:"jwt_secret"`
	NominatimURL string        `yaml:"nominatim_url"`
	OSRMURL      string        `yaml:"osrm_url"`
	UserAgent    string        `yaml:"user_agent"`
	HTTPTimeout  time.Duration `yaml:"http_timeout"`
	RouteTTL     time.Duration `yaml:"route_cache_ttl"`
	RateLimit    int           `yaml:"rate_limit"` // requests per minute per client, 0 disables
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		Port:         ":8080",
		DBPath:       "./data/shadowside.db",
		NominatimURL: "https://nominatim.openstreetmap.org",
		OSRMURL:      "https://router.project-osrm.org",
		UserAgent:    "shadowside-backend/1.0",
		HTTPTimeout:  15 * time.Second,
		RouteTTL:     10 * time.Minute,
		RateLimit:    60,
	}
}

// Load 加载配置. path may be empty; a missing .env file is ignored.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() {
	c.Port = getEnv("PORT", c.Port)
	c.DBPath = getEnv("DB_PATH", c.DBPath)
	c.JWTSecret = getEnv("JWT_SECRET", c.JWTSecret)
	c.NominatimURL = getEnv("NOMINATIM_URL", c.NominatimURL)
	c.OSRMURL = getEnv("OSRM_URL", c.OSRMURL)
	c.UserAgent = getEnv("USER_AGENT", c.UserAgent)
	c.HTTPTimeout = getSecondsEnv("HTTP_TIMEOUT_SECONDS", c.HTTPTimeout)
	c.RouteTTL = getSecondsEnv("ROUTE_CACHE_TTL_SECONDS", c.RouteTTL)
	c.RateLimit = getIntEnv("RATE_LIMIT", c.RateLimit)
}

// Validate checks that the configuration is usable
func (c *Config) Validate() error {
	if c.Port == "" {
		return errors.New("config: port is required")
	}
	if c.DBPath == "" {
		return errors.New("config: db_path is required")
	}
	if c.HTTPTimeout <= 0 {
		return errors.New("config: http_timeout must be positive")
	}
	if c.RateLimit < 0 {
		return errors.New("config: rate_limit must not be negative")
	}
	return nil
}

// AuthEnabled reports whether API requests must carry a signed token
func (c *Config) AuthEnabled() bool {
	return c.JWTSecret != ""
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}

func getSecondsEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if seconds, err := strconv.Atoi(value); err == nil {
			return time.Duration(seconds) * time.Second
		}
	}
	return defaultValue
}
