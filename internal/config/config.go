package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

// Config holds all application configuration loaded from environment variables.
type Config struct {
	API     APIConfig
	Server  ServerConfig
	Redis   RedisConfig
	Session SessionConfig
}

// APIConfig holds the establishment API settings.
type APIConfig struct {
	BaseURL string
}

// ServerConfig holds console HTTP server settings.
type ServerConfig struct {
	Addr           string
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
	CORSOrigins    []string
	RateLimitRPS   float64
	RateLimitBurst int
}

// RedisConfig holds Redis connection settings. An empty Addr keeps sessions
// in process memory.
type RedisConfig struct {
	Addr     string
	Password string //nolint:gosec // G117: Redis connection config
	DB       int
}

// SessionConfig holds session token settings.
type SessionConfig struct {
	Secret       string //nolint:gosec // G117: session signing secret config
	TTL          time.Duration
	SecureCookie bool
}

// Load reads configuration from environment variables.
// Defaults are safe for local development only. In production,
// the session secret must be set explicitly.
func Load() (*Config, error) {
	redisDB, err := getEnvInt("SNET_REDIS_DB", 0)
	if err != nil {
		return nil, fmt.Errorf("config.Load: %w", err)
	}

	sessionTTL, err := getEnvDuration("SNET_SESSION_TTL", 12*time.Hour)
	if err != nil {
		return nil, fmt.Errorf("config.Load: %w", err)
	}

	secureCookie, err := getEnvBool("SNET_SESSION_SECURE_COOKIE", false)
	if err != nil {
		return nil, fmt.Errorf("config.Load: %w", err)
	}

	readTimeout, err := getEnvDuration("SNET_SERVER_READ_TIMEOUT", 10*time.Second)
	if err != nil {
		return nil, fmt.Errorf("config.Load: %w", err)
	}

	writeTimeout, err := getEnvDuration("SNET_SERVER_WRITE_TIMEOUT", 30*time.Second)
	if err != nil {
		return nil, fmt.Errorf("config.Load: %w", err)
	}

	rateLimitRPS, err := getEnvFloat("SNET_RATE_LIMIT_RPS", 20)
	if err != nil {
		return nil, fmt.Errorf("config.Load: %w", err)
	}

	rateLimitBurst, err := getEnvInt("SNET_RATE_LIMIT_BURST", 40)
	if err != nil {
		return nil, fmt.Errorf("config.Load: %w", err)
	}

	corsOrigins := getEnvList("SNET_CORS_ORIGINS", []string{"http://localhost:3000"})

	cfg := &Config{
		API: APIConfig{
			BaseURL: getEnv("SNET_API_BASE", "http://localhost:8080"),
		},
		Server: ServerConfig{
			Addr:           getEnv("SNET_SERVER_ADDR", ":3000"),
			ReadTimeout:    readTimeout,
			WriteTimeout:   writeTimeout,
			CORSOrigins:    corsOrigins,
			RateLimitRPS:   rateLimitRPS,
			RateLimitBurst: rateLimitBurst,
		},
		Redis: RedisConfig{
			Addr:     getEnv("SNET_REDIS_ADDR", ""),
			Password: getEnv("SNET_REDIS_PASSWORD", ""),
			DB:       redisDB,
		},
		Session: SessionConfig{
			Secret:       getEnv("SNET_SESSION_SECRET", ""),
			TTL:          sessionTTL,
			SecureCookie: secureCookie,
		},
	}

	err = cfg.validate()
	if err != nil {
		return nil, fmt.Errorf("config.Load: %w", err)
	}

	return cfg, nil
}

// validate checks required fields and value bounds.
func (c *Config) validate() error {
	// Session secret is required (no insecure default).
	if c.Session.Secret == "" {
		return errors.New("SNET_SESSION_SECRET is required")
	}
	if len(c.Session.Secret) < 32 {
		return errors.New("SNET_SESSION_SECRET must be at least 32 characters")
	}

	u, err := url.Parse(c.API.BaseURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("SNET_API_BASE must be an absolute http(s) URL, got %q", c.API.BaseURL)
	}
	if u.Scheme == "http" && !c.Session.SecureCookie {
		log.Debug().Str("api_base", c.API.BaseURL).Msg("config: plain http API base and insecure session cookie; fine for local development only")
	}

	// Bounds checks.
	if c.Redis.DB < 0 {
		return fmt.Errorf("SNET_REDIS_DB must be >= 0, got %d", c.Redis.DB)
	}
	if c.Session.TTL <= 0 {
		return fmt.Errorf("SNET_SESSION_TTL must be positive, got %s", c.Session.TTL)
	}
	if c.Server.ReadTimeout <= 0 {
		return fmt.Errorf("SNET_SERVER_READ_TIMEOUT must be positive, got %s", c.Server.ReadTimeout)
	}
	if c.Server.WriteTimeout <= 0 {
		return fmt.Errorf("SNET_SERVER_WRITE_TIMEOUT must be positive, got %s", c.Server.WriteTimeout)
	}
	if c.Server.RateLimitRPS <= 0 {
		return fmt.Errorf("SNET_RATE_LIMIT_RPS must be positive, got %g", c.Server.RateLimitRPS)
	}
	if c.Server.RateLimitBurst < 1 {
		return fmt.Errorf("SNET_RATE_LIMIT_BURST must be >= 1, got %d", c.Server.RateLimitBurst)
	}

	return nil
}

// BaseURL returns the configured establishment API base. It is read on every
// service call.
func (c *Config) BaseURL() string {
	return c.API.BaseURL
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("parsing %s=%q as int: %w", key, v, err)
	}
	return n, nil
}

func getEnvFloat(key string, fallback float64) (float64, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("parsing %s=%q as float: %w", key, v, err)
	}
	return f, nil
}

func getEnvBool(key string, fallback bool) (bool, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("parsing %s=%q as bool: %w", key, v, err)
	}
	return b, nil
}

func getEnvDuration(key string, fallback time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("parsing %s=%q as duration: %w", key, v, err)
	}
	return d, nil
}

func getEnvList(key string, fallback []string) []string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	parts := strings.Split(v, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			result = append(result, p)
		}
	}
	return result
}
