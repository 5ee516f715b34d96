// Package config provides application configuration loading.
// This is part of the platform layer and contains no business logic.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// =============================================================================
// Module-Specific Config Interfaces (Principle of Least Privilege)
// =============================================================================

// HTTPConfig provides settings for the HTTP server.
type HTTPConfig interface {
	GetHTTPAddr() string
	GetCORSAllowAll() bool
	GetCORSOrigins() []string
	GetCORSAllowCreds() bool
}

// RateLimitConfig provides settings for per-IP request rate limiting.
type RateLimitConfig interface {
	GetRateLimitRPS() float64
	GetRateLimitBurst() int
}

// GotenbergConfig provides settings for the Gotenberg HTML-to-PDF service.
type GotenbergConfig interface {
	GetGotenbergURL() string
	GetGotenbergUsername() string
	GetGotenbergPassword() string
	IsGotenbergEnabled() bool
}

// ChromiumConfig provides settings for the in-process Chromium renderer.
type ChromiumConfig interface {
	GetChromePath() string
	GetRenderTimeout() time.Duration
}

// RendererConfig combines the settings needed to pick a PDF renderer.
type RendererConfig interface {
	GotenbergConfig
	ChromiumConfig
}

// SalesforceConfig provides settings for the Salesforce REST data client.
type SalesforceConfig interface {
	GetSalesforceAPIVersion() string
	GetSalesforceTimeout() time.Duration
}

// =============================================================================
// Main Config Struct
// =============================================================================

// Config holds all application configuration values.
type Config struct {
	Env                  string
	HTTPAddr             string
	CORSAllowAll         bool
	CORSOrigins          []string
	CORSAllowCreds       bool
	RateLimitRPS         float64
	RateLimitBurst       int
	GotenbergURL         string
	GotenbergUsername    string
	GotenbergPassword    string
	ChromePath           string
	RenderTimeout        time.Duration
	SalesforceAPIVersion string
	SalesforceTimeout    time.Duration
}

// =============================================================================
// Interface Implementations
// =============================================================================

// HTTPConfig implementation
func (c *Config) GetHTTPAddr() string      { return c.HTTPAddr }
func (c *Config) GetCORSAllowAll() bool    { return c.CORSAllowAll }
func (c *Config) GetCORSOrigins() []string { return c.CORSOrigins }
func (c *Config) GetCORSAllowCreds() bool  { return c.CORSAllowCreds }

// RateLimitConfig implementation
func (c *Config) GetRateLimitRPS() float64 { return c.RateLimitRPS }
func (c *Config) GetRateLimitBurst() int   { return c.RateLimitBurst }

// GotenbergConfig implementation
func (c *Config) GetGotenbergURL() string      { return c.GotenbergURL }
func (c *Config) GetGotenbergUsername() string { return c.GotenbergUsername }
func (c *Config) GetGotenbergPassword() string { return c.GotenbergPassword }
func (c *Config) IsGotenbergEnabled() bool     { return c.GotenbergURL != "" }

// ChromiumConfig implementation
func (c *Config) GetChromePath() string           { return c.ChromePath }
func (c *Config) GetRenderTimeout() time.Duration { return c.RenderTimeout }

// SalesforceConfig implementation
func (c *Config) GetSalesforceAPIVersion() string     { return c.SalesforceAPIVersion }
func (c *Config) GetSalesforceTimeout() time.Duration { return c.SalesforceTimeout }

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	_ = godotenv.Load()

	corsOrigins := splitCSV(getEnv("CORS_ORIGINS", "http://localhost:4200"))
	corsAllowAll := strings.EqualFold(getEnv("CORS_ALLOW_ALL", "false"), "true")
	if containsWildcard(corsOrigins) {
		corsAllowAll = true
	}

	// Heroku-style deployments inject PORT; HTTP_ADDR wins when both are set.
	addr := getEnv("HTTP_ADDR", "")
	if addr == "" {
		if port := getEnv("PORT", ""); port != "" {
			addr = ":" + port
		} else {
			addr = ":8080"
		}
	}

	cfg := &Config{
		Env:                  getEnv("APP_ENV", "development"),
		HTTPAddr:             addr,
		CORSAllowAll:         corsAllowAll,
		CORSOrigins:          corsOrigins,
		CORSAllowCreds:       strings.EqualFold(getEnv("CORS_ALLOW_CREDENTIALS", "true"), "true"),
		RateLimitRPS:         mustFloat64(getEnv("RATE_LIMIT_RPS", "10")),
		RateLimitBurst:       int(mustInt64(getEnv("RATE_LIMIT_BURST", "20"))),
		GotenbergURL:         strings.TrimRight(getEnv("GOTENBERG_URL", ""), "/"),
		GotenbergUsername:    getEnv("GOTENBERG_USERNAME", ""),
		GotenbergPassword:    getEnv("GOTENBERG_PASSWORD", ""),
		ChromePath:           getEnv("CHROME_PATH", ""),
		RenderTimeout:        mustDuration(getEnv("RENDER_TIMEOUT", "30s")),
		SalesforceAPIVersion: strings.TrimPrefix(getEnv("SALESFORCE_API_VERSION", "62.0"), "v"),
		SalesforceTimeout:    mustDuration(getEnv("SALESFORCE_TIMEOUT", "30s")),
	}

	if cfg.GotenbergURL != "" && !strings.HasPrefix(cfg.GotenbergURL, "http://") && !strings.HasPrefix(cfg.GotenbergURL, "https://") {
		return nil, fmt.Errorf("GOTENBERG_URL must start with http:// or https://")
	}
	if cfg.CORSAllowAll && cfg.CORSAllowCreds {
		return nil, fmt.Errorf("CORS_ALLOW_CREDENTIALS cannot be true when CORS_ALLOW_ALL is true")
	}
	if cfg.RateLimitRPS <= 0 || cfg.RateLimitBurst <= 0 {
		return nil, fmt.Errorf("RATE_LIMIT_RPS and RATE_LIMIT_BURST must be positive")
	}
	if cfg.RenderTimeout <= 0 {
		return nil, fmt.Errorf("RENDER_TIMEOUT must be a positive duration")
	}
	if cfg.SalesforceTimeout <= 0 {
		return nil, fmt.Errorf("SALESFORCE_TIMEOUT must be a positive duration")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok {
		return val
	}
	return fallback
}

func mustDuration(value string) time.Duration {
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0
	}
	return d
}

func mustInt64(value string) int64 {
	result, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0
	}
	return result
}

func mustFloat64(value string) float64 {
	result, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0
	}
	return result
}

func splitCSV(value string) []string {
	parts := strings.Split(value, ",")
	results := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			results = append(results, trimmed)
		}
	}
	return results
}

func containsWildcard(values []string) bool {
	for _, value := range values {
		if value == "*" {
			return true
		}
	}
	return false
}
