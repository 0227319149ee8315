package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config represents the application configuration
type Config struct {
	App       AppConfig       `json:"app"`
	Server    ServerConfig    `json:"server"`
	RateLimit RateLimitConfig `json:"rate_limit"`
	CORS      CORSConfig      `json:"cors"`
	Style     StyleConfig     `json:"style"`
	Logging   LoggingConfig   `json:"logging"`
}

// AppConfig identifies the service in responses and logs
type AppConfig struct {
	Name        string `json:"name"`
	Version     string `json:"version"`
	Environment string `json:"environment"`
}

// ServerConfig represents server configuration
type ServerConfig struct {
	Host            string        `json:"host"`
	Port            int           `json:"port"`
	ReadTimeout     time.Duration `json:"read_timeout"`
	WriteTimeout    time.Duration `json:"write_timeout"`
	ShutdownTimeout time.Duration `json:"shutdown_timeout"`
}

// RateLimitConfig controls per-client request throttling
type RateLimitConfig struct {
	Enabled           bool `json:"enabled"`
	RequestsPerMinute int  `json:"requests_per_minute"`
	Burst             int  `json:"burst"`
}

// CORSConfig lists the portal origins allowed to call the API
type CORSConfig struct {
	AllowedOrigins []string `json:"allowed_origins"`
}

// StyleConfig overrides the default document look
type StyleConfig struct {
	PrimaryColor string `json:"primary_color"`
	TextColor    string `json:"text_color"`
	FontFamily   string `json:"font_family"`
	LogoPath     string `json:"logo_path"`
}

// LoggingConfig
type LoggingConfig struct {
	Level       string `json:"level"`
	Development bool   `json:"development"`
}

// LoadConfig loads configuration from file and environment variables
func LoadConfig(configPath string) (*Config, error) {
	// Default config
	config := &Config{
		App: AppConfig{
			Name:        "pdf-export-service",
			Version:     "1.0.0",
			Environment: "development",
		},
		Server: ServerConfig{
			Host:            "0.0.0.0",
			Port:            8080,
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    30 * time.Second,
			ShutdownTimeout: 5 * time.Second,
		},
		RateLimit: RateLimitConfig{
			Enabled:           true,
			RequestsPerMinute: 200,
			Burst:             20,
		},
		CORS: CORSConfig{
			AllowedOrigins: []string{"*"},
		},
		Logging: LoggingConfig{
			Level:       "info",
			Development: true,
		},
	}

	// Load from file if exists
	if configPath != "" {
		if data, err := os.ReadFile(configPath); err == nil {
			if err := json.Unmarshal(data, config); err != nil {
				return nil, fmt.Errorf("failed to parse config file: %w", err)
			}
		}
	}

	// Override with environment variables
	overrideWithEnv(config)

	return config, nil
}

func overrideWithEnv(config *Config) {
	if env := os.Getenv("APP_ENV"); env != "" {
		config.App.Environment = env
		if env == "production" {
			config.Logging.Development = false
		}
	}
	if version := os.Getenv("APP_VERSION"); version != "" {
		config.App.Version = version
	}
	if host := os.Getenv("HOST"); host != "" {
		config.Server.Host = host
	}
	if port := os.Getenv("PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			config.Server.Port = p
		}
	}
	if level := os.Getenv("LOG_LEVEL"); level != "" {
		config.Logging.Level = level
	}
	if enabled := os.Getenv("RATE_LIMIT_ENABLED"); enabled != "" {
		if b, err := strconv.ParseBool(enabled); err == nil {
			config.RateLimit.Enabled = b
		}
	}
	if rpm := os.Getenv("RATE_LIMIT_RPM"); rpm != "" {
		if n, err := strconv.Atoi(rpm); err == nil {
			config.RateLimit.RequestsPerMinute = n
		}
	}
	if burst := os.Getenv("RATE_LIMIT_BURST"); burst != "" {
		if n, err := strconv.Atoi(burst); err == nil {
			config.RateLimit.Burst = n
		}
	}
	if origins := os.Getenv("CORS_ALLOWED_ORIGINS"); origins != "" {
		config.CORS.AllowedOrigins = splitOrigins(origins)
	}
	if color := os.Getenv("PDF_PRIMARY_COLOR"); color != "" {
		config.Style.PrimaryColor = color
	}
	if color := os.Getenv("PDF_TEXT_COLOR"); color != "" {
		config.Style.TextColor = color
	}
	if family := os.Getenv("PDF_FONT_FAMILY"); family != "" {
		config.Style.FontFamily = family
	}
	if logo := os.Getenv("PDF_LOGO_PATH"); logo != "" {
		config.Style.LogoPath = logo
	}
}

func splitOrigins(raw string) []string {
	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		if origin := strings.TrimSpace(part); origin != "" {
			origins = append(origins, origin)
		}
	}
	return origins
}

// GetServerAddr returns the server address
func (c *ServerConfig) GetServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}
