package config

import (
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/cmlabs-hris/hris-dashboard-go/internal/pkg/validator"
	"github.com/joho/godotenv"
)

type Config struct {
	App       AppConfig
	JWT       JWTConfig
	API       APIConfig
	Dashboard DashboardConfig
	Source    SourceConfig
	Database  DatabaseConfig
}

// AppConfig holds application configuration
type AppConfig struct {
	Port        int
	Env         string
	LogLevel    string
	FrontendURL string
	// LoginURL is where clients are sent after their session expires
	LoginURL string
	// Locale selects the language of labels and alert messages (en, id)
	Locale string
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret string
}

// APIConfig holds the upstream HRIS REST API configuration
type APIConfig struct {
	BaseURL        string
	TenantHeader   string
	RateLimitFloor time.Duration
	RequestTimeout time.Duration
}

// DashboardConfig holds refresh cycle configuration
type DashboardConfig struct {
	TierPause time.Duration
}

type SourceType string

const (
	SourceTypeAPI      SourceType = "api"
	SourceTypePostgres SourceType = "postgres"
)

// SourceConfig selects where the dashboard reads its data from
type SourceConfig struct {
	Type SourceType
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
	MaxConns int32
}

func Load() (*Config, error) {
	// .env is optional; real environment variables take precedence
	if err := godotenv.Load(); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("failed to load .env file: %w", err)
		}
		slog.Debug("no .env file found, using environment")
	}

	config := &Config{}

	// Application configuration
	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:        appPort,
		Env:         getEnv("APP_ENV", "development"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		FrontendURL: getEnv("FRONTEND_URL", "http://localhost:3000"),
		LoginURL:    getEnv("APP_LOGIN_URL", "/login"),
		Locale:      getEnv("APP_LOCALE", "en"),
	}

	// JWT configuration
	config.JWT = JWTConfig{
		Secret: getEnv("JWT_SECRET_KEY", ""),
	}

	// Upstream API configuration
	rateLimitFloor, err := getEnvDuration("API_RATE_LIMIT_FLOOR", "5s")
	if err != nil {
		return nil, err
	}
	requestTimeout, err := getEnvDuration("API_REQUEST_TIMEOUT", "0s")
	if err != nil {
		return nil, err
	}

	config.API = APIConfig{
		BaseURL:        getEnv("API_BASE_URL", ""),
		TenantHeader:   getEnv("API_TENANT_HEADER", "X-Company-ID"),
		RateLimitFloor: rateLimitFloor,
		RequestTimeout: requestTimeout,
	}

	// Dashboard configuration
	tierPause, err := getEnvDuration("DASHBOARD_TIER_PAUSE", "500ms")
	if err != nil {
		return nil, err
	}
	config.Dashboard = DashboardConfig{TierPause: tierPause}

	config.Source = SourceConfig{
		Type: SourceType(strings.ToLower(getEnv("SOURCE_TYPE", string(SourceTypeAPI)))),
	}

	// Database configuration
	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}
	maxConns, err := strconv.ParseInt(getEnv("DB_MAX_CONNS", "10"), 10, 32)
	if err != nil {
		return nil, fmt.Errorf("invalid DB_MAX_CONNS: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "cmlabs-hris"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
		MaxConns: int32(maxConns),
	}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate reports every invalid setting at once as validator.ValidationErrors
func (c *Config) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(c.JWT.Secret) {
		errs = append(errs, validator.ValidationError{Field: "JWT_SECRET_KEY", Message: "is required"})
	}
	if c.Dashboard.TierPause < 0 {
		errs = append(errs, validator.ValidationError{Field: "DASHBOARD_TIER_PAUSE", Message: "must not be negative"})
	}
	if c.API.RateLimitFloor <= 0 {
		errs = append(errs, validator.ValidationError{Field: "API_RATE_LIMIT_FLOOR", Message: "must be positive"})
	}

	switch c.Source.Type {
	case SourceTypeAPI:
		if validator.IsEmpty(c.API.BaseURL) {
			errs = append(errs, validator.ValidationError{Field: "API_BASE_URL", Message: "is required when SOURCE_TYPE=api"})
		} else if !validator.IsAbsoluteURL(c.API.BaseURL) {
			errs = append(errs, validator.ValidationError{Field: "API_BASE_URL", Message: "must be an absolute URL"})
		}
	case SourceTypePostgres:
		if validator.IsEmpty(c.Database.Password) {
			errs = append(errs, validator.ValidationError{Field: "DB_PASSWORD", Message: "is required when SOURCE_TYPE=postgres"})
		}
		if c.Database.MaxConns <= 0 {
			errs = append(errs, validator.ValidationError{Field: "DB_MAX_CONNS", Message: "must be positive"})
		}
	default:
		errs = append(errs, validator.ValidationError{Field: "SOURCE_TYPE", Message: fmt.Sprintf("unknown value %q (want api or postgres)", c.Source.Type)})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// DatabaseURL returns the PostgreSQL connection string
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		url.QueryEscape(c.Database.User),
		url.QueryEscape(c.Database.Password),
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

// SlogLevel maps LOG_LEVEL to a slog level, defaulting to info
func (c *Config) SlogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.App.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return level
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvDuration(key, fallback string) (time.Duration, error) {
	d, err := time.ParseDuration(getEnv(key, fallback))
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}
