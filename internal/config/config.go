package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/vladimiradmaev/quantified-self/internal/logger"
)

const (
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"
)

// AppTitle is reported on startup.
const AppTitle = "Quantified Self"

type Config struct {
	Environment string
	HTTP        HTTPConfig
	DB          DBConfig
	Logger      LoggerConfig
}

type HTTPConfig struct {
	Port            int
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
	RateLimit       float64 // requests per second, 0 disables limiting
	RateLimitBurst  int
}

type DBConfig struct {
	URL      string
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

// DSN returns the connection string, preferring an explicit URL.
func (c DBConfig) DSN() string {
	if c.URL != "" {
		return c.URL
	}
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

type LoggerConfig struct {
	Level      logger.LogLevel
	OutputPath string
	Format     string
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func parseLogLevel(level string) logger.LogLevel {
	switch strings.ToLower(level) {
	case "debug":
		return logger.LevelDebug
	case "info":
		return logger.LevelInfo
	case "warn", "warning":
		return logger.LevelWarn
	case "error":
		return logger.LevelError
	default:
		return logger.LevelInfo
	}
}

// defaultDBName mirrors the per-environment database naming.
func defaultDBName(env string) string {
	switch env {
	case EnvTest:
		return "quantified_self_test"
	case EnvProduction:
		return "quantified_self"
	default:
		return "quantified_self_development"
	}
}

// Load reads the configuration from the environment and validates it.
func Load() (*Config, error) {
	var errs []error

	intEnv := func(key string, def int) int {
		raw := os.Getenv(key)
		if raw == "" {
			return def
		}
		v, err := strconv.Atoi(raw)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %q is not an integer", key, raw))
			return def
		}
		return v
	}
	durationEnv := func(key string, def time.Duration) time.Duration {
		raw := os.Getenv(key)
		if raw == "" {
			return def
		}
		v, err := time.ParseDuration(raw)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %q is not a duration", key, raw))
			return def
		}
		return v
	}
	floatEnv := func(key string, def float64) float64 {
		raw := os.Getenv(key)
		if raw == "" {
			return def
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %q is not a number", key, raw))
			return def
		}
		return v
	}

	env := strings.ToLower(getEnvOrDefault("APP_ENV", EnvDevelopment))

	cfg := &Config{
		Environment: env,
		HTTP: HTTPConfig{
			Port:            intEnv("PORT", 3030),
			ReadTimeout:     durationEnv("HTTP_READ_TIMEOUT", 10*time.Second),
			WriteTimeout:    durationEnv("HTTP_WRITE_TIMEOUT", 30*time.Second),
			ShutdownTimeout: durationEnv("HTTP_SHUTDOWN_TIMEOUT", 15*time.Second),
			RateLimit:       floatEnv("RATE_LIMIT", 100),
			RateLimitBurst:  intEnv("RATE_LIMIT_BURST", 200),
		},
		DB: DBConfig{
			URL:      os.Getenv("DATABASE_URL"),
			Host:     getEnvOrDefault("DB_HOST", "localhost"),
			Port:     getEnvOrDefault("DB_PORT", "5432"),
			User:     getEnvOrDefault("DB_USER", "postgres"),
			Password: getEnvOrDefault("DB_PASSWORD", "postgres"),
			DBName:   getEnvOrDefault("DB_NAME", defaultDBName(env)),
			SSLMode:  getEnvOrDefault("DB_SSLMODE", "disable"),
		},
		Logger: LoggerConfig{
			Level:      parseLogLevel(getEnvOrDefault("LOG_LEVEL", "info")),
			OutputPath: getEnvOrDefault("LOG_OUTPUT", "stdout"),
			Format:     getEnvOrDefault("LOG_FORMAT", "json"),
		},
	}

	errs = append(errs, cfg.Validate())
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate reports every invalid setting at once.
func (c *Config) Validate() error {
	var errs []error

	switch c.Environment {
	case EnvDevelopment, EnvTest, EnvProduction:
	default:
		errs = append(errs, fmt.Errorf("APP_ENV: unknown environment %q", c.Environment))
	}
	if c.HTTP.Port <= 0 || c.HTTP.Port > 65535 {
		errs = append(errs, fmt.Errorf("PORT: %d is out of range", c.HTTP.Port))
	}
	if c.HTTP.RateLimit < 0 {
		errs = append(errs, errors.New("RATE_LIMIT: must not be negative"))
	}
	if c.HTTP.RateLimit > 0 && c.HTTP.RateLimitBurst <= 0 {
		errs = append(errs, errors.New("RATE_LIMIT_BURST: must be positive when rate limiting is enabled"))
	}
	if c.DB.URL == "" && c.DB.DBName == "" {
		errs = append(errs, errors.New("DB_NAME: required when DATABASE_URL is not set"))
	}
	if c.Logger.Format != "json" && c.Logger.Format != "text" {
		errs = append(errs, fmt.Errorf("LOG_FORMAT: %q must be json or text", c.Logger.Format))
	}

	return errors.Join(errs...)
}
