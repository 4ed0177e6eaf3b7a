package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Supported database drivers
const (
	DriverSQLite   = "sqlite"
	DriverMySQL    = "mysql"
	DriverPostgres = "postgres"
)

type Config struct {
	Database DatabaseConfig
	Server   ServerConfig
	AI       AIConfig
	LogLevel string
}

type DatabaseConfig struct {
	Driver         string
	Path           string
	Host           string
	Port           string
	User           string
	Password       string
	Name           string
	SSLMode        string
	LogLevel       string
	ConnectTimeout time.Duration
	AutoMigrate    bool
}

type ServerConfig struct {
	Port    string
	GinMode string
}

type AIConfig struct {
	APIKey  string
	BaseURL string
	Model   string
}

// LoadEnvFiles loads .env style files into the environment. Missing files are ignored.
func LoadEnvFiles(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, p := range paths {
		if err := godotenv.Load(p); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("load %s: %w", p, err)
		}
	}
	return nil
}

func Load() *Config {
	return &Config{
		Database: DatabaseConfig{
			Driver:         getEnv("DB_DRIVER", DriverSQLite),
			Path:           getEnv("DB_PATH", "todo.db"),
			Host:           getEnv("DB_HOST", "localhost"),
			Port:           getEnv("DB_PORT", ""),
			User:           getEnv("DB_USER", "taskuser"),
			Password:       getEnv("DB_PASSWORD", "taskpassword"),
			Name:           getEnv("DB_NAME", "todos"),
			SSLMode:        getEnv("DB_SSL_MODE", "disable"),
			LogLevel:       getEnv("DB_LOG_LEVEL", "silent"),
			ConnectTimeout: getEnvAsDuration("DB_CONNECT_TIMEOUT", 5*time.Second),
			AutoMigrate:    getEnvAsBool("DB_AUTO_MIGRATE", true),
		},
		Server: ServerConfig{
			Port:    getEnv("SERVER_PORT", "8080"),
			GinMode: getEnv("GIN_MODE", "debug"),
		},
		AI: AIConfig{
			APIKey:  getEnv("OPENAI_API_KEY", ""),
			BaseURL: getEnv("OPENAI_BASE_URL", ""),
			Model:   getEnv("OPENAI_MODEL", "gpt-4o"),
		},
		LogLevel: getEnv("LOG_LEVEL", "warn"),
	}
}

// Validate checks settings that cannot be defaulted
func (c *Config) Validate() error {
	switch c.Database.Driver {
	case DriverSQLite:
		if c.Database.Path == "" {
			return errors.New("DB_PATH is required for the sqlite driver")
		}
	case DriverMySQL, DriverPostgres:
		if c.Database.Host == "" || c.Database.Name == "" {
			return fmt.Errorf("DB_HOST and DB_NAME are required for the %s driver", c.Database.Driver)
		}
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q (want sqlite, mysql or postgres)", c.Database.Driver)
	}
	return nil
}

// SlogLevel maps LOG_LEVEL to a slog level; unknown values mean warn
func (c *Config) SlogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelWarn
	}
	return level
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value, err := strconv.ParseBool(os.Getenv(key)); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	if duration, err := time.ParseDuration(valueStr); err == nil {
		return duration
	}

	return defaultValue
}
