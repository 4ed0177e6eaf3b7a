package database

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/yukikurage/todo-cli/internal/config"
	apperrors "github.com/yukikurage/todo-cli/internal/errors"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Session is an open database handle owned by a single command invocation
// (or by the server process). Close releases it.
type Session struct {
	db *gorm.DB
}

// NewSession wraps an already opened gorm handle
func NewSession(db *gorm.DB) *Session {
	return &Session{db: db}
}

// DB returns the underlying gorm handle
func (s *Session) DB() *gorm.DB {
	return s.db
}

// Close closes the underlying connection pool
func (s *Session) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return apperrors.Persistence("failed to access connection pool", err)
	}
	if err := sqlDB.Close(); err != nil {
		return apperrors.Persistence("failed to close database connection", err)
	}
	slog.Debug("database connection closed")
	return nil
}

// Connector opens sessions on demand
type Connector interface {
	Connect(ctx context.Context) (*Session, error)
}

// ConnectorFunc adapts a function to Connector
type ConnectorFunc func(ctx context.Context) (*Session, error)

// Connect calls f(ctx)
func (f ConnectorFunc) Connect(ctx context.Context) (*Session, error) {
	return f(ctx)
}

// NewConnector returns a Connector that opens sessions from cfg
func NewConnector(cfg config.DatabaseConfig) Connector {
	return ConnectorFunc(func(ctx context.Context) (*Session, error) {
		return Open(ctx, cfg)
	})
}

// Open connects, pings within cfg.ConnectTimeout and optionally migrates
func Open(ctx context.Context, cfg config.DatabaseConfig) (*Session, error) {
	dialector, err := Dialector(cfg)
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:         logger.Default.LogMode(parseLogLevel(cfg.LogLevel)),
		TranslateError: true,
	})
	if err != nil {
		return nil, apperrors.Persistence("failed to connect to database", err)
	}
	session := NewSession(db)

	pingCtx := ctx
	if cfg.ConnectTimeout > 0 {
		var cancel context.CancelFunc
		pingCtx, cancel = context.WithTimeout(ctx, cfg.ConnectTimeout)
		defer cancel()
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, apperrors.Persistence("failed to access connection pool", err)
	}
	if err := sqlDB.PingContext(pingCtx); err != nil {
		_ = sqlDB.Close()
		return nil, apperrors.Persistence("failed to ping database", err)
	}

	if cfg.AutoMigrate {
		if err := Migrate(db.WithContext(ctx)); err != nil {
			_ = sqlDB.Close()
			return nil, err
		}
	}

	slog.Debug("database connection established", "driver", cfg.Driver)
	return session, nil
}

// WithSession acquires a session, runs fn and always releases the session.
// A close failure is reported only when fn succeeded.
func WithSession(ctx context.Context, connector Connector, fn func(*Session) error) (err error) {
	session, err := connector.Connect(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := session.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}()

	return fn(session)
}

// Dialector builds the gorm dialector for the configured driver
func Dialector(cfg config.DatabaseConfig) (gorm.Dialector, error) {
	switch cfg.Driver {
	case config.DriverSQLite:
		return sqlite.Open(cfg.Path), nil
	case config.DriverMySQL:
		dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
			cfg.User,
			cfg.Password,
			cfg.Host,
			portOrDefault(cfg.Port, "3306"),
			cfg.Name,
		)
		return mysql.Open(dsn), nil
	case config.DriverPostgres:
		dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
			cfg.Host,
			portOrDefault(cfg.Port, "5432"),
			cfg.User,
			cfg.Password,
			cfg.Name,
			cfg.SSLMode,
		)
		return postgres.Open(dsn), nil
	default:
		return nil, apperrors.Persistence("failed to connect to database",
			errors.New("unsupported driver "+cfg.Driver))
	}
}

func portOrDefault(port, fallback string) string {
	if port == "" {
		return fallback
	}
	return port
}

func parseLogLevel(level string) logger.LogLevel {
	switch strings.ToLower(level) {
	case "info":
		return logger.Info
	case "warn":
		return logger.Warn
	case "error":
		return logger.Error
	default:
		return logger.Silent
	}
}
