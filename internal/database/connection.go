package database

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var log = logrus.New()

func init() {
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetLevel(logrus.InfoLevel)
}

// RetryPolicy bounds the connection attempts made by Connect.
// The delay doubles after every failed attempt.
type RetryPolicy struct {
	Attempts     int
	InitialDelay time.Duration
}

// DefaultRetry waits 1s, 2s, 4s and 8s between five attempts
var DefaultRetry = RetryPolicy{Attempts: 5, InitialDelay: time.Second}

type poolSettings struct {
	maxOpen     int
	maxIdle     int
	maxLifetime time.Duration
}

// SQLite serializes writers, a single connection avoids "database is locked" errors
var (
	postgresPool = poolSettings{maxOpen: 25, maxIdle: 5, maxLifetime: 5 * time.Minute}
	sqlitePool   = poolSettings{maxOpen: 1, maxIdle: 1}
)

// InitDatabase connects with the default retry policy
func InitDatabase(cfg DatabaseConfig) (*gorm.DB, error) {
	return Connect(context.Background(), cfg, DefaultRetry)
}

// Connect opens the database described by cfg, pings it and configures the pool.
// Failed attempts are retried until the policy is exhausted or ctx is done.
func Connect(ctx context.Context, cfg DatabaseConfig, retry RetryPolicy) (*gorm.DB, error) {
	driver := strings.ToLower(cfg.Driver)
	dialector, pool, err := dialectorFor(driver, cfg)
	if err != nil {
		return nil, err
	}

	entry := log.WithFields(logrus.Fields{
		"db_driver": driver,
		"db_host":   cfg.Host,
		"db_name":   cfg.Name,
		"db_path":   cfg.Path,
	})
	entry.Info("Initializing database connection")

	attempts := max(retry.Attempts, 1)
	delay := retry.InitialDelay
	for attempt := 1; ; attempt++ {
		var db *gorm.DB
		db, err = open(ctx, dialector, pool)
		if err == nil {
			entry.WithField("attempt", attempt).Info("Database initialized successfully")
			return db, nil
		}

		entry.WithError(err).WithFields(logrus.Fields{
			"attempt":     attempt,
			"max_retries": attempts,
		}).Warn("Database connection attempt failed")
		if attempt >= attempts {
			break
		}

		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("connecting to database: %w", ctx.Err())
		case <-time.After(delay):
		}
		delay *= 2
	}

	return nil, fmt.Errorf("failed to connect to database after %d attempts: %w", attempts, err)
}

func dialectorFor(driver string, cfg DatabaseConfig) (gorm.Dialector, poolSettings, error) {
	switch driver {
	case "postgres", "postgresql":
		log.WithField("dsn", maskURL(cfg.URL)).WithField("dsn_host", cfg.Host).Debug("Connecting to PostgreSQL")
		return postgres.Open(cfg.DSN()), postgresPool, nil
	case "sqlite", "":
		log.WithField("db_path", cfg.Path).Debug("Connecting to SQLite")
		return OpenSQLite(cfg.DSN()), sqlitePool, nil
	default:
		return nil, poolSettings{}, fmt.Errorf("unsupported database driver: %s (supported: postgres, sqlite)", cfg.Driver)
	}
}

func open(ctx context.Context, dialector gorm.Dialector, pool poolSettings) (*gorm.DB, error) {
	db, err := gorm.Open(dialector, &gorm.Config{Logger: logger.Default.LogMode(logger.Warn)})
	if err != nil {
		return nil, err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(pool.maxOpen)
	sqlDB.SetMaxIdleConns(pool.maxIdle)
	sqlDB.SetConnMaxLifetime(pool.maxLifetime)

	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, err
	}
	log.WithFields(logrus.Fields{
		"max_open_conns": pool.maxOpen,
		"max_idle_conns": pool.maxIdle,
	}).Debug("Connection pool configured")
	return db, nil
}

// Ping verifies the database behind db is reachable
func Ping(ctx context.Context, db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
