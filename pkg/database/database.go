package database

import (
	"fmt"
	"strings"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Supported DB_DRIVER values
const (
	DriverPostgres = "postgres"
	DriverMySQL    = "mysql"
	DriverSQLite   = "sqlite"
)

// Config describes how to reach the database and size its pool.
type Config struct {
	Driver   string
	DSN      string
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string

	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxIdleTime time.Duration
	ConnMaxLifetime time.Duration

	LogLevel string
}

// BuildDSN returns cfg.DSN, or one assembled from the host fields.
func (cfg Config) BuildDSN() string {
	if cfg.DSN != "" {
		return cfg.DSN
	}
	switch cfg.Driver {
	case DriverMySQL:
		tls := "false"
		if cfg.SSLMode != "" && cfg.SSLMode != "disable" {
			tls = "true"
		}
		return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?parseTime=true&tls=%s",
			cfg.User, cfg.Password, cfg.Host, cfg.Port, cfg.Name, tls)
	case DriverSQLite:
		return cfg.Name
	default:
		sslMode := cfg.SSLMode
		if sslMode == "" {
			sslMode = "disable"
		}
		return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
			cfg.Host, cfg.User, cfg.Password, cfg.Name, cfg.Port, sslMode)
	}
}

func dialector(cfg Config) (gorm.Dialector, error) {
	dsn := cfg.BuildDSN()
	switch cfg.Driver {
	case DriverPostgres, "":
		return postgres.New(postgres.Config{
			DSN:                  dsn,
			PreferSimpleProtocol: true, // Disables implicit prepared statements for pooled proxies
		}), nil
	case DriverMySQL:
		return mysql.Open(dsn), nil
	case DriverSQLite:
		return sqlite.Open(dsn), nil
	}
	return nil, errors.Errorf("database: unsupported driver %q", cfg.Driver)
}

// Connect opens the database and applies the pool settings.
func Connect(cfg Config, log *zap.Logger) (*gorm.DB, error) {
	d, err := dialector(cfg)
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(d, &gorm.Config{
		Logger:      NewGormLogger(log, cfg.LogLevel),
		PrepareStmt: false, // Disables GORM-level prepared statements
	})
	if err != nil {
		return nil, errors.Wrap(err, "database: open")
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "database: pool")
	}
	if cfg.Driver == DriverSQLite && strings.Contains(cfg.BuildDSN(), ":memory:") {
		// An in-memory database lives only as long as its single connection.
		cfg.MaxOpenConns, cfg.MaxIdleConns = 1, 1
		cfg.ConnMaxIdleTime, cfg.ConnMaxLifetime = 0, 0
	}
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	log.Info("Database connection established",
		zap.String("driver", d.Name()),
		zap.Int("max_open_conns", cfg.MaxOpenConns),
		zap.Duration("conn_max_idle_time", cfg.ConnMaxIdleTime),
	)
	return db, nil
}

// Close releases the underlying pool.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// zapWriter adapts a sugared zap logger to gorm's logger.Writer.
type zapWriter struct {
	log *zap.SugaredLogger
}

func (w zapWriter) Printf(format string, args ...interface{}) {
	w.log.Infof(strings.TrimPrefix(format, "\n"), args...)
}

// NewGormLogger routes gorm's query log through zap.
func NewGormLogger(log *zap.Logger, level string) logger.Interface {
	return logger.New(
		zapWriter{log: log.Named("gorm").WithOptions(zap.AddCallerSkip(3)).Sugar()},
		logger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  parseLogLevel(level),
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		},
	)
}

func parseLogLevel(level string) logger.LogLevel {
	switch strings.ToLower(level) {
	case "silent":
		return logger.Silent
	case "error":
		return logger.Error
	case "info":
		return logger.Info
	default:
		return logger.Warn
	}
}
