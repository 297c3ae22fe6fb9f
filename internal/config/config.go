package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"

	"grover-graphql/pkg/database"
)

// Config holds runtime configuration for the service.
type Config struct {
	AppEnv         string        `envconfig:"APP_ENV" default:"development"`
	Port           string        `envconfig:"PORT" default:"3000"`
	RequestTimeout time.Duration `envconfig:"APP_REQUEST_TIMEOUT" default:"3s"`
	LogLevel       string        `envconfig:"LOG_LEVEL" default:"info"`

	DBDriver   string `envconfig:"DB_DRIVER" default:"postgres"`
	DBURL      string `envconfig:"DATABASE_URL"`
	DBHost     string `envconfig:"DB_HOST" default:"localhost"`
	DBPort     string `envconfig:"DB_PORT" default:"5432"`
	DBUser     string `envconfig:"DB_USER"`
	DBPassword string `envconfig:"DB_PASSWORD"`
	DBName     string `envconfig:"DB_NAME" default:"grover"`
	DBSSLMode  string `envconfig:"DB_SSLMODE" default:"disable"`

	// Pool defaults match a single short lived serverless execution context.
	DBMaxOpenConns    int           `envconfig:"DB_MAX_OPEN_CONNS" default:"1"`
	DBMaxIdleConns    int           `envconfig:"DB_MAX_IDLE_CONNS" default:"0"`
	DBConnMaxIdleTime time.Duration `envconfig:"DB_CONN_MAX_IDLE_TIME" default:"500ms"`
	DBConnMaxLifetime time.Duration `envconfig:"DB_CONN_MAX_LIFETIME" default:"0"`
	DBLogLevel        string        `envconfig:"DB_LOG_LEVEL" default:"warn"`
	DBAutoMigrate     bool          `envconfig:"DB_AUTO_MIGRATE" default:"false"`

	RedisAddr string        `envconfig:"REDIS_ADDR"`
	CacheTTL  time.Duration `envconfig:"CACHE_TTL" default:"5m"`

	GraphQLMaxDepth int `envconfig:"GRAPHQL_MAX_DEPTH" default:"10"`
}

// Load reads an optional .env file and then the environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, errors.Wrap(err, "config: load .env")
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, errors.Wrap(err, "config: process env")
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	switch c.DBDriver {
	case database.DriverPostgres, database.DriverMySQL, database.DriverSQLite:
	default:
		return errors.Errorf("config: unsupported DB_DRIVER %q", c.DBDriver)
	}
	if c.DBMaxOpenConns < 1 {
		return errors.New("config: DB_MAX_OPEN_CONNS must be at least 1")
	}
	if c.GraphQLMaxDepth < 1 {
		return errors.New("config: GRAPHQL_MAX_DEPTH must be at least 1")
	}
	return nil
}

// IsProduction returns true when the service runs in production.
func (c *Config) IsProduction() bool {
	return c != nil && c.AppEnv == "production"
}

// Database returns the connection settings for pkg/database.
func (c *Config) Database() database.Config {
	return database.Config{
		Driver:          c.DBDriver,
		DSN:             c.DBURL,
		Host:            c.DBHost,
		Port:            c.DBPort,
		User:            c.DBUser,
		Password:        c.DBPassword,
		Name:            c.DBName,
		SSLMode:         c.DBSSLMode,
		MaxOpenConns:    c.DBMaxOpenConns,
		MaxIdleConns:    c.DBMaxIdleConns,
		ConnMaxIdleTime: c.DBConnMaxIdleTime,
		ConnMaxLifetime: c.DBConnMaxLifetime,
		LogLevel:        c.DBLogLevel,
	}
}
