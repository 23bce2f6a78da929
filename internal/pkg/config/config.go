package config

import (
	"fmt"
	"time"

	"hotel-booking-engine/internal/pkg/errs"

	"github.com/kelseyhightower/envconfig"
	"github.com/shopspring/decimal"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timezone, timeout, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server  ServerConfig
	Store   StoreConfig
	DB      DBConfig
	SQLite  SQLiteConfig
	CORS    CORSConfig
	Log     LogConfig
	JWT     JWTConfig
	Billing BillingConfig
	Archive ArchiveConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

const (
	StoreDriverPostgres = "postgres"
	StoreDriverSQLite   = "sqlite"
)

type StoreConfig struct {
	Driver string `envconfig:"STORE_DRIVER" default:"postgres"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" default:"postgres"`
	Password string `envconfig:"DB_PASSWORD" default:"postgres"`
	DBName   string `envconfig:"DB_NAME" default:"booking"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"UTC"`
	MaxConns int32  `envconfig:"DB_MAX_CONNS" default:"20"`
}

type SQLiteConfig struct {
	DSN string `envconfig:"SQLITE_DSN" default:"file:booking.db?_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"UTC"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"0"`
}

type JWTConfig struct {
	Secret   string `envconfig:"JWT_SECRET" required:"true"`
	Issuer   string `envconfig:"JWT_ISSUER" default:"hotel-booking-engine"`
	Duration string `envconfig:"JWT_DURATION" default:"12h"`
}

type BillingConfig struct {
	VATRate string `envconfig:"BILLING_VAT_RATE" default:"0.12"`
}

// ArchiveConfig enables the DynamoDB invoice archive when Table is set.
type ArchiveConfig struct {
	Table    string `envconfig:"ARCHIVE_TABLE"`
	Region   string `envconfig:"AWS_REGION" default:"us-east-1"`
	Endpoint string `envconfig:"ARCHIVE_ENDPOINT"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func (c *BillingConfig) DefaultVATRate() (decimal.Decimal, error) {
	rate, err := decimal.NewFromString(c.VATRate)
	if err != nil {
		return decimal.Zero, errs.Wrapf(err, "invalid BILLING_VAT_RATE %q", c.VATRate)
	}
	if rate.IsNegative() || rate.GreaterThan(decimal.NewFromInt(1)) {
		return decimal.Zero, errs.Newf("BILLING_VAT_RATE must be within [0, 1], got %s", c.VATRate)
	}
	return rate, nil
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, errs.Wrap(err, "failed to process env config")
	}
	switch cfg.Store.Driver {
	case StoreDriverPostgres, StoreDriverSQLite:
	default:
		return Config{}, errs.Newf("unknown STORE_DRIVER %q", cfg.Store.Driver)
	}
	if _, err := cfg.Billing.DefaultVATRate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadStoreConfig reads only the store settings, so tools such as the
// migration CLI run without PORT or JWT_SECRET.
func LoadStoreConfig() (Config, error) {
	var cfg Config
	for _, section := range []any{&cfg.Store, &cfg.DB, &cfg.SQLite} {
		if err := envconfig.Process("", section); err != nil {
			return Config{}, errs.Wrap(err, "failed to process env config")
		}
	}
	switch cfg.Store.Driver {
	case StoreDriverPostgres, StoreDriverSQLite:
	default:
		return Config{}, errs.Newf("unknown STORE_DRIVER %q", cfg.Store.Driver)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		Store: StoreConfig{Driver: StoreDriverPostgres},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "UTC",
			MaxConns: 5,
		},
		SQLite: SQLiteConfig{DSN: "file::memory:?_pragma=foreign_keys(1)"},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "Asia/Tokyo",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 32400,
		},
		JWT: JWTConfig{
			Secret:   "test-secret",
			Issuer:   "hotel-booking-engine",
			Duration: "1h",
		},
		Billing: BillingConfig{VATRate: "0.12"},
	}
}
