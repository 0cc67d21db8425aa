package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const (
	EnvPrefix = "vatcart"

	AppEnvDev  = "development"
	AppEnvProd = "production"

	EnvAppEnv      = "VATCART_APP_ENV"
	EnvPort        = "VATCART_APP_PORT"
	EnvStoreDriver = "VATCART_STORE_DRIVER"
	EnvRedisURL    = "VATCART_REDIS_URL"
	EnvDBDSN       = "VATCART_DB_DSN"
)

type Config struct {
	App     AppConfig
	Catalog CatalogConfig
	Store   StoreConfig
	Redis   RedisConfig
	DB      DBConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Store.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"VATCART_APP_ENV" required:"true"`
	Port         string `envconfig:"VATCART_APP_PORT" default:"8080"`
	LogLevel     string `envconfig:"VATCART_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"VATCART_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

// CatalogConfig points at the external base-catalog provider. An empty URL
// serves the built-in seed catalog instead of fetching.
type CatalogConfig struct {
	URL          string        `envconfig:"VATCART_CATALOG_URL"`
	FetchTimeout time.Duration `envconfig:"VATCART_CATALOG_FETCH_TIMEOUT" default:"10s"`
}

// Store driver values accepted by StoreConfig.
const (
	StoreDriverFile  = "file"
	StoreDriverRedis = "redis"
	StoreDriverDB    = "db"
)

// StoreConfig selects the persistence substrate for custom products.
type StoreConfig struct {
	Driver  string `envconfig:"VATCART_STORE_DRIVER" default:"file"`
	FileDir string `envconfig:"VATCART_STORE_FILE_DIR" default:"data"`
	Key     string `envconfig:"VATCART_STORE_KEY" default:"vatcart:custom_products"`
}

func (s StoreConfig) validate() error {
	switch strings.ToLower(strings.TrimSpace(s.Driver)) {
	case StoreDriverFile, StoreDriverRedis, StoreDriverDB:
		return nil
	default:
		return fmt.Errorf("unknown store driver %q", s.Driver)
	}
}

type RedisConfig struct {
	URL          string        `envconfig:"VATCART_REDIS_URL"`
	Address      string        `envconfig:"VATCART_REDIS_ADDR"`
	Password     string        `envconfig:"VATCART_REDIS_PASSWORD"`
	DB           int           `envconfig:"VATCART_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"VATCART_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"VATCART_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"VATCART_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"VATCART_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"VATCART_REDIS_WRITE_TIMEOUT" default:"5s"`
}

type DBConfig struct {
	DSN    string `envconfig:"VATCART_DB_DSN"`
	Driver string `envconfig:"VATCART_DB_DRIVER" default:"sqlite"`

	MaxOpenConns    int           `envconfig:"VATCART_DB_MAX_OPEN_CONNS" default:"10"`
	MaxIdleConns    int           `envconfig:"VATCART_DB_MAX_IDLE_CONNS" default:"5"`
	ConnMaxLifetime time.Duration `envconfig:"VATCART_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"VATCART_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}
