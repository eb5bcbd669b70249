package config

import (
	"fmt"
	"time"

	"github.com/Astemirdum/catalog-service/pkg/circuit_breaker"
	"github.com/Astemirdum/catalog-service/pkg/kafka"
	"github.com/Astemirdum/catalog-service/pkg/logger"
	"github.com/Astemirdum/catalog-service/pkg/postgres"
	"github.com/Astemirdum/catalog-service/pkg/sqlite"
	jsoniter "github.com/json-iterator/go"
	"github.com/kelseyhightower/envconfig"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type HTTPServer struct {
	Host         string        `yaml:"host" envconfig:"CATALOG_HTTP_HOST" default:"0.0.0.0"`
	Port         string        `yaml:"port" envconfig:"CATALOG_HTTP_PORT" default:"8080"`
	ReadTimeout  time.Duration `yaml:"readTimeout" envconfig:"HTTP_READ" default:"10s"`
	WriteTimeout time.Duration `yaml:"writeTimeout" envconfig:"HTTP_WRITE" default:"10s"`
}

type Storage struct {
	Driver   string `yaml:"driver" envconfig:"DB_DRIVER" default:"sqlite"`
	Postgres postgres.DB
	SQLite   sqlite.Config
}

type Config struct {
	Server         HTTPServer `yaml:"server"`
	Storage        Storage    `yaml:"storage"`
	Kafka          kafka.Config
	CircuitBreaker circuit_breaker.Config
	Log            logger.Log `yaml:"log"`
}

func (c *Config) validate() error {
	switch c.Storage.Driver {
	case DriverPostgres, DriverSQLite:
		return nil
	default:
		return fmt.Errorf("DB_DRIVER %q: want %s or %s", c.Storage.Driver, DriverPostgres, DriverSQLite)
	}
}

// Load reads config from environment. Options are applied last.
func Load(ops ...Option) (*Config, error) {
	var config Config
	if err := envconfig.Process("", &config); err != nil {
		return nil, err
	}
	for _, op := range ops {
		op(&config)
	}
	if err := config.validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

// String renders the config with the database password masked.
func (c *Config) String() string {
	masked := *c
	if masked.Storage.Postgres.Password != "" {
		masked.Storage.Postgres.Password = "***"
	}
	js, _ := jsoniter.ConfigCompatibleWithStandardLibrary.MarshalIndent(masked, "", "  ") //nolint:errcheck
	return string(js)
}
