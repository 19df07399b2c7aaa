package config

import (
	"io"

	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
)

const envPrefix = "hardwarestore"

// Config is read from HARDWARESTORE_* environment variables.
type Config struct {
	LogLevel          string          `envconfig:"log_level" default:"warn"`
	LogFormat         string          `envconfig:"log_format" default:"text"`
	WholesaleDiscount decimal.Decimal `envconfig:"wholesale_discount" default:"0.15"`
	SaleDate          string          `envconfig:"sale_date" default:"2023-10-15"`
}

func Load() (*Config, error) {
	var c Config
	if err := envconfig.Process(envPrefix, &c); err != nil {
		return nil, errors.Wrap(err, "failed to parse env")
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

func (c *Config) Validate() error {
	if c.WholesaleDiscount.IsNegative() || c.WholesaleDiscount.GreaterThan(decimal.NewFromInt(1)) {
		return errors.Errorf("wholesale discount %s out of range [0, 1]", c.WholesaleDiscount)
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return errors.Wrap(err, "log level")
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		return errors.Errorf("unknown log format %q", c.LogFormat)
	}
	return nil
}

// NewLogger builds the process logger. Reports go to stdout, so logs should
// be pointed at stderr.
func (c *Config) NewLogger(out io.Writer) *log.Logger {
	logger := log.New()
	logger.SetOutput(out)
	if c.LogFormat == "json" {
		logger.SetFormatter(&log.JSONFormatter{})
	}
	level, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		level = log.WarnLevel
	}
	logger.SetLevel(level)
	return logger
}
