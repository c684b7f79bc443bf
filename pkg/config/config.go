package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

const (
	EnvPrefix = "PAYTEST"

	AppEnvDev  = "dev"
	AppEnvCI   = "ci"
	AppEnvProd = "production"
)

type Config struct {
	App       AppConfig
	Store     StoreConfig
	Retention RetentionConfig
	Gateway   GatewayConfig
	Token     TokenConfig
}

// Load reads configuration from the environment, picking up a local .env file
// when one exists.
func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"PAYTEST_APP_ENV" default:"ci"`
	LogLevel     string `envconfig:"PAYTEST_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"PAYTEST_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsCI() bool {
	return strings.EqualFold(a.Env, AppEnvCI)
}

// StoreConfig locates the record store. The path is explicit; callers wanting
// an in-memory store pass ":memory:" rather than relying on a hidden default.
type StoreConfig struct {
	Path        string        `envconfig:"PAYTEST_STORE_PATH" default:":memory:"`
	Engine      string        `envconfig:"PAYTEST_STORE_ENGINE" default:"sqlite"`
	BusyTimeout time.Duration `envconfig:"PAYTEST_STORE_BUSY_TIMEOUT" default:"5s"`
}

type RetentionConfig struct {
	LogDaysToKeep int `envconfig:"PAYTEST_RETENTION_LOG_DAYS" default:"90"`
}

type GatewayConfig struct {
	SuccessRate float64 `envconfig:"PAYTEST_GATEWAY_SUCCESS_RATE" default:"0.95"`
}

type TokenConfig struct {
	Passphrase string `envconfig:"PAYTEST_TOKEN_PASSPHRASE"`
	Iterations int    `envconfig:"PAYTEST_TOKEN_PBKDF2_ITERATIONS" default:"100000"`
}
