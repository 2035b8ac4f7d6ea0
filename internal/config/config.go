package config

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

const (
	UserStoreMemory   = "memory"
	UserStorePostgres = "postgres"
	UserStoreRedis    = "redis"
)

type Config struct {
	Environment string `toml:"-"`
	Host        string `toml:"host"`
	Port        int    `toml:"port"`

	// logging
	LogLevel      string `toml:"log_level"`
	LogsPath      string `toml:"logs_path"`
	LogToStdout   bool   `toml:"log_to_stdout"`
	LogFormatJSON bool   `toml:"log_format_json"`
	SentryEnabled bool   `toml:"sentry_enabled"`

	// site
	SiteName          string `toml:"site_name"`
	PublicDir         string `toml:"public_dir"`
	StaticCacheSizeMB int    `toml:"static_cache_size_mb"`
	BcryptCost        int    `toml:"bcrypt_cost"`

	// user store: memory | postgres | redis
	UserStore string `toml:"user_store"`

	// postgres
	PostgresHost   string `toml:"postgres_host"`
	PostgresPort   string `toml:"postgres_port"`
	PostgresDBName string `toml:"postgres_db_name"`
	PostgresUser   string `toml:"postgres_user"`

	// redis
	RedisHost string `toml:"redis_host"`
	RedisPort string `toml:"redis_port"`

	// metrics & tracing
	PrometheusMetricsHost string `toml:"prometheus_metrics_host"`
	PrometheusMetricsPort string `toml:"prometheus_metrics_port"`
	TracingEnabled        bool   `toml:"tracing_enabled"`
}

type Toml struct {
	Development *Config
	Production  *Config
}

func (t *Toml) Get(env string) (*Config, error) {
	var cfg *Config
	switch strings.ToLower(env) {
	case "dev", "development":
		cfg = t.Development
	case "prod", "production":
		cfg = t.Production
	default:
		return nil, fmt.Errorf("unknown env: %s", env)
	}

	if cfg == nil {
		return nil, fmt.Errorf("config for env [%s] not found", env)
	}
	return cfg, nil
}

func Load(env, path string) (*Config, error) {
	var t Toml
	if _, err := toml.DecodeFile(path, &t); err != nil {
		return nil, fmt.Errorf("decode toml config %s: %w", path, err)
	}

	cfg, err := t.Get(env)
	if err != nil {
		return nil, err
	}

	cfg.Environment = strings.ToLower(env)
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Host == "" {
		c.Host = "localhost"
	}
	if c.Port == 0 {
		c.Port = 8080
	}
	if c.SiteName == "" {
		c.SiteName = "plainsite"
	}
	if c.PublicDir == "" {
		c.PublicDir = "./public"
	}
	if c.StaticCacheSizeMB <= 0 {
		c.StaticCacheSizeMB = 16
	}
	if c.UserStore == "" {
		c.UserStore = UserStoreMemory
	}
	if c.PostgresUser == "" {
		c.PostgresUser = "postgres"
	}
}

func (c *Config) Validate() error {
	switch c.UserStore {
	case UserStoreMemory:
	case UserStorePostgres:
		if c.PostgresHost == "" || c.PostgresPort == "" || c.PostgresDBName == "" {
			return fmt.Errorf("postgres user store needs postgres_host, postgres_port and postgres_db_name")
		}
	case UserStoreRedis:
		if c.RedisHost == "" || c.RedisPort == "" {
			return fmt.Errorf("redis user store needs redis_host and redis_port")
		}
	default:
		return fmt.Errorf("unknown user store: %s", c.UserStore)
	}
	return nil
}
