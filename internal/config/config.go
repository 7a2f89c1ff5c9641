package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const envPrefix = "PETAPI"

type Config struct {
	App   AppConfig   `mapstructure:"app"`
	HTTP  HTTPConfig  `mapstructure:"http"`
	Store StoreConfig `mapstructure:"store"`
	Cache CacheConfig `mapstructure:"cache"`
	Log   LogConfig   `mapstructure:"log"`
}

type AppConfig struct {
	Name string `mapstructure:"name"`
}

type HTTPConfig struct {
	Addr            string        `mapstructure:"addr"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// StoreConfig: Driver es sqlite, postgres, mysql o memory.
type StoreConfig struct {
	Driver  string `mapstructure:"driver"`
	DSN     string `mapstructure:"dsn"`
	Migrate bool   `mapstructure:"migrate"`
}

// CacheConfig: RedisAddr vacío deshabilita el cache.
type CacheConfig struct {
	RedisAddr string        `mapstructure:"redis_addr"`
	TTL       time.Duration `mapstructure:"ttl"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// ConfigError indica un valor inválido en un campo puntual.
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return "config error in field '" + e.Field + "': " + e.Message
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "pet-api")
	v.SetDefault("http.addr", ":8080")
	v.SetDefault("http.read_timeout", 5*time.Second)
	v.SetDefault("http.write_timeout", 10*time.Second)
	v.SetDefault("http.shutdown_timeout", 10*time.Second)
	v.SetDefault("store.driver", "sqlite")
	v.SetDefault("store.dsn", "file:pets.db")
	v.SetDefault("store.migrate", true)
	v.SetDefault("cache.redis_addr", "")
	v.SetDefault("cache.ttl", 5*time.Minute)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
}

// Load arma la config con precedencia: env > archivo > defaults.
// configFile vacío busca ./config.{yaml,json,toml}; si no existe, sigue con defaults.
func Load(configFile string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Nombres heredados (DB_DSN, LOG_LEVEL, ...) siguen funcionando.
	_ = v.BindEnv("store.dsn", envPrefix+"_STORE_DSN", "DB_DSN")
	_ = v.BindEnv("log.level", envPrefix+"_LOG_LEVEL", "LOG_LEVEL")
	_ = v.BindEnv("log.format", envPrefix+"_LOG_FORMAT", "LOG_FORMAT")
	_ = v.BindEnv("app.name", envPrefix+"_APP_NAME", "APP_NAME")
	_ = v.BindEnv("cache.redis_addr", envPrefix+"_CACHE_REDIS_ADDR", "REDIS_ADDR")

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("config: read %s: %w", configFile, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}

	// PORT (estilo PaaS) pisa http.addr si no se configuró explícitamente.
	if port := strings.TrimSpace(os.Getenv("PORT")); port != "" && os.Getenv(envPrefix+"_HTTP_ADDR") == "" && !v.InConfig("http.addr") {
		cfg.HTTP.Addr = ":" + port
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	switch c.Store.Driver {
	case "sqlite", "postgres", "mysql":
		if strings.TrimSpace(c.Store.DSN) == "" {
			return &ConfigError{Field: "store.dsn", Message: "required for driver " + c.Store.Driver}
		}
	case "memory":
	default:
		return &ConfigError{Field: "store.driver", Message: fmt.Sprintf("unsupported driver %q", c.Store.Driver)}
	}

	if strings.TrimSpace(c.HTTP.Addr) == "" {
		return &ConfigError{Field: "http.addr", Message: "required"}
	}
	if !strings.Contains(c.HTTP.Addr, ":") {
		c.HTTP.Addr = ":" + c.HTTP.Addr
	}

	if c.HTTP.ReadTimeout <= 0 {
		return &ConfigError{Field: "http.read_timeout", Message: "must be positive"}
	}
	if c.HTTP.WriteTimeout <= 0 {
		return &ConfigError{Field: "http.write_timeout", Message: "must be positive"}
	}
	if c.HTTP.ShutdownTimeout <= 0 {
		return &ConfigError{Field: "http.shutdown_timeout", Message: "must be positive"}
	}
	if c.Cache.RedisAddr != "" && c.Cache.TTL <= 0 {
		return &ConfigError{Field: "cache.ttl", Message: "must be positive when cache is enabled"}
	}
	return nil
}
