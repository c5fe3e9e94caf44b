package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix is the prefix shared by every environment variable read by Load.
const EnvPrefix = "HUNTIL_"

// DatabaseConfig holds relational store connection settings.
// Driver "sqlite" opens the local file at Path; driver "postgres" builds a DSN
// from the host/port/user/name fields.
type DatabaseConfig struct {
	Driver             string `koanf:"driver" validate:"required,oneof=sqlite postgres"`
	Path               string `koanf:"path"`
	Host               string `koanf:"host"`
	Port               string `koanf:"port"`
	User               string `koanf:"user"`
	Password           string `koanf:"password"`
	Name               string `koanf:"name"`
	SSLMode            string `koanf:"sslmode"`
	MaxOpenConns       int    `koanf:"max_open_conns" validate:"gte=0"`
	MaxIdleConns       int    `koanf:"max_idle_conns" validate:"gte=0"`
	ConnMaxLifetimeSec int    `koanf:"conn_max_lifetime_sec" validate:"gte=0"`
	AutoMigrate        bool   `koanf:"auto_migrate"`
}

// CORSConfig holds the fixed origin allow-list.
type CORSConfig struct {
	AllowOrigins []string `koanf:"allow_origins" validate:"required,min=1,dive,required"`
}

// LogConfig controls the zerolog output.
type LogConfig struct {
	Level  string `koanf:"level" validate:"oneof=debug info warn error"`
	Format string `koanf:"format" validate:"oneof=json console"`
}

// AppConfig is the centralized configuration struct for the application.
// It is populated from HUNTIL_ prefixed environment variables.
type AppConfig struct {
	Port      string         `koanf:"port" validate:"required,numeric"`
	APIPrefix string         `koanf:"api_prefix"`
	Database  DatabaseConfig `koanf:"database"`
	CORS      CORSConfig     `koanf:"cors"`
	Log       LogConfig      `koanf:"log"`
}

// Default returns the configuration used when no variables are set.
func Default() *AppConfig {
	return &AppConfig{
		Port: "8080",
		Database: DatabaseConfig{
			Driver:             "sqlite",
			Path:               "huntil.db",
			Port:               "5432",
			SSLMode:            "disable",
			MaxOpenConns:       10,
			MaxIdleConns:       5,
			ConnMaxLifetimeSec: 300,
			AutoMigrate:        true,
		},
		CORS: CORSConfig{
			AllowOrigins: []string{"http://localhost:3000"},
		},
		Log: LogConfig{
			Level:  "info",
			Format: "json",
		},
	}
}

// sections maps env var prefixes (after EnvPrefix) to koanf key paths.
var sections = map[string]string{
	"db_":   "database.",
	"cors_": "cors.",
	"log_":  "log.",
}

// envKey turns HUNTIL_DB_MAX_OPEN_CONNS into database.max_open_conns.
func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	for prefix, section := range sections {
		if strings.HasPrefix(key, prefix) {
			return section + strings.TrimPrefix(key, prefix)
		}
	}
	return key
}

func envValue(s, v string) (string, any) {
	key := envKey(s)
	if key == "cors.allow_origins" {
		var origins []string
		for _, o := range strings.Split(v, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
		return key, origins
	}
	return key, v
}

// Load reads configuration from environment variables on top of Default.
// A .env file can be auto-loaded by importing: _ "github.com/joho/godotenv/autoload"
// Real environment variables take precedence over the file.
func Load() (*AppConfig, error) {
	k := koanf.New(".")
	if err := k.Load(env.ProviderWithValue(EnvPrefix, ".", envValue), nil); err != nil {
		return nil, fmt.Errorf("load env: %w", err)
	}

	cfg := Default()
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	cfg.APIPrefix = normalizePrefix(cfg.APIPrefix)

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// normalizePrefix returns "" or a path like "/api/v1" without trailing slash.
func normalizePrefix(p string) string {
	p = strings.Trim(strings.TrimSpace(p), "/")
	if p == "" {
		return ""
	}
	return "/" + p
}
