package app

import (
	"fmt"
	"os"
	"strings"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/yungbote/exocatalog/internal/data/db"
	"github.com/yungbote/exocatalog/internal/observability"
)

// ConfigPathEnv names the variable holding an optional YAML config path.
const ConfigPathEnv = "EXOCATALOG_CONFIG"

// Config can come from a YAML file, with environment variables always
// overriding it. Passwords only come from the environment.
type Config struct {
	LogMode string `yaml:"log_mode" env:"LOG_MODE" env-default:"development"`
	Port    string `yaml:"port" env:"PORT" env-default:"8080"`

	Database DatabaseConfig `yaml:"database"`
	Metrics  MetricsConfig  `yaml:"metrics"`
	Otel     OtelConfig     `yaml:"otel"`

	// CORSAllowedOriginsStr is a comma-separated origin list; empty keeps the local dev origins.
	CORSAllowedOriginsStr string   `yaml:"cors_allowed_origins" env:"CORS_ALLOWED_ORIGINS" env-default:""`
	CORSAllowedOrigins    []string `yaml:"-"`
}

type DatabaseConfig struct {
	Driver     string `yaml:"driver" env:"DB_DRIVER" env-default:"sqlite"`
	SQLitePath string `yaml:"sqlite_path" env:"SQLITE_PATH" env-default:"exocatalog.db"`
	Host       string `yaml:"host" env:"POSTGRES_HOST" env-default:"localhost"`
	Port       string `yaml:"port" env:"POSTGRES_PORT" env-default:"5432"`
	User       string `yaml:"user" env:"POSTGRES_USER" env-default:"exo"`
	Password   string `yaml:"-" env:"POSTGRES_PASSWORD"`
	Name       string `yaml:"name" env:"POSTGRES_NAME" env-default:"exocatalog"`
	SSLMode    string `yaml:"ssl_mode" env:"POSTGRES_SSLMODE" env-default:"disable"`
	LogLevel   string `yaml:"log_level" env:"DB_LOG_LEVEL" env-default:"warn"`
}

type MetricsConfig struct {
	Enabled bool `yaml:"enabled" env:"METRICS_ENABLED" env-default:"true"`
}

type OtelConfig struct {
	Enabled     bool    `yaml:"enabled" env:"OTEL_ENABLED" env-default:"false"`
	ServiceName string  `yaml:"service_name" env:"OTEL_SERVICE_NAME" env-default:"exocatalog"`
	Environment string  `yaml:"environment" env:"OTEL_ENVIRONMENT" env-default:"local"`
	Endpoint    string  `yaml:"endpoint" env:"OTEL_EXPORTER_OTLP_ENDPOINT" env-default:""`
	Headers     string  `yaml:"-" env:"OTEL_EXPORTER_OTLP_HEADERS"`
	Insecure    bool    `yaml:"insecure" env:"OTEL_EXPORTER_OTLP_INSECURE" env-default:"false"`
	SampleRatio float64 `yaml:"sample_ratio" env:"OTEL_SAMPLE_RATIO" env-default:"1"`
}

// LoadConfig reads path (or $EXOCATALOG_CONFIG) when set, then the environment.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		path = strings.TrimSpace(os.Getenv(ConfigPathEnv))
	}
	cfg := &Config{}
	if path != "" {
		if err := cleanenv.ReadConfig(path, cfg); err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", path, err)
		}
	} else if err := cleanenv.ReadEnv(cfg); err != nil {
		return nil, fmt.Errorf("failed to read environment: %w", err)
	}
	cfg.CORSAllowedOrigins = splitList(cfg.CORSAllowedOriginsStr)
	switch strings.ToLower(cfg.Database.Driver) {
	case "", db.DriverSQLite, db.DriverPostgres:
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.Database.Driver)
	}
	return cfg, nil
}

func (c *Config) DBConfig() db.Config {
	return db.Config{
		Driver:           c.Database.Driver,
		SQLitePath:       c.Database.SQLitePath,
		PostgresHost:     c.Database.Host,
		PostgresPort:     c.Database.Port,
		PostgresUser:     c.Database.User,
		PostgresPassword: c.Database.Password,
		PostgresName:     c.Database.Name,
		PostgresSSLMode:  c.Database.SSLMode,
		SQLLogLevel:      c.Database.LogLevel,
	}
}

func (c *Config) OtelConfig(version string) observability.OtelConfig {
	return observability.OtelConfig{
		Enabled:     c.Otel.Enabled,
		ServiceName: c.Otel.ServiceName,
		Environment: c.Otel.Environment,
		Version:     version,
		Endpoint:    c.Otel.Endpoint,
		Headers:     c.Otel.Headers,
		Insecure:    c.Otel.Insecure,
		SampleRatio: c.Otel.SampleRatio,
	}
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
