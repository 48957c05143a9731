// Package config carga la configuración desde variables de entorno y un .env opcional.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"vet-clinic-records/internal/platform/logger"

	"github.com/spf13/viper"
)

type Config struct {
	Port    string `mapstructure:"PORT"`
	Env     string `mapstructure:"ENV"`
	AppName string `mapstructure:"APP_NAME"`

	LogLevel  string `mapstructure:"LOG_LEVEL"`
	LogFormat string `mapstructure:"LOG_FORMAT"`

	DBDSN          string `mapstructure:"DB_DSN"`
	DBMaxOpenConns int    `mapstructure:"DB_MAX_OPEN_CONNS"`
	DBMaxIdleConns int    `mapstructure:"DB_MAX_IDLE_CONNS"`

	RabbitMQURL string `mapstructure:"RABBITMQ_URL"`

	OTelEnabled         bool          `mapstructure:"OTEL_ENABLED"`
	OTelEndpoint        string        `mapstructure:"OTEL_EXPORTER_OTLP_ENDPOINT"`
	OTelServiceName     string        `mapstructure:"OTEL_SERVICE_NAME"`
	OTelMetricsInterval time.Duration `mapstructure:"OTEL_METRICS_EXPORT_INTERVAL"`

	UploadDir     string `mapstructure:"UPLOAD_DIR"`
	UploadBaseURL string `mapstructure:"UPLOAD_BASE_URL"`

	CORSOrigins []string `mapstructure:"-"`
}

var keys = []string{
	"PORT", "ENV", "APP_NAME", "LOG_LEVEL", "LOG_FORMAT",
	"DB_DSN", "DB_MAX_OPEN_CONNS", "DB_MAX_IDLE_CONNS",
	"RABBITMQ_URL",
	"OTEL_ENABLED", "OTEL_EXPORTER_OTLP_ENDPOINT", "OTEL_SERVICE_NAME", "OTEL_METRICS_EXPORT_INTERVAL",
	"UPLOAD_DIR", "UPLOAD_BASE_URL", "CORS_ORIGINS",
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("PORT", "8080")
	v.SetDefault("ENV", "development")
	v.SetDefault("APP_NAME", "vet-clinic-records")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "text")
	v.SetDefault("DB_MAX_OPEN_CONNS", 10)
	v.SetDefault("DB_MAX_IDLE_CONNS", 5)
	v.SetDefault("OTEL_ENABLED", false)
	v.SetDefault("OTEL_EXPORTER_OTLP_ENDPOINT", "localhost:4317")
	v.SetDefault("OTEL_METRICS_EXPORT_INTERVAL", "30s")
	v.SetDefault("UPLOAD_DIR", "./uploads")
	v.SetDefault("UPLOAD_BASE_URL", "/uploads")
	v.SetDefault("CORS_ORIGINS", "*")
}

// Load lee .env (si existe) y el entorno, que tiene prioridad.
func Load() (*Config, error) {
	return load(".env")
}

func load(envFile string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigFile(envFile)
	v.SetConfigType("env")
	v.AutomaticEnv()
	for _, k := range keys {
		_ = v.BindEnv(k)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		// SetConfigFile con un archivo inexistente devuelve un *fs.PathError.
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("read %s: %w", envFile, err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	cfg.CORSOrigins = splitList(v.GetString("CORS_ORIGINS"))
	if cfg.OTelServiceName == "" {
		cfg.OTelServiceName = cfg.AppName
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	var problems []string
	if strings.TrimSpace(c.Port) == "" {
		problems = append(problems, "PORT is required")
	}
	if c.DBMaxOpenConns < 1 {
		problems = append(problems, "DB_MAX_OPEN_CONNS must be >= 1")
	}
	if c.DBMaxIdleConns < 0 || c.DBMaxIdleConns > c.DBMaxOpenConns {
		problems = append(problems, "DB_MAX_IDLE_CONNS must be between 0 and DB_MAX_OPEN_CONNS")
	}
	switch strings.ToLower(c.LogFormat) {
	case "text", "json":
	default:
		problems = append(problems, fmt.Sprintf("LOG_FORMAT must be text or json, got %q", c.LogFormat))
	}
	if c.OTelEnabled && strings.TrimSpace(c.OTelEndpoint) == "" {
		problems = append(problems, "OTEL_EXPORTER_OTLP_ENDPOINT is required when OTEL_ENABLED is true")
	}
	if strings.TrimSpace(c.UploadDir) == "" {
		problems = append(problems, "UPLOAD_DIR is required")
	}
	if len(problems) > 0 {
		return fmt.Errorf("invalid config: %s", strings.Join(problems, "; "))
	}
	return nil
}

func (c *Config) IsDev() bool { return c.Env == "development" }

// UseMemoryStore: sin DSN se trabaja en memoria.
func (c *Config) UseMemoryStore() bool { return strings.TrimSpace(c.DBDSN) == "" }

func (c *Config) Addr() string { return ":" + c.Port }

func (c *Config) LoggerOptions() logger.Options {
	return logger.Options{
		Level:  logger.ParseLevel(c.LogLevel),
		Format: logger.ParseFormat(c.LogFormat),
		App:    c.AppName,
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
