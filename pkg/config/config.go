package config

import (
	"errors"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"

	passwordPlaceholder = "<db_password>"
)

type Config struct {
	Env       string
	Port      int
	APIPrefix string

	Mongo   MongoConfig
	Admin   AdminConfig
	CORS    CORSConfig
	Log     LogConfig
	Metrics MetricsConfig
	Docs    DocsConfig
}

// MongoConfig describes the document store connection.
type MongoConfig struct {
	URI      string
	Password string
	Database string
	Timeout  time.Duration
}

// AdminConfig holds the shared secret guarding destructive admin routes.
type AdminConfig struct {
	Secret string
}

type CORSConfig struct {
	AllowedOrigins []string
}

type LogConfig struct {
	Level  string
	Format string
}

// MetricsConfig toggles the Prometheus endpoint and middleware.
type MetricsConfig struct {
	Enabled bool
}

// DocsConfig toggles the swagger UI.
type DocsConfig struct {
	Enabled bool
}

// ConnectionURI returns the Mongo URI with the password placeholder substituted.
func (m MongoConfig) ConnectionURI() string {
	return strings.ReplaceAll(m.URI, passwordPlaceholder, m.Password)
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}

	cfg := &Config{}

	cfg.Env = v.GetString("ENV")
	cfg.Port = v.GetInt("PORT")
	cfg.APIPrefix = v.GetString("API_PREFIX")

	cfg.Mongo = MongoConfig{
		URI:      v.GetString("MONGO_URI"),
		Password: v.GetString("MONGO_PASSWORD"),
		Database: v.GetString("DB_NAME"),
		Timeout:  parseDuration(v.GetString("MONGO_TIMEOUT"), 10*time.Second),
	}

	cfg.Admin = AdminConfig{Secret: v.GetString("ADMIN_SECRET")}

	cfg.CORS = CORSConfig{AllowedOrigins: splitAndTrim(v.GetString("ALLOWED_ORIGINS"))}

	cfg.Log = LogConfig{
		Level:  v.GetString("LOG_LEVEL"),
		Format: v.GetString("LOG_FORMAT"),
	}

	cfg.Metrics = MetricsConfig{Enabled: v.GetBool("ENABLE_METRICS")}

	docsEnabled := cfg.Env != EnvProduction
	if v.IsSet("ENABLE_DOCS") {
		docsEnabled = v.GetBool("ENABLE_DOCS")
	}
	cfg.Docs = DocsConfig{Enabled: docsEnabled}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ENV", EnvDevelopment)
	v.SetDefault("PORT", 8000)
	v.SetDefault("API_PREFIX", "/api")

	v.SetDefault("MONGO_URI", "mongodb://localhost:27017/?appName=Trackademic")
	v.SetDefault("MONGO_PASSWORD", "")
	v.SetDefault("DB_NAME", "trackademic")
	v.SetDefault("MONGO_TIMEOUT", "10s")

	v.SetDefault("ADMIN_SECRET", "admin_secret_key")

	v.SetDefault("ALLOWED_ORIGINS", "")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")

	v.SetDefault("ENABLE_METRICS", true)
}

func parseDuration(raw string, fallback time.Duration) time.Duration {
	if raw == "" {
		return fallback
	}

	d, err := time.ParseDuration(raw)
	if err != nil {
		return fallback
	}

	return d
}

func splitAndTrim(raw string) []string {
	if raw == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}

	return result
}
