package config

import (
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type HTTPConfig struct {
	Host string
	Port int
}

type DVLAConfig struct {
	APIKey  string
	URL     string
	Timeout time.Duration
}

type Config struct {
	Environment    string
	HTTP           HTTPConfig
	DVLA           DVLAConfig
	AllowedOrigins []string
}

const defaultDVLAURL = "https://driver-vehicle-licensing.api.gov.uk/vehicle-enquiry/v1/vehicles"

func Load() (*Config, error) {
	// .env in the working directory, if present
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigName("app")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("./internal/config")

	v.AutomaticEnv()

	_ = v.ReadInConfig()

	cfg := &Config{
		Environment: v.GetString("APP_ENV"),
		HTTP: HTTPConfig{
			Host: v.GetString("HTTP_HOST"),
			Port: v.GetInt("HTTP_PORT"),
		},
		DVLA: DVLAConfig{
			APIKey:  v.GetString("DVLA_API_KEY"),
			URL:     v.GetString("DVLA_URL"),
			Timeout: v.GetDuration("DVLA_TIMEOUT"),
		},
		AllowedOrigins: splitOrigins(v.GetString("ALLOWED_ORIGINS")),
	}

	if cfg.HTTP.Host == "" {
		cfg.HTTP.Host = "0.0.0.0"
	}
	if cfg.HTTP.Port == 0 {
		cfg.HTTP.Port = 8080
	}
	if cfg.Environment == "" {
		cfg.Environment = "development"
	}
	if cfg.DVLA.URL == "" {
		cfg.DVLA.URL = defaultDVLAURL
	}
	if cfg.DVLA.Timeout == 0 {
		cfg.DVLA.Timeout = 10 * time.Second
	}

	return cfg, nil
}

// Lookups still work without an API key at the config level; the DVLA client
// reports "not configured" per call, which the service collapses to not-found.
func (c *Config) HasAPIKey() bool {
	return strings.TrimSpace(c.DVLA.APIKey) != ""
}

func splitOrigins(raw string) []string {
	origins := make([]string, 0)
	for _, o := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(o); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}
