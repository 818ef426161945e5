package config

import (
	"errors"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Env       string          `json:"env"`
	Http      HttpConfig      `json:"http"`
	Geocoder  GeocoderConfig  `json:"geocoder"`
	Telemetry TelemetryConfig `json:"telemetry"`
	Poller    PollerConfig    `json:"poller"`
	Redis     RedisConfig     `json:"redis"`
	History   HistoryConfig   `json:"history"`
	Locator   LocatorConfig   `json:"locator"`
	APIKey    string          `json:"api_key,omitempty"`
}

type HttpConfig struct {
	Port            string        `json:"port"`
	ReadTimeout     time.Duration `json:"read_timeout"`
	WriteTimeout    time.Duration `json:"write_timeout"`
	ShutdownTimeout time.Duration `json:"shutdown_timeout"`
}

type GeocoderConfig struct {
	BaseURL string        `json:"base_url"`
	APIKey  string        `json:"api_key,omitempty"`
	Timeout time.Duration `json:"timeout"`
}

type TelemetryConfig struct {
	URL      string `json:"url"`
	Disabled bool   `json:"disabled"`
}

type PollerConfig struct {
	Interval     time.Duration `json:"interval"`
	Timeout      time.Duration `json:"timeout"`
	MaximumAge   time.Duration `json:"maximum_age"`
	HighAccuracy bool          `json:"high_accuracy"`
	Autostart    bool          `json:"autostart"`
}

type RedisConfig struct {
	Addr     string `json:"addr"`
	Password string `json:"password,omitempty"`
	DB       int    `json:"db"`
}

type HistoryConfig struct {
	Capacity int `json:"capacity"`
}

type LocatorConfig struct {
	StartLat float64 `json:"start_lat"`
	StartLng float64 `json:"start_lng"`
}

func LoadConfig() (*Config, error) {

	stdLogger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		stdLogger.Warn(".env load warning", slog.Any("error", err))
	}

	cfg := &Config{
		Env: getEnv("ENV", "local"),
		Http: HttpConfig{
			Port:            getEnv("HTTP_PORT", ":8080"),
			ReadTimeout:     getEnvDuration("HTTP_READ_TIMEOUT", 10*time.Second),
			WriteTimeout:    getEnvDuration("HTTP_WRITE_TIMEOUT", 10*time.Second),
			ShutdownTimeout: getEnvDuration("HTTP_SHUTDOWN_TIMEOUT", 10*time.Second),
		},
		Geocoder: GeocoderConfig{
			BaseURL: getEnv("GEOCODER_BASE_URL", "https://api.opencagedata.com"),
			APIKey:  getEnv("GEOCODER_API_KEY", ""),
			Timeout: getEnvDuration("GEOCODER_TIMEOUT", 10*time.Second),
		},
		Telemetry: TelemetryConfig{
			URL:      getEnv("TELEMETRY_URL", "https://httpstat.us/200"),
			Disabled: getEnvBool("TELEMETRY_DISABLED", false),
		},
		Poller: PollerConfig{
			Interval:     getEnvDuration("POLLER_INTERVAL", 5*time.Minute),
			Timeout:      getEnvDuration("POLLER_TIMEOUT", 15*time.Second),
			MaximumAge:   getEnvDuration("POLLER_MAXIMUM_AGE", 10*time.Second),
			HighAccuracy: getEnvBool("POLLER_HIGH_ACCURACY", true),
			Autostart:    getEnvBool("POLLER_AUTOSTART", true),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", "redis-local:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
		},
		History: HistoryConfig{
			Capacity: getEnvInt("HISTORY_CAPACITY", 30),
		},
		Locator: LocatorConfig{
			StartLat: getEnvFloat("LOCATOR_START_LAT", 17.3920466),
			StartLng: getEnvFloat("LOCATOR_START_LNG", 78.4758037),
		},
		APIKey: getEnv("API_KEY", "super-secret-key"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	stdLogger.Info("Config loaded successfully",
		slog.String("env", cfg.Env),
		slog.String("http_port", cfg.Http.Port),
		slog.String("geocoder_base_url", cfg.Geocoder.BaseURL),
		slog.String("telemetry_url", cfg.Telemetry.URL),
		slog.Duration("poller_interval", cfg.Poller.Interval),
		slog.String("redis_addr", cfg.Redis.Addr))

	return cfg, nil
}

func (c *Config) Validate() error {

	if c.Http.Port == "" || c.Http.Port[0] != ':' {
		return errors.New("HTTP_PORT must start with ':' like ':8080'")
	}

	if c.Geocoder.BaseURL == "" {
		return errors.New("GEOCODER_BASE_URL required")
	}

	if c.Poller.Interval <= 0 {
		return errors.New("POLLER_INTERVAL must be positive")
	}

	if c.History.Capacity <= 0 {
		return errors.New("HISTORY_CAPACITY must be positive")
	}

	if c.Telemetry.Disabled {
		slog.Warn("telemetry DISABLED via TELEMETRY_DISABLED=true")
	}

	return nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getEnvFloat(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return def
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}
