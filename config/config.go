package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Backend names accepted by the session and reservation sections.
const (
	SessionBackendRedis  = "redis"
	SessionBackendMemory = "memory"

	ReservationBackendRemote = "remote"
	ReservationBackendSQLite = "sqlite"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig
	CORS       CORSConfig
	RateLimit  RateLimitConfig

	// Agent
	LLM     LLMConfig
	Redis   RedisConfig
	Session SessionConfig

	// Booking
	Reservation    ReservationConfig
	GoogleCalendar GoogleCalendarConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type CORSConfig struct {
	AllowedOrigins []string
}

type RateLimitConfig struct {
	PerMin int // 0 disables limiting
}

// RedisConfig holds the chat-history store connection. URL wins over the discrete fields.
type RedisConfig struct {
	URL      string
	Host     string
	Port     int
	Password string
	DB       int
}

// Addr returns host:port.
func (c RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

type SessionConfig struct {
	Backend    string
	TTL        time.Duration
	MaxHistory int
	KeyPrefix  string
}

type ReservationConfig struct {
	Backend       string
	BookingURL    string
	SQLitePath    string
	ReferenceYear int // 0 means the current year in Timezone
	Timezone      string
	Purpose       string
	Timeout       time.Duration
}

type GoogleCalendarConfig struct {
	CredentialsPath    string
	CalendarID         string
	AppointmentMinutes int
}

// Enabled reports whether the calendar mirror should be wired.
func (c GoogleCalendarConfig) Enabled() bool {
	return c.CredentialsPath != ""
}

// LLMConfig holds configuration for the LLM provider abstraction layer
type LLMConfig struct {
	Providers       []ProviderConfig `yaml:"providers"`
	FallbackEnabled bool             `yaml:"fallback_enabled"`
	RetryAttempts   int              `yaml:"retry_attempts"`
	RetryDelay      string           `yaml:"retry_delay"`
	MaxTotalTimeout string           `yaml:"max_total_timeout"`
	Temperature     float64          `yaml:"temperature"`
}

// ProviderConfig holds configuration for a single LLM provider
type ProviderConfig struct {
	Name     string `yaml:"name"`
	Enabled  bool   `yaml:"enabled"`
	Priority int    `yaml:"priority"`
	APIKey   string `yaml:"api_key"`
	BaseURL  string `yaml:"base_url,omitempty"`
	Model    string `yaml:"model"`
	Timeout  string `yaml:"timeout"`
}

// Load loads configuration using Viper.
// A .env file in the working directory is loaded first when present.
// Config file name: config.yaml, searched in ./config, . and /etc/app/
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("error reading .env file: %w", err)
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(".")
	v.AddConfigPath("/etc/app/")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	return fromViper(v)
}

// fromViper builds and validates a Config from an already-populated viper instance.
func fromViper(v *viper.Viper) (*Config, error) {
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	setDefaults(v)

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = v.GetString("environment.name")
	cfg.HTTPServer.Port = v.GetInt("http_server.port")
	cfg.HTTPServer.Mode = v.GetString("http_server.mode")
	cfg.Logger.Level = v.GetString("logger.level")
	cfg.Logger.Mode = v.GetString("logger.mode")
	cfg.Logger.Encoding = v.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = v.GetBool("logger.color_enabled")
	cfg.CORS.AllowedOrigins = splitList(v.Get("cors.allowed_origins"))
	cfg.RateLimit.PerMin = v.GetInt("rate_limit.per_min")

	// Chat history
	cfg.Redis.URL = v.GetString("redis.url")
	cfg.Redis.Host = v.GetString("redis.host")
	cfg.Redis.Port = v.GetInt("redis.port")
	cfg.Redis.Password = v.GetString("redis.password")
	cfg.Redis.DB = v.GetInt("redis.db")
	if redisURL := v.GetString("redis_url"); redisURL != "" {
		cfg.Redis.URL = redisURL
	}
	cfg.Session.Backend = v.GetString("session.backend")
	cfg.Session.TTL = v.GetDuration("session.ttl")
	cfg.Session.MaxHistory = v.GetInt("session.max_history")
	cfg.Session.KeyPrefix = v.GetString("session.key_prefix")

	// Booking
	cfg.Reservation.Backend = v.GetString("reservation.backend")
	cfg.Reservation.BookingURL = v.GetString("reservation.booking_url")
	if bookingURL := v.GetString("booking_url"); bookingURL != "" {
		cfg.Reservation.BookingURL = bookingURL
	}
	cfg.Reservation.SQLitePath = v.GetString("reservation.sqlite_path")
	cfg.Reservation.ReferenceYear = v.GetInt("reservation.reference_year")
	cfg.Reservation.Timezone = v.GetString("reservation.timezone")
	cfg.Reservation.Purpose = v.GetString("reservation.purpose")
	cfg.Reservation.Timeout = v.GetDuration("reservation.timeout")

	cfg.GoogleCalendar.CredentialsPath = v.GetString("google_calendar.credentials_path")
	cfg.GoogleCalendar.CalendarID = v.GetString("google_calendar.calendar_id")
	cfg.GoogleCalendar.AppointmentMinutes = v.GetInt("google_calendar.appointment_minutes")
	if googleCreds := v.GetString("google_calendar_credentials"); googleCreds != "" {
		cfg.GoogleCalendar.CredentialsPath = googleCreds
	}

	// LLM Provider Abstraction
	cfg.LLM.FallbackEnabled = v.GetBool("llm.fallback_enabled")
	cfg.LLM.RetryAttempts = v.GetInt("llm.retry_attempts")
	cfg.LLM.RetryDelay = v.GetString("llm.retry_delay")
	cfg.LLM.MaxTotalTimeout = v.GetString("llm.max_total_timeout")
	cfg.LLM.Temperature = v.GetFloat64("llm.temperature")

	if v.IsSet("llm.providers") {
		if providersList, ok := v.Get("llm.providers").([]interface{}); ok {
			for _, p := range providersList {
				providerMap, ok := p.(map[string]interface{})
				if !ok {
					continue
				}
				cfg.LLM.Providers = append(cfg.LLM.Providers, ProviderConfig{
					Name:     getStringFromMap(providerMap, "name"),
					Enabled:  getBoolFromMap(providerMap, "enabled"),
					Priority: getIntFromMap(providerMap, "priority"),
					APIKey:   expandEnvVar(v, getStringFromMap(providerMap, "api_key")),
					BaseURL:  getStringFromMap(providerMap, "base_url"),
					Model:    getStringFromMap(providerMap, "model"),
					Timeout:  getStringFromMap(providerMap, "timeout"),
				})
			}
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("environment.name", "development")
	v.SetDefault("http_server.port", 8000)
	v.SetDefault("http_server.mode", "debug")
	v.SetDefault("logger.level", "debug")
	v.SetDefault("logger.mode", "debug")
	v.SetDefault("logger.encoding", "console")
	v.SetDefault("logger.color_enabled", true)
	v.SetDefault("cors.allowed_origins", []string{"http://localhost:3000", "http://localhost:3002"})
	v.SetDefault("rate_limit.per_min", 60)

	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("session.backend", SessionBackendRedis)
	v.SetDefault("session.ttl", "24h")
	v.SetDefault("session.max_history", 20)
	v.SetDefault("session.key_prefix", "chat_history:")

	v.SetDefault("reservation.backend", ReservationBackendRemote)
	v.SetDefault("reservation.booking_url", "http://localhost:3002")
	v.SetDefault("reservation.sqlite_path", "reservations.db")
	v.SetDefault("reservation.reference_year", 0)
	v.SetDefault("reservation.timezone", "Asia/Seoul")
	v.SetDefault("reservation.purpose", "진료")
	v.SetDefault("reservation.timeout", "10s")
	v.SetDefault("google_calendar.calendar_id", "primary")
	v.SetDefault("google_calendar.appointment_minutes", 30)

	// LLM defaults
	v.SetDefault("llm.fallback_enabled", true)
	v.SetDefault("llm.retry_attempts", 3)
	v.SetDefault("llm.retry_delay", "1s")
	v.SetDefault("llm.max_total_timeout", "60s")
	v.SetDefault("llm.temperature", 0.0)
}

func (c *Config) validate() error {
	if err := validateLLMConfig(&c.LLM); err != nil {
		return err
	}

	for _, origin := range c.CORS.AllowedOrigins {
		if !strings.HasPrefix(origin, "http://") && !strings.HasPrefix(origin, "https://") {
			return fmt.Errorf("cors.allowed_origins: %q must start with http:// or https://", origin)
		}
	}

	switch c.Session.Backend {
	case SessionBackendRedis, SessionBackendMemory:
	default:
		return fmt.Errorf("session.backend: unknown backend %q", c.Session.Backend)
	}
	if c.Session.MaxHistory <= 0 {
		return fmt.Errorf("session.max_history must be positive")
	}

	switch c.Reservation.Backend {
	case ReservationBackendRemote:
		if c.Reservation.BookingURL == "" {
			return fmt.Errorf("reservation.booking_url is required for the remote backend")
		}
	case ReservationBackendSQLite:
		if c.Reservation.SQLitePath == "" {
			return fmt.Errorf("reservation.sqlite_path is required for the sqlite backend")
		}
	default:
		return fmt.Errorf("reservation.backend: unknown backend %q", c.Reservation.Backend)
	}
	if _, err := time.LoadLocation(c.Reservation.Timezone); err != nil {
		return fmt.Errorf("reservation.timezone: %w", err)
	}
	if c.Reservation.ReferenceYear < 0 || c.Reservation.ReferenceYear > 9999 {
		return fmt.Errorf("reservation.reference_year out of range: %d", c.Reservation.ReferenceYear)
	}
	return nil
}

// expandEnvVar expands environment variables in the format ${VAR_NAME}
func expandEnvVar(v *viper.Viper, value string) string {
	if !strings.HasPrefix(value, "${") || !strings.HasSuffix(value, "}") {
		return value
	}

	envVar := value[2 : len(value)-1]
	if envValue := v.GetString(envVar); envValue != "" {
		return envValue
	}
	if envValue := v.GetString(strings.ToLower(envVar)); envValue != "" {
		return envValue
	}
	if envValue := os.Getenv(envVar); envValue != "" {
		return envValue
	}
	return value
}

// validateLLMConfig validates the LLM configuration
func validateLLMConfig(cfg *LLMConfig) error {
	if len(cfg.Providers) == 0 {
		return fmt.Errorf("no LLM providers configured - please add llm.providers section to config.yaml")
	}

	enabledCount := 0
	priorityMap := make(map[int]bool)

	for i, provider := range cfg.Providers {
		if provider.Name == "" {
			return fmt.Errorf("provider %d: name is required", i)
		}
		if provider.Model == "" {
			return fmt.Errorf("provider %s: model is required", provider.Name)
		}
		if !provider.Enabled {
			continue
		}
		enabledCount++

		if provider.Priority <= 0 {
			return fmt.Errorf("provider %s: priority must be positive", provider.Name)
		}
		if priorityMap[provider.Priority] {
			return fmt.Errorf("provider %s: duplicate priority %d", provider.Name, provider.Priority)
		}
		priorityMap[provider.Priority] = true
	}

	if enabledCount == 0 {
		return fmt.Errorf("no enabled LLM providers")
	}
	return nil
}

// splitList accepts either a YAML list or a comma-separated env string.
func splitList(raw interface{}) []string {
	var items []string
	switch val := raw.(type) {
	case []string:
		items = val
	case []interface{}:
		for _, it := range val {
			if s, ok := it.(string); ok {
				items = append(items, s)
			}
		}
	case string:
		items = strings.Split(val, ",")
	}

	var out []string
	for _, it := range items {
		if it = strings.TrimSpace(it); it != "" {
			out = append(out, it)
		}
	}
	return out
}

// Helper functions to safely extract values from map[string]interface{}
func getStringFromMap(m map[string]interface{}, key string) string {
	if val, ok := m[key]; ok {
		if str, ok := val.(string); ok {
			return str
		}
	}
	return ""
}

func getBoolFromMap(m map[string]interface{}, key string) bool {
	if val, ok := m[key]; ok {
		if b, ok := val.(bool); ok {
			return b
		}
	}
	return false
}

func getIntFromMap(m map[string]interface{}, key string) int {
	if val, ok := m[key]; ok {
		switch n := val.(type) {
		case int:
			return n
		case int64:
			return int(n)
		case float64:
			return int(n)
		}
	}
	return 0
}
