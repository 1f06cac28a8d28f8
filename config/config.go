package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Storage and auth
	Database DatabaseConfig
	JWT      JWTConfig
	Cookie   CookieConfig

	// LLM Provider Abstraction
	LLM LLMConfig

	// AI schedule import
	Schedule ScheduleConfig

	// Optional mirror of created events
	GoogleCalendar GoogleCalendarConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port                 int
	Mode                 string
	ShutdownTimeout      time.Duration
	LoginRateLimitPerMin int
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type DatabaseConfig struct {
	DSN             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	AutoMigrate     bool
}

type JWTConfig struct {
	SecretKey string
	TTL       time.Duration
}

type CookieConfig struct {
	Name   string
	Domain string
	Secure bool
}

type ScheduleConfig struct {
	Timezone        string
	Temperature     float64
	TopP            float64
	MaxTokens       int
	MaxWeeks        int
	RateLimitPerMin int
}

type GoogleCalendarConfig struct {
	CredentialsPath string
	CalendarID      string
	Timezone        string
}

// Enabled reports whether the calendar mirror has credentials.
func (c GoogleCalendarConfig) Enabled() bool {
	return c.CredentialsPath != ""
}

// LLMConfig holds configuration for the LLM provider abstraction layer
type LLMConfig struct {
	Providers       []ProviderConfig `yaml:"providers"`
	FallbackEnabled bool             `yaml:"fallback_enabled"`
	RetryAttempts   int              `yaml:"retry_attempts"`
	RetryDelay      time.Duration    `yaml:"retry_delay"`
	MaxTotalTimeout time.Duration    `yaml:"max_total_timeout"`
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
// Config file name: config.yaml, searched in ./config, . and /etc/app/.
// A .env file in the working directory, if present, is loaded first.
func Load() (*Config, error) {
	_ = godotenv.Load()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.HTTPServer.ShutdownTimeout = viper.GetDuration("http_server.shutdown_timeout")
	cfg.HTTPServer.LoginRateLimitPerMin = viper.GetInt("http_server.login_rate_limit_per_min")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Database
	cfg.Database.DSN = viper.GetString("database.dsn")
	if dbURL := viper.GetString("database_url"); dbURL != "" {
		cfg.Database.DSN = dbURL
	}
	cfg.Database.MaxOpenConns = viper.GetInt("database.max_open_conns")
	cfg.Database.MaxIdleConns = viper.GetInt("database.max_idle_conns")
	cfg.Database.ConnMaxLifetime = viper.GetDuration("database.conn_max_lifetime")
	cfg.Database.AutoMigrate = viper.GetBool("database.auto_migrate")
	if cfg.Database.DSN == "" {
		return nil, fmt.Errorf("database.dsn (or DATABASE_URL) is required")
	}

	// Auth
	cfg.JWT.SecretKey = viper.GetString("jwt.secret_key")
	if secret := viper.GetString("jwt_secret"); secret != "" {
		cfg.JWT.SecretKey = secret
	}
	cfg.JWT.TTL = viper.GetDuration("jwt.ttl")
	if cfg.JWT.SecretKey == "" {
		return nil, fmt.Errorf("jwt.secret_key (or JWT_SECRET) is required")
	}
	cfg.Cookie.Name = viper.GetString("cookie.name")
	cfg.Cookie.Domain = viper.GetString("cookie.domain")
	cfg.Cookie.Secure = viper.GetBool("cookie.secure")

	// Schedule import
	cfg.Schedule.Timezone = viper.GetString("schedule.timezone")
	cfg.Schedule.Temperature = viper.GetFloat64("schedule.temperature")
	cfg.Schedule.TopP = viper.GetFloat64("schedule.top_p")
	cfg.Schedule.MaxTokens = viper.GetInt("schedule.max_tokens")
	cfg.Schedule.MaxWeeks = viper.GetInt("schedule.max_weeks")
	cfg.Schedule.RateLimitPerMin = viper.GetInt("schedule.rate_limit_per_min")

	// Google Calendar
	cfg.GoogleCalendar.CredentialsPath = viper.GetString("google_calendar.credentials_path")
	cfg.GoogleCalendar.CalendarID = viper.GetString("google_calendar.calendar_id")
	cfg.GoogleCalendar.Timezone = viper.GetString("google_calendar.timezone")
	if googleCreds := viper.GetString("google_calendar_credentials"); googleCreds != "" {
		cfg.GoogleCalendar.CredentialsPath = googleCreds
	}
	if cfg.GoogleCalendar.Timezone == "" {
		cfg.GoogleCalendar.Timezone = cfg.Schedule.Timezone
	}

	// LLM Provider Abstraction
	cfg.LLM.FallbackEnabled = viper.GetBool("llm.fallback_enabled")
	cfg.LLM.RetryAttempts = viper.GetInt("llm.retry_attempts")
	cfg.LLM.RetryDelay = viper.GetDuration("llm.retry_delay")
	cfg.LLM.MaxTotalTimeout = viper.GetDuration("llm.max_total_timeout")

	// Load provider configurations
	if viper.IsSet("llm.providers") {
		providersRaw := viper.Get("llm.providers")
		if providersList, ok := providersRaw.([]interface{}); ok {
			for _, p := range providersList {
				if providerMap, ok := p.(map[string]interface{}); ok {
					provider := ProviderConfig{
						Name:     getStringFromMap(providerMap, "name"),
						Enabled:  getBoolFromMap(providerMap, "enabled"),
						Priority: getIntFromMap(providerMap, "priority"),
						APIKey:   expandEnvVar(getStringFromMap(providerMap, "api_key")),
						BaseURL:  getStringFromMap(providerMap, "base_url"),
						Model:    getStringFromMap(providerMap, "model"),
						Timeout:  getStringFromMap(providerMap, "timeout"),
					}
					cfg.LLM.Providers = append(cfg.LLM.Providers, provider)
				}
			}
		}
	}

	// No provider section: fall back to the plain NVIDIA/OpenAI key variables.
	// Having none at all is not an error; imports report it per request.
	if len(cfg.LLM.Providers) == 0 {
		if p, ok := envProvider(
			viper.GetString("nvidia_api_key"),
			viper.GetString("openai_api_key"),
			viper.GetString("nvidia_api_base"),
		); ok {
			cfg.LLM.Providers = append(cfg.LLM.Providers, p)
		}
	}

	if err := validateLLMConfig(&cfg.LLM); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("http_server.shutdown_timeout", "10s")
	viper.SetDefault("http_server.login_rate_limit_per_min", 20)
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("database.max_open_conns", 10)
	viper.SetDefault("database.max_idle_conns", 5)
	viper.SetDefault("database.conn_max_lifetime", "30m")
	viper.SetDefault("database.auto_migrate", true)

	viper.SetDefault("jwt.ttl", "168h")
	viper.SetDefault("cookie.name", "zenned_token")
	viper.SetDefault("cookie.secure", false)

	viper.SetDefault("schedule.timezone", "UTC")
	viper.SetDefault("schedule.temperature", 0.0)
	viper.SetDefault("schedule.top_p", 0.95)
	viper.SetDefault("schedule.max_tokens", 800)
	viper.SetDefault("schedule.max_weeks", 8)
	viper.SetDefault("schedule.rate_limit_per_min", 10)

	viper.SetDefault("google_calendar.calendar_id", "primary")

	// LLM defaults: one attempt, one provider, no silent retries.
	viper.SetDefault("llm.fallback_enabled", false)
	viper.SetDefault("llm.retry_attempts", 1)
	viper.SetDefault("llm.retry_delay", "1s")
	viper.SetDefault("llm.max_total_timeout", "60s")
}

// envProvider builds the implicit "nvidia" provider from bare key variables.
// NVIDIA_API_KEY wins over OPENAI_API_KEY. Base URL and model are left for
// the provider factory to fill from its presets when unset.
func envProvider(nvidiaKey, openaiKey, baseURL string) (ProviderConfig, bool) {
	key := nvidiaKey
	if key == "" {
		key = openaiKey
	}
	if key == "" {
		return ProviderConfig{}, false
	}
	return ProviderConfig{
		Name:     "nvidia",
		Enabled:  true,
		Priority: 1,
		APIKey:   key,
		BaseURL:  baseURL,
	}, true
}

// expandEnvVar expands environment variables in the format ${VAR_NAME}
func expandEnvVar(value string) string {
	if value == "" {
		return value
	}

	if strings.HasPrefix(value, "${") && strings.HasSuffix(value, "}") {
		envVar := value[2 : len(value)-1]
		if envValue := os.Getenv(envVar); envValue != "" {
			return envValue
		}
		if envValue := viper.GetString(strings.ToLower(envVar)); envValue != "" {
			return envValue
		}
		return ""
	}

	return value
}

// validateLLMConfig checks the providers that are present. An empty list is valid.
func validateLLMConfig(cfg *LLMConfig) error {
	priorityMap := make(map[int]bool)

	for i, provider := range cfg.Providers {
		if provider.Name == "" {
			return fmt.Errorf("provider %d: name is required", i)
		}
		if !provider.Enabled {
			continue
		}
		if provider.Priority <= 0 {
			return fmt.Errorf("provider %s: priority must be positive", provider.Name)
		}
		if priorityMap[provider.Priority] {
			return fmt.Errorf("provider %s: duplicate priority %d", provider.Name, provider.Priority)
		}
		priorityMap[provider.Priority] = true
		if provider.Timeout != "" {
			if _, err := time.ParseDuration(provider.Timeout); err != nil {
				return fmt.Errorf("provider %s: invalid timeout %q: %w", provider.Name, provider.Timeout, err)
			}
		}
	}

	if cfg.RetryAttempts < 1 {
		cfg.RetryAttempts = 1
	}

	return nil
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
		if i, ok := val.(int); ok {
			return i
		}
		// Handle float64 from JSON unmarshaling
		if f, ok := val.(float64); ok {
			return int(f)
		}
	}
	return 0
}
