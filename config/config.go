package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const callbackPath = "/api/auth/callback/google"

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Meeting scheduler specifics
	App       AppConfig
	Google    GoogleConfig
	Session   SessionConfig
	Meeting   MeetingConfig
	Store     StoreConfig
	RateLimit RateLimitConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port            int
	Mode            string
	ShutdownTimeout time.Duration
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type AppConfig struct {
	// BaseURL is the public origin of the app, used for OAuth redirects.
	BaseURL string
}

type GoogleConfig struct {
	ClientID     string
	ClientSecret string
	RedirectURL  string
	CalendarID   string
}

type SessionConfig struct {
	SigningSecret string
	TTL           time.Duration
	CookieName    string
	CookieDomain  string
	CookieSecure  bool
}

type MeetingConfig struct {
	// Timezone is used for calendar events and for scheduled times without an offset.
	Timezone string
}

type StoreConfig struct {
	MaxUsers int
	TTL      time.Duration
}

type RateLimitConfig struct {
	PerMin int
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
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
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// App
	cfg.App.BaseURL = firstNonEmpty(
		viper.GetString("app.base_url"),
		viper.GetString("base_url"),
		viper.GetString("nextauth_url"),
	)
	cfg.App.BaseURL = strings.TrimRight(cfg.App.BaseURL, "/")

	// Google OAuth + Calendar. google.client_id already picks up GOOGLE_CLIENT_ID.
	cfg.Google.ClientID = expandEnvVar(viper.GetString("google.client_id"))
	cfg.Google.ClientSecret = expandEnvVar(viper.GetString("google.client_secret"))
	cfg.Google.RedirectURL = viper.GetString("google.redirect_url")
	if cfg.Google.RedirectURL == "" {
		cfg.Google.RedirectURL = cfg.App.BaseURL + callbackPath
	}
	cfg.Google.CalendarID = viper.GetString("google.calendar_id")

	// Session
	cfg.Session.SigningSecret = firstNonEmpty(
		expandEnvVar(viper.GetString("session.signing_secret")),
		viper.GetString("session_secret"),
		viper.GetString("nextauth_secret"),
	)
	cfg.Session.TTL = viper.GetDuration("session.ttl")
	cfg.Session.CookieName = viper.GetString("session.cookie_name")
	cfg.Session.CookieDomain = viper.GetString("session.cookie_domain")
	cfg.Session.CookieSecure = viper.GetBool("session.cookie_secure")
	if !viper.IsSet("session.cookie_secure") {
		cfg.Session.CookieSecure = strings.HasPrefix(cfg.App.BaseURL, "https://")
	}

	// Meetings
	cfg.Meeting.Timezone = viper.GetString("meeting.timezone")
	cfg.Store.MaxUsers = viper.GetInt("store.max_users")
	cfg.Store.TTL = viper.GetDuration("store.ttl")
	cfg.RateLimit.PerMin = viper.GetInt("rate_limit.per_min")

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("http_server.shutdown_timeout", "10s")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("app.base_url", "")
	viper.SetDefault("google.calendar_id", "primary")
	viper.SetDefault("session.ttl", "720h")
	viper.SetDefault("session.cookie_name", "meeting_session")
	viper.SetDefault("meeting.timezone", "UTC")
	viper.SetDefault("store.max_users", 1000)
	viper.SetDefault("store.ttl", "24h")
	viper.SetDefault("rate_limit.per_min", 60)
}

// validate checks the settings the service cannot start without.
func validate(cfg *Config) error {
	var errs []error
	if cfg.Google.ClientID == "" {
		errs = append(errs, errors.New("google.client_id (GOOGLE_CLIENT_ID) is required"))
	}
	if cfg.Google.ClientSecret == "" {
		errs = append(errs, errors.New("google.client_secret (GOOGLE_CLIENT_SECRET) is required"))
	}
	if cfg.App.BaseURL == "" {
		errs = append(errs, errors.New("app.base_url (BASE_URL) is required"))
	}
	if len(cfg.Session.SigningSecret) < 32 {
		errs = append(errs, errors.New("session.signing_secret (SESSION_SECRET) must be at least 32 bytes"))
	}
	if cfg.HTTPServer.Port <= 0 {
		errs = append(errs, fmt.Errorf("http_server.port must be positive, got %d", cfg.HTTPServer.Port))
	}
	return errors.Join(errs...)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
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
		return ""
	}

	return value
}
