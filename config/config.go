package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Todo web specifics
	Storage StorageConfig
	Auth    AuthConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Host            string
	Port            int
	Mode            string
	ShutdownTimeout time.Duration
	TrustedProxies  []string // empty: X-Forwarded-For is ignored
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type StorageConfig struct {
	TodoDir   string // directory holding the *.json todo lists
	StaticDir string // served verbatim under /static
}

// AuthConfig is the single Basic auth credential and its throttle.
type AuthConfig struct {
	Username          string
	Password          string
	Realm             string
	MaxFailuresPerMin int // 0 disables throttling
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
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
	cfg.HTTPServer.Host = viper.GetString("http_server.host")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.HTTPServer.ShutdownTimeout = viper.GetDuration("http_server.shutdown_timeout")
	cfg.HTTPServer.TrustedProxies = viper.GetStringSlice("http_server.trusted_proxies")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Storage
	cfg.Storage.TodoDir = viper.GetString("storage.todo_dir")
	cfg.Storage.StaticDir = viper.GetString("storage.static_dir")
	if todoDir := viper.GetString("todo_dir"); todoDir != "" {
		cfg.Storage.TodoDir = todoDir
	}

	// Auth
	cfg.Auth.Username = viper.GetString("auth.username")
	cfg.Auth.Password = viper.GetString("auth.password")
	cfg.Auth.Realm = viper.GetString("auth.realm")
	cfg.Auth.MaxFailuresPerMin = viper.GetInt("auth.max_failures_per_min")

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.host", "0.0.0.0")
	viper.SetDefault("http_server.port", 8000)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("http_server.shutdown_timeout", "10s")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("storage.todo_dir", "/workspace/td")
	viper.SetDefault("storage.static_dir", "web/static")

	viper.SetDefault("auth.realm", "todo-web")
	viper.SetDefault("auth.max_failures_per_min", 10)
}

func validate(cfg *Config) error {
	if cfg.Storage.TodoDir == "" {
		return fmt.Errorf("storage.todo_dir is required")
	}
	if cfg.HTTPServer.Port <= 0 || cfg.HTTPServer.Port > 65535 {
		return fmt.Errorf("http_server.port %d is out of range", cfg.HTTPServer.Port)
	}
	if cfg.Auth.MaxFailuresPerMin < 0 {
		return fmt.Errorf("auth.max_failures_per_min must not be negative")
	}
	return nil
}

// ValidateAuth reports whether a usable credential is configured. Only the
// HTTP server needs one.
func (c AuthConfig) ValidateAuth() error {
	if c.Username == "" || c.Password == "" {
		return fmt.Errorf("auth.username and auth.password are required (set AUTH_USERNAME / AUTH_PASSWORD)")
	}
	return nil
}
