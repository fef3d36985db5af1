package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration
type Config struct {
	App  AppConfig
	Log  LogConfig
	HTTP HTTPConfig
	Mock MockConfig
}

// AppConfig holds application-specific settings
type AppConfig struct {
	Name string
	Env  string
	Port string
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string // debug, info, warn, error
	Format string // json, console
	Output string // stdout, stderr, or file path
}

// HTTPConfig holds HTTP server configuration
type HTTPConfig struct {
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

// MockConfig holds the mock's wire and storage settings
type MockConfig struct {
	// BaseURL is only used to build the Uri elements of customer-list
	// responses.
	BaseURL string
	// DataFile is the JSON snapshot the store persists to.
	DataFile string
	// InvoicePDF is the local document embedded when a sales-invoice
	// response requests a PDF image.
	InvoicePDF string
}

// Load loads configuration from TOML file and environment variables
// Priority (highest to lowest):
// 1. Environment variables with NVMOCK_ prefix (e.g., NVMOCK_MOCK_BASE_URL)
// 2. config.toml
// 3. Built-in defaults
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("toml")
	v.AddConfigPath(".")
	v.AddConfigPath("/app")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found is OK, we'll use defaults and env vars
	}

	v.SetEnvPrefix("NVMOCK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// The original deployment configured the base URL through a plain
	// BASE_URL variable; keep honoring it.
	_ = v.BindEnv("mock.base_url", "NVMOCK_MOCK_BASE_URL", "BASE_URL")

	cfg := &Config{
		App: AppConfig{
			Name: v.GetString("app.name"),
			Env:  v.GetString("app.env"),
			Port: v.GetString("app.port"),
		},
		Log: LogConfig{
			Level:  v.GetString("log.level"),
			Format: v.GetString("log.format"),
			Output: v.GetString("log.output"),
		},
		HTTP: HTTPConfig{
			ReadTimeout:  v.GetDuration("http.read_timeout"),
			WriteTimeout: v.GetDuration("http.write_timeout"),
			IdleTimeout:  v.GetDuration("http.idle_timeout"),
		},
		Mock: MockConfig{
			BaseURL:    v.GetString("mock.base_url"),
			DataFile:   v.GetString("mock.data_file"),
			InvoicePDF: v.GetString("mock.invoice_pdf"),
		},
	}

	applyDefaults(cfg)

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// applyDefaults sets default values for any empty config fields
func applyDefaults(cfg *Config) {
	if cfg.App.Name == "" {
		cfg.App.Name = "netvisor-mock"
	}
	if cfg.App.Env == "" {
		cfg.App.Env = "development"
	}
	if cfg.App.Port == "" {
		cfg.App.Port = "5001"
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = "console"
	}
	if cfg.Log.Output == "" {
		cfg.Log.Output = "stdout"
	}
	if cfg.HTTP.ReadTimeout == 0 {
		cfg.HTTP.ReadTimeout = 15 * time.Second
	}
	if cfg.HTTP.WriteTimeout == 0 {
		cfg.HTTP.WriteTimeout = 15 * time.Second
	}
	if cfg.HTTP.IdleTimeout == 0 {
		cfg.HTTP.IdleTimeout = 60 * time.Second
	}
	if cfg.Mock.BaseURL == "" {
		cfg.Mock.BaseURL = "http://0.0.0.0:5001"
	}
	if cfg.Mock.DataFile == "" {
		cfg.Mock.DataFile = "data.json"
	}
	if cfg.Mock.InvoicePDF == "" {
		cfg.Mock.InvoicePDF = "invoice.pdf"
	}
}

// validate performs validation on the configuration
func (c *Config) validate() error {
	if c.Mock.DataFile == "" {
		return fmt.Errorf("mock.data_file must not be empty")
	}
	if strings.HasSuffix(c.Mock.BaseURL, "/") {
		return fmt.Errorf("mock.base_url must not end with a slash")
	}
	return nil
}
