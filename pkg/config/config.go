package config

import (
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
)

const (
	DefaultAPIURL            = "https://integrate.api.nvidia.com/v1/chat/completions"
	DefaultModel             = "meta/llama-3.1-8b-instruct"
	DefaultAPITimeoutSeconds = 30
	DefaultLogLevel          = "info"
	DefaultLogFormat         = "json"
)

// Environment variables read by ApplyEnv.
const (
	EnvAPIKey   = "JHA_API_KEY"
	EnvAPIURL   = "JHA_API_URL"
	EnvModel    = "JHA_MODEL"
	EnvLogLevel = "JHA_LOG_LEVEL"
	EnvUserName = "JHA_USER_NAME"
)

// Config represents the application configuration
type Config struct {
	Endpoint  EndpointConfig `json:"endpoint"`
	UserName  string         `json:"user_name"`
	LogLevel  string         `json:"log_level"`
	LogFile   string         `json:"log_file"`
	LogFormat string         `json:"log_format"`
}

// EndpointConfig holds the chat-completion endpoint settings
type EndpointConfig struct {
	APIURL            string `json:"api_url"`
	APIKey            string `json:"api_key"`
	Model             string `json:"model"`
	APITimeoutSeconds int    `json:"api_timeout_seconds"`
}

// Default returns a configuration with default values
func Default() Config {
	return Config{
		Endpoint: EndpointConfig{
			APIURL:            DefaultAPIURL,
			APIKey:            "",
			Model:             DefaultModel,
			APITimeoutSeconds: DefaultAPITimeoutSeconds,
		},
		LogLevel:  DefaultLogLevel,
		LogFormat: DefaultLogFormat,
	}
}

// Load loads configuration from the specified path
// If the file doesn't exist, creates one with default values
func Load(configPath string) (Config, error) {
	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0700); err != nil {
		return Config{}, fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			cfg := Default()
			if err := Save(configPath, cfg); err != nil {
				return Config{}, fmt.Errorf("failed to create default config: %w", err)
			}
			return cfg, nil
		}
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}
	cfg.applyDefaults()

	return cfg, nil
}

// applyDefaults fills fields left blank by older or hand-written config files.
func (c *Config) applyDefaults() {
	def := Default()
	if strings.TrimSpace(c.Endpoint.APIURL) == "" {
		c.Endpoint.APIURL = def.Endpoint.APIURL
	}
	if strings.TrimSpace(c.Endpoint.Model) == "" {
		c.Endpoint.Model = def.Endpoint.Model
	}
	if c.Endpoint.APITimeoutSeconds == 0 {
		c.Endpoint.APITimeoutSeconds = def.Endpoint.APITimeoutSeconds
	}
	if strings.TrimSpace(c.LogLevel) == "" {
		c.LogLevel = def.LogLevel
	}
	if strings.TrimSpace(c.LogFormat) == "" {
		c.LogFormat = def.LogFormat
	}
}

// Save saves the configuration to the specified path
func Save(configPath string, cfg Config) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0600); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// ApplyEnv overrides file values with any non-empty environment values.
// lookup is normally os.LookupEnv.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) {
	if lookup == nil {
		return
	}
	set := func(key string, dst *string) {
		if v, ok := lookup(key); ok && strings.TrimSpace(v) != "" {
			*dst = strings.TrimSpace(v)
		}
	}
	set(EnvAPIKey, &c.Endpoint.APIKey)
	set(EnvAPIURL, &c.Endpoint.APIURL)
	set(EnvModel, &c.Endpoint.Model)
	set(EnvLogLevel, &c.LogLevel)
	set(EnvUserName, &c.UserName)
}

// Validate checks if the configuration is valid
func (c Config) Validate() error {
	if strings.TrimSpace(c.Endpoint.APIKey) == "" {
		return fmt.Errorf("API key is required (set %s or api_key in the config file)", EnvAPIKey)
	}

	if err := validateAPIURL(c.Endpoint.APIURL); err != nil {
		return err
	}

	if strings.TrimSpace(c.Endpoint.Model) == "" {
		return fmt.Errorf("model is required")
	}

	if c.Endpoint.APITimeoutSeconds <= 0 {
		return fmt.Errorf("api_timeout_seconds must be positive, got: %d", c.Endpoint.APITimeoutSeconds)
	}

	switch strings.ToLower(strings.TrimSpace(c.LogLevel)) {
	case "", "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("unsupported log_level: %s", c.LogLevel)
	}

	switch strings.ToLower(strings.TrimSpace(c.LogFormat)) {
	case "", "json", "text":
	default:
		return fmt.Errorf("unsupported log_format: %s", c.LogFormat)
	}

	return nil
}

func validateAPIURL(raw string) error {
	if strings.TrimSpace(raw) == "" {
		return fmt.Errorf("api_url is required")
	}
	u, err := url.ParseRequestURI(raw)
	if err != nil {
		return fmt.Errorf("api_url is invalid: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("api_url must use http or https, got: %s", raw)
	}
	if u.Host == "" {
		return fmt.Errorf("api_url must include a host, got: %s", raw)
	}
	return nil
}

// GetConfigPath returns the default configuration file path
func GetConfigPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".jha/config.json"
	}
	return filepath.Join(homeDir, ".jha", "config.json")
}
