package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvLocal = "local"
	EnvDev   = "dev"
	EnvProd  = "prod"
)

const (
	defaultBaseURL   = "https://api.benchling.com/v1/"
	defaultLogLevel  = "info"
	defaultEnv       = EnvLocal
	defaultConfigDir = ".benchkit"
	keyFileName      = "api.key"
)

type Config struct {
	Env       string `mapstructure:"app_env"`
	APIKey    string `mapstructure:"bench_api_key"`
	BaseURL   string `mapstructure:"bench_base_url"`
	LogLevel  string `mapstructure:"log_level"`
	ConfigDir string `mapstructure:"config_dir"`
}

// MustLoad loads the client configuration or exits.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}
	return cfg
}

// Load reads configuration from a .env file (when present), the
// environment and defaults, in that order of precedence.
func Load() (*Config, error) {
	envPath := ".env"
	if _, err := os.Stat(envPath); os.IsNotExist(err) {
		envPath = "../.env"
	}
	if _, err := os.Stat(envPath); err == nil {
		if err := godotenv.Load(envPath); err != nil {
			return nil, fmt.Errorf("load .env: %w", err)
		}
	}

	viper.AutomaticEnv()

	viper.SetDefault("APP_ENV", defaultEnv)
	viper.SetDefault("BENCH_BASE_URL", defaultBaseURL)
	viper.SetDefault("LOG_LEVEL", defaultLogLevel)

	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	viper.SetDefault("CONFIG_DIR", filepath.Join(home, defaultConfigDir))

	cfg := &Config{
		Env:       viper.GetString("APP_ENV"),
		APIKey:    viper.GetString("BENCH_API_KEY"),
		BaseURL:   viper.GetString("BENCH_BASE_URL"),
		LogLevel:  viper.GetString("LOG_LEVEL"),
		ConfigDir: viper.GetString("CONFIG_DIR"),
	}

	if cfg.APIKey == "" {
		if key, err := cfg.readSavedKey(); err == nil {
			cfg.APIKey = key
		}
	}

	return cfg, nil
}

// KeyPath is where `auth login` stores the API key.
func (c *Config) KeyPath() string {
	return filepath.Join(c.ConfigDir, keyFileName)
}

// SaveKey persists the API key under the config directory.
func (c *Config) SaveKey(key string) error {
	if err := os.MkdirAll(c.ConfigDir, 0o700); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	if err := os.WriteFile(c.KeyPath(), []byte(key+"\n"), 0o600); err != nil {
		return fmt.Errorf("save api key: %w", err)
	}
	c.APIKey = key
	return nil
}

func (c *Config) readSavedKey() (string, error) {
	data, err := os.ReadFile(c.KeyPath())
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}
