// Package config loads the fap configuration.
//
// Values come, by increasing priority, from defaults, an optional fap.yaml
// file and FAP_ prefixed environment variables (FAP_CURRENCY, FAP_EODHD_API_KEY).
// Command flags override them all.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/etnz/assetprofile"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

// Providers are the accepted values of the provider key.
var Providers = []string{"yahoo", "eodhd"}

// Config is the complete fap configuration.
type Config struct {
	Provider         string        `mapstructure:"provider"`
	Currency         string        `mapstructure:"currency"` // empty means the asset's own currency
	Period           string        `mapstructure:"period"`
	Delay            time.Duration `mapstructure:"delay"`
	QuoteWindow      string        `mapstructure:"quote_window"`
	DescriptionLimit int           `mapstructure:"description_limit"`
	Log              LogConfig     `mapstructure:"log"`
	EODHD            EODHDConfig   `mapstructure:"eodhd"`
	Chart            ChartConfig   `mapstructure:"chart"`
	Assist           AssistConfig  `mapstructure:"assist"`
}

// LogConfig holds the logging settings.
type LogConfig struct {
	Level string `mapstructure:"level"`
}

// EODHDConfig holds the EODHD provider credentials.
type EODHDConfig struct {
	APIKey string `mapstructure:"api_key"`
}

// ChartConfig holds the chart rendering settings.
type ChartConfig struct {
	Dir    string `mapstructure:"dir"`
	Width  int    `mapstructure:"width"`
	Height int    `mapstructure:"height"`
}

// AssistConfig holds the Gemini assistant settings.
type AssistConfig struct {
	Model  string `mapstructure:"model"`
	APIKey string `mapstructure:"api_key"`
}

// Load reads the configuration. When file is empty, fap.yaml is searched in
// the current directory then in $HOME/.config/fap, and may be missing.
func Load(file string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName("fap")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath(filepath.Join(homeDir(), ".config", "fap"))
	}

	v.SetEnvPrefix("FAP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok || file != "" {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	overrideFromEnv(&cfg)
	cfg.Override(cfg.Provider, cfg.Currency)
	return &cfg, cfg.Validate()
}

// Override replaces the provider and the currency by the non empty ones
// given, normalised: provider in lower case, currency in upper case.
func (c *Config) Override(provider, currency string) {
	if provider = strings.ToLower(strings.TrimSpace(provider)); provider != "" {
		c.Provider = provider
	}
	if currency = strings.ToUpper(strings.TrimSpace(currency)); currency != "" {
		c.Currency = currency
	}
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("provider", "yahoo")
	v.SetDefault("currency", "")
	v.SetDefault("period", "1y")
	v.SetDefault("delay", 500*time.Millisecond)
	v.SetDefault("quote_window", "1d")
	v.SetDefault("description_limit", assetprofile.DescriptionLimit)

	v.SetDefault("log.level", "info")

	v.SetDefault("eodhd.api_key", "")

	v.SetDefault("chart.dir", ".")
	v.SetDefault("chart.width", 900)
	v.SetDefault("chart.height", 450)

	v.SetDefault("assist.model", "gemini-2.5-flash")
	v.SetDefault("assist.api_key", "")
}

// overrideFromEnv reads the API keys from the variables their own tools use,
// when no fap specific value is set.
func overrideFromEnv(cfg *Config) {
	if key := os.Getenv("EODHD_API_KEY"); key != "" && cfg.EODHD.APIKey == "" {
		cfg.EODHD.APIKey = key
	}
	if key := os.Getenv("GEMINI_API_KEY"); key != "" && cfg.Assist.APIKey == "" {
		cfg.Assist.APIKey = key
	}
}

// Validate checks the values of the configuration.
func (c *Config) Validate() error {
	if !isProvider(c.Provider) {
		return fmt.Errorf("unknown provider %q, want one of %s", c.Provider, strings.Join(Providers, ", "))
	}
	if c.Currency != "" {
		if err := assetprofile.ValidateCurrency(c.Currency); err != nil {
			return fmt.Errorf("invalid currency: %w", err)
		}
	}
	if _, err := assetprofile.ParsePeriod(c.Period); err != nil {
		return fmt.Errorf("invalid period: %w", err)
	}
	if c.Delay < 0 {
		return fmt.Errorf("invalid delay %v: must not be negative", c.Delay)
	}
	if _, err := zerolog.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}
	return nil
}

// DefaultPeriod returns the configured chart period.
func (c *Config) DefaultPeriod() assetprofile.Period {
	p, err := assetprofile.ParsePeriod(c.Period)
	if err != nil {
		return assetprofile.OneYear
	}
	return p
}

// Level returns the configured log level, info when invalid.
func (c *Config) Level() zerolog.Level {
	l, err := zerolog.ParseLevel(c.Log.Level)
	if err != nil {
		return zerolog.InfoLevel
	}
	return l
}

// Window returns the window used to read current prices.
func (c *Config) Window() assetprofile.Window {
	if c.QuoteWindow == "" {
		return assetprofile.LatestWindow
	}
	return assetprofile.Window{Range: c.QuoteWindow, Interval: "1d"}
}

func isProvider(name string) bool {
	for _, p := range Providers {
		if p == name {
			return true
		}
	}
	return false
}

// homeDir returns the user's home directory.
func homeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return home
}
