package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/etnz/assetprofile"
	"github.com/rs/zerolog"
)

// clearEnv unsets every variable that Load reads.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, e := range []string{
		"FAP_PROVIDER", "FAP_CURRENCY", "FAP_PERIOD", "FAP_DELAY", "FAP_QUOTE_WINDOW",
		"FAP_DESCRIPTION_LIMIT", "FAP_LOG_LEVEL", "FAP_EODHD_API_KEY", "FAP_CHART_DIR",
		"FAP_ASSIST_MODEL", "FAP_ASSIST_API_KEY", "EODHD_API_KEY", "GEMINI_API_KEY",
	} {
		t.Setenv(e, "")
		os.Unsetenv(e)
	}
	// keep any fap.yaml of the developer out of the way.
	t.Chdir(t.TempDir())
	t.Setenv("HOME", t.TempDir())
}

func TestLoadReturnsDefaults(t *testing.T) {
	clearEnv(t)
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Provider != "yahoo" {
		t.Errorf("Provider: got %q, want %q", cfg.Provider, "yahoo")
	}
	if cfg.Currency != "" {
		t.Errorf("Currency: got %q, want empty", cfg.Currency)
	}
	if cfg.Delay != 500*time.Millisecond {
		t.Errorf("Delay: got %v, want 500ms", cfg.Delay)
	}
	if cfg.DescriptionLimit != 500 {
		t.Errorf("DescriptionLimit: got %d, want 500", cfg.DescriptionLimit)
	}
	if cfg.DefaultPeriod() != assetprofile.OneYear {
		t.Errorf("DefaultPeriod: got %v, want 1y", cfg.DefaultPeriod())
	}
	if cfg.Window() != assetprofile.LatestWindow {
		t.Errorf("Window: got %v, want %v", cfg.Window(), assetprofile.LatestWindow)
	}
	if cfg.Level() != zerolog.InfoLevel {
		t.Errorf("Level: got %v, want info", cfg.Level())
	}
	if cfg.Chart.Width != 900 || cfg.Chart.Height != 450 || cfg.Chart.Dir != "." {
		t.Errorf("Chart: got %+v", cfg.Chart)
	}
}

func TestLoadFromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("FAP_PROVIDER", "EODHD")
	t.Setenv("FAP_CURRENCY", "eur")
	t.Setenv("FAP_DELAY", "2s")
	t.Setenv("FAP_EODHD_API_KEY", "from-fap")
	t.Setenv("EODHD_API_KEY", "from-eodhd")
	t.Setenv("GEMINI_API_KEY", "gemini")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Provider != "eodhd" || cfg.Currency != "EUR" || cfg.Delay != 2*time.Second {
		t.Errorf("Load() = provider %q currency %q delay %v", cfg.Provider, cfg.Currency, cfg.Delay)
	}
	if cfg.EODHD.APIKey != "from-fap" {
		t.Errorf("EODHD.APIKey: got %q, want the FAP_ variable", cfg.EODHD.APIKey)
	}
	if cfg.Assist.APIKey != "gemini" {
		t.Errorf("Assist.APIKey: got %q, want %q", cfg.Assist.APIKey, "gemini")
	}
}

func TestLoadFromFile(t *testing.T) {
	clearEnv(t)
	file := filepath.Join(t.TempDir(), "fap.yaml")
	content := "currency: CHF\nperiod: 5y\nlog:\n  level: debug\nchart:\n  dir: /tmp/charts\n"
	if err := os.WriteFile(file, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(file)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Currency != "CHF" || cfg.DefaultPeriod() != assetprofile.FiveYears {
		t.Errorf("Load() = currency %q period %v", cfg.Currency, cfg.DefaultPeriod())
	}
	if cfg.Level() != zerolog.DebugLevel || cfg.Chart.Dir != "/tmp/charts" {
		t.Errorf("Load() = level %v chart dir %q", cfg.Level(), cfg.Chart.Dir)
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Load(missing file) = nil error")
	}
}

func TestOverride(t *testing.T) {
	testCases := []struct {
		provider, currency string
		want               Config
	}{
		{"YAHOO", " eur ", Config{Provider: "yahoo", Currency: "EUR"}},
		{" Eodhd", "", Config{Provider: "eodhd", Currency: "CHF"}},
		{"", "  ", Config{Provider: "yahoo", Currency: "CHF"}},
	}
	for _, tc := range testCases {
		c := Config{Provider: "yahoo", Currency: "CHF"}
		c.Override(tc.provider, tc.currency)
		if c.Provider != tc.want.Provider || c.Currency != tc.want.Currency {
			t.Errorf("Override(%q, %q) = %q %q, want %q %q", tc.provider, tc.currency, c.Provider, c.Currency, tc.want.Provider, tc.want.Currency)
		}
	}
}

func TestValidate(t *testing.T) {
	valid := func() Config {
		return Config{Provider: "yahoo", Period: "1y", Log: LogConfig{Level: "info"}}
	}
	testCases := []struct {
		name   string
		modify func(*Config)
	}{
		{"provider", func(c *Config) { c.Provider = "bloomberg" }},
		{"currency", func(c *Config) { c.Currency = "EURO" }},
		{"period", func(c *Config) { c.Period = "2w" }},
		{"delay", func(c *Config) { c.Delay = -time.Second }},
		{"level", func(c *Config) { c.Log.Level = "loud" }},
	}
	c := valid()
	if err := c.Validate(); err != nil {
		t.Fatalf("Validate() unexpected error: %v", err)
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c := valid()
			tc.modify(&c)
			if err := c.Validate(); err == nil {
				t.Errorf("Validate() = nil, want an error")
			}
		})
	}
}
