package cmd

import (
	"os"
	"path/filepath"
	"testing"
)

// setFlag sets a global flag for the duration of the test.
func setFlag(t *testing.T, f *string, v string) {
	t.Helper()
	old := *f
	*f = v
	t.Cleanup(func() { *f = old })
}

func TestLoadConfig_NormalisesFlags(t *testing.T) {
	t.Setenv("FAP_PROVIDER", "")
	t.Setenv("FAP_CURRENCY", "")
	file := filepath.Join(t.TempDir(), "fap.yaml")
	if err := os.WriteFile(file, []byte("provider: eodhd\ncurrency: CHF\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	setFlag(t, configFile, file)
	setFlag(t, providerName, "YAHOO")
	setFlag(t, defaultCurrency, " eur ")

	cfg, err := loadConfig()
	if err != nil {
		t.Fatalf("loadConfig() unexpected error: %v", err)
	}
	if cfg.Provider != "yahoo" || cfg.Currency != "EUR" {
		t.Errorf("loadConfig() = provider %q currency %q, want yahoo EUR", cfg.Provider, cfg.Currency)
	}
}
