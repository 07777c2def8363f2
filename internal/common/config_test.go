package common

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestConfig_DefaultPort(t *testing.T) {
	cfg := NewDefaultConfig()
	if cfg.Server.Port != 8080 {
		t.Errorf("Server.Port default = %d, want %d", cfg.Server.Port, 8080)
	}
}

func TestConfig_PortEnvOverride(t *testing.T) {
	t.Setenv("FINCHAT_PORT", "9090")

	cfg := NewDefaultConfig()
	applyEnvOverrides(cfg)

	if cfg.Server.Port != 9090 {
		t.Errorf("Server.Port = %d after env override, want %d", cfg.Server.Port, 9090)
	}
}

func TestConfig_APIKeyEnvOverrides(t *testing.T) {
	t.Setenv("ALPHA_VANTAGE_KEY", "av-key")
	t.Setenv("NEWS_API_KEY", "news-key")
	t.Setenv("GOOGLE_API_KEY", "google-key")

	cfg := NewDefaultConfig()
	applyEnvOverrides(cfg)

	if cfg.Clients.AlphaVantage.APIKey != "av-key" {
		t.Errorf("AlphaVantage.APIKey = %q, want %q", cfg.Clients.AlphaVantage.APIKey, "av-key")
	}
	if cfg.Clients.NewsAPI.APIKey != "news-key" {
		t.Errorf("NewsAPI.APIKey = %q, want %q", cfg.Clients.NewsAPI.APIKey, "news-key")
	}
	if cfg.Clients.Gemini.APIKey != "google-key" {
		t.Errorf("Gemini.APIKey = %q, want %q", cfg.Clients.Gemini.APIKey, "google-key")
	}
	if missing := cfg.MissingKeys(); len(missing) != 0 {
		t.Errorf("expected no missing keys, got %v", missing)
	}
}

func TestConfig_GeminiModelsEnvOverride(t *testing.T) {
	t.Setenv("FINCHAT_GEMINI_MODELS", "gemini-2.0-flash, gemini-pro ,")

	cfg := NewDefaultConfig()
	applyEnvOverrides(cfg)

	want := []string{"gemini-2.0-flash", "gemini-pro"}
	if len(cfg.Clients.Gemini.Models) != len(want) {
		t.Fatalf("Models = %v, want %v", cfg.Clients.Gemini.Models, want)
	}
	for i := range want {
		if cfg.Clients.Gemini.Models[i] != want[i] {
			t.Errorf("Models[%d] = %q, want %q", i, cfg.Clients.Gemini.Models[i], want[i])
		}
	}
}

func TestConfig_MissingKeys(t *testing.T) {
	cfg := NewDefaultConfig()
	missing := cfg.MissingKeys()
	if len(missing) != 3 {
		t.Errorf("expected 3 missing keys, got %d: %v", len(missing), missing)
	}
}

func TestConfig_CacheTTLDefaults(t *testing.T) {
	cfg := &Config{}
	if got := cfg.Cache.GetQuoteTTL(); got != 5*time.Minute {
		t.Errorf("GetQuoteTTL() = %v, want 5m", got)
	}
	if got := cfg.Cache.GetNewsTTL(); got != 30*time.Minute {
		t.Errorf("GetNewsTTL() = %v, want 30m", got)
	}

	cfg.Cache.QuoteTTL = "90s"
	if got := cfg.Cache.GetQuoteTTL(); got != 90*time.Second {
		t.Errorf("GetQuoteTTL() = %v, want 90s", got)
	}
}

func TestConfig_GeminiBudget(t *testing.T) {
	cfg := NewDefaultConfig()
	if got := cfg.Clients.Gemini.GetBudget(); got != 60*time.Second {
		t.Errorf("GetBudget() = %v, want 60s", got)
	}

	g := GeminiConfig{Budget: "-5s"}
	if got := g.GetBudget(); got != 60*time.Second {
		t.Errorf("GetBudget() with negative value = %v, want 60s", got)
	}
}

func TestConfig_TimeoutFallback(t *testing.T) {
	av := AlphaVantageConfig{Timeout: "not-a-duration"}
	if got := av.GetTimeout(); got != 10*time.Second {
		t.Errorf("AlphaVantage GetTimeout() = %v, want 10s", got)
	}
}

func TestLoadConfig_FileMerge(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "finchat.toml")
	data := `
environment = "production"

[server]
port = 7070

[clients.gemini]
models = ["gemini-2.0-flash"]

[cache]
quote_ttl = "1m"
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := LoadConfig(path, filepath.Join(dir, "missing.toml"))
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if !cfg.IsProduction() {
		t.Error("expected production environment")
	}
	if cfg.Server.Port != 7070 {
		t.Errorf("Server.Port = %d, want 7070", cfg.Server.Port)
	}
	if cfg.Server.Host != "0.0.0.0" {
		t.Errorf("Server.Host = %q, want default 0.0.0.0", cfg.Server.Host)
	}
	if len(cfg.Clients.Gemini.Models) != 1 || cfg.Clients.Gemini.Models[0] != "gemini-2.0-flash" {
		t.Errorf("Gemini.Models = %v", cfg.Clients.Gemini.Models)
	}
	if cfg.Cache.GetQuoteTTL() != time.Minute {
		t.Errorf("GetQuoteTTL() = %v, want 1m", cfg.Cache.GetQuoteTTL())
	}
}

func TestLoadConfig_InvalidTOML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.toml")
	if err := os.WriteFile(path, []byte("[server\nport = "), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := LoadConfig(path); err == nil {
		t.Fatal("expected parse error")
	}
}
