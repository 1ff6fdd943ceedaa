package config

import (
	"os"
	"strings"
	"testing"
	"time"
)

var allKeys = []string{
	"VENTURE_EIP_URLS", "VENTURE_SET_URLS",
	"VENTURE_EIP_LOCAL_HTML", "VENTURE_SET_LOCAL_HTML",
	"VENTURE_HTTP_TIMEOUT", "GEMINI_API_KEY",
	"VENTURE_GEMINI_MODEL", "VENTURE_ENERGY_KEYWORDS",
	"VENTURE_CHAR_BUDGET", "VENTURE_DISABLE_LLM",
	"VENTURE_OUTPUT", "VENTURE_LOG_LEVEL",
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range allKeys {
		os.Unsetenv(key)
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg := Load()

	if len(cfg.Sources.EIPURLs) != 1 || !strings.Contains(cfg.Sources.EIPURLs[0], "energyimpactpartners.com") {
		t.Fatalf("unexpected default EIP URLs: %v", cfg.Sources.EIPURLs)
	}
	if len(cfg.Sources.SETURLs) != 1 || !strings.Contains(cfg.Sources.SETURLs[0], "setventures.com") {
		t.Fatalf("unexpected default SET URLs: %v", cfg.Sources.SETURLs)
	}
	if cfg.Sources.HTTPTimeout != 15*time.Second {
		t.Fatalf("expected default HTTPTimeout=15s, got %v", cfg.Sources.HTTPTimeout)
	}
	if cfg.LLM.APIKey != "" {
		t.Fatalf("expected empty APIKey, got %q", cfg.LLM.APIKey)
	}
	if cfg.LLM.Model != "gemini-3-flash-preview" {
		t.Fatalf("unexpected default model: %q", cfg.LLM.Model)
	}
	if cfg.LLM.CharBudget != 120000 {
		t.Fatalf("expected default CharBudget=120000, got %d", cfg.LLM.CharBudget)
	}
	if cfg.LLM.Disabled {
		t.Fatal("expected classification enabled by default")
	}
	if len(cfg.LLM.Keywords) != 4 {
		t.Fatalf("expected 4 default keywords, got %v", cfg.LLM.Keywords)
	}
	if cfg.Output.Path != "hitachi_relevant_companies.csv" {
		t.Fatalf("unexpected default output path: %q", cfg.Output.Path)
	}
	if cfg.LogLevel != "info" {
		t.Fatalf("expected default log level 'info', got %q", cfg.LogLevel)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("VENTURE_EIP_URLS", "https://a.example/p, https://b.example/p")
	t.Setenv("VENTURE_SET_LOCAL_HTML", "data/set.html")
	t.Setenv("VENTURE_HTTP_TIMEOUT", "5s")
	t.Setenv("GEMINI_API_KEY", "key_123")
	t.Setenv("VENTURE_CHAR_BUDGET", "500")
	t.Setenv("VENTURE_DISABLE_LLM", "true")
	t.Setenv("VENTURE_ENERGY_KEYWORDS", "solar, wind")

	cfg := Load()

	if len(cfg.Sources.EIPURLs) != 2 || cfg.Sources.EIPURLs[1] != "https://b.example/p" {
		t.Fatalf("unexpected EIP URLs: %v", cfg.Sources.EIPURLs)
	}
	if cfg.Sources.SETLocalHTML != "data/set.html" {
		t.Fatalf("unexpected SET local HTML: %q", cfg.Sources.SETLocalHTML)
	}
	if cfg.Sources.HTTPTimeout != 5*time.Second {
		t.Fatalf("expected HTTPTimeout=5s, got %v", cfg.Sources.HTTPTimeout)
	}
	if cfg.LLM.APIKey != "key_123" {
		t.Fatalf("unexpected APIKey: %q", cfg.LLM.APIKey)
	}
	if cfg.LLM.CharBudget != 500 {
		t.Fatalf("expected CharBudget=500, got %d", cfg.LLM.CharBudget)
	}
	if !cfg.LLM.Disabled {
		t.Fatal("expected Disabled=true")
	}
	if len(cfg.LLM.Keywords) != 2 || cfg.LLM.Keywords[0] != "solar" || cfg.LLM.Keywords[1] != "wind" {
		t.Fatalf("unexpected keywords: %v", cfg.LLM.Keywords)
	}
}

func TestLoad_InvalidValuesFallBack(t *testing.T) {
	clearEnv(t)
	t.Setenv("VENTURE_CHAR_BUDGET", "abc")
	t.Setenv("VENTURE_HTTP_TIMEOUT", "soon")
	t.Setenv("VENTURE_DISABLE_LLM", "maybe")

	cfg := Load()

	if cfg.LLM.CharBudget != 120000 {
		t.Fatalf("expected fallback CharBudget, got %d", cfg.LLM.CharBudget)
	}
	if cfg.Sources.HTTPTimeout != 15*time.Second {
		t.Fatalf("expected fallback HTTPTimeout, got %v", cfg.Sources.HTTPTimeout)
	}
	if cfg.LLM.Disabled {
		t.Fatal("expected fallback Disabled=false")
	}
}

func validConfig() Config {
	return Config{
		Sources: SourceConfig{
			EIPURLs:     []string{"https://a.example/p"},
			SETURLs:     []string{"https://b.example/p"},
			HTTPTimeout: 15 * time.Second,
		},
		LLM: LLMConfig{
			Model:      "gemini-3-flash-preview",
			Keywords:   DefaultKeywords,
			CharBudget: 120000,
		},
		Output: OutputConfig{Path: "out.csv"},
	}
}

func TestValidate_ValidConfig(t *testing.T) {
	if err := validConfig().Validate(); err != nil {
		t.Fatalf("expected nil error for valid config, got: %v", err)
	}
}

func TestValidate_LocalFileSatisfiesSource(t *testing.T) {
	cfg := validConfig()
	cfg.Sources.EIPURLs = nil
	cfg.Sources.EIPLocalHTML = "data/eip.html"
	if err := cfg.Validate(); err != nil {
		t.Fatalf("expected nil error with local file only, got: %v", err)
	}
}

func TestValidate_MissingSource(t *testing.T) {
	cfg := validConfig()
	cfg.Sources.SETURLs = nil
	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error for missing SET source")
	}
	if !strings.Contains(err.Error(), "SET") {
		t.Fatalf("expected error to mention 'SET', got: %v", err)
	}
}

func TestValidate_MultipleErrors(t *testing.T) {
	cfg := validConfig()
	cfg.LLM.CharBudget = 0
	cfg.LLM.Keywords = nil
	cfg.Output.Path = ""
	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error for multiple bad fields")
	}
	msg := err.Error()
	for _, want := range []string{"char budget", "keyword", "output path"} {
		if !strings.Contains(msg, want) {
			t.Errorf("expected error to mention %q, got: %v", want, msg)
		}
	}
}
