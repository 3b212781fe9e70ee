package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfig_MissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("LoadConfig() unexpected error: %v", err)
	}
	if cfg.ListenAddr != ":8000" {
		t.Errorf("ListenAddr = %q, want %q", cfg.ListenAddr, ":8000")
	}
	if cfg.DefaultProvider != "groq" {
		t.Errorf("DefaultProvider = %q, want %q", cfg.DefaultProvider, "groq")
	}
	if cfg.Chat.MaxHistoryMessages != 10 {
		t.Errorf("Chat.MaxHistoryMessages = %d, want 10", cfg.Chat.MaxHistoryMessages)
	}
	if cfg.Chat.MaxTokens != 1024 {
		t.Errorf("Chat.MaxTokens = %d, want 1024", cfg.Chat.MaxTokens)
	}
}

func TestLoadConfig_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := `
listenAddr: ":9000"
defaultProvider: openrouter
providers:
  groq:
    apiKey: gsk-test
    model: llama-3.3-70b-versatile
site:
  name: Robotics Club
`
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() unexpected error: %v", err)
	}
	if cfg.ListenAddr != ":9000" {
		t.Errorf("ListenAddr = %q, want %q", cfg.ListenAddr, ":9000")
	}
	if cfg.DefaultProvider != "openrouter" {
		t.Errorf("DefaultProvider = %q, want %q", cfg.DefaultProvider, "openrouter")
	}
	if cfg.Providers["groq"].APIKey != "gsk-test" {
		t.Errorf("groq apiKey = %q, want %q", cfg.Providers["groq"].APIKey, "gsk-test")
	}
	if cfg.Providers["groq"].Model != "llama-3.3-70b-versatile" {
		t.Errorf("groq model = %q, want override", cfg.Providers["groq"].Model)
	}
	if cfg.Site.Name != "Robotics Club" {
		t.Errorf("Site.Name = %q, want %q", cfg.Site.Name, "Robotics Club")
	}
	// Unset site URL falls back to the default.
	if cfg.Site.URL != "http://localhost:8000" {
		t.Errorf("Site.URL = %q, want default", cfg.Site.URL)
	}
}

func TestLoadConfig_EnvFallback(t *testing.T) {
	t.Setenv("GROQ_API_KEY", "gsk-env")
	t.Setenv("OPENROUTER_MODEL", "google/gemma-2-9b-it:free")
	t.Setenv("DEFAULT_PROVIDER", "openrouter")

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("LoadConfig() unexpected error: %v", err)
	}
	if cfg.Providers["groq"].APIKey != "gsk-env" {
		t.Errorf("groq apiKey = %q, want env value", cfg.Providers["groq"].APIKey)
	}
	if cfg.Providers["openrouter"].Model != "google/gemma-2-9b-it:free" {
		t.Errorf("openrouter model = %q, want env value", cfg.Providers["openrouter"].Model)
	}
	if cfg.DefaultProvider != "openrouter" {
		t.Errorf("DefaultProvider = %q, want %q", cfg.DefaultProvider, "openrouter")
	}
}

func TestLoadConfig_YamlWinsOverEnv(t *testing.T) {
	t.Setenv("GROQ_API_KEY", "gsk-env")

	path := filepath.Join(t.TempDir(), "config.yaml")
	data := "providers:\n  groq:\n    apiKey: gsk-file\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() unexpected error: %v", err)
	}
	if cfg.Providers["groq"].APIKey != "gsk-file" {
		t.Errorf("groq apiKey = %q, want file value", cfg.Providers["groq"].APIKey)
	}
}
