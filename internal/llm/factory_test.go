package llm

import (
	"errors"
	"testing"

	"arduchat/internal/config"
)

func testConfig() *config.Config {
	return &config.Config{
		DefaultProvider: "groq",
		Providers: map[string]config.ProviderConfig{
			"groq":       {APIKey: "gsk-test"},
			"openrouter": {APIKey: "sk-or-test"},
		},
		Chat: config.ChatConfig{MaxTokens: 1024, Temperature: 0.7, TopP: 1},
	}
}

func TestNewRouterFromConfig_RegistersKnownSet(t *testing.T) {
	router, err := NewRouterFromConfig(testConfig())
	if err != nil {
		t.Fatalf("NewRouterFromConfig() unexpected error: %v", err)
	}

	infos := router.Providers()
	if len(infos) != len(KnownProviders) {
		t.Fatalf("Providers() len = %d, want %d", len(infos), len(KnownProviders))
	}
	for i, name := range KnownProviders {
		if infos[i].Name != name {
			t.Errorf("Providers()[%d] = %q, want %q", i, infos[i].Name, name)
		}
	}
	if infos[0].DefaultModel != GroqDefaultModel {
		t.Errorf("groq default model = %q, want %q", infos[0].DefaultModel, GroqDefaultModel)
	}
	if infos[1].DefaultModel != OpenRouterDefaultModel {
		t.Errorf("openrouter default model = %q, want %q", infos[1].DefaultModel, OpenRouterDefaultModel)
	}
}

func TestNewRouterFromConfig_ModelOverrideFromConfig(t *testing.T) {
	cfg := testConfig()
	pc := cfg.Providers["groq"]
	pc.Model = "llama-3.3-70b-versatile"
	cfg.Providers["groq"] = pc

	router, err := NewRouterFromConfig(cfg)
	if err != nil {
		t.Fatalf("NewRouterFromConfig() unexpected error: %v", err)
	}
	p, err := router.Resolve("groq")
	if err != nil {
		t.Fatalf("Resolve() unexpected error: %v", err)
	}
	if p.DefaultModel() != "llama-3.3-70b-versatile" {
		t.Errorf("DefaultModel() = %q, want config override", p.DefaultModel())
	}
}

func TestNewRouterFromConfig_UnknownDefault(t *testing.T) {
	cfg := testConfig()
	cfg.DefaultProvider = "ollama"

	if _, err := NewRouterFromConfig(cfg); err == nil {
		t.Error("NewRouterFromConfig() should fail for a default outside the known set")
	}
}

func TestNewRouterFromConfig_KeylessProviderStillRegistered(t *testing.T) {
	cfg := testConfig()
	pc := cfg.Providers["openrouter"]
	pc.APIKey = ""
	cfg.Providers["openrouter"] = pc

	router, err := NewRouterFromConfig(cfg)
	if err != nil {
		t.Fatalf("NewRouterFromConfig() unexpected error: %v", err)
	}

	// Listed and visible in health, but resolution fails with the
	// configuration hint.
	if router.Status()["openrouter"] {
		t.Error("Status()[openrouter] = true, want false")
	}
	_, err = router.Resolve("openrouter")
	var unavailable *UnavailableError
	if !errors.As(err, &unavailable) {
		t.Errorf("Resolve() error = %v, want *UnavailableError", err)
	}
}
