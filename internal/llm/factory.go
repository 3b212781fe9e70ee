package llm

// factory.go constructs the provider Router from the application config.
//
// Every known provider is always registered, even when its API key is empty.
// A keyless provider reports Configured() == false and fails with a clear
// configuration error at resolve time, which beats a silent skip at startup:
// the health and discovery endpoints still list it, and the error tells the
// student exactly which variable to set.

import (
	"fmt"

	"arduchat/internal/config"
)

// NewRouterFromConfig builds the Router for the fixed provider set.
// An unknown cfg.DefaultProvider is a startup error.
func NewRouterFromConfig(cfg *config.Config) (*Router, error) {
	settings := Settings{
		MaxTokens:   cfg.Chat.MaxTokens,
		Temperature: cfg.Chat.Temperature,
		TopP:        cfg.Chat.TopP,
	}

	providers := make([]Provider, 0, len(KnownProviders))
	for _, name := range KnownProviders {
		p, err := buildProvider(name, cfg, settings)
		if err != nil {
			return nil, fmt.Errorf("llm factory: failed to build provider %q: %w", name, err)
		}
		providers = append(providers, p)
	}

	return NewRouter(providers, cfg.DefaultProvider)
}

// buildProvider instantiates a single provider from its config block.
// A missing block is fine; the zero ProviderConfig yields an unconfigured
// provider with vendor defaults.
func buildProvider(name string, cfg *config.Config, settings Settings) (Provider, error) {
	pcfg := cfg.Providers[name]

	switch name {
	case "groq":
		return NewGroqProvider(pcfg.APIKey, pcfg.Model, pcfg.BaseURL, settings), nil

	case "openrouter":
		return NewOpenRouterProvider(pcfg.APIKey, pcfg.Model, pcfg.BaseURL,
			cfg.Site.URL, cfg.Site.Name, settings), nil

	default:
		return nil, fmt.Errorf("unknown provider name %q", name)
	}
}
