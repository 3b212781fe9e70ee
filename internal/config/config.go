package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// ProviderConfig holds the per-vendor settings. An empty APIKey marks the
// provider unconfigured; it is still listed but rejects chat requests.
type ProviderConfig struct {
	APIKey  string `yaml:"apiKey"`
	Model   string `yaml:"model"`   // empty: vendor default
	BaseURL string `yaml:"baseUrl"` // empty: vendor endpoint
}

// SiteConfig identifies this deployment to OpenRouter's attribution headers.
type SiteConfig struct {
	URL  string `yaml:"url"`
	Name string `yaml:"name"`
}

// ChatConfig holds generation parameters shared by all providers.
type ChatConfig struct {
	MaxHistoryMessages int     `yaml:"maxHistoryMessages"`
	MaxTokens          int     `yaml:"maxTokens"`
	Temperature        float32 `yaml:"temperature"`
	TopP               float32 `yaml:"topP"`
}

// Config holds the application configuration. It is built once at startup
// and read-only thereafter.
type Config struct {
	ListenAddr      string                    `yaml:"listenAddr"`
	DefaultProvider string                    `yaml:"defaultProvider"`
	Providers       map[string]ProviderConfig `yaml:"providers"`
	Site            SiteConfig                `yaml:"site"`
	Chat            ChatConfig                `yaml:"chat"`
}

// LoadConfig loads the configuration from a YAML file, fills any gaps from
// environment variables (YAML wins over env), then applies defaults. A
// missing file is not an error: the service can run entirely from
// GROQ_API_KEY / OPENROUTER_API_KEY style variables, matching a plain .env
// deployment.
func LoadConfig(path string) (*Config, error) {
	config := &Config{
		Providers: map[string]ProviderConfig{},
		Chat: ChatConfig{
			MaxHistoryMessages: 10,
			MaxTokens:          1024,
			Temperature:        0.7,
			TopP:               1,
		},
	}

	if data, err := os.ReadFile(path); err == nil {
		if err := yaml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to unmarshal config: %w", err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config.applyEnvFallbacks()
	config.applyDefaults()
	return config, nil
}

// applyEnvFallbacks fills empty fields from the environment variable names
// the provider dashboards document (GROQ_API_KEY, OPENROUTER_MODEL, ...).
func (c *Config) applyEnvFallbacks() {
	if c.Providers == nil {
		c.Providers = map[string]ProviderConfig{}
	}
	for _, name := range []string{"groq", "openrouter"} {
		pc := c.Providers[name]
		prefix := strings.ToUpper(name)
		if pc.APIKey == "" {
			pc.APIKey = os.Getenv(prefix + "_API_KEY")
		}
		if pc.Model == "" {
			pc.Model = os.Getenv(prefix + "_MODEL")
		}
		c.Providers[name] = pc
	}

	if c.DefaultProvider == "" {
		c.DefaultProvider = os.Getenv("DEFAULT_PROVIDER")
	}
	if c.Site.URL == "" {
		c.Site.URL = os.Getenv("SITE_URL")
	}
	if c.Site.Name == "" {
		c.Site.Name = os.Getenv("SITE_NAME")
	}
}

func (c *Config) applyDefaults() {
	if c.ListenAddr == "" {
		c.ListenAddr = ":8000"
	}
	if c.DefaultProvider == "" {
		c.DefaultProvider = "groq"
	}
	if c.Site.URL == "" {
		c.Site.URL = "http://localhost:8000"
	}
	if c.Site.Name == "" {
		c.Site.Name = "Arduino Chatbot"
	}
}
