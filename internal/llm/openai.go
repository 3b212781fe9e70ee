package llm

// OpenAIProvider is the shared client for OpenAI-compatible chat-completion
// APIs. Both supported vendors (Groq, OpenRouter) speak this wire format, so
// one implementation serves both; only the base URL, authentication key, and
// model catalog differ. Vendor specifics live in groq.go and openrouter.go.

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/sashabaranov/go-openai"
)

// clientParams carries everything a vendor wrapper hands to the shared client.
type clientParams struct {
	name         string
	description  string
	apiKey       string
	baseURL      string
	defaultModel string
	knownModels  []string
	timeout      time.Duration
	transport    http.RoundTripper // optional, for vendor-specific headers
	settings     Settings
}

// OpenAIProvider implements Provider against an OpenAI-compatible endpoint.
type OpenAIProvider struct {
	client       *openai.Client
	name         string
	description  string
	defaultModel string
	knownModels  map[string]struct{}
	timeout      time.Duration
	settings     Settings
	configured   bool
}

func newOpenAIProvider(p clientParams) *OpenAIProvider {
	cfg := openai.DefaultConfig(p.apiKey)
	cfg.BaseURL = p.baseURL
	if p.transport != nil {
		cfg.HTTPClient = &http.Client{Transport: p.transport}
	}

	known := make(map[string]struct{}, len(p.knownModels)+1)
	for _, m := range p.knownModels {
		known[m] = struct{}{}
	}
	// A config-supplied default is always a valid override for itself.
	known[p.defaultModel] = struct{}{}

	return &OpenAIProvider{
		client:       openai.NewClientWithConfig(cfg),
		name:         p.name,
		description:  p.description,
		defaultModel: p.defaultModel,
		knownModels:  known,
		timeout:      p.timeout,
		settings:     p.settings,
		configured:   p.apiKey != "",
	}
}

func (p *OpenAIProvider) Name() string         { return p.name }
func (p *OpenAIProvider) Description() string  { return p.description }
func (p *OpenAIProvider) DefaultModel() string { return p.defaultModel }
func (p *OpenAIProvider) Configured() bool     { return p.configured }

// Chat sends one chat-completion request to the vendor and returns the
// normalized result. A missing API key fails before any network call.
func (p *OpenAIProvider) Chat(ctx context.Context, messages []Message, modelOverride string) (*Result, error) {
	if !p.configured {
		return nil, &UnavailableError{Provider: p.name}
	}

	model := p.selectModel(modelOverride)

	req := openai.ChatCompletionRequest{
		Model:       model,
		Messages:    convertMessages(messages),
		Temperature: p.settings.Temperature,
		MaxTokens:   p.settings.MaxTokens,
		TopP:        p.settings.TopP,
	}

	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	resp, err := p.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return nil, p.wrapError(err)
	}

	if len(resp.Choices) == 0 {
		return nil, &UpstreamError{Provider: p.name, Message: "no choices returned"}
	}

	return &Result{
		Content: resp.Choices[0].Message.Content,
		Model:   model,
	}, nil
}

// selectModel picks the override when it names a known vendor model and
// falls back to the default otherwise. Unknown overrides are not an error:
// students copy model names from all over, and a wrong one should degrade
// to a working default rather than fail the request.
func (p *OpenAIProvider) selectModel(override string) string {
	if override == "" {
		return p.defaultModel
	}
	if _, ok := p.knownModels[override]; !ok {
		return p.defaultModel
	}
	return override
}

// wrapError classifies SDK errors into the package error kinds. The SDK
// returns *openai.APIError for non-2xx responses with a parseable body,
// *openai.RequestError for other HTTP failures, and the raw transport error
// when the call never got a response.
func (p *OpenAIProvider) wrapError(err error) error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return &UpstreamError{Provider: p.name, StatusCode: apiErr.HTTPStatusCode, Message: apiErr.Message}
	}
	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		return &UpstreamError{Provider: p.name, StatusCode: reqErr.HTTPStatusCode, Message: reqErr.Error()}
	}
	return &TransportError{Provider: p.name, Err: err}
}

func convertMessages(messages []Message) []openai.ChatCompletionMessage {
	out := make([]openai.ChatCompletionMessage, len(messages))
	for i, m := range messages {
		out[i] = openai.ChatCompletionMessage{Role: m.Role, Content: m.Content}
	}
	return out
}
