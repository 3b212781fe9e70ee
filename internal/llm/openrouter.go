package llm

// OpenRouterProvider wraps OpenAIProvider with OpenRouter's endpoint.
//
// OpenRouter fronts many hosted models behind one OpenAI-compatible API.
// It additionally recommends two attribution headers (HTTP-Referer and
// X-Title) on every request, which the shared client cannot express, so the
// wrapper injects them through a custom http.RoundTripper.
//
// Reference: https://openrouter.ai/docs

import (
	"net/http"
	"time"
)

const openRouterBaseURL = "https://openrouter.ai/api/v1"

// OpenRouterDefaultModel is used when neither config nor the request names a model.
const OpenRouterDefaultModel = "mistralai/mistral-7b-instruct:free"

// openRouterModels are the accepted per-request overrides: the no-credit
// free tier plus a few credit-backed models.
var openRouterModels = []string{
	"mistralai/mistral-7b-instruct:free",
	"meta-llama/llama-3-8b-instruct:free",
	"meta-llama/llama-3.1-8b-instruct:free",
	"google/gemma-2-9b-it:free",
	"microsoft/phi-3-mini-128k-instruct:free",
	"qwen/qwen-2-7b-instruct:free",
	"mistralai/mixtral-8x7b-instruct",
	"openai/gpt-3.5-turbo",
}

// openRouterTimeout bounds one completion call. Free-tier models queue
// behind paid traffic, so this is double the Groq timeout.
const openRouterTimeout = 60 * time.Second

// NewOpenRouterProvider creates an OpenRouter chat provider.
//
// apiKey comes from OPENROUTER_API_KEY (https://openrouter.ai/keys).
// siteURL and siteName populate the attribution headers shown on the
// OpenRouter dashboard; empty values omit the headers.
func NewOpenRouterProvider(apiKey, defaultModel, baseURL, siteURL, siteName string, settings Settings) *OpenAIProvider {
	if defaultModel == "" {
		defaultModel = OpenRouterDefaultModel
	}
	if baseURL == "" {
		baseURL = openRouterBaseURL
	}
	return newOpenAIProvider(clientParams{
		name:         "openrouter",
		description:  "Multiple free models available",
		apiKey:       apiKey,
		baseURL:      baseURL,
		defaultModel: defaultModel,
		knownModels:  openRouterModels,
		timeout:      openRouterTimeout,
		transport: &attributionTransport{
			base:     http.DefaultTransport,
			siteURL:  siteURL,
			siteName: siteName,
		},
		settings: settings,
	})
}

// attributionTransport adds the OpenRouter attribution headers to every
// outbound request.
type attributionTransport struct {
	base     http.RoundTripper
	siteURL  string
	siteName string
}

func (t *attributionTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	r := req.Clone(req.Context())
	if t.siteURL != "" {
		r.Header.Set("HTTP-Referer", t.siteURL)
	}
	if t.siteName != "" {
		r.Header.Set("X-Title", t.siteName)
	}
	return t.base.RoundTrip(r)
}
