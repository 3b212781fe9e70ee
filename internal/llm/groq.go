package llm

// GroqProvider wraps OpenAIProvider with Groq's OpenAI-compatible endpoint.
//
// Groq hosts open-weight models behind an OpenAI-compatible API, so all
// request building and error classification from OpenAIProvider are reused
// without modification. Only the base URL and model catalog differ.
//
// Reference: https://console.groq.com/docs

import "time"

const groqBaseURL = "https://api.groq.com/openai/v1"

// GroqDefaultModel is used when neither config nor the request names a model.
const GroqDefaultModel = "llama-3.1-8b-instant"

// groqModels are the free models accepted as per-request overrides. An
// override outside this list falls back to the provider's default model.
var groqModels = []string{
	"llama-3.1-8b-instant",
	"llama-3.3-70b-versatile",
	"gemma2-9b-it",
	"mixtral-8x7b-32768",
}

// groqTimeout bounds one completion call. Groq is fast; 30s is generous.
const groqTimeout = 30 * time.Second

// NewGroqProvider creates a Groq chat provider.
//
// apiKey comes from GROQ_API_KEY (https://console.groq.com/keys); an empty
// key produces a provider that reports Configured() == false and fails every
// Chat call before any network IO.
// defaultModel overrides GroqDefaultModel; baseURL overrides the public
// endpoint (useful for tests).
func NewGroqProvider(apiKey, defaultModel, baseURL string, settings Settings) *OpenAIProvider {
	if defaultModel == "" {
		defaultModel = GroqDefaultModel
	}
	if baseURL == "" {
		baseURL = groqBaseURL
	}
	return newOpenAIProvider(clientParams{
		name:         "groq",
		description:  "Fast & free - Best for students",
		apiKey:       apiKey,
		baseURL:      baseURL,
		defaultModel: defaultModel,
		knownModels:  groqModels,
		timeout:      groqTimeout,
		settings:     settings,
	})
}
