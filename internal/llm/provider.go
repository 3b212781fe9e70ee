package llm

import "context"

// Message is a single conversation turn in OpenAI wire format.
// Roles are passed through to the vendor unchanged.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Well-known message roles.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Result is a normalized chat-completion answer.
type Result struct {
	// Content is the assistant's reply text.
	Content string
	// Model is the model that was actually sent to the vendor, which may
	// differ from the requested override when the override is unknown.
	Model string
}

// Provider is one hosted chat-completion vendor.
//
// Chat performs exactly one outbound call: no retries, no streaming. The
// modelOverride selects a vendor model for this call only; pass "" to use
// the provider's default.
type Provider interface {
	Chat(ctx context.Context, messages []Message, modelOverride string) (*Result, error)

	// Name is the provider identifier used in requests (e.g. "groq").
	Name() string
	// Description is a short human-readable blurb for the discovery listing.
	Description() string
	// DefaultModel is the model used when no override is given.
	DefaultModel() string
	// Configured reports whether an API key is present. It never does IO.
	Configured() bool
}

// Settings holds the generation parameters shared by all providers.
type Settings struct {
	MaxTokens   int
	Temperature float32
	TopP        float32
}
