package llm

import (
	"context"
	"strings"
)

// MockProvider implements Provider for testing without real API calls.
type MockProvider struct {
	name         string
	defaultModel string
	responses    map[string]string
	callCount    int
	configured   bool
}

// NewMockProvider creates a MockProvider with canned Arduino answers.
func NewMockProvider(name, defaultModel string) *MockProvider {
	return &MockProvider{
		name:         name,
		defaultModel: defaultModel,
		configured:   true,
		responses: map[string]string{
			"ultrasonic": "Connect VCC to 5V, GND to GND, then wire Trig and Echo to two digital pins. Use pulseIn() to measure the echo duration.",
			"led":        "An LED lights up when current flows through it in one direction. Always add a 220 ohm resistor in series to limit the current.",
			"servo":      "Use the Servo library: attach the signal wire to a PWM pin, then call servo.write(angle) with a value between 0 and 180.",
			"default":    "Let's break that down step by step. Which Arduino board are you using?",
		},
	}
}

// WithConfigured toggles the reported key presence so tests can exercise
// the unavailable path.
func (m *MockProvider) WithConfigured(ok bool) *MockProvider {
	m.configured = ok
	return m
}

// SetResponse customizes a canned response.
func (m *MockProvider) SetResponse(key, response string) {
	m.responses[key] = response
}

// CallCount returns how many times Chat was called.
func (m *MockProvider) CallCount() int { return m.callCount }

func (m *MockProvider) Name() string         { return m.name }
func (m *MockProvider) Description() string  { return "mock provider for tests" }
func (m *MockProvider) DefaultModel() string { return m.defaultModel }
func (m *MockProvider) Configured() bool     { return m.configured }

// Chat picks a canned response by keyword from the last user message and
// reports the model the real client would have used.
func (m *MockProvider) Chat(_ context.Context, messages []Message, modelOverride string) (*Result, error) {
	m.callCount++

	key := "default"
	for _, msg := range messages {
		lower := strings.ToLower(msg.Content)
		switch {
		case strings.Contains(lower, "ultrasonic"):
			key = "ultrasonic"
		case strings.Contains(lower, "led"):
			key = "led"
		case strings.Contains(lower, "servo"):
			key = "servo"
		}
	}

	model := modelOverride
	if model == "" {
		model = m.defaultModel
	}

	return &Result{Content: m.responses[key], Model: model}, nil
}
