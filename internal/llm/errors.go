package llm

// Error kinds for the provider layer. Each kind maps to one HTTP status at
// the API boundary, so handlers can translate with errors.As instead of
// string matching.

import (
	"fmt"
	"strings"
)

// UnknownProviderError reports a provider identifier outside the known set.
type UnknownProviderError struct {
	Provider string
}

func (e *UnknownProviderError) Error() string {
	return fmt.Sprintf("unknown provider %q; supported: %s", e.Provider, strings.Join(KnownProviders, ", "))
}

// UnavailableError reports a recognized provider that has no API key
// configured. It is returned before any network call is attempted.
type UnavailableError struct {
	Provider string
}

func (e *UnavailableError) Error() string {
	return fmt.Sprintf("provider %q is not configured: set %s_API_KEY in your environment or .env file",
		e.Provider, strings.ToUpper(e.Provider))
}

// UpstreamError reports a non-success response from the vendor API.
type UpstreamError struct {
	Provider   string
	StatusCode int // 0 when the vendor returned a malformed payload without a status
	Message    string
}

func (e *UpstreamError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s api error (status %d): %s", e.Provider, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("%s api error: %s", e.Provider, e.Message)
}

// TransportError reports a network failure or timeout talking to the vendor.
type TransportError struct {
	Provider string
	Err      error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s request failed: %v", e.Provider, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }
