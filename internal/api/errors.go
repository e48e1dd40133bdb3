package api

import "fmt"

// AuthError indicates the API rejected the configured credentials.
type AuthError struct {
	StatusCode int
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("Censys API rejected credentials (HTTP %d). Check CENSYS_API_ID / CENSYS_API_SECRET or run: censys-openclaw config set-credentials", e.StatusCode)
}

// RequestError indicates a failed search request. Transient reports
// whether the failure class is temporary (rate limits, server errors,
// transport failures) as opposed to a bad query or similar.
type RequestError struct {
	StatusCode int // 0 for transport-level failures
	Message    string
	transient  bool
}

func (e *RequestError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("Censys API request failed: %s", e.Message)
	}
	return fmt.Sprintf("Censys API request failed (HTTP %d): %s", e.StatusCode, e.Message)
}

func (e *RequestError) Transient() bool {
	return e.transient
}
