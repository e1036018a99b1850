package llm

import "fmt"

// APIError represents a failure reported by the completion API.
type APIError struct {
	StatusCode int
	Msg        string
	Err        error
}

func (e *APIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.Err)
	}
	return e.Msg
}

func (e *APIError) Unwrap() error {
	return e.Err
}

// ErrAuthenticationFailed indicates the API rejected the credential.
func ErrAuthenticationFailed(statusCode int, err error) error {
	return &APIError{
		StatusCode: statusCode,
		Msg:        "authentication failed: check your API key",
		Err:        err,
	}
}

// ErrRateLimitExceeded indicates the API's rate limit was hit.
func ErrRateLimitExceeded(err error) error {
	return &APIError{
		StatusCode: 429,
		Msg:        "rate limit exceeded",
		Err:        err,
	}
}

// ErrEmptyResponse indicates the API returned no completion choices.
func ErrEmptyResponse(model string) error {
	return &APIError{
		Msg: fmt.Sprintf("model '%s' returned an empty response", model),
	}
}
