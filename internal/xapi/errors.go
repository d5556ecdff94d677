package xapi

import (
	"encoding/json"
	"fmt"
)

// Kind tags an APIError with its place in the failure taxonomy.
type Kind int

const (
	// KindInternal covers transport and decode failures on our side.
	KindInternal Kind = iota
	// KindRateLimit is a remote "slow down" response.
	KindRateLimit
	// KindAuth is a credential or authorization problem.
	KindAuth
	// KindAPI is any other remote failure.
	KindAPI
)

// authCodes are the v1-style error codes the platform uses for credential
// and authorization problems.
var authCodes = map[int]bool{
	32:  true, // could not authenticate
	89:  true, // invalid or expired token
	99:  true, // unable to verify credentials
	215: true, // bad authentication data
}

// rate limit as a v1-style error code
const rateLimitCode = 88

// APIError is the single error shape this package produces. Every remote
// call failure is classified into exactly one Kind before it is returned.
type APIError struct {
	Kind       Kind
	StatusCode int
	Code       int
	Message    string
	cause      error
}

func (e *APIError) Error() string {
	switch e.Kind {
	case KindRateLimit:
		return fmt.Sprintf("rate limited by the platform (code %d): %s", e.Code, e.Message)
	case KindAuth:
		return fmt.Sprintf("authentication failed (code %d): %s", e.Code, e.Message)
	case KindAPI:
		return fmt.Sprintf("platform error (code %d): %s", e.Code, e.Message)
	}
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.cause)
	}
	return e.Message
}

func (e *APIError) Unwrap() error { return e.cause }

func internalError(op string, err error) *APIError {
	return &APIError{Kind: KindInternal, Message: op, cause: err}
}

func operationError(format string, a ...any) *APIError {
	return &APIError{Kind: KindAPI, Message: fmt.Sprintf(format, a...)}
}

// classify maps a non-2xx response to an APIError. The body is decoded
// defensively: v2 errors carry top-level title/detail, v1 errors carry an
// errors list with code/message; anything else falls back to "unknown error".
func classify(status int, body []byte) *APIError {
	var payload struct {
		Title  string `json:"title"`
		Detail string `json:"detail"`
		Errors []struct {
			Code    int    `json:"code"`
			Message string `json:"message"`
			Detail  string `json:"detail"`
		} `json:"errors"`
	}
	_ = json.Unmarshal(body, &payload) // a non-JSON body keeps the zero value

	code := 0
	message := ""
	if len(payload.Errors) > 0 {
		code = payload.Errors[0].Code
		message = firstNonEmpty(payload.Errors[0].Message, payload.Errors[0].Detail)
	}
	message = firstNonEmpty(payload.Detail, payload.Title, message, "unknown error")
	if code == 0 {
		code = status
	}

	e := &APIError{StatusCode: status, Code: code, Message: message}
	switch {
	case status == 429 || code == rateLimitCode:
		e.Kind = KindRateLimit
	case status == 401 || status == 403 || authCodes[code]:
		e.Kind = KindAuth
	default:
		e.Kind = KindAPI
	}
	return e
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
