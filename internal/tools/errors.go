package tools

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/finchline/finchline/internal/xapi"
)

// rateLimitNotice is the user-facing text for a remote rate limit. It is a
// plain text response, never an error, so clients render it instead of
// treating the call as crashed.
const rateLimitNotice = "Rate limit reached. Please wait a moment and try again."

// remoteFailure maps an adapter error into the response contract:
// rate limits become text, auth and remote errors become structured error
// messages, and anything unexpected is logged and reduced to a generic
// internal-error signal.
func remoteFailure(tool string, err error) (string, error) {
	var apiErr *xapi.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.Kind {
		case xapi.KindRateLimit:
			return rateLimitNotice, nil
		case xapi.KindAuth:
			return "", fmt.Errorf("authentication error (code %d): check the configured API credentials", apiErr.Code)
		case xapi.KindAPI:
			return "", fmt.Errorf("twitter api error (code %d): %s", apiErr.Code, apiErr.Message)
		}
	}
	slog.Error("tool execution failed", "tool", tool, "error", err)
	return "", fmt.Errorf("internal error executing %s", tool)
}
