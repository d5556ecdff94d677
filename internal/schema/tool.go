// Package schema contains the core contracts shared across finchline packages.
// Concrete implementations live in their respective packages; this package is the
// single canonical source of truth for every shared definition.
package schema

import (
	"context"
	"encoding/json"
)

// Tool is the interface every callable operation must satisfy.
// A tool validates its own arguments, performs a small fixed sequence of
// remote calls, and returns display text.
type Tool interface {
	Name() string
	Description() string
	// Parameters returns the JSON Schema (as raw JSON bytes) for this tool's input.
	Parameters() json.RawMessage
	Execute(ctx context.Context, args map[string]any) (string, error)
}
