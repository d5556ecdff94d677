package tools

// Typed accessors over a validated argument bag. Validation has already
// coerced types, so absent-or-zero is the only case left to handle.

func argString(args map[string]any, name string) string {
	s, _ := args[name].(string)
	return s
}

func argInt(args map[string]any, name string) int {
	n, _ := args[name].(int)
	return n
}

func argBool(args map[string]any, name string) bool {
	b, _ := args[name].(bool)
	return b
}

// argStringPtr returns nil when the field was not provided at all.
func argStringPtr(args map[string]any, name string) *string {
	if v, ok := args[name]; ok {
		if s, ok := v.(string); ok {
			return &s
		}
	}
	return nil
}
