package schema

import (
	"encoding/json"
	"fmt"
	"net/url"
	"sort"
	"unicode/utf8"
)

// FieldType is the JSON Schema type of a single input field.
type FieldType string

const (
	TypeString  FieldType = "string"
	TypeInteger FieldType = "integer"
	TypeBoolean FieldType = "boolean"
)

// Field declares one input field and its constraints.
// Zero-valued bounds mean "unconstrained"; nil Minimum/Maximum likewise.
type Field struct {
	Type        FieldType
	Description string
	MinLength   int  // strings: minimum length in characters
	MaxLength   int  // strings: maximum length in characters
	Minimum     *int // integers: inclusive lower bound
	Maximum     *int // integers: inclusive upper bound
	Default     any  // applied when the field is absent
	URI         bool // strings: must parse as an http(s) URL
}

// Object is the declared input schema of a tool: a flat object with typed,
// bounded fields. It renders itself as JSON Schema and validates argument
// bags against the declared constraints.
type Object struct {
	Fields   map[string]Field
	Required []string
	// AtLeastOne requires that at least one of the named fields is present,
	// independently of Required.
	AtLeastOne []string
}

// Int is a convenience for inline bound literals.
func Int(v int) *int { return &v }

// ValidationError reports the first constraint an argument bag violated.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return "invalid input: " + e.Reason
	}
	return fmt.Sprintf("invalid input: %s: %s", e.Field, e.Reason)
}

func invalid(field, format string, a ...any) error {
	return &ValidationError{Field: field, Reason: fmt.Sprintf(format, a...)}
}

// JSON renders the object as JSON Schema bytes, suitable for a tool listing.
func (o Object) JSON() json.RawMessage {
	props := make(map[string]any, len(o.Fields))
	for name, f := range o.Fields {
		p := map[string]any{"type": string(f.Type)}
		if f.Description != "" {
			p["description"] = f.Description
		}
		if f.MinLength > 0 {
			p["minLength"] = f.MinLength
		}
		if f.MaxLength > 0 {
			p["maxLength"] = f.MaxLength
		}
		if f.Minimum != nil {
			p["minimum"] = *f.Minimum
		}
		if f.Maximum != nil {
			p["maximum"] = *f.Maximum
		}
		if f.Default != nil {
			p["default"] = f.Default
		}
		if f.URI {
			p["format"] = "uri"
		}
		props[name] = p
	}

	doc := map[string]any{
		"type":       "object",
		"properties": props,
	}
	if len(o.Required) > 0 {
		doc["required"] = o.Required
	}
	if len(o.AtLeastOne) > 0 {
		clauses := make([]map[string]any, 0, len(o.AtLeastOne))
		for _, name := range o.AtLeastOne {
			clauses = append(clauses, map[string]any{"required": []string{name}})
		}
		doc["anyOf"] = clauses
	}

	data, err := json.Marshal(doc)
	if err != nil {
		// Fields hold only marshalable values; this is unreachable in practice.
		return json.RawMessage(`{"type":"object","properties":{}}`)
	}
	return data
}

// Validate checks args against the declared constraints and returns a
// normalized copy: defaults applied, integers coerced from JSON numbers.
// The first violated constraint is reported; args is never mutated.
func (o Object) Validate(args map[string]any) (map[string]any, error) {
	out := make(map[string]any, len(o.Fields))

	for _, name := range o.Required {
		if _, ok := args[name]; !ok {
			return nil, invalid(name, "missing required field")
		}
	}

	if len(o.AtLeastOne) > 0 {
		found := false
		for _, name := range o.AtLeastOne {
			if _, ok := args[name]; ok {
				found = true
				break
			}
		}
		if !found {
			names := append([]string(nil), o.AtLeastOne...)
			sort.Strings(names)
			return nil, invalid("", "at least one of %v must be provided", names)
		}
	}

	// Deterministic error order for field-level checks.
	names := make([]string, 0, len(o.Fields))
	for name := range o.Fields {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		f := o.Fields[name]
		raw, ok := args[name]
		if !ok {
			if f.Default != nil {
				out[name] = f.Default
			}
			continue
		}
		val, err := f.check(name, raw)
		if err != nil {
			return nil, err
		}
		out[name] = val
	}
	return out, nil
}

func (f Field) check(name string, raw any) (any, error) {
	switch f.Type {
	case TypeString:
		s, ok := raw.(string)
		if !ok {
			return nil, invalid(name, "expected a string, got %T", raw)
		}
		n := utf8.RuneCountInString(s)
		if f.MinLength > 0 && n < f.MinLength {
			return nil, invalid(name, "must be at least %d characters, got %d", f.MinLength, n)
		}
		if f.MaxLength > 0 && n > f.MaxLength {
			return nil, invalid(name, "must be at most %d characters, got %d", f.MaxLength, n)
		}
		if f.URI {
			if err := checkURL(s); err != nil {
				return nil, invalid(name, "%v", err)
			}
		}
		return s, nil

	case TypeInteger:
		var v int
		switch n := raw.(type) {
		case int:
			v = n
		case int64:
			v = int(n)
		case float64:
			v = int(n)
			if float64(v) != n {
				return nil, invalid(name, "expected an integer, got %v", n)
			}
		default:
			return nil, invalid(name, "expected an integer, got %T", raw)
		}
		if f.Minimum != nil && v < *f.Minimum {
			return nil, invalid(name, "must be at least %d, got %d", *f.Minimum, v)
		}
		if f.Maximum != nil && v > *f.Maximum {
			return nil, invalid(name, "must be at most %d, got %d", *f.Maximum, v)
		}
		return v, nil

	case TypeBoolean:
		b, ok := raw.(bool)
		if !ok {
			return nil, invalid(name, "expected a boolean, got %T", raw)
		}
		return b, nil
	}
	return nil, invalid(name, "unsupported field type %q", f.Type)
}

// checkURL requires an absolute http(s) URL with a host.
func checkURL(rawURL string) error {
	u, err := url.Parse(rawURL)
	if err != nil {
		return err
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("only http/https URLs allowed, got %q", u.Scheme)
	}
	if u.Host == "" {
		return fmt.Errorf("missing domain in URL")
	}
	return nil
}
