package schema

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidArguments is matched by every argument validation failure.
var ErrInvalidArguments = errors.New("invalid arguments")

// Violation is one schema constraint an argument failed.
type Violation struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}

// ValidationError reports every violation found for one call.
type ValidationError struct {
	Tool       string
	Violations []Violation
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid arguments for %s: %s", e.Tool, e.Summary())
}

// Summary lists the violations without the tool prefix.
func (e *ValidationError) Summary() string {
	parts := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		parts = append(parts, fmt.Sprintf("%s: %s", v.Path, v.Message))
	}
	return strings.Join(parts, "; ")
}

func (e *ValidationError) Unwrap() error { return ErrInvalidArguments }

// DecodeArguments turns raw tools/call arguments into a map.
// Absent, empty and null arguments decode to an empty map.
func DecodeArguments(raw json.RawMessage) (map[string]any, error) {
	trimmed := strings.TrimSpace(string(raw))
	if trimmed == "" || trimmed == "null" {
		return map[string]any{}, nil
	}
	var out map[string]any
	if err := json.Unmarshal([]byte(trimmed), &out); err != nil {
		return nil, fmt.Errorf("%w: arguments must be a JSON object: %v", ErrInvalidArguments, err)
	}
	if out == nil {
		out = map[string]any{}
	}
	return out, nil
}
