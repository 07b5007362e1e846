// Package validation defines the shared shape for collected validation
// findings.
//
// A finding is never raised as an error. Leaf findings serialize as
// ["message"]; grouped findings serialize as ["message", [sub, sub, ...]],
// recursively. Downstream tooling flattens this positionally, so the shape
// is part of the public contract.
package validation

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Finding is one validation finding, optionally grouping nested findings
// under an explanatory message.
type Finding struct {
	Message string
	Nested  []Finding
}

// New creates a leaf finding.
func New(format string, args ...any) Finding {
	return Finding{Message: fmt.Sprintf(format, args...)}
}

// Group creates a finding that nests sub-findings under a message.
func Group(message string, nested []Finding) Finding {
	return Finding{Message: message, Nested: nested}
}

// MarshalJSON emits ["message"] or ["message", [nested...]].
func (f Finding) MarshalJSON() ([]byte, error) {
	if len(f.Nested) == 0 {
		return json.Marshal([]any{f.Message})
	}
	return json.Marshal([]any{f.Message, f.Nested})
}

// UnmarshalJSON accepts the positional list shape.
func (f *Finding) UnmarshalJSON(data []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if len(raw) == 0 {
		return fmt.Errorf("finding must have a message")
	}
	if err := json.Unmarshal(raw[0], &f.Message); err != nil {
		return fmt.Errorf("finding message: %w", err)
	}
	f.Nested = nil
	if len(raw) > 1 {
		if err := json.Unmarshal(raw[1], &f.Nested); err != nil {
			return fmt.Errorf("nested findings: %w", err)
		}
	}
	return nil
}

// MarshalYAML preserves the same positional shape for YAML reports.
func (f Finding) MarshalYAML() (any, error) {
	if len(f.Nested) == 0 {
		return []any{f.Message}, nil
	}
	return []any{f.Message, f.Nested}, nil
}

// Flatten returns every message in the tree, depth-first.
func (f Finding) Flatten() []string {
	out := []string{f.Message}
	for _, n := range f.Nested {
		out = append(out, n.Flatten()...)
	}
	return out
}

// Contains reports whether any message in the tree contains substr.
func (f Finding) Contains(substr string) bool {
	for _, m := range f.Flatten() {
		if strings.Contains(m, substr) {
			return true
		}
	}
	return false
}

// AnyContains reports whether any finding in the list contains substr.
func AnyContains(findings []Finding, substr string) bool {
	for _, f := range findings {
		if f.Contains(substr) {
			return true
		}
	}
	return false
}

// Indent renders findings as an indented bullet list for terminal output.
func Indent(findings []Finding, indent string) string {
	var sb strings.Builder
	writeIndented(&sb, findings, indent)
	return sb.String()
}

func writeIndented(sb *strings.Builder, findings []Finding, indent string) {
	for _, f := range findings {
		sb.WriteString(indent)
		sb.WriteString("- ")
		sb.WriteString(f.Message)
		sb.WriteString("\n")
		writeIndented(sb, f.Nested, indent+"  ")
	}
}
