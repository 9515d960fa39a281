package rules

import "fmt"

// NewTextExtractor extracts a labeled free-text value (party names, payment
// methods). The value is the trimmed captured token, case and punctuation
// preserved.
func NewTextExtractor(field string, patterns []string, opts ...Option) *FieldExtractor {
	return NewFieldExtractor(field, patterns, opts...)
}

// LabelLinePattern captures the rest of the line after "<label>:". The colon
// is required so "Seller:" does not swallow "Seller Tax ID:" lines.
func LabelLinePattern(label string) string {
	return fmt.Sprintf(`(?i)\b%s\s*:\s*([^\r\n]+)`, label)
}
