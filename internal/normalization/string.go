package normalization

import (
	"strings"
)

// NullableString trims input and maps the empty result to nil.
func NullableString(input string) *string {
	normalized := strings.TrimSpace(input)
	if normalized == "" {
		return nil
	}
	return &normalized
}

// ParseInputString lowercases and trims free-form query input.
func ParseInputString(input string) string {
	return strings.ToLower(strings.TrimSpace(input))
}
