package normalization

import (
	"math"
	"strconv"
	"strings"
	"time"
)

const (
	// DateLayout is the default cell date pattern (YYYY-MM-DD).
	DateLayout = "2006-01-02"
	// MonthLayout is used for publication dates that carry no day (YYYY-MM).
	MonthLayout = "2006-01"
)

// ParseFloat returns the value of raw when it is a finite decimal literal, otherwise def.
func ParseFloat(raw string, def *float64) *float64 {
	s := strings.TrimSpace(raw)
	if s == "" {
		return def
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return def
	}
	return &v
}

// ParseInt returns the value of raw when it is a base-10 integer literal, otherwise def.
func ParseInt(raw string, def *int) *int {
	s := strings.TrimSpace(raw)
	if s == "" {
		return def
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return &v
}

// ParseDate parses raw against layout (DateLayout when empty), otherwise def.
func ParseDate(raw, layout string, def *time.Time) *time.Time {
	s := strings.TrimSpace(raw)
	if s == "" {
		return def
	}
	if layout == "" {
		layout = DateLayout
	}
	t, err := time.Parse(layout, s)
	if err != nil {
		return def
	}
	return &t
}

// ParseFlag treats an integer cell as a boolean: nonzero is true, anything unparsable is false.
func ParseFlag(raw string) bool {
	v := ParseInt(raw, nil)
	return v != nil && *v != 0
}

// ParseBool accepts the usual query-string spellings of a boolean.
func ParseBool(raw string) (bool, bool) {
	switch ParseInputString(raw) {
	case "1", "true", "t", "yes", "y", "on":
		return true, true
	case "0", "false", "f", "no", "n", "off":
		return false, true
	default:
		return false, false
	}
}
