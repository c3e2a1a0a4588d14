package domain

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

var emailRx = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// trimmedInRange trims v and checks its length against [min, max].
// Length is counted in runes so accented names are not penalized for
// their UTF-8 encoding.
func trimmedInRange(v string, min, max int) (string, bool) {
	v = strings.TrimSpace(v)
	n := utf8.RuneCountInString(v)
	return v, n >= min && n <= max
}

// Update payloads arrive as map[string]any, so numbers come in as float64
// (JSON) or as native ints from Go callers.
func asFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	}
	return 0, false
}

func asInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		if n == float64(int(n)) {
			return int(n), true
		}
	}
	return 0, false
}

func asString(v any) (string, bool) {
	s, ok := v.(string)
	return s, ok
}
