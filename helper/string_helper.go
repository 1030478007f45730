package helper

import (
	"strconv"
	"strings"
	"unicode"
)

// Underscore converts a StructField name to its snake_case response key.
func Underscore(s string) string {
	var b strings.Builder
	for i, r := range s {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteByte('_')
			}
			b.WriteRune(unicode.ToLower(r))
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// StringToInt converts string to int, returns fallback on error or
// non-positive values. Used for pagination query parameters.
func StringToInt(s string, fallback int) int {
	i, err := strconv.Atoi(s)
	if err != nil || i < 1 {
		return fallback
	}
	return i
}

// ParseID validates that the path parameter is a well-formed record id
// before any database access happens.
func ParseID(s string) (uint, bool) {
	id, err := strconv.ParseUint(s, 10, 32)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}
