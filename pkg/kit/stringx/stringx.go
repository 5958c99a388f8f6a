package stringx

import "strings"

// IsBlank reports whether s has nothing but whitespace and newlines.
func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

func IsNotBlank(s string) bool {
	return !IsBlank(s)
}

// IsBlankPtr treats a nil string as blank.
func IsBlankPtr(s *string) bool {
	return s == nil || IsBlank(*s)
}
