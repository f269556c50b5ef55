package registry

import "strings"

// AllowedChars returns the id alphabet as single-character strings, in
// listing order. The slice is a fresh copy on every call.
func AllowedChars() []string {
	chars := make([]string, 0, len(IDAllowedChars))
	for _, r := range IDAllowedChars {
		chars = append(chars, string(r))
	}
	return chars
}

// IsAllowed reports whether r may appear in an id prefix.
func IsAllowed(r rune) bool {
	return strings.ContainsRune(IDAllowedChars, r)
}
