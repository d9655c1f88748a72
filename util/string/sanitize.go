package string

import "strings"

// Sanitize replaces characters that are unsafe in file names (spaces
// and path separators) with underscores.
func Sanitize(str string) string {
	str = strings.ReplaceAll(str, " ", "_")
	return strings.ReplaceAll(str, "/", "_")
}

// SanitizeLower is Sanitize plus lowercasing, used for display names
// embedded in file names.
func SanitizeLower(str string) string {
	return strings.ToLower(Sanitize(str))
}
