package pdfdoc

import "strings"

// IsBoldFont reports whether a PDF font name indicates a bold face
func IsBoldFont(name string) bool {
	lower := strings.ToLower(name)
	return strings.Contains(lower, "bold") ||
		strings.Contains(lower, "black") ||
		strings.Contains(lower, "heavy") ||
		strings.Contains(lower, "semibold") ||
		strings.Contains(lower, "demibold")
}

// IsItalicFont reports whether a PDF font name indicates an italic face
func IsItalicFont(name string) bool {
	lower := strings.ToLower(name)
	return strings.Contains(lower, "italic") ||
		strings.Contains(lower, "oblique")
}
