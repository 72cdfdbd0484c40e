package domain

import "strings"

const (
	// ReferenceLocale is the locale whose key set is authoritative.
	ReferenceLocale = "en"
	// PlaceholderMarker prefixes values that still need a human translation.
	// The trailing space is part of the marker.
	PlaceholderMarker = "TODO_TRANSLATE: "
)

// Settings carries the fixed values every service is constructed with.
type Settings struct {
	ReferenceLocale string
	Marker          string
}

// DefaultSettings returns the reference locale and marker used in production.
func DefaultSettings() Settings {
	return Settings{
		ReferenceLocale: ReferenceLocale,
		Marker:          PlaceholderMarker,
	}
}

// IsPlaceholder reports whether s carries the placeholder marker.
func (s Settings) IsPlaceholder(value string) bool {
	return strings.HasPrefix(value, s.Marker)
}

// Draft returns the text after the marker and whether value was a placeholder.
func (s Settings) Draft(value string) (string, bool) {
	if !s.IsPlaceholder(value) {
		return "", false
	}
	return value[len(s.Marker):], true
}

// Placeholder wraps english in a fresh placeholder.
func (s Settings) Placeholder(english string) string {
	return s.Marker + english
}
