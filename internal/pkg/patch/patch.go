package patch

import "strings"

// Coalesce returns the value pointed to by ptr if it's not nil, otherwise returns fallback
func Coalesce[T any](ptr *T, fallback T) T {
	if ptr != nil {
		return *ptr
	}
	return fallback
}

// CoalesceText treats a nil or blank override as absent.
func CoalesceText(override *string, fallback string) string {
	if override == nil || strings.TrimSpace(*override) == "" {
		return fallback
	}
	return *override
}
