package domain

import "strings"

// ExtractIdentifier returns the second whitespace token of a display row, or ""
// when the row has fewer than two tokens. Multi-word names shift the token, so
// callers prefer Entry.ID and use this only for rows without one.
func ExtractIdentifier(row string) string {
	parts := strings.Fields(row)
	if len(parts) < 2 {
		return ""
	}
	return parts[1]
}
