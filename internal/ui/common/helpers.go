// Package common provides shared utilities for the UI.
package common

import "strings"

// TruncateName truncates a player name to the specified maximum length.
func TruncateName(name string, maxLen int) string {
	runes := []rune(name)
	if len(runes) > maxLen {
		return string(runes[:maxLen-1]) + "…"
	}
	return name
}

// JoinNames joins player names with the Chinese enumeration comma,
// truncating each name so long entries keep the layout intact.
func JoinNames(names []string, maxLen int) string {
	parts := make([]string, len(names))
	for i, n := range names {
		parts[i] = TruncateName(n, maxLen)
	}
	return strings.Join(parts, "、")
}
