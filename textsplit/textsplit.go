// Package textsplit splits strings on literal separators.
package textsplit

import "strings"

// Split breaks s around each occurrence of sep, keeping empty fields.
// An empty separator splits s into its UTF-8 characters.
func Split(s, sep string) []string {
	return strings.Split(s, sep)
}

// SplitNonEmpty is Split with empty fields dropped.
func SplitNonEmpty(s, sep string) []string {
	parts := strings.Split(s, sep)
	out := parts[:0]
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
