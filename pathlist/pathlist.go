// Package pathlist normalizes OS path lists such as $PATH.
package pathlist

import (
	"os"
	"path/filepath"
	"strings"
)

// Entries splits an OS path list into its directories, dropping empty
// entries and cleaning each path.
func Entries(list string) []string {
	var out []string
	for _, dir := range filepath.SplitList(list) {
		if dir == "" {
			continue
		}
		out = append(out, filepath.Clean(dir))
	}
	return out
}

// Normalize cleans a path list: entries are cleaned, empties dropped, and
// duplicates removed keeping the first occurrence (the one a lookup would
// hit). The result joins with the OS list separator.
func Normalize(list string) string {
	seen := make(map[string]bool)
	var out []string
	for _, dir := range Entries(list) {
		if seen[dir] {
			continue
		}
		seen[dir] = true
		out = append(out, dir)
	}
	return strings.Join(out, string(os.PathListSeparator))
}
