package report

import (
	"fmt"
	"os"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
)

// DefaultPatterns are the glob patterns used when the caller supplies
// none. The .quality. infix keeps arbitrary JSON/YAML out of a check run.
var DefaultPatterns = []string{
	"**/*.quality.json",
	"**/*.quality.yaml",
	"**/*.quality.yml",
}

// Discover finds report files under root matching the given doublestar
// patterns (DefaultPatterns when empty). Paths come back relative to
// root, deduplicated and sorted.
func Discover(root string, patterns []string) ([]string, error) {
	if len(patterns) == 0 {
		patterns = DefaultPatterns
	}

	fsys := os.DirFS(root)
	seen := make(map[string]bool)
	var files []string
	for _, pattern := range patterns {
		matches, err := doublestar.Glob(fsys, pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid pattern %q: %w", pattern, err)
		}
		for _, m := range matches {
			if !seen[m] {
				seen[m] = true
				files = append(files, m)
			}
		}
	}

	sort.Strings(files)
	return files, nil
}
