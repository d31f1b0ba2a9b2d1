package countservice

import (
	"path/filepath"
	"strings"
)

// codeExtensions is the fixed set of file extensions treated as source code.
// Matching is exact and case-sensitive on the suffix after the final dot.
var codeExtensions = map[string]struct{}{
	"rs":    {},
	"py":    {},
	"js":    {},
	"jsx":   {},
	"ts":    {},
	"tsx":   {},
	"java":  {},
	"kt":    {},
	"go":    {},
	"c":     {},
	"h":     {},
	"cpp":   {},
	"hpp":   {},
	"cs":    {},
	"swift": {},
	"rb":    {},
	"php":   {},
	"sh":    {},
	"bash":  {},
	"zsh":   {},
	"lua":   {},
	"sql":   {},
	"html":  {},
	"css":   {},
	"scss":  {},
}

// ExtensionKey returns the grouping key for path and whether the file counts
// as source code. Names with no dot, a trailing dot, or a suffix outside the
// allow list are rejected.
func ExtensionKey(path string) (string, bool) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return "", false
	}

	if _, ok := codeExtensions[ext]; !ok {
		return "", false
	}

	return ext, true
}
