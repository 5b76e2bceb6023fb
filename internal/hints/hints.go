// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"path/filepath"
	"strings"
)

// maxListed caps how many names a hint enumerates before summarizing.
const maxListed = 8

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config and, when one was searched, the user config location.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"

	userDir := filepath.Join(".config", "snipmark")
	for _, p := range searchedPaths {
		if strings.Contains(p, userDir) {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForDocumentNotFound returns a hint listing the include documents that do
// exist, or how to add some when there are none.
func ForDocumentNotFound(available []string) string {
	if len(available) == 0 {
		return format("no documents available; set --docs-root or documents.root")
	}
	return format("available: " + joinCapped(available) + " (run 'snipmark docs')")
}

// ForInvalidDocumentName returns a hint about the document name form.
func ForInvalidDocumentName() string {
	return format("pass the bare name without extension, e.g. 'markdown-help'")
}

// ForUnknownStyle returns a hint for highlight style errors.
func ForUnknownStyle(available []string) string {
	if len(available) == 0 {
		return ""
	}
	return format("available: " + joinCapped(available))
}

// ForDocumentsRoot returns a hint for an unusable documents root.
func ForDocumentsRoot() string {
	return format("documents root must be a readable directory of <name>.md files")
}

// ForOutputDirectory returns hints for output directory creation errors.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
}

// ForBaseURL returns a hint for a missing base URL on the rss command.
func ForBaseURL() string {
	return format("use --base-url https://example.com, SNIPMARK_APP_URL or app.url in config")
}

// joinCapped joins names, summarizing the tail past maxListed.
func joinCapped(names []string) string {
	if len(names) <= maxListed {
		return strings.Join(names, ", ")
	}
	return strings.Join(names[:maxListed], ", ") + ", ..."
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}
