// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-reddit2ebook/internal/fileutil"
)

// IsInContainer detects if running inside a Docker container or similar.
// Checks for /.dockerenv file which Docker creates automatically.
var IsInContainer = func() bool {
	return fileutil.FileExists("/.dockerenv")
}

// ForConverterNotFound returns hints for a converter executable that could
// not be started. Suggests installing calibre and pointing to the binary.
func ForConverterNotFound(path string) string {
	var hints []string

	if filepath.Base(path) == "ebook-convert" {
		if IsInContainer() {
			hints = append(hints, "install calibre in the image (apt-get install calibre)")
		} else {
			hints = append(hints, "install calibre from https://calibre-ebook.com")
		}
	}

	if os.Getenv("REDDIT2EBOOK_EBOOK_CONVERT") == "" {
		hints = append(hints, "use --ebook-convert or REDDIT2EBOOK_EBOOK_CONVERT to point to the converter")
	}
	hints = append(hints, "or write .md/.html output, which needs no converter")

	return formatHints(hints)
}

// ForRateLimited returns hints for HTTP 429 responses.
func ForRateLimited() string {
	return format("set a descriptive --user-agent, lower --workers or raise reddit.delay in the config")
}

// ForTimeout returns a hint about increasing timeout for slow operations.
func ForTimeout() string {
	return format("for large threads, use a larger --timeout")
}

// ForConverterArgs returns hints for arguments that could not be tokenized.
func ForConverterArgs() string {
	return format("quote values containing spaces; shell operators (; & | < >) are not supported")
}

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config flag and creating a config in ~/.config/go-reddit2ebook/.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"

	// Find a user config path to suggest
	for _, p := range searchedPaths {
		if strings.Contains(filepath.ToSlash(p), "/go-reddit2ebook/") {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForOutputDirectory returns hints for output file creation errors.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
}

// ForStyleNotFound returns hints for style not found errors.
func ForStyleNotFound(available []string) string {
	if len(available) == 0 {
		return ""
	}
	return format("available: " + strings.Join(available, ", "))
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}

// formatHints joins multiple hints with consistent formatting.
func formatHints(hints []string) string {
	if len(hints) == 0 {
		return ""
	}
	return format(strings.Join(hints, "; "))
}
