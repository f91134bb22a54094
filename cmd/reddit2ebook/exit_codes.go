package main

import (
	"errors"

	reddit2ebook "github.com/alnah/go-reddit2ebook"
	"github.com/alnah/go-reddit2ebook/internal/assets"
	"github.com/alnah/go-reddit2ebook/internal/config"
	"github.com/alnah/go-reddit2ebook/internal/reddit"
)

// Exit codes for reddit2ebook CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess       = 0 // Document written (and converted)
	ExitGeneral       = 1 // General/unexpected error
	ExitUsage         = 2 // Invalid arguments, flags, config or converter args
	ExitIO            = 3 // Markdown document could not be written
	ExitRemote        = 4 // Listing or comment tree could not be fetched
	ExitConversion    = 5 // Converter failed
	ExitDataIntegrity = 6 // Remote data is inconsistent
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, ErrUsage) ||
		errors.Is(err, ErrInvalidTimeout) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrInvalidConfig) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, reddit2ebook.ErrConverterArgs) ||
		errors.Is(err, reddit2ebook.ErrEmptyForum) ||
		errors.Is(err, reddit2ebook.ErrInvalidPostCount) ||
		errors.Is(err, reddit2ebook.ErrEmptyOutput) ||
		errors.Is(err, reddit.ErrInvalidBaseURL) ||
		errors.Is(err, assets.ErrStyleNotFound) ||
		errors.Is(err, assets.ErrInvalidAssetName) ||
		errors.Is(err, assets.ErrInvalidBasePath) {
		return ExitUsage
	}

	// I/O errors (exit 3)
	if errors.Is(err, reddit2ebook.ErrWriteDocument) {
		return ExitIO
	}

	// Remote errors (exit 4)
	if errors.Is(err, reddit2ebook.ErrRemoteFetch) {
		return ExitRemote
	}

	// Conversion errors (exit 5)
	if errors.Is(err, reddit2ebook.ErrConversion) {
		return ExitConversion
	}

	// Data integrity errors (exit 6)
	if errors.Is(err, reddit2ebook.ErrDataIntegrity) {
		return ExitDataIntegrity
	}

	return ExitGeneral
}
