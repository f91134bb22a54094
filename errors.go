package reddit2ebook

import "errors"

// Sentinel errors for library operations.
var (
	ErrRemoteFetch   = errors.New("remote fetch failed")
	ErrDataIntegrity = errors.New("inconsistent data from remote source")
	ErrWriteDocument = errors.New("failed to write markdown document")
	ErrConversion    = errors.New("document conversion failed")
	ErrConverterArgs = errors.New("invalid converter arguments")

	// Request validation errors.
	ErrEmptyForum       = errors.New("forum name cannot be empty")
	ErrInvalidPostCount = errors.New("post count must be positive")
	ErrEmptyOutput      = errors.New("output path cannot be empty")
)
