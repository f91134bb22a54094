// Package fileutil provides file and path utility functions.
package fileutil

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Sentinel errors for file utility operations.
var (
	ErrExtensionEmpty         = errors.New("extension cannot be empty")
	ErrExtensionPathTraversal = errors.New("extension contains path separator or null byte")
)

// ReplaceExt returns path with its extension replaced by ext (leading dot
// optional). A path without extension gets ext appended. Only the last
// extension is replaced: "a.tar.gz" becomes "a.tar.md".
func ReplaceExt(path, ext string) (string, error) {
	ext = strings.TrimPrefix(ext, ".")
	if err := ValidateExtension(ext); err != nil {
		return "", err
	}
	base := strings.TrimSuffix(path, filepath.Ext(path))
	return base + "." + ext, nil
}

// HasExt reports whether path ends with the extension ext (leading dot
// optional, case-insensitive).
func HasExt(path, ext string) bool {
	return strings.EqualFold(filepath.Ext(path), "."+strings.TrimPrefix(ext, "."))
}

// WriteFileAtomic writes content to path through a temporary file in the
// same directory, so readers never observe a partially written file.
func WriteFileAtomic(path, content string, perm os.FileMode) error {
	dir := filepath.Dir(path)
	tmpFile, err := os.CreateTemp(dir, ".reddit2ebook-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}

	tmpPath := tmpFile.Name()
	cleanup := func() { _ = os.Remove(tmpPath) }

	if _, err := tmpFile.WriteString(content); err != nil {
		_ = tmpFile.Close()
		cleanup()
		return fmt.Errorf("writing temp file: %w", err)
	}

	if err := tmpFile.Close(); err != nil {
		cleanup()
		return fmt.Errorf("closing temp file: %w", err)
	}

	if err := os.Chmod(tmpPath, perm); err != nil {
		cleanup()
		return fmt.Errorf("setting permissions: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		cleanup()
		return fmt.Errorf("renaming temp file: %w", err)
	}

	return nil
}

// ValidateExtension checks that the extension is safe for use in file names.
func ValidateExtension(extension string) error {
	if extension == "" {
		return ErrExtensionEmpty
	}
	if strings.ContainsAny(extension, "/\\\x00") {
		return ErrExtensionPathTraversal
	}
	return nil
}

// FileExists returns true if the path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// IsFilePath returns true if the string looks like a file path rather than a name.
// A string containing path separators (/, \) is treated as a path.
//
// Examples:
//   - "kindle" -> false (name)
//   - "./kindle.yaml" -> true (relative path)
//   - "/etc/reddit2ebook/kindle.yaml" -> true (absolute)
//   - "C:\config\kindle.yaml" -> true (Windows)
func IsFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}

// DirWritable reports whether a file can be created in dir.
func DirWritable(dir string) bool {
	f, err := os.CreateTemp(dir, ".reddit2ebook-probe-*")
	if err != nil {
		return false
	}
	name := f.Name()
	_ = f.Close()
	_ = os.Remove(name)
	return true
}
