package reddit2ebook

import (
	"fmt"
	"path/filepath"

	"github.com/alnah/go-reddit2ebook/internal/fileutil"
)

// MarkdownExt is the extension of the intermediate document.
const MarkdownExt = "md"

// filePermissions is rw-r--r--: owner read+write, others read.
const filePermissions = 0o644

// MarkdownPath returns output with its extension forced to MarkdownExt.
func MarkdownPath(output string) string {
	// MarkdownExt is a valid constant extension, ReplaceExt cannot fail.
	p, _ := fileutil.ReplaceExt(output, MarkdownExt)
	return p
}

// NeedsConversion reports whether output requires a converter run, i.e.
// whether it does not already use the markdown extension. The comparison is
// case-sensitive: "doc.MD" is converted from "doc.md".
func NeedsConversion(output string) bool {
	return filepath.Ext(output) != "."+MarkdownExt
}

// WriteDocument persists the assembled document at path.
func WriteDocument(path, content string) error {
	if err := fileutil.WriteFileAtomic(path, content, filePermissions); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrWriteDocument, path, err)
	}
	return nil
}
