package reddit2ebook

import (
	"fmt"
	"strings"
)

// ZeroWidthSpaceArtifact is how the listing API escapes the zero-width
// spaces users type to force blank lines.
const ZeroWidthSpaceArtifact = "&amp;#x200B;"

// Header returns the YAML front matter that opens every document.
func Header(forum string) string {
	return fmt.Sprintf("---\ntitle: /r/%s\n---\n\n", forum)
}

// Assemble concatenates the header and the rendered posts in order, then
// applies CleanMarkdown to the whole document.
func Assemble(forum string, posts []string) string {
	var b strings.Builder
	b.WriteString(Header(forum))
	for _, p := range posts {
		b.WriteString(p)
	}
	return CleanMarkdown(b.String())
}

// CleanMarkdown replaces the zero-width-space artifact with a newline.
// Other HTML entities are left untouched.
func CleanMarkdown(s string) string {
	return strings.ReplaceAll(s, ZeroWidthSpaceArtifact, "\n")
}
