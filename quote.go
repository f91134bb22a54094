package reddit2ebook

import "strings"

// quoteMarker opens one level of Markdown blockquote.
const quoteMarker = ">"

// Quote wraps text in one level of blockquote: the text is prefixed with a
// marker and every newline inside it is followed by another marker, so each
// line of the block is marked individually.
func Quote(text string) string {
	return strings.ReplaceAll(quoteMarker+text, "\n", "\n"+quoteMarker)
}
