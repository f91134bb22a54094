package markup

import (
	"regexp"
	"strings"
)

// Precompiled patterns.
var (
	// Line ending normalization
	crlfOrCR = regexp.MustCompile(`\r\n?`)

	// ATX heading glued to its text, optionally inside blockquotes: "#Title", ">>##Title"
	tightHeading = regexp.MustCompile(`(?m)^((?:>\s?)*)(#{1,6})([^#\s])`)
)

// Preprocess adapts the generated document for a CommonMark parser.
// Calibre's markdown reader accepts headings without a space after the
// hashes; CommonMark does not, so one is inserted.
func Preprocess(content string) string {
	content = NormalizeLineEndings(content)
	content = SpaceHeadings(content)
	return content
}

// NormalizeLineEndings converts CRLF and CR to LF.
func NormalizeLineEndings(content string) string {
	if !strings.ContainsRune(content, '\r') {
		return content
	}
	return crlfOrCR.ReplaceAllString(content, "\n")
}

// SpaceHeadings inserts a space between leading hashes and heading text.
func SpaceHeadings(content string) string {
	return tightHeading.ReplaceAllString(content, "$1$2 $3")
}
