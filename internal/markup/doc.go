// Package markup renders the assembled Markdown document to HTML.
//
// It covers what the built-in HTML converter needs and nothing more:
//   - splitting the YAML front matter from the document body
//   - Markdown to HTML conversion via Goldmark (GFM, syntax highlighting)
//   - wrapping the fragment in a standalone page with an inline stylesheet
//
// The Markdown document itself is produced by the root package; this
// package never parses it for any other purpose.
package markup
