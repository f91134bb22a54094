// Package reddit2ebook turns the latest posts of a subreddit, with their
// complete comment trees, into a single document readable as an ebook.
//
// # Quick Start
//
// Build a pipeline over a Source, then run a request:
//
//	client, err := reddit.NewClient(reddit.WithUserAgent("my-bot/1.0"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	p := reddit2ebook.New(client, reddit2ebook.WithWorkers(4))
//
//	res, err := p.Run(ctx, reddit2ebook.Request{
//	    Forum:         "golang",
//	    Posts:         10,
//	    Output:        "golang.epub",
//	    ConverterArgs: reddit2ebook.DefaultConverterArgs,
//	})
//
// The markdown document is always written next to the output with the .md
// extension (res.MarkdownPath). When the output is not markdown, the
// converter is run on it, calibre's ebook-convert by default:
//
//	ebook-convert golang.md golang.epub --chapter //h:h1 ...
//
// # Document Format
//
// The document opens with a YAML header naming the forum:
//
//	---
//	title: /r/golang
//	---
//
// Each post follows as "#" + title, a newline and the body, then its
// top-level comments. A comment is a blockquote:
//
//	>
//	>
//	>** alice -- **
//	>Hi
//	>
//
// Replies are nested inside their parent's block and so carry one more ">"
// per level. Placeholders (deleted comments, "load more" stubs) render as a
// lone ">".
//
// # Pipeline
//
// Run goes through these stages, and the first failure stops it:
//
//  1. Validate the request and tokenize converter arguments
//  2. Fetch the latest posts
//  3. Fetch and render each comment tree (concurrently with WithWorkers)
//  4. Assemble the document and clean the zero-width-space artifact
//  5. Write the markdown document
//  6. Convert it, when the output is not markdown
//
// # Error Handling
//
// Errors wrap sentinels that can be checked with errors.Is:
//
//	ErrRemoteFetch   - listing or comment tree could not be fetched
//	ErrDataIntegrity - an authored comment has no body
//	ErrWriteDocument - the markdown document could not be written
//	ErrConversion    - the converter failed or exited non-zero
//	ErrConverterArgs - converter arguments could not be tokenized
//
// Request validation reports ErrEmptyForum, ErrInvalidPostCount and
// ErrEmptyOutput.
package reddit2ebook
