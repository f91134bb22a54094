package reddit2ebook

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"
)

// Request describes one run: which forum, how many posts, and where the
// final document goes.
type Request struct {
	Forum string // subreddit name, without the /r/ prefix
	Posts int    // number of latest posts, must be positive
	// Output is the final document path. The markdown document is always
	// written next to it with the .md extension.
	Output string
	// ConverterArgs is tokenized with shell quoting rules and appended to
	// the converter invocation. Ignored when Output is markdown.
	ConverterArgs string
}

// Validate checks that the request can be run.
func (r Request) Validate() error {
	if strings.TrimSpace(r.Forum) == "" {
		return ErrEmptyForum
	}
	if r.Posts <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidPostCount, r.Posts)
	}
	if strings.TrimSpace(r.Output) == "" {
		return ErrEmptyOutput
	}
	return nil
}

// Result summarizes a successful run.
type Result struct {
	MarkdownPath string // intermediate document, always written
	OutputPath   string // final document, equal to MarkdownPath when no conversion ran
	Posts        int    // posts rendered
	Comments     int    // authored comments in the fetched trees
	Converted    bool   // whether the converter ran
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithConverter sets the converter used for non-markdown outputs.
// Without it, an EbookConverter with default settings is used.
func WithConverter(c DocumentConverter) Option {
	return func(p *Pipeline) { p.converter = c }
}

// WithWorkers sets how many comment trees are fetched and rendered at once.
// Panics if n < 1 (programmer error, similar to time.NewTicker).
func WithWorkers(n int) Option {
	if n < 1 {
		panic("reddit2ebook: WithWorkers count must be positive")
	}
	return func(p *Pipeline) { p.workers = n }
}

// WithMaxDepth caps reply nesting. 0 renders complete trees.
// Panics if depth < 0.
func WithMaxDepth(depth int) Option {
	if depth < 0 {
		panic("reddit2ebook: WithMaxDepth depth cannot be negative")
	}
	return func(p *Pipeline) { p.renderer.MaxDepth = depth }
}

// WithTimeout bounds a whole run.
// Panics if d <= 0.
func WithTimeout(d time.Duration) Option {
	if d <= 0 {
		panic("reddit2ebook: WithTimeout duration must be positive")
	}
	return func(p *Pipeline) { p.timeout = d }
}

// WithLogger sets the progress logger. Nil disables logging.
func WithLogger(logf func(format string, args ...any)) Option {
	return func(p *Pipeline) { p.logf = logf }
}

// Pipeline turns the latest posts of a forum into a document:
// fetch, render, assemble, write, then convert when needed.
// A Pipeline is safe for concurrent use once built.
type Pipeline struct {
	source    Source
	converter DocumentConverter
	renderer  Renderer
	workers   int
	timeout   time.Duration
	logf      func(format string, args ...any)
}

// New creates a Pipeline reading from src.
func New(src Source, opts ...Option) *Pipeline {
	p := &Pipeline{source: src, workers: 1}
	for _, opt := range opts {
		opt(p)
	}
	if p.converter == nil {
		p.converter = NewEbookConverter("")
	}
	return p
}

// Run executes one request. The first failure aborts the run: nothing is
// written when fetching or rendering fails, and a conversion failure leaves
// the markdown document in place.
func (p *Pipeline) Run(ctx context.Context, req Request) (*Result, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	convert := NeedsConversion(req.Output)
	var args []string
	if convert {
		var err error
		if args, err = ParseConverterArgs(req.ConverterArgs); err != nil {
			return nil, err
		}
	}

	if p.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}

	p.log("Fetching %d latest posts from /r/%s", req.Posts, req.Forum)
	posts, err := p.source.LatestPosts(ctx, req.Forum, req.Posts)
	if err != nil {
		return nil, fmt.Errorf("fetching posts: %w", remoteFetch(err))
	}

	texts, comments, err := p.renderAll(ctx, req.Forum, posts)
	if err != nil {
		return nil, err
	}

	doc := Assemble(req.Forum, texts)
	mdPath := MarkdownPath(req.Output)
	p.log("Writing %s", mdPath)
	if err := WriteDocument(mdPath, doc); err != nil {
		return nil, fmt.Errorf("writing document: %w", err)
	}

	result := &Result{
		MarkdownPath: mdPath,
		OutputPath:   mdPath,
		Posts:        len(posts),
		Comments:     comments,
	}
	if !convert {
		return result, nil
	}

	p.log("Converting %s to %s", mdPath, req.Output)
	creq := ConversionRequest{InputPath: mdPath, OutputPath: req.Output, Args: args}
	if err := p.converter.Convert(ctx, creq); err != nil {
		if !errors.Is(err, ErrConversion) {
			err = fmt.Errorf("%w: %w", ErrConversion, err)
		}
		return nil, fmt.Errorf("converting: %w", err)
	}
	result.OutputPath = req.Output
	result.Converted = true
	return result, nil
}

// renderAll renders posts in order and returns the texts and the number of
// authored comments. With more than one worker, comment trees are fetched
// concurrently and the first failure cancels the others.
func (p *Pipeline) renderAll(ctx context.Context, forum string, posts []Post) ([]string, int, error) {
	texts := make([]string, len(posts))
	counts := make([]int, len(posts))

	renderOne := func(ctx context.Context, i int) error {
		post := posts[i]
		p.log("Rendering post %d/%d: %s", i+1, len(posts), post.Title)
		text, n, err := p.renderer.renderPost(ctx, p.source, forum, post)
		if err != nil {
			return fmt.Errorf("rendering post %q: %w", post.ID, err)
		}
		texts[i], counts[i] = text, n
		return nil
	}

	if p.workers <= 1 {
		for i := range posts {
			if err := renderOne(ctx, i); err != nil {
				return nil, 0, err
			}
		}
	} else {
		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(p.workers)
		for i := range posts {
			g.Go(func() error { return renderOne(gctx, i) })
		}
		if err := g.Wait(); err != nil {
			return nil, 0, err
		}
	}

	total := 0
	for _, n := range counts {
		total += n
	}
	return texts, total, nil
}

func (p *Pipeline) log(format string, args ...any) {
	if p.logf != nil {
		p.logf(format, args...)
	}
}

// remoteFetch marks err as a remote fetch failure unless it already is one.
func remoteFetch(err error) error {
	if errors.Is(err, ErrRemoteFetch) {
		return err
	}
	return fmt.Errorf("%w: %w", ErrRemoteFetch, err)
}
