package reddit2ebook

import (
	"context"
	"fmt"
	"strings"
)

// Renderer converts posts and comment trees into Markdown text.
// The zero value renders complete trees.
type Renderer struct {
	// MaxDepth caps reply nesting: replies whose depth would reach MaxDepth
	// are omitted. 0 means no cap.
	MaxDepth int
}

// RenderComment renders c with the default Renderer.
func RenderComment(c Comment, depth int) (string, error) {
	return Renderer{}.RenderComment(c, depth)
}

// RenderComment renders one comment and its reply subtree.
//
// The result is quoted exactly once by this call; deeper replies are quoted
// by their own calls and then quoted again as part of this block, which is
// how nesting accumulates one marker per level.
func (r Renderer) RenderComment(c Comment, depth int) (string, error) {
	if c.IsPlaceholder() {
		return Quote(""), nil
	}
	if c.Body == nil {
		return "", fmt.Errorf("%w: comment by %q at depth %d has no body", ErrDataIntegrity, *c.Author, depth)
	}

	var b strings.Builder
	b.WriteString("\n\n** ")
	b.WriteString(*c.Author)
	b.WriteString(" -- **\n")
	b.WriteString(*c.Body)
	b.WriteString("\n")

	if c.Replies.Kind == ReplyList && r.allowsDepth(depth+1) {
		for _, child := range c.Replies.Comments {
			text, err := r.RenderComment(child, depth+1)
			if err != nil {
				return "", err
			}
			b.WriteString(text)
		}
	}

	return Quote(b.String()), nil
}

// RenderPost renders the post header followed by its full comment forest.
// The comment tree is fetched from src with a single call. Any failure fails
// the whole post and no partial text is returned.
func (r Renderer) RenderPost(ctx context.Context, src Source, forum string, p Post) (string, error) {
	text, _, err := r.renderPost(ctx, src, forum, p)
	return text, err
}

// renderPost is RenderPost that also reports the number of authored comments.
func (r Renderer) renderPost(ctx context.Context, src Source, forum string, p Post) (string, int, error) {
	comments, err := src.CommentTree(ctx, forum, p.ID)
	if err != nil {
		return "", 0, fmt.Errorf("%w: comments of post %q: %w", ErrRemoteFetch, p.ID, err)
	}
	text, err := r.renderPostText(p, comments)
	if err != nil {
		return "", 0, err
	}
	return text, countComments(comments), nil
}

// renderPostText renders an already fetched post.
func (r Renderer) renderPostText(p Post, comments []Comment) (string, error) {
	var b strings.Builder
	b.WriteString("#")
	b.WriteString(p.Title)
	b.WriteString("\n")
	b.WriteString(p.Body)

	for _, c := range comments {
		text, err := r.RenderComment(c, 0)
		if err != nil {
			return "", err
		}
		b.WriteString(text)
	}

	return b.String(), nil
}

// allowsDepth reports whether comments at depth are rendered.
func (r Renderer) allowsDepth(depth int) bool {
	return r.MaxDepth <= 0 || depth < r.MaxDepth
}

// countComments returns the number of authored comments in a forest.
func countComments(comments []Comment) int {
	n := 0
	for _, c := range comments {
		if c.IsPlaceholder() {
			continue
		}
		n++
		if c.Replies.Kind == ReplyList {
			n += countComments(c.Replies.Comments)
		}
	}
	return n
}
