package reddit2ebook

import "context"

// Post is a submission returned by a forum listing.
// Its comment tree is fetched separately by the renderer.
type Post struct {
	ID    string // required to fetch the comment tree
	Title string
	Body  string // may be empty for link posts
}

// Comment is one node of a post's reply forest.
//
// A nil Author marks a placeholder (deleted, removed, or a "load more" stub)
// and such a comment renders as an empty quote whatever its other fields
// hold. An authored comment must carry a Body.
type Comment struct {
	Author  *string
	Body    *string
	Replies Replies
}

// RepliesKind tags the shape of a comment's replies field.
type RepliesKind int

// Replies variants.
const (
	NoReplies       RepliesKind = iota // field absent or null
	SentinelReplies                    // non-reply marker, no further replies
	ReplyList                          // ordered child comments, possibly empty
)

// Replies holds the children of a comment as a tagged variant.
type Replies struct {
	Kind     RepliesKind
	Sentinel string    // raw marker value when Kind == SentinelReplies
	Comments []Comment // children when Kind == ReplyList
}

// ReplyListOf builds a ReplyList variant from the given children.
func ReplyListOf(children ...Comment) Replies {
	if children == nil {
		children = []Comment{}
	}
	return Replies{Kind: ReplyList, Comments: children}
}

// Authored returns a comment written by author with the given body.
func Authored(author, body string, replies Replies) Comment {
	return Comment{Author: &author, Body: &body, Replies: replies}
}

// Placeholder returns a comment without author.
func Placeholder() Comment {
	return Comment{}
}

// IsPlaceholder reports whether the comment has no author.
func (c Comment) IsPlaceholder() bool {
	return c.Author == nil
}

// Source retrieves posts and comment trees from a remote forum.
// Both operations may block on the network and must honor ctx.
type Source interface {
	LatestPosts(ctx context.Context, forum string, count int) ([]Post, error)
	CommentTree(ctx context.Context, forum, postID string) ([]Comment, error)
}

// ConversionRequest describes one run of a document converter.
type ConversionRequest struct {
	InputPath  string   // intermediate markdown file
	OutputPath string   // final file requested by the caller
	Args       []string // extra converter arguments, already tokenized
}

// DocumentConverter turns the intermediate markdown file into the final format.
type DocumentConverter interface {
	Convert(ctx context.Context, req ConversionRequest) error
}
