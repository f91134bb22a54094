package reddit

import (
	"bytes"
	"encoding/json"
	"fmt"

	reddit2ebook "github.com/alnah/go-reddit2ebook"
)

// Thing kinds used by the listing endpoints.
const (
	kindListing = "Listing"
	kindComment = "t1"
	kindPost    = "t3"
	kindMore    = "more"
)

// listing is the envelope of every paginated collection.
type listing struct {
	Kind string `json:"kind"`
	Data struct {
		After    *string `json:"after"`
		Children []thing `json:"children"`
	} `json:"data"`
}

// thing is one child of a listing; Data is decoded according to Kind.
type thing struct {
	Kind string          `json:"kind"`
	Data json.RawMessage `json:"data"`
}

type postData struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Selftext string `json:"selftext"`
}

type commentData struct {
	Author  *string `json:"author"`
	Body    *string `json:"body"`
	Replies replies `json:"replies"`
}

// replies decodes the three shapes of a comment's replies field: a nested
// listing, an empty-string marker, or null. An absent field leaves the zero
// value, which is NoReplies.
type replies struct {
	kind     reddit2ebook.RepliesKind
	sentinel string
	listing  *listing
}

// UnmarshalJSON implements json.Unmarshaler.
func (r *replies) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	switch {
	case len(b) == 0 || bytes.Equal(b, []byte("null")):
		*r = replies{kind: reddit2ebook.NoReplies}
	case b[0] == '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*r = replies{kind: reddit2ebook.SentinelReplies, sentinel: s}
	case b[0] == '{':
		var l listing
		if err := json.Unmarshal(b, &l); err != nil {
			return err
		}
		*r = replies{kind: reddit2ebook.ReplyList, listing: &l}
	default:
		return fmt.Errorf("replies: unsupported JSON value %.20s", b)
	}
	return nil
}

// decodeListing parses a single listing document.
func decodeListing(body []byte) (*listing, error) {
	var l listing
	if err := json.Unmarshal(body, &l); err != nil {
		return nil, fmt.Errorf("%w: decoding listing: %v", ErrUnexpectedResponse, err)
	}
	if l.Kind != kindListing {
		return nil, fmt.Errorf("%w: expected %s, got kind %q", ErrUnexpectedResponse, kindListing, l.Kind)
	}
	return &l, nil
}

// decodeCommentPage parses the [post listing, comment listing] pair returned
// by the comments endpoint and returns the comment listing.
func decodeCommentPage(body []byte) (*listing, error) {
	var pages []listing
	if err := json.Unmarshal(body, &pages); err != nil {
		return nil, fmt.Errorf("%w: decoding comments: %v", ErrUnexpectedResponse, err)
	}
	if len(pages) < 2 {
		return nil, fmt.Errorf("%w: expected 2 listings, got %d", ErrUnexpectedResponse, len(pages))
	}
	return &pages[1], nil
}

// posts converts the t3 children of l.
func (l *listing) posts() ([]reddit2ebook.Post, error) {
	posts := make([]reddit2ebook.Post, 0, len(l.Data.Children))
	for _, child := range l.Data.Children {
		if child.Kind != kindPost {
			return nil, fmt.Errorf("%w: expected %s in post listing, got %q", ErrUnexpectedResponse, kindPost, child.Kind)
		}
		var d postData
		if err := json.Unmarshal(child.Data, &d); err != nil {
			return nil, fmt.Errorf("%w: decoding post: %v", ErrUnexpectedResponse, err)
		}
		if d.ID == "" {
			return nil, fmt.Errorf("%w: post %q has no id", ErrUnexpectedResponse, d.Title)
		}
		posts = append(posts, reddit2ebook.Post{ID: d.ID, Title: d.Title, Body: d.Selftext})
	}
	return posts, nil
}

// comments converts the children of l into a comment forest.
// "more" stubs become placeholders.
func (l *listing) comments() ([]reddit2ebook.Comment, error) {
	forest := make([]reddit2ebook.Comment, 0, len(l.Data.Children))
	for _, child := range l.Data.Children {
		switch child.Kind {
		case kindMore:
			forest = append(forest, reddit2ebook.Placeholder())
		case kindComment:
			c, err := child.comment()
			if err != nil {
				return nil, err
			}
			forest = append(forest, c)
		default:
			return nil, fmt.Errorf("%w: unexpected %q in comment listing", ErrUnexpectedResponse, child.Kind)
		}
	}
	return forest, nil
}

func (t thing) comment() (reddit2ebook.Comment, error) {
	var d commentData
	if err := json.Unmarshal(t.Data, &d); err != nil {
		return reddit2ebook.Comment{}, fmt.Errorf("%w: decoding comment: %v", ErrUnexpectedResponse, err)
	}

	c := reddit2ebook.Comment{Author: d.Author, Body: d.Body}
	switch d.Replies.kind {
	case reddit2ebook.ReplyList:
		children, err := d.Replies.listing.comments()
		if err != nil {
			return reddit2ebook.Comment{}, err
		}
		c.Replies = reddit2ebook.ReplyListOf(children...)
	case reddit2ebook.SentinelReplies:
		c.Replies = reddit2ebook.Replies{Kind: reddit2ebook.SentinelReplies, Sentinel: d.Replies.sentinel}
	}
	return c, nil
}
