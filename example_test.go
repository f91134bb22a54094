package reddit2ebook_test

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	reddit2ebook "github.com/alnah/go-reddit2ebook"
)

// staticSource serves a fixed post and comment tree.
type staticSource struct{}

func (staticSource) LatestPosts(ctx context.Context, forum string, count int) ([]reddit2ebook.Post, error) {
	return []reddit2ebook.Post{{ID: "abc", Title: "Hello", Body: "World"}}, nil
}

func (staticSource) CommentTree(ctx context.Context, forum, postID string) ([]reddit2ebook.Comment, error) {
	return []reddit2ebook.Comment{
		reddit2ebook.Authored("alice", "Hi", reddit2ebook.ReplyListOf(
			reddit2ebook.Authored("bob", "Hey", reddit2ebook.Replies{}),
		)),
	}, nil
}

// Example renders a forum to a markdown document. Markdown output needs no
// converter.
func Example() {
	dir, err := os.MkdirTemp("", "reddit2ebook-example")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	defer os.RemoveAll(dir)

	out := filepath.Join(dir, "golang.md")
	res, err := reddit2ebook.New(staticSource{}).Run(context.Background(), reddit2ebook.Request{
		Forum:  "golang",
		Posts:  1,
		Output: out,
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	doc, _ := os.ReadFile(res.MarkdownPath)
	fmt.Println(string(doc))
	// Output:
	// ---
	// title: /r/golang
	// ---
	//
	// #Hello
	// World>
	// >
	// >** alice -- **
	// >Hi
	// >>
	// >>
	// >>** bob -- **
	// >>Hey
	// >>
}

// ExampleQuote shows how every line gains one marker.
func ExampleQuote() {
	fmt.Println(reddit2ebook.Quote("first\nsecond"))
	// Output:
	// >first
	// >second
}

// ExampleRenderComment renders a placeholder, e.g. a deleted comment.
func ExampleRenderComment() {
	text, _ := reddit2ebook.RenderComment(reddit2ebook.Placeholder(), 0)
	fmt.Printf("%q\n", text)
	// Output: ">"
}
