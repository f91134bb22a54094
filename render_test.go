package reddit2ebook

// Notes:
// - Expected strings are written out literally: the layout of quoted blocks
//   is the output format, so tests pin it byte for byte.
// - Sources are faked with fakeSource from pipeline_test.go.

import (
	"context"
	"errors"
	"strings"
	"testing"
)

// ---------------------------------------------------------------------------
// TestRenderComment - Single comments and subtrees
// ---------------------------------------------------------------------------

func TestRenderComment(t *testing.T) {
	t.Parallel()

	withBody := "ignored"

	tests := []struct {
		name    string
		comment Comment
		want    string
	}{
		{
			name:    "placeholder renders an empty quote",
			comment: Placeholder(),
			want:    ">",
		},
		{
			name:    "placeholder ignores its body and replies",
			comment: Comment{Body: &withBody, Replies: ReplyListOf(Authored("x", "y", Replies{}))},
			want:    ">",
		},
		{
			name:    "leaf comment",
			comment: Authored("alice", "Hi", Replies{}),
			want:    ">\n>\n>** alice -- **\n>Hi\n>",
		},
		{
			name:    "sentinel replies render no children",
			comment: Authored("alice", "Hi", Replies{Kind: SentinelReplies}),
			want:    ">\n>\n>** alice -- **\n>Hi\n>",
		},
		{
			name:    "empty reply list renders no children",
			comment: Authored("alice", "Hi", ReplyListOf()),
			want:    ">\n>\n>** alice -- **\n>Hi\n>",
		},
		{
			name:    "multi-line body is quoted line by line",
			comment: Authored("bob", "one\ntwo", Replies{}),
			want:    ">\n>\n>** bob -- **\n>one\n>two\n>",
		},
		{
			name:    "child is quoted one level deeper",
			comment: Authored("bob", "P", ReplyListOf(Authored("alice", "C", Replies{}))),
			want:    ">\n>\n>** bob -- **\n>P\n>>\n>>\n>>** alice -- **\n>>C\n>>",
		},
		{
			name:    "placeholder child",
			comment: Authored("bob", "P", ReplyListOf(Placeholder())),
			want:    ">\n>\n>** bob -- **\n>P\n>>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := RenderComment(tt.comment, 0)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("RenderComment() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRenderComment_ChildrenInOrder(t *testing.T) {
	t.Parallel()

	c := Authored("root", "r", ReplyListOf(
		Authored("first", "1", Replies{}),
		Authored("second", "2", ReplyListOf(Authored("third", "3", Replies{}))),
	))

	got, err := RenderComment(c, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	first := strings.Index(got, ">>** first -- **")
	second := strings.Index(got, ">>** second -- **")
	third := strings.Index(got, ">>>** third -- **")
	if first < 0 || second < 0 || third < 0 {
		t.Fatalf("missing author lines in %q", got)
	}
	if first >= second || second >= third {
		t.Errorf("authors out of order in %q", got)
	}
}

func TestRenderComment_MissingBody(t *testing.T) {
	t.Parallel()

	author := "alice"
	tests := []struct {
		name    string
		comment Comment
	}{
		{"at the root", Comment{Author: &author}},
		{"in a reply", Authored("bob", "P", ReplyListOf(Comment{Author: &author}))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := RenderComment(tt.comment, 0)
			if !errors.Is(err, ErrDataIntegrity) {
				t.Fatalf("RenderComment() error = %v, want ErrDataIntegrity", err)
			}
			if got != "" {
				t.Errorf("RenderComment() returned partial text %q", got)
			}
		})
	}
}

func TestRenderer_MaxDepth(t *testing.T) {
	t.Parallel()

	tree := Authored("a", "0", ReplyListOf(
		Authored("b", "1", ReplyListOf(
			Authored("c", "2", Replies{}),
		)),
	))

	tests := []struct {
		name        string
		maxDepth    int
		wantAuthors []string
		wantAbsent  []string
	}{
		{"unlimited", 0, []string{"a", "b", "c"}, nil},
		{"top level only", 1, []string{"a"}, []string{"b", "c"}},
		{"two levels", 2, []string{"a", "b"}, []string{"c"}},
		{"cap deeper than tree", 5, []string{"a", "b", "c"}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := Renderer{MaxDepth: tt.maxDepth}.RenderComment(tree, 0)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			for _, a := range tt.wantAuthors {
				if !strings.Contains(got, "** "+a+" -- **") {
					t.Errorf("missing author %q in %q", a, got)
				}
			}
			for _, a := range tt.wantAbsent {
				if strings.Contains(got, "** "+a+" -- **") {
					t.Errorf("author %q should be cut in %q", a, got)
				}
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestRenderPost - Post header and comment forest
// ---------------------------------------------------------------------------

func TestRenderPost(t *testing.T) {
	t.Parallel()

	post := Post{ID: "p1", Title: "Hello", Body: "World"}

	tests := []struct {
		name     string
		comments []Comment
		want     string
	}{
		{
			name: "no comments",
			want: "#Hello\nWorld",
		},
		{
			name:     "one comment",
			comments: []Comment{Authored("alice", "Hi", Replies{})},
			want:     "#Hello\nWorld>\n>\n>** alice -- **\n>Hi\n>",
		},
		{
			name:     "top-level comments in order",
			comments: []Comment{Authored("a", "1", Replies{}), Placeholder(), Authored("b", "2", Replies{})},
			want:     "#Hello\nWorld>\n>\n>** a -- **\n>1\n>>>\n>\n>** b -- **\n>2\n>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			src := &fakeSource{trees: map[string][]Comment{"p1": tt.comments}}
			got, err := Renderer{}.RenderPost(context.Background(), src, "golang", post)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("RenderPost() = %q, want %q", got, tt.want)
			}
			if calls := src.treeCalls(); len(calls) != 1 || calls[0] != "golang/p1" {
				t.Errorf("CommentTree calls = %v, want [golang/p1]", calls)
			}
		})
	}
}

func TestRenderPost_Errors(t *testing.T) {
	t.Parallel()

	post := Post{ID: "p1", Title: "Hello"}
	errBoom := errors.New("boom")

	t.Run("fetch failure", func(t *testing.T) {
		t.Parallel()

		src := &fakeSource{treeErrs: map[string]error{"p1": errBoom}}
		got, err := Renderer{}.RenderPost(context.Background(), src, "golang", post)
		if !errors.Is(err, ErrRemoteFetch) || !errors.Is(err, errBoom) {
			t.Errorf("error = %v, want ErrRemoteFetch wrapping boom", err)
		}
		if got != "" {
			t.Errorf("partial text %q", got)
		}
	})

	t.Run("malformed comment", func(t *testing.T) {
		t.Parallel()

		author := "alice"
		src := &fakeSource{trees: map[string][]Comment{"p1": {Comment{Author: &author}}}}
		_, err := Renderer{}.RenderPost(context.Background(), src, "golang", post)
		if !errors.Is(err, ErrDataIntegrity) {
			t.Errorf("error = %v, want ErrDataIntegrity", err)
		}
	})
}

func TestCountComments(t *testing.T) {
	t.Parallel()

	forest := []Comment{
		Authored("a", "1", ReplyListOf(Authored("b", "2", Replies{}), Placeholder())),
		Placeholder(),
		Authored("c", "3", Replies{Kind: SentinelReplies}),
	}
	if got := countComments(forest); got != 3 {
		t.Errorf("countComments() = %d, want 3", got)
	}
}
