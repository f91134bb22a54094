package reddit

import (
	"encoding/json"
	"testing"

	reddit2ebook "github.com/alnah/go-reddit2ebook"
)

// ---------------------------------------------------------------------------
// TestReplies - Replies field variants
// ---------------------------------------------------------------------------

func TestReplies_UnmarshalJSON(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		input        string
		wantKind     reddit2ebook.RepliesKind
		wantSentinel string
		wantChildren int
		wantErr      bool
	}{
		{
			name:     "absent",
			input:    `{"author":"a","body":"b"}`,
			wantKind: reddit2ebook.NoReplies,
		},
		{
			name:     "null",
			input:    `{"author":"a","body":"b","replies":null}`,
			wantKind: reddit2ebook.NoReplies,
		},
		{
			name:     "empty string marker",
			input:    `{"author":"a","body":"b","replies":""}`,
			wantKind: reddit2ebook.SentinelReplies,
		},
		{
			name:         "non-empty string marker",
			input:        `{"author":"a","body":"b","replies":"none"}`,
			wantKind:     reddit2ebook.SentinelReplies,
			wantSentinel: "none",
		},
		{
			name:         "nested listing",
			input:        `{"author":"a","body":"b","replies":{"kind":"Listing","data":{"children":[{"kind":"t1","data":{}},{"kind":"more","data":{}}]}}}`,
			wantKind:     reddit2ebook.ReplyList,
			wantChildren: 2,
		},
		{
			name:    "array",
			input:   `{"author":"a","body":"b","replies":[]}`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var d commentData
			err := json.Unmarshal([]byte(tt.input), &d)
			if tt.wantErr {
				if err == nil {
					t.Error("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if d.Replies.kind != tt.wantKind {
				t.Errorf("kind = %v, want %v", d.Replies.kind, tt.wantKind)
			}
			if d.Replies.sentinel != tt.wantSentinel {
				t.Errorf("sentinel = %q, want %q", d.Replies.sentinel, tt.wantSentinel)
			}
			if tt.wantKind == reddit2ebook.ReplyList && len(d.Replies.listing.Data.Children) != tt.wantChildren {
				t.Errorf("children = %d, want %d", len(d.Replies.listing.Data.Children), tt.wantChildren)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestListing_Comments - Conversion to comment forests
// ---------------------------------------------------------------------------

func TestListing_Comments(t *testing.T) {
	t.Parallel()

	body := `{"kind":"Listing","data":{"children":[
		{"kind":"t1","data":{"author":"alice","body":"Hi","replies":{"kind":"Listing","data":{"children":[
			{"kind":"t1","data":{"author":"bob","body":"Hey","replies":""}}
		]}}}},
		{"kind":"more","data":{"count":12}},
		{"kind":"t1","data":{"author":null,"body":null}},
		{"kind":"t1","data":{"author":"carol"}}
	]}}`

	l, err := decodeListing([]byte(body))
	if err != nil {
		t.Fatalf("decodeListing: %v", err)
	}
	forest, err := l.comments()
	if err != nil {
		t.Fatalf("comments: %v", err)
	}
	if len(forest) != 4 {
		t.Fatalf("got %d comments, want 4", len(forest))
	}

	alice := forest[0]
	if alice.Replies.Kind != reddit2ebook.ReplyList || len(alice.Replies.Comments) != 1 {
		t.Fatalf("alice replies = %+v", alice.Replies)
	}
	bob := alice.Replies.Comments[0]
	if *bob.Author != "bob" || bob.Replies.Kind != reddit2ebook.SentinelReplies {
		t.Errorf("bob = %+v", bob)
	}
	if !forest[1].IsPlaceholder() {
		t.Error("more stub should be a placeholder")
	}
	if !forest[2].IsPlaceholder() {
		t.Error("null author should be a placeholder")
	}
	if forest[3].Body != nil {
		t.Error("missing body should stay nil so rendering reports it")
	}

	// The forest renders end to end.
	if _, err := reddit2ebook.RenderComment(alice, 0); err != nil {
		t.Errorf("RenderComment(alice): %v", err)
	}
}
