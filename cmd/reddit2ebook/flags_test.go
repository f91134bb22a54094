package main

import (
	"errors"
	"slices"
	"testing"

	flag "github.com/spf13/pflag"

	reddit2ebook "github.com/alnah/go-reddit2ebook"
)

// ---------------------------------------------------------------------------
// TestParseFlags - Defaults, shorthands and explicit-set tracking
// ---------------------------------------------------------------------------

func TestParseFlags_Defaults(t *testing.T) {
	t.Parallel()

	f, positional, err := parseFlags([]string{"golang", "out.epub"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !slices.Equal(positional, []string{"golang", "out.epub"}) {
		t.Errorf("positional = %v", positional)
	}
	if f.posts != defaultPosts {
		t.Errorf("posts = %d, want %d", f.posts, defaultPosts)
	}
	if f.ebookConvert != reddit2ebook.DefaultEbookConvert {
		t.Errorf("ebookConvert = %q", f.ebookConvert)
	}
	if f.converterArgs != reddit2ebook.DefaultConverterArgs {
		t.Errorf("converterArgs = %q", f.converterArgs)
	}
	if f.userAgent != "go-reddit2ebook/"+Version {
		t.Errorf("userAgent = %q", f.userAgent)
	}
	if len(f.set) != 0 {
		t.Errorf("set = %v, want none", f.set)
	}
}

func TestParseFlags_Shorthands(t *testing.T) {
	t.Parallel()

	args := []string{
		"-p", "3", "-e", "/bin/conv", "-c", "--x", "-v",
		"-w", "4", "-t", "5m", "golang", "out.epub",
	}
	f, positional, err := parseFlags(args)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f.posts != 3 || f.ebookConvert != "/bin/conv" || f.converterArgs != "--x" {
		t.Errorf("parsed = %+v", f)
	}
	if !f.verbose || f.workers != 4 || f.timeout != "5m" {
		t.Errorf("parsed = %+v", f)
	}
	for _, name := range []string{"posts", "ebook-convert", "converter-args", "verbose", "workers", "timeout"} {
		if !f.changed(name) {
			t.Errorf("changed(%q) = false, want true", name)
		}
	}
	if f.changed("style") {
		t.Error("changed(style) = true for an unset flag")
	}
	if len(positional) != 2 {
		t.Errorf("positional = %v", positional)
	}
}

func TestParseFlags_Errors(t *testing.T) {
	t.Parallel()

	if _, _, err := parseFlags([]string{"--unknown"}); err == nil {
		t.Error("expected error for unknown flag")
	}
	if _, _, err := parseFlags([]string{"-p", "many"}); err == nil {
		t.Error("expected error for non-numeric posts")
	}
	if _, _, err := parseFlags([]string{"-h"}); !errors.Is(err, flag.ErrHelp) {
		t.Errorf("-h error = %v, want flag.ErrHelp", err)
	}
}
