package main

import (
	"fmt"
	"io"
	"runtime"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: reddit2ebook [flags] <subreddit> <output>")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Fetch the latest posts of a subreddit with their comment trees and")
	fmt.Fprintln(w, "write them as one document. The markdown document is always written")
	fmt.Fprintln(w, "next to <output>; other extensions are produced by ebook-convert,")
	fmt.Fprintln(w, "except .html/.htm which are rendered in-process.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  help             Show this message")
	fmt.Fprintln(w, "  version          Show version information")
	fmt.Fprintln(w, "  doctor [--json]  Check the converter and the environment")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprint(w, flagUsages())
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  REDDIT2EBOOK_CONFIG, REDDIT2EBOOK_POSTS, REDDIT2EBOOK_EBOOK_CONVERT,")
	fmt.Fprintln(w, "  REDDIT2EBOOK_CONVERTER_ARGS, REDDIT2EBOOK_TIMEOUT, REDDIT2EBOOK_WORKERS,")
	fmt.Fprintln(w, "  REDDIT2EBOOK_MAX_DEPTH, REDDIT2EBOOK_USER_AGENT, REDDIT2EBOOK_STYLE")
	fmt.Fprintln(w, "  Precedence: flags > environment > config file > defaults")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Examples:")
	fmt.Fprintln(w, "  reddit2ebook golang golang.epub")
	fmt.Fprintln(w, "  reddit2ebook -p 25 -w 4 golang golang.html")
	fmt.Fprintln(w, "  reddit2ebook -c '--title \"Weekly Go\"' golang weekly.mobi")
}

// printVersion prints the build version.
func printVersion(w io.Writer) {
	fmt.Fprintf(w, "reddit2ebook %s (%s, %s/%s)\n", Version, runtime.Version(), runtime.GOOS, runtime.GOARCH)
}
