package main

import (
	"io"

	flag "github.com/spf13/pflag"

	reddit2ebook "github.com/alnah/go-reddit2ebook"
	"github.com/alnah/go-reddit2ebook/internal/assets"
)

// Flag defaults.
const (
	defaultPosts   = 10
	defaultWorkers = 1
)

// cliFlags holds the parsed command line. The set map records which flags
// were given explicitly so that they win over environment and config values.
type cliFlags struct {
	posts         int
	ebookConvert  string
	converterArgs string
	verbose       bool
	quiet         bool
	config        string
	workers       int
	timeout       string
	maxDepth      int
	userAgent     string
	style         string

	set map[string]bool
}

// changed reports whether the named flag was given on the command line.
func (f *cliFlags) changed(name string) bool {
	return f.set[name]
}

// newFlagSet creates the flag set bound to f. Parse errors are returned,
// never printed: the caller reports them with the usage hint.
func newFlagSet(f *cliFlags) *flag.FlagSet {
	fs := flag.NewFlagSet("reddit2ebook", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.SortFlags = false

	fs.IntVarP(&f.posts, "posts", "p", defaultPosts, "number of latest posts to fetch")
	fs.StringVarP(&f.ebookConvert, "ebook-convert", "e", reddit2ebook.DefaultEbookConvert, "converter executable")
	fs.StringVarP(&f.converterArgs, "converter-args", "c", reddit2ebook.DefaultConverterArgs, "extra converter arguments")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show progress and converter output")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.StringVar(&f.config, "config", "", "config name or path")
	fs.IntVarP(&f.workers, "workers", "w", defaultWorkers, "comment trees fetched at once")
	fs.StringVarP(&f.timeout, "timeout", "t", "", "whole-run timeout (e.g. 5m)")
	fs.IntVar(&f.maxDepth, "max-depth", 0, "reply depth cap (0 = unlimited)")
	fs.StringVar(&f.userAgent, "user-agent", defaultUserAgent(), "HTTP user agent")
	fs.StringVar(&f.style, "style", assets.DefaultStyle, "CSS style for .html output")

	return fs
}

// parseFlags parses args (without the program name) and returns the flags
// and the positional arguments.
func parseFlags(args []string) (*cliFlags, []string, error) {
	f := &cliFlags{set: make(map[string]bool)}
	fs := newFlagSet(f)
	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	fs.Visit(func(fl *flag.Flag) { f.set[fl.Name] = true })
	return f, fs.Args(), nil
}

// flagUsages returns the formatted flag list for help output.
func flagUsages() string {
	return newFlagSet(&cliFlags{}).FlagUsages()
}

func defaultUserAgent() string {
	return "go-reddit2ebook/" + Version
}
