package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os/exec"
	"strings"
	"time"

	flag "github.com/spf13/pflag"

	reddit2ebook "github.com/alnah/go-reddit2ebook"
	"github.com/alnah/go-reddit2ebook/internal/assets"
	"github.com/alnah/go-reddit2ebook/internal/config"
	"github.com/alnah/go-reddit2ebook/internal/hints"
	"github.com/alnah/go-reddit2ebook/internal/reddit"
)

// Sentinel errors for command-line handling.
var (
	ErrUsage          = errors.New("invalid usage")
	ErrInvalidTimeout = errors.New("invalid timeout")
)

// metaCommands are recognized only as the sole positional argument.
var metaCommands = map[string]bool{
	"help":    true,
	"version": true,
	"doctor":  true,
}

// invocation records what a run resolved so far, for error hints.
type invocation struct {
	configName    string
	converterPath string
}

// runMain executes the command line args (without the program name) and
// returns the process exit code.
func runMain(ctx context.Context, args []string, env *Environment) int {
	if cmd, rest, ok := metaCommand(args); ok {
		switch cmd {
		case "help":
			printUsage(env.Stdout)
			return ExitSuccess
		case "version":
			printVersion(env.Stdout)
			return ExitSuccess
		default:
			return runDoctorCmd(rest, env)
		}
	}

	flags, positional, err := parseFlags(args)
	if errors.Is(err, flag.ErrHelp) {
		printUsage(env.Stdout)
		return ExitSuccess
	}
	if err != nil {
		err = fmt.Errorf("%w: %w", ErrUsage, err)
		fmt.Fprintf(env.Stderr, "error: %v%s\n", err, hintFor(err, &invocation{}))
		return ExitUsage
	}

	inv := &invocation{}
	start := env.Now()
	result, err := run(ctx, flags, positional, env, inv)
	if err != nil {
		fmt.Fprintf(env.Stderr, "error: %v%s\n", err, hintFor(err, inv))
		return exitCodeFor(err)
	}

	if !flags.quiet {
		printResult(env, result)
	}
	if flags.verbose {
		fmt.Fprintf(env.Stderr, "Done in %s\n", env.Now().Sub(start).Round(time.Millisecond))
	}
	return ExitSuccess
}

// metaCommand reports whether args name a meta command: its name followed
// only by flags.
func metaCommand(args []string) (string, []string, bool) {
	if len(args) == 0 || !metaCommands[args[0]] {
		return "", nil, false
	}
	for _, a := range args[1:] {
		if !strings.HasPrefix(a, "-") {
			return "", nil, false
		}
	}
	return args[0], args[1:], true
}

// run resolves the settings, builds the pipeline and executes it.
func run(ctx context.Context, f *cliFlags, positional []string, env *Environment, inv *invocation) (*reddit2ebook.Result, error) {
	if len(positional) != 2 {
		return nil, fmt.Errorf("%w: expected <subreddit> <output>, got %d argument(s)", ErrUsage, len(positional))
	}
	forum, output := normalizeForum(positional[0]), positional[1]

	if !f.quiet {
		warnUnknownEnvVars(env.Stderr)
	}
	envCfg := loadEnvConfig()

	s := defaultSettings()
	configName := envCfg.ConfigPath
	if f.changed("config") {
		configName = f.config
	}
	if configName != "" {
		inv.configName = configName
		cfg, err := config.LoadConfig(configName)
		if err != nil {
			return nil, err
		}
		s.applyConfig(cfg)
	}
	s.applyEnv(envCfg)
	if err := s.applyFlags(f); err != nil {
		return nil, err
	}
	inv.converterPath = s.converterPath

	src, err := env.NewSource(sourceOptions(&s, env)...)
	if err != nil {
		return nil, err
	}

	opts := []reddit2ebook.Option{
		reddit2ebook.WithWorkers(s.workers),
		reddit2ebook.WithMaxDepth(s.maxDepth),
	}
	if s.timeout > 0 {
		opts = append(opts, reddit2ebook.WithTimeout(s.timeout))
	}
	if s.verbose {
		opts = append(opts, reddit2ebook.WithLogger(stderrLogger(env)))
	}
	if reddit2ebook.NeedsConversion(output) {
		converter, err := newConverter(&s, output, env)
		if err != nil {
			return nil, err
		}
		opts = append(opts, reddit2ebook.WithConverter(converter))
	}

	req := reddit2ebook.Request{
		Forum:         forum,
		Posts:         s.posts,
		Output:        output,
		ConverterArgs: s.converterArgs,
	}
	return reddit2ebook.New(src, opts...).Run(ctx, req)
}

// sourceOptions maps the settings onto reddit client options.
func sourceOptions(s *settings, env *Environment) []reddit.Option {
	opts := []reddit.Option{
		reddit.WithUserAgent(s.userAgent),
		reddit.WithParallelism(s.workers),
	}
	if s.baseURL != "" {
		opts = append(opts, reddit.WithBaseURL(s.baseURL))
	}
	if s.requestTimeout > 0 {
		opts = append(opts, reddit.WithRequestTimeout(s.requestTimeout))
	}
	if s.delay != nil {
		opts = append(opts, reddit.WithDelay(*s.delay))
	}
	if s.verbose {
		opts = append(opts, reddit.WithLogger(stderrLogger(env)))
	}
	return opts
}

// newConverter picks the converter for output. HTML outputs are rendered
// in-process unless the user chose a converter explicitly.
func newConverter(s *settings, output string, env *Environment) (reddit2ebook.DocumentConverter, error) {
	if reddit2ebook.IsHTMLOutput(output) && !s.converterExplicit {
		return reddit2ebook.NewHTMLConverter(s.style, s.assetPath)
	}
	c := reddit2ebook.NewEbookConverter(s.converterPath)
	c.Runner = env.Runner
	if s.verbose {
		c.Verbose = env.Stdout
	}
	return c, nil
}

// normalizeForum strips an optional /r/ prefix and trailing slash.
func normalizeForum(name string) string {
	name = strings.TrimSpace(name)
	name = strings.TrimPrefix(name, "/")
	name = strings.TrimPrefix(name, "r/")
	return strings.TrimSuffix(name, "/")
}

func stderrLogger(env *Environment) func(format string, args ...any) {
	return func(format string, args ...any) {
		fmt.Fprintf(env.Stderr, format+"\n", args...)
	}
}

// printResult reports the written documents.
func printResult(env *Environment, r *reddit2ebook.Result) {
	fmt.Fprintf(env.Stdout, "Wrote %s (%d posts, %d comments)\n", r.OutputPath, r.Posts, r.Comments)
	if r.Converted {
		fmt.Fprintf(env.Stdout, "Markdown kept at %s\n", r.MarkdownPath)
	}
}

// hintFor returns an actionable hint for known failures, or "".
func hintFor(err error, inv *invocation) string {
	switch {
	case errors.Is(err, config.ErrConfigNotFound):
		return hints.ForConfigNotFound(config.SearchPaths(inv.configName))
	case errors.Is(err, reddit2ebook.ErrConverterArgs):
		return hints.ForConverterArgs()
	case errors.Is(err, assets.ErrStyleNotFound):
		return hints.ForStyleNotFound(assets.NewEmbeddedLoader().Styles())
	case errors.Is(err, reddit.ErrRateLimited):
		return hints.ForRateLimited()
	case errors.Is(err, context.DeadlineExceeded):
		return hints.ForTimeout()
	case errors.Is(err, reddit2ebook.ErrWriteDocument):
		return hints.ForOutputDirectory()
	case errors.Is(err, reddit2ebook.ErrConversion) &&
		(errors.Is(err, exec.ErrNotFound) || errors.Is(err, fs.ErrNotExist)):
		return hints.ForConverterNotFound(inv.converterPath)
	case errors.Is(err, ErrUsage):
		return "\n  hint: run 'reddit2ebook help' for usage"
	}
	return ""
}
