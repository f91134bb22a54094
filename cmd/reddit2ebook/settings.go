package main

import (
	"fmt"
	"time"

	reddit2ebook "github.com/alnah/go-reddit2ebook"
	"github.com/alnah/go-reddit2ebook/internal/assets"
	"github.com/alnah/go-reddit2ebook/internal/config"
)

// settings is the effective configuration of one run.
// Layers apply in order defaults, config file, environment, flags, so the
// last layer to set a value wins.
type settings struct {
	posts             int
	converterPath     string
	converterExplicit bool // converter path chosen by the user, not the default
	converterArgs     string
	timeout           time.Duration
	workers           int
	maxDepth          int

	baseURL        string
	userAgent      string
	requestTimeout time.Duration
	delay          *time.Duration

	style     string
	assetPath string

	verbose bool
	quiet   bool
}

func defaultSettings() settings {
	return settings{
		posts:         defaultPosts,
		converterPath: reddit2ebook.DefaultEbookConvert,
		converterArgs: reddit2ebook.DefaultConverterArgs,
		workers:       defaultWorkers,
		userAgent:     defaultUserAgent(),
		style:         assets.DefaultStyle,
	}
}

// applyConfig applies the values set in the config file.
func (s *settings) applyConfig(cfg *config.Config) {
	if cfg.Posts > 0 {
		s.posts = cfg.Posts
	}
	if cfg.Converter.Path != "" {
		s.converterPath = cfg.Converter.Path
		s.converterExplicit = true
	}
	if cfg.Converter.Args != nil {
		s.converterArgs = *cfg.Converter.Args
	}
	if cfg.Converter.Timeout > 0 {
		s.timeout = cfg.Converter.Timeout
	}
	if cfg.Render.Workers > 0 {
		s.workers = cfg.Render.Workers
	}
	if cfg.Render.MaxDepth > 0 {
		s.maxDepth = cfg.Render.MaxDepth
	}
	s.baseURL = cfg.Reddit.BaseURL
	if cfg.Reddit.UserAgent != "" {
		s.userAgent = cfg.Reddit.UserAgent
	}
	s.requestTimeout = cfg.Reddit.RequestTimeout
	s.delay = cfg.Reddit.Delay
	if cfg.HTML.Style != "" {
		s.style = cfg.HTML.Style
	}
	s.assetPath = cfg.HTML.AssetPath
}

// applyEnv applies the REDDIT2EBOOK_* values that are set.
func (s *settings) applyEnv(env *envConfig) {
	if env.Posts > 0 {
		s.posts = env.Posts
	}
	if env.EbookConvert != "" {
		s.converterPath = env.EbookConvert
		s.converterExplicit = true
	}
	if env.ConverterArgs != nil {
		s.converterArgs = *env.ConverterArgs
	}
	if env.Timeout > 0 {
		s.timeout = env.Timeout
	}
	if env.Workers > 0 {
		s.workers = env.Workers
	}
	if env.MaxDepth > 0 {
		s.maxDepth = env.MaxDepth
	}
	if env.UserAgent != "" {
		s.userAgent = env.UserAgent
	}
	if env.Style != "" {
		s.style = env.Style
	}
}

// applyFlags applies the flags given on the command line.
func (s *settings) applyFlags(f *cliFlags) error {
	s.verbose = f.verbose
	s.quiet = f.quiet

	if f.changed("posts") {
		s.posts = f.posts
	}
	if f.changed("ebook-convert") {
		s.converterPath = f.ebookConvert
		s.converterExplicit = true
	}
	if f.changed("converter-args") {
		s.converterArgs = f.converterArgs
	}
	if f.changed("timeout") {
		d, err := time.ParseDuration(f.timeout)
		if err != nil || d <= 0 {
			return fmt.Errorf("%w: %q", ErrInvalidTimeout, f.timeout)
		}
		s.timeout = d
	}
	if f.changed("workers") {
		s.workers = f.workers
	}
	if f.changed("max-depth") {
		s.maxDepth = f.maxDepth
	}
	if f.changed("user-agent") {
		s.userAgent = f.userAgent
	}
	if f.changed("style") {
		s.style = f.style
	}
	return s.validate()
}

// validate checks the values that the library would otherwise reject with a
// panic.
func (s *settings) validate() error {
	if s.workers < 1 || s.workers > config.MaxWorkers {
		return fmt.Errorf("%w: --workers must be between 1 and %d, got %d", ErrUsage, config.MaxWorkers, s.workers)
	}
	if s.maxDepth < 0 {
		return fmt.Errorf("%w: --max-depth cannot be negative, got %d", ErrUsage, s.maxDepth)
	}
	if s.verbose && s.quiet {
		return fmt.Errorf("%w: --verbose and --quiet are mutually exclusive", ErrUsage)
	}
	return nil
}
