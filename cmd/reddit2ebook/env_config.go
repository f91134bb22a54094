package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"
)

// envPrefix marks the environment variables read by reddit2ebook.
const envPrefix = "REDDIT2EBOOK_"

// envConfig holds configuration from environment variables.
// Provides CI/CD-friendly overrides without requiring YAML files.
// Zero values mean "not set".
type envConfig struct {
	ConfigPath    string        // REDDIT2EBOOK_CONFIG: config name or path
	Posts         int           // REDDIT2EBOOK_POSTS: number of posts
	EbookConvert  string        // REDDIT2EBOOK_EBOOK_CONVERT: converter executable
	ConverterArgs *string       // REDDIT2EBOOK_CONVERTER_ARGS: set to "" to pass no args
	Timeout       time.Duration // REDDIT2EBOOK_TIMEOUT: whole-run timeout
	Workers       int           // REDDIT2EBOOK_WORKERS: comment trees fetched at once
	MaxDepth      int           // REDDIT2EBOOK_MAX_DEPTH: reply depth cap
	UserAgent     string        // REDDIT2EBOOK_USER_AGENT: HTTP user agent
	Style         string        // REDDIT2EBOOK_STYLE: CSS style for .html output
}

// knownEnvVars lists valid REDDIT2EBOOK_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	"REDDIT2EBOOK_CONFIG":         true,
	"REDDIT2EBOOK_POSTS":          true,
	"REDDIT2EBOOK_EBOOK_CONVERT":  true,
	"REDDIT2EBOOK_CONVERTER_ARGS": true,
	"REDDIT2EBOOK_TIMEOUT":        true,
	"REDDIT2EBOOK_WORKERS":        true,
	"REDDIT2EBOOK_MAX_DEPTH":      true,
	"REDDIT2EBOOK_USER_AGENT":     true,
	"REDDIT2EBOOK_STYLE":          true,
}

// loadEnvConfig reads configuration from environment variables.
// Malformed numbers and durations are ignored, not errors.
func loadEnvConfig() *envConfig {
	cfg := &envConfig{
		ConfigPath:   os.Getenv("REDDIT2EBOOK_CONFIG"),
		EbookConvert: os.Getenv("REDDIT2EBOOK_EBOOK_CONVERT"),
		UserAgent:    os.Getenv("REDDIT2EBOOK_USER_AGENT"),
		Style:        os.Getenv("REDDIT2EBOOK_STYLE"),
	}

	if args, ok := os.LookupEnv("REDDIT2EBOOK_CONVERTER_ARGS"); ok {
		cfg.ConverterArgs = &args
	}

	if timeout := os.Getenv("REDDIT2EBOOK_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil && d > 0 {
			cfg.Timeout = d
		}
	}

	cfg.Posts = positiveInt(os.Getenv("REDDIT2EBOOK_POSTS"))
	cfg.Workers = positiveInt(os.Getenv("REDDIT2EBOOK_WORKERS"))
	cfg.MaxDepth = positiveInt(os.Getenv("REDDIT2EBOOK_MAX_DEPTH"))

	return cfg
}

// positiveInt parses s, returning 0 when s is empty, malformed or not positive.
func positiveInt(s string) int {
	if s == "" {
		return 0
	}
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return 0
	}
	return n
}

// warnUnknownEnvVars logs warnings for unrecognized REDDIT2EBOOK_* variables.
// Helps catch typos like REDDIT2EBOOK_WORKER instead of REDDIT2EBOOK_WORKERS.
func warnUnknownEnvVars(w io.Writer) {
	for _, env := range os.Environ() {
		if strings.HasPrefix(env, envPrefix) {
			name := strings.SplitN(env, "=", 2)[0]
			if !knownEnvVars[name] {
				fmt.Fprintf(w, "warning: unknown environment variable %s (typo?)\n", name)
			}
		}
	}
}
