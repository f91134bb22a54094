package main

import (
	"io"
	"os"
	"os/exec"
	"time"

	reddit2ebook "github.com/alnah/go-reddit2ebook"
	"github.com/alnah/go-reddit2ebook/internal/reddit"
)

// Environment holds injectable dependencies for testability.
// Includes I/O, time, the remote source and subprocess execution.
type Environment struct {
	Now       func() time.Time
	Stdout    io.Writer
	Stderr    io.Writer
	NewSource func(opts ...reddit.Option) (reddit2ebook.Source, error)
	Runner    reddit2ebook.CommandRunner
	LookPath  func(file string) (string, error)
}

// DefaultEnv returns the production environment.
func DefaultEnv() *Environment {
	return &Environment{
		Now:    time.Now,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		NewSource: func(opts ...reddit.Option) (reddit2ebook.Source, error) {
			c, err := reddit.NewClient(opts...)
			if err != nil {
				return nil, err
			}
			return c, nil
		},
		Runner:   &reddit2ebook.ExecRunner{},
		LookPath: exec.LookPath,
	}
}
