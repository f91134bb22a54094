package main

// Notes:
// - Tests use a black-box approach through runDoctorCmd() outputs, with the
//   converter lookup and version probe injected through Environment.
// - Container and CI detection depend on the host; only their presence in
//   the JSON output is checked.

import (
	"bytes"
	"encoding/json"
	"errors"
	"os/exec"
	"runtime"
	"strings"
	"testing"
)

// ---------------------------------------------------------------------------
// TestRunDoctorCmd - Converter detection and output formats
// ---------------------------------------------------------------------------

func doctorEnv(lookPath func(string) (string, error), runner *mockRunner) (*Environment, *bytes.Buffer) {
	var stdout bytes.Buffer
	return &Environment{
		Stdout:   &stdout,
		Stderr:   &bytes.Buffer{},
		Runner:   runner,
		LookPath: lookPath,
	}, &stdout
}

func TestRunDoctorCmd_ConverterFound(t *testing.T) {
	t.Parallel()

	runner := &mockRunner{stdout: "ebook-convert (calibre 7.6.0)\nCreated by Kovid Goyal"}
	env, stdout := doctorEnv(func(file string) (string, error) { return file, nil }, runner)

	exitCode := runDoctorCmd([]string{"--json"}, env)

	var result doctorResult
	if err := json.Unmarshal(stdout.Bytes(), &result); err != nil {
		t.Fatalf("Invalid JSON output: %v\nOutput was: %s", err, stdout)
	}
	if !result.Converter.Found {
		t.Error("converter should be found")
	}
	if result.Converter.Version != "ebook-convert (calibre 7.6.0)" {
		t.Errorf("Version = %q", result.Converter.Version)
	}
	if result.Env.OS != runtime.GOOS || result.Env.Arch != runtime.GOARCH {
		t.Errorf("platform = %s/%s", result.Env.OS, result.Env.Arch)
	}
	if len(result.System.Styles) == 0 {
		t.Error("styles should be listed")
	}
	if result.Status == "errors" && exitCode != ExitGeneral {
		t.Errorf("exit code = %d for errors status", exitCode)
	}
	if result.Status != "errors" && exitCode != ExitSuccess {
		t.Errorf("exit code = %d for %s status", exitCode, result.Status)
	}
	if len(runner.calls) != 1 || runner.calls[0][1] != "--version" {
		t.Errorf("version probe calls = %v", runner.calls)
	}
}

func TestRunDoctorCmd_ConverterMissing(t *testing.T) {
	t.Parallel()

	env, stdout := doctorEnv(func(string) (string, error) { return "", exec.ErrNotFound }, &mockRunner{})

	runDoctorCmd([]string{"--json"}, env)

	var result doctorResult
	if err := json.Unmarshal(stdout.Bytes(), &result); err != nil {
		t.Fatalf("Invalid JSON output: %v", err)
	}
	if result.Converter.Found {
		t.Error("converter should not be found")
	}
	if result.Status == "ready" {
		t.Error("missing converter should produce a warning")
	}
	if len(result.Warnings) == 0 || !strings.Contains(result.Warnings[0], "ebook-convert not found") {
		t.Errorf("Warnings = %v", result.Warnings)
	}
}

func TestRunDoctorCmd_VersionProbeFails(t *testing.T) {
	t.Parallel()

	runner := &mockRunner{err: errors.New("exit status 1")}
	env, stdout := doctorEnv(func(file string) (string, error) { return file, nil }, runner)

	runDoctorCmd(nil, env)

	out := stdout.String()
	if !strings.Contains(out, "[OK] Found at") {
		t.Errorf("output missing converter path:\n%s", out)
	}
	if !strings.Contains(out, "[WARN] Could not get converter version") {
		t.Errorf("output missing version warning:\n%s", out)
	}
}

func TestRunDoctorCmd_HumanOutput(t *testing.T) {
	t.Parallel()

	env, stdout := doctorEnv(func(string) (string, error) { return "", exec.ErrNotFound }, &mockRunner{})

	runDoctorCmd(nil, env)

	out := stdout.String()
	for _, section := range []string{"reddit2ebook doctor", "Converter", "Environment", "System", "Status:"} {
		if !strings.Contains(out, section) {
			t.Errorf("output missing %q:\n%s", section, out)
		}
	}
	if strings.HasPrefix(strings.TrimSpace(out), "{") {
		t.Error("human output should not be JSON")
	}
}
