package runner

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

const wellFormed = "Package: foo\nVersion: 1.0\n\n"

func TestRunDiffNoDrift(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "control")
	if err := os.WriteFile(path, []byte(wellFormed), 0o644); err != nil {
		t.Fatal(err)
	}

	var stdout, stderr bytes.Buffer
	code := Run(&Options{
		Files:  []string{path},
		Diff:   true,
		Stdout: &stdout,
		Stderr: &stderr,
	})

	if code != ExitOK {
		t.Errorf("exit code: got %d, want %d", code, ExitOK)
	}
	if stdout.Len() != 0 {
		t.Errorf("expected no diff for well-formed input, got: %s", stdout.String())
	}
}

func TestRunCheckWellFormed(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "control")
	if err := os.WriteFile(path, []byte(wellFormed), 0o644); err != nil {
		t.Fatal(err)
	}

	var stdout, stderr bytes.Buffer
	code := Run(&Options{
		Files:  []string{path},
		Check:  true,
		Stdout: &stdout,
		Stderr: &stderr,
	})

	if code != ExitOK {
		t.Errorf("exit code: got %d, want %d", code, ExitOK)
	}
}

func TestRunCheckSyntaxError(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "control")
	// A continuation line with no preceding field is a syntax error.
	if err := os.WriteFile(path, []byte(" bogus continuation\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	var stdout, stderr bytes.Buffer
	code := Run(&Options{
		Files:  []string{path},
		Check:  true,
		Stdout: &stdout,
		Stderr: &stderr,
	})

	if code != ExitError {
		t.Errorf("exit code: got %d, want %d", code, ExitError)
	}
}

func TestRunMissingFile(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := Run(&Options{
		Files:  []string{"/nonexistent/path/control"},
		Stdout: &stdout,
		Stderr: &stderr,
	})

	if code != ExitError {
		t.Errorf("exit code: got %d, want %d", code, ExitError)
	}
}

func TestRunMultipleFiles(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good")
	bad := filepath.Join(dir, "bad")

	if err := os.WriteFile(good, []byte(wellFormed), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(bad, []byte(" bogus continuation\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	var stdout, stderr bytes.Buffer
	code := Run(&Options{
		Files:  []string{good, bad},
		Check:  true,
		Stdout: &stdout,
		Stderr: &stderr,
	})

	if code != ExitError {
		t.Errorf("exit code: got %d, want %d", code, ExitError)
	}
}

func TestRunVerbose(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "control")
	if err := os.WriteFile(path, []byte(wellFormed), 0o644); err != nil {
		t.Fatal(err)
	}

	var stdout, stderr bytes.Buffer
	_ = Run(&Options{
		Files:   []string{path},
		Verbose: true,
		Stdout:  &stdout,
		Stderr:  &stderr,
	})

	if !bytes.Contains(stderr.Bytes(), []byte("control")) {
		t.Errorf("verbose mode should print filename to stderr, got: %s", stderr.String())
	}
}

func TestRunPlainDump(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "control")
	if err := os.WriteFile(path, []byte(wellFormed), 0o644); err != nil {
		t.Fatal(err)
	}

	var stdout, stderr bytes.Buffer
	code := Run(&Options{
		Files:  []string{path},
		Stdout: &stdout,
		Stderr: &stderr,
	})

	if code != ExitOK {
		t.Errorf("exit code: got %d, want %d", code, ExitOK)
	}
	if stdout.String() != wellFormed {
		t.Errorf("dump: got %q, want %q", stdout.String(), wellFormed)
	}
}
