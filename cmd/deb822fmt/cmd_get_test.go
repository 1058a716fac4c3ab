package main

import (
	"io"
	"os"
	"path/filepath"
	"testing"
)

const testControl = "Package: foo\nVersion: 1.0\n\nPackage: bar\nVersion: 2.0\n\n"

func writeTempControl(t *testing.T, text string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "control")
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func captureStdout(t *testing.T, fn func() error) (string, error) {
	t.Helper()
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	old := os.Stdout
	os.Stdout = w
	defer func() { os.Stdout = old }()

	fnErr := fn()
	w.Close()

	out, err := io.ReadAll(r)
	if err != nil {
		t.Fatal(err)
	}
	return string(out), fnErr
}

func TestRunGetPrintsValue(t *testing.T) {
	path := writeTempControl(t, testControl)

	out, err := captureStdout(t, func() error { return runGet(path, "Package", 0) })
	if err != nil {
		t.Fatalf("runGet: %v", err)
	}
	if out != "foo\n" {
		t.Errorf("runGet output = %q, want %q", out, "foo\n")
	}
}

func TestRunGetSecondParagraph(t *testing.T) {
	path := writeTempControl(t, testControl)

	out, err := captureStdout(t, func() error { return runGet(path, "Package", 1) })
	if err != nil {
		t.Fatalf("runGet: %v", err)
	}
	if out != "bar\n" {
		t.Errorf("runGet output = %q, want %q", out, "bar\n")
	}
}

func TestRunGetMissingFile(t *testing.T) {
	err := runGet(filepath.Join(t.TempDir(), "does-not-exist"), "Package", 0)
	if err == nil {
		t.Fatal("expected an error for a missing file")
	}
}

func TestRunGetParagraphOutOfRange(t *testing.T) {
	path := writeTempControl(t, testControl)
	err := runGet(path, "Package", 5)
	if err == nil {
		t.Fatal("expected an error for an out-of-range paragraph index")
	}
}

func TestRunGetFieldNotFound(t *testing.T) {
	path := writeTempControl(t, testControl)
	err := runGet(path, "NoSuchField", 0)
	if err == nil {
		t.Fatal("expected an error for a missing field")
	}
}
