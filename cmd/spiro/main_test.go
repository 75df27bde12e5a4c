package main

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRunUsageError(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if code := run([]string{"100", "abc", "0.5"}, &stdout, &stderr); code != 2 {
		t.Errorf("exit code = %d, want 2", code)
	}
	if !strings.Contains(stderr.String(), `invalid r "abc"`) {
		t.Errorf("stderr = %q, want argument error", stderr.String())
	}
	if stdout.Len() != 0 {
		t.Errorf("stdout = %q, want nothing drawn", stdout.String())
	}
}

func TestRunHelp(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if code := run([]string{"-h"}, &stdout, &stderr); code != 0 {
		t.Errorf("exit code = %d, want 0", code)
	}
	if !strings.Contains(stderr.String(), "Usage: spiro") {
		t.Errorf("stderr = %q, want usage text", stderr.String())
	}
}

func TestRunRenderFile(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "curve.png")
	logFile := filepath.Join(dir, "spiro.log")

	var stdout, stderr bytes.Buffer
	args := []string{"-width", "200", "-height", "160", "-o", out, "-log", logFile, "80", "30", "0.5"}
	if code := run(args, &stdout, &stderr); code != 0 {
		t.Fatalf("exit code = %d, stderr = %q", code, stderr.String())
	}
	if !strings.Contains(stdout.String(), "generating spirograph...") {
		t.Errorf("stdout = %q, want progress message", stdout.String())
	}

	f, err := os.Open(out)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("png.Decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 200 || b.Dy() != 160 {
		t.Errorf("image size = %dx%d, want 200x160", b.Dx(), b.Dy())
	}

	logged, err := os.ReadFile(logFile)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !strings.Contains(string(logged), "curve written") {
		t.Errorf("log = %q, want curve written entry", logged)
	}
}

func TestRunRenderFileError(t *testing.T) {
	out := filepath.Join(t.TempDir(), "missing", "curve.png")
	var stdout, stderr bytes.Buffer
	if code := run([]string{"-o", out, "80", "30", "0.5"}, &stdout, &stderr); code != 1 {
		t.Errorf("exit code = %d, want 1", code)
	}
}

func TestRunRejectsOversizedRadii(t *testing.T) {
	out := filepath.Join(t.TempDir(), "curve.png")
	var stdout, stderr bytes.Buffer
	args := []string{"-o", out, "4611686018427387904", "4611686018427387903", "0.5"}
	if code := run(args, &stdout, &stderr); code != 2 {
		t.Errorf("exit code = %d, want 2", code)
	}
	if !strings.Contains(stderr.String(), "radius out of range") {
		t.Errorf("stderr = %q, want range error", stderr.String())
	}
	if _, err := os.Stat(out); !os.IsNotExist(err) {
		t.Errorf("Stat(%s) error = %v, want not exist", out, err)
	}
}
