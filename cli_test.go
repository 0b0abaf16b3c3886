package main

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/olivier-w/curvedit/internal/config"
)

func writeCurve(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "ease.curve")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	return path
}

func TestRunSampleAtGivenT(t *testing.T) {
	path := writeCurve(t, "1.0000:1.0000\n0.0000:0.0000\n")
	var stdout, stderr bytes.Buffer

	if code := runSample([]string{path, "0.25", "1"}, config.Default(), &stdout, &stderr); code != 0 {
		t.Fatalf("expected exit 0, got %d: %s", code, stderr.String())
	}
	if want := "0.2500 0.2500\n1.0000 1.0000\n"; stdout.String() != want {
		t.Fatalf("expected %q, got %q", want, stdout.String())
	}
}

func TestRunSampleEvenlySpaced(t *testing.T) {
	path := writeCurve(t, "0.0000:0.5000\n1.0000:0.5000\n")
	cfg := config.Default()
	cfg.SampleSteps = 4
	var stdout, stderr bytes.Buffer

	if code := runSample([]string{path}, cfg, &stdout, &stderr); code != 0 {
		t.Fatalf("expected exit 0, got %d: %s", code, stderr.String())
	}
	want := "0.0000 0.5000\n0.2500 0.5000\n0.5000 0.5000\n0.7500 0.5000\n1.0000 0.5000\n"
	if stdout.String() != want {
		t.Fatalf("expected %q, got %q", want, stdout.String())
	}
}

func TestRunSampleErrors(t *testing.T) {
	good := writeCurve(t, "0.0000:0.5000\n1.0000:0.5000\n")
	empty := writeCurve(t, "")

	cases := []struct {
		args []string
		code int
		want string
	}{
		{args: nil, code: 2, want: "usage:"},
		{args: []string{good, "half"}, code: 1, want: `Error: invalid t "half"`},
		{args: []string{empty}, code: 1, want: "Error: invalid format: no points"},
		{args: []string{filepath.Join(t.TempDir(), "missing.curve")}, code: 1, want: "Error: reading curve:"},
	}
	for _, tc := range cases {
		var stdout, stderr bytes.Buffer
		if code := runSample(tc.args, config.Default(), &stdout, &stderr); code != tc.code {
			t.Fatalf("%v: expected exit %d, got %d", tc.args, tc.code, code)
		}
		if !strings.HasPrefix(stderr.String(), tc.want) {
			t.Fatalf("%v: expected %q, got %q", tc.args, tc.want, stderr.String())
		}
	}
}

func TestRunExportWritesPNG(t *testing.T) {
	path := writeCurve(t, "0.0000:0.0000\n0.5000:0.8000\n1.0000:1.0000\n")
	out := filepath.Join(t.TempDir(), "ease.png")
	cfg := config.Default()
	cfg.ExportWidth, cfg.ExportHeight = 200, 100
	var stdout, stderr bytes.Buffer

	if code := runExport([]string{path, out}, cfg, &stdout, &stderr); code != 0 {
		t.Fatalf("expected exit 0, got %d: %s", code, stderr.String())
	}

	f, err := os.Open(out)
	if err != nil {
		t.Fatalf("expected png: %v", err)
	}
	defer f.Close()
	img, err := png.DecodeConfig(f)
	if err != nil {
		t.Fatalf("expected valid png: %v", err)
	}
	if img.Width != 200 || img.Height != 100 {
		t.Fatalf("expected 200x100, got %dx%d", img.Width, img.Height)
	}
}

func TestRunExportUsage(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if code := runExport([]string{"only.curve"}, config.Default(), &stdout, &stderr); code != 2 {
		t.Fatalf("expected usage exit 2, got %d", code)
	}
}
