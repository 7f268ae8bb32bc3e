package cli

import (
	"os"
	"path/filepath"
	"testing"
)

func TestIsImageFile(t *testing.T) {
	cases := map[string]bool{
		"frame.png":     true,
		"frame.JPG":     true,
		"frame.tiff":    true,
		"frame.webp":    true,
		"notes.txt":     false,
		"archive.tar":   false,
		"extensionless": false,
	}
	for path, want := range cases {
		if got := isImageFile(path); got != want {
			t.Fatalf("isImageFile(%q) = %v, want %v", path, got, want)
		}
	}
}

func TestOutputPath(t *testing.T) {
	path := filepath.Join("frames", "shot.png")

	if got := outputPath(Config{Overwrite: true}, path); got != path {
		t.Fatalf("overwrite output = %q, want %q", got, path)
	}

	want := filepath.Join("out", "shot.png")
	if got := outputPath(Config{OutputDir: "out"}, path); got != want {
		t.Fatalf("output-dir output = %q, want %q", got, want)
	}

	want = filepath.Join("frames", "shot_unboxed.png")
	if got := outputPath(Config{}, path); got != want {
		t.Fatalf("default output = %q, want %q", got, want)
	}
}

func TestCollectInputs(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a.png", "b.jpeg", ".hidden.png", "c.txt"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644); err != nil {
			t.Fatalf("fixture write failed: %v", err)
		}
	}

	inputs, err := collectInputs([]string{dir})
	if err != nil {
		t.Fatalf("collectInputs failed: %v", err)
	}
	if len(inputs) != 2 {
		t.Fatalf("collectInputs returned %d files, want 2: %v", len(inputs), inputs)
	}

	if _, err := collectInputs([]string{filepath.Join(dir, "missing.png")}); err == nil {
		t.Fatalf("expected error for missing input")
	}
}
