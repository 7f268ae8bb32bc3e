package cli

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/Fepozopo/unbox/pkg/unbox"
)

// writeLetterboxedPNG writes a 12x8 white frame with 2-pixel black bars at
// the top and bottom.
func writeLetterboxedPNG(t *testing.T, path string) {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, 12, 8))
	for y := 0; y < 8; y++ {
		for x := 0; x < 12; x++ {
			c := color.NRGBA{255, 255, 255, 255}
			if y < 2 || y >= 6 {
				c = color.NRGBA{0, 0, 0, 255}
			}
			img.SetNRGBA(x, y, c)
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("png encode failed: %v", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		t.Fatalf("fixture write failed: %v", err)
	}
}

func TestProcessFileWritesCroppedOutput(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "frame.png")
	writeLetterboxedPNG(t, src)

	cfg := Config{Threshold: 10, OutputDir: filepath.Join(dir, "out")}
	if err := processFile(cfg, src); err != nil {
		t.Fatalf("processFile failed: %v", err)
	}

	out, err := os.Open(filepath.Join(dir, "out", "frame.png"))
	if err != nil {
		t.Fatalf("output missing: %v", err)
	}
	defer out.Close()
	decoded, format, err := image.Decode(out)
	if err != nil {
		t.Fatalf("output did not decode: %v", err)
	}
	if format != "png" {
		t.Fatalf("output format = %q, want png", format)
	}
	if b := decoded.Bounds(); b.Dx() != 12 || b.Dy() != 4 {
		t.Fatalf("output size = %dx%d, want 12x4", b.Dx(), b.Dy())
	}
}

func TestProcessFileDryRun(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "frame.png")
	writeLetterboxedPNG(t, src)

	cfg := Config{Threshold: 10, DryRun: true}
	if err := processFile(cfg, src); err != nil {
		t.Fatalf("processFile failed: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "frame_unboxed.png")); !os.IsNotExist(err) {
		t.Fatalf("dry run wrote output")
	}
}

func TestProcessFileDegenerateGeometry(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "black.png")

	img := image.NewNRGBA(image.Rect(0, 0, 6, 6))
	for i := 3; i < len(img.Pix); i += 4 {
		img.Pix[i] = 255
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("png encode failed: %v", err)
	}
	if err := os.WriteFile(src, buf.Bytes(), 0o644); err != nil {
		t.Fatalf("fixture write failed: %v", err)
	}

	err := processFile(Config{Threshold: 1}, src)
	var degenerate *unbox.DegenerateGeometryError
	if !errors.As(err, &degenerate) {
		t.Fatalf("expected DegenerateGeometryError, got %v", err)
	}
}

func TestProcessFileDecodeError(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "broken.png")
	if err := os.WriteFile(src, []byte("not a png"), 0o644); err != nil {
		t.Fatalf("fixture write failed: %v", err)
	}
	if err := processFile(Config{Threshold: 10}, src); err == nil {
		t.Fatalf("expected decode error")
	}
}
