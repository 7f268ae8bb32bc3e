// Package cli implements the unbox command: batch removal of uniform
// letterbox/pillarbox borders from image files, with an optional
// comparison against ImageMagick's trim as a reference implementation.
package cli

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"image"
	"os"
	"path/filepath"

	"gopkg.in/gographics/imagick.v3/imagick"

	"github.com/Fepozopo/unbox/pkg/unbox"
)

// RunCLI parses arguments, processes every input image and exits with a
// non-zero status if any file failed.
func RunCLI() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	cfg := LoadConfig()

	fs := flag.NewFlagSet("unbox", flag.ExitOnError)
	fs.IntVar(&cfg.Threshold, "threshold", cfg.Threshold, "border threshold (0-255)")
	fs.StringVar(&cfg.OutputDir, "output-dir", cfg.OutputDir, "directory for cropped output images")
	fs.BoolVar(&cfg.Overwrite, "overwrite", false, "overwrite original images in place")
	fs.BoolVar(&cfg.DryRun, "dry-run", false, "detect borders but do not write output")
	fs.BoolVar(&cfg.Compare, "compare", false, "also trim with ImageMagick and report differences")
	fs.BoolVar(&cfg.Preview, "preview", false, "preview cropped images inline in the terminal")
	fs.BoolVar(&cfg.Verbose, "verbose", cfg.Verbose, "print detected border widths")
	checkUpdate := fs.Bool("check-update", false, "check for a newer release and self-update")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	if *checkUpdate {
		if err := CheckForUpdates(); err != nil {
			fmt.Fprintf(os.Stderr, "update check error: %v\n", err)
			return 1
		}
		return 0
	}

	if cfg.Threshold < 0 || cfg.Threshold > 255 {
		fmt.Fprintf(os.Stderr, "threshold %d outside [0,255]\n", cfg.Threshold)
		return 2
	}

	inputs, err := collectInputs(fs.Args())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}
	if len(inputs) == 0 {
		fmt.Fprintln(os.Stderr, "usage: unbox [options] <image or directory>...")
		fs.PrintDefaults()
		return 2
	}

	if cfg.Compare {
		imagick.Initialize()
		defer imagick.Terminate()
	}

	failures := 0
	total := len(inputs)
	for i, path := range inputs {
		if err := processFile(cfg, path); err != nil {
			failures++
			var degenerate *unbox.DegenerateGeometryError
			if errors.As(err, &degenerate) {
				fmt.Fprintf(os.Stderr, "[%d/%d] skipping %s: %v\n", i+1, total, path, err)
			} else {
				fmt.Fprintf(os.Stderr, "[%d/%d] %s: %v\n", i+1, total, path, err)
			}
			continue
		}
		if cfg.Verbose {
			fmt.Printf("[%d/%d] done %s\n", i+1, total, path)
		}
	}
	if failures > 0 {
		return 1
	}
	return 0
}

// processFile crops a single image and writes (or reports) the result
// according to cfg.
func processFile(cfg Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	src, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return err
	}

	cropped, borders, err := unbox.UnletterboxImage(src, cfg.Threshold)
	if err != nil {
		return err
	}
	out, err := unbox.Encode(cropped, format)
	if err != nil {
		return err
	}

	if cfg.Verbose {
		fmt.Fprintf(os.Stderr, "%s: top=%d bottom=%d left=%d right=%d -> %dx%d\n",
			path, borders.Top, borders.Bottom, borders.Left, borders.Right,
			cropped.Bounds().Dx(), cropped.Bounds().Dy())
	}

	if cfg.Compare {
		if err := compareAndReport(cfg, path, data, out); err != nil {
			fmt.Fprintf(os.Stderr, "%s: comparison failed: %v\n", path, err)
		}
	}

	if cfg.Preview {
		// Preview is best effort; not every terminal supports it.
		_ = PreviewBytes(out, format)
	}

	if cfg.DryRun {
		b := src.Bounds()
		fmt.Printf("would crop %s: %dx%d -> %dx%d\n", path,
			b.Dx(), b.Dy(), cropped.Bounds().Dx(), cropped.Bounds().Dy())
		return nil
	}

	dst := outputPath(cfg, path)
	if err := writeOutput(dst, out); err != nil {
		return err
	}
	fmt.Printf("cropped %s -> %s\n", path, dst)
	return nil
}

// compareAndReport trims path's data with ImageMagick, prints the
// divergence and, when an output directory is configured, writes both
// results side by side under ours/ and imagick/.
func compareAndReport(cfg Config, path string, original, ours []byte) error {
	result, err := CompareWithImagick(original, ours, cfg.Threshold)
	if err != nil {
		return err
	}

	if result.SizeMatch() {
		fmt.Printf("compare %s: sizes match (%dx%d), %d differing pixels\n",
			path, result.OursWidth, result.OursHeight, result.PixelDiffs)
	} else {
		fmt.Printf("compare %s: size mismatch ours=%dx%d imagick=%dx%d (%d differing pixels in overlap)\n",
			path, result.OursWidth, result.OursHeight, result.RefWidth, result.RefHeight, result.PixelDiffs)
	}

	if cfg.OutputDir != "" && !cfg.DryRun {
		base := filepath.Base(path)
		if err := writeOutput(filepath.Join(cfg.OutputDir, "ours", base), ours); err != nil {
			return err
		}
		if err := writeOutput(filepath.Join(cfg.OutputDir, "imagick", base), result.RefBlob); err != nil {
			return err
		}
	}
	return nil
}
