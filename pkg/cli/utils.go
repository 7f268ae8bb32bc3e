package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// imageExts lists the container formats the codec layer can decode.
var imageExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".bmp":  true,
	".tif":  true,
	".tiff": true,
	".webp": true,
}

func isImageFile(path string) bool {
	return imageExts[strings.ToLower(filepath.Ext(path))]
}

// collectInputs expands the positional arguments into a flat list of image
// files. Directory arguments contribute their directly contained images;
// hidden files are skipped.
func collectInputs(args []string) ([]string, error) {
	var inputs []string
	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return nil, fmt.Errorf("cannot stat %s: %w", arg, err)
		}
		if !info.IsDir() {
			inputs = append(inputs, arg)
			continue
		}
		entries, err := os.ReadDir(arg)
		if err != nil {
			return nil, fmt.Errorf("cannot list %s: %w", arg, err)
		}
		for _, entry := range entries {
			if entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
				continue
			}
			path := filepath.Join(arg, entry.Name())
			if isImageFile(path) {
				inputs = append(inputs, path)
			}
		}
	}
	return inputs, nil
}

// outputPath decides where the cropped result for path is written.
func outputPath(cfg Config, path string) string {
	if cfg.Overwrite {
		return path
	}
	if cfg.OutputDir != "" {
		return filepath.Join(cfg.OutputDir, filepath.Base(path))
	}
	ext := filepath.Ext(path)
	return strings.TrimSuffix(path, ext) + "_unboxed" + ext
}

// writeOutput writes data to dst, creating parent directories as needed.
func writeOutput(dst string, data []byte) error {
	if dir := filepath.Dir(dst); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(dst, data, 0o644)
}
