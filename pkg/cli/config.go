package cli

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the settings for one batch run. Values are layered:
// built-in defaults, then an optional .env file plus environment
// variables, then command-line flags.
type Config struct {
	Threshold int
	OutputDir string
	Overwrite bool
	DryRun    bool
	Compare   bool
	Preview   bool
	Verbose   bool
}

// defaultThreshold matches the batch default this tool was tuned with:
// dark-but-not-pure-black bars from video frame captures.
const defaultThreshold = 10

// LoadConfig reads the optional .env file in the working directory and
// applies UNBOX_* environment overrides.
func LoadConfig() Config {
	// .env is optional; a missing file is not an error.
	_ = godotenv.Load()

	cfg := Config{Threshold: defaultThreshold}
	if v := os.Getenv("UNBOX_THRESHOLD"); v != "" {
		if t, err := strconv.Atoi(v); err == nil && t >= 0 && t <= 255 {
			cfg.Threshold = t
		}
	}
	if v := os.Getenv("UNBOX_OUTPUT_DIR"); v != "" {
		cfg.OutputDir = v
	}
	switch os.Getenv("UNBOX_VERBOSE") {
	case "1", "true":
		cfg.Verbose = true
	}
	return cfg
}
