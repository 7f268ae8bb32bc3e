package cli

import (
	"fmt"
	"os"

	"github.com/blang/semver"
	"github.com/rhysd/go-github-selfupdate/selfupdate"
)

const repoSlug = "Fepozopo/unbox"

// Version is the running release, stamped at build time via
// -ldflags "-X github.com/Fepozopo/unbox/pkg/cli.Version=...".
var Version = "0.0.0-dev"

// CheckForUpdates queries GitHub releases and replaces the running binary
// when a newer semver-tagged release is available.
func CheckForUpdates() error {
	current, err := semver.ParseTolerant(Version)
	if err != nil {
		return fmt.Errorf("invalid build version %q: %w", Version, err)
	}

	latest, found, err := selfupdate.DetectLatest(repoSlug)
	if err != nil {
		return fmt.Errorf("release lookup failed: %w", err)
	}
	if !found || latest.Version.LTE(current) {
		fmt.Printf("unbox %s is up to date\n", current)
		return nil
	}

	exe, err := os.Executable()
	if err != nil {
		return fmt.Errorf("could not locate executable: %w", err)
	}
	fmt.Printf("updating %s -> %s\n", current, latest.Version)
	if err := selfupdate.UpdateTo(latest.AssetURL, exe); err != nil {
		return fmt.Errorf("update failed: %w", err)
	}
	fmt.Println("updated; restart unbox to run the new version")
	return nil
}
