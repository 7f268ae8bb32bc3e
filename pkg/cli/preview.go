package cli

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// Inline terminal preview of encoded image bytes. Kitty-compatible
// terminals get the kitty graphics protocol, iTerm2-style terminals get
// the OSC 1337 inline file sequence, and anything else falls back to
// chafa when it is on PATH.

func isKittyTerm() bool {
	if os.Getenv("KITTY_WINDOW_ID") != "" {
		return true
	}
	term := strings.ToLower(os.Getenv("TERM"))
	return strings.Contains(term, "kitty") || strings.Contains(term, "ghostty")
}

func isInlineCapableTerm() bool {
	switch os.Getenv("TERM_PROGRAM") {
	case "iTerm.app", "WezTerm", "Warp", "vscode", "Tabby":
		return true
	}
	return os.Getenv("ITERM_SESSION_ID") != ""
}

// PreviewBytes renders encoded image bytes inline in the terminal.
// format is a hint like "png" or "jpeg" used for the file-name metadata.
func PreviewBytes(data []byte, format string) error {
	if len(data) == 0 {
		return fmt.Errorf("empty image blob")
	}
	if isKittyTerm() {
		return sendKitty(data)
	}
	if isInlineCapableTerm() {
		return sendInline(data, format)
	}
	return sendChafa(data)
}

// sendKitty transmits the blob with the kitty graphics protocol, chunking
// the base64 payload into <=4096-byte pieces as the protocol requires.
func sendKitty(data []byte) error {
	enc := base64.StdEncoding.EncodeToString(data)
	const chunkSize = 4096

	first := true
	for pos := 0; pos < len(enc); pos += chunkSize {
		end := pos + chunkSize
		if end > len(enc) {
			end = len(enc)
		}
		m := "1"
		if end == len(enc) {
			m = "0"
		}
		var seq string
		if first {
			seq = fmt.Sprintf("\x1b_Ga=T,f=100,t=d,q=2,m=%s;%s\x1b\\", m, enc[pos:end])
			first = false
		} else {
			seq = fmt.Sprintf("\x1b_Gm=%s;%s\x1b\\", m, enc[pos:end])
		}
		if _, err := os.Stdout.WriteString(seq); err != nil {
			return err
		}
	}
	fmt.Println()
	return nil
}

// sendInline emits the iTerm2-style OSC 1337 inline file sequence.
func sendInline(data []byte, format string) error {
	name := "preview.png"
	if strings.HasPrefix(strings.ToLower(format), "j") {
		name = "preview.jpg"
	}
	enc := base64.StdEncoding.EncodeToString(data)
	seq := fmt.Sprintf("\x1b]1337;File=name=%s;inline=1;size=%d:%s\a", name, len(data), enc)
	if _, err := os.Stdout.WriteString(seq); err != nil {
		return err
	}
	fmt.Println()
	return nil
}

// sendChafa pipes the blob through chafa for a block-character rendering.
func sendChafa(data []byte) error {
	if _, err := exec.LookPath("chafa"); err != nil {
		return fmt.Errorf("no preview protocol matched and chafa not found: %w", err)
	}
	cmd := exec.Command("chafa", "--fill=block", "--symbols=block", "-")
	cmd.Stdin = bytes.NewReader(data)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("chafa failed: %w", err)
	}
	return nil
}
