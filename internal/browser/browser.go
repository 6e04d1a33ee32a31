package browser

import (
	"fmt"
	"net/url"
	"os/exec"
	"runtime"
)

// Launcher opens URLs in the system browser.
type Launcher struct {
	command  string
	disabled bool
}

// New creates a launcher. command overrides the per-OS default; a
// disabled launcher refuses every Open call.
func New(command string, disabled bool) *Launcher {
	return &Launcher{command: command, disabled: disabled}
}

// Open launches the system browser on rawURL without waiting for it.
// Only http and https URLs are accepted. Callers surface a failure as a
// popup-blocked diagnostic; generation output stays valid regardless.
func (l *Launcher) Open(rawURL string) error {
	if l.disabled {
		return fmt.Errorf("browser launching disabled")
	}

	u, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("parse url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("refusing to open %q scheme", u.Scheme)
	}

	var cmd *exec.Cmd
	if l.command != "" {
		cmd = exec.Command(l.command, rawURL)
	} else {
		switch runtime.GOOS {
		case "darwin":
			cmd = exec.Command("open", rawURL)
		case "linux":
			cmd = exec.Command("xdg-open", rawURL)
		case "windows":
			cmd = exec.Command("cmd", "/c", "start", rawURL)
		default:
			return fmt.Errorf("browser opening not supported on %s", runtime.GOOS)
		}
	}
	return cmd.Start() // Don't wait for browser to close
}
