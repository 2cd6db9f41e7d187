package plot

import (
	"fmt"
	"os/exec"
	"runtime"
)

// Show opens path with the platform's default image viewer and returns
// without waiting for it.
func Show(path string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", path)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", path)
	default:
		cmd = exec.Command("xdg-open", path)
	}
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("could not start viewer for %q: %w", path, err)
	}
	return cmd.Process.Release()
}
