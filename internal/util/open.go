package util

import (
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// OpenInHostBrowser launches the command named by $BROWSER with the given
// URL. Returns false with a hint printed when $BROWSER is unset.
func OpenInHostBrowser(url string) bool {
	browserCmd := strings.TrimSpace(os.Getenv("BROWSER"))
	if browserCmd == "" {
		fmt.Println("Set $BROWSER to a command like xdg-open to auto-open the link.")
		return false
	}

	parts := strings.Fields(browserCmd)
	args := append(parts[1:], url)

	cmd := exec.Command(parts[0], args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Start(); err != nil {
		fmt.Printf("Failed to open %s via $BROWSER: %v\n", url, err)
		return false
	}

	_ = cmd.Process.Release()
	return true
}
