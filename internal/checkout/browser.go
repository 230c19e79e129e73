package checkout

import (
	"fmt"
	"os/exec"
	"runtime"
)

// OpenBrowser tries to open url in the user's browser. Failure is
// non-fatal: callers always print the URL as well.
func OpenBrowser(url string) error {
	switch runtime.GOOS {
	case "darwin":
		return exec.Command("open", url).Start()
	case "windows":
		return exec.Command("rundll32", "url.dll,FileProtocolHandler", url).Start()
	case "linux":
		return exec.Command("xdg-open", url).Start()
	default:
		return fmt.Errorf("unsupported platform: %s", runtime.GOOS)
	}
}
