package tray

import (
	"fmt"
	"log/slog"
	"os/exec"
	"runtime"
)

// showAlert pops a native dialog: osascript on macOS, msg on Windows,
// notify-send elsewhere. The message is also logged in case no dialog tool
// is available.
func showAlert(title, message string) {
	switch runtime.GOOS {
	case "darwin":
		script := fmt.Sprintf(`display dialog %q with title %q buttons {"OK"} default button "OK"`,
			message, title)
		_ = exec.Command("osascript", "-e", script).Start()
	case "windows":
		_ = exec.Command("msg", "*", title+"\n\n"+message).Start()
	default:
		_ = exec.Command("notify-send", title, message).Start()
	}
	slog.Error(title + ": " + message)
}
