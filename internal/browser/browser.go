// Package browser opens URLs in the user's default browser.
package browser

import (
	"os/exec"
	"runtime"
)

// Open launches url with the platform's opener. The command is started,
// not waited on.
func Open(url string) error {
	name, args := opener(runtime.GOOS, url)
	return exec.Command(name, args...).Start()
}

func opener(goos, url string) (string, []string) {
	switch goos {
	case "darwin":
		return "open", []string{url}
	case "windows":
		return "rundll32", []string{"url.dll,FileProtocolHandler", url}
	default:
		return "xdg-open", []string{url}
	}
}
