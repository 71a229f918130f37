package cmd

import (
	"os/exec"
	"runtime"

	"github.com/pterm/pterm"
)

// printSeparator prints a green separator line to the console.
// It ensures consistency in visual separation across the application.
func printSeparator() {
	pterm.Println(pterm.Green("----------------------------------------"))
}

// openLink prints the URL and tries to hand it to the system browser.
// Opening is fire-and-forget: the flow never depends on the outcome.
func openLink(url string) {
	pterm.Info.Printfln("Opening %s", url)

	var c *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		c = exec.Command("open", url)
	case "windows":
		c = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	default:
		c = exec.Command("xdg-open", url)
	}

	if err := c.Start(); err != nil {
		pterm.Debug.Printfln("could not open browser: %v", err)
	}
}
