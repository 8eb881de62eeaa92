//go:build !windows

package ui

import (
	"fmt"
	"log"
	"os/exec"
	"runtime"
)

// dialogCommand is one native dialog candidate probed on PATH.
type dialogCommand struct {
	bin  string
	args func(title, text string) []string
}

func dialogCandidates() []dialogCommand {
	if runtime.GOOS == "darwin" {
		return []dialogCommand{
			{"osascript", func(title, text string) []string {
				script := fmt.Sprintf("display dialog %q with title %q buttons {\"OK\"} default button 1", text, title)
				return []string{"-e", script}
			}},
		}
	}
	return []dialogCommand{
		{"zenity", func(title, text string) []string {
			return []string{"--info", "--title", title, "--text", text}
		}},
		{"xmessage", func(title, text string) []string {
			return []string{"-center", "-title", title, text}
		}},
	}
}

// showAlert blocks on the first native dialog tool found on PATH, degrading
// to the log when none is installed.
func showAlert(title, text string) error {
	for _, candidate := range dialogCandidates() {
		if _, err := exec.LookPath(candidate.bin); err != nil {
			continue
		}
		cmd := exec.Command(candidate.bin, candidate.args(title, text)...)
		if err := cmd.Run(); err != nil {
			log.Printf("[ui] Warning: %s failed: %v", candidate.bin, err)
			continue
		}
		return nil
	}

	log.Printf("[ui] %s\n%s", title, text)
	return nil
}
