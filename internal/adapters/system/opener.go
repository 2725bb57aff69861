// Package system adapts the desktop: default applications and the clipboard.
package system

import (
	"context"
	"fmt"
	"os/exec"
	"runtime"
)

// Opener opens files and URLs with a configured viewer or the OS default
type Opener struct {
	viewer string
	goos   string
}

// NewOpener creates an opener; an empty viewer means the OS default application
func NewOpener(viewer string) *Opener {
	return &Opener{viewer: viewer, goos: runtime.GOOS}
}

// Open starts the viewer detached so the caller can exit while it stays open
func (o *Opener) Open(ctx context.Context, target string) error {
	name, args := openCommand(o.goos, o.viewer, target)

	cmd := exec.Command(name, args...)
	if err := cmd.Start(); err != nil {
		if o.viewer != "" {
			return fmt.Errorf("failed to open '%s' with '%s': %w", target, o.viewer, err)
		}
		return fmt.Errorf("failed to open '%s': %w", target, err)
	}

	// Reap the child once it exits.
	go cmd.Wait()
	return nil
}

func openCommand(goos, viewer, target string) (string, []string) {
	if viewer != "" {
		return viewer, []string{target}
	}

	switch goos {
	case "darwin":
		return "open", []string{target}
	case "windows":
		return "cmd", []string{"/c", "start", "", target}
	default:
		return "xdg-open", []string{target}
	}
}
