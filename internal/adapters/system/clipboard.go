package system

import (
	"fmt"

	"github.com/atotto/clipboard"
)

// Clipboard writes to the system clipboard
type Clipboard struct{}

// NewClipboard creates a clipboard adapter
func NewClipboard() *Clipboard {
	return &Clipboard{}
}

// WriteAll replaces the clipboard contents
func (c *Clipboard) WriteAll(text string) error {
	if clipboard.Unsupported {
		return fmt.Errorf("no clipboard utility available (install xclip, xsel or wl-clipboard)")
	}
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("failed to write clipboard: %w", err)
	}
	return nil
}
