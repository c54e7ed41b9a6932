package commands

import (
	"fmt"

	"github.com/atotto/clipboard"
)

// copyToClipboard is swapped out in tests.
var copyToClipboard = func(text string) error {
	if clipboard.Unsupported {
		return fmt.Errorf("no clipboard utility available (install xsel, xclip or wl-clipboard)")
	}
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("copying to clipboard: %w", err)
	}
	return nil
}
