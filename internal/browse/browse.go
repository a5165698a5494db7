// Package browse reveals scan results in the platform file browser.
package browse

import (
	"fmt"

	"github.com/pkg/browser"
)

// Reveal opens path with the platform handler (xdg-open, open, or the
// Windows shell). Failure here never affects scan results; callers
// report it as a warning.
func Reveal(path string) error {
	if err := browser.OpenFile(path); err != nil {
		return fmt.Errorf("opening %q: %w", path, err)
	}

	return nil
}
