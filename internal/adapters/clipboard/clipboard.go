// Package clipboard implements ports.Clipboard on top of the system clipboard.
package clipboard

import (
	"errors"
	"fmt"

	"github.com/atotto/clipboard"

	"github.com/JAKimball/poc-pwa-share-target/internal/domain"
)

// ErrUnsupported is returned when no clipboard utility is available
// (for example a headless Linux box without xclip, xsel or wl-copy).
var ErrUnsupported = errors.New("clipboard unsupported on this system")

// System writes to the operating system clipboard.
type System struct {
	write func(string) error
}

// New creates a System clipboard.
func New() *System {
	return &System{write: clipboard.WriteAll}
}

// Copy implements ports.Clipboard.
func (s *System) Copy(text string) error {
	if clipboard.Unsupported {
		return domain.WrapUnavailable("clipboard", ErrUnsupported)
	}

	if err := s.write(text); err != nil {
		return domain.WrapUnavailable("clipboard", fmt.Errorf("writing clipboard: %w", err))
	}

	return nil
}
