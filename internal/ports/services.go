// Package ports defines interfaces for external dependencies.
// Ports are contracts that adapters implement, allowing the application layer
// to depend on abstractions rather than concrete implementations.
//
// Port Design Principles:
//   - Context as first parameter on anything that may block
//   - Return domain types, never storage or transport types
//   - Error returns use domain error types (ErrNotFound, ErrUnavailable, ...)
//   - Keep interfaces small and focused
package ports

import (
	"context"

	"github.com/JAKimball/poc-pwa-share-target/internal/domain"
)

// ShareLogStore is the bounded, append-only log of shares.
// Implementations keep at most Capacity() entries and evict the oldest first.
type ShareLogStore interface {
	// Append adds an entry, evicting the oldest entries beyond capacity.
	// Returns domain.ErrUnavailable if the stored log cannot be read or written.
	Append(ctx context.Context, entry domain.LogEntry) error

	// List returns all entries, oldest first.
	// Returns domain.ErrUnavailable if the stored log is unreadable or corrupted.
	List(ctx context.Context) ([]domain.LogEntry, error)

	// Clear removes every entry. Clearing an empty log is not an error.
	Clear(ctx context.Context) error

	// Capacity returns the maximum number of entries kept.
	Capacity() int
}

// NotesApp builds URIs that hand content off to a note-taking application.
// The returned URIs are navigated to by the caller; delivery is fire-and-forget.
type NotesApp interface {
	// DailyAppendURI appends content to today's daily note.
	DailyAppendURI(content string) string

	// NewNoteURI creates a note with the given name and content.
	NewNoteURI(name, content string) string

	// OpenURI opens the application.
	OpenURI() string
}

// Clipboard writes text to the system clipboard.
// Failures are reported, but callers treat them as non-fatal.
type Clipboard interface {
	Copy(text string) error
}
