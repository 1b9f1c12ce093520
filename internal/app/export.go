package app

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/nao1215/markdown"
	"go.opentelemetry.io/otel/attribute"

	"github.com/JAKimball/poc-pwa-share-target/internal/domain"
)

// ExportNotePrefix starts the name of an exported share log note.
const ExportNotePrefix = "Share Log - "

// ErrEmptyLog is returned by Export when there is nothing to export.
var ErrEmptyLog = domain.NewNotFoundError("share log entries", "")

// LogExport is the share log rendered as a note.
type LogExport struct {
	// Name is "Share Log - YYYY-MM-DD".
	Name string

	// Content is the log as a fenced json block, pretty-printed with two spaces.
	Content string

	// URI creates the note in the notes app.
	URI string

	// Entries is the number of exported entries.
	Entries int
}

// Export renders the share log as a note. It returns ErrEmptyLog, which
// matches domain.ErrNotFound, when the log is empty.
func (s *ShareService) Export(ctx context.Context) (*LogExport, error) {
	ctx, span := s.tracer.Start(ctx, "ShareService.Export")
	defer span.End()

	entries, err := s.List(ctx)
	if err != nil {
		return nil, err
	}

	if len(entries) == 0 {
		return nil, ErrEmptyLog
	}

	content, err := RenderLogNote(entries)
	if err != nil {
		return nil, err
	}

	name := ExportNotePrefix + s.now().UTC().Format("2006-01-02")

	span.SetAttributes(attribute.Int("share_log.entries", len(entries)))
	s.loggerFor(ctx).InfoContext(ctx, "share log exported",
		slog.String("note", name),
		slog.Int("entries", len(entries)),
	)

	return &LogExport{
		Name:    name,
		Content: content,
		URI:     s.notes.NewNoteURI(name, content),
		Entries: len(entries),
	}, nil
}

// RenderLogNote renders entries as a fenced json code block.
func RenderLogNote(entries []domain.LogEntry) (string, error) {
	var raw bytes.Buffer

	enc := json.NewEncoder(&raw)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")

	if err := enc.Encode(entries); err != nil {
		return "", fmt.Errorf("encoding share log: %w", err)
	}

	body := unescapeLineSeparators(strings.TrimSuffix(raw.String(), "\n"))

	md := markdown.NewMarkdown(io.Discard).
		CodeBlocks(markdown.SyntaxHighlightJSON, body)

	return md.String(), nil
}

// unescapeLineSeparators writes U+2028 and U+2029 raw, as JSON.stringify
// does. encoding/json escapes them even with HTML escaping off.
func unescapeLineSeparators(s string) string {
	if !strings.Contains(s, `\u202`) {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))

	for i := 0; i < len(s); i++ {
		if s[i] != '\\' || i+1 >= len(s) {
			b.WriteByte(s[i])
			continue
		}

		switch rest := s[i+1:]; {
		case strings.HasPrefix(rest, "u2028"):
			b.WriteRune('\u2028')
			i += 5
		case strings.HasPrefix(rest, "u2029"):
			b.WriteRune('\u2029')
			i += 5
		default:
			// Copy the escape pair so an escaped backslash is never
			// taken for the start of another escape.
			b.WriteByte(s[i])
			b.WriteByte(s[i+1])
			i++
		}
	}

	return b.String()
}
