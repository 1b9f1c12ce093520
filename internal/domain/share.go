// Package domain contains core business entities and rules.
package domain

import "time"

// UntitledPage is the title used when neither a title nor usable text was shared.
const UntitledPage = "Untitled Page"

// TimestampLayout is the log timestamp format: UTC with millisecond precision.
const TimestampLayout = "2006-01-02T15:04:05.000Z"

// ShareInput holds the raw values handed over by a share sheet.
// An empty field is treated as absent.
type ShareInput struct {
	Title string
	Text  string
	URL   string
}

// HasData reports whether at least one raw field is non-empty.
func (in ShareInput) HasData() bool {
	return in.Title != "" || in.Text != "" || in.URL != ""
}

// NormalizedShare is the result of normalizing a ShareInput.
type NormalizedShare struct {
	// Title is the resolved, cleaned title.
	Title string

	// URL is the resolved link target. Empty when none was found.
	URL string

	// Markdown is "[Title](URL)" when URL is set, otherwise the raw text.
	Markdown string
}

// LogEntry records one share: the raw input alongside what was derived from it.
// The JSON shape is the one exported into notes.
type LogEntry struct {
	Timestamp   string  `json:"timestamp"`
	SharedTitle *string `json:"sharedTitle"`
	SharedText  *string `json:"sharedText"`
	SharedURL   *string `json:"sharedUrl"`
	FinalTitle  string  `json:"finalTitle"`
	FinalURL    string  `json:"finalUrl"`
}

// NewLogEntry builds a log entry for a normalization performed at the given time.
func NewLogEntry(in ShareInput, out NormalizedShare, at time.Time) LogEntry {
	return LogEntry{
		Timestamp:   at.UTC().Format(TimestampLayout),
		SharedTitle: optional(in.Title),
		SharedText:  optional(in.Text),
		SharedURL:   optional(in.URL),
		FinalTitle:  out.Title,
		FinalURL:    out.URL,
	}
}

func optional(s string) *string {
	if s == "" {
		return nil
	}

	return &s
}
