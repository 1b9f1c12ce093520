package dto

import (
	"fmt"

	"github.com/JAKimball/poc-pwa-share-target/internal/domain"
)

// ShareRequest carries the share-target query parameters.
// Missing parameters bind to "" and mean "absent".
type ShareRequest struct {
	Title string `form:"title" json:"title"`
	Text  string `form:"text"  json:"text"`
	URL   string `form:"url"   json:"url"`
}

// Input converts the request to the domain input.
func (r *ShareRequest) Input() domain.ShareInput {
	return domain.ShareInput{Title: r.Title, Text: r.Text, URL: r.URL}
}

// ValidateLengths rejects any field longer than maxLen characters.
// It returns field-level messages, or nil when the request is acceptable.
func (r *ShareRequest) ValidateLengths(maxLen int) map[string]string {
	tag := fmt.Sprintf("max=%d", maxLen)

	fields := []struct {
		name  string
		value string
	}{
		{"title", r.Title},
		{"text", r.Text},
		{"url", r.URL},
	}

	var details map[string]string

	for _, f := range fields {
		err := Validator().Var(f.value, tag)
		if err == nil {
			continue
		}

		if details == nil {
			details = make(map[string]string)
		}

		msgs := ValidationErrors(err)
		for _, msg := range msgs {
			details[f.name] = msg
		}
	}

	return details
}

// ShareResponse is the normalized share.
type ShareResponse struct {
	Title    string `json:"title"`
	URL      string `json:"url"`
	Markdown string `json:"markdown"`
	DailyURI string `json:"dailyUri"`
}

// LogExportResponse is the share log rendered as a note.
type LogExportResponse struct {
	Name    string `json:"name"`
	Content string `json:"content"`
	URI     string `json:"uri"`
	Entries int    `json:"entries"`
}
