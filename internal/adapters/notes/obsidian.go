// Package notes builds custom-scheme URIs that hand content to a notes app.
package notes

import (
	"strings"
)

// Scheme is the Obsidian URI scheme.
const Scheme = "obsidian"

// Obsidian implements ports.NotesApp for the obsidian:// scheme.
type Obsidian struct {
	// Vault targets a named vault. Empty means the last focused vault.
	Vault string
}

// NewObsidian creates an Obsidian URI builder for vault ("" for the last focused one).
func NewObsidian(vault string) *Obsidian {
	return &Obsidian{Vault: vault}
}

// DailyAppendURI returns obsidian://daily?content=<content>&append.
func (o *Obsidian) DailyAppendURI(content string) string {
	return o.build("daily", "content="+EncodeURIComponent(content), "append")
}

// NewNoteURI returns obsidian://new?name=<name>&content=<content>.
func (o *Obsidian) NewNoteURI(name, content string) string {
	return o.build("new", "name="+EncodeURIComponent(name), "content="+EncodeURIComponent(content))
}

// OpenURI returns obsidian://open.
func (o *Obsidian) OpenURI() string {
	return o.build("open")
}

func (o *Obsidian) build(action string, params ...string) string {
	if o.Vault != "" {
		params = append(params, "vault="+EncodeURIComponent(o.Vault))
	}

	uri := Scheme + "://" + action
	if len(params) > 0 {
		uri += "?" + strings.Join(params, "&")
	}

	return uri
}

// EncodeURIComponent percent-encodes s as UTF-8, leaving only
// A-Z a-z 0-9 and - _ . ! ~ * ' ( ) unescaped. Space becomes %20.
func EncodeURIComponent(s string) string {
	const hex = "0123456789ABCDEF"

	var b strings.Builder
	b.Grow(len(s))

	for i := 0; i < len(s); i++ {
		c := s[i]
		if unreserved(c) {
			b.WriteByte(c)
			continue
		}

		b.WriteByte('%')
		b.WriteByte(hex[c>>4])
		b.WriteByte(hex[c&0x0f])
	}

	return b.String()
}

func unreserved(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	}

	return strings.IndexByte("-_.!~*'()", c) >= 0
}
