package domain

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/nao1215/markdown"
)

// urlPattern matches an http(s) URL up to the next whitespace character.
// The negated class spells out the whitespace set share sheets are
// written against, which is wider than RE2's ASCII-only \s.
var urlPattern = regexp.MustCompile(
	`https?://[^\t\n\v\f\r \x{00a0}\x{1680}\x{2000}-\x{200a}\x{2028}\x{2029}\x{202f}\x{205f}\x{3000}\x{feff}]+`,
)

// DefaultSiteSuffixes are title suffixes that apps append to page titles.
var DefaultSiteSuffixes = []string{" - YouTube"}

// Normalizer turns raw share input into a Markdown link.
// The zero value strips no site suffixes.
type Normalizer struct {
	// SiteSuffixes are removed (once) from the end of a resolved title.
	SiteSuffixes []string
}

// NewNormalizer creates a Normalizer stripping the given site suffixes.
func NewNormalizer(siteSuffixes ...string) *Normalizer {
	return &Normalizer{SiteSuffixes: siteSuffixes}
}

var defaultNormalizer = NewNormalizer(DefaultSiteSuffixes...)

// Normalize normalizes input with DefaultSiteSuffixes.
func Normalize(in ShareInput) NormalizedShare {
	return defaultNormalizer.Normalize(in)
}

// Normalize resolves the link target and title of a share and renders them
// as Markdown. It performs no I/O and always succeeds.
func (n *Normalizer) Normalize(in ShareInput) NormalizedShare {
	link := ResolveURL(in)
	title := n.cleanTitle(resolveTitle(in, link))

	out := NormalizedShare{
		Title:    title,
		URL:      link,
		Markdown: in.Text,
	}
	if link != "" {
		out.Markdown = markdown.Link(title, link)
	}

	return out
}

// ResolveURL returns the dedicated url field when set, otherwise the first
// http(s) URL found in the text, otherwise "".
func ResolveURL(in ShareInput) string {
	if in.URL != "" {
		return in.URL
	}

	if in.Text == "" {
		return ""
	}

	return urlPattern.FindString(in.Text)
}

// resolveTitle picks the title before cleanup. Text is only used when it is
// more than the bare link, with the link itself cut out.
func resolveTitle(in ShareInput, link string) string {
	switch {
	case in.Title != "":
		return in.Title
	case in.Text != "" && in.Text != link:
		if link != "" {
			return trimSpace(strings.Replace(in.Text, link, "", 1))
		}

		return trimSpace(in.Text)
	default:
		return UntitledPage
	}
}

// cleanTitle drops trailing separators, then a known site suffix, then any
// separators the suffix left behind.
func (n *Normalizer) cleanTitle(title string) string {
	title = trimSeparators(title)

	for _, suffix := range n.SiteSuffixes {
		if suffix != "" && strings.HasSuffix(title, suffix) {
			return trimSeparators(strings.TrimSuffix(title, suffix))
		}
	}

	return title
}

func trimSeparators(s string) string {
	return strings.TrimRightFunc(s, func(r rune) bool {
		return r == '-' || isSpace(r)
	})
}

func trimSpace(s string) string {
	return strings.TrimFunc(s, isSpace)
}

// isSpace reports whether r is whitespace for share-sheet text: Unicode
// White_Space except NEL, plus the byte order mark.
func isSpace(r rune) bool {
	if r == '\u0085' {
		return false
	}

	return r == '\ufeff' || unicode.IsSpace(r)
}
