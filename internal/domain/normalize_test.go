package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		input    ShareInput
		expected NormalizedShare
	}{
		{
			name:  "all inputs absent",
			input: ShareInput{},
			expected: NormalizedShare{
				Title:    UntitledPage,
				URL:      "",
				Markdown: "",
			},
		},
		{
			name:  "title and url",
			input: ShareInput{Title: "Go Blog", URL: "https://go.dev/blog"},
			expected: NormalizedShare{
				Title:    "Go Blog",
				URL:      "https://go.dev/blog",
				Markdown: "[Go Blog](https://go.dev/blog)",
			},
		},
		{
			name:  "url embedded in text keeps the removal gap",
			input: ShareInput{Text: "Check this https://example.com/a out"},
			expected: NormalizedShare{
				Title:    "Check this  out",
				URL:      "https://example.com/a",
				Markdown: "[Check this  out](https://example.com/a)",
			},
		},
		{
			name:  "youtube suffix stripped",
			input: ShareInput{Title: "Cool Video - YouTube", URL: "https://youtu.be/x"},
			expected: NormalizedShare{
				Title:    "Cool Video",
				URL:      "https://youtu.be/x",
				Markdown: "[Cool Video](https://youtu.be/x)",
			},
		},
		{
			name:  "youtube suffix followed by whitespace",
			input: ShareInput{Title: "Cool Video - YouTube \u00a0", URL: "https://youtu.be/x"},
			expected: NormalizedShare{
				Title:    "Cool Video",
				URL:      "https://youtu.be/x",
				Markdown: "[Cool Video](https://youtu.be/x)",
			},
		},
		{
			name:  "youtube suffix followed by a dash",
			input: ShareInput{Title: "Cool Video - YouTube -", URL: "https://youtu.be/x"},
			expected: NormalizedShare{
				Title:    "Cool Video",
				URL:      "https://youtu.be/x",
				Markdown: "[Cool Video](https://youtu.be/x)",
			},
		},
		{
			name:  "trailing separators stripped",
			input: ShareInput{Title: "Some Article -  ", URL: "https://example.com"},
			expected: NormalizedShare{
				Title:    "Some Article",
				URL:      "https://example.com",
				Markdown: "[Some Article](https://example.com)",
			},
		},
		{
			name:  "text is only the url",
			input: ShareInput{Text: "https://example.com/only"},
			expected: NormalizedShare{
				Title:    UntitledPage,
				URL:      "https://example.com/only",
				Markdown: "[Untitled Page](https://example.com/only)",
			},
		},
		{
			name:  "text without url",
			input: ShareInput{Text: "  just a thought  "},
			expected: NormalizedShare{
				Title:    "just a thought",
				URL:      "",
				Markdown: "  just a thought  ",
			},
		},
		{
			name:  "url field wins over url in text",
			input: ShareInput{Text: "see https://a.example/one", URL: "https://b.example/two"},
			expected: NormalizedShare{
				Title:    "see https://a.example/one",
				URL:      "https://b.example/two",
				Markdown: "[see https://a.example/one](https://b.example/two)",
			},
		},
		{
			name:  "only first of multiple urls extracted",
			input: ShareInput{Text: "a http://one.example b https://two.example"},
			expected: NormalizedShare{
				Title:    "a  b https://two.example",
				URL:      "http://one.example",
				Markdown: "[a  b https://two.example](http://one.example)",
			},
		},
		{
			name:  "title present ignores text",
			input: ShareInput{Title: "Headline", Text: "Body https://news.example/1"},
			expected: NormalizedShare{
				Title:    "Headline",
				URL:      "https://news.example/1",
				Markdown: "[Headline](https://news.example/1)",
			},
		},
		{
			name:  "title of separators only",
			input: ShareInput{Title: " - ", URL: "https://example.com"},
			expected: NormalizedShare{
				Title:    "",
				URL:      "https://example.com",
				Markdown: "[](https://example.com)",
			},
		},
		{
			name:  "non-breaking space ends the url",
			input: ShareInput{Text: "Read https://example.com/x\u00a0now"},
			expected: NormalizedShare{
				Title:    "Read \u00a0now",
				URL:      "https://example.com/x",
				Markdown: "[Read \u00a0now](https://example.com/x)",
			},
		},
		{
			name:  "url only in url field",
			input: ShareInput{URL: "https://example.com/page"},
			expected: NormalizedShare{
				Title:    UntitledPage,
				URL:      "https://example.com/page",
				Markdown: "[Untitled Page](https://example.com/page)",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Normalize(tt.input))
		})
	}
}

func TestNormalize_URLFieldHasPriority(t *testing.T) {
	inputs := []ShareInput{
		{URL: "https://x.example", Text: "https://y.example"},
		{URL: "not even a url", Text: "https://y.example"},
		{URL: "https://x.example", Title: "t"},
	}

	for _, in := range inputs {
		assert.Equal(t, in.URL, Normalize(in).URL)
	}
}

func TestNormalizer_NoSuffixes(t *testing.T) {
	n := &Normalizer{}

	out := n.Normalize(ShareInput{Title: "Cool Video - YouTube", URL: "https://youtu.be/x"})

	assert.Equal(t, "Cool Video - YouTube", out.Title)
}

func TestNormalizer_CustomSuffixes(t *testing.T) {
	n := NewNormalizer(" | Medium", " - YouTube")

	out := n.Normalize(ShareInput{Title: "Essay | Medium", URL: "https://medium.com/p/1"})

	assert.Equal(t, "[Essay](https://medium.com/p/1)", out.Markdown)
}

func TestResolveURL(t *testing.T) {
	assert.Equal(t, "", ResolveURL(ShareInput{}))
	assert.Equal(t, "", ResolveURL(ShareInput{Text: "no links here"}))
	assert.Equal(t, "https://a.example/p?q=1", ResolveURL(ShareInput{Text: "x https://a.example/p?q=1\ty"}))
	assert.Equal(t, "", ResolveURL(ShareInput{Text: "ftp://files.example"}))
}

func TestShareInput_HasData(t *testing.T) {
	assert.False(t, ShareInput{}.HasData())
	assert.True(t, ShareInput{Title: "t"}.HasData())
	assert.True(t, ShareInput{Text: "t"}.HasData())
	assert.True(t, ShareInput{URL: "u"}.HasData())
}
