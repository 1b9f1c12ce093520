package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JAKimball/poc-pwa-share-target/internal/adapters/storage"
	"github.com/JAKimball/poc-pwa-share-target/internal/domain"
	"github.com/JAKimball/poc-pwa-share-target/internal/mocks"
)

var fixedNow = time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)

// opener records the URIs handed to the notes app.
type opener struct {
	uris []string
	err  error
}

func (o *opener) launch(_ context.Context, uri string) error {
	o.uris = append(o.uris, uri)
	return o.err
}

type result struct {
	stdout string
	stderr string
	err    error
}

// execute runs sharectl against a temporary config directory holding
// baseYAML as base.yaml.
func execute(t *testing.T, opts Options, baseYAML, stdin string, args ...string) result {
	t.Helper()

	dir := t.TempDir()
	if baseYAML != "" {
		require.NoError(t, os.WriteFile(filepath.Join(dir, "base.yaml"), []byte(baseYAML), 0o600))
	}

	if opts.LogOutput == nil {
		opts.LogOutput = io.Discard
	}

	if opts.Clock == nil {
		opts.Clock = func() time.Time { return fixedNow }
	}

	var stdout, stderr bytes.Buffer

	cmd := NewRootCmd(opts)
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(append([]string{"--config-dir", dir, "--profile", ""}, args...))

	err := cmd.ExecuteContext(context.Background())

	return result{stdout: stdout.String(), stderr: stderr.String(), err: err}
}

func listEntries(t *testing.T, store storage.Store) []domain.LogEntry {
	t.Helper()

	entries, err := store.List(context.Background())
	require.NoError(t, err)

	return entries
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{
			name: "title and url",
			args: []string{"--title", "Cool Video - YouTube", "--url", "https://youtu.be/x"},
			want: "[Cool Video](https://youtu.be/x)\n",
		},
		{
			name: "url found in text",
			args: []string{"--text", "Check this https://example.com/a out"},
			want: "[Check this  out](https://example.com/a)\n",
		},
		{
			name: "text without url",
			args: []string{"--text", "just a thought"},
			want: "just a thought\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := storage.NewMemoryStore(0)

			r := execute(t, Options{Store: store}, "", "", append([]string{"normalize"}, tt.args...)...)

			require.NoError(t, r.err)
			assert.Equal(t, tt.want, r.stdout)
			assert.Len(t, listEntries(t, store), 1)
		})
	}
}

func TestNormalizeJSON(t *testing.T) {
	store := storage.NewMemoryStore(0)

	r := execute(t, Options{Store: store}, "", "",
		"normalize", "--title", "Go", "--url", "https://go.dev", "--json")
	require.NoError(t, r.err)

	var got shareJSON
	require.NoError(t, json.Unmarshal([]byte(r.stdout), &got))

	assert.Equal(t, "Go", got.Title)
	assert.Equal(t, "https://go.dev", got.URL)
	assert.Equal(t, "[Go](https://go.dev)", got.Markdown)
	assert.Equal(t, "obsidian://daily?content=%5BGo%5D(https%3A%2F%2Fgo.dev)&append", got.DailyURI)
	assert.True(t, got.Logged)
}

func TestNormalizeCopy(t *testing.T) {
	t.Run("copied", func(t *testing.T) {
		clip := mocks.NewMockClipboard(t)
		clip.EXPECT().Copy("[Go](https://go.dev)").Return(nil)

		r := execute(t, Options{Store: storage.NewMemoryStore(0), Clipboard: clip}, "", "",
			"normalize", "--title", "Go", "--url", "https://go.dev", "--copy")

		require.NoError(t, r.err)
		assert.Contains(t, r.stderr, "Copied!")
	})

	t.Run("copy failure is reported, not returned", func(t *testing.T) {
		clip := mocks.NewMockClipboard(t)
		clip.EXPECT().Copy("[Go](https://go.dev)").Return(errors.New("no clipboard"))

		r := execute(t, Options{Store: storage.NewMemoryStore(0), Clipboard: clip}, "", "",
			"normalize", "--title", "Go", "--url", "https://go.dev", "--copy")

		require.NoError(t, r.err)
		assert.Equal(t, "[Go](https://go.dev)\n", r.stdout)
		assert.Contains(t, r.stderr, "copy failed: no clipboard")
		assert.NotContains(t, r.stderr, "Copied!")
	})
}

func TestNormalizeSend(t *testing.T) {
	t.Run("targets the configured vault", func(t *testing.T) {
		open := &opener{}

		r := execute(t, Options{Store: storage.NewMemoryStore(0), Launch: open.launch},
			"notes:\n  vault: My Notes\n", "",
			"normalize", "--title", "Go", "--url", "https://go.dev", "--send")

		require.NoError(t, r.err)
		require.Len(t, open.uris, 1)
		assert.Equal(t,
			"obsidian://daily?content=%5BGo%5D(https%3A%2F%2Fgo.dev)&append&vault=My%20Notes",
			open.uris[0])
	})

	t.Run("copies first when configured", func(t *testing.T) {
		open := &opener{}
		clip := mocks.NewMockClipboard(t)
		clip.EXPECT().Copy("[Go](https://go.dev)").Return(nil).Once()

		r := execute(t, Options{Store: storage.NewMemoryStore(0), Launch: open.launch, Clipboard: clip},
			"notes:\n  copy_before_send: true\n  send_delay: 0s\n", "",
			"normalize", "--title", "Go", "--url", "https://go.dev", "--send")

		require.NoError(t, r.err)
		assert.Len(t, open.uris, 1)
	})

	t.Run("launch failure", func(t *testing.T) {
		open := &opener{err: errors.New("xdg-open: not found")}

		r := execute(t, Options{Store: storage.NewMemoryStore(0), Launch: open.launch}, "", "",
			"normalize", "--text", "hello", "--send")

		require.Error(t, r.err)
		assert.Contains(t, r.err.Error(), "sending to daily note")
		assert.Equal(t, "hello\n", r.stdout)
	})
}

func TestLogList(t *testing.T) {
	store := storage.NewMemoryStore(0)

	r := execute(t, Options{Store: store}, "", "", "log", "list")
	require.NoError(t, r.err)
	assert.Equal(t, "No log entries.\n", r.stdout)

	require.NoError(t, execute(t, Options{Store: store}, "", "", "normalize", "--title", "Go", "--url", "https://go.dev").err)
	require.NoError(t, execute(t, Options{Store: store}, "", "", "normalize", "--text", "a note").err)

	r = execute(t, Options{Store: store}, "", "", "log", "list")
	require.NoError(t, r.err)

	lines := strings.Split(strings.TrimSpace(r.stdout), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "2024-03-01T09:30:00.000Z  Go  https://go.dev", lines[0])
	assert.True(t, strings.HasSuffix(lines[1], "  -"), "entry without url: %q", lines[1])

	r = execute(t, Options{Store: store}, "", "", "log", "list", "--json")
	require.NoError(t, r.err)

	var entries []domain.LogEntry
	require.NoError(t, json.Unmarshal([]byte(r.stdout), &entries))
	require.Len(t, entries, 2)
	assert.Equal(t, "Go", entries[0].FinalTitle)
	assert.Nil(t, entries[0].SharedText)
}

func TestLogListJSONEmpty(t *testing.T) {
	r := execute(t, Options{Store: storage.NewMemoryStore(0)}, "", "", "log", "list", "--json")

	require.NoError(t, r.err)
	assert.Equal(t, "[]\n", r.stdout)
}

func TestLogExport(t *testing.T) {
	t.Run("empty log", func(t *testing.T) {
		open := &opener{}

		r := execute(t, Options{Store: storage.NewMemoryStore(0), Launch: open.launch}, "", "",
			"log", "export", "--send")

		require.NoError(t, r.err)
		assert.Equal(t, "No log entries to export.\n", r.stdout)
		assert.Empty(t, open.uris)
	})

	t.Run("prints and sends the note", func(t *testing.T) {
		store := storage.NewMemoryStore(0)
		open := &opener{}

		require.NoError(t, execute(t, Options{Store: store}, "", "", "normalize", "--title", "Go", "--url", "https://go.dev").err)

		r := execute(t, Options{Store: store, Launch: open.launch}, "", "", "log", "export", "--send")
		require.NoError(t, r.err)

		assert.True(t, strings.HasPrefix(r.stdout, "```json\n"), r.stdout)
		assert.Contains(t, r.stdout, `"finalUrl": "https://go.dev"`)
		assert.Contains(t, r.stderr, `Sent "Share Log - 2024-03-01" (1 entries)`)

		require.Len(t, open.uris, 1)
		assert.True(t, strings.HasPrefix(open.uris[0], "obsidian://new?name=Share%20Log%20-%202024-03-01&content=%60%60%60json"))
	})

	t.Run("rendered", func(t *testing.T) {
		store := storage.NewMemoryStore(0)
		require.NoError(t, execute(t, Options{Store: store}, "", "", "normalize", "--title", "Go", "--url", "https://go.dev").err)

		r := execute(t, Options{Store: store}, "", "", "log", "export", "--render")

		require.NoError(t, r.err)
		assert.Contains(t, r.stdout, "finalTitle")
		assert.NotContains(t, r.stdout, "```")
	})
}

func TestLogClear(t *testing.T) {
	tests := []struct {
		name        string
		args        []string
		stdin       string
		wantCleared bool
	}{
		{name: "confirmed with flag", args: []string{"--yes"}, wantCleared: true},
		{name: "confirmed at prompt", stdin: "y\n", wantCleared: true},
		{name: "declined at prompt", stdin: "n\n", wantCleared: false},
		{name: "no answer", stdin: "", wantCleared: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := storage.NewMemoryStore(0)
			require.NoError(t, execute(t, Options{Store: store}, "", "", "normalize", "--text", "x").err)

			r := execute(t, Options{Store: store}, "", tt.stdin, append([]string{"log", "clear"}, tt.args...)...)
			require.NoError(t, r.err)

			if tt.wantCleared {
				assert.Contains(t, r.stdout, "Log cleared.")
				assert.Empty(t, listEntries(t, store))
			} else {
				assert.NotContains(t, r.stdout, "Log cleared.")
				assert.Len(t, listEntries(t, store), 1)
			}

			if len(tt.args) == 0 {
				assert.Contains(t, r.stdout, "Clear all log entries? [y/N]")
			}
		})
	}
}

func TestOpen(t *testing.T) {
	open := &opener{}

	r := execute(t, Options{Store: storage.NewMemoryStore(0), Launch: open.launch},
		"notes:\n  vault: work\n", "", "open")

	require.NoError(t, r.err)
	assert.Equal(t, []string{"obsidian://open?vault=work"}, open.uris)
}

func TestConfiguredStore(t *testing.T) {
	r := execute(t, Options{}, "store:\n  driver: memory\n", "", "normalize", "--text", "hello")

	require.NoError(t, r.err)
	assert.Equal(t, "hello\n", r.stdout)
}

func TestInvalidConfig(t *testing.T) {
	r := execute(t, Options{}, "store:\n  driver: bogus\n", "", "log", "list")

	require.Error(t, r.err)
	assert.Contains(t, r.err.Error(), "invalid config")
}

func TestConfirm(t *testing.T) {
	for answer, want := range map[string]bool{
		"y\n":    true,
		"YES\n":  true,
		" y \n":  true,
		"n\n":    false,
		"":       false,
		"maybe":  false,
		"yes":    true,
		"no\nyes": false,
	} {
		var out bytes.Buffer
		assert.Equal(t, want, confirm(strings.NewReader(answer), &out, "Sure?"), "answer %q", answer)
		assert.Equal(t, "Sure? [y/N] ", out.String())
	}
}
