package handlers

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JAKimball/poc-pwa-share-target/internal/adapters/http/dto"
	"github.com/JAKimball/poc-pwa-share-target/internal/adapters/notes"
	"github.com/JAKimball/poc-pwa-share-target/internal/adapters/storage"
	"github.com/JAKimball/poc-pwa-share-target/internal/app"
	"github.com/JAKimball/poc-pwa-share-target/internal/ports"
)

const testMaxFieldLength = 64

func init() {
	gin.SetMode(gin.TestMode)
}

// tickingClock advances one second per reading so every entry gets a
// distinct timestamp.
type tickingClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *tickingClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now
	c.now = c.now.Add(time.Second)

	return now
}

func newTestService(t *testing.T, store ports.ShareLogStore, vault string) *app.ShareService {
	t.Helper()

	clock := &tickingClock{now: time.Date(2026, 3, 4, 4, 6, 7, 891_000_000, time.UTC)}

	return app.NewShareService(app.ShareServiceConfig{
		Store:  store,
		Notes:  notes.NewObsidian(vault),
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		Clock:  clock.Now,
	})
}

func newTestEngine(svc *app.ShareService, pageCfg PageConfig) *gin.Engine {
	engine := gin.New()

	api := engine.Group("/api/v1")
	NewShareHandler(svc, testMaxFieldLength).RegisterRoutes(api)
	NewLogHandler(svc).RegisterRoutes(api)

	if pageCfg.MaxFieldLength == 0 {
		pageCfg.MaxFieldLength = testMaxFieldLength
	}

	NewPageHandler(svc, pageCfg).RegisterRoutes(engine)

	return engine
}

func serve(engine http.Handler, method, target string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(method, target, nil))

	return w
}

func TestShareHandler_Share(t *testing.T) {
	tests := []struct {
		name      string
		query     string
		want      dto.ShareResponse
		wantCount int
	}{
		{
			name:  "url in text",
			query: "text=Check%20this%20https%3A%2F%2Fexample.com%2Fa%20out",
			want: dto.ShareResponse{
				Title:    "Check this  out",
				URL:      "https://example.com/a",
				Markdown: "[Check this  out](https://example.com/a)",
				DailyURI: "obsidian://daily?content=%5BCheck%20this%20%20out%5D(https%3A%2F%2Fexample.com%2Fa)&append",
			},
			wantCount: 1,
		},
		{
			name:  "title and url with site suffix",
			query: "title=Cool+Video+-+YouTube&url=https%3A%2F%2Fyoutu.be%2Fx",
			want: dto.ShareResponse{
				Title:    "Cool Video",
				URL:      "https://youtu.be/x",
				Markdown: "[Cool Video](https://youtu.be/x)",
				DailyURI: "obsidian://daily?content=%5BCool%20Video%5D(https%3A%2F%2Fyoutu.be%2Fx)&append",
			},
			wantCount: 1,
		},
		{
			name:  "text without url",
			query: "text=just+a+note",
			want: dto.ShareResponse{
				Title:    "just a note",
				Markdown: "just a note",
				DailyURI: "obsidian://daily?content=just%20a%20note&append",
			},
			wantCount: 1,
		},
		{
			name:  "nothing shared",
			query: "title=&text=",
			want: dto.ShareResponse{
				Title:    "Untitled Page",
				DailyURI: "obsidian://daily?content=&append",
			},
			wantCount: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := storage.NewMemoryStore(100)
			engine := newTestEngine(newTestService(t, store, ""), PageConfig{})

			w := serve(engine, http.MethodGet, "/api/v1/share?"+tt.query)

			require.Equal(t, http.StatusOK, w.Code)

			var resp dto.ShareResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, tt.want, resp)

			entries, err := store.List(t.Context())
			require.NoError(t, err)
			assert.Len(t, entries, tt.wantCount)
		})
	}
}

func TestShareHandler_FieldTooLong(t *testing.T) {
	store := storage.NewMemoryStore(100)
	engine := newTestEngine(newTestService(t, store, ""), PageConfig{})

	w := serve(engine, http.MethodGet, "/api/v1/share?title=ok&text="+strings.Repeat("a", testMaxFieldLength+1))

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, dto.ErrorCodeValidation, resp.Error.Code)
	assert.Equal(t, map[string]string{"text": "must be at most 64 characters"}, resp.Error.Details)

	entries, err := store.List(t.Context())
	require.NoError(t, err)
	assert.Empty(t, entries, "rejected shares are not logged")
}

func TestShareHandler_Send(t *testing.T) {
	store := storage.NewMemoryStore(100)
	engine := newTestEngine(newTestService(t, store, "My Notes"), PageConfig{})

	w := serve(engine, http.MethodGet, "/api/v1/share/send?title=Cool+Video+-+YouTube&url=https%3A%2F%2Fyoutu.be%2Fx")

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t,
		"obsidian://daily?content=%5BCool%20Video%5D(https%3A%2F%2Fyoutu.be%2Fx)&append&vault=My%20Notes",
		w.Header().Get("Location"),
	)

	entries, err := store.List(t.Context())
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestShareHandler_SendRejectsTooLong(t *testing.T) {
	engine := newTestEngine(newTestService(t, storage.NewMemoryStore(100), ""), PageConfig{})

	w := serve(engine, http.MethodGet, "/api/v1/share/send?url=https%3A%2F%2Fexample.com%2F"+strings.Repeat("x", testMaxFieldLength))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, w.Header().Get("Location"))
}
