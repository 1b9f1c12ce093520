package middleware

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JAKimball/poc-pwa-share-target/internal/adapters/http/dto"
	"github.com/JAKimball/poc-pwa-share-target/internal/platform/logging"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newBufferLogger() (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})), &buf
}

func logLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()

	var lines []map[string]any

	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}

		var m map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &m))
		lines = append(lines, m)
	}

	return lines
}

func TestIDMiddleware(t *testing.T) {
	tests := []struct {
		name       string
		middleware gin.HandlerFunc
		header     string
		get        func(*gin.Context) string
		logKey     string
	}{
		{"request id", RequestID(), HeaderRequestID, GetRequestID, "request_id"},
		{"correlation id", CorrelationID(), HeaderCorrelationID, GetCorrelationID, "correlation_id"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cases := []struct {
				name     string
				incoming string
				keep     bool
			}{
				{"generated when absent", "", false},
				{"propagated", "share-42", true},
				{"replaced when too long", strings.Repeat("x", maxIDLength+1), false},
				{"replaced when not printable", "a\nb", false},
			}

			for _, tc := range cases {
				t.Run(tc.name, func(t *testing.T) {
					logger, buf := newBufferLogger()

					var got string

					router := gin.New()
					router.Use(ContextLogger(logger), tt.middleware)
					router.GET("/share", func(c *gin.Context) {
						got = tt.get(c)
						logging.FromContext(c.Request.Context()).Info("inside")
						c.Status(http.StatusOK)
					})

					req := httptest.NewRequest(http.MethodGet, "/share", nil)
					if tc.incoming != "" {
						req.Header.Set(tt.header, tc.incoming)
					}

					w := httptest.NewRecorder()
					router.ServeHTTP(w, req)

					assert.Equal(t, got, w.Header().Get(tt.header))

					if tc.keep {
						assert.Equal(t, tc.incoming, got)
					} else {
						_, err := uuid.Parse(got)
						assert.NoError(t, err, "expected a generated UUID, got %q", got)
					}

					lines := logLines(t, buf)
					require.Len(t, lines, 1)
					assert.Equal(t, got, lines[0][tt.logKey])
				})
			}
		})
	}
}

func TestGetIDs_NotSet(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	assert.Empty(t, GetRequestID(c))
	assert.Empty(t, GetCorrelationID(c))
}

func TestLogging(t *testing.T) {
	logger, buf := newBufferLogger()

	router := gin.New()
	router.Use(ContextLogger(logger), RequestID(), Logging("/favicon.ico"))
	router.GET("/api/v1/share", func(c *gin.Context) { c.String(http.StatusOK, "ok") })
	router.GET("/api/v1/log", func(c *gin.Context) { c.Status(http.StatusBadRequest) })
	router.GET("/-/live", func(c *gin.Context) { c.Status(http.StatusOK) })
	router.GET("/favicon.ico", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	for _, target := range []string{"/api/v1/share?title=secret+title&url=https%3A%2F%2Fprivate.example", "/-/live", "/favicon.ico"} {
		router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, target, nil))
	}

	assert.NotContains(t, buf.String(), "secret")
	assert.NotContains(t, buf.String(), "private.example")

	lines := logLines(t, buf)
	require.Len(t, lines, 2, "probe and skipped paths are not logged")

	started, completed := lines[0], lines[1]
	assert.Equal(t, "request started", started["msg"])
	assert.Equal(t, "/api/v1/share", started["path"])
	assert.InDelta(t, float64(len("title=secret+title&url=https%3A%2F%2Fprivate.example")), started["query_bytes"], 0)
	assert.NotEmpty(t, started["request_id"])

	assert.Equal(t, "request completed", completed["msg"])
	assert.Equal(t, "INFO", completed["level"])
	assert.Equal(t, "/api/v1/share", completed["route"])
	assert.InDelta(t, float64(http.StatusOK), completed["status"], 0)
	assert.InDelta(t, 2.0, completed["bytes"], 0)

	buf.Reset()
	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/v1/log?limit=0", nil))

	lines = logLines(t, buf)
	require.Len(t, lines, 2)
	assert.Equal(t, "WARN", lines[1]["level"])
}

func TestRecovery(t *testing.T) {
	logger, buf := newBufferLogger()

	router := gin.New()
	router.Use(ContextLogger(logger), Recovery())
	router.GET("/panic", func(*gin.Context) { panic("share log corrupted") })

	req := httptest.NewRequest(http.MethodGet, "/panic", nil)
	req.Header.Set(HeaderRequestID, "req-7")

	w := httptest.NewRecorder()
	require.NotPanics(t, func() { router.ServeHTTP(w, req) })

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, dto.ErrorCodeInternal, resp.Error.Code)
	assert.NotContains(t, resp.Error.Message, "corrupted")
	assert.Equal(t, "req-7", resp.TraceID)

	lines := logLines(t, buf)
	require.Len(t, lines, 1)
	assert.Equal(t, "panic recovered", lines[0]["msg"])
	assert.Equal(t, "share log corrupted", lines[0]["error"])
	assert.Contains(t, lines[0]["stack"], "runtime/debug.Stack")
}

func TestRecovery_AfterWrite(t *testing.T) {
	router := gin.New()
	router.Use(ContextLogger(slog.New(slog.NewTextHandler(io.Discard, nil))), Recovery())
	router.GET("/panic", func(c *gin.Context) {
		c.String(http.StatusOK, "partial")
		panic("late")
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/panic", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "partial", w.Body.String())
}

func TestTimeout(t *testing.T) {
	t.Run("sets deadline", func(t *testing.T) {
		var hasDeadline bool

		router := gin.New()
		router.Use(Timeout(time.Second))
		router.GET("/api/v1/log", func(c *gin.Context) {
			_, hasDeadline = c.Request.Context().Deadline()
			c.Status(http.StatusOK)
		})

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/log", nil))

		assert.True(t, hasDeadline)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("writes 504 when the handler gave up silently", func(t *testing.T) {
		router := gin.New()
		router.Use(Timeout(10 * time.Millisecond))
		router.GET("/api/v1/log", func(c *gin.Context) {
			<-c.Request.Context().Done()
		})

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/log", nil))

		assert.Equal(t, http.StatusGatewayTimeout, w.Code)
		assert.Contains(t, w.Body.String(), dto.ErrorCodeTimeout)
	})

	t.Run("keeps the handler's own response", func(t *testing.T) {
		router := gin.New()
		router.Use(Timeout(10 * time.Millisecond))
		router.GET("/api/v1/log", func(c *gin.Context) {
			<-c.Request.Context().Done()
			c.Status(http.StatusServiceUnavailable)
			c.Writer.WriteHeaderNow()
		})

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/log", nil))

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	})
}

func TestMaxBodySize(t *testing.T) {
	var readErr error

	router := gin.New()
	router.Use(MaxBodySize(8))
	router.POST("/echo", func(c *gin.Context) {
		_, readErr = io.ReadAll(c.Request.Body)
		c.Status(http.StatusOK)
	})

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/echo", strings.NewReader(strings.Repeat("x", 9))))

	var maxErr *http.MaxBytesError
	assert.ErrorAs(t, readErr, &maxErr)
}
