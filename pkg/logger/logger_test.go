package logger

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/noah-isme/trackademic-api/pkg/config"
	appErrors "github.com/noah-isme/trackademic-api/pkg/errors"
	"github.com/noah-isme/trackademic-api/pkg/middleware/requestid"
	"github.com/noah-isme/trackademic-api/pkg/response"
)

func newObservedRouter() (*gin.Engine, *observer.ObservedLogs) {
	gin.SetMode(gin.TestMode)
	core, logs := observer.New(zapcore.DebugLevel)

	r := gin.New()
	r.Use(requestid.Middleware(), GinMiddleware(zap.New(core)))
	r.GET("/api/courses/:id", func(c *gin.Context) {
		switch c.Param("id") {
		case "down":
			response.Error(c, appErrors.Internal(errors.New("server selection timeout"), "failed to load course"))
		case "missing":
			response.Error(c, appErrors.NotFound("Course", "missing"))
		default:
			response.OK(c, gin.H{"code": c.Param("id")})
		}
	})
	return r, logs
}

func TestGinMiddlewareLevels(t *testing.T) {
	cases := []struct {
		path  string
		level zapcore.Level
		code  int
	}{
		{path: "/api/courses/down", level: zapcore.ErrorLevel, code: http.StatusInternalServerError},
		{path: "/api/courses/missing", level: zapcore.WarnLevel, code: http.StatusNotFound},
		{path: "/api/courses/CS101?verbose=1", level: zapcore.InfoLevel, code: http.StatusOK},
	}

	for _, tc := range cases {
		t.Run(tc.path, func(t *testing.T) {
			r, logs := newObservedRouter()
			req := httptest.NewRequest(http.MethodGet, tc.path, nil)
			req.Header.Set(requestid.HeaderKey, "req-42")
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			require.Equal(t, tc.code, w.Code)
			entries := logs.All()
			require.Len(t, entries, 1)
			entry := entries[0]
			assert.Equal(t, tc.level, entry.Level)
			assert.Equal(t, "http_request", entry.Message)

			fields := entry.ContextMap()
			assert.Equal(t, "req-42", fields["request_id"])
			assert.Equal(t, "/api/courses/:id", fields["route"])
			assert.EqualValues(t, tc.code, fields["status"])
		})
	}
}

func TestGinMiddlewareRecordsErrors(t *testing.T) {
	r, logs := newObservedRouter()
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/courses/down", nil))

	require.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"failed to load course"}`, w.Body.String())

	fields := logs.All()[0].ContextMap()
	assert.Contains(t, fields["errors"], "server selection timeout")
	assert.NotEmpty(t, fields["request_id"])
}

func TestGinMiddlewareUnmatchedRoute(t *testing.T) {
	r, logs := newObservedRouter()
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/nowhere", nil))

	require.Equal(t, http.StatusNotFound, w.Code)
	fields := logs.All()[0].ContextMap()
	assert.Equal(t, "/nowhere", fields["route"])
}

func TestNew(t *testing.T) {
	l, err := New(&config.Config{Env: config.EnvProduction, Log: config.LogConfig{Level: "warn", Format: "json"}})
	require.NoError(t, err)
	assert.False(t, l.Core().Enabled(zapcore.InfoLevel))
	assert.True(t, l.Core().Enabled(zapcore.WarnLevel))

	l, err = New(&config.Config{Env: "development", Log: config.LogConfig{Level: "loud", Format: "console"}})
	require.NoError(t, err)
	assert.True(t, l.Core().Enabled(zapcore.InfoLevel))
	assert.False(t, l.Core().Enabled(zapcore.DebugLevel))
}
