package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/jmontero22c/BRM-Backend/internal/transport/http/middleware"
)

func newLoggedEngine(t *testing.T) (*gin.Engine, *observer.ObservedLogs) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	core, logs := observer.New(zap.InfoLevel)

	r := gin.New()
	r.Use(middleware.RequestID(), middleware.AccessLog(zap.New(core)))
	r.GET("/ping", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": 1}) })
	return r, logs
}

// 调用方带来的请求 id 要原样回显，并出现在这次请求的访问日志里
func TestRequestIDPropagates(t *testing.T) {
	r, logs := newLoggedEngine(t)

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(middleware.HeaderRequestID, "rid-123")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, "rid-123", w.Header().Get(middleware.HeaderRequestID))

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "rid-123", entries[0].ContextMap()["rid"])
}

func TestRequestIDGeneratedWhenAbsent(t *testing.T) {
	r, logs := newLoggedEngine(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

	rid := w.Header().Get(middleware.HeaderRequestID)
	assert.NotEmpty(t, rid)

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, rid, entries[0].ContextMap()["rid"])
}
