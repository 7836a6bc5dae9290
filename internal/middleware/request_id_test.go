package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"go-erp/internal/middleware"
	"go-erp/internal/shared/contextutil"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/x", middleware.RequestID(), func(c *gin.Context) {
		c.String(http.StatusOK, contextutil.GetRequestID(c.Request.Context()))
	})

	t.Run("keeps caller id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/x", nil)
		req.Header.Set("X-Request-ID", "rid-1")
		w := httptest.NewRecorder()

		r.ServeHTTP(w, req)

		assert.Equal(t, "rid-1", w.Header().Get("X-Request-ID"))
		assert.Equal(t, "rid-1", w.Body.String())
	})

	t.Run("generates one", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))

		rid := w.Header().Get("X-Request-ID")
		assert.Len(t, rid, 36)
		assert.Equal(t, rid, w.Body.String())
	})

	t.Run("replaces unsafe id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/x", nil)
		req.Header.Set("X-Request-ID", "bad id\twith spaces")
		w := httptest.NewRecorder()

		r.ServeHTTP(w, req)

		assert.NotEqual(t, "bad id\twith spaces", w.Body.String())
		assert.Len(t, w.Body.String(), 36)
	})
}
