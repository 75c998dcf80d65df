package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func traceIDRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(TraceIDMiddleware())
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusNoContent) })
	return r
}

func TestTraceIDMiddlewareHonorsCallerID(t *testing.T) {
	r := traceIDRouter()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Trace-ID", "guest-abc-123")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if got := w.Header().Get("X-Trace-ID"); got != "guest-abc-123" {
		t.Errorf("trace id = %q, want the caller's id echoed back", got)
	}
}

func TestTraceIDMiddlewareGeneratesID(t *testing.T) {
	r := traceIDRouter()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	if w.Header().Get("X-Trace-ID") == "" {
		t.Error("response is missing a generated trace id")
	}
}
