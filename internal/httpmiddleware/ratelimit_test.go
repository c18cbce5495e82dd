package httpmiddleware_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"rollcall/internal/httpmiddleware"
)

func TestSimpleTokenBucket_LimitsPerIP(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(httpmiddleware.NewSimpleTokenBucket(2, 2).GinMiddleware())
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	get := func(ip string) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.RemoteAddr = ip + ":12345"
		r.ServeHTTP(w, req)
		return w
	}

	for i := 0; i < 2; i++ {
		if w := get("10.0.0.1"); w.Code != http.StatusOK {
			t.Fatalf("request %d = %d, want %d", i+1, w.Code, http.StatusOK)
		}
	}

	w := get("10.0.0.1")
	if w.Code != http.StatusTooManyRequests {
		t.Fatalf("over-limit request = %d, want %d", w.Code, http.StatusTooManyRequests)
	}
	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode 429 body: %v", err)
	}
	if body["error"] == "" {
		t.Error("429 body should carry an error message")
	}

	// A different client still has a full bucket.
	if w := get("10.0.0.2"); w.Code != http.StatusOK {
		t.Errorf("other IP = %d, want %d", w.Code, http.StatusOK)
	}
}
