package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEngine() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Recovery(), CORS())
	r.NoRoute(NotFound)
	r.GET("/ok", func(c *gin.Context) { c.String(http.StatusOK, "ok") })
	r.GET("/panic", func(*gin.Context) { panic("bad state") })
	return r
}

func serve(r http.Handler, method, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(method, path, nil)
	req.Header.Set("Origin", "http://localhost:5173") // Cross-origin browser client
	if method == http.MethodOptions {
		req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	}
	r.ServeHTTP(w, req)
	return w
}

func TestCORS(t *testing.T) {
	r := newEngine()

	w := serve(r, http.MethodGet, "/ok")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))

	w = serve(r, http.MethodOptions, "/ok")
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Contains(t, w.Header().Get("Access-Control-Allow-Methods"), "POST")
	assert.Contains(t, w.Header().Get("Access-Control-Allow-Headers"), "Content-Type")

	// Same-origin requests get no CORS headers
	same := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/ok", nil)
	r.ServeHTTP(same, req)
	assert.Equal(t, http.StatusOK, same.Code)
	assert.Empty(t, same.Header().Get("Access-Control-Allow-Origin"))
}

func TestRecovery(t *testing.T) {
	w := serve(newEngine(), http.MethodGet, "/panic")
	require.Equal(t, http.StatusInternalServerError, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "SC500", body["statusCode"])
	assert.Equal(t, "Internal server error", body["statusDesc"])
	assert.Equal(t, "bad state", body["error"])
}

func TestNotFound(t *testing.T) {
	w := serve(newEngine(), http.MethodGet, "/missing")
	require.Equal(t, http.StatusNotFound, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "SC404", body["statusCode"])
	assert.Equal(t, "Route not found", body["statusDesc"])
}
