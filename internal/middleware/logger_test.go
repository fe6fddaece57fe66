package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/b3charts/internal/logger"
)

func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	logger.Configure("debug", false, &buf)
	t.Cleanup(logger.Init)
	return &buf
}

func TestRequestLogger_Levels(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cases := []struct {
		path   string
		status int
		level  string
	}{
		{"/ok?periodo=3mo", http.StatusOK, "info"},
		{"/missing", http.StatusNotFound, "warn"},
		{"/broken", http.StatusBadGateway, "error"},
	}
	for _, tc := range cases {
		t.Run(tc.path, func(t *testing.T) {
			buf := captureLogs(t)
			r := gin.New()
			r.Use(RequestID(), RequestLogger())
			r.GET("/:name", func(c *gin.Context) { c.Status(tc.status) })

			w := serve(r, http.MethodGet, tc.path, nil)

			var line map[string]any
			if err := json.Unmarshal(buf.Bytes(), &line); err != nil {
				t.Fatalf("log line %q: %v", buf.String(), err)
			}
			if line["level"] != tc.level || int(line["status"].(float64)) != tc.status {
				t.Fatalf("unexpected log line %v", line)
			}
			if line["path"] != tc.path || line["route"] != "/:name" {
				t.Fatalf("path/route not logged: %v", line)
			}
			if line["request_id"] != w.Header().Get(RequestIDHeader) {
				t.Fatalf("request id mismatch: %v", line)
			}
		})
	}
}

func TestRequestLogger_IncludesErrors(t *testing.T) {
	gin.SetMode(gin.TestMode)
	buf := captureLogs(t)
	r := gin.New()
	r.Use(RequestLogger())
	r.GET("/", func(c *gin.Context) {
		AbortWithError(c, http.StatusBadRequest, "bad", assertErr{})
	})

	serve(r, http.MethodGet, "/", nil)
	if !bytes.Contains(buf.Bytes(), []byte("boom")) {
		t.Fatalf("expected attached error in log line: %s", buf.String())
	}
}
