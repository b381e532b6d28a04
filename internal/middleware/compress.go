package middleware

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/andybalholm/brotli"
	"github.com/gin-gonic/gin"
)

type brotliWriter struct {
	gin.ResponseWriter
	bw *brotli.Writer
}

func (w *brotliWriter) Write(p []byte) (int, error) {
	return w.bw.Write(p)
}

func (w *brotliWriter) WriteString(s string) (int, error) {
	return w.bw.Write([]byte(s))
}

// Compress serves brotli-encoded bodies to clients that accept them.
// Streaming protocols are passed through untouched: the WebSocket
// handshake fails if the response writer is wrapped.
func Compress() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !acceptsBrotli(c.Request) ||
			strings.EqualFold(c.GetHeader("Upgrade"), "websocket") ||
			strings.Contains(c.GetHeader("Accept"), "text/event-stream") {
			c.Next()
			return
		}

		c.Header("Vary", "Accept-Encoding")
		c.Header("Content-Encoding", "br")

		bw := brotli.NewWriterLevel(c.Writer, brotli.DefaultCompression)
		c.Writer = &brotliWriter{ResponseWriter: c.Writer, bw: bw}

		c.Next()

		if err := bw.Close(); err != nil {
			_ = c.Error(err)
		}
	}
}

func acceptsBrotli(r *http.Request) bool {
	for _, enc := range strings.Split(r.Header.Get("Accept-Encoding"), ",") {
		if strings.TrimSpace(strings.ToLower(enc)) == "br" {
			return true
		}
	}
	return false
}

// CacheControl sets the Cache-Control header for responses, usually static assets.
func CacheControl(maxAgeSeconds int) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Cache-Control", "public, max-age="+strconv.Itoa(maxAgeSeconds))
		c.Next()
	}
}
