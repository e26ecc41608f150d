package middleware

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"user-account-api/internal/infrastructure/metrics"
)

const (
	maxLogBodySize = 1 << 12 // 4 KB
	passwordMask   = "***"
)

// jsonMemberRe matches a key and its scalar value. A string value cut off by
// maxLogBodySize has no closing quote and runs to the end of the body.
var jsonMemberRe = regexp.MustCompile(`("(?:[^"\\]|\\.)*")(\s*:\s*)("(?:[^"\\]|\\.)*(?:"|\\?$)|[^,{}\[\]"]*)`)

// isPasswordKey matches keys the way encoding/json matches them to struct fields.
func isPasswordKey(key string) bool { return strings.EqualFold(key, "password") }

// MaskPasswords replaces the value of every password member with a fixed mask.
// A complete JSON document is re-encoded; anything else is masked in place.
func MaskPasswords(body string) string {
	var v any
	dec := json.NewDecoder(strings.NewReader(body))
	dec.UseNumber()
	if err := dec.Decode(&v); err == nil {
		if _, err = dec.Token(); errors.Is(err, io.EOF) {
			if !maskValue(v) {
				return body
			}
			var buf bytes.Buffer
			enc := json.NewEncoder(&buf)
			enc.SetEscapeHTML(false)
			if err = enc.Encode(v); err == nil {
				return strings.TrimSuffix(buf.String(), "\n")
			}
		}
	}

	return jsonMemberRe.ReplaceAllStringFunc(body, maskMember)
}

func maskValue(v any) bool {
	masked := false
	switch t := v.(type) {
	case map[string]any:
		for k, val := range t {
			if isPasswordKey(k) {
				t[k] = passwordMask
				masked = true
				continue
			}
			if maskValue(val) {
				masked = true
			}
		}
	case []any:
		for _, val := range t {
			if maskValue(val) {
				masked = true
			}
		}
	}
	return masked
}

func maskMember(m string) string {
	sub := jsonMemberRe.FindStringSubmatch(m)
	var key string
	if err := json.Unmarshal([]byte(sub[1]), &key); err != nil || !isPasswordKey(key) {
		return m
	}
	return sub[1] + sub[2] + `"` + passwordMask + `"`
}

func RequestLogGin(logger *zap.Logger, mCounter *prometheus.CounterVec) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method == http.MethodOptions ||
			c.Request.URL.Path == "/favicon.ico" ||
			strings.HasSuffix(c.Request.URL.Path, "/metrics") {
			c.Next()
			return
		}

		start := time.Now()

		var body string
		if c.Request.Body != nil {
			var buf bytes.Buffer
			limited := io.LimitReader(c.Request.Body, maxLogBodySize)
			_, _ = io.Copy(&buf, limited)
			body = MaskPasswords(buf.String())
			c.Request.Body = struct {
				io.Reader
				io.Closer
			}{io.MultiReader(bytes.NewReader(buf.Bytes()), c.Request.Body), c.Request.Body}
		}

		c.Next()

		if mCounter != nil {
			mCounter.WithLabelValues(metrics.RequestsTotal).Inc()
		}

		logger.Info("HTTP request",
			zap.String("method", c.Request.Method),
			zap.String("url", c.FullPath()),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(start)),
			zap.String("body", body),
			zap.String("client_ip", c.ClientIP()),
			zap.String("user_agent", c.Request.UserAgent()),
		)
	}
}
