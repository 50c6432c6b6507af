package middleware

import (
	"bytes"
	"io"
	"strings"

	"github.com/gin-gonic/gin"

	"convo-backend/pkg/sanitize"
)

// Sanitize scrubs the request body, query string and path parameters
// before any other stage runs. It never rejects a request: values that
// cannot be interpreted pass through for the validation stage to handle.
func Sanitize() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Body != nil && hasJSONBody(c) {
			raw, err := io.ReadAll(c.Request.Body)
			if err == nil {
				cleaned := sanitize.JSON(raw)
				c.Request.Body = io.NopCloser(bytes.NewReader(cleaned))
				c.Request.ContentLength = int64(len(cleaned))
			}
		}

		if c.Request.URL.RawQuery != "" {
			c.Request.URL.RawQuery = sanitize.Query(c.Request.URL.Query()).Encode()
		}

		params := c.Params
		for i := range params {
			params[i].Value = sanitize.String(params[i].Value)
		}
		c.Params = params

		c.Next()
	}
}

func hasJSONBody(c *gin.Context) bool {
	ct := c.ContentType()
	return ct == "" || strings.Contains(ct, "json")
}
