package util

import (
	"encoding/json"
	"log/slog"

	"github.com/gin-gonic/gin"
)

// Error writes the uniform JSON error body.
func Error(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{"message": msg})
}

// Fail logs the underlying error server-side and answers with a generic
// message only; store detail never reaches the caller.
func Fail(c *gin.Context, status int, msg string, err error) {
	slog.Error(msg,
		"method", c.Request.Method,
		"path", c.Request.URL.Path,
		"error", err,
	)
	Error(c, status, msg)
}

// BindStrictJSON decodes the request body into dst, rejecting unknown fields
// so unexpected payload shapes never pass through into storage.
func BindStrictJSON(c *gin.Context, dst any) error {
	dec := json.NewDecoder(c.Request.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(dst)
}
