// Package handler implements the per-resource HTTP controllers. Every
// handler follows the same shape: parse, validate, call the repo, write an
// envelope. Database error details are exposed only outside production.
package handler

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	resp "marketing-cms/internal/transport/http/response"
)

// bindPayload decodes the JSON body into a map so create and patch-style
// update requests share validation and field extraction.
func bindPayload(c *gin.Context) (map[string]any, bool) {
	var m map[string]any
	if err := c.ShouldBindJSON(&m); err != nil {
		resp.BadRequest(c, "Invalid JSON body")
		return nil, false
	}
	return m, true
}

// normalizeSlugField lowercases and trims a caller-supplied slug before
// validation runs, so mixed-case input normalizes instead of failing the
// charset check and duplicate detection is case-insensitive.
func normalizeSlugField(m map[string]any) {
	if s, ok := m["slug"].(string); ok {
		m["slug"] = strings.ToLower(strings.TrimSpace(s))
	}
}

func strField(m map[string]any, key string) (string, bool) {
	v, ok := m[key]
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

func boolField(m map[string]any, key string) (bool, bool) {
	v, ok := m[key]
	if !ok {
		return false, false
	}
	b, ok := v.(bool)
	return b, ok
}

func intField(m map[string]any, key string) (int, bool) {
	v, ok := m[key]
	if !ok {
		return 0, false
	}
	n, ok := v.(float64)
	return int(n), ok
}

// timeField parses an RFC3339 timestamp, distinguishing absent, explicit
// null (present with a nil value, which clears the field) and a string.
func timeField(m map[string]any, key string) (*time.Time, bool, bool) {
	v, ok := m[key]
	if !ok {
		return nil, false, true
	}
	if v == nil {
		return nil, true, true
	}
	s, ok := v.(string)
	if !ok {
		return nil, true, false
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return nil, true, false
	}
	return &t, true, true
}

// nullableStrField distinguishes absent, explicit null, and a string value.
func nullableStrField(m map[string]any, key string) (val *string, present bool) {
	v, ok := m[key]
	if !ok {
		return nil, false
	}
	if v == nil {
		return nil, true
	}
	if s, ok := v.(string); ok {
		return &s, true
	}
	return nil, false
}

// internalError hides the underlying error in production.
func internalError(c *gin.Context, log *zap.Logger, prod bool, msg string, err error) {
	log.Error(msg, zap.Error(err), zap.String("path", c.FullPath()))
	if prod {
		resp.Internal(c, msg)
		return
	}
	resp.Internal(c, msg+": "+err.Error())
}

type bulkDeleteRequest struct {
	IDs []string `json:"ids" binding:"required"`
}
