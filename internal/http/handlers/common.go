package handlers

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"limoapi/internal/domain"
)

// BindJSON decodes the request body into dst. Returns false after writing a
// 400 response when the body is missing or unparsable.
func BindJSON[T any](c *gin.Context, dst *T) bool {
	if c.Request.Body == nil {
		respondBadBody(c)
		return false
	}
	if err := c.ShouldBindJSON(dst); err != nil {
		respondBadBody(c)
		return false
	}
	return true
}

// BindJSONWithPresence decodes the body into dst and also reports which JSON
// keys were present, so partial updates can tell an omitted field from an
// explicit null.
func BindJSONWithPresence[T any](c *gin.Context, dst *T) (map[string]json.RawMessage, bool) {
	if c.Request.Body == nil {
		respondBadBody(c)
		return nil, false
	}
	raw, err := io.ReadAll(c.Request.Body)
	if err != nil || len(raw) == 0 {
		respondBadBody(c)
		return nil, false
	}
	keys := map[string]json.RawMessage{}
	if err := json.Unmarshal(raw, &keys); err != nil {
		respondBadBody(c)
		return nil, false
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		respondBadBody(c)
		return nil, false
	}
	return keys, true
}

func respondBadBody(c *gin.Context) {
	c.JSON(http.StatusBadRequest, gin.H{
		"error": "Validation failed",
		"details": []domain.FieldIssue{
			{Field: "payload", Msg: "request body must be valid JSON"},
		},
	})
}

// isNull reports whether a present JSON key carried an explicit null.
func isNull(raw json.RawMessage) bool {
	return string(raw) == "null"
}
