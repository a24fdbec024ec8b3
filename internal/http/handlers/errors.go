package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"limoapi/internal/domain"
	"limoapi/internal/http/middleware"
	"limoapi/internal/utils"
)

// RespondDomainError maps domain errors to HTTP responses. dev enables
// error detail on unhandled failures; production keeps a generic message.
func RespondDomainError(c *gin.Context, err error, dev bool) {
	reqID := middleware.GetRequestID(c)

	switch {
	case domain.IsValidation(err):
		var verr domain.ValidationError
		errors.As(err, &verr)
		c.JSON(http.StatusBadRequest, gin.H{
			"error":      "Validation failed",
			"details":    verr.Issues,
			"request_id": reqID,
		})
	case domain.IsNotFound(err):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error(), "request_id": reqID})
	case domain.IsConflict(err):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error(), "request_id": reqID})
	case domain.IsUnauthorized(err):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized", "message": err.Error(), "request_id": reqID})
	case domain.IsForbidden(err):
		c.JSON(http.StatusForbidden, gin.H{"error": "Forbidden", "message": err.Error(), "request_id": reqID})
	default:
		utils.LogEvent(reqID, "http", "internal_error", err.Error())
		body := gin.H{"error": "Internal server error", "request_id": reqID}
		if dev {
			body["detail"] = err.Error()
		}
		c.JSON(http.StatusInternalServerError, body)
	}
}
