package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"limoapi/internal/domain"
	"limoapi/internal/identity"
	"limoapi/internal/utils"
)

const authUserKey = "auth_user"

// RequireAuth extracts the bearer credential, delegates verification to the
// identity provider and attaches the resolved user to the request context.
// Any failure aborts with 401 before the handler runs.
func RequireAuth(provider identity.Provider) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error":   "Unauthorized",
				"message": "no authentication token provided",
			})
			return
		}
		token := strings.TrimPrefix(header, "Bearer ")

		subject, err := provider.VerifyToken(c.Request.Context(), token)
		if err != nil {
			abortAuthError(c, err)
			return
		}

		user, err := provider.FetchUser(c.Request.Context(), subject)
		if err != nil {
			abortAuthError(c, err)
			return
		}

		c.Set(authUserKey, user)
		c.Next()
	}
}

// RequireRole verifies an already-resolved identity carries the given role.
// It never substitutes for RequireAuth: a missing identity is a 401.
func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := GetAuthUser(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error":   "Unauthorized",
				"message": "authentication required",
			})
			return
		}
		if !strings.EqualFold(user.Role, role) {
			utils.LogEvent(GetRequestID(c), "auth", "role_denied", "user_id="+user.ID+" role="+user.Role)
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error":   "Forbidden",
				"message": role + " access required",
			})
			return
		}
		c.Next()
	}
}

// GetAuthUser returns the identity resolved by RequireAuth, if any.
func GetAuthUser(c *gin.Context) (identity.User, bool) {
	v, ok := c.Get(authUserKey)
	if !ok {
		return identity.User{}, false
	}
	user, ok := v.(identity.User)
	return user, ok
}

func abortAuthError(c *gin.Context, err error) {
	utils.LogEvent(GetRequestID(c), "auth", "resolve_failed", err.Error())
	if domain.IsDependency(err) {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"error":   "Internal Server Error",
			"message": "authentication service unavailable",
		})
		return
	}
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"error":   "Unauthorized",
		"message": "invalid authentication token",
	})
}
