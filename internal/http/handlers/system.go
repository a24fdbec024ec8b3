package handlers

import (
	"database/sql"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// SystemHandler exposes liveness and database connectivity probes.
type SystemHandler struct {
	DB  *sql.DB
	Env string
	Dev bool
}

// GET /api/health
func (h SystemHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":      "ok",
		"environment": h.Env,
		"timestamp":   time.Now().UTC().Format(time.RFC3339),
	})
}

// GET /api/db-check
func (h SystemHandler) DBCheck(c *gin.Context) {
	if err := h.DB.Ping(); err != nil {
		body := gin.H{"status": "error", "database": "unreachable"}
		if h.Dev {
			body["detail"] = err.Error()
		}
		c.JSON(http.StatusServiceUnavailable, body)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "database": "reachable"})
}
