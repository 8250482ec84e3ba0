package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func Root(c *gin.Context) {
	c.String(http.StatusOK, "Backend running. Use /api/* endpoints.")
}
