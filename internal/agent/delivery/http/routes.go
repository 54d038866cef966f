package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps the agent endpoints under rg (mounted at /invoke-agent).
func RegisterRoutes(rg *gin.RouterGroup, h Handler) {
	rg.POST("/", h.Invoke)
	rg.DELETE("/history/:userId", h.ClearHistory)
}
