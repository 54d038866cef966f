package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps the booking API under rg (mounted at /api/reservations).
func RegisterRoutes(rg *gin.RouterGroup, h Handler) {
	rg.POST("", h.Create)
	rg.GET("/user/:userId", h.ListByUser)
	rg.DELETE("/user/:userId", h.DeleteByUser)
}
