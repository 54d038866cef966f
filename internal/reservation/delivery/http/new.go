package http

import (
	"github.com/gin-gonic/gin"

	"reservation-agent/internal/reservation"
	"reservation-agent/pkg/log"
)

// Handler is the public interface for the reservation HTTP delivery layer.
type Handler interface {
	Create(c *gin.Context)
	ListByUser(c *gin.Context)
	DeleteByUser(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc reservation.UseCase
}

// New creates a new HTTP handler for the reservation domain.
func New(l log.Logger, uc reservation.UseCase) Handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
