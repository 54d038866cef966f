package http

import (
	"context"

	"github.com/gin-gonic/gin"

	"reservation-agent/pkg/log"
)

// Agent answers chat messages. *orchestrator.Orchestrator implements it.
type Agent interface {
	ProcessQuery(ctx context.Context, userID, message string) (string, error)
	ClearHistory(ctx context.Context, userID string) error
}

// Handler is the public interface for the agent HTTP delivery layer.
type Handler interface {
	Invoke(c *gin.Context)
	ClearHistory(c *gin.Context)
}

type handler struct {
	l     log.Logger
	agent Agent
}

// New creates a new HTTP handler for the chat agent.
func New(l log.Logger, agent Agent) Handler {
	return &handler{
		l:     l,
		agent: agent,
	}
}
