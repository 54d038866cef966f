package orchestrator

import (
	"context"
	"errors"
	"time"

	"reservation-agent/pkg/llmprovider"
)

var (
	ErrMissingUser   = errors.New("orchestrator: user id is required")
	ErrEmptyResponse = errors.New("orchestrator: empty LLM response")
)

// LLM is satisfied by *llmprovider.Manager.
type LLM interface {
	GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error)
}

// Options tunes the agent loop.
type Options struct {
	Temperature float64
	Location    *time.Location
}
