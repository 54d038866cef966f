package orchestrator

import (
	"time"

	"reservation-agent/internal/agent"
	"reservation-agent/internal/agent/session"
	pkgLog "reservation-agent/pkg/log"
)

type Orchestrator struct {
	llm      LLM
	registry *agent.ToolRegistry
	sessions session.Store
	l        pkgLog.Logger
	opts     Options
	now      func() time.Time
}

func New(llm LLM, registry *agent.ToolRegistry, sessions session.Store, l pkgLog.Logger, opts Options) *Orchestrator {
	if opts.Location == nil {
		opts.Location = time.UTC
	}
	return &Orchestrator{
		llm:      llm,
		registry: registry,
		sessions: sessions,
		l:        l,
		opts:     opts,
		now:      time.Now,
	}
}
