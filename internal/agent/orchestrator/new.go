package orchestrator

import (
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"chat-task-manager/internal/agent"
	pkgLog "chat-task-manager/pkg/log"
	"chat-task-manager/pkg/retry"
)

// Config tunes the agent loop and session memory.
type Config struct {
	Timezone        string
	MaxSteps        int
	SessionTTL      time.Duration
	SessionCapacity int
	Retry           retry.Policy
}

type Orchestrator struct {
	llm      Generator
	registry *agent.ToolRegistry
	l        pkgLog.Logger
	cfg      Config
	sessions *expirable.LRU[string, *SessionMemory]
	// sessionMu guards the read-modify-write of a session's message list;
	// the LRU itself is safe but the stored *SessionMemory is shared.
	sessionMu sync.Mutex
	now       func() time.Time
}

// New creates an Orchestrator. Idle sessions age out of the LRU on their own.
func New(llm Generator, registry *agent.ToolRegistry, l pkgLog.Logger, cfg Config) *Orchestrator {
	if cfg.Timezone == "" {
		cfg.Timezone = "Europe/Moscow"
	}
	if cfg.MaxSteps <= 0 {
		cfg.MaxSteps = DefaultMaxSteps
	}
	if cfg.SessionTTL <= 0 {
		cfg.SessionTTL = DefaultSessionTTL
	}
	if cfg.SessionCapacity <= 0 {
		cfg.SessionCapacity = DefaultSessionCapacity
	}
	if cfg.Retry.Attempts <= 0 {
		cfg.Retry = retry.DefaultPolicy()
	}

	return &Orchestrator{
		llm:      llm,
		registry: registry,
		l:        l,
		cfg:      cfg,
		sessions: expirable.NewLRU[string, *SessionMemory](cfg.SessionCapacity, nil, cfg.SessionTTL),
		now:      time.Now,
	}
}
