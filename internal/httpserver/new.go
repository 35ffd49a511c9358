package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	"chat-task-manager/internal/chat"
	"chat-task-manager/internal/task/repository"
	"chat-task-manager/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin             *gin.Engine
	l               log.Logger
	port            int
	mode            string
	environment     string
	rateLimitPerMin int

	// Chat surface
	chatHandler chat.Handler

	// Readiness probe target
	repo repository.TaskRepository
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger          log.Logger
	Port            int
	Mode            string
	Environment     string
	RateLimitPerMin int

	ChatHandler chat.Handler
	Repository  repository.TaskRepository
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.New(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		rateLimitPerMin: cfg.RateLimitPerMin,
		chatHandler:     cfg.ChatHandler,
		repo:            cfg.Repository,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.chatHandler == nil {
		return errors.New("chat handler is required")
	}
	return nil
}
