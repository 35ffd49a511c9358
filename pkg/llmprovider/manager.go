package llmprovider

import (
	"context"
	"fmt"
	"time"

	"chat-task-manager/pkg/log"
)

// Manager orchestrates provider selection and fallback. Retry around a single
// provider call belongs to the caller; the manager only walks the priority
// chain until one provider answers, and only past transient failures.
type Manager struct {
	providers []Provider
	config    *Config
	logger    log.Logger
}

// Config defines configuration for the Provider Manager
type Config struct {
	FallbackEnabled bool
	MaxTotalTimeout time.Duration // global timeout for the entire fallback chain
}

// NewManager creates a new Provider Manager with the given providers, config, and logger
func NewManager(providers []Provider, config *Config, logger log.Logger) *Manager {
	if config == nil {
		config = &Config{FallbackEnabled: true}
	}
	return &Manager{
		providers: providers,
		config:    config,
		logger:    logger,
	}
}

// GenerateContent iterates through providers in priority order with fallback logic
func (m *Manager) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	if len(m.providers) == 0 {
		return nil, ErrNoProvidersConfigured
	}

	var cancel context.CancelFunc
	if m.config.MaxTotalTimeout > 0 {
		ctx, cancel = context.WithTimeout(ctx, m.config.MaxTotalTimeout)
		defer cancel()
	}

	var lastErr error
	for _, provider := range m.providers {
		select {
		case <-ctx.Done():
			if lastErr != nil {
				return nil, fmt.Errorf("%w: %v", ctx.Err(), lastErr)
			}
			return nil, ctx.Err()
		default:
		}

		resp, err := provider.GenerateContent(ctx, req)
		if err == nil {
			m.logger.Infof(ctx, "LLM generation succeeded: provider=%s model=%s tokens=%d",
				provider.Name(), provider.Model(), resp.Usage.TotalTokens)
			return resp, nil
		}

		m.logger.Warnf(ctx, "LLM generation failed: provider=%s model=%s error=%v",
			provider.Name(), provider.Model(), err)
		lastErr = err

		if !m.config.FallbackEnabled {
			break
		}
		// Fallback is for transient failures only. A bad request or rejected
		// payload would fail the same way on every provider.
		if !IsTransient(err) {
			m.logger.Warnf(ctx, "LLM failure is not transient, skipping fallback: provider=%s",
				provider.Name())
			break
		}
	}

	return nil, fmt.Errorf("%w: %v", ErrAllProvidersFailed, lastErr)
}

// Complete sends a single user prompt and returns the text of the response.
// It is the plain-text convenience used by the extraction stages.
func (m *Manager) Complete(ctx context.Context, prompt string) (string, error) {
	resp, err := m.GenerateContent(ctx, &Request{
		Messages: []Message{{Role: "user", Parts: []Part{{Text: prompt}}}},
	})
	if err != nil {
		return "", err
	}
	text := resp.Text()
	if text == "" {
		return "", ErrEmptyResponse
	}
	return text, nil
}
