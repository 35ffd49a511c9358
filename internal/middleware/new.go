package middleware

import (
	pkgLog "chat-task-manager/pkg/log"
)

// Middleware bundles the HTTP middlewares and their dependencies.
type Middleware struct {
	l       pkgLog.Logger
	limiter *rateLimiter
}

// New creates the middleware set. requestsPerMin bounds each client IP;
// zero or negative disables rate limiting.
func New(l pkgLog.Logger, requestsPerMin int) Middleware {
	var limiter *rateLimiter
	if requestsPerMin > 0 {
		limiter = newRateLimiter(requestsPerMin)
	}
	return Middleware{
		l:       l,
		limiter: limiter,
	}
}
