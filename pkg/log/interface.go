package log

import "context"

// Logger is the service-wide logging interface.
// Every method takes the request context first so implementations can attach
// request-scoped fields (trace ids, user ids) later without touching call sites.
type Logger interface {
	Debug(ctx context.Context, args ...any)
	Debugf(ctx context.Context, format string, args ...any)

	Info(ctx context.Context, args ...any)
	Infof(ctx context.Context, format string, args ...any)

	Warn(ctx context.Context, args ...any)
	Warnf(ctx context.Context, format string, args ...any)

	Error(ctx context.Context, args ...any)
	Errorf(ctx context.Context, format string, args ...any)

	DPanic(ctx context.Context, args ...any)
	DPanicf(ctx context.Context, format string, args ...any)

	Panic(ctx context.Context, args ...any)
	Panicf(ctx context.Context, format string, args ...any)

	Fatal(ctx context.Context, args ...any)
	Fatalf(ctx context.Context, format string, args ...any)
}
