// Package logger provides the structured logger shared by every kivo
// subsystem. It wraps go.uber.org/zap so that call sites log key/value
// pairs (generation, error) instead of formatted strings.
package logger

import "go.uber.org/zap"

// New builds a production-configured, sugared logger tagged with the name
// of the subsystem that owns it (e.g. "writer", "compaction", "reader-pool").
// engine.Config requires a non-nil logger; callers that don't care about
// logging output pass NewNop. The writer and reader packages also accept
// a nil logger.
func New(service string) *zap.SugaredLogger {
	base, err := zap.NewProduction()
	if err != nil {
		base = zap.NewNop()
	}
	return base.Sugar().With("service", service)
}

// NewNop returns a logger that discards everything it is given. Tests that
// exercise compaction or recovery paths without wanting log noise use this.
func NewNop() *zap.SugaredLogger {
	return zap.NewNop().Sugar()
}
