// Package logging defines the structured logging contract shared by the
// client and server. The concrete implementation wraps log/slog; the
// interface keeps packages decoupled from the handler choice.
package logging

import "context"

// Logger is a leveled, context-aware logger. Variadic args are alternating
// key-value pairs:
//
//	log.Info(ctx, "report created", "report", id, "user", userID)
type Logger interface {
	// Info records normal operation events.
	Info(ctx context.Context, msg string, args ...any)

	// Warn records unusual but recoverable conditions.
	Warn(ctx context.Context, msg string, args ...any)

	// Error records failures.
	Error(ctx context.Context, msg string, args ...any)

	// With returns a child logger carrying the given key-value pairs on
	// every record.
	With(args ...any) Logger
}
