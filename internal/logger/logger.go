// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger wraps zerolog for the review-site server.
//
// The process logger is built once in cmd/server. Every HTTP request and gRPC
// call gets a child carrying its trace_id (and, after authentication, the
// caller's user_id), stored in the context. Handlers, services and
// repositories recover it with FromRequest or FromContext.
package logger

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"runtime"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Logger embeds zerolog.Logger, so Debug, Info, Warn, Error and the rest are
// called on it directly.
type Logger struct {
	zerolog.Logger
}

// NewLogger builds the JSON stdout logger. Every entry carries role, a
// timestamp and a "func" field naming the calling function. The global level
// starts at debug; see SetLevel.
func NewLogger(role string) *Logger {
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	zerolog.CallerFieldName = "func"
	zerolog.CallerMarshalFunc = func(pc uintptr, _ string, _ int) string {
		return runtime.FuncForPC(pc).Name()
	}

	return &Logger{
		zerolog.New(os.Stdout).With().
			Str("role", role).
			Timestamp().
			Caller().
			Logger(),
	}
}

// SetLevel applies APP_LOG_LEVEL. Empty keeps the current level.
func SetLevel(level string) error {
	if level == "" {
		return nil
	}

	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("unknown log level %q: %w", level, err)
	}

	zerolog.SetGlobalLevel(lvl)
	return nil
}

// Nop discards everything. Used by tests.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// WithTraceID returns a child of l whose entries carry trace_id.
func (l *Logger) WithTraceID(traceID string) *Logger {
	return &Logger{l.With().Str("trace_id", traceID).Logger()}
}

// WithUserID adds user_id to the logger stored in ctx and returns the new
// context. The auth middleware calls it once the bearer token is resolved.
func WithUserID(ctx context.Context, userID string) context.Context {
	l := log.Ctx(ctx).With().Str("user_id", userID).Logger()
	return l.WithContext(ctx)
}

// FromRequest returns the request-scoped logger, or a disabled one when the
// trace-id middleware did not run.
func FromRequest(r *http.Request) *Logger {
	return FromContext(r.Context())
}

// FromContext never returns nil.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}
