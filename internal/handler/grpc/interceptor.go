package grpc

import (
	"context"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

const traceIDMetadataKey = "x-trace-id"

// UnaryLoggingInterceptor puts a child logger with a "trace_id" field into
// the call context and logs method, status code and duration of every call.
// The trace id is taken from incoming "x-trace-id" metadata when present.
func (h *Handler) UnaryLoggingInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	traceID := traceIDFromMetadata(ctx)
	if traceID == "" {
		traceID = uuid.NewString()
	}

	l := h.logger.WithTraceID(traceID)
	ctx = l.WithContext(ctx)

	start := time.Now()
	resp, err := handler(ctx, req)

	l.Info().
		Str("method", info.FullMethod).
		Str("code", status.Code(err).String()).
		Dur("duration", time.Since(start)).
		Send()

	return resp, err
}

func traceIDFromMetadata(ctx context.Context) string {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return ""
	}
	if values := md.Get(traceIDMetadataKey); len(values) > 0 {
		return values[0]
	}
	return ""
}
