package logging

import (
	"context"
	"log/slog"
	"os"
)

// Environment selects logging defaults for a deployment target.
type Environment string

const (
	EnvDev  Environment = "dev"
	EnvProd Environment = "prod"
)

// Module labels log records with the subsystem that emitted them.
type Module string

// ServiceInfo identifies the running service in logs and telemetry.
type ServiceInfo struct {
	Name     string
	Version  string
	Revision string
}

type contextKey string

const requestIDKey contextKey = "request_id"

// WithRequestID stores the request id in the context for handler-scoped
// logging.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

// RequestIDFromContext returns the request id stored by WithRequestID, or
// empty when none is set.
func RequestIDFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(requestIDKey).(string); ok {
		return v
	}
	return ""
}

// NewLogger builds the service-wide slog logger: JSON output, level by
// environment, service attrs on every record and context attrs (request id,
// trace correlation) injected per record.
func NewLogger(env Environment, info ServiceInfo, gcpProjectID string, module Module) *slog.Logger {
	level := slog.LevelInfo
	if env == EnvDev {
		level = slog.LevelDebug
	}

	base := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	})

	handler := &contextHandler{
		Handler:      base,
		gcpProjectID: gcpProjectID,
	}

	logger := slog.New(handler).With(
		slog.String("service", info.Name),
		slog.String("version", info.Version),
		slog.String("module", string(module)),
	)
	if info.Revision != "" {
		logger = logger.With(slog.String("revision", info.Revision))
	}

	return logger
}

// contextHandler enriches records with request-scoped attributes pulled from
// the context.
type contextHandler struct {
	slog.Handler
	gcpProjectID string
}

func (h *contextHandler) Handle(ctx context.Context, record slog.Record) error {
	if requestID := RequestIDFromContext(ctx); requestID != "" {
		record.AddAttrs(slog.String("request_id", requestID))
	}
	if attrs := gcpTraceAttrs(ctx, h.gcpProjectID); len(attrs) > 0 {
		record.AddAttrs(attrs...)
	}
	return h.Handler.Handle(ctx, record)
}

func (h *contextHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &contextHandler{
		Handler:      h.Handler.WithAttrs(attrs),
		gcpProjectID: h.gcpProjectID,
	}
}

func (h *contextHandler) WithGroup(name string) slog.Handler {
	return &contextHandler{
		Handler:      h.Handler.WithGroup(name),
		gcpProjectID: h.gcpProjectID,
	}
}
