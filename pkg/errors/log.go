package errors

import (
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LogHandler is an ErrorHandler that writes to a zap logger.
// Constraint violations are logged at debug level only, so they stay
// invisible unless the logger is configured to show them.
type LogHandler struct {
	// Logger receives the entries. A nil Logger uses a console logger on
	// stderr.
	Logger *zap.Logger
	// Verbose enables detailed output including stack traces.
	Verbose bool
}

// NewLogHandler returns a handler writing to logger.
func NewLogHandler(logger *zap.Logger, verbose bool) *LogHandler {
	return &LogHandler{Logger: logger, Verbose: verbose}
}

var (
	fallbackOnce   sync.Once
	fallbackLogger *zap.Logger
)

func (h *LogHandler) logger() *zap.Logger {
	if h.Logger != nil {
		return h.Logger
	}
	fallbackOnce.Do(func() {
		cfg := zap.NewProductionConfig()
		cfg.Encoding = "console"
		cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
		l, err := cfg.Build()
		if err != nil {
			l = zap.NewNop()
		}
		fallbackLogger = l
	})
	return fallbackLogger
}

// HandleError logs an Error.
func (h *LogHandler) HandleError(err *Error) {
	if err == nil {
		return
	}
	fields := []zap.Field{
		zap.String("op", err.Op),
		zap.Stringer("kind", err.Kind),
		zap.Error(err.Err),
	}
	if err.Identity != "" {
		fields = append(fields, zap.String("identity", err.Identity))
	}
	if err.Frame != 0 {
		fields = append(fields, zap.Uint64("frame", err.Frame))
	}
	if h.Verbose && err.StackTrace != "" {
		fields = append(fields, zap.String("stack", err.StackTrace))
	}
	h.logger().Error("render error", fields...)
}

// HandlePanic logs a PanicError.
func (h *LogHandler) HandlePanic(err *PanicError) {
	if err == nil {
		return
	}
	fields := []zap.Field{
		zap.String("op", err.Op),
		zap.Any("value", err.Value),
	}
	if h.Verbose && err.StackTrace != "" {
		fields = append(fields, zap.String("stack", err.StackTrace))
	}
	h.logger().Error("render panic", fields...)
}

// HandleViolation logs a ConstraintViolation at debug level.
func (h *LogHandler) HandleViolation(v *ConstraintViolation) {
	if v == nil {
		return
	}
	h.logger().Debug("constraint violation",
		zap.String("component", v.Component),
		zap.Stringer("bounds", v.Bounds),
		zap.Stringer("got", v.Got),
		zap.Stringer("clamped", v.Clamped),
	)
}
