package errors

import (
	"fmt"
	"runtime"
	"strings"
	"sync/atomic"
	"time"
)

// installed wraps the handler so a nil interface never reaches the
// atomic pointer.
type installed struct {
	h ErrorHandler
}

var current atomic.Pointer[installed]

func init() {
	current.Store(&installed{h: &LogHandler{}})
}

// SetHandler installs h as the handler receiving failed frames, recovered
// panics and constraint violations, and returns the one it replaces.
// A nil h installs a LogHandler writing to stderr.
func SetHandler(h ErrorHandler) ErrorHandler {
	if h == nil {
		h = &LogHandler{}
	}
	return current.Swap(&installed{h: h}).h
}

// CurrentHandler returns the installed handler.
func CurrentHandler() ErrorHandler {
	return current.Load().h
}

// Report hands a frame error to the installed handler, stamping it first.
func Report(err *Error) {
	if err == nil {
		return
	}
	if err.Timestamp.IsZero() {
		err.Timestamp = time.Now()
	}
	CurrentHandler().HandleError(err)
}

// ReportPanic hands a recovered panic to the installed handler.
func ReportPanic(err *PanicError) {
	if err == nil {
		return
	}
	if err.Timestamp.IsZero() {
		err.Timestamp = time.Now()
	}
	CurrentHandler().HandlePanic(err)
}

// ReportViolation hands a clamped layout size to the installed handler.
func ReportViolation(v *ConstraintViolation) {
	if v != nil {
		CurrentHandler().HandleViolation(v)
	}
}

// Recover reports a panic in the calling function and lets it return
// normally. It must be deferred directly:
//
//	defer errors.Recover("core.Store.reclaim")
func Recover(op string) {
	if r := recover(); r != nil {
		ReportPanic(newPanicError(op, r))
	}
}

// RecoverFunc is Recover followed by a call to onPanic with the reported
// error, so callers can count or react to the failure.
//
//	defer errors.RecoverFunc("engine.Dispatch", func(*errors.PanicError) { panics++ })
func RecoverFunc(op string, onPanic func(*PanicError)) {
	if r := recover(); r != nil {
		p := newPanicError(op, r)
		ReportPanic(p)
		if onPanic != nil {
			onPanic(p)
		}
	}
}

func newPanicError(op string, v any) *PanicError {
	return &PanicError{
		Op:         op,
		Value:      v,
		StackTrace: captureStack(4),
		Timestamp:  time.Now(),
	}
}

// CaptureStack returns the stack of its caller, one "function\n\tfile:line"
// entry per frame, at most 32 frames.
func CaptureStack() string {
	return captureStack(3)
}

func captureStack(skip int) string {
	var pcs [32]uintptr
	n := runtime.Callers(skip, pcs[:])
	if n == 0 {
		return ""
	}
	var sb strings.Builder
	frames := runtime.CallersFrames(pcs[:n])
	for {
		f, more := frames.Next()
		fmt.Fprintf(&sb, "%s\n\t%s:%d\n", f.Function, f.File, f.Line)
		if !more {
			return sb.String()
		}
	}
}
