// Package debug exposes environment switches for tracing the decoder and
// encoder, and the logger the traces go to.
package debug

import (
	"io"
	"log/slog"
	"os"
	"strconv"
	"sync/atomic"
)

type debug struct {
	Decode bool
	Encode bool
}

var (
	d      *debug
	logger atomic.Pointer[slog.Logger]
)

func init() {
	d = &debug{}
	d.Decode = boolEnv("SWIFTMANGLE_DEBUG_DECODE")
	d.Encode = boolEnv("SWIFTMANGLE_DEBUG_ENCODE")
	logger.Store(NewLogger(os.Stderr, slog.LevelDebug))
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

// Decode reports whether decoder tracing is enabled.
func Decode() bool {
	return d.Decode
}

// Encode reports whether encoder tracing is enabled.
func Encode() bool {
	return d.Encode
}

// Logger returns the trace logger.
func Logger() *slog.Logger {
	return logger.Load()
}

// SetLogger replaces the trace logger. A nil logger restores the default.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = NewLogger(os.Stderr, slog.LevelDebug)
	}
	logger.Store(l)
}

// NewLogger builds a text logger without timestamps. INFO records omit the
// level so ordinary progress lines stay short.
func NewLogger(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				return slog.Attr{}
			}
			if a.Key == slog.LevelKey && a.Value.String() == "INFO" {
				return slog.Attr{}
			}
			return a
		},
	}))
}
