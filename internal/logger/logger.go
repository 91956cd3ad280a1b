// Package logger provides the component loggers used across recap. Records
// are written as
//
//	[15:04:05.000] LEVEL [component] message [key=value ...]
//
// Debug and Info records are only written while the verbose check reports
// true; warnings and errors are always written.
package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
	"time"
)

// Handler is a slog.Handler writing one line per record
type Handler struct {
	component string
	verbose   func() bool
	prefix    string
	attrs     []slog.Attr

	mu  *sync.Mutex
	w   io.Writer
	now func() time.Time
}

// NewHandler creates a handler for component writing to w. A nil verbose
// check behaves as always false.
func NewHandler(component string, w io.Writer, verbose func() bool) *Handler {
	if component == "" {
		component = "main"
	}
	return &Handler{
		component: component,
		verbose:   verbose,
		mu:        &sync.Mutex{},
		w:         w,
		now:       time.Now,
	}
}

// New creates a logger for component writing to w
func New(component string, w io.Writer, verbose func() bool) *slog.Logger {
	return slog.New(NewHandler(component, w, verbose))
}

// NewStderr creates a logger for component writing to stderr
func NewStderr(component string, verbose func() bool) *slog.Logger {
	return New(component, os.Stderr, verbose)
}

// Discard returns a logger that drops every record
func Discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// WithComponent returns a copy of l logging under another component name.
// Loggers not created by this package are returned unchanged.
func WithComponent(l *slog.Logger, component string) *slog.Logger {
	h, ok := l.Handler().(*Handler)
	if !ok {
		return l
	}
	clone := *h
	clone.component = component
	return slog.New(&clone)
}

// Enabled implements slog.Handler
func (h *Handler) Enabled(_ context.Context, level slog.Level) bool {
	if level >= slog.LevelWarn {
		return true
	}
	return h.verbose != nil && h.verbose()
}

// Handle implements slog.Handler
func (h *Handler) Handle(_ context.Context, r slog.Record) error {
	fields := make([]string, 0, len(h.attrs)+r.NumAttrs())
	for _, a := range h.attrs {
		fields = appendAttr(fields, "", a)
	}
	r.Attrs(func(a slog.Attr) bool {
		fields = appendAttr(fields, h.prefix, a)
		return true
	})

	var fieldsStr string
	if len(fields) > 0 {
		fieldsStr = fmt.Sprintf(" [%s]", strings.Join(fields, " "))
	}

	line := fmt.Sprintf("[%s] %s [%s] %s%s\n",
		h.now().Format("15:04:05.000"), r.Level.String(), h.component, r.Message, fieldsStr)

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := io.WriteString(h.w, line)
	return err
}

// WithAttrs implements slog.Handler
func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	clone := *h
	clone.attrs = make([]slog.Attr, 0, len(h.attrs)+len(attrs))
	clone.attrs = append(clone.attrs, h.attrs...)
	for _, a := range attrs {
		if h.prefix != "" {
			a.Key = h.prefix + a.Key
		}
		clone.attrs = append(clone.attrs, a)
	}
	return &clone
}

// WithGroup implements slog.Handler. Groups are flattened into dotted keys.
func (h *Handler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	clone := *h
	clone.prefix = h.prefix + name + "."
	return &clone
}

func appendAttr(fields []string, prefix string, a slog.Attr) []string {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return fields
	}
	if a.Value.Kind() == slog.KindGroup {
		groupPrefix := prefix
		if a.Key != "" {
			groupPrefix = prefix + a.Key + "."
		}
		for _, ga := range a.Value.Group() {
			fields = appendAttr(fields, groupPrefix, ga)
		}
		return fields
	}
	return append(fields, fmt.Sprintf("%s%s=%v", prefix, a.Key, a.Value.Any()))
}
