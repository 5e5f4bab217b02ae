package log

import (
	"context"
	"log/slog"
	"os"
	"regexp"
)

// Placeholder replaces temporary snippet paths in log output.
const Placeholder = "<snippet>"

// tempPathPattern matches the file names produced by the snippet
// materializer under the system temporary directory.
var tempPathPattern = regexp.MustCompile(regexp.QuoteMeta(os.TempDir()) + `/rstcheck-[^ :\n]*`)

// TempPathHandler wraps an slog.Handler to rewrite temporary snippet paths
// in attribute values before they reach the underlying handler.
//
// Design decision: We use a handler wrapper rather than a custom logger
// because it integrates seamlessly with standard slog APIs and works with
// any underlying handler (text, JSON, etc.).
type TempPathHandler struct {
	// handler is the underlying slog handler that receives rewritten records.
	handler slog.Handler
}

// NewTempPathHandler creates a TempPathHandler wrapping the given handler.
// If handler is nil, slog.Default().Handler() is used.
func NewTempPathHandler(handler slog.Handler) *TempPathHandler {
	if handler == nil {
		handler = slog.Default().Handler()
	}
	return &TempPathHandler{handler: handler}
}

// Enabled reports whether the handler handles records at the given level.
// It delegates to the underlying handler.
func (h *TempPathHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.handler.Enabled(ctx, level)
}

// Handle rewrites the record's attributes and passes it on.
func (h *TempPathHandler) Handle(ctx context.Context, r slog.Record) error {
	rewritten := slog.NewRecord(r.Time, r.Level, r.Message, r.PC)
	r.Attrs(func(a slog.Attr) bool {
		rewritten.AddAttrs(h.rewriteAttr(a))
		return true
	})
	return h.handler.Handle(ctx, rewritten)
}

// WithAttrs returns a new handler with the given attributes added,
// rewritten first.
func (h *TempPathHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	rewritten := make([]slog.Attr, len(attrs))
	for i, a := range attrs {
		rewritten[i] = h.rewriteAttr(a)
	}
	return &TempPathHandler{handler: h.handler.WithAttrs(rewritten)}
}

// WithGroup returns a new handler with the given group name.
func (h *TempPathHandler) WithGroup(name string) slog.Handler {
	return &TempPathHandler{handler: h.handler.WithGroup(name)}
}

// rewriteAttr rewrites a single attribute, recursively handling groups.
func (h *TempPathHandler) rewriteAttr(a slog.Attr) slog.Attr {
	if a.Value.Kind() == slog.KindGroup {
		attrs := a.Value.Group()
		rewritten := make([]slog.Attr, len(attrs))
		for i, groupAttr := range attrs {
			rewritten[i] = h.rewriteAttr(groupAttr)
		}
		return slog.Attr{Key: a.Key, Value: slog.GroupValue(rewritten...)}
	}

	if a.Value.Kind() == slog.KindString {
		v := a.Value.String()
		if tempPathPattern.MatchString(v) {
			return slog.String(a.Key, tempPathPattern.ReplaceAllString(v, Placeholder))
		}
	}
	return a
}
