package log

import (
	"context"
	"log/slog"
	"os"
	"slices"
)

// enabledSections selects which debug-level sections are emitted.
// Warnings and errors are always emitted.
var enabledSections = []string{
	"declare",
	"cmd",
}

var level = func() *slog.LevelVar {
	v := new(slog.LevelVar)
	v.Set(slog.LevelWarn)
	return v
}()

// SetLevel adjusts the minimum level of the default logger.
func SetLevel(l slog.Level) {
	level.Set(l)
}

var LoggerOpts = &slog.HandlerOptions{
	Level: level,
	ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
		if a.Key == "time" {
			return slog.Attr{}
		}
		return a
	},
}

var DefaultLogger = slog.New(&sectionHandler{underlying: slog.NewTextHandler(os.Stderr, LoggerOpts)})

var _ slog.Handler = &sectionHandler{}

// sectionHandler drops low-level records whose section attribute is not
// in enabledSections.
type sectionHandler struct {
	underlying slog.Handler
	section    string
}

func (h sectionHandler) Enabled(ctx context.Context, l slog.Level) bool {
	return h.underlying.Enabled(ctx, l)
}

func (h sectionHandler) Handle(ctx context.Context, record slog.Record) error {
	if record.Level >= slog.LevelWarn {
		return h.underlying.Handle(ctx, record)
	}
	enabled := slices.Contains(enabledSections, h.section)
	record.Attrs(func(attr slog.Attr) bool {
		enabled = enabled || attr.Key == "section" && slices.Contains(enabledSections, attr.Value.String())
		return !enabled
	})
	if !enabled {
		return nil
	}
	return h.underlying.Handle(ctx, record)
}

func (h sectionHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	section := h.section
	for _, attr := range attrs {
		if attr.Key == "section" {
			section = attr.Value.String()
		}
	}
	return &sectionHandler{
		underlying: h.underlying.WithAttrs(attrs),
		section:    section,
	}
}

func (h sectionHandler) WithGroup(name string) slog.Handler {
	return &sectionHandler{
		underlying: h.underlying.WithGroup(name),
		section:    h.section,
	}
}
