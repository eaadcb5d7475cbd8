package ir

import (
	"context"
	"log/slog"
)

// slogExpr wraps an Expr as a slog.LogValuer to not render expression strings
// unless they definitely need to be logged
func slogExpr(expr Expr) slog.LogValuer {
	return exprLogValuer{expr}
}
func slogPattern(p Pattern) slog.LogValuer { return patternLogValuer{p} }
func slogType(t TypeExpr) slog.LogValuer   { return typeLogValuer{t} }

type exprLogValuer struct{ Expr }
type patternLogValuer struct{ Pattern }
type typeLogValuer struct{ TypeExpr }

func (l exprLogValuer) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("str", ExprString(l.Expr)),
		slog.String("pos", l.Loc().String()),
		slog.String("name", l.Describe()),
	)
}
func (l patternLogValuer) LogValue() slog.Value { return slog.StringValue(PatternString(l.Pattern)) }
func (l typeLogValuer) LogValue() slog.Value    { return slog.StringValue(TypeString(l.TypeExpr)) }

// IRSlogHandler is a slog.Handler capable of lazy-printing expression trees, patterns and types
func IRSlogHandler(underlying slog.Handler) slog.Handler {
	return &exprLogHandler{underlying: underlying}
}

type exprLogHandler struct {
	underlying slog.Handler
}

func wrapValue(attr slog.Attr) slog.Attr {
	if attr.Value.Kind() != slog.KindAny {
		return attr
	}
	switch value := attr.Value.Any().(type) {
	case Expr:
		attr.Value = slog.AnyValue(slogExpr(value))
	case Pattern:
		attr.Value = slog.AnyValue(slogPattern(value))
	case TypeExpr:
		attr.Value = slog.AnyValue(slogType(value))
	}
	return attr
}

func (l *exprLogHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return l.underlying.Enabled(ctx, level)
}

func (l *exprLogHandler) Handle(ctx context.Context, record slog.Record) error {
	newRecord := slog.NewRecord(record.Time, record.Level, record.Message, record.PC)
	// for each attr, add it wrapped in a LogValuer if it is an Any holding IR
	record.Attrs(func(attr slog.Attr) bool {
		newRecord.AddAttrs(wrapValue(attr))
		return true
	})
	return l.underlying.Handle(ctx, newRecord)
}

func (l *exprLogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	wrapped := make([]slog.Attr, len(attrs))
	for i, attr := range attrs {
		wrapped[i] = wrapValue(attr)
	}
	return IRSlogHandler(l.underlying.WithAttrs(wrapped))
}

func (l *exprLogHandler) WithGroup(name string) slog.Handler {
	return IRSlogHandler(l.underlying.WithGroup(name))
}
