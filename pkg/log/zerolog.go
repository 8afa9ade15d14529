package log

import (
	"context"
	"io"
	"os"
	"sync"

	"github.com/rs/zerolog"

	"github.com/YuminosukeSato/simpledt/pkg/errors"
)

// ZerologLogger implements Logger on top of zerolog.
type ZerologLogger struct {
	zl zerolog.Logger
}

// NewZerologLogger creates a JSON logger writing to w that emits records at
// or above level.
func NewZerologLogger(w io.Writer, level Level) *ZerologLogger {
	zl := zerolog.New(w).Level(toZerologLevel(level)).With().Timestamp().Logger()
	return &ZerologLogger{zl: zl}
}

// NewConsoleLogger creates a human-readable logger for terminals.
func NewConsoleLogger(w io.Writer, level Level) *ZerologLogger {
	cw := zerolog.ConsoleWriter{Out: w, TimeFormat: "15:04:05"}
	zl := zerolog.New(cw).Level(toZerologLevel(level)).With().Timestamp().Logger()
	return &ZerologLogger{zl: zl}
}

// Nop returns a logger that discards everything.
func Nop() Logger {
	return &ZerologLogger{zl: zerolog.Nop()}
}

// Debug implements Logger.Debug.
func (l *ZerologLogger) Debug(msg string, fields ...any) {
	emit(l.zl.Debug(), msg, fields)
}

// Info implements Logger.Info.
func (l *ZerologLogger) Info(msg string, fields ...any) {
	emit(l.zl.Info(), msg, fields)
}

// Warn implements Logger.Warn.
func (l *ZerologLogger) Warn(msg string, fields ...any) {
	emit(l.zl.Warn(), msg, fields)
}

// Error implements Logger.Error.
func (l *ZerologLogger) Error(msg string, fields ...any) {
	emit(l.zl.Error(), msg, fields)
}

// With implements Logger.With.
func (l *ZerologLogger) With(fields ...any) Logger {
	return &ZerologLogger{zl: l.zl.With().Fields(pairs(fields)).Logger()}
}

// Enabled implements Logger.Enabled.
func (l *ZerologLogger) Enabled(_ context.Context, level Level) bool {
	zlevel := toZerologLevel(level)
	return zlevel >= l.zl.GetLevel() && zlevel >= zerolog.GlobalLevel()
}

// emit writes one event. A leading error value is logged under ErrAttrKey.
// Any error logged under ErrAttrKey gets its stack detail under
// StacktraceAttrKey.
func emit(e *zerolog.Event, msg string, fields []any) {
	if e == nil {
		return
	}
	if len(fields) > 0 {
		if err, ok := fields[0].(error); ok {
			e = withError(e, err)
			fields = fields[1:]
		}
	}
	fields = pairs(fields)
	rest := make([]any, 0, len(fields))
	for i := 0; i < len(fields); i += 2 {
		if key, ok := fields[i].(string); ok && key == ErrAttrKey {
			if err, ok := fields[i+1].(error); ok {
				e = withError(e, err)
				continue
			}
		}
		rest = append(rest, fields[i], fields[i+1])
	}
	if len(rest) > 0 {
		e = e.Fields(rest)
	}
	e.Msg(msg)
}

func withError(e *zerolog.Event, err error) *zerolog.Event {
	e = e.AnErr(ErrAttrKey, err)
	if stack := errors.StackDetail(err); stack != "" {
		e = e.Str(StacktraceAttrKey, stack)
	}
	return e
}

// pairs drops a trailing key without a value, which zerolog would reject.
func pairs(fields []any) []any {
	if len(fields)%2 == 1 {
		return fields[:len(fields)-1]
	}
	return fields
}

func toZerologLevel(level Level) zerolog.Level {
	switch {
	case level <= LevelDebug:
		return zerolog.DebugLevel
	case level <= LevelInfo:
		return zerolog.InfoLevel
	case level <= LevelWarn:
		return zerolog.WarnLevel
	default:
		return zerolog.ErrorLevel
	}
}

// ZerologProvider implements LoggerProvider with a shared zerolog root.
type ZerologProvider struct {
	mu     sync.RWMutex
	out    io.Writer
	level  Level
	root   *ZerologLogger
	pretty bool
}

// NewZerologProvider creates a provider writing JSON lines to w.
func NewZerologProvider(w io.Writer, level Level) *ZerologProvider {
	p := &ZerologProvider{out: w, level: level}
	p.rebuild()
	return p
}

func (p *ZerologProvider) rebuild() {
	if p.pretty {
		p.root = NewConsoleLogger(p.out, p.level)
		return
	}
	p.root = NewZerologLogger(p.out, p.level)
}

// GetLogger implements LoggerProvider.GetLogger.
func (p *ZerologProvider) GetLogger() Logger {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.root
}

// GetLoggerWithName implements LoggerProvider.GetLoggerWithName.
func (p *ZerologProvider) GetLoggerWithName(name string) Logger {
	return p.GetLogger().With(ComponentKey, name)
}

// SetLevel implements LoggerProvider.SetLevel. Loggers obtained earlier keep
// their old level.
func (p *ZerologProvider) SetLevel(level Level) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.level = level
	p.rebuild()
}

// SetOutput redirects the provider. pretty selects zerolog's console writer.
func (p *ZerologProvider) SetOutput(w io.Writer, pretty bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.out = w
	p.pretty = pretty
	p.rebuild()
}

var (
	providerMu      sync.RWMutex
	defaultProvider LoggerProvider = NewZerologProvider(os.Stderr, LevelInfo)
)

// SetProvider replaces the package-level provider.
func SetProvider(p LoggerProvider) {
	providerMu.Lock()
	defer providerMu.Unlock()
	defaultProvider = p
}

// Provider returns the package-level provider.
func Provider() LoggerProvider {
	providerMu.RLock()
	defer providerMu.RUnlock()
	return defaultProvider
}

// GetLogger returns the default logger of the package-level provider.
func GetLogger() Logger {
	return Provider().GetLogger()
}

// GetLoggerWithName returns a component logger from the package-level provider.
func GetLoggerWithName(name string) Logger {
	return Provider().GetLoggerWithName(name)
}

// SetLevel sets the level of the package-level provider.
func SetLevel(level Level) {
	Provider().SetLevel(level)
}

// RouteWarnings sends pkg/errors warnings through the package-level logger.
// Warnings that implement zerolog.LogObjectMarshaler keep their structure
// when the provider is zerolog-backed.
func RouteWarnings() {
	errors.SetZerologWarnFunc(func(w error) {
		if zp, ok := Provider().(*ZerologProvider); ok {
			zp.mu.RLock()
			root := zp.root
			zp.mu.RUnlock()
			e := root.zl.Warn()
			if m, ok := w.(zerolog.LogObjectMarshaler); ok {
				e = e.Object("warning", m)
			}
			e.Msg(w.Error())
			return
		}
		GetLogger().Warn(w.Error(), ErrAttrKey, w)
	})
}
