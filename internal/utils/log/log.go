package log

import (
	"log/slog"
	"strings"
	"sync"
	"sync/atomic"

	charmlog "github.com/charmbracelet/log"
)

var (
	defaultStylesOnce sync.Once
	defaultStyles     atomic.Pointer[Styles]
	defaultLoggerOnce sync.Once
	defaultLogger     atomic.Pointer[slog.Logger]
)

func initializeStyles() *Styles {
	styles := charmlog.DefaultStyles()
	for _, ls := range levelStyles {
		levelStr := strings.ToUpper(ls.level.String())
		if len(levelStr) < ls.maxWidth {
			levelStr = levelStr + strings.Repeat(" ", ls.maxWidth-len(levelStr))
		}
		styles.Levels[ls.level] = ls.style.SetString(levelStr)
	}
	return styles
}

// DefaultStyles returns the level styles shared by every logger.
func DefaultStyles() *Styles {
	defaultStylesOnce.Do(func() {
		defaultStyles.Store(initializeStyles())
	})
	return defaultStyles.Load()
}

// New creates a slog logger backed by a charmbracelet/log handler.
func New(opts ...Option) *slog.Logger {
	o := DefaultOptions()
	o.Apply(opts...)

	if o.OutputFunc != nil {
		if w, err := o.OutputFunc(); err == nil {
			o.Writer = w
		}
	}

	handler := charmlog.NewWithOptions(o.Writer, o.Options)
	handler.SetStyles(o.Styles)
	if len(o.Fields) > 0 {
		handler = handler.With(o.Fields...)
	}

	logger := slog.New(handler)

	if o.Default {
		charmlog.SetDefault(handler)
		slog.SetDefault(logger)
		defaultLogger.Store(logger)
	}

	return logger
}

// Default returns the default logger, creating one on stderr if needed.
func Default() *slog.Logger {
	defaultLoggerOnce.Do(func() {
		if defaultLogger.Load() == nil {
			defaultLogger.Store(New(AsDefault()))
		}
	})
	return defaultLogger.Load()
}

// Reset resets all global state (useful for testing)
func Reset() {
	defaultStylesOnce = sync.Once{}
	defaultStyles.Store(nil)
	defaultLoggerOnce = sync.Once{}
	defaultLogger.Store(nil)
}

func handler() *charmlog.Logger {
	return Default().Handler().(*charmlog.Logger)
}

func Debug(msg string, args ...any) { handler().Debug(msg, args...) }
func Info(msg string, args ...any)  { handler().Info(msg, args...) }
func Warn(msg string, args ...any)  { handler().Warn(msg, args...) }
func Error(msg string, args ...any) { handler().Error(msg, args...) }
