package main

import (
	"context"
	"fmt"
	"strings"

	glog "github.com/goliatone/go-logger/glog"
	"github.com/rgonek/sitegen/site"
)

const loggerName = "sitegen"

// newLogger builds a go-logger backed site.Logger.
func newLogger(level, format string) (site.Logger, error) {
	options := []glog.Option{}

	if strings.TrimSpace(level) != "" {
		lvl := normalizeLevel(level)
		if lvl == "" {
			return nil, fmt.Errorf("unsupported log level %q", level)
		}
		options = append(options, glog.WithLevel(lvl))
	}

	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", "console":
		options = append(options, glog.WithLoggerTypeConsole())
	case "json":
		options = append(options, glog.WithLoggerTypeJSON())
	case "pretty":
		options = append(options, glog.WithLoggerTypePretty())
	default:
		return nil, fmt.Errorf("unsupported log format %q", format)
	}

	root := glog.NewLogger(options...)
	return wrap(root.GetLogger(loggerName)), nil
}

func wrap(inner glog.Logger) site.Logger {
	if inner == nil {
		return site.NoOp()
	}
	return &adapter{inner: inner}
}

type adapter struct {
	inner glog.Logger
}

func (l *adapter) Trace(msg string, args ...any) { l.inner.Trace(msg, args...) }
func (l *adapter) Debug(msg string, args ...any) { l.inner.Debug(msg, args...) }
func (l *adapter) Info(msg string, args ...any)  { l.inner.Info(msg, args...) }
func (l *adapter) Warn(msg string, args ...any)  { l.inner.Warn(msg, args...) }
func (l *adapter) Error(msg string, args ...any) { l.inner.Error(msg, args...) }
func (l *adapter) Fatal(msg string, args ...any) { l.inner.Fatal(msg, args...) }

func (l *adapter) WithContext(ctx context.Context) site.Logger {
	if ctx == nil {
		return l
	}
	return wrap(l.inner.WithContext(ctx))
}

func normalizeLevel(level string) string {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace":
		return glog.Trace
	case "debug":
		return glog.Debug
	case "info":
		return glog.Info
	case "warn", "warning":
		return glog.Warn
	case "error":
		return glog.Error
	case "fatal":
		return glog.Fatal
	default:
		return ""
	}
}
