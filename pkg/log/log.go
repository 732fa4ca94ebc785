// Package log provides the leveled logger used across the bridge, backed by zap.
package log

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is a leveled logger with structured key value context.
type Logger interface {
	Debug(args ...interface{})
	Debugf(format string, args ...interface{})
	Info(args ...interface{})
	Infof(format string, args ...interface{})
	Warning(args ...interface{})
	Warningf(format string, args ...interface{})
	Error(args ...interface{})
	Errorf(format string, args ...interface{})
	// With returns a logger which adds the key value pairs to every entry.
	With(keysAndValues ...interface{}) Logger
}

// DefaultLogger writes info level and above to stderr.
var DefaultLogger Logger = mustLogger(NewDefaultProductionLogger())

var levels = map[string]zapcore.Level{
	"trace": zapcore.DebugLevel,
	"debug": zapcore.DebugLevel,
	"info":  zapcore.InfoLevel,
	"warn":  zapcore.WarnLevel,
	"error": zapcore.ErrorLevel,
	"fatal": zapcore.FatalLevel,
}

type logger struct {
	sugar *zap.SugaredLogger
}

// NewDefaultProductionLogger returns info level JSON logger.
func NewDefaultProductionLogger() (Logger, error) {
	return NewLogger("info")
}

// NewLogger returns JSON logger writing entries at level and above to stderr.
func NewLogger(level string) (Logger, error) {
	zapLevel, exist := levels[level]
	if !exist {
		return nil, fmt.Errorf("log level %s is not allowed", level)
	}
	config := zap.NewProductionConfig()
	config.Level = zap.NewAtomicLevelAt(zapLevel)
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	zapLogger, err := config.Build()
	if err != nil {
		return nil, err
	}
	return &logger{sugar: zapLogger.Sugar()}, nil
}

// NewNopLogger returns a logger discarding every entry.
func NewNopLogger() Logger {
	return &logger{sugar: zap.NewNop().Sugar()}
}

func newFromCore(core zapcore.Core) Logger {
	return &logger{sugar: zap.New(core).Sugar()}
}

func mustLogger(l Logger, err error) Logger {
	if err != nil {
		panic(err)
	}
	return l
}

func (l *logger) Debug(args ...interface{})                   { l.sugar.Debug(args...) }
func (l *logger) Debugf(format string, args ...interface{})   { l.sugar.Debugf(format, args...) }
func (l *logger) Info(args ...interface{})                    { l.sugar.Info(args...) }
func (l *logger) Infof(format string, args ...interface{})    { l.sugar.Infof(format, args...) }
func (l *logger) Warning(args ...interface{})                 { l.sugar.Warn(args...) }
func (l *logger) Warningf(format string, args ...interface{}) { l.sugar.Warnf(format, args...) }
func (l *logger) Error(args ...interface{})                   { l.sugar.Error(args...) }
func (l *logger) Errorf(format string, args ...interface{})   { l.sugar.Errorf(format, args...) }

func (l *logger) With(keysAndValues ...interface{}) Logger {
	return &logger{sugar: l.sugar.With(keysAndValues...)}
}
