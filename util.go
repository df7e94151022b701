package dicomlite

import (
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// logLevel is shared by every logger built by this package so that
// `SetLoggingLevel` applies to loggers installed with `SetLogger` too.
var logLevel = zap.NewAtomicLevelAt(zapcore.InfoLevel)

var logger = NewConsoleLogger(zapcore.Lock(os.Stderr))

func normaliseWriters(writers ...zapcore.WriteSyncer) zapcore.WriteSyncer {
	if len(writers) == 1 {
		return writers[0]
	}
	return zapcore.NewMultiWriteSyncer(writers...)
}

// NewJSONLogger creates a `zap.SugaredLogger` configured for JSON output to `writers`
func NewJSONLogger(writers ...zapcore.WriteSyncer) *zap.SugaredLogger {
	writer := normaliseWriters(writers...)
	encoderCfg := zapcore.EncoderConfig{
		TimeKey:        "ts",
		MessageKey:     "msg",
		LevelKey:       "level",
		NameKey:        "logger",
		EncodeLevel:    zapcore.LowercaseLevelEncoder,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
	}
	core := zapcore.NewCore(zapcore.NewJSONEncoder(encoderCfg), writer, logLevel)
	return zap.New(core).Sugar()
}

// NewConsoleLogger creates a `zap.SugaredLogger` configured for human-readable output to `writers`
func NewConsoleLogger(writers ...zapcore.WriteSyncer) *zap.SugaredLogger {
	writer := normaliseWriters(writers...)
	encoderCfg := zapcore.EncoderConfig{
		TimeKey:        "ts",
		MessageKey:     "msg",
		LevelKey:       "level",
		NameKey:        "logger",
		EncodeLevel:    zapcore.LowercaseColorLevelEncoder,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
	}
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encoderCfg), writer, logLevel)
	return zap.New(core).Sugar()
}

// SetLogger replaces the package logger. It is not safe to call concurrently
// with decoding; install loggers during start-up.
func SetLogger(l *zap.SugaredLogger) {
	if l == nil {
		l = zap.NewNop().Sugar()
	}
	logger = l
}

// Logger returns the package logger.
func Logger() *zap.SugaredLogger {
	return logger
}

// SetLoggingLevel takes a level string and accordingly enables/disables loggers
// Supported values:
// "debug" / "5": all logging enabled
// "info" / "4":  info and above enabled
// "warn" / "3":  warn and above enabled
// "error" / "2": error and above enabled
// "fatal" / "1": only fatal enabled
// "disabled" / "none" / "off", "0": all loggers disabled
func SetLoggingLevel(level string) error {
	switch strings.ToLower(level) {
	case "debug", "5":
		logLevel.SetLevel(zapcore.DebugLevel)
	case "info", "4":
		logLevel.SetLevel(zapcore.InfoLevel)
	case "warn", "3":
		logLevel.SetLevel(zapcore.WarnLevel)
	case "error", "2":
		logLevel.SetLevel(zapcore.ErrorLevel)
	case "fatal", "1":
		logLevel.SetLevel(zapcore.FatalLevel)
	case "disabled", "none", "off", "0":
		logLevel.SetLevel(zapcore.FatalLevel + 1)
	default:
		return fmt.Errorf(`invalid log level "%s". choose from "debug", "info", "warn", "error", "fatal", or "none"`, level)
	}
	return nil
}

// Debugf logs at debug level. Arguments are handled in the manner of fmt.Printf
func Debugf(format string, v ...interface{}) {
	logger.Debugf(format, v...)
}

// Infof logs at info level. Arguments are handled in the manner of fmt.Printf
func Infof(format string, v ...interface{}) {
	logger.Infof(format, v...)
}

// Warnf logs at warn level. Arguments are handled in the manner of fmt.Printf
func Warnf(format string, v ...interface{}) {
	logger.Warnf(format, v...)
}

// Errorf logs at error level. Arguments are handled in the manner of fmt.Printf
func Errorf(format string, v ...interface{}) {
	logger.Errorf(format, v...)
}

// Fatalf logs at fatal level, then exits. Only commands should call it.
func Fatalf(format string, v ...interface{}) {
	logger.Fatalf(format, v...)
}
