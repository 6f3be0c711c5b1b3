package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var globalLogger *zap.Logger

// Init builds the process logger. Every entry carries the service and the
// process name so API and consumer output can be told apart once shipped.
func Init(environment, process string) error {
	var config zap.Config

	if environment == "production" {
		config = zap.NewProductionConfig()
	} else {
		config = zap.NewDevelopmentConfig()
		config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	l, err := config.Build(zap.AddCallerSkip(1))
	if err != nil {
		return err
	}
	globalLogger = l.With(zap.String("service", "warehouse"), zap.String("process", process))

	return nil
}

// Replace swaps the global logger, used by tests to capture output.
func Replace(l *zap.Logger) {
	globalLogger = l
}

func Get() *zap.Logger {
	if globalLogger == nil {
		globalLogger, _ = zap.NewProduction(zap.AddCallerSkip(1))
	}
	return globalLogger
}

// Close flushes the logger
func Close() error {
	if globalLogger != nil {
		return globalLogger.Sync()
	}
	return nil
}

func Info(msg string, fields ...zap.Field) {
	Get().Info(msg, fields...)
}

func Error(msg string, fields ...zap.Field) {
	Get().Error(msg, fields...)
}

func Debug(msg string, fields ...zap.Field) {
	Get().Debug(msg, fields...)
}

func Warn(msg string, fields ...zap.Field) {
	Get().Warn(msg, fields...)
}

// Fatal logs at fatal level and exits
func Fatal(msg string, fields ...zap.Field) {
	Get().Fatal(msg, fields...)
}

// Scoped tags every entry with the component that wrote it. The global
// logger is looked up per call, so a package-level Scoped declared before
// Init still writes through the configured logger.
type Scoped struct {
	component zap.Field
}

func Component(name string) Scoped {
	return Scoped{component: zap.String("component", name)}
}

func (s Scoped) Info(msg string, fields ...zap.Field) {
	Get().Info(msg, append(fields, s.component)...)
}

func (s Scoped) Error(msg string, fields ...zap.Field) {
	Get().Error(msg, append(fields, s.component)...)
}

func (s Scoped) Debug(msg string, fields ...zap.Field) {
	Get().Debug(msg, append(fields, s.component)...)
}

func (s Scoped) Warn(msg string, fields ...zap.Field) {
	Get().Warn(msg, append(fields, s.component)...)
}
