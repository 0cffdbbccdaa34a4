package utils

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// LogLevel represents the logging level
type LogLevel string

const (
	LogLevelDebug LogLevel = "debug"
	LogLevelInfo  LogLevel = "info"
	LogLevelWarn  LogLevel = "warn"
	LogLevelError LogLevel = "error"
)

// LogFormat represents the logging format
type LogFormat string

const (
	LogFormatText LogFormat = "text"
	LogFormatJSON LogFormat = "json"
)

// Logger wraps logrus.Logger with additional functionality
type Logger struct {
	*logrus.Logger
}

// LoggerConfig holds configuration for the logger
type LoggerConfig struct {
	Level  LogLevel  `yaml:"level" mapstructure:"level"`
	Format LogFormat `yaml:"format" mapstructure:"format"`
	Output io.Writer `yaml:"-" mapstructure:"-"`
}

// NewLogger creates a new logger with the given configuration.
// Logs go to stderr unless Output is set; stdout is reserved for results.
func NewLogger(config LoggerConfig) *Logger {
	logger := logrus.New()

	level, err := logrus.ParseLevel(string(config.Level))
	if err != nil {
		level = logrus.WarnLevel
	}
	logger.SetLevel(level)

	switch config.Format {
	case LogFormatJSON:
		logger.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: "2006-01-02T15:04:05.000Z07:00",
		})
	default:
		logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: "2006-01-02T15:04:05.000Z07:00",
		})
	}

	if config.Output != nil {
		logger.SetOutput(config.Output)
	} else {
		logger.SetOutput(os.Stderr)
	}

	return &Logger{Logger: logger}
}

// NewDefaultLogger creates a logger with default configuration
func NewDefaultLogger() *Logger {
	return NewLogger(LoggerConfig{
		Level:  LogLevelWarn,
		Format: LogFormatText,
	})
}

// WithComponent adds a component field to the logger
func (l *Logger) WithComponent(component string) *logrus.Entry {
	return l.WithField("component", component)
}

// ParseLogLevel parses a log level string
func ParseLogLevel(level string) (LogLevel, bool) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return LogLevelDebug, true
	case "info":
		return LogLevelInfo, true
	case "warn", "warning":
		return LogLevelWarn, true
	case "error":
		return LogLevelError, true
	default:
		return LogLevelWarn, false
	}
}

// ParseLogFormat parses a log format string
func ParseLogFormat(format string) (LogFormat, bool) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "text", "":
		return LogFormatText, true
	case "json":
		return LogFormatJSON, true
	default:
		return LogFormatText, false
	}
}
