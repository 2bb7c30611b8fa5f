package logging

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var logger *zap.Logger

// LogLevelEnvVar is the environment variable that controls logging verbosity.
// When unset or empty, logging is silent (no zap output) so log lines never
// corrupt the interactive wizard display.
// Valid values: "debug", "info", "warn", "error"
const LogLevelEnvVar = "SANAD_LOG_LEVEL"

// Initialize creates a new logger with the specified level.
// If level is empty, it checks SANAD_LOG_LEVEL environment variable.
// If neither is set, logging is disabled (silent mode).
func Initialize(level string) error {
	// If no level provided, check environment variable
	if level == "" {
		level = os.Getenv(LogLevelEnvVar)
	}

	// If still no level, use silent mode (nop logger)
	if level == "" {
		logger = zap.NewNop()
		return nil
	}

	var zapLevel zapcore.Level
	switch level {
	case "debug":
		zapLevel = zapcore.DebugLevel
	case "info":
		zapLevel = zapcore.InfoLevel
	case "warn":
		zapLevel = zapcore.WarnLevel
	case "error":
		zapLevel = zapcore.ErrorLevel
	default:
		// Unknown level - use info as default when explicitly set to something
		zapLevel = zapcore.InfoLevel
	}

	config := zap.Config{
		Level:            zap.NewAtomicLevelAt(zapLevel),
		Development:      false,
		Encoding:         "console",
		EncoderConfig:    zap.NewDevelopmentEncoderConfig(),
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
	}

	// Customize encoder for better readability
	config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.EncoderConfig.EncodeCaller = zapcore.ShortCallerEncoder

	var err error
	logger, err = config.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	return nil
}

// InitializeFromEnv initializes the logger from the SANAD_LOG_LEVEL
// environment variable. This is the recommended way to initialize logging
// for CLI commands that want silent mode by default.
func InitializeFromEnv() error {
	return Initialize("")
}

// GetLogger returns the global logger instance
func GetLogger() *zap.Logger {
	if logger == nil {
		// Fallback to silent logger if not initialized
		// This ensures no unexpected log output in CLI commands
		logger = zap.NewNop()
	}
	return logger
}

// Info logs an info message
func Info(msg string, fields ...zap.Field) {
	GetLogger().Info(msg, fields...)
}

// Debug logs a debug message
func Debug(msg string, fields ...zap.Field) {
	GetLogger().Debug(msg, fields...)
}

// Warn logs a warning message
func Warn(msg string, fields ...zap.Field) {
	GetLogger().Warn(msg, fields...)
}

// Error logs an error message
func Error(msg string, fields ...zap.Field) {
	GetLogger().Error(msg, fields...)
}

// Fatal logs a fatal message and exits
func Fatal(msg string, fields ...zap.Field) {
	GetLogger().Fatal(msg, fields...)
}

// LogStepTransition logs a wizard step change
func LogStepTransition(from, to int, reason string) {
	Info("Step transition",
		zap.Int("from", from),
		zap.Int("to", to),
		zap.String("reason", reason),
	)
}

// LogPersistence logs the outcome of a record write to the store
func LogPersistence(key string, size int, err error) {
	if err != nil {
		Warn("Record persistence failed",
			zap.String("key", key),
			zap.Int("blob_size", size),
			zap.Error(err),
		)
		return
	}
	Debug("Record persisted",
		zap.String("key", key),
		zap.Int("blob_size", size),
	)
}

// LogSuggestionRequest logs an outgoing suggestion request
func LogSuggestionRequest(field string, language string, seedLen int) {
	Debug("Suggestion requested",
		zap.String("field", field),
		zap.String("language", language),
		zap.Int("seed_length", seedLen),
	)
}

// LogSuggestionResult logs the outcome of a suggestion request
func LogSuggestionResult(field string, err error) {
	if err != nil {
		Warn("Suggestion request failed",
			zap.String("field", field),
			zap.Error(err),
		)
		return
	}
	Debug("Suggestion received", zap.String("field", field))
}

// LogSubmission logs the outcome of a final application submission
func LogSubmission(err error) {
	if err != nil {
		Error("Application submission failed", zap.Error(err))
		return
	}
	Info("Application submitted")
}
