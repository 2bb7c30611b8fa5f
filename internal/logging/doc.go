// Package logging provides structured logging for the sanad wizard.
//
// This package wraps zap logger with convenience functions for the logging
// patterns used throughout the application. Because the primary interface is
// a full-screen terminal wizard, logging defaults to silent: output only
// appears when SANAD_LOG_LEVEL is set, and always goes to stderr.
//
// # Log Levels
//
// The package supports standard log levels:
//   - Debug: Detailed debugging info (persistence writes, suggestion calls)
//   - Info: Normal operations (step transitions, submission)
//   - Warn: Non-fatal issues (store write failures, provider errors)
//   - Error: Serious issues (submission failure)
//
// # Structured Logging
//
// All log functions use structured fields for queryability:
//
//	logging.Info("Step transition",
//	    zap.Int("from", 1),
//	    zap.Int("to", 2),
//	)
//
// Domain-specific helpers cover the recurring events: LogStepTransition,
// LogPersistence, LogSuggestionRequest, LogSuggestionResult, LogSubmission.
//
// # Configuration
//
// Initialize logging at startup:
//
//	if err := logging.InitializeFromEnv(); err != nil {
//	    log.Fatal(err)
//	}
//
// # Thread Safety
//
// All logging functions are safe for concurrent use. The underlying zap
// logger handles synchronization automatically.
package logging
