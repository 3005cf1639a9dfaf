// Package logger provides structured logging functionality for the application
// using Go's standard library log/slog package. Loggers are configured once at
// startup and carried through request contexts so that request-scoped
// attributes such as trace IDs appear on every line.
package logger
