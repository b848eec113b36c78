// Package logging assembles the structured slog loggers used by catalogimg.
//
// It owns the console and JSON handlers, centralizes level and output
// plumbing, and exposes component-aware helpers so every log line carries the
// same shape. The package also provides a no-op logger for tests and wiring
// code that cannot fail.
package logging
