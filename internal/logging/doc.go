// Package logging assembles the structured slog loggers used across
// CriticDeck. It centralizes level and format plumbing, defaults to console
// output on a terminal and JSON elsewhere, and provides a no-op logger for
// tests and wiring code that cannot fail.
package logging
