// Package notify provides utilities for sending formatted notifications to CLI users.
//
// This package includes:
//   - [WriteMessage] for displaying formatted messages with type-specific symbols and colors
//   - [TimestampingWriter] for prefixing each emitted line with a wall-clock timestamp
//
// Message types include success (✔), error (✗), warning (⚠), info (ℹ), activity (►),
// generate (✚), and title messages with customizable emojis.
//
// Wrap a command's error stream with [NewTimestampingWriter] to get timestamped
// diagnostics without any of the message producers knowing about it.
package notify
