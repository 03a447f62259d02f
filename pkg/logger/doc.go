// Package logger builds *slog.Logger values for the argverify command and for
// callers that want verification failures logged.
//
// New applies a list of Option functions on top of text-to-stderr defaults:
//
//	log := logger.New(
//	    logger.WithEnvironment("ci"),
//	    logger.WithLevel(slog.LevelDebug),
//	)
//
// Attribute helpers (Label, Position, Expected, Actual, Case, ...) keep key
// names consistent between the verifier and the command.
package logger
