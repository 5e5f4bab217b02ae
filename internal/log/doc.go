// Package log provides logging utilities for rstcheck.
//
// The main type is TempPathHandler, an slog.Handler wrapper that rewrites
// temporary snippet paths in log attributes to a stable placeholder.
// Checker diagnostics and debug logs otherwise embed names like
// /tmp/rstcheck-1234567.c, which change on every run and make log output
// impossible to diff across runs.
package log
