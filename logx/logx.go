// Copyright (c) 2026, Fluent Kit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logx provides a leveled logging front end over [log/slog],
// with colorized level output on terminals.
package logx

import (
	"log/slog"
	"os"
)

// UserLevel is the verbosity [slog.Level] that the user has selected.
// Messages at or above this level are shown.
var UserLevel = slog.LevelWarn

func init() {
	slog.SetDefault(slog.New(NewHandler(os.Stderr)))
}

// SetLevel sets [UserLevel].
func SetLevel(level slog.Level) {
	UserLevel = level
}

// Debug logs the given message at [slog.LevelDebug].
func Debug(msg string, args ...any) {
	slog.Debug(msg, args...)
}

// Info logs the given message at [slog.LevelInfo].
func Info(msg string, args ...any) {
	slog.Info(msg, args...)
}

// Warn logs the given message at [slog.LevelWarn].
func Warn(msg string, args ...any) {
	slog.Warn(msg, args...)
}

// Error logs the given message at [slog.LevelError].
func Error(msg string, args ...any) {
	slog.Error(msg, args...)
}
