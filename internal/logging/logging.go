// Copyright 2023 Ross Light
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//		 https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

// Package logging configures the structured logger used by the mdrtf command.
// Library packages never log;
// they return errors that the command logs with [FieldError].
package logging

import (
	"context"
	"io"
	"os"
	"sync"

	"github.com/charmbracelet/log"
)

// Field names for structured log entries.
const (
	FieldError  = "error"
	FieldInput  = "input"
	FieldOutput = "output"
	FieldFormat = "format"
	FieldConfig = "config"
	FieldBytes  = "bytes"
	FieldNodes  = "nodes"

	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"
)

var (
	defaultMu     sync.Mutex
	defaultLogger *log.Logger
)

// New returns a logger that writes to w at the given level
// ("debug", "info", "warn", or "error").
// Unknown levels are treated as "info".
func New(w io.Writer, level string) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: false,
		ReportCaller:    false,
	})
	setLevel(logger, level)
	return logger
}

func setLevel(logger *log.Logger, level string) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		lvl = log.InfoLevel
	}
	logger.SetLevel(lvl)
}

// Default returns the process-wide logger,
// which writes to standard error at info level unless replaced.
func Default() *log.Logger {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	if defaultLogger == nil {
		defaultLogger = New(os.Stderr, "info")
	}
	return defaultLogger
}

// SetDefault replaces the process-wide logger.
func SetDefault(logger *log.Logger) {
	defaultMu.Lock()
	defaultLogger = logger
	defaultMu.Unlock()
}

// SetLevel changes the level of the process-wide logger.
func SetLevel(level string) {
	setLevel(Default(), level)
}

type contextKey struct{}

// WithLogger returns a copy of ctx that carries logger.
func WithLogger(ctx context.Context, logger *log.Logger) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, contextKey{}, logger)
}

// FromContext returns the logger attached to ctx by [WithLogger]
// or [Default] if there is none.
func FromContext(ctx context.Context) *log.Logger {
	if ctx != nil {
		if logger, ok := ctx.Value(contextKey{}).(*log.Logger); ok && logger != nil {
			return logger
		}
	}
	return Default()
}
