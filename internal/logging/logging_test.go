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

package logging

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestNewLevel(t *testing.T) {
	tests := []struct {
		level string
		want  log.Level
	}{
		{"debug", log.DebugLevel},
		{"info", log.InfoLevel},
		{"warn", log.WarnLevel},
		{"error", log.ErrorLevel},
		{"bogus", log.InfoLevel},
		{"", log.InfoLevel},
	}
	for _, test := range tests {
		if got := New(new(bytes.Buffer), test.level).GetLevel(); got != test.want {
			t.Errorf("New(w, %q).GetLevel() = %v; want %v", test.level, got, test.want)
		}
	}
}

func TestFields(t *testing.T) {
	buf := new(bytes.Buffer)
	logger := New(buf, "debug")
	logger.Debug("rendered", FieldFormat, "rtf", FieldBytes, 42)
	got := buf.String()
	for _, want := range []string{"rendered", "format=rtf", "bytes=42"} {
		if !strings.Contains(got, want) {
			t.Errorf("log output = %q; want to contain %q", got, want)
		}
	}
}

func TestContext(t *testing.T) {
	if got := FromContext(context.Background()); got != Default() {
		t.Errorf("FromContext(context.Background()) = %p; want Default() = %p", got, Default())
	}
	logger := New(new(bytes.Buffer), "debug")
	ctx := WithLogger(context.Background(), logger)
	if got := FromContext(ctx); got != logger {
		t.Errorf("FromContext(WithLogger(ctx, logger)) = %p; want %p", got, logger)
	}
}

func TestSetDefault(t *testing.T) {
	old := Default()
	t.Cleanup(func() { SetDefault(old) })

	logger := New(new(bytes.Buffer), "info")
	SetDefault(logger)
	SetLevel("error")
	if got := Default(); got != logger {
		t.Errorf("Default() = %p; want %p", got, logger)
	}
	if got := logger.GetLevel(); got != log.ErrorLevel {
		t.Errorf("level after SetLevel(\"error\") = %v; want %v", got, log.ErrorLevel)
	}
}
