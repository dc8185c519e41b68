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

package mdrtf

import (
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		line string
		want []Token
	}{
		{line: "", want: nil},
		{line: "plain text", want: []Token{Text("plain text")}},
		{
			line: "a**b*c",
			want: []Token{Text("a"), Delimiter("**"), Text("b"), Delimiter("*"), Text("c")},
		},
		{
			line: "***",
			want: []Token{Delimiter("**"), Delimiter("*")},
		},
		{
			line: "[x](y)",
			want: []Token{Delimiter("["), Text("x"), Delimiter("]"), Delimiter("("), Text("y"), Delimiter(")")},
		},
		{
			line: "_`code`_",
			want: []Token{Delimiter("_"), Delimiter("`"), Text("code"), Delimiter("`"), Delimiter("_")},
		},
		{
			line: "a * b",
			want: []Token{Text("a "), Delimiter("*"), Text(" b")},
		},
	}
	for _, test := range tests {
		got := Tokenize(test.line)
		if diff := cmp.Diff(test.want, got, cmpopts.EquateEmpty()); diff != "" {
			t.Errorf("Tokenize(%q) (-want +got):\n%s", test.line, diff)
		}
	}
}

func TestTokensReusable(t *testing.T) {
	seq := Tokens("**a**")
	first := slices.Collect(seq)
	second := slices.Collect(seq)
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("second iteration differs (-first +second):\n%s", diff)
	}
	for tok := range seq {
		if tok != Delimiter("**") {
			t.Errorf("first token = %v; want %v", tok, Delimiter("**"))
		}
		break
	}
}

func TestTokenString(t *testing.T) {
	if got, want := Delimiter("**").String(), "Delimiter: **"; got != want {
		t.Errorf("Delimiter(\"**\").String() = %q; want %q", got, want)
	}
	if got, want := Text("x").String(), "Text: x"; got != want {
		t.Errorf("Text(\"x\").String() = %q; want %q", got, want)
	}
}
