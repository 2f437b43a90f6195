// Copyright 2026 The nppmarkdown Authors
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

package markdown

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestLineReaderFeed(t *testing.T) {
	tests := []struct {
		name      string
		chunks    []string
		wantLines []string
		wantRest  string
	}{
		{
			name:      "LF",
			chunks:    []string{"a\nb\nc"},
			wantLines: []string{"a", "b"},
			wantRest:  "c",
		},
		{
			name:      "CRLF",
			chunks:    []string{"a\r\nb\r\n"},
			wantLines: []string{"a", "b"},
			wantRest:  "",
		},
		{
			name:      "LFCR",
			chunks:    []string{"a\n\rb"},
			wantLines: []string{"a"},
			wantRest:  "b",
		},
		{
			name:      "SplitAcrossFeeds",
			chunks:    []string{"ab", "c\nd"},
			wantLines: []string{"abc"},
			wantRest:  "d",
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			var lr lineReader
			var got []string
			for _, c := range test.chunks {
				got = append(got, lr.feed(c)...)
			}
			if diff := cmp.Diff(test.wantLines, got); diff != "" {
				t.Errorf("lines (-want +got):\n%s", diff)
			}
			if rest := lr.flush(); rest != test.wantRest {
				t.Errorf("flush() = %q, want %q", rest, test.wantRest)
			}
		})
	}
}

func TestExpandTabs(t *testing.T) {
	tests := []struct {
		line     string
		tabWidth int
		want     string
	}{
		{"\tx", 4, "    x"},
		{"a\tb", 4, "a   b"},
		{"ab\tc", 2, "ab  c"},
		{"no tabs here", 4, "no tabs here"},
	}
	for _, test := range tests {
		if got := expandTabs(test.line, test.tabWidth); got != test.want {
			t.Errorf("expandTabs(%q, %d) = %q, want %q", test.line, test.tabWidth, got, test.want)
		}
	}
}

func TestIsBlankLine(t *testing.T) {
	tests := []struct {
		line string
		want bool
	}{
		{"", true},
		{"   ", true},
		{"<-- comment -->", true},
		{"  <-- a --> <-- b -->  ", true},
		{"<!-- comment -->", false},
		{"text", false},
		{"  x  ", false},
	}
	for _, test := range tests {
		if got := isBlankLine(test.line); got != test.want {
			t.Errorf("isBlankLine(%q) = %v, want %v", test.line, got, test.want)
		}
	}
}

func TestReadLines(t *testing.T) {
	toks := readLines([]string{"hello", "", "world"}, 4)
	if len(toks) != 3 {
		t.Fatalf("len(toks) = %d, want 3", len(toks))
	}
	if toks[0].Kind != RawTextKind || toks[0].Text != "hello" {
		t.Errorf("toks[0] = %+v, want RawTextKind %q", toks[0], "hello")
	}
	if toks[1].Kind != BlankLineKind {
		t.Errorf("toks[1].Kind = %v, want BlankLineKind", toks[1].Kind)
	}
	if toks[2].Kind != RawTextKind || toks[2].Text != "world" {
		t.Errorf("toks[2] = %+v, want RawTextKind %q", toks[2], "world")
	}
}
