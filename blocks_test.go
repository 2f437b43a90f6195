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

import "testing"

func TestTryHeader(t *testing.T) {
	tests := []struct {
		name      string
		tokens    []*Token
		wantLevel int
		wantText  string
		wantN     int
	}{
		{
			name:      "ATX",
			tokens:    []*Token{rawText("## Section")},
			wantLevel: 2,
			wantText:  "Section",
			wantN:     1,
		},
		{
			name:      "ATXTrailingHashes",
			tokens:    []*Token{rawText("# Title ###")},
			wantLevel: 1,
			wantText:  "Title",
			wantN:     1,
		},
		{
			name: "SetextLevel1",
			tokens: []*Token{
				rawText("Title"),
				rawText("====="),
			},
			wantLevel: 1,
			wantText:  "Title",
			wantN:     2,
		},
		{
			name: "SetextLevel2",
			tokens: []*Token{
				rawText("Title"),
				rawText("-----"),
			},
			wantLevel: 2,
			wantText:  "Title",
			wantN:     2,
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			hdr, n := tryHeader(test.tokens, 0)
			if hdr == nil {
				t.Fatalf("tryHeader(%q) = nil, want Header", test.tokens)
			}
			if hdr.Level != test.wantLevel || n != test.wantN {
				t.Errorf("tryHeader(%q) = (Level=%d, n=%d), want (Level=%d, n=%d)",
					test.tokens, hdr.Level, n, test.wantLevel, test.wantN)
			}
			if got := hdr.Children[0].Text; got != test.wantText {
				t.Errorf("tryHeader(%q) text = %q, want %q", test.tokens, got, test.wantText)
			}
		})
	}
}

func TestTryHR(t *testing.T) {
	tests := []struct {
		line string
		want bool
	}{
		{"---", true},
		{"***", true},
		{"___", true},
		{"- - -", true},
		{"+++", false},
		{"==", false},
		{"--", false},
		{"plain text", false},
	}
	for _, test := range tests {
		hr, _ := tryHR([]*Token{rawText(test.line)}, 0)
		if got := hr != nil; got != test.want {
			t.Errorf("tryHR(%q) matched = %v, want %v", test.line, got, test.want)
		}
	}
}

func TestTryCodeBlock(t *testing.T) {
	tokens := []*Token{
		rawText("    line one"),
		rawText("    line two"),
		rawText("not indented"),
	}
	cb, n := tryCodeBlock(tokens, 0)
	if cb == nil {
		t.Fatal("tryCodeBlock returned nil")
	}
	if n != 2 {
		t.Errorf("n = %d, want 2", n)
	}
	const want = "line one\nline two\n"
	if cb.Text != want {
		t.Errorf("CodeBlock.Text = %q, want %q", cb.Text, want)
	}
}

func TestTryBlockQuote(t *testing.T) {
	tokens := []*Token{
		rawText("> first"),
		rawText("> second"),
		rawText("not quoted"),
	}
	bq, n := tryBlockQuote(tokens, 0)
	if bq == nil {
		t.Fatal("tryBlockQuote returned nil")
	}
	if n != 2 {
		t.Errorf("n = %d, want 2", n)
	}
	if bq.Kind != BlockQuoteKind {
		t.Errorf("Kind = %v, want BlockQuoteKind", bq.Kind)
	}
	if len(bq.Children) != 2 {
		t.Fatalf("len(Children) = %d, want 2", len(bq.Children))
	}
	if bq.Children[0].Text != "first" || bq.Children[1].Text != "second" {
		t.Errorf("Children = %q, %q; want \"first\", \"second\"", bq.Children[0].Text, bq.Children[1].Text)
	}
}

func TestTryBlockQuoteRequiresSpaceOnFirstLine(t *testing.T) {
	// The original grammar requires a mandatory space after the ">" stack
	// on the line that opens a block quote, but treats the space as
	// optional on continuation lines (markdown.cpp:240, :248).
	tokens := []*Token{rawText(">no space here")}
	if bq, n := tryBlockQuote(tokens, 0); bq != nil {
		t.Errorf("tryBlockQuote(%+v) = %+v, %d, want nil, 0", tokens, bq, n)
	}
}

func TestTryBlockQuoteContinuationSpaceOptional(t *testing.T) {
	tokens := []*Token{
		rawText("> first"),
		rawText(">second"),
	}
	bq, n := tryBlockQuote(tokens, 0)
	if bq == nil {
		t.Fatal("tryBlockQuote returned nil")
	}
	if n != 2 {
		t.Errorf("n = %d, want 2", n)
	}
	if len(bq.Children) != 2 || bq.Children[1].Text != "second" {
		t.Errorf("Children = %+v, want [first, second]", bq.Children)
	}
}

func TestClassifyBlocksMixed(t *testing.T) {
	tokens := []*Token{
		rawText("# Heading"),
		&Token{Kind: BlankLineKind},
		rawText("    a code line"),
	}
	out := classifyBlocks(tokens)
	if len(out) != 3 {
		t.Fatalf("len(out) = %d, want 3", len(out))
	}
	if out[0].Kind != HeaderKind {
		t.Errorf("out[0].Kind = %v, want HeaderKind", out[0].Kind)
	}
	if out[2].Kind != CodeBlockKind {
		t.Errorf("out[2].Kind = %v, want CodeBlockKind", out[2].Kind)
	}
}
