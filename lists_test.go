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
	"strings"
	"testing"
)

func TestMatchListItem(t *testing.T) {
	tests := []struct {
		line        string
		wantOK      bool
		wantOrdered bool
		wantIndent  int
		wantContent string
	}{
		{"* a", true, false, 0, "a"},
		{"  - b", true, false, 2, "b"},
		{"1. one", true, true, 0, "one"},
		{"not a list", false, false, 0, ""},
	}
	for _, test := range tests {
		m, ok := matchListItem(test.line)
		if ok != test.wantOK {
			t.Errorf("matchListItem(%q) ok = %v, want %v", test.line, ok, test.wantOK)
			continue
		}
		if !ok {
			continue
		}
		if m.ordered != test.wantOrdered || m.indent != test.wantIndent || m.content != test.wantContent {
			t.Errorf("matchListItem(%q) = %+v, want ordered=%v indent=%d content=%q",
				test.line, m, test.wantOrdered, test.wantIndent, test.wantContent)
		}
	}
}

func TestTryListUnordered(t *testing.T) {
	tokens := []*Token{
		rawText("* a"),
		rawText("* b"),
	}
	lst, n := tryList(tokens, 0)
	if lst == nil {
		t.Fatal("tryList returned nil")
	}
	if n != 2 {
		t.Errorf("n = %d, want 2", n)
	}
	if lst.Kind != UnorderedListKind {
		t.Errorf("Kind = %v, want UnorderedListKind", lst.Kind)
	}
	if len(lst.Children) != 2 {
		t.Fatalf("len(Children) = %d, want 2", len(lst.Children))
	}
	for _, it := range lst.Children {
		if it.Kind != ListItemKind {
			t.Errorf("item Kind = %v, want ListItemKind", it.Kind)
		}
	}
}

func TestTryListOrdered(t *testing.T) {
	tokens := []*Token{
		rawText("1. one"),
		rawText("2. two"),
	}
	lst, n := tryList(tokens, 0)
	if lst == nil {
		t.Fatal("tryList returned nil")
	}
	if n != 2 || lst.Kind != OrderedListKind {
		t.Errorf("got n=%d Kind=%v, want n=2 Kind=OrderedListKind", n, lst.Kind)
	}
}

func TestTryListNested(t *testing.T) {
	tokens := []*Token{
		rawText("* a"),
		rawText("  * nested1"),
		rawText("  * nested2"),
		rawText("* b"),
	}
	lst, n := tryList(tokens, 0)
	if lst == nil {
		t.Fatal("tryList returned nil")
	}
	if n != 4 {
		t.Errorf("n = %d, want 4", n)
	}
	if len(lst.Children) != 2 {
		t.Fatalf("len(Children) = %d, want 2", len(lst.Children))
	}
	first := lst.Children[0]
	var foundNested bool
	for _, c := range first.Children {
		if c.Kind == UnorderedListKind {
			foundNested = true
			if len(c.Children) != 2 {
				t.Errorf("nested list has %d items, want 2", len(c.Children))
			}
		}
	}
	if !foundNested {
		t.Errorf("first item has no nested list: %+v", first.Children)
	}
}

func TestTryListNestedAfterBlank(t *testing.T) {
	tokens := []*Token{
		rawText("* a"),
		{Kind: BlankLineKind, Text: ""},
		rawText("  * nested1"),
		rawText("  * nested2"),
		rawText("* b"),
	}
	lst, n := tryList(tokens, 0)
	if lst == nil {
		t.Fatal("tryList returned nil")
	}
	if n != 5 {
		t.Errorf("n = %d, want 5", n)
	}
	if !lst.ParagraphMode {
		t.Error("ParagraphMode = false, want true (blank-separated sub-list makes the outer list loose)")
	}
	if len(lst.Children) != 2 {
		t.Fatalf("len(Children) = %d, want 2", len(lst.Children))
	}
	var foundNested bool
	for _, c := range lst.Children[0].Children {
		if c.Kind == UnorderedListKind {
			foundNested = true
			if len(c.Children) != 2 {
				t.Errorf("nested list has %d items, want 2", len(c.Children))
			}
		}
	}
	if !foundNested {
		t.Errorf("first item has no nested list: %+v", lst.Children[0].Children)
	}
}

func TestTryListCodeBlockAfterBlankSetsParagraphMode(t *testing.T) {
	tokens := []*Token{
		rawText("* a"),
		{Kind: BlankLineKind, Text: ""},
		rawText(strings.Repeat(" ", 8) + "code line"),
		rawText("* b"),
	}
	lst, n := tryList(tokens, 0)
	if lst == nil {
		t.Fatal("tryList returned nil")
	}
	if n != 4 {
		t.Errorf("n = %d, want 4", n)
	}
	if !lst.ParagraphMode {
		t.Error("ParagraphMode = false, want true (blank-separated code block makes the list loose)")
	}
	if len(lst.Children) != 2 {
		t.Fatalf("len(Children) = %d, want 2", len(lst.Children))
	}
	var foundCode bool
	for _, c := range lst.Children[0].Children {
		if c.Kind == CodeBlockKind {
			foundCode = true
		}
	}
	if !foundCode {
		t.Errorf("first item has no code block: %+v", lst.Children[0].Children)
	}
}

func TestTryListRejectsNonList(t *testing.T) {
	tokens := []*Token{rawText("plain text")}
	if lst, _ := tryList(tokens, 0); lst != nil {
		t.Errorf("tryList(plain text) = %+v, want nil", lst)
	}
}
