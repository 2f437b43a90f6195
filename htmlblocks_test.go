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

func TestTryParseReferenceDefInlineTitle(t *testing.T) {
	tokens := []*Token{rawText(`[id]: http://example.com "A Title"`)}
	id, url, title, n, ok := tryParseReferenceDef(tokens, 0)
	if !ok {
		t.Fatal("tryParseReferenceDef did not match")
	}
	if id != "id" || url != "http://example.com" || title != "A Title" || n != 1 {
		t.Errorf("got (%q, %q, %q, %d), want (id, http://example.com, A Title, 1)", id, url, title, n)
	}
}

func TestTryParseReferenceDefWrappedTitle(t *testing.T) {
	tokens := []*Token{
		rawText(`[id]: http://example.com`),
		rawText(`  "Wrapped Title"`),
	}
	id, url, title, n, ok := tryParseReferenceDef(tokens, 0)
	if !ok {
		t.Fatal("tryParseReferenceDef did not match")
	}
	if id != "id" || url != "http://example.com" || title != "Wrapped Title" || n != 2 {
		t.Errorf("got (%q, %q, %q, %d), want (id, http://example.com, Wrapped Title, 2)", id, url, title, n)
	}
}

func TestTryParseReferenceDefAngleBrackets(t *testing.T) {
	tokens := []*Token{rawText(`[id]: <http://example.com/path>`)}
	_, url, _, _, ok := tryParseReferenceDef(tokens, 0)
	if !ok {
		t.Fatal("tryParseReferenceDef did not match")
	}
	if url != "http://example.com/path" {
		t.Errorf("url = %q, want http://example.com/path", url)
	}
}

func TestExtractInlineHTMLAndReferencesStripsDefinition(t *testing.T) {
	links := newLinkIDTable()
	tokens := []*Token{
		rawText(`[x]: http://e.com "T"`),
		&Token{Kind: BlankLineKind},
		rawText("[x]"),
	}
	out := extractInlineHTMLAndReferences(tokens, links)
	for _, tok := range out {
		if tok.Kind == RawTextKind && tok.Text == `[x]: http://e.com "T"` {
			t.Error("reference definition line was not stripped")
		}
	}
	if def, ok := links.lookup("x"); !ok || def.url != "http://e.com" {
		t.Errorf("links.lookup(x) = %+v, %v, want http://e.com, true", def, ok)
	}
}

func TestExtractInlineHTMLAndReferencesStripsDefinitionMidParagraph(t *testing.T) {
	links := newLinkIDTable()
	tokens := []*Token{
		rawText("some paragraph text"),
		rawText(`[x]: http://e.com "T"`),
		rawText("more text"),
	}
	out := extractInlineHTMLAndReferences(tokens, links)
	for _, tok := range out {
		if tok.Kind == RawTextKind && tok.Text == `[x]: http://e.com "T"` {
			t.Error("reference definition line following non-blank text was not stripped")
		}
	}
	if len(out) != 2 || out[0].Text != "some paragraph text" || out[1].Text != "more text" {
		t.Errorf("out = %+v, want [\"some paragraph text\", \"more text\"]", out)
	}
	if def, ok := links.lookup("x"); !ok || def.url != "http://e.com" {
		t.Errorf("links.lookup(x) = %+v, %v, want http://e.com, true", def, ok)
	}
}

func TestExtractInlineHTMLAbsorbsBlock(t *testing.T) {
	links := newLinkIDTable()
	tokens := []*Token{
		rawText("<div>"),
		rawText("<p>hello</p>"),
		rawText("</div>"),
		&Token{Kind: BlankLineKind},
		rawText("after"),
	}
	out := extractInlineHTMLAndReferences(tokens, links)
	if len(out) < 1 || out[0].Kind != InlineHTMLBlockKind {
		t.Fatalf("out[0] = %+v, want InlineHTMLBlockKind", out[0])
	}
}

func TestAbsorbHTMLCommentSingleLine(t *testing.T) {
	tokens := []*Token{rawText("<!-- a comment -->")}
	block, n := absorbHTMLComment(tokens, 0)
	if block == nil || n != 1 {
		t.Fatalf("absorbHTMLComment = %+v, %d, want non-nil, 1", block, n)
	}
	if block.Kind != InlineHTMLBlockKind {
		t.Errorf("block.Kind = %v, want InlineHTMLBlockKind", block.Kind)
	}
}
