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
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/net/html"

	"github.com/gclxry/nppmarkdown/internal/fixtures"
	"github.com/gclxry/nppmarkdown/internal/normhtml"
)

func render(t *testing.T, input string, opts ...Option) string {
	t.Helper()
	doc := NewDocument(opts...)
	doc.Read(input)
	var b strings.Builder
	if err := doc.Write(&b); err != nil {
		t.Fatalf("Write: %v", err)
	}
	return b.String()
}

// TestEndToEndScenarios exercises the fixed input/output scenarios.
func TestEndToEndScenarios(t *testing.T) {
	cases, err := fixtures.Load()
	if err != nil {
		t.Fatalf("fixtures.Load: %v", err)
	}
	for _, c := range cases {
		c := c
		t.Run(fmt.Sprintf("%s/%d", c.Section, c.Example), func(t *testing.T) {
			got := render(t, c.Markdown)
			if diff := cmp.Diff(c.HTML, got); diff != "" {
				t.Errorf("Write(%q) (-want +got):\n%s", c.Markdown, diff)
			}
		})
	}
}

// TestIdempotentProcess checks that calling Write twice produces
// identical output (spec.md §8's idempotency invariant): the second
// call must be a no-op over the already-latched tree.
func TestIdempotentProcess(t *testing.T) {
	doc := NewDocument()
	doc.Read("# Title\n\nSome **bold** text.\n")
	var first, second strings.Builder
	if err := doc.Write(&first); err != nil {
		t.Fatalf("first Write: %v", err)
	}
	if err := doc.Write(&second); err != nil {
		t.Fatalf("second Write: %v", err)
	}
	if diff := cmp.Diff(first.String(), second.String()); diff != "" {
		t.Errorf("second Write differs from first (-first +second):\n%s", diff)
	}
}

// TestReadAfterProcessIsNoOp checks that a Read call after the document
// has been processed does not append to the output (spec.md §5).
func TestReadAfterProcessIsNoOp(t *testing.T) {
	doc := NewDocument()
	doc.Read("first paragraph\n")
	var out strings.Builder
	if err := doc.Write(&out); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if ok := doc.Read("second paragraph\n"); ok {
		t.Errorf("Read after process returned true, want false")
	}
	var out2 strings.Builder
	if err := doc.Write(&out2); err != nil {
		t.Fatalf("second Write: %v", err)
	}
	if diff := cmp.Diff(out.String(), out2.String()); diff != "" {
		t.Errorf("output changed after a post-process Read (-before +after):\n%s", diff)
	}
}

// TestBlankInputProducesEmptyOutput covers the "only blank lines" boundary
// case of spec.md §8.
func TestBlankInputProducesEmptyOutput(t *testing.T) {
	got := render(t, "\n\n   \n")
	if got != "" {
		t.Errorf("render(blank input) = %q, want empty", got)
	}
}

// TestBalancedTags tokenizes the writer's output with
// golang.org/x/net/html, the same technique internal/normhtml uses, and
// asserts every opening tag in the emitted set has a matching close.
func TestBalancedTags(t *testing.T) {
	inputs := []string{
		"# Title\n\nSome **bold** and _italic_ text with a [link](http://example.com).\n",
		"> quoted\n> still\n\nmore text\n",
		"* a\n* b\n  * nested\n",
		"1. one\n2. two\n",
		"plain *unterminated\n",
		"<div>\n<p>raw html block</p>\n</div>\n",
	}
	for _, in := range inputs {
		in := in
		t.Run(in, func(t *testing.T) {
			got := render(t, in)
			assertBalanced(t, got)
		})
	}
}

// TestNormalizedOutputStableUnderReflow checks that two renderings that
// differ only in insignificant whitespace (a plain source line break inside
// a paragraph versus the words joined on one line) normalize to the same
// HTML, using the same normalization internal/normhtml performs for
// comparing CommonMark spec examples.
func TestNormalizedOutputStableUnderReflow(t *testing.T) {
	wrapped := render(t, "a long line\nthat wraps\n")
	joined := render(t, "a long line that wraps\n")
	a := normhtml.NormalizeHTML([]byte(wrapped))
	b := normhtml.NormalizeHTML([]byte(joined))
	if diff := cmp.Diff(string(b), string(a)); diff != "" {
		t.Errorf("normalized output differs for a hard-wrapped paragraph vs. a joined one (-joined +wrapped):\n%s", diff)
	}
}

func assertBalanced(t *testing.T, htmlFragment string) {
	t.Helper()
	var stack []string
	voidTags := map[string]bool{"hr": true, "img": true, "br": true}
	z := html.NewTokenizer(strings.NewReader(htmlFragment))
	for {
		switch z.Next() {
		case html.ErrorToken:
			if len(stack) != 0 {
				t.Errorf("unbalanced tags remain open: %v", stack)
			}
			return
		case html.StartTagToken:
			name, hasAttr := z.TagName()
			_ = hasAttr
			if !voidTags[string(name)] {
				stack = append(stack, string(name))
			}
		case html.SelfClosingTagToken:
			// already atomic; nothing to push
		case html.EndTagToken:
			name, _ := z.TagName()
			if len(stack) == 0 || stack[len(stack)-1] != string(name) {
				t.Errorf("unexpected closing tag %q, stack=%v", name, stack)
				return
			}
			stack = stack[:len(stack)-1]
		}
	}
}
