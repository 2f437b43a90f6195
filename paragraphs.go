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

import "strings"

// groupParagraphs runs the Paragraph Grouper pass (spec.md §4.7) over one
// container, recursing into every container child first. Consecutive
// markup-eligible raw-text children are joined by spaces into a single
// Paragraph; a hard line break (a line ending in exactly two trailing
// spaces) keeps accumulating within the same paragraph, interleaving an
// <br/> token rather than starting a new paragraph, which is the only
// reading consistent with CommonMark-style hard-break rendering (see
// DESIGN.md for why this resolves the spec's ambiguous "push a Paragraph
// ... and continue" wording in favor of one paragraph per run).
func groupParagraphs(container *Token) {
	for _, c := range container.Children {
		if c.IsContainer() {
			groupParagraphs(c)
		}
	}
	if container.Kind == CodeBlockKind || container.Kind == InlineHTMLBlockKind {
		return
	}

	inhibited := container.InhibitParagraphs
	var out []*Token
	var buf []string
	var pieces []*Token

	flushText := func() string {
		s := strings.Join(buf, " ")
		buf = nil
		return s
	}
	flush := func() {
		if len(buf) == 0 && len(pieces) == 0 {
			return
		}
		text := flushText()
		if text != "" {
			pieces = append(pieces, rawText(text))
		}
		if inhibited {
			out = append(out, pieces...)
		} else {
			out = append(out, &Token{Kind: ParagraphKind, Children: pieces})
		}
		pieces = nil
	}

	for _, c := range container.Children {
		if c.Kind == RawTextKind && c.CanContainMarkup && !c.InhibitParagraphs {
			text := c.Text
			if isHardBreakLine(text) {
				buf = append(buf, strings.TrimRight(text, " "))
				pieces = append(pieces, rawText(flushText()))
				pieces = append(pieces, &Token{Kind: HTMLTagKind, Text: "br/"})
				continue
			}
			buf = append(buf, text)
			continue
		}
		flush()
		out = append(out, c)
	}
	flush()
	container.Children = out
}

// isHardBreakLine reports whether s ends in exactly two trailing spaces.
func isHardBreakLine(s string) bool {
	return strings.HasSuffix(s, "  ") && !strings.HasSuffix(s, "   ")
}
