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
	"regexp"
	"strings"
)

var (
	atxHeaderRE         = regexp.MustCompile(`^(#{1,6})[ \t]+(.*?)[ \t]*#*$`)
	setextRE            = regexp.MustCompile(`^(?:=+|-+)[ \t]*$`)
	hrRE                = regexp.MustCompile(`^ {0,3}(?:(?:-[ \t]*){3,}|(?:\*[ \t]*){3,}|(?:_[ \t]*){3,})$`)
	blockQuoteRE        = regexp.MustCompile(`^((?: {0,3}>)+) ?(.*)$`)
	blockQuoteInitialRE = regexp.MustCompile(`^((?: {0,3}>)+) (.*)$`)
)

// classifyBlocks runs the recursive Block Classifier pass (spec.md §4.4)
// over one container's children, converting raw lines into Header,
// HorizontalRule, list, BlockQuote, and CodeBlock tokens, recursing into
// every newly created container as it goes.
func classifyBlocks(tokens []*Token) []*Token {
	var out []*Token
	i := 0
	for i < len(tokens) {
		tok := tokens[i]
		if tok.Kind != RawTextKind {
			out = append(out, tok)
			i++
			continue
		}
		if hdr, n := tryHeader(tokens, i); hdr != nil {
			out = append(out, hdr)
			i += n
			continue
		}
		if hr, n := tryHR(tokens, i); hr != nil {
			out = append(out, hr)
			i += n
			continue
		}
		if lst, n := tryList(tokens, i); lst != nil {
			out = append(out, lst)
			i += n
			continue
		}
		if bq, n := tryBlockQuote(tokens, i); bq != nil {
			out = append(out, bq)
			i += n
			continue
		}
		if cb, n := tryCodeBlock(tokens, i); cb != nil {
			out = append(out, cb)
			i += n
			continue
		}
		out = append(out, tok)
		i++
	}
	return out
}

// tryHeader recognizes an ATX header ("# Title") or a Setext header (a
// text line followed by a line of all '=' or all '-').
func tryHeader(tokens []*Token, i int) (*Token, int) {
	tok := tokens[i]
	if m := atxHeaderRE.FindStringSubmatch(tok.Text); m != nil {
		level := len(m[1])
		return &Token{
			Kind:              HeaderKind,
			Level:             level,
			InhibitParagraphs: true,
			Children:          []*Token{rawText(m[2])},
		}, 1
	}
	if i+1 < len(tokens) && tokens[i+1].Kind == RawTextKind && setextRE.MatchString(tokens[i+1].Text) {
		level := 2
		if tokens[i+1].Text[0] == '=' {
			level = 1
		}
		return &Token{
			Kind:              HeaderKind,
			Level:             level,
			InhibitParagraphs: true,
			Children:          []*Token{rawText(tok.Text)},
		}, 2
	}
	return nil, 0
}

func tryHR(tokens []*Token, i int) (*Token, int) {
	if hrRE.MatchString(tokens[i].Text) {
		return &Token{Kind: HTMLTagKind, Text: "hr/"}, 1
	}
	return nil, 0
}

// tryBlockQuote recognizes a run of lines prefixed with one or more '>'
// markers at the same quote level, stripping the prefix and recursively
// classifying the body (spec.md §4.4 item 4).
func tryBlockQuote(tokens []*Token, i int) (*Token, int) {
	m := blockQuoteInitialRE.FindStringSubmatch(tokens[i].Text)
	if m == nil {
		return nil, 0
	}
	level := strings.Count(m[1], ">")
	var inner []*Token
	n := 0
	for i+n < len(tokens) {
		t := tokens[i+n]
		if t.Kind == BlankLineKind {
			// Tentatively include the blank line iff the next line
			// continues the same quote level.
			if i+n+1 < len(tokens) {
				if mm := blockQuoteRE.FindStringSubmatch(tokens[i+n+1].Text); mm != nil && strings.Count(mm[1], ">") == level {
					inner = append(inner, t)
					n++
					continue
				}
			}
			break
		}
		if t.Kind != RawTextKind {
			break
		}
		mm := blockQuoteRE.FindStringSubmatch(t.Text)
		if mm == nil || strings.Count(mm[1], ">") != level {
			break
		}
		inner = append(inner, rawText(mm[2]))
		n++
	}
	if n == 0 {
		return nil, 0
	}
	return &Token{Kind: BlockQuoteKind, Children: classifyBlocks(inner)}, n
}

// tryCodeBlock recognizes a run of four-space-indented lines as a
// CodeBlock, retaining interior blank lines only when followed by
// another code line (spec.md §4.4 item 5).
func tryCodeBlock(tokens []*Token, i int) (*Token, int) {
	if !strings.HasPrefix(tokens[i].Text, "    ") {
		return nil, 0
	}
	var lines []string
	n := 0
	for i+n < len(tokens) {
		t := tokens[i+n]
		if t.Kind == BlankLineKind {
			if i+n+1 < len(tokens) && tokens[i+n+1].Kind == RawTextKind && strings.HasPrefix(tokens[i+n+1].Text, "    ") {
				lines = append(lines, "")
				n++
				continue
			}
			break
		}
		if t.Kind != RawTextKind || !strings.HasPrefix(t.Text, "    ") {
			break
		}
		lines = append(lines, t.Text[4:])
		n++
	}
	if n == 0 {
		return nil, 0
	}
	content := strings.Join(lines, "\n") + "\n"
	return &Token{Kind: CodeBlockKind, Text: content}, n
}
