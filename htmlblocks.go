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

	"github.com/gclxry/nppmarkdown/internal/tags"
)

var (
	blockTagOpenRE  = regexp.MustCompile(`^<([A-Za-z][A-Za-z0-9]*)\b`)
	loneFullLineTag = regexp.MustCompile(`^\s*</?[A-Za-z][A-Za-z0-9]*\b[^>]*>\s*$`)
	htmlTagPieceRE  = regexp.MustCompile(`<[^>]*>`)

	refDefQuoted = regexp.MustCompile(`^ {0,3}\[([^\]]+)\]: +<?([^ >]+)>?(?: +"([^"]*)")? *$`)
	refDefSQuote = regexp.MustCompile(`^ {0,3}\[([^\]]+)\]: +<?([^ >]+)>?(?: +'([^']*)')? *$`)
	refDefParen  = regexp.MustCompile(`^ {0,3}\[([^\]]+)\]: +<?([^ >]+)>?(?: +\(([^)]*)\))? *$`)

	titleWrapQuoted = regexp.MustCompile(`^ *"([^"]*)" *$`)
	titleWrapSQuote = regexp.MustCompile(`^ *'([^']*)' *$`)
	titleWrapParen  = regexp.MustCompile(`^ *\(([^)]*)\) *$`)
)

// extractInlineHTMLAndReferences runs Pass 3 over a flat sequence of
// RawTextKind/BlankLineKind tokens: at block boundaries it recognizes
// HTML blocks and comment blocks as atomic InlineHtmlBlock tokens, and
// independently strips link-reference definitions into links.
func extractInlineHTMLAndReferences(tokens []*Token, links *linkIDTable) []*Token {
	out := make([]*Token, 0, len(tokens))
	atBoundary := true
	for i := 0; i < len(tokens); {
		tok := tokens[i]
		if tok.Kind == BlankLineKind {
			out = append(out, tok)
			atBoundary = true
			i++
			continue
		}

		if id, url, title, consumed, ok := tryParseReferenceDef(tokens, i); ok {
			links.define(id, url, title)
			i += consumed
			// A reference definition line is itself a boundary: the
			// lines after it can still start a new block.
			atBoundary = true
			continue
		}

		if atBoundary {
			if strings.HasPrefix(strings.TrimLeft(tok.Text, " "), "<!--") {
				if block, consumed := absorbHTMLComment(tokens, i); block != nil {
					out = append(out, block)
					i += consumed
					atBoundary = true
					continue
				}
			}
			if m := blockTagOpenRE.FindStringSubmatch(strings.TrimLeft(tok.Text, " ")); m != nil {
				name := strings.ToLower(m[1])
				if block, consumed, reverted := absorbHTMLBlock(tokens, i, name); !reverted {
					out = append(out, block)
					i += consumed
					atBoundary = true
					continue
				}
			}
		}

		out = append(out, tok)
		atBoundary = false
		i++
	}
	return out
}

// absorbHTMLComment absorbs a run of lines starting with "<!--" until a
// line ending with "-->" is followed by a blank line or end of stream.
func absorbHTMLComment(tokens []*Token, start int) (*Token, int) {
	i := start
	for i < len(tokens) && tokens[i].Kind != BlankLineKind {
		if strings.Contains(tokens[i].Text, "-->") {
			i++
			break
		}
		i++
	}
	consumed := i - start
	if consumed == 0 {
		return nil, 0
	}
	block := newContainer(InlineHTMLBlockKind)
	for _, t := range tokens[start:i] {
		block.Children = append(block.Children, &Token{Kind: InlineHTMLCommentKind, Text: t.Text})
	}
	return block, consumed
}

// absorbHTMLBlock absorbs lines starting at a recognized block-tag open
// until a line that is itself a lone full-line tag is followed by a blank
// line, or until end of stream (spec.md §4.3, §7's "unclosed HTML block"
// rule: consume to end of document). If only one line was absorbed and
// the tag is a span-tag rather than a block-tag, the absorption reverts
// and the caller should treat the line as ordinary raw text.
func absorbHTMLBlock(tokens []*Token, start int, name string) (block *Token, consumed int, reverted bool) {
	i := start
	for i < len(tokens) {
		if tokens[i].Kind == BlankLineKind {
			break
		}
		isLast := loneFullLineTag.MatchString(tokens[i].Text) &&
			(i+1 >= len(tokens) || tokens[i+1].Kind == BlankLineKind)
		i++
		if isLast {
			break
		}
	}
	n := i - start
	if n == 1 && tags.Lookup(name, false) != tags.Block {
		return nil, 0, true
	}
	block = newContainer(InlineHTMLBlockKind)
	for _, t := range tokens[start:i] {
		block.Children = append(block.Children, parseInlineHTMLText(t.Text)...)
	}
	return block, n, false
}

// parseInlineHTMLText splits one line of HTML-block body text into
// HTMLTagKind and InlineHTMLContentsKind pieces.
func parseInlineHTMLText(line string) []*Token {
	matches := htmlTagPieceRE.FindAllStringIndex(line, -1)
	var out []*Token
	prev := 0
	for _, m := range matches {
		if m[0] > prev {
			out = append(out, &Token{Kind: InlineHTMLContentsKind, Text: line[prev:m[0]], Flags: cAmps})
		}
		out = append(out, &Token{Kind: HTMLTagKind, Text: line[m[0]+1 : m[1]-1]})
		prev = m[1]
	}
	if prev < len(line) {
		out = append(out, &Token{Kind: InlineHTMLContentsKind, Text: line[prev:], Flags: cAmps})
	}
	if len(out) == 0 {
		out = append(out, &Token{Kind: InlineHTMLContentsKind, Text: "", Flags: cAmps})
	}
	return out
}

// tryParseReferenceDef attempts to match a link-reference definition
// starting at tokens[i], consuming a wrapped title line from tokens[i+1]
// if present (spec.md §4.3).
func tryParseReferenceDef(tokens []*Token, i int) (id, url, title string, consumed int, ok bool) {
	line := tokens[i].Text
	for _, re := range []*regexp.Regexp{refDefQuoted, refDefSQuote, refDefParen} {
		m := re.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		id, url, title = m[1], m[2], m[3]
		if title != "" {
			return id, url, title, 1, true
		}
		// No inline title: check whether the next line is a wrapped title.
		if i+1 < len(tokens) && tokens[i+1].Kind == RawTextKind {
			next := tokens[i+1].Text
			for _, wre := range []*regexp.Regexp{titleWrapQuoted, titleWrapSQuote, titleWrapParen} {
				if wm := wre.FindStringSubmatch(next); wm != nil {
					return id, url, wm[1], 2, true
				}
			}
		}
		return id, url, "", 1, true
	}
	return "", "", "", 0, false
}
