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
	"regexp"
	"strconv"
	"strings"
)

// placeholderSentinel is the sentinel byte chosen for replacement-table
// placeholders (spec.md §9). It is a valid UTF-8 control character, so
// runSpanPipeline strips it from input with [sanitizeControlBytes] before
// any placeholder is inserted, which keeps genuine input from colliding
// with a placeholder.
const placeholderSentinel = '\x01'

// placeholderRE recognizes a placeholder of the form \x01@N@label\x01.
var placeholderRE = regexp.MustCompile("\x01@(\\d+)@[a-z]*\x01")

// escapePlaceholderRE recognizes an escaped-character placeholder of the
// form \x01@#K@escaped\x01.
var escapePlaceholderRE = regexp.MustCompile("\x01@#(\\d+)@escaped\x01")

// escapableChars is the canonical set of characters a backslash can escape
// (spec.md §4.8 item 3).
const escapableChars = `\` + "`" + `*_{}[]()#+-.!>`

// replacementTable accumulates the tokens produced by each span-processing
// pass, indexed by the N embedded in a placeholder. raw retains each
// entry's original source text so a later pass (code spans) can unwrap
// prior placeholders back to their original characters.
type replacementTable struct {
	tokens []*Token
	raw    []string
	links  *linkIDTable
}

func (rt *replacementTable) add(label, raw string, tok *Token) string {
	n := len(rt.tokens)
	rt.tokens = append(rt.tokens, tok)
	rt.raw = append(rt.raw, raw)
	return fmt.Sprintf("\x01@%d@%s\x01", n, label)
}

// restoreRaw expands every placeholder in s back to the original source
// text it replaced, recursively, so that a pass which needs verbatim
// characters (e.g. code spans) sees through earlier protective
// substitutions.
func (rt *replacementTable) restoreRaw(s string) string {
	for strings.ContainsRune(s, placeholderSentinel) {
		replaced := false
		s = placeholderRE.ReplaceAllStringFunc(s, func(m string) string {
			sub := placeholderRE.FindStringSubmatch(m)
			idx, err := strconv.Atoi(sub[1])
			if err != nil || idx >= len(rt.raw) {
				return m
			}
			replaced = true
			return rt.raw[idx]
		})
		s = escapePlaceholderRE.ReplaceAllStringFunc(s, func(m string) string {
			sub := escapePlaceholderRE.FindStringSubmatch(m)
			idx, err := strconv.Atoi(sub[1])
			if err != nil || idx >= len(escapableChars) {
				return m
			}
			replaced = true
			return `\` + string(escapableChars[idx])
		})
		if !replaced {
			break
		}
	}
	return s
}

// sanitizeControlBytes strips any stray sentinel byte already present in
// untrusted input before span processing begins, so a crafted document
// cannot forge a placeholder (spec.md §9 flags this as an open question;
// this port resolves it by stripping rather than escaping, since the
// sentinel has no legitimate use in Markdown source).
func sanitizeControlBytes(s string) string {
	if !strings.ContainsRune(s, placeholderSentinel) {
		return s
	}
	return strings.Map(func(r rune) rune {
		if r == placeholderSentinel {
			return -1
		}
		return r
	}, s)
}

// processSpansTree walks the tree after paragraph grouping, running the
// span processor (spec.md §4.8) on every RawText leaf still eligible for
// markup and splicing the resulting token sequence into the parent's
// children in its place.
func processSpansTree(tok *Token, links *linkIDTable) {
	if !tok.IsContainer() && tok.Kind != HeaderKind {
		return
	}
	newChildren := make([]*Token, 0, len(tok.Children))
	for _, c := range tok.Children {
		if c.Kind == RawTextKind && c.CanContainMarkup {
			newChildren = append(newChildren, runSpanPipeline(c.Text, links)...)
			continue
		}
		processSpansTree(c, links)
		newChildren = append(newChildren, c)
	}
	tok.Children = newChildren
}

// runSpanPipeline sanitizes one line of (already paragraph-grouped) text,
// runs the five span-level passes over it, and returns the resulting
// token sequence.
func runSpanPipeline(text string, links *linkIDTable) []*Token {
	text = sanitizeControlBytes(text)
	rt := &replacementTable{links: links}

	text = protectTagAttributes(text, rt)
	text = protectCodeSpans(text, rt)
	text = protectEscapes(text, rt)
	text = processLinksAndTags(text, rt)
	group := scanEmphasis(text)
	resolveEmphasisPlaceholders(group, rt)
	return group
}

var tagWithAttrsRE = regexp.MustCompile(`^<(/?)([A-Za-z][A-Za-z0-9]*)((?:\s+[A-Za-z][A-Za-z0-9]*\s*=\s*(?:"[^"]*"|'[^']*'))+)\s*/?\s*>`)

// protectTagAttributes implements spec.md §4.8 pass 1: a valid tag whose
// attribute values are quoted is protected as an atomic placeholder so
// that later passes (code spans, emphasis) cannot misinterpret a quote or
// backtick that happens to appear inside an attribute value.
func protectTagAttributes(text string, rt *replacementTable) string {
	var b strings.Builder
	i := 0
	for i < len(text) {
		if text[i] == '<' {
			if loc := tagWithAttrsRE.FindStringIndex(text[i:]); loc != nil && loc[0] == 0 {
				raw := text[i : i+loc[1]]
				m := tagWithAttrsRE.FindStringSubmatch(raw)
				name := strings.ToLower(m[2])
				if validTag(name) {
					inner := raw[1 : len(raw)-1]
					tok := &Token{Kind: HTMLTagKind, Text: inner}
					b.WriteString(rt.add("tag", raw, tok))
					i += loc[1]
					continue
				}
			}
		}
		b.WriteByte(text[i])
		i++
	}
	return b.String()
}
