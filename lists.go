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
	unorderedItemRE = regexp.MustCompile(`^( *)([*+-]) +([^*-].*)$`)
	orderedItemRE   = regexp.MustCompile(`^( *)([0-9]+)\. +(.*)$`)
)

// listMatch describes one recognized list-item start line.
type listMatch struct {
	indent   int
	ordered  bool
	char     byte // marker character ('*', '+', '-', or '.' for ordered)
	content  string
}

func matchListItem(line string) (listMatch, bool) {
	if m := unorderedItemRE.FindStringSubmatch(line); m != nil {
		return listMatch{indent: len(m[1]), ordered: false, char: m[2][0], content: m[3]}, true
	}
	if m := orderedItemRE.FindStringSubmatch(line); m != nil {
		return listMatch{indent: len(m[1]), ordered: true, char: '.', content: m[3]}, true
	}
	return listMatch{}, false
}

// tryList recognizes a list block starting at tokens[i] (spec.md §4.5).
// The leading indent must be < 4 columns for a top-level call; nested
// calls (from within an item's body) allow any indent.
func tryList(tokens []*Token, i int) (*Token, int) {
	return parseListAt(tokens, i, true)
}

func parseListAt(tokens []*Token, i int, topLevel bool) (*Token, int) {
	first, ok := matchListItem(tokens[i].Text)
	if !ok {
		return nil, 0
	}
	if topLevel && first.indent >= 4 {
		return nil, 0
	}

	indent := first.indent
	continuedAfterBlankRE := regexp.MustCompile(`^` + strings.Repeat(" ", indent+4) + `([^ \t].*)$`)
	codeBlockAfterBlankRE := regexp.MustCompile(`^` + strings.Repeat(" ", indent+8) + `(.*)$`)
	continuedItemRE := regexp.MustCompile(`^ *([^ \t].*)$`)

	kind := UnorderedListKind
	if first.ordered {
		kind = OrderedListKind
	}

	var items []*Token
	var itemLines []*Token
	paragraphMode := false
	n := 0

	closeItem := func() {
		items = append(items, &Token{
			Kind:              ListItemKind,
			InhibitParagraphs: true,
			Children:          classifyBlocks(itemLines),
		})
		itemLines = nil
	}

	itemLines = append(itemLines, rawText(first.content))
	n++

	listDone := false
	for i+n < len(tokens) && !listDone {
		t := tokens[i+n]
		switch {
		case t.Kind == BlankLineKind:
			next := i + n + 1
			var nextMatch listMatch
			var nextIsSublist bool
			if next < len(tokens) && tokens[next].Kind == RawTextKind {
				nextMatch, nextIsSublist = matchListItem(tokens[next].Text)
				nextIsSublist = nextIsSublist && nextMatch.indent > indent
			}
			switch {
			case nextIsSublist:
				paragraphMode = true
				itemLines = append(itemLines, &Token{Kind: BlankLineKind, Text: ""})
				n++
				sub, consumed := parseListAt(tokens, i+n, false)
				if sub == nil {
					listDone = true
					break
				}
				itemLines = append(itemLines, sub)
				n += consumed
			case next < len(tokens) && tokens[next].Kind == RawTextKind && continuedAfterBlankRE.MatchString(tokens[next].Text):
				paragraphMode = true
				m := continuedAfterBlankRE.FindStringSubmatch(tokens[next].Text)
				itemLines = append(itemLines, &Token{Kind: BlankLineKind, Text: ""}, rawText(m[1]))
				n += 2
			case next < len(tokens) && tokens[next].Kind == RawTextKind && codeBlockAfterBlankRE.MatchString(tokens[next].Text):
				paragraphMode = true
				itemLines = append(itemLines, &Token{Kind: BlankLineKind, Text: ""})
				n++
				for i+n < len(tokens) && tokens[i+n].Kind == RawTextKind && codeBlockAfterBlankRE.MatchString(tokens[i+n].Text) {
					m := codeBlockAfterBlankRE.FindStringSubmatch(tokens[i+n].Text)
					itemLines = append(itemLines, rawText(strings.Repeat(" ", 4)+m[1]))
					n++
				}
			default:
				listDone = true
			}
		case t.Kind == RawTextKind:
			if lm, ok := matchListItem(t.Text); ok {
				switch {
				case lm.indent > indent:
					sub, consumed := parseListAt(tokens, i+n, false)
					if sub == nil {
						listDone = true
						break
					}
					itemLines = append(itemLines, sub)
					n += consumed
				case lm.indent == indent && lm.ordered == first.ordered && (first.ordered || lm.char == first.char):
					closeItem()
					itemLines = append(itemLines, rawText(lm.content))
					n++
				default:
					listDone = true
				}
			} else if m := continuedItemRE.FindStringSubmatch(t.Text); m != nil {
				itemLines = append(itemLines, rawText(m[1]))
				n++
			} else {
				listDone = true
			}
		default:
			listDone = true
		}
	}
	closeItem()

	if len(items) == 1 && indent == 0 {
		return nil, 0
	}

	if paragraphMode {
		for _, it := range items {
			it.InhibitParagraphs = false
		}
	}

	return &Token{Kind: kind, ParagraphMode: paragraphMode, Children: items}, n
}
