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
	"strconv"
)

var (
	// Go's RE2 engine has no backreferences, so each delimiter character
	// and run length gets its own alternative, longest run first; exactly
	// one alternative's content group takes part in any match.
	midWordEmphasisRE = regexp.MustCompile(`\*\*\*([^*_ \x01]+?)\*\*\*|\*\*([^*_ \x01]+?)\*\*|\*([^*_ \x01]+?)\*|___([^*_ \x01]+?)___|__([^*_ \x01]+?)__|_([^*_ \x01]+?)_`)
	emphasisRunRE     = regexp.MustCompile(`\*+|_+`)
)

// scanEmphasis implements the emphasis sub-pass of spec.md §4.8 item 5:
// it first pulls out unambiguous mid-word emphasis ("foo*bar*baz"), then
// tokenizes the remaining runs of '*'/'_' as open or close delimiter
// candidates, then runs the two-phase matcher (initial forward pairing,
// then a stack pass that unmatches invalidly nested pairs).
func scanEmphasis(text string) []*Token {
	group := tokenizeEmphasis(text)
	peerID := 0
	group = matchEmphasisPairs(group, &peerID)
	unmatchInvalidNesting(group)
	return group
}

// tokenizeEmphasis splits text into RawText segments and
// BoldOrItalicMarkerKind candidates, resolving mid-word emphasis
// ("a*bc*d") eagerly into matched pairs as it goes.
func tokenizeEmphasis(text string) []*Token {
	var out []*Token
	peerID := 0
	last := 0
	for _, loc := range midWordEmphasisRE.FindAllStringSubmatchIndex(text, -1) {
		if loc[0] > last {
			out = append(out, tokenizeRuns(text[last:loc[0]])...)
		}
		g := 2
		for loc[g] < 0 {
			g += 2
		}
		delim := text[loc[0]:loc[g]]
		content := text[loc[g]:loc[g+1]]
		id := peerID
		peerID++
		out = append(out, &Token{Kind: BoldOrItalicMarkerKind, Open: true, Char: delim[0], Size: len(delim), PeerID: id})
		out = append(out, rawText(content))
		out = append(out, &Token{Kind: BoldOrItalicMarkerKind, Open: false, Char: delim[0], Size: len(delim), PeerID: id})
		last = loc[1]
	}
	if last < len(text) {
		out = append(out, tokenizeRuns(text[last:])...)
	}
	return out
}

// tokenizeRuns splits a mid-word-emphasis-free segment into RawText and
// candidate marker tokens using the neighbor rule of spec.md §4.8 item 5:
// a run of 1-3 delimiters is an open candidate if followed by a
// non-space character, and a close candidate if preceded by a non-space
// character (additionally non-'_' for underscore delimiters). Intraword
// pairs such as "a_b_c" never reach this function: the mid-word pass in
// tokenizeEmphasis has already matched them as emphasis.
func tokenizeRuns(s string) []*Token {
	var out []*Token
	last := 0
	for _, loc := range emphasisRunRE.FindAllStringIndex(s, -1) {
		if loc[0] > last {
			out = append(out, rawText(s[last:loc[0]]))
		}
		run := s[loc[0]:loc[1]]
		if len(run) > 3 {
			out = append(out, rawText(run))
			last = loc[1]
			continue
		}
		var before, after byte
		if loc[0] > 0 {
			before = s[loc[0]-1]
		} else {
			before = ' '
		}
		if loc[1] < len(s) {
			after = s[loc[1]]
		} else {
			after = ' '
		}
		isOpen := after != ' ' && after != '\t'
		isClose := before != ' ' && before != '\t' && !(run[0] == '_' && before == '_')
		switch {
		case isOpen:
			out = append(out, &Token{Kind: BoldOrItalicMarkerKind, Open: true, Char: run[0], Size: len(run), PeerID: -1})
		case isClose:
			out = append(out, &Token{Kind: BoldOrItalicMarkerKind, Open: false, Char: run[0], Size: len(run), PeerID: -1})
		default:
			out = append(out, rawText(run))
		}
		last = loc[1]
	}
	if last < len(s) {
		out = append(out, rawText(s[last:]))
	}
	return out
}

// matchEmphasisPairs is phase 1 of the emphasis matcher: for each
// unmatched open marker in order, scan forward for an unmatched close
// marker of the same delimiter character, applying the run-length-3
// split rule when sizes differ (spec.md §4.8 item 5).
func matchEmphasisPairs(group []*Token, peerID *int) []*Token {
	for oi := 0; oi < len(group); oi++ {
		om := group[oi]
		if om.Kind != BoldOrItalicMarkerKind || !om.Open || om.PeerID >= 0 || om.Disabled {
			continue
		}
		for ci := oi + 1; ci < len(group); ci++ {
			cm := group[ci]
			if cm.Kind != BoldOrItalicMarkerKind || cm.Open || cm.PeerID >= 0 || cm.Disabled {
				continue
			}
			if cm.Char != om.Char {
				continue
			}
			switch {
			case om.Size == cm.Size:
				id := *peerID
				*peerID++
				om.PeerID, cm.PeerID = id, id
			case cm.Size == 3 && om.Size != 3:
				group = splitClose(group, ci, om.Size, om, peerID)
			case om.Size == 3 && cm.Size != 3:
				group = splitOpen(group, oi, cm.Size, cm, peerID)
			default:
				continue
			}
			break
		}
	}
	return group
}

// splitClose handles a size-3 close marker paired against a smaller open:
// the close marker itself shrinks to the matched size, and a new close
// marker carrying the leftover size is inserted immediately after it,
// left unmatched for a later open to claim.
func splitClose(group []*Token, ci int, openSize int, om *Token, peerID *int) []*Token {
	cm := group[ci]
	leftoverSize := cm.Size - openSize
	cm.Size = openSize
	id := *peerID
	*peerID++
	cm.PeerID = id
	om.PeerID = id
	leftover := &Token{Kind: BoldOrItalicMarkerKind, Open: false, Char: cm.Char, Size: leftoverSize, PeerID: -1}
	return insertAfter(group, ci, leftover)
}

// splitOpen handles a size-3 open marker paired against a smaller close:
// the open marker itself shrinks to the matched size, and a new open
// marker carrying the leftover size is inserted immediately after it,
// left unmatched for a later close to claim.
func splitOpen(group []*Token, oi int, closeSize int, cm *Token, peerID *int) []*Token {
	om := group[oi]
	leftoverSize := om.Size - closeSize
	om.Size = closeSize
	id := *peerID
	*peerID++
	om.PeerID = id
	cm.PeerID = id
	leftover := &Token{Kind: BoldOrItalicMarkerKind, Open: true, Char: om.Char, Size: leftoverSize, PeerID: -1}
	return insertAfter(group, oi, leftover)
}

// insertAfter returns a copy of group with extra tokens spliced in
// immediately after index i.
func insertAfter(group []*Token, i int, extra ...*Token) []*Token {
	out := make([]*Token, 0, len(group)+len(extra))
	out = append(out, group[:i+1]...)
	out = append(out, extra...)
	out = append(out, group[i+1:]...)
	return out
}

// unmatchInvalidNesting is phase 2 of the emphasis matcher: walk matched
// markers with a stack, and when a close marker's id differs from the
// stack top's id, clear both sides of that pair so they render as
// literal characters (spec.md §4.8 item 5).
func unmatchInvalidNesting(group []*Token) {
	var stack []*Token
	for _, m := range group {
		if m.Kind != BoldOrItalicMarkerKind || m.Disabled || m.PeerID < 0 {
			continue
		}
		if m.Open {
			stack = append(stack, m)
			continue
		}
		if len(stack) == 0 {
			continue
		}
		top := stack[len(stack)-1]
		if top.PeerID != m.PeerID {
			top.PeerID = -1
			m.PeerID = -1
		}
		stack = stack[:len(stack)-1]
	}
}

// resolveEmphasisPlaceholders expands any remaining replacement-table and
// escape placeholders embedded in RawText leaves of the emphasis-processed
// group, splicing in the final tokens (spec.md §4.8, end of item 5). A
// slot that expands to more than one token becomes a bare Container,
// which the writer flattens like any other container.
func resolveEmphasisPlaceholders(group []*Token, rt *replacementTable) {
	for idx, t := range group {
		if t.Kind != RawTextKind {
			continue
		}
		expanded := expandPlaceholders(t.Text, rt)
		if len(expanded) == 1 {
			group[idx] = expanded[0]
		} else {
			group[idx] = &Token{Kind: ContainerKind, Children: expanded}
		}
	}
}

var combinedPlaceholderRE = regexp.MustCompile("\x01@#?\\d+@[a-z]*\x01")

// expandPlaceholders resolves both replacement-table placeholders
// (\x01@N@label\x01) and escape placeholders (\x01@#K@escaped\x01) in s
// into their final tokens, interleaving literal RawText runs.
func expandPlaceholders(s string, rt *replacementTable) []*Token {
	var out []*Token
	last := 0
	for _, loc := range combinedPlaceholderRE.FindAllStringIndex(s, -1) {
		if loc[0] > last {
			out = append(out, rawText(s[last:loc[0]]))
		}
		piece := s[loc[0]:loc[1]]
		switch {
		case escapePlaceholderRE.MatchString(piece):
			sub := escapePlaceholderRE.FindStringSubmatch(piece)
			if idx, err := strconv.Atoi(sub[1]); err == nil && idx < len(escapableChars) {
				out = append(out, &Token{Kind: EscapedCharacterKind, Char: escapableChars[idx]})
			}
		case rt != nil:
			sub := placeholderRE.FindStringSubmatch(piece)
			if idx, err := strconv.Atoi(sub[1]); err == nil && idx < len(rt.tokens) {
				out = append(out, rt.tokens[idx])
			}
		}
		last = loc[1]
	}
	if last < len(s) {
		out = append(out, rawText(s[last:]))
	}
	if len(out) == 0 {
		out = append(out, rawText(""))
	}
	return out
}
