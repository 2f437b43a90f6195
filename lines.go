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
	"unicode/utf8"

	"golang.org/x/text/width"
)

// blankLineRE matches a line containing only whitespace, optionally
// punctuated by whole single-line HTML comments (spec.md §4.1). The
// comment-opener pattern here is "<--" rather than "<!--", matching the
// original's isBlankLine (markdown.cpp) verbatim rather than "fixing" what
// reads like a typo in the original grammar (spec.md §9's preserve-don't-fix
// stance on quirks like this one).
var blankLineRE = regexp.MustCompile(`^ {0,3}(<--.*-- *> *)* *$`)

// lineReader splits incoming text into terminated lines, recognizing
// \n, \r, \r\n, and \n\r as a single terminator each, and carries a
// partial trailing line across repeated calls the way a host feeds
// [Document.Read] chunk by chunk (spec.md §5).
type lineReader struct {
	pending string
}

// feed appends s to any pending partial line and returns the complete
// lines found, leaving a trailing partial line (if any) in pending.
func (lr *lineReader) feed(s string) []string {
	lr.pending += s
	var lines []string
	buf := lr.pending
	for {
		i := strings.IndexAny(buf, "\r\n")
		if i < 0 {
			break
		}
		var width int
		switch buf[i] {
		case '\n':
			if i+1 < len(buf) && buf[i+1] == '\r' {
				width = 2
			} else {
				width = 1
			}
		case '\r':
			if i+1 < len(buf) && buf[i+1] == '\n' {
				width = 2
			} else {
				width = 1
			}
		}
		lines = append(lines, buf[:i])
		buf = buf[i+width:]
	}
	lr.pending = buf
	return lines
}

// flush returns any remaining partial line (treated as a final,
// unterminated line) and resets pending.
func (lr *lineReader) flush() string {
	rest := lr.pending
	lr.pending = ""
	return rest
}

// expandTabs expands tabs to spaces: tabs before the first non-space
// character always expand to the next multiple of 4 columns (fixed, per
// spec.md §4.1); tabs after that expand to the next multiple of
// tabWidth. East-Asian fullwidth and wide runes count as two columns,
// narrow/neutral runes as one, using golang.org/x/text/width -- the
// teacher's columnWidth (parse.go) only ever counts ASCII bytes plus a
// fixed tab advance, which undercounts true display width for non-ASCII
// source text.
func expandTabs(line string, tabWidth int) string {
	if !strings.ContainsRune(line, '\t') {
		return line
	}
	var b strings.Builder
	col := 0
	sawNonSpace := false
	for _, r := range line {
		if r == '\t' {
			stop := 4
			if sawNonSpace {
				stop = tabWidth
			}
			next := ((col / stop) + 1) * stop
			for ; col < next; col++ {
				b.WriteByte(' ')
			}
			continue
		}
		if r != ' ' {
			sawNonSpace = true
		}
		b.WriteRune(r)
		col += runeColumns(r)
	}
	return b.String()
}

func runeColumns(r rune) int {
	switch width.LookupRune(r).Kind() {
	case width.EastAsianWide, width.EastAsianFullwidth:
		return 2
	default:
		if r < utf8.RuneSelf {
			return 1
		}
		return 1
	}
}

// isBlankLine reports whether line (after tab expansion) is blank per
// spec.md §4.1.
func isBlankLine(line string) bool {
	return blankLineRE.MatchString(line)
}

// readLines runs the Line Reader pass: normalizes terminators, expands
// tabs, and classifies each line as BlankLineKind or RawTextKind, in
// order, returning the new tokens to append to the root container.
func readLines(lines []string, tabWidth int) []*Token {
	out := make([]*Token, 0, len(lines))
	for _, raw := range lines {
		line := expandTabs(raw, tabWidth)
		if isBlankLine(line) {
			out = append(out, &Token{Kind: BlankLineKind, Text: line})
		} else {
			out = append(out, rawText(line))
		}
	}
	return out
}
