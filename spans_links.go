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
	"strings"

	"github.com/gclxry/nppmarkdown/internal/tags"
)

func validTag(name string) bool {
	return tags.Valid(name)
}

var inlineLinkTailRE = regexp.MustCompile(`^\(\s*(<[^>]*>|[^()\s]*)(?:\s+("(?:[^"\\]|\\.)*"|'(?:[^'\\]|\\.)*'))?\s*\)`)

var urlSchemeRE = regexp.MustCompile(`(?i)^(https?|ftps?|file)://|^www\.|^ftp\.`)

var emailRE = regexp.MustCompile(`(?i)^[A-Za-z0-9._%+\x{80}-\x{10FFFF}-]+@[A-Za-z0-9.\x{80}-\x{10FFFF}-]+\.[A-Za-z]{2,4}$`)

// looksLikeURL reports whether s should be treated as an autolink URL
// (spec.md §4.8 pass 4).
func looksLikeURL(s string) bool {
	return urlSchemeRE.MatchString(s)
}

// looksLikeEmail reports whether s should be treated as an autolink email
// address. The original plugin's comment calls allowing high-bit bytes in
// the local/site parts a "kludge"; this port preserves that behavior
// rather than correcting it (spec.md §9).
func looksLikeEmail(s string) bool {
	return emailRE.MatchString(s)
}

// processLinksAndTags implements spec.md §4.8 pass 4: inline/reference
// links and images, and autolinks/bare tags, scanned left to right. A
// reference whose id does not resolve falls back to emitting only its
// leading '[' literally and resuming from the next character, which falls
// out naturally here because an unhandled position just emits one byte
// and advances by one.
func processLinksAndTags(text string, rt *replacementTable) string {
	var b strings.Builder
	i := 0
	for i < len(text) {
		c := text[i]
		if c == placeholderSentinel {
			if loc := placeholderRE.FindStringIndex(text[i:]); loc != nil && loc[0] == 0 {
				b.WriteString(text[i : i+loc[1]])
				i += loc[1]
				continue
			}
			if loc := escapePlaceholderRE.FindStringIndex(text[i:]); loc != nil && loc[0] == 0 {
				b.WriteString(text[i : i+loc[1]])
				i += loc[1]
				continue
			}
		}
		if c == '!' || c == '[' {
			if repl, n, ok := tryLinkOrImage(text[i:], rt); ok {
				b.WriteString(repl)
				i += n
				continue
			}
		}
		if c == '<' {
			if repl, n, ok := tryAutolinkOrTag(text[i:], rt); ok {
				b.WriteString(repl)
				i += n
				continue
			}
		}
		b.WriteByte(c)
		i++
	}
	return b.String()
}

// tryLinkOrImage attempts to match an inline or reference link/image at
// the start of s. ok is false if nothing matched, in which case the
// caller falls back one byte at a time.
func tryLinkOrImage(s string, rt *replacementTable) (repl string, consumed int, ok bool) {
	bang := false
	pos := 0
	if s[0] == '!' {
		bang = true
		pos = 1
	}
	if pos >= len(s) || s[pos] != '[' {
		return "", 0, false
	}
	contentsEnd := findUnescapedCloseBracket(s, pos+1)
	if contentsEnd < 0 {
		return "", 0, false
	}
	contents := s[pos+1 : contentsEnd]
	after := contentsEnd + 1

	if after < len(s) && s[after] == '(' {
		if m := inlineLinkTailRE.FindStringSubmatch(s[after:]); m != nil {
			url := stripAngleBrackets(m[1])
			title := unquoteTitle(m[2])
			tok := buildLinkToken(bang, rt.restoreRaw(contents), url, title, rt.links)
			return rt.add("link", s[:after+len(m[0])], tok), after + len(m[0]), true
		}
		return "", 0, false
	}

	if after < len(s) && s[after] == '[' {
		idEnd := findUnescapedCloseBracket(s, after+1)
		if idEnd < 0 {
			return "", 0, false
		}
		id := s[after+1 : idEnd]
		key := id
		if key == "" {
			key = contents
		}
		def, found := rt.links.lookup(key)
		if !found {
			return "", 0, false
		}
		tok := buildLinkToken(bang, rt.restoreRaw(contents), def.url, def.title, rt.links)
		whole := s[:idEnd+1]
		return rt.add("link", whole, tok), idEnd + 1, true
	}

	// Shortcut reference: "[id]" with no second bracket pair, the id
	// being the link text itself.
	if def, found := rt.links.lookup(contents); found {
		tok := buildLinkToken(bang, rt.restoreRaw(contents), def.url, def.title, rt.links)
		whole := s[:contentsEnd+1]
		return rt.add("link", whole, tok), contentsEnd + 1, true
	}

	return "", 0, false
}

// buildLinkToken constructs either an Image leaf or an anchor Container
// (HtmlAnchorTag, RawText, HtmlTag("/a")) around contents.
func buildLinkToken(isImage bool, contents, url, title string, links *linkIDTable) *Token {
	if isImage {
		return &Token{Kind: ImageKind, AltText: contents, URL: url, Title: title}
	}
	open := `<a href="` + encodeURLAttr(url) + `"`
	if title != "" {
		open += ` title="` + encodeText(title, cAmps|cQuotes) + `"`
	}
	open += ">"
	inner := runSpanPipeline(contents, links)
	children := append([]*Token{{Kind: HTMLAnchorTagKind, Text: open}}, inner...)
	children = append(children, &Token{Kind: HTMLTagKind, Text: "/a"})
	return &Token{Kind: ContainerKind, Children: children}
}

// anchorAround wraps text in a precomputed anchor opening and closing tag.
// flags controls entity encoding of innerText at write time; pass 0 when
// innerText is already fully entity-encoded (e.g. an email display name).
func anchorAround(href, innerText string, flags textFlags) *Token {
	open := &Token{Kind: HTMLAnchorTagKind, Text: `<a href="` + href + `">`}
	text := &Token{Kind: RawTextKind, Text: innerText, CanContainMarkup: false, Flags: flags}
	closeTag := &Token{Kind: HTMLTagKind, Text: "/a"}
	return &Token{Kind: ContainerKind, Children: []*Token{open, text, closeTag}}
}

// tryAutolinkOrTag attempts to match "<...>" at the start of s as a URL
// autolink, an email autolink, or a bare recognized HTML tag.
func tryAutolinkOrTag(s string, rt *replacementTable) (repl string, consumed int, ok bool) {
	end := strings.IndexByte(s, '>')
	if end < 0 || strings.ContainsAny(s[1:end], "<\n") {
		return "", 0, false
	}
	inner := s[1:end]
	whole := s[:end+1]

	switch {
	case looksLikeURL(inner):
		tok := anchorAround(encodeURLAttr(inner), inner, cAmps|cAngles)
		return rt.add("auto", whole, tok), end + 1, true
	case looksLikeEmail(inner):
		tok := anchorAround(encodeMailto(inner), encodeEmailDisplay(inner), 0)
		return rt.add("auto", whole, tok), end + 1, true
	case func() bool {
		name := firstTagName(inner)
		return validTag(name)
	}():
		tok := &Token{Kind: HTMLTagKind, Text: rt.restoreRaw(inner)}
		return rt.add("tag", whole, tok), end + 1, true
	default:
		return "", 0, false
	}
}

func firstTagName(inner string) string {
	inner = strings.TrimPrefix(inner, "/")
	i := 0
	for i < len(inner) && (inner[i] == '-' || inner[i] >= '0' && inner[i] <= '9' || inner[i] >= 'a' && inner[i] <= 'z' || inner[i] >= 'A' && inner[i] <= 'Z') {
		i++
	}
	return strings.ToLower(inner[:i])
}

// findUnescapedCloseBracket returns the index in s of the first ']' at or
// after start that is not escaped with a backslash, or -1.
func findUnescapedCloseBracket(s string, start int) int {
	for i := start; i < len(s); i++ {
		switch s[i] {
		case '\\':
			i++
		case ']':
			return i
		}
	}
	return -1
}

func stripAngleBrackets(s string) string {
	if strings.HasPrefix(s, "<") && strings.HasSuffix(s, ">") {
		return s[1 : len(s)-1]
	}
	return s
}

func unquoteTitle(s string) string {
	if len(s) >= 2 && (s[0] == '"' || s[0] == '\'') {
		return s[1 : len(s)-1]
	}
	return ""
}

// encodeURLAttr percent-style-escapes a URL for safe inclusion inside an
// href attribute value; entities are still applied to '&' and quotes.
func encodeURLAttr(url string) string {
	return encodeText(url, cAmps|cQuotes)
}

// emailEncode renders s as a run of alternating decimal/hex numeric
// character references, one per byte, starting with decimal and flipping
// on every byte regardless of whether that byte was actually encoded;
// bytes with the high bit set pass through literally. This is a direct
// port of the original plugin's emailEncode (markdown-tokens.cpp), "kludge"
// comment and all (spec.md §9's Open Questions calls out preserving this
// rather than fixing it).
func emailEncode(s string) string {
	var b strings.Builder
	inHex := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c&0x80 != 0:
			b.WriteByte(c)
		case inHex:
			fmt.Fprintf(&b, "&#x%x;", c)
		default:
			fmt.Fprintf(&b, "&#%d;", c)
		}
		inHex = !inHex
	}
	return b.String()
}

// encodeMailto renders the full "mailto:addr" URI through emailEncode, the
// same way the original builds its HtmlAnchorTag href for an email autolink.
func encodeMailto(addr string) string {
	return emailEncode("mailto:" + addr)
}

// encodeEmailDisplay renders the visible text of an email autolink through
// emailEncode, matching the original's separate emailEncode(contents) call
// for the anchor's inner text.
func encodeEmailDisplay(addr string) string {
	return emailEncode(addr)
}
