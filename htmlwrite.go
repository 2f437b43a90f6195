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

// writeState carries the output buffer and the optional filtering hooks
// through one HTML Writer pass (spec.md §4.9), the same append-to-[]byte
// shape html_renderer.go's renderState uses instead of writing straight to
// an io.Writer for every token.
type writeState struct {
	dst       []byte
	filterTag func(tag string) bool
}

// writeHTML runs the HTML Writer pass over the document's root container
// and returns the accumulated bytes.
func writeHTML(root *Token, filterTag func(tag string) bool) []byte {
	st := &writeState{filterTag: filterTag}
	st.writeChildren(root.Children)
	return st.dst
}

func (st *writeState) writeChildren(children []*Token) {
	for _, c := range children {
		st.write(c)
	}
}

func (st *writeState) write(t *Token) {
	switch t.Kind {
	case RawTextKind, InlineHTMLContentsKind:
		st.dst = append(st.dst, encodeText(t.Text, t.Flags)...)
	case BlankLineKind:
		// Blank lines carry no output of their own; block spacing comes
		// from the fixed strings each block kind writes around itself.
	case EscapedCharacterKind:
		st.dst = append(st.dst, encodeText(string(t.Char), cAmps|cAngles|cQuotes)...)
	case HTMLTagKind:
		st.writeRawTag(t.Text)
	case HTMLAnchorTagKind:
		st.dst = append(st.dst, t.Text...)
	case InlineHTMLCommentKind:
		st.dst = append(st.dst, t.Text...)
		st.dst = append(st.dst, '\n')
	case CodeBlockKind:
		st.dst = append(st.dst, "<pre><code>"...)
		st.dst = append(st.dst, encodeText(t.Text, cAmps|cAngles)...)
		st.dst = append(st.dst, "</code></pre>\n\n"...)
	case CodeSpanKind:
		st.dst = append(st.dst, "<code>"...)
		st.dst = append(st.dst, encodeText(t.Text, cAmps|cAngles)...)
		st.dst = append(st.dst, "</code>"...)
	case HeaderKind:
		st.dst = append(st.dst, '<', 'h', byte('0'+t.Level), '>')
		st.writeChildren(t.Children)
		st.dst = append(st.dst, '<', '/', 'h', byte('0'+t.Level), '>', '\n')
	case BoldOrItalicMarkerKind:
		st.writeEmphasisMarker(t)
	case ImageKind:
		st.writeImage(t)
	case ContainerKind:
		st.writeChildren(t.Children)
	case DocumentKind:
		st.writeChildren(t.Children)
	case ParagraphKind:
		st.dst = append(st.dst, "<p>"...)
		st.writeChildren(t.Children)
		st.dst = append(st.dst, "</p>\n\n"...)
	case BlockQuoteKind:
		st.dst = append(st.dst, "<blockquote>\n"...)
		st.writeChildren(t.Children)
		st.dst = append(st.dst, "</blockquote>\n"...)
	case UnorderedListKind:
		// The leading blank line before <ul> matches the original
		// plugin's list output (markdown-tokens.cpp); spec.md §8's
		// list scenario expects it verbatim.
		st.dst = append(st.dst, "\n<ul>\n"...)
		st.writeChildren(t.Children)
		st.dst = append(st.dst, "</ul>\n\n"...)
	case OrderedListKind:
		st.dst = append(st.dst, "\n<ol>\n"...)
		st.writeChildren(t.Children)
		st.dst = append(st.dst, "</ol>\n\n"...)
	case ListItemKind:
		st.dst = append(st.dst, "<li>"...)
		st.writeChildren(t.Children)
		st.dst = append(st.dst, "</li>\n"...)
	case InlineHTMLBlockKind:
		st.writeChildren(t.Children)
		st.dst = append(st.dst, '\n')
	}
}

// writeRawTag emits a literal "<...>" tag, consulting filterTag (spec.md
// §6's sanitizer hook) to decide whether to escape the leading angle
// bracket instead of passing the tag through.
func (st *writeState) writeRawTag(body string) {
	name := strings.TrimPrefix(body, "/")
	for i := 0; i < len(name); i++ {
		if name[i] == ' ' || name[i] == '\t' || name[i] == '/' {
			name = name[:i]
			break
		}
	}
	name = strings.ToLower(name)
	if st.filterTag != nil && st.filterTag(name) {
		st.dst = append(st.dst, "&lt;"...)
		st.dst = append(st.dst, body...)
		st.dst = append(st.dst, '>')
		return
	}
	st.dst = append(st.dst, '<')
	st.dst = append(st.dst, body...)
	st.dst = append(st.dst, '>')
}

// writeEmphasisMarker emits an unmatched marker as literal delimiter
// characters, or a matched marker as the appropriate <em>/<strong> open
// or close tag per its size (spec.md §4.8 item 5, §4.9).
func (st *writeState) writeEmphasisMarker(t *Token) {
	if t.Disabled || t.PeerID < 0 {
		st.dst = append(st.dst, strings.Repeat(string(t.Char), t.Size)...)
		return
	}
	if t.Open {
		switch t.Size {
		case 1:
			st.dst = append(st.dst, "<em>"...)
		case 2:
			st.dst = append(st.dst, "<strong>"...)
		case 3:
			st.dst = append(st.dst, "<strong><em>"...)
		}
		return
	}
	switch t.Size {
	case 1:
		st.dst = append(st.dst, "</em>"...)
	case 2:
		st.dst = append(st.dst, "</strong>"...)
	case 3:
		st.dst = append(st.dst, "</em></strong>"...)
	}
}

func (st *writeState) writeImage(t *Token) {
	st.dst = append(st.dst, `<img src="`...)
	st.dst = append(st.dst, encodeURLAttr(t.URL)...)
	st.dst = append(st.dst, `" alt="`...)
	st.dst = append(st.dst, encodeText(t.AltText, cAmps|cQuotes)...)
	st.dst = append(st.dst, '"')
	if t.Title != "" {
		st.dst = append(st.dst, ` title="`...)
		st.dst = append(st.dst, encodeText(t.Title, cAmps|cQuotes)...)
		st.dst = append(st.dst, '"')
	}
	st.dst = append(st.dst, "/>"...)
}
