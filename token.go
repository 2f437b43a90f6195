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

// Kind is an enumeration of the variants a [Token] can hold. A single
// struct carries the union of fields needed by any variant; which fields
// are meaningful is determined by Kind, the same layout the teacher uses
// for its Block/Inline structs (see ast.go's kind-tagged Inline).
type Kind uint8

const (
	// RawTextKind holds text that may still contain unprocessed markup.
	RawTextKind Kind = 1 + iota
	// BlankLineKind is a structural separator; Text holds the original
	// (possibly empty) line.
	BlankLineKind
	// HTMLTagKind is a literal "<...>" emitted verbatim; Text is the tag
	// body without the angle brackets.
	HTMLTagKind
	// HTMLAnchorTagKind is a pre-rendered opening anchor tag; Text holds
	// the full precomputed opening text, e.g. `<a href="...">`.
	HTMLAnchorTagKind
	// InlineHTMLContentsKind is HTML interior text that only receives
	// minimal entity encoding.
	InlineHTMLContentsKind
	// InlineHTMLCommentKind is one raw HTML comment line.
	InlineHTMLCommentKind
	// CodeBlockKind is an indentation-fenced code block; Text is verbatim.
	CodeBlockKind
	// CodeSpanKind is an inline `code` span; Text is verbatim.
	CodeSpanKind
	// HeaderKind is an ATX or Setext header; Level is 1-6, Children holds
	// the span-processed inner content.
	HeaderKind
	// EscapedCharacterKind is one backslash-escaped character; Char holds it.
	EscapedCharacterKind
	// BoldOrItalicMarkerKind is an emphasis delimiter run.
	BoldOrItalicMarkerKind
	// ImageKind is an <img> leaf.
	ImageKind

	// Container kinds: ordered sequences of children.

	// ContainerKind is a bare grouping container with no markup of its own
	// (used where paragraphs are inhibited and replaced by a plain wrapper).
	ContainerKind
	// DocumentKind is the root container owning the whole token tree.
	DocumentKind
	// ParagraphKind wraps a run of text in <p>...</p>.
	ParagraphKind
	// BlockQuoteKind wraps its children in <blockquote>...</blockquote>.
	BlockQuoteKind
	// UnorderedListKind wraps ListItemKind children in <ul>...</ul>.
	UnorderedListKind
	// OrderedListKind wraps ListItemKind children in <ol>...</ol>.
	OrderedListKind
	// ListItemKind wraps one list entry's content in <li>...</li>.
	ListItemKind
	// InlineHTMLBlockKind is an atomic HTML block or comment block.
	InlineHTMLBlockKind
)

func (k Kind) String() string {
	switch k {
	case RawTextKind:
		return "RawText"
	case BlankLineKind:
		return "BlankLine"
	case HTMLTagKind:
		return "HtmlTag"
	case HTMLAnchorTagKind:
		return "HtmlAnchorTag"
	case InlineHTMLContentsKind:
		return "InlineHtmlContents"
	case InlineHTMLCommentKind:
		return "InlineHtmlComment"
	case CodeBlockKind:
		return "CodeBlock"
	case CodeSpanKind:
		return "CodeSpan"
	case HeaderKind:
		return "Header"
	case EscapedCharacterKind:
		return "EscapedCharacter"
	case BoldOrItalicMarkerKind:
		return "BoldOrItalicMarker"
	case ImageKind:
		return "Image"
	case ContainerKind:
		return "Container"
	case DocumentKind:
		return "Document"
	case ParagraphKind:
		return "Paragraph"
	case BlockQuoteKind:
		return "BlockQuote"
	case UnorderedListKind:
		return "UnorderedList"
	case OrderedListKind:
		return "OrderedList"
	case ListItemKind:
		return "ListItem"
	case InlineHTMLBlockKind:
		return "InlineHtmlBlock"
	default:
		return "Kind(?)"
	}
}

// Token is the universal tree node of a [Document]. A single sparse struct
// plays every role listed in the data model rather than a family of
// interface implementations: which fields apply is determined by Kind,
// following the same tagged-union shape the teacher uses for Block/Inline.
type Token struct {
	Kind Kind

	// Text holds the variant-specific string payload: the raw text for
	// RawTextKind/BlankLineKind, the tag body for HTMLTagKind, the
	// precomputed opening for HTMLAnchorTagKind, the interior text for
	// InlineHTMLContentsKind/InlineHTMLCommentKind, the verbatim body for
	// CodeBlockKind/CodeSpanKind.
	Text string

	// Flags controls entity encoding for Text when written (RawTextKind,
	// InlineHTMLContentsKind). See textFlags.
	Flags textFlags

	// CanContainMarkup is true for RawTextKind leaves that have not yet
	// been run through the span processor.
	CanContainMarkup bool

	// Level is the heading level (1-6) for HeaderKind.
	Level int

	// Char is the escaped character for EscapedCharacterKind, or the
	// delimiter character ('*'/'_') for BoldOrItalicMarkerKind.
	Char byte

	// The following fields apply only to BoldOrItalicMarkerKind.
	Open     bool // true if this is an opening delimiter
	Size     int  // run length, 1-3
	Disabled bool // written as literal text when set; the matcher never sets it (split markers are resized in place, unmatched ones keep PeerID -1)
	PeerID   int  // shared id once matched with its closing/opening peer; -1 if unmatched

	// The following fields apply only to ImageKind.
	AltText string
	URL     string
	Title   string

	// Children holds the ordered contents of a container Kind, or (for
	// HeaderKind) the span-processed inner content.
	Children []*Token

	// InhibitParagraphs suppresses paragraph wrapping for a container's
	// direct text children (ListItem with the flag set, Header).
	InhibitParagraphs bool

	// ParagraphMode marks a list as "loose": every item's content is
	// wrapped in <p>. Applies to UnorderedListKind/OrderedListKind.
	ParagraphMode bool
}

// IsBlankLine reports whether the token is a blank-line separator.
func (t *Token) IsBlankLine() bool {
	return t != nil && t.Kind == BlankLineKind
}

// IsContainer reports whether the token owns an ordered child list.
func (t *Token) IsContainer() bool {
	if t == nil {
		return false
	}
	switch t.Kind {
	case ContainerKind, DocumentKind, ParagraphKind, BlockQuoteKind,
		UnorderedListKind, OrderedListKind, ListItemKind, InlineHTMLBlockKind:
		return true
	default:
		return false
	}
}

// Text accessor for leaves that expose one; returns "" for containers.
func (t *Token) text() string {
	if t == nil {
		return ""
	}
	return t.Text
}

// marker predicates over the emphasis marker states (§3 of the spec): a
// marker token is unmatched/matched crossed with open/close. The matcher
// in spans_emphasis.go tests the fields directly rather than calling these.

func (t *Token) isUnmatchedOpen() bool {
	return t.Kind == BoldOrItalicMarkerKind && t.Open && !t.Disabled && t.PeerID < 0
}

func (t *Token) isUnmatchedClose() bool {
	return t.Kind == BoldOrItalicMarkerKind && !t.Open && !t.Disabled && t.PeerID < 0
}

func (t *Token) isMatchedOpen() bool {
	return t.Kind == BoldOrItalicMarkerKind && t.Open && !t.Disabled && t.PeerID >= 0
}

func (t *Token) isMatchedClose() bool {
	return t.Kind == BoldOrItalicMarkerKind && !t.Open && !t.Disabled && t.PeerID >= 0
}

// newContainer allocates an empty container token of the given kind.
func newContainer(kind Kind) *Token {
	return &Token{Kind: kind}
}

// rawText allocates a RawTextKind leaf that can still be reprocessed by
// later passes.
func rawText(s string) *Token {
	return &Token{Kind: RawTextKind, Text: s, CanContainMarkup: true, Flags: cAmps | cAngles | cQuotes}
}
