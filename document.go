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
	"io"
	"strconv"
	"strings"
)

// Option configures a [Document] at construction time, the same
// functional-options shape used across the example pack where the
// teacher itself favors exported struct fields (spec.md and SPEC_FULL.md
// §A: Document follows the corpus's configuration idiom rather than
// introducing a flags-style config struct).
type Option func(*Document)

// WithTabWidth sets the tab stop width used for tabs after the first
// non-space character on a line (spec.md §4.1). The default is 4; tabs
// in the initial indent are always expanded to 4 regardless of this
// setting.
func WithTabWidth(n int) Option {
	return func(d *Document) {
		if n > 0 {
			d.tabWidth = n
		}
	}
}

// WithRawHTMLFilter installs a predicate that reports whether an HTML
// element with the given lowercased tag name should have its leading
// angle bracket escaped on write, mirroring the teacher's
// HTMLRenderer.FilterTag (html_renderer.go). Raw HTML tokens are passed
// through unmodified otherwise.
func WithRawHTMLFilter(f func(tag string) bool) Option {
	return func(d *Document) {
		d.filterTag = f
	}
}

// Document accumulates Markdown source, processes it exactly once, and
// writes the resulting HTML (spec.md §5, §6).
type Document struct {
	tabWidth  int
	filterTag func(tag string) bool

	lr        lineReader
	root      *Token
	links     *linkIDTable
	processed bool
}

// NewDocument creates an empty Document ready to accept input via Read.
func NewDocument(opts ...Option) *Document {
	d := &Document{
		tabWidth: 4,
		root:     newContainer(DocumentKind),
		links:    newLinkIDTable(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Read runs the Line Reader pass (spec.md §4.1) over s, appending the
// resulting tokens to the document's root container. It reports whether
// any input was appended: false if s was empty or the document has
// already been processed (spec.md §6's "read → boolean" surface).
func (d *Document) Read(s string) bool {
	if d.processed || s == "" {
		return false
	}
	lines := d.lr.feed(s)
	d.appendLines(lines)
	return true
}

// ReadFrom reads all of r as UTF-8 text and runs the Line Reader pass
// over it, flushing any final unterminated line. It mirrors the
// teacher's io.Reader-based input handling (parse.go), returning a
// wrapped error on I/O failure; per spec.md §5, lines already appended
// before a read failure remain part of the document.
func (d *Document) ReadFrom(r io.Reader) (int64, error) {
	if d.processed {
		return 0, nil
	}
	var total int64
	buf := make([]byte, 64*1024)
	for {
		n, err := r.Read(buf)
		if n > 0 {
			total += int64(n)
			d.Read(string(buf[:n]))
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return total, fmt.Errorf("read markdown: %w", err)
		}
	}
	if rest := d.lr.flush(); rest != "" {
		d.appendLines([]string{rest})
	}
	return total, nil
}

func (d *Document) appendLines(lines []string) {
	if len(lines) == 0 {
		return
	}
	d.root.Children = append(d.root.Children, readLines(lines, d.tabWidth)...)
}

// process runs passes 2 through 5 over the accumulated token tree
// exactly once (spec.md §5's idempotency latch); subsequent calls are
// no-ops. A final unterminated line still pending from Read is appended
// first.
func (d *Document) process() {
	if d.processed {
		return
	}
	d.processed = true
	if rest := d.lr.flush(); rest != "" {
		d.appendLines([]string{rest})
	}
	d.root.Children = mergeMultilineHTMLTags(d.root.Children)
	d.root.Children = extractInlineHTMLAndReferences(d.root.Children, d.links)
	d.root.Children = classifyBlocks(d.root.Children)
	groupParagraphs(d.root)
	processSpansTree(d.root, d.links)
}

// Write triggers processing (on first call) and writes the resulting
// HTML fragment to w (spec.md §6).
func (d *Document) Write(w io.Writer) error {
	d.process()
	if _, err := w.Write(writeHTML(d.root, d.filterTag)); err != nil {
		return fmt.Errorf("write markdown html: %w", err)
	}
	return nil
}

// WriteTokens triggers processing (on first call) and writes a debug
// dump of the token tree to w: one token per line, indented two spaces
// per nesting depth, as "Kind field=value ...". The exact shape is not
// meant to be stable across versions (spec.md §6 only requires a
// human-readable dump), mirroring the original plugin's toXML debug
// routines (markdown-tokens.cpp), which likewise exist for inspection
// rather than round-tripping.
func (d *Document) WriteTokens(w io.Writer) error {
	d.process()
	var b strings.Builder
	dumpToken(&b, d.root, 0)
	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("write markdown token dump: %w", err)
	}
	return nil
}

func dumpToken(b *strings.Builder, t *Token, depth int) {
	b.WriteString(strings.Repeat("  ", depth))
	b.WriteString(t.Kind.String())
	for _, f := range tokenFields(t) {
		b.WriteByte(' ')
		b.WriteString(f)
	}
	b.WriteByte('\n')
	for _, c := range t.Children {
		dumpToken(b, c, depth+1)
	}
}

// tokenFields renders the variant-specific fields of t that are
// meaningful for its Kind, skipping zero values.
func tokenFields(t *Token) []string {
	var f []string
	if t.Text != "" {
		f = append(f, "text="+strconv.Quote(t.Text))
	}
	if t.Level != 0 {
		f = append(f, "level="+strconv.Itoa(t.Level))
	}
	if t.Kind == BoldOrItalicMarkerKind {
		f = append(f, "char="+string(t.Char))
		f = append(f, "size="+strconv.Itoa(t.Size))
		f = append(f, "open="+strconv.FormatBool(t.Open))
		if t.Disabled || t.PeerID < 0 {
			f = append(f, "matched=false")
		} else {
			f = append(f, "peer="+strconv.Itoa(t.PeerID))
		}
	}
	if t.Kind == EscapedCharacterKind {
		f = append(f, "char="+string(t.Char))
	}
	if t.Kind == ImageKind {
		f = append(f, "url="+strconv.Quote(t.URL))
		if t.Title != "" {
			f = append(f, "title="+strconv.Quote(t.Title))
		}
		f = append(f, "alt="+strconv.Quote(t.AltText))
	}
	if t.ParagraphMode {
		f = append(f, "paragraphMode=true")
	}
	return f
}
