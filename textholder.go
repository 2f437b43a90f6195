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

	"go4.org/bytereplacer"
)

// textFlags is the encoding bitset carried by TextHolder-style tokens
// (RawTextKind, InlineHTMLContentsKind). It mirrors the four entity
// substitutions the original plugin applies: ampersands, forced
// double-ampersands, angle brackets, and quotes.
type textFlags uint8

const (
	cAmps       textFlags = 1 << iota // '&' -> "&amp;" unless already an entity
	cDoubleAmps                       // '&' -> "&amp;" unconditionally
	cAngles                           // '<'/'>' -> entities
	cQuotes                           // '"' -> "&quot;"
)

// existingEntityRE matches an already-encoded entity so that cAmps does not
// double-encode it: a named entity, a decimal numeric reference, or a hex
// numeric reference.
var existingEntityRE = regexp.MustCompile(`&(#[0-9]+|#[xX][0-9a-fA-F]+|[A-Za-z][A-Za-z0-9]*);`)

// The four substitutions are expressed as go4.org/bytereplacer.Replacers,
// the same library the teacher uses in internal/normhtml for its
// byte-level htmlEscaper, rather than a hand-rolled switch over runes.
var (
	angleQuoteReplacer = bytereplacer.New(
		"<", "&lt;",
		">", "&gt;",
		`"`, "&quot;",
	)
	angleReplacer = bytereplacer.New(
		"<", "&lt;",
		">", "&gt;",
	)
	quoteReplacer   = bytereplacer.New(`"`, "&quot;")
	doubleAmpFirst  = bytereplacer.New("&", "&amp;")
)

// encodeText applies flags to s, producing the final HTML text for a
// TextHolder-style token.
func encodeText(s string, flags textFlags) string {
	b := []byte(s)
	switch {
	case flags&cDoubleAmps != 0:
		b = doubleAmpFirst.Replace(b)
	case flags&cAmps != 0:
		b = encodeBareAmpersands(b)
	}
	switch {
	case flags&cAngles != 0 && flags&cQuotes != 0:
		b = angleQuoteReplacer.Replace(b)
	case flags&cAngles != 0:
		b = angleReplacer.Replace(b)
	case flags&cQuotes != 0:
		b = quoteReplacer.Replace(b)
	}
	return string(b)
}

// encodeBareAmpersands replaces '&' with "&amp;" except where it already
// begins a recognized entity.
func encodeBareAmpersands(b []byte) []byte {
	loc := existingEntityRE.FindAllIndex(b, -1)
	if len(loc) == 0 {
		return bytereplacer.New("&", "&amp;").Replace(b)
	}
	var out []byte
	prev := 0
	for _, m := range loc {
		out = append(out, bytereplacer.New("&", "&amp;").Replace(b[prev:m[0]])...)
		out = append(out, b[m[0]:m[1]]...)
		prev = m[1]
	}
	out = append(out, bytereplacer.New("&", "&amp;").Replace(b[prev:])...)
	return out
}
