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

// Package tags holds the two static HTML tag-name sets the translator uses
// to decide whether a run of inline HTML is a block or a span, built mostly
// from golang.org/x/net/html/atom the same way the teacher's html.go builds
// its htmlBlockStarters6 table; the remaining names (h1-h6, b, i, big,
// small, strike, tt, u, q, isindex) are written as string literals.
package tags

import "golang.org/x/net/html/atom"

// Rank values returned by Lookup.
const (
	Unknown = 0
	Span    = 1
	Block   = 2
)

var blockTags = map[string]bool{
	atom.P.String():          true,
	atom.Blockquote.String(): true,
	atom.Hr.String():         true,
	"h1":                     true,
	"h2":                     true,
	"h3":                     true,
	"h4":                     true,
	"h5":                     true,
	"h6":                     true,
	atom.Dl.String():         true,
	atom.Dt.String():         true,
	atom.Dd.String():         true,
	atom.Ol.String():         true,
	atom.Ul.String():         true,
	atom.Li.String():         true,
	atom.Dir.String():        true,
	atom.Menu.String():       true,
	atom.Table.String():      true,
	atom.Tr.String():         true,
	atom.Th.String():         true,
	atom.Td.String():         true,
	atom.Col.String():        true,
	atom.Colgroup.String():   true,
	atom.Caption.String():    true,
	atom.Thead.String():      true,
	atom.Tbody.String():      true,
	atom.Tfoot.String():      true,
	atom.Form.String():       true,
	atom.Select.String():     true,
	atom.Option.String():     true,
	atom.Input.String():      true,
	atom.Label.String():      true,
	atom.Textarea.String():   true,
	atom.Div.String():        true,
	atom.Pre.String():        true,
	atom.Address.String():    true,
	atom.Iframe.String():     true,
	atom.Frame.String():      true,
	atom.Frameset.String():   true,
	atom.Noframes.String():   true,
	atom.Center.String():     true,
	"b":                      true,
	"i":                      true,
	"big":                    true,
	"small":                  true,
	"strike":                 true,
	"tt":                     true,
	"u":                      true,
	atom.Font.String():       true,
	atom.Ins.String():        true,
	atom.Del.String():        true,
}

var spanTags = map[string]bool{
	atom.Title.String():     true,
	atom.Base.String():      true,
	atom.Link.String():      true,
	atom.Basefont.String():  true,
	atom.Script.String():    true,
	atom.Style.String():     true,
	atom.Object.String():    true,
	atom.Meta.String():      true,
	atom.Em.String():        true,
	atom.Strong.String():    true,
	"q":                     true,
	atom.Cite.String():      true,
	atom.Dfn.String():       true,
	atom.Abbr.String():      true,
	atom.Acronym.String():   true,
	atom.Code.String():      true,
	atom.Samp.String():      true,
	atom.Kbd.String():       true,
	atom.Var.String():       true,
	atom.Sub.String():       true,
	atom.Sup.String():       true,
	atom.Del.String():       true,
	atom.Ins.String():       true,
	"isindex":               true,
	atom.A.String():         true,
	atom.Img.String():       true,
	atom.Br.String():        true,
	atom.Map.String():       true,
	atom.Area.String():      true,
	atom.Object.String():    true,
	atom.Param.String():     true,
	atom.Applet.String():    true,
	atom.Span.String():      true,
}

// Lookup classifies a (lowercased) tag name, checking the span set before
// the block set when spanFirst is true. It returns Block, Span, or Unknown.
func Lookup(name string, spanFirst bool) int {
	if spanFirst {
		if spanTags[name] {
			return Span
		}
		if blockTags[name] {
			return Block
		}
		return Unknown
	}
	if blockTags[name] {
		return Block
	}
	if spanTags[name] {
		return Span
	}
	return Unknown
}

// Valid reports whether name is recognized in either set.
func Valid(name string) bool {
	return Lookup(name, false) != Unknown
}
