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
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// linkDefinition is the resolved target of a reference link or image.
type linkDefinition struct {
	url   string
	title string
}

// linkIDTable maps a scrubbed reference id to its definition. The first
// definition in source order wins on a duplicate insertion (spec.md §9
// leaves this unspecified; this port documents "first wins" in DESIGN.md).
type linkIDTable struct {
	defs map[string]linkDefinition
}

func newLinkIDTable() *linkIDTable {
	return &linkIDTable{defs: make(map[string]linkDefinition)}
}

// caseFolder performs Unicode-aware case folding for reference ids. The
// teacher's go.mod requires golang.org/x/text but never imports it; we give
// it a genuine use here, since strings.ToLower alone does not correctly
// fold multi-byte titlecase and special-casing forms (e.g. the German
// sharp S capital ẞ) the way cases.Fold does.
var caseFolder = cases.Fold()

// scrub normalizes a reference id for lookup: case-fold, then collapse
// every run of whitespace to a single space. The original-case id is
// discarded; only the scrubbed key is ever stored or looked up.
func scrub(id string) string {
	folded := caseFolder.String(id)
	fields := strings.Fields(folded)
	return strings.Join(fields, " ")
}

// define inserts a reference definition, keeping the first one seen.
func (t *linkIDTable) define(id, url, title string) {
	key := scrub(id)
	if key == "" {
		return
	}
	if _, exists := t.defs[key]; exists {
		return
	}
	t.defs[key] = linkDefinition{url: url, title: title}
}

// lookup resolves a reference id, returning ok=false if undefined.
func (t *linkIDTable) lookup(id string) (linkDefinition, bool) {
	if t == nil {
		return linkDefinition{}, false
	}
	d, ok := t.defs[scrub(id)]
	return d, ok
}
