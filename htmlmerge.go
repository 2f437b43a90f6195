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

import "regexp"

// An attribute, quoted with either ' or ". spec.md §4.2 describes the
// original regex as requiring the *same* quote character to open and
// close each attribute via a backreference (\5); Go's RE2 engine does not
// support backreferences, so each attribute is matched independently with
// either quote character. This only diverges from the original on the
// pathological case of a mismatched-quote attribute value, which is not
// valid HTML to begin with.
const attrPattern = `(?:\s+[A-Za-z][A-Za-z0-9]*\s*=\s*(?:"[^"]*"|'[^']*'))`

var (
	openTagNoCloseRE = regexp.MustCompile(`^<(/?)([A-Za-z0-9]+)(?:` + attrPattern + `)*\s*/?\s*$`)
	tagTailRE        = regexp.MustCompile(`^\s*(?:` + attrPattern + `)*\s*/?\s*>$`)
)

// mergeMultilineHTMLTags joins adjacent raw-text tokens where an HTML
// open-tag's attribute list spans a newline (spec.md §4.2). One pass
// suffices; a tag spanning three or more lines is not merged.
func mergeMultilineHTMLTags(tokens []*Token) []*Token {
	out := make([]*Token, 0, len(tokens))
	for i := 0; i < len(tokens); i++ {
		cur := tokens[i]
		if cur.Kind == RawTextKind && i+1 < len(tokens) && tokens[i+1].Kind == RawTextKind &&
			openTagNoCloseRE.MatchString(cur.Text) && tagTailRE.MatchString(tokens[i+1].Text) {
			merged := rawText(cur.Text + " " + tokens[i+1].Text)
			out = append(out, merged)
			i++
			continue
		}
		out = append(out, cur)
	}
	return out
}
