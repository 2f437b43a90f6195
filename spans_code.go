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

var (
	doubleBacktickCodeSpanRE = regexp.MustCompile("``" + ` (.+?) ` + "``")
	singleBacktickCodeSpanRE = regexp.MustCompile("`([^`\x01]+)`")
)

// protectCodeSpans implements spec.md §4.8 pass 2: double-backtick spans
// (which require a padding space inside, so a literal backtick can appear
// at the edge) are matched first, then single-backtick spans. An
// unterminated backtick run has no match and is left as literal text
// (spec.md §7).
func protectCodeSpans(text string, rt *replacementTable) string {
	text = replaceCodeSpanRE(doubleBacktickCodeSpanRE, text, rt)
	text = replaceCodeSpanRE(singleBacktickCodeSpanRE, text, rt)
	return text
}

func replaceCodeSpanRE(re *regexp.Regexp, text string, rt *replacementTable) string {
	return re.ReplaceAllStringFunc(text, func(m string) string {
		sub := re.FindStringSubmatch(m)
		inner := rt.restoreRaw(sub[1])
		tok := &Token{Kind: CodeSpanKind, Text: inner}
		return rt.add("code", m, tok)
	})
}
