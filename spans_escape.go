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
)

var escapeRE = regexp.MustCompile(`\\[` + regexp.QuoteMeta(escapableChars) + `]`)

// protectEscapes implements spec.md §4.8 pass 3: a backslash followed by
// one of the canonical escapable characters becomes a placeholder
// indexing escapableChars; any other "\x" is left untouched, both
// characters literal (spec.md §7).
func protectEscapes(text string, rt *replacementTable) string {
	return escapeRE.ReplaceAllStringFunc(text, func(m string) string {
		c := m[1]
		idx := strings.IndexByte(escapableChars, c)
		if idx < 0 {
			// The class above also spans ',' (the "+-." run reads as a
			// range); that pair is not an escape.
			return m
		}
		return fmt.Sprintf("\x01@#%d@escaped\x01", idx)
	})
}
