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

// Package markdown translates the classic Markdown dialect into HTML.
//
// It is the translator core extracted from the NppMarkdown Notepad++
// plugin: a five-pass pipeline over a mutable token tree (line reading,
// multiline HTML tag merging, inline-HTML and reference extraction, block
// classification, and paragraph/span processing). The package has no
// dependency on an editor host, GUI toolkit, or file system: callers feed
// it text through [Document.Read] and collect HTML through [Document.Write].
package markdown
