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

// Package fixtures embeds the translator's end-to-end scenarios, the same
// go:embed-a-JSON-testsuite shape the teacher uses in internal/spec to
// load the CommonMark specification's examples.
package fixtures

import (
	_ "embed"
	"encoding/json"
)

// Case is a single end-to-end input/output scenario.
type Case struct {
	Markdown string
	HTML     string
	Example  int
	Section  string
}

//go:embed cases.json
var casesData []byte

// Load returns the embedded end-to-end scenarios.
func Load() ([]Case, error) {
	var cases []Case
	if err := json.Unmarshal(casesData, &cases); err != nil {
		return nil, err
	}
	return cases, nil
}
