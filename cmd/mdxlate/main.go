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

// Command mdxlate translates Markdown source to an HTML fragment,
// standing in for the Notepad++ host boundary the translator core is
// embedded in (spec.md §1): a reader in, an HTML writer out.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/gclxry/nppmarkdown"
)

func main() {
	tabWidth := flag.Int("tabwidth", 4, "tab stop width for non-leading tabs")
	dumpTokens := flag.Bool("tokens", false, "dump the token tree instead of HTML")
	noRawHTML := flag.Bool("no-raw-html", false, "escape all raw HTML tags instead of passing them through")
	flag.Parse()

	var opts []markdown.Option
	opts = append(opts, markdown.WithTabWidth(*tabWidth))
	if *noRawHTML {
		opts = append(opts, markdown.WithRawHTMLFilter(func(tag string) bool { return true }))
	}
	doc := markdown.NewDocument(opts...)

	var in *os.File = os.Stdin
	if args := flag.Args(); len(args) > 0 {
		f, err := os.Open(args[0])
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		in = f
	}

	if _, err := doc.ReadFrom(in); err != nil {
		log.Fatal(err)
	}

	var writeErr error
	if *dumpTokens {
		writeErr = doc.WriteTokens(os.Stdout)
	} else {
		writeErr = doc.Write(os.Stdout)
	}
	if writeErr != nil {
		fmt.Fprintln(os.Stderr, writeErr)
		os.Exit(1)
	}
}
