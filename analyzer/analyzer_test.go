// Copyright 2025 Oliver Eikemeier. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package analyzer_test

import (
	"testing"

	"golang.org/x/tools/go/analysis/analysistest"

	. "fillmore-labs.com/quickassist/analyzer"
)

func TestAnalyzer(t *testing.T) {
	t.Parallel()

	testdata := analysistest.TestData()

	tests := []struct {
		name    string
		dir     string
		options Option
		fix     bool
	}{
		{
			name: "Default",
			dir:  "./a",
			fix:  true,
		},
		{
			name:    "Explain",
			dir:     "./explain",
			options: Options{WithExplain(true), WithSuggestFixes(false)},
		},
		{
			name: "Generated",
			dir:  "./generated",
		},
		{
			name:    "Named",
			dir:     "./named",
			options: WithName("item"),
			fix:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if a := New(tt.options); tt.fix {
				analysistest.RunWithSuggestedFixes(t, testdata, a, tt.dir)
			} else {
				analysistest.Run(t, testdata, a, tt.dir)
			}
		})
	}
}

func TestFlags(t *testing.T) {
	t.Parallel()

	a := New()

	for _, name := range []string{"generated", "explain", "suggest", "name"} {
		if a.Flags.Lookup(name) == nil {
			t.Errorf("Flag -%s not registered", name)
		}
	}

	if err := a.Flags.Parse([]string{"-explain", "-suggest=false", "-name=elem"}); err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if got := a.Flags.Lookup("explain").Value.String(); got != "true" {
		t.Errorf("Got -explain=%s, want true", got)
	}

	if got := a.Flags.Lookup("suggest").Value.String(); got != "false" {
		t.Errorf("Got -suggest=%s, want false", got)
	}
}

func TestOptionsLogValue(t *testing.T) {
	t.Parallel()

	opts := Options{WithGenerated(true), nil, Options{WithName("x")}}

	if got, want := opts.LogValue().String(), "[generated=true nil=<nil> name=x]"; got != want {
		t.Errorf("Got %q, want %q", got, want)
	}
}
