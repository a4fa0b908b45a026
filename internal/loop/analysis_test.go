// Copyright 2026 Oliver Eikemeier. All Rights Reserved.
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

package loop_test

import (
	"fmt"
	"go/ast"
	"go/types"
	"testing"

	. "fillmore-labs.com/quickassist/internal/loop"
	"fillmore-labs.com/quickassist/internal/testsource"
)

const loopTemplate = `package test

type E struct{ v int }

func (*E) Inc() {}

func (E) Get() int { return 0 }

type T struct {
	f []int
	a struct {
		f []int
		b struct{ f []int }
	}
}

func values() []int { return nil }

func matrix() [][]int { return nil }

func _(s, t []int, m map[int]int, str string, arr [3]int, p *[3]int, x T, q *T, es []E, ss [][]string) {
%s
}
`

func load(tb testing.TB, src, goVersion string) (testsource.Source, *Analysis) {
	tb.Helper()

	s := testsource.LoadVersion(tb, fmt.Sprintf(loopTemplate, src), goVersion)
	c, _ := testsource.First[*ast.ForStmt](tb, s.Root)

	return s, New(s.Info, s.Info.FileVersions[s.File], c)
}

func TestCheck(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		src  string
		want Verdict
	}{
		// Convertible loops
		{"Scenario A", `for i := 0; i < len(s); i++ { println(s[i]) }`, Convertible},
		{"Scenario B", `for i := 0; i < len(s); i++ { x := s[i]; println(x); println(x) }`, Convertible},
		{"Unused index", `for i := 0; i < len(s); i++ { println() }`, Convertible},
		{"Parenthesized", `for i := 0; (i < len((s))); i++ { println((s)[i]) }`, Convertible},
		{"Array", `for i := 0; i < len(arr); i++ { println(arr[i]) }`, Convertible},
		{"Pointer to array", `for i := 0; i < len(p); i++ { println(p[i]) }`, Convertible},
		{"Field", `for i := 0; i < len(x.f); i++ { println(x.f[i]) }`, Convertible},
		{"Nested field", `for i := 0; i < len(x.a.f); i++ { println(x.a.f[i]) }`, Convertible},
		{"Bound variable", `for i, n := 0, len(s); i < n; i++ { println(s[i]) }`, Convertible},
		{"Call without index", `for i := 0; i < len(values()); i++ { println() }`, Convertible},
		{"Value method", `for i := 0; i < len(es); i++ { println(es[i].Get()) }`, Convertible},
		{"Element field read", `for i := 0; i < len(es); i++ { println(es[i].v) }`, Convertible},
		{"Shadowed index", `for i := 0; i < len(s); i++ { i := 5; println(i) }`, Convertible},
		{"Write other slice", `for i := 0; i < len(s); i++ { t[0] = s[i] }`, Convertible},

		// Language gate and condition
		{"No condition", `for i := 0; ; i++ { println(s[i]); break }`, NoCondition},
		{"Less or equal", `for i := 0; i <= len(s)-1; i++ { println(s[i]) }`, NoCondition},
		{"Reversed", `for i := 0; len(s) > i; i++ { println(s[i]) }`, NoCondition},

		// Source inference
		{"Constant bound", `for i := 0; i < 10; i++ { println(s[i]) }`, NoSource},
		{"Capacity", `for i := 0; i < cap(s); i++ { println(s[i]) }`, NoSource},
		{"Too deep", `for i := 0; i < len(x.a.b.f); i++ { println(x.a.b.f[i]) }`, NoSource},
		{"Ambiguous", `for i, n, k := 0, len(s), len(t); i < n; i++ { println(s[i], k) }`, NoSource},
		{"Adjusted bound", `for i, n := 0, len(s)-1; i < n; i++ { println(s[i]) }`, NoSource},
		{"Outer bound", `n := len(s); for i := 0; i < n; i++ { println(s[i]) }`, NoSource},

		// Source shape
		{"Map", `for i := 0; i < len(m); i++ { println(m[i]) }`, NotArray},
		{"String", `for i := 0; i < len(str); i++ { println(str[i]) }`, NotArray},

		// Body safety
		{"Cell write", `for i := 0; i < len(s); i++ { s[i] = 0 }`, BodyWrites},
		{"Cell increment", `for i := 0; i < len(s); i++ { s[i]++ }`, BodyWrites},
		{"Constant cell write", `for i := 0; i < len(s); i++ { s[0] = s[i] }`, BodyWrites},
		{"Field of cell write", `for i := 0; i < len(es); i++ { es[i].v = 1 }`, BodyWrites},
		{"Source reassigned", `for i := 0; i < len(s); i++ { s = append(s, s[i]) }`, BodyWrites},
		{"Index write", `for i := 0; i < len(s); i++ { println(s[i]); i++ }`, BodyWrites},
		{"Address of cell", `for i := 0; i < len(s); i++ { p := &s[i]; println(p) }`, BodyWrites},
		{"Pointer method", `for i := 0; i < len(es); i++ { es[i].Inc() }`, BodyWrites},
		{"Array sliced", `for i := 0; i < len(arr); i++ { println(arr[:], arr[i]) }`, BodyWrites},
		{"Copy into source", `for i := 0; i < len(s); i++ { copy(s, t); println(s[i]) }`, BodyWrites},
		{"Range assign", `var v int; for i := 0; i < len(s); i++ { for _, v = range t { println(s[i], v) } }`, Convertible},
		{"Range assign cell", `for i := 0; i < len(s); i++ { for _, s[0] = range t { println(s[i]) } }`, BodyWrites},
		{"Container reassigned", `for i := 0; i < len(x.f); i++ { x = T{}; println(x.f[i]) }`, BodyWrites},
		{"Container dereferenced", `for i := 0; i < len(q.f); i++ { *q = T{}; println(q.f[i]) }`, BodyWrites},
		{"Pointer field", `for i := 0; i < len(q.f); i++ { println(q.f[i]) }`, Convertible},
		{"Copy into re-slice", `for i := 0; i < len(s); i++ { copy(s[1:], t); println(s[i]) }`, BodyWrites},
		{"Re-slice cell write", `for i := 0; i < len(s); i++ { s[1:][0] = 9; println(s[i]) }`, BodyWrites},
		{"Re-slice read", `for i := 0; i < len(s); i++ { u := s[1:]; println(u[0], s[i]) }`, Convertible},
		{"Other re-slice write", `for i := 0; i < len(s); i++ { t[1:][0] = s[i] }`, Convertible},

		{"Index printed", `for i := 0; i < len(s); i++ { println(i) }`, IndexMisused},
		{"Different array", `for i := 0; i < len(s); i++ { println(t[i]) }`, IndexMisused},
		{"Different receiver", `var y T; for i := 0; i < len(x.f); i++ { println(y.f[i]) }`, IndexMisused},
		{"Index arithmetic", `for i := 0; i < len(s); i++ { println(s[i+1]) }`, IndexMisused},
		{"Closure", `for i := 0; i < len(s); i++ { func() { println(s[i]) }() }`, IndexMisused},
		{"Call source indexed", `for i := 0; i < len(values()); i++ { println(values()[i]) }`, IndexMisused},
		{"Nested index", `for i := 0; i < len(ss); i++ { println(ss[i][i]) }`, IndexMisused},

		// Post statement
		{"Scenario D", `for i := 0; i < len(s); i-- { println(s[i]) }`, BadUpdate},
		{"Compound step", `for i := 0; i < len(s); i += 1 { println(s[i]) }`, BadUpdate},
		{"No post", `for i := 0; i < len(s); { println(s[i]); break }`, BadUpdate},
		{"Other variable", `j := 0; for i := 0; i < len(s); j++ { println(s[i]); break }`, BadUpdate},

		// Init statement
		{"Scenario C", `for i := 1; i < len(s); i++ { println(s[i]) }`, NonZeroStart},
		{"Variable start", `k := 0; for i := k; i < len(s); i++ { println(s[i]) }`, NonZeroStart},
		{"Hex zero", `for i := 0x0; i < len(s); i++ { println(s[i]) }`, Convertible},
		{"No init", `i := 0; for ; i < len(s); i++ { println(s[i]) }`, BadInit},
		{"Temp referenced", `for i, j := 0, 5; i < len(s); i++ { println(s[i], j) }`, TempReferenced},
		{"Temp unreferenced", `for i, _ := 0, 5; i < len(s); i++ { println(s[i]) }`, Convertible},
		{"Assigned index", `var i int; for i = 0; i < len(s); i++ { println(s[i]) }; println(i)`, IndexEscapes},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, a := load(t, tt.src, testsource.GoVersion)

			if got := a.Check(); got != tt.want {
				t.Errorf("Check() = %s, want %s", got, tt.want)
			}

			if got, want := a.Convertible(), tt.want == Convertible; got != want {
				t.Errorf("Convertible() = %v, want %v", got, want)
			}
		})
	}
}

func TestUnsupportedVersion(t *testing.T) {
	t.Parallel()

	_, a := load(t, `for i := 0; i < len(s); i++ { println(s[i]) }`, "go1.21")

	if got, want := a.Check(), UnsupportedVersion; got != want {
		t.Errorf("Check() = %s, want %s", got, want)
	}
}

func TestVersionSupported(t *testing.T) {
	t.Parallel()

	tests := []struct {
		version string
		want    bool
	}{
		{"", true},
		{"go1.21", false},
		{"go1.22", true},
		{"go1.22.5", true},
		{"go1.25", true},
	}

	for _, tt := range tests {
		if got := VersionSupported(tt.version); got != tt.want {
			t.Errorf("VersionSupported(%q) = %v, want %v", tt.version, got, tt.want)
		}
	}
}

func TestSource(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		src    string
		elem   string
		dims   int
		isCall bool
		array  bool
	}{
		{"Slice", `for i := 0; i < len(s); i++ { println(s[i]) }`, "int", 1, false, false},
		{"Array", `for i := 0; i < len(arr); i++ { println(arr[i]) }`, "int", 1, false, true},
		{"Pointer to array", `for i := 0; i < len(p); i++ { println(p[i]) }`, "int", 1, false, false},
		{"Two dimensions", `for i := 0; i < len(ss); i++ { println(ss[i]) }`, "[]string", 2, false, false},
		{"Call", `for i := 0; i < len(matrix()); i++ { println() }`, "[]int", 2, true, false},
		{"Bound variable", `for i, n := 0, len(es); i < n; i++ { println(es[i].v) }`, "test.E", 1, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, a := load(t, tt.src, testsource.GoVersion)

			if v := a.Check(); v != Convertible {
				t.Fatalf("Check() = %s, want %s", v, Convertible)
			}

			src := a.Source()

			if got := types.TypeString(src.Elem, nil); got != tt.elem {
				t.Errorf("Got element type %s, want %s", got, tt.elem)
			}

			if src.Dims != tt.dims {
				t.Errorf("Got %d dimensions, want %d", src.Dims, tt.dims)
			}

			if src.IsCall != tt.isCall {
				t.Errorf("Got IsCall %v, want %v", src.IsCall, tt.isCall)
			}

			if got := src.IsArrayValue(); got != tt.array {
				t.Errorf("Got IsArrayValue() %v, want %v", got, tt.array)
			}

			shape := a.Shape()
			if shape.Index == nil || shape.Index.Name != "i" || shape.IndexVar == nil {
				t.Errorf("Index not recorded")
			}

			if shape.Stmt() == nil || shape.Body.Node() != shape.Stmt().Body {
				t.Errorf("Loop not recorded")
			}
		})
	}
}

func TestCheckIdempotent(t *testing.T) {
	t.Parallel()

	s, a := load(t, `for i := 0; i < len(s); i++ { println(s[i]) }`, testsource.GoVersion)

	first := a.Check()

	// A fresh analysis of the same tree yields the same verdict
	c, _ := testsource.First[*ast.ForStmt](t, s.Root)
	if second := New(s.Info, s.Info.FileVersions[s.File], c).Check(); second != first {
		t.Errorf("Got %s on second analysis, want %s", second, first)
	}

	if again := a.Check(); again != first {
		t.Errorf("Got %s on repeated check, want %s", again, first)
	}
}

func TestNoSource(t *testing.T) {
	t.Parallel()

	_, a := load(t, `for i := 0; i < 3; i++ { println(i) }`, testsource.GoVersion)

	if a.Source() != nil {
		t.Errorf("Expected no source")
	}
}

func TestVerdictString(t *testing.T) {
	t.Parallel()

	if got, want := BodyWrites.String(), "wrt"; got != want {
		t.Errorf("Got %q, want %q", got, want)
	}

	if got, want := Verdict(200).String(), "Verdict(200)"; got != want {
		t.Errorf("Got %q, want %q", got, want)
	}
}
