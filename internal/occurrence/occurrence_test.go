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

package occurrence_test

import (
	"fmt"
	"go/ast"
	"go/types"
	"slices"
	"testing"

	"golang.org/x/tools/go/ast/edge"
	"golang.org/x/tools/go/ast/inspector"

	. "fillmore-labs.com/quickassist/internal/occurrence"
	"fillmore-labs.com/quickassist/internal/testsource"
)

const occurrenceSrc = `package test

type T struct{ f []int }

func (T) Items() []int { return nil }

func values() []int { return nil }

func count() int { return 0 }

func _() {
	x := 1
	x++
	_ = x + x
	{
		_ = x
	}

	_ = values()[0]
	_ = values()
	for i := range values() {
		_ = values()[i]
	}
	f := values
	_ = f()[0]

	_ = count()

	var t T
	_ = t.Items()[1]
	_ = t.f[2]
}
`

func TestFind(t *testing.T) {
	t.Parallel()

	s := testsource.Load(t, occurrenceSrc)

	var block inspector.Cursor
	for c := range s.Root.Preorder((*ast.FuncDecl)(nil)) {
		if c.Node().(*ast.FuncDecl).Name.Name == "_" {
			block = c.ChildAt(edge.FuncDecl_Body, -1)
		}
	}

	inner := firstBlock(t, block)

	lookup := func(name string) types.Object {
		obj := s.Pkg.Scope().Lookup(name)
		if obj == nil {
			for id, def := range s.Info.Defs {
				if def != nil && id.Name == name {
					return def
				}
			}
		}

		return obj
	}

	method, _, _ := types.LookupFieldOrMethod(lookup("T").Type(), false, s.Pkg, "Items")
	field, _, _ := types.LookupFieldOrMethod(lookup("T").Type(), false, s.Pkg, "f")

	tests := []struct {
		name   string
		target types.Object
		scope  inspector.Cursor
		want   []string
	}{
		{
			name:   "Variable",
			target: lookup("x"),
			scope:  block,
			want:   []string{"*ast.Ident", "*ast.Ident", "*ast.Ident", "*ast.Ident"},
		},
		{
			name:   "Restricted scope",
			target: lookup("x"),
			scope:  inner,
			want:   []string{"*ast.Ident"},
		},
		{
			name:   "Function with slice result",
			target: lookup("values"),
			scope:  block,
			want:   []string{"*ast.IndexExpr", "*ast.Ident", "*ast.Ident", "*ast.IndexExpr", "*ast.Ident"},
		},
		{
			name:   "Function with scalar result",
			target: lookup("count"),
			scope:  block,
			want:   []string{"*ast.Ident"},
		},
		{
			name:   "Method with slice result",
			target: method,
			scope:  block,
			want:   []string{"*ast.IndexExpr"},
		},
		{
			name:   "Field",
			target: field,
			scope:  block,
			want:   []string{"*ast.Ident"},
		},
		{
			name:   "Unresolved",
			target: nil,
			scope:  block,
			want:   nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			set := Find(s.Info, tt.target, tt.scope)

			var got []string
			for _, n := range set.Nodes() {
				got = append(got, fmt.Sprintf("%T", n))
			}

			if !slices.Equal(got, tt.want) {
				t.Errorf("Find() = %v, want %v", got, tt.want)
			}

			if !slices.IsSortedFunc(set, func(a, b inspector.Cursor) int { return int(a.Node().Pos() - b.Node().Pos()) }) {
				t.Errorf("Occurrences not in document order")
			}

			for _, c := range set {
				if !tt.scope.Contains(c) {
					t.Errorf("Occurrence %v outside scope", c.Node())
				}
			}
		})
	}
}

func TestIndexAccess(t *testing.T) {
	t.Parallel()

	s, body := testsource.Func(t, `
	var x struct{ f []int }
	var s []int
	_ = s[0]
	_ = x.f[1]
	_ = len(s)
`)

	tests := []struct {
		name string
		obj  string
		want []bool
	}{
		{"Name", "s", []bool{true, false}},
		{"Field", "f", []bool{true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var target types.Object
			for id, obj := range s.Info.Uses {
				if id.Name == tt.obj {
					target = obj
				}
			}

			set := Find(s.Info, target, body)

			var got []bool
			for _, c := range set {
				index, ok := IndexAccess(c)
				if ok {
					if _, isIndex := index.Node().(*ast.IndexExpr); !isIndex {
						t.Errorf("Got %T, want *ast.IndexExpr", index.Node())
					}
				}
				got = append(got, ok)
			}

			if !slices.Equal(got, tt.want) {
				t.Errorf("IndexAccess() = %v, want %v", got, tt.want)
			}
		})
	}
}

func firstBlock(tb testing.TB, block inspector.Cursor) inspector.Cursor {
	tb.Helper()

	for c := range block.Children() {
		if _, ok := c.Node().(*ast.BlockStmt); ok {
			return c
		}
	}

	tb.Fatal("Can't find nested block")

	return block
}
