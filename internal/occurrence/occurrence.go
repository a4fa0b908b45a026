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

// Package occurrence finds the references to a declaration inside a syntax subtree.
package occurrence

import (
	"go/ast"
	"go/types"

	"golang.org/x/tools/go/ast/edge"
	"golang.org/x/tools/go/ast/inspector"
	"golang.org/x/tools/go/types/typeutil"

	"fillmore-labs.com/quickassist/internal/binding"
)

// Set is a sequence of occurrences in document order.
type Set []inspector.Cursor

// Len returns the number of occurrences.
func (s Set) Len() int { return len(s) }

// Nodes returns the occurring nodes.
func (s Set) Nodes() []ast.Node {
	nodes := make([]ast.Node, 0, len(s))
	for _, c := range s {
		nodes = append(nodes, c.Node())
	}

	return nodes
}

// Find returns all references to target inside scope.
//
// Declaring identifiers are not references. When target is a function with a single array
// or slice result, a call of target that is the operand of an index expression is reported
// once, as the index expression.
func Find(info *types.Info, target types.Object, scope inspector.Cursor) Set {
	if target == nil {
		return nil
	}

	var (
		set   Set
		fold  = binding.ReturnsIndexable(target)
		types = []ast.Node{(*ast.Ident)(nil), (*ast.CallExpr)(nil)}
	)

	scope.Inspect(types, func(c inspector.Cursor) bool {
		switch n := c.Node().(type) {
		case *ast.CallExpr:
			if !fold {
				return true
			}

			if ek, _ := c.ParentEdge(); ek != edge.IndexExpr_X {
				return true
			}

			index := c.Parent()
			if !scope.Contains(index) || !binding.Equal(typeutil.Callee(info, n), target) {
				return true
			}

			set = append(set, index)

			return false

		case *ast.Ident:
			if _, ok := info.Defs[n]; ok {
				return false
			}

			if binding.Equal(info.Uses[n], target) {
				set = append(set, c)
			}
		}

		return false
	})

	return set
}

// IndexAccess returns the index expression an occurrence is the operand of.
//
// A folded call occurrence is its own index expression, a name is the operand of its parent
// and a selected field or method name the operand of its grandparent.
func IndexAccess(c inspector.Cursor) (inspector.Cursor, bool) {
	if _, ok := c.Node().(*ast.IndexExpr); ok {
		return c, true
	}

	ek, _ := c.ParentEdge()
	if ek == edge.SelectorExpr_Sel {
		c = c.Parent()
		ek, _ = c.ParentEdge()
	}

	if ek != edge.IndexExpr_X {
		return c, false
	}

	return c.Parent(), true
}
