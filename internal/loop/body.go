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

package loop

import (
	"go/ast"
	"go/token"
	"go/types"

	"golang.org/x/tools/go/ast/edge"
	"golang.org/x/tools/go/ast/inspector"
	"golang.org/x/tools/go/types/typeutil"

	"fillmore-labs.com/quickassist/internal/binding"
)

var (
	builtinCopy  = types.Universe.Lookup("copy").(*types.Builtin)
	builtinClear = types.Universe.Lookup("clear").(*types.Builtin)
)

// checkBody verifies in a single pass that the body does not modify the source or the index,
// and reads the index only as the index of the source.
func (a *Analysis) checkBody() Verdict {
	verdict := Convertible

	a.shape.Body.Inspect(nil, func(c inspector.Cursor) bool {
		switch n := c.Node().(type) {
		case *ast.AssignStmt:
			for _, lhs := range n.Lhs {
				if a.modifies(lhs) {
					verdict = BodyWrites
				}
			}

		case *ast.IncDecStmt:
			if a.modifies(n.X) {
				verdict = BodyWrites
			}

		case *ast.RangeStmt:
			if n.Tok == token.ASSIGN && (a.modifies(n.Key) || a.modifies(n.Value)) {
				verdict = BodyWrites
			}

		case *ast.UnaryExpr:
			if n.Op == token.AND && a.modifies(n.X) {
				verdict = BodyWrites // address taken
			}

		case *ast.SliceExpr:
			if isArray(a.info.TypeOf(n.X)) && a.modifies(n.X) {
				verdict = BodyWrites // array sliced
			}

		case *ast.SelectorExpr:
			if a.pointerMethod(n) && a.modifies(n.X) {
				verdict = BodyWrites // implicit address
			}

		case *ast.CallExpr:
			if a.clears(n) {
				verdict = BodyWrites
			}

		case *ast.Ident:
			if a.isIndex(n) && !a.indexesSource(c) {
				verdict = IndexMisused
			}
		}

		return verdict == Convertible
	})

	return verdict
}

// modifies reports whether writing to expr modifies the index, the source or an element of the source.
func (a *Analysis) modifies(expr ast.Expr) bool {
	if expr == nil {
		return false
	}

	expr = ast.Unparen(expr)

	if id, ok := expr.(*ast.Ident); ok && id.Name != "_" && a.isIndex(id) {
		return true
	}

	return a.prefixesSource(indirect(expr)) || a.throughElement(expr)
}

// indirect strips dereferences: writing "*p" writes the storage p points to.
func indirect(expr ast.Expr) ast.Expr {
	for {
		star, ok := expr.(*ast.StarExpr)
		if !ok {
			return expr
		}

		expr = ast.Unparen(star.X)
	}
}

// prefixesSource reports whether expr is the source or a variable or field containing it.
func (a *Analysis) prefixesSource(expr ast.Expr) bool {
	if a.source.IsCall {
		return false
	}

	for p := ast.Unparen(a.source.Expr); ; {
		if binding.SameAccess(a.info, expr, p) {
			return true
		}

		sel, ok := p.(*ast.SelectorExpr)
		if !ok {
			return false
		}

		p = ast.Unparen(sel.X)
	}
}

// throughElement reports whether expr accesses storage of a source element, directly or
// through a re-slice of the source.
func (a *Analysis) throughElement(expr ast.Expr) bool {
	for {
		switch e := expr.(type) {
		case *ast.IndexExpr:
			if a.denotesSource(e.X) {
				return true
			}

			expr = e.X

		case *ast.SelectorExpr:
			expr = e.X

		case *ast.StarExpr:
			expr = e.X

		case *ast.ParenExpr:
			expr = e.X

		case *ast.SliceExpr:
			if a.denotesSource(e.X) {
				return true // re-slice shares the source array
			}

			expr = e.X

		default:
			return false
		}
	}
}

// denotesSource reports whether expr may evaluate to the source.
// Calls of the source function are included here, which is conservative for writes.
func (a *Analysis) denotesSource(expr ast.Expr) bool {
	if a.source.IsCall {
		return binding.Equal(binding.Of(a.info, expr), a.source.Binding)
	}

	return binding.SameAccess(a.info, expr, a.source.Expr)
}

// indexesSource reports whether the index name at c is the index of a source access
// outside of function literals.
//
// Call sources are never the same source, since every call may return a different value.
func (a *Analysis) indexesSource(c inspector.Cursor) bool {
	if ek, _ := c.ParentEdge(); ek != edge.IndexExpr_Index || a.source.IsCall {
		return false
	}

	index, ok := c.Parent().Node().(*ast.IndexExpr)
	if !ok || !binding.SameAccess(a.info, index.X, a.source.Expr) {
		return false
	}

	for lit := range c.Enclosing((*ast.FuncLit)(nil)) {
		if a.shape.Body.Contains(lit) {
			return false
		}
	}

	return true
}

// pointerMethod reports whether sel selects a pointer receiver method on an addressable value.
func (a *Analysis) pointerMethod(sel *ast.SelectorExpr) bool {
	selection, ok := a.info.Selections[sel]
	if !ok || selection.Kind() != types.MethodVal {
		return false
	}

	fun, ok := selection.Obj().(*types.Func)
	if !ok {
		return false
	}

	recv := fun.Signature().Recv()
	if recv == nil {
		return false
	}

	if _, ptr := types.Unalias(recv.Type()).(*types.Pointer); !ptr {
		return false
	}

	t := a.info.TypeOf(sel.X)
	if t == nil {
		return false
	}

	_, xptr := t.Underlying().(*types.Pointer)

	return !xptr
}

// clears reports whether call is a "copy" into or a "clear" of the source or its elements.
func (a *Analysis) clears(call *ast.CallExpr) bool {
	if len(call.Args) == 0 {
		return false
	}

	switch typeutil.Callee(a.info, call) {
	case builtinCopy, builtinClear:
		return a.modifies(call.Args[0])

	default:
		return false
	}
}

func isArray(t types.Type) bool {
	if t == nil {
		return false
	}

	_, ok := t.Underlying().(*types.Array)

	return ok
}
