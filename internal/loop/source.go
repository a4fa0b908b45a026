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
	"go/types"

	"golang.org/x/tools/go/types/typeutil"

	"fillmore-labs.com/quickassist/internal/binding"
)

// maxFieldDepth is the number of nested field selections accepted in a source ("x.f.g").
const maxFieldDepth = 2

var builtinLen = types.Universe.Lookup("len").(*types.Builtin)

// inferSource derives the source from the loop bound "len(source)", or else from the
// initializer of a bound variable declared in the init statement.
func (a *Analysis) inferSource() *Source {
	if arg, ok := a.lenArg(a.shape.Bound); ok {
		return a.sourceOf(arg)
	}

	return a.inferFromInit()
}

// inferFromInit collects the indexable sources of all init expressions. Exactly one distinct
// source must be found, and the bound must be an init variable initialized to its length.
func (a *Analysis) inferFromInit() *Source {
	init := a.shape.Init
	if init == nil || len(init.Lhs) != len(init.Rhs) {
		return nil
	}

	bound, ok := ast.Unparen(a.shape.Bound).(*ast.Ident)
	if !ok {
		return nil
	}

	var candidates []*Source
	for _, expr := range init.Rhs {
		candidates = a.collect(candidates, expr)
	}

	if len(candidates) != 1 {
		return nil // none or ambiguous
	}

	for i, lhs := range init.Lhs {
		id, ok := lhs.(*ast.Ident)
		if !ok || !binding.Equal(a.info.Defs[id], a.info.Uses[bound]) {
			continue
		}

		arg, ok := a.lenArg(init.Rhs[i])
		if !ok {
			return nil
		}

		source := a.sourceOf(arg)
		if source == nil || !a.sameCandidate(source, candidates[0]) {
			return nil
		}

		return source
	}

	return nil
}

// collect folds the indexable sources found in expr into candidates.
//
// It descends into length calls and operators.
func (a *Analysis) collect(candidates []*Source, expr ast.Expr) []*Source {
	switch e := expr.(type) {
	case *ast.ParenExpr:
		return a.collect(candidates, e.X)

	case *ast.BinaryExpr:
		candidates = a.collect(candidates, e.X)

		return a.collect(candidates, e.Y)

	case *ast.UnaryExpr:
		return a.collect(candidates, e.X)

	case *ast.CallExpr:
		if arg, ok := a.lenArg(e); ok {
			return a.collect(candidates, arg)
		}
	}

	source := a.sourceOf(expr)
	if source == nil || source.Type == nil {
		return candidates
	}

	if _, ok := binding.Indexable(source.Type); !ok {
		return candidates
	}

	for _, c := range candidates {
		if a.sameCandidate(c, source) {
			return candidates
		}
	}

	return append(candidates, source)
}

// sameCandidate reports whether two sources are the same: calls of the same function or
// the same storage.
func (a *Analysis) sameCandidate(x, y *Source) bool {
	if x.IsCall || y.IsCall {
		return x.IsCall == y.IsCall && binding.Equal(x.Binding, y.Binding)
	}

	return binding.SameAccess(a.info, x.Expr, y.Expr)
}

// lenArg returns x when expr is the builtin call "len(x)".
func (a *Analysis) lenArg(expr ast.Expr) (ast.Expr, bool) {
	call, ok := ast.Unparen(expr).(*ast.CallExpr)
	if !ok || len(call.Args) != 1 || call.Ellipsis.IsValid() {
		return nil, false
	}

	if typeutil.Callee(a.info, call) != builtinLen {
		return nil, false
	}

	return call.Args[0], true
}

// sourceOf returns the source denoted by expr: a name, a qualified identifier, a field
// selection at most [maxFieldDepth] deep or a call with an indexable result.
func (a *Analysis) sourceOf(expr ast.Expr) *Source {
	var (
		obj    types.Object
		isCall bool
	)

	switch e := ast.Unparen(expr).(type) {
	case *ast.Ident:
		switch u := a.info.Uses[e].(type) {
		case nil: // unresolved

		case *types.Var:
			obj = u

		default:
			return nil
		}

	case *ast.SelectorExpr:
		var ok bool
		if obj, isCall, ok = a.selection(e, maxFieldDepth); !ok {
			return nil
		}

	case *ast.CallExpr:
		callee := typeutil.Callee(a.info, e)
		if !binding.ReturnsIndexable(callee) {
			return nil
		}

		obj, isCall = callee, true

	default:
		return nil
	}

	if obj == nil {
		// keep unresolved sources, they fail the binding check
		return &Source{Expr: expr, Type: a.info.TypeOf(expr), IsCall: isCall}
	}

	return &Source{Expr: expr, Binding: obj, Type: a.info.TypeOf(expr), IsCall: isCall}
}

// selection resolves a qualified identifier or a field selection whose operand is a name,
// a call or another field selection, up to depth levels.
func (a *Analysis) selection(e *ast.SelectorExpr, depth int) (obj types.Object, isCall, ok bool) {
	sel, field := a.info.Selections[e]
	if !field {
		// qualified identifier
		v, ok := a.info.Uses[e.Sel].(*types.Var)

		return v, false, ok
	}

	if sel.Kind() != types.FieldVal || depth == 0 {
		return nil, false, false
	}

	switch x := ast.Unparen(e.X).(type) {
	case *ast.Ident:
		return sel.Obj(), false, true

	case *ast.CallExpr:
		if typeutil.Callee(a.info, x) == nil {
			return nil, false, false // conversion or dynamic call
		}

		return sel.Obj(), true, true

	case *ast.SelectorExpr:
		if _, isCall, ok := a.selection(x, depth-1); ok {
			return sel.Obj(), isCall, true
		}
	}

	return nil, false, false
}
