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

// Package binding compares resolved declarations and answers scope queries
// used for name collision checks.
package binding

import (
	"go/ast"
	"go/types"

	"golang.org/x/tools/go/types/typeutil"
)

// Equal reports whether a and b denote the same declaration.
//
// Unresolved objects are unknown, not equal: Equal(nil, nil) is false.
// Objects of instantiated generic functions, methods and fields compare equal to their origin.
func Equal(a, b types.Object) bool {
	if a == nil || b == nil {
		return false
	}

	return origin(a) == origin(b)
}

func origin(obj types.Object) types.Object {
	switch obj := obj.(type) {
	case *types.Var:
		return obj.Origin()

	case *types.Func:
		return obj.Origin()

	default:
		return obj
	}
}

// Of returns the declaration an expression refers to.
//
// Names, qualified identifiers and selections resolve to the selected object, calls
// resolve to their callee. Parentheses are transparent. Everything else is nil.
func Of(info *types.Info, expr ast.Expr) types.Object {
	switch e := ast.Unparen(expr).(type) {
	case *ast.Ident:
		return info.ObjectOf(e)

	case *ast.SelectorExpr:
		return info.ObjectOf(e.Sel)

	case *ast.CallExpr:
		return typeutil.Callee(info, e)

	default:
		return nil
	}
}

// SameAccess reports whether a and b denote the same storage location:
// names with equal bindings or field selection chains whose components all have equal bindings.
//
// Calls are never the same access, since they may return different values on each invocation.
func SameAccess(info *types.Info, a, b ast.Expr) bool {
	a, b = ast.Unparen(a), ast.Unparen(b)

	switch a := a.(type) {
	case *ast.Ident:
		b, ok := b.(*ast.Ident)

		return ok && Equal(info.ObjectOf(a), info.ObjectOf(b))

	case *ast.SelectorExpr:
		b, ok := b.(*ast.SelectorExpr)
		if !ok || !Equal(info.ObjectOf(a.Sel), info.ObjectOf(b.Sel)) {
			return false
		}

		sa, fielda := info.Selections[a]
		sb, fieldb := info.Selections[b]

		switch {
		case !fielda && !fieldb: // qualified identifiers
			return true

		case fielda && fieldb && sa.Kind() == types.FieldVal && sb.Kind() == types.FieldVal:
			return SameAccess(info, a.X, b.X)

		default:
			return false
		}

	default:
		return false
	}
}

// Indexable returns the element type of an array, slice or pointer to array.
// Maps, strings, channels and type parameters are not indexable in this sense.
func Indexable(t types.Type) (elem types.Type, ok bool) {
	if t == nil {
		return nil, false
	}

	if _, ok := types.Unalias(t).(*types.TypeParam); ok {
		return nil, false
	}

	switch u := t.Underlying().(type) {
	case *types.Slice:
		return u.Elem(), true

	case *types.Array:
		return u.Elem(), true

	case *types.Pointer:
		if a, ok := u.Elem().Underlying().(*types.Array); ok {
			return a.Elem(), true
		}
	}

	return nil, false
}

// ReturnsIndexable reports whether obj is a function or method with a single indexable result.
func ReturnsIndexable(obj types.Object) bool {
	fun, ok := obj.(*types.Func)
	if !ok {
		return false
	}

	results := fun.Signature().Results()
	if results.Len() != 1 {
		return false
	}

	_, ok = Indexable(results.At(0).Type())

	return ok
}
