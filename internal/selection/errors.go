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

package selection

import (
	"go/ast"
	"go/types"

	"golang.org/x/tools/go/ast/inspector"
)

var errorType = types.Universe.Lookup("error").Type().Underlying().(*types.Interface)

// discardedErrors collects the calls in the selection whose error results are dropped,
// either by a call statement or by assignment to the blank identifier.
// Errors of "go" statements are lost in another goroutine and cannot be returned.
func (a *analysis) discardedErrors() (errs []types.Type, sites []*ast.CallExpr) {
	add := func(call *ast.CallExpr, discarded func(i int) bool) {
		results := a.results(call)
		if results == nil || neverFails(a.info, call) {
			return
		}

		found := false

		for i := range results.Len() {
			t := results.At(i).Type()
			if !discarded(i) || !types.Implements(t, errorType) {
				continue
			}

			found = true

			if !containsType(errs, t) {
				errs = append(errs, t)
			}
		}

		if found {
			sites = append(sites, call)
		}
	}

	all := func(int) bool { return true }

	filter := []ast.Node{
		(*ast.ExprStmt)(nil),
		(*ast.AssignStmt)(nil),
		(*ast.ValueSpec)(nil),
	}

	a.inspect(filter, func(c inspector.Cursor) {
		switch n := c.Node().(type) {
		case *ast.ExprStmt:
			if call, ok := ast.Unparen(n.X).(*ast.CallExpr); ok {
				add(call, all)
			}

		case *ast.AssignStmt:
			blankAssigned(n.Lhs, n.Rhs, add)

		case *ast.ValueSpec:
			lhs := make([]ast.Expr, 0, len(n.Names))
			for _, id := range n.Names {
				lhs = append(lhs, id)
			}

			blankAssigned(lhs, n.Values, add)
		}
	})

	return errs, sites
}

// blankAssigned reports calls on the right hand side with results assigned to "_".
func blankAssigned(lhs, rhs []ast.Expr, add func(*ast.CallExpr, func(int) bool)) {
	if len(rhs) == 1 && len(lhs) > 1 {
		if call, ok := ast.Unparen(rhs[0]).(*ast.CallExpr); ok {
			add(call, func(i int) bool { return i < len(lhs) && isBlank(lhs[i]) })
		}

		return
	}

	for i, expr := range rhs {
		if i >= len(lhs) || !isBlank(lhs[i]) {
			continue
		}

		if call, ok := ast.Unparen(expr).(*ast.CallExpr); ok {
			add(call, func(int) bool { return true })
		}
	}
}

// results returns the result types of a function call, nil for conversions.
func (a *analysis) results(call *ast.CallExpr) *types.Tuple {
	tv, ok := a.info.Types[call.Fun]
	if !ok || tv.IsType() || tv.Type == nil {
		return nil
	}

	sig, ok := tv.Type.Underlying().(*types.Signature)
	if !ok {
		return nil
	}

	return sig.Results()
}

func isBlank(expr ast.Expr) bool {
	id, ok := expr.(*ast.Ident)

	return ok && id.Name == "_"
}

func containsType(list []types.Type, t types.Type) bool {
	for _, u := range list {
		if types.Identical(u, t) {
			return true
		}
	}

	return false
}
