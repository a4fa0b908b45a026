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
	"go/token"
	"go/types"

	"golang.org/x/tools/go/ast/inspector"
	"golang.org/x/tools/go/types/typeutil"
)

var builtinRecover = types.Universe.Lookup("recover").(*types.Builtin)

// checkFrame rejects statements that act on the enclosing function frame and would change
// meaning inside a closure: defer, return, recover, fallthrough and jumps leaving the selection.
func (a *analysis) checkFrame() error {
	var (
		err    *Error
		labels = make(map[*types.Label]struct{})
	)

	filter := []ast.Node{
		(*ast.DeferStmt)(nil),
		(*ast.ReturnStmt)(nil),
		(*ast.CallExpr)(nil),
		(*ast.BranchStmt)(nil),
		(*ast.LabeledStmt)(nil),
	}

	a.inspect(filter, func(c inspector.Cursor) {
		if err != nil {
			return
		}

		switch n := c.Node().(type) {
		case *ast.DeferStmt, *ast.ReturnStmt:
			err = newError(CannotWrapFrameStatement, n.Pos(), n.End())

		case *ast.CallExpr:
			if typeutil.Callee(a.info, n) == builtinRecover {
				err = newError(CannotWrapFrameStatement, n.Pos(), n.End())
			}

		case *ast.BranchStmt:
			if a.escapes(c, n) {
				err = newError(CannotWrapFrameStatement, n.Pos(), n.End())
			}

		case *ast.LabeledStmt:
			if l, ok := a.info.Defs[n.Label].(*types.Label); ok {
				labels[l] = struct{}{}
			}
		}
	})

	if err != nil {
		return err
	}

	return a.jumpsInto(labels)
}

// escapes reports whether a branch statement transfers control out of the selection.
func (a *analysis) escapes(c inspector.Cursor, n *ast.BranchStmt) bool {
	if n.Tok == token.FALLTHROUGH {
		return true
	}

	if n.Label != nil {
		l, ok := a.info.Uses[n.Label].(*types.Label)

		return !ok || !a.selected(l.Pos())
	}

	var targets []ast.Node

	switch n.Tok {
	case token.BREAK:
		targets = []ast.Node{
			(*ast.ForStmt)(nil), (*ast.RangeStmt)(nil),
			(*ast.SwitchStmt)(nil), (*ast.TypeSwitchStmt)(nil), (*ast.SelectStmt)(nil),
		}

	case token.CONTINUE:
		targets = []ast.Node{(*ast.ForStmt)(nil), (*ast.RangeStmt)(nil)}

	default:
		return true
	}

	for target := range c.Enclosing(targets...) {
		return !a.selected(target.Node().Pos())
	}

	return true
}

// jumpsInto rejects branch statements outside of the selection targeting labels inside it.
func (a *analysis) jumpsInto(labels map[*types.Label]struct{}) error {
	if len(labels) == 0 {
		return nil
	}

	for c := range a.fn.Preorder((*ast.BranchStmt)(nil)) {
		n := c.Node().(*ast.BranchStmt)
		if n.Label == nil || a.selected(n.Pos()) {
			continue
		}

		if l, ok := a.info.Uses[n.Label].(*types.Label); ok {
			if _, ok := labels[l]; ok {
				return newError(CannotWrapFrameStatement, n.Pos(), n.End())
			}
		}
	}

	return nil
}
