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

// Package selection decides whether selected statements can be wrapped into a closure
// that returns the errors they discard, and which errors and locals are involved.
package selection

import (
	"go/ast"
	"go/token"
	"go/types"

	"golang.org/x/tools/go/ast/edge"
	"golang.org/x/tools/go/ast/inspector"
)

// Range is a selected source range.
type Range struct {
	Pos, End token.Pos
}

// Result describes an accepted selection.
type Result struct {
	// Func is positioned at the enclosing *[ast.FuncDecl] or *[ast.FuncLit].
	Func inspector.Cursor

	// Statements are the selected statements of one statement list.
	Statements []ast.Stmt

	// Errors are the distinct types of discarded errors, in order of appearance.
	Errors []types.Type

	// Sites are the calls discarding errors.
	Sites []*ast.CallExpr

	// CapturedLocals are variables declared in the selection and used after it.
	CapturedLocals []*types.Var

	// Unchecked are calls that panic or never return. They raise no error to handle.
	Unchecked []*ast.CallExpr
}

// Analyze validates the selection sel in the file at file. Rejections are [*Error]s.
func Analyze(info *types.Info, file inspector.Cursor, sel Range) (Result, error) {
	if !sel.Pos.IsValid() || sel.End <= sel.Pos {
		return Result{}, newError(DoesNotCover, sel.Pos, sel.End)
	}

	covered, intersecting := classify(file, sel)
	if len(covered) == 0 {
		return Result{}, newError(DoesNotCover, sel.Pos, sel.End)
	}

	a := &analysis{info: info, covered: covered}
	a.pos, a.end = covered[0].Node().Pos(), covered[len(covered)-1].Node().End()

	fn, ok := a.enclosingFunc(covered[0].Parent())
	if !ok {
		return Result{}, newError(NoEnclosingFunction, sel.Pos, sel.End)
	}

	a.fn = fn

	stmts, err := a.statements(intersecting)
	if err != nil {
		return Result{}, err
	}

	if err := a.checkFrame(); err != nil {
		return Result{}, err
	}

	errs, sites := a.discardedErrors()
	if len(errs) == 0 {
		return Result{}, newError(NoUncaughtErrors, a.pos, a.end)
	}

	return Result{
		Func:           fn,
		Statements:     stmts,
		Errors:         errs,
		Sites:          sites,
		CapturedLocals: a.capturedLocals(),
		Unchecked:      a.uncheckedCalls(),
	}, nil
}

// classify traverses the file once, collecting the outermost covered nodes and all
// nodes intersecting the selection boundaries.
func classify(file inspector.Cursor, sel Range) (covered, intersecting []inspector.Cursor) {
	file.Inspect(nil, func(c inspector.Cursor) bool {
		switch c.Node().(type) {
		case *ast.CommentGroup, *ast.Comment:
			return false
		}

		switch ModeOf(c.Node(), sel) {
		case Covered:
			covered = append(covered, c)

			return false

		case Intersecting:
			intersecting = append(intersecting, c)

			return true

		default:
			return false
		}
	})

	return covered, intersecting
}

// analysis holds the state of one selection analysis.
type analysis struct {
	info    *types.Info
	fn      inspector.Cursor
	covered []inspector.Cursor

	// pos and end span the covered nodes.
	pos, end token.Pos
}

// enclosingFunc returns the innermost function whose body contains the covered nodes.
func (a *analysis) enclosingFunc(c inspector.Cursor) (inspector.Cursor, bool) {
	for fn := range c.Enclosing((*ast.FuncDecl)(nil), (*ast.FuncLit)(nil)) {
		var body *ast.BlockStmt

		switch n := fn.Node().(type) {
		case *ast.FuncDecl:
			body = n.Body

		case *ast.FuncLit:
			body = n.Body
		}

		if body == nil || a.pos <= body.Lbrace || body.Rbrace < a.end {
			return fn, false
		}

		return fn, true
	}

	return c, false
}

// statements verifies the covered nodes are whole statements of one statement list.
func (a *analysis) statements(intersecting []inspector.Cursor) ([]ast.Stmt, error) {
	parent := a.covered[0].Parent()

	stmts := make([]ast.Stmt, 0, len(a.covered))

	for _, c := range a.covered {
		stmt, ok := c.Node().(ast.Stmt)
		if !ok || c.Parent() != parent {
			return nil, newError(NonStatementSelection, c.Node().Pos(), c.Node().End())
		}

		switch stmt.(type) {
		case *ast.CaseClause, *ast.CommClause:
			return nil, newError(NonStatementSelection, stmt.Pos(), stmt.End()) // clauses are not statements
		}

		switch ek, _ := c.ParentEdge(); ek {
		case edge.BlockStmt_List, edge.CaseClause_Body, edge.CommClause_Body:

		default:
			return nil, newError(NonStatementSelection, c.Node().Pos(), c.Node().End())
		}

		stmts = append(stmts, stmt)
	}

	for _, c := range intersecting {
		if n := c.Node(); a.pos < n.Pos() || n.End() < a.end {
			return nil, newError(NonStatementSelection, n.Pos(), n.End())
		}
	}

	return stmts, nil
}

// selected reports whether pos is inside the covered statements.
func (a *analysis) selected(pos token.Pos) bool {
	return a.pos <= pos && pos < a.end
}

// inspect visits the covered statements, without descending into function literals.
func (a *analysis) inspect(filter []ast.Node, f func(c inspector.Cursor)) {
	filter = append([]ast.Node{(*ast.FuncLit)(nil)}, filter...)

	for _, stmt := range a.covered {
		stmt.Inspect(filter, func(c inspector.Cursor) bool {
			if _, ok := c.Node().(*ast.FuncLit); ok {
				return false
			}

			f(c)

			return true
		})
	}
}

// capturedLocals returns the variables declared in the selection and used after it.
func (a *analysis) capturedLocals() []*types.Var {
	var declared []*types.Var

	a.inspect([]ast.Node{(*ast.Ident)(nil)}, func(c inspector.Cursor) {
		if v, ok := a.info.Defs[c.Node().(*ast.Ident)].(*types.Var); ok {
			declared = append(declared, v)
		}
	})

	if len(declared) == 0 {
		return nil
	}

	used := make(map[*types.Var]bool, len(declared))

	for c := range a.fn.Preorder((*ast.Ident)(nil)) {
		id := c.Node().(*ast.Ident)
		if id.Pos() < a.end {
			continue
		}

		if v, ok := a.info.Uses[id].(*types.Var); ok {
			used[v] = true
		}
	}

	var captured []*types.Var

	for _, v := range declared {
		if used[v] {
			captured = append(captured, v)
		}
	}

	return captured
}
