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

	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/quickassist/internal/binding"
)

// Shape is a counting loop "for index := 0; index < bound; index++ { body }".
type Shape struct {
	// Loop is positioned at the *[ast.ForStmt].
	Loop inspector.Cursor

	// Init is the init statement, nil when absent or not an assignment.
	Init *ast.AssignStmt

	// Index is the index name in the loop condition.
	Index *ast.Ident

	// IndexVar is the declaration of the index.
	IndexVar types.Object

	// Bound is the right operand of the loop condition.
	Bound ast.Expr

	// Body is positioned at the loop body.
	Body inspector.Cursor
}

// Stmt returns the for statement, nil for a zero Shape.
func (s Shape) Stmt() *ast.ForStmt {
	if s.Loop.Inspector() == nil {
		return nil
	}

	stmt, _ := s.Loop.Node().(*ast.ForStmt)

	return stmt
}

// Source is the indexable collection a counting loop iterates over.
type Source struct {
	// Expr is the source expression as written in the loop.
	Expr ast.Expr

	// Binding is the declaration of the name or field, or the callee.
	Binding types.Object

	// Type is the static type of Expr.
	Type types.Type

	// Elem is the element type.
	Elem types.Type

	// Dims is the number of array or slice dimensions of Type.
	Dims int

	// IsCall reports whether evaluating Expr involves a call.
	// Call sources are evaluated once by the range clause.
	IsCall bool
}

// IsArrayValue reports whether the source is an array value, which is ranged over by address.
func (s *Source) IsArrayValue() bool {
	if s.IsCall {
		return false
	}

	_, ok := s.Type.Underlying().(*types.Array)

	return ok
}

// dims counts the array and slice dimensions of t.
func dims(t types.Type) int {
	n := 0

	for {
		elem, ok := binding.Indexable(t)
		if !ok {
			return n
		}

		n++
		t = elem
	}
}
