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

// Package loop decides whether a counting for loop can be converted into a range loop.
package loop

import (
	"go/ast"
	"go/token"
	"go/types"
	"go/version"

	"golang.org/x/tools/go/ast/edge"
	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/quickassist/internal/binding"
)

// MinVersion is the first language version with per-iteration loop variables.
const MinVersion = "go1.22"

// Analysis checks one counting loop.
//
// Results are computed once and cached. An Analysis must not be used after the syntax tree
// it was created for has been modified.
type Analysis struct {
	info      *types.Info
	goVersion string

	shape   Shape
	source  *Source
	checked bool
	verdict Verdict
}

// New creates an [Analysis] of the for statement at loop.
// goVersion is the language version of the containing file, empty when unknown.
func New(info *types.Info, goVersion string, loop inspector.Cursor) *Analysis {
	return &Analysis{
		info:      info,
		goVersion: goVersion,
		shape:     Shape{Loop: loop},
	}
}

// Check evaluates the preconditions in order and returns the first failure or [Convertible].
func (a *Analysis) Check() Verdict {
	if !a.checked {
		a.verdict = a.check()
		a.checked = true
	}

	return a.verdict
}

// Convertible reports whether the loop can be converted.
func (a *Analysis) Convertible() bool {
	return a.Check().Convertible()
}

// Shape returns the analyzed loop. Fields are set up to the first failed precondition.
func (a *Analysis) Shape() Shape {
	a.Check()

	return a.shape
}

// Source returns the inferred source, nil when none could be inferred.
func (a *Analysis) Source() *Source {
	a.Check()

	return a.source
}

func (a *Analysis) check() Verdict {
	// Language gate
	if !VersionSupported(a.goVersion) {
		return UnsupportedVersion
	}

	// Condition "index < bound"
	if !a.condition() {
		return NoCondition
	}

	// Source inference
	a.source = a.inferSource()
	if a.source == nil {
		return NoSource
	}

	// Resolved bindings
	if a.source.Binding == nil || a.source.Type == nil || a.shape.IndexVar == nil {
		return Unresolved
	}

	// Source shape
	if !a.arrayShaped() {
		return NotArray
	}

	// Body safety
	if v := a.checkBody(); v != Convertible {
		return v
	}

	// Post statement
	if !a.increment() {
		return BadUpdate
	}

	// Init statement
	return a.checkInit()
}

// VersionSupported reports whether goVersion has per-iteration loop variables.
// An empty version is unknown and assumed to be recent.
func VersionSupported(goVersion string) bool {
	return goVersion == "" || version.Compare(goVersion, MinVersion) >= 0
}

// condition checks the loop condition and records index and bound.
func (a *Analysis) condition() bool {
	stmt, ok := a.shape.Loop.Node().(*ast.ForStmt)
	if !ok || stmt.Cond == nil {
		return false
	}

	cond, ok := ast.Unparen(stmt.Cond).(*ast.BinaryExpr)
	if !ok || cond.Op != token.LSS {
		return false
	}

	index, ok := ast.Unparen(cond.X).(*ast.Ident)
	if !ok {
		return false
	}

	a.shape.Index = index
	a.shape.IndexVar = a.info.Uses[index]
	a.shape.Bound = cond.Y
	a.shape.Body = a.shape.Loop.ChildAt(edge.ForStmt_Body, -1)
	a.shape.Init, _ = stmt.Init.(*ast.AssignStmt)

	return true
}

// arrayShaped checks the source type and records element type and dimensions.
func (a *Analysis) arrayShaped() bool {
	t := a.source.Type

	elem, ok := binding.Indexable(t)
	if !ok {
		return false
	}

	a.source.Elem = elem
	a.source.Dims = dims(t)

	return true
}

// increment checks for "index++".
func (a *Analysis) increment() bool {
	post, ok := a.shape.Stmt().Post.(*ast.IncDecStmt)
	if !ok || post.Tok != token.INC {
		return false
	}

	id, ok := ast.Unparen(post.X).(*ast.Ident)

	return ok && a.isIndex(id)
}

func (a *Analysis) isIndex(id *ast.Ident) bool {
	return binding.Equal(a.info.ObjectOf(id), a.shape.IndexVar)
}
