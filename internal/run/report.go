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

package run

import (
	"context"
	"fmt"
	"go/token"
	"go/types"
	"os"
	"runtime/trace"

	"golang.org/x/tools/go/analysis"

	"fillmore-labs.com/quickassist/internal/astutil"
	"fillmore-labs.com/quickassist/internal/config"
	"fillmore-labs.com/quickassist/internal/loop"
	"fillmore-labs.com/quickassist/internal/plan"
)

// reporter emits diagnostics for the loops of one file.
type reporter struct {
	pass     *analysis.Pass
	file     astutil.CurrentFile
	behavior config.Behavior
	name     string

	// src is the file content, read on first use.
	src []byte

	// fixed is the end of the last loop with a suggested fix. Nested loops get no fix.
	fixed token.Pos
}

// report checks one loop and reports the result.
func (r *reporter) report(ctx context.Context, a *loop.Analysis) {
	verdict := a.Check()

	source := a.Source()
	if source == nil {
		return // not a counting loop over a collection
	}

	stmt := a.Shape().Stmt()

	diagnostic := analysis.Diagnostic{
		Pos:      stmt.For,
		End:      stmt.Body.Lbrace,
		Category: verdict.String(),
	}

	if !verdict.Convertible() {
		if !r.behavior.Enabled(config.ReportRejected) {
			return
		}

		diagnostic.Message = fmt.Sprintf("Loop over %s can't be converted to range (fr:%s)", types.ExprString(source.Expr), verdict)
		r.pass.Report(diagnostic)

		return
	}

	diagnostic.Message = fmt.Sprintf("Loop over %s can be converted to range (fr:%s)", types.ExprString(source.Expr), verdict)

	if r.behavior.Enabled(config.SuggestFixes) && stmt.Pos() >= r.fixed {
		p, ok := r.plan(ctx, a)
		if !ok {
			return
		}

		diagnostic.SuggestedFixes = []analysis.SuggestedFix{p.SuggestedFix()}

		if p.Deleted.IsValid() {
			diagnostic.Related = []analysis.RelatedInformation{{
				Pos:     p.Deleted.Pos,
				End:     p.Deleted.End,
				Message: "Declaration replaced by the range variable",
			}}
		}

		r.fixed = stmt.End()
	}

	r.pass.Report(diagnostic)
}

// plan builds the edit plan, reporting an internal error on failure.
func (r *reporter) plan(ctx context.Context, a *loop.Analysis) (plan.EditPlan, bool) {
	defer trace.StartRegion(ctx, "PlanFix").End()

	stmt := a.Shape().Stmt()

	if r.src == nil {
		readFile := r.pass.ReadFile
		if readFile == nil {
			readFile = os.ReadFile
		}

		src, err := readFile(r.file.Name())
		if err != nil {
			astutil.InternalError(r.pass, stmt, "Can't read %s: %v", r.file.Name(), err)

			return plan.EditPlan{}, false
		}

		r.src = src
	}

	planner := plan.Planner{
		Fset: r.pass.Fset,
		Info: r.pass.TypesInfo,
		Pkg:  r.pass.Pkg,
		Src:  r.src,
	}

	p, err := planner.Plan(a.Shape(), a.Source(), r.name)
	if err != nil {
		astutil.InternalError(r.pass, stmt, "Can't plan conversion: %v", err)

		return plan.EditPlan{}, false
	}

	return p, true
}
