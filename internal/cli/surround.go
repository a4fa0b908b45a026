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

package cli

import (
	"go/ast"
	"go/types"
	"log/slog"

	"github.com/spf13/cobra"
	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/quickassist/internal/selection"
)

// SurroundResult is the output of the surround command.
type SurroundResult struct {
	File     string `json:"file"`
	Function string `json:"function"`

	// Statements is the number of selected statements.
	Statements int `json:"statements"`

	// Errors are the discarded error types.
	Errors []string `json:"errors"`

	// Sites are the positions of calls discarding errors.
	Sites []string `json:"sites"`

	// Captured are variables declared in the selection and used after it.
	Captured []string `json:"captured,omitempty"`

	// Unchecked are the positions of calls that panic or never return.
	Unchecked []string `json:"unchecked,omitempty"`
}

func (a *app) surroundCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "surround FILE:LINE:COL-LINE:COL",
		Short: "Check whether a selection can be wrapped in error handling",
		Long: `Check whether the selected statements can be wrapped in error handling.

The selection must cover whole statements of one block inside a function, must not
contain statements bound to the function frame and must discard at least one error.
A selection FILE:LINE-LINE covers whole lines. Columns are 1-based byte offsets, the
end column is exclusive.`,
		Example: "  quickassist surround main.go:10:2-12:20\n  quickassist surround main.go:10-12",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			loc, err := ParseRange(args[0])
			if err != nil {
				return err
			}

			return a.surround(cmd, loc)
		},
	}
}

func (a *app) surround(cmd *cobra.Command, loc Location) error {
	ctx := cmd.Context()

	doc, err := load(ctx, a.logger, loc.File, a.config.Tests)
	if err != nil {
		return err
	}

	file := doc.TokenFile()

	pos, end, err := loc.Resolve(file)
	if err != nil {
		return err
	}

	info := doc.Pkg.TypesInfo

	res, err := selection.Analyze(info, doc.Root, selection.Range{Pos: pos, End: end})
	if err != nil {
		return err
	}

	a.logger.LogAttrs(ctx, slog.LevelDebug, "Analyzed selection",
		slog.Int("statements", len(res.Statements)), slog.Int("errors", len(res.Errors)))

	qualifier := types.RelativeTo(doc.Pkg.Types)

	result := SurroundResult{
		File:       file.Name(),
		Function:   functionName(doc, res.Func),
		Statements: len(res.Statements),
		Errors:     make([]string, 0, len(res.Errors)),
		Sites:      make([]string, 0, len(res.Sites)),
	}

	for _, t := range res.Errors {
		result.Errors = append(result.Errors, types.TypeString(t, qualifier))
	}

	for _, call := range res.Sites {
		result.Sites = append(result.Sites, doc.Pkg.Fset.Position(call.Pos()).String())
	}

	for _, v := range res.CapturedLocals {
		result.Captured = append(result.Captured, v.Name())
	}

	for _, call := range res.Unchecked {
		result.Unchecked = append(result.Unchecked, doc.Pkg.Fset.Position(call.Pos()).String())
	}

	return encode(cmd.OutOrStdout(), a.config.Format, result)
}

// functionName names the function enclosing a selection.
func functionName(doc Document, fn inspector.Cursor) string {
	switch n := fn.Node().(type) {
	case *ast.FuncDecl:
		if f, ok := doc.Pkg.TypesInfo.Defs[n.Name].(*types.Func); ok {
			return selection.FuncNameOf(f).String()
		}

		return n.Name.Name

	case *ast.FuncLit:
		return "func literal at " + doc.Pkg.Fset.Position(n.Pos()).String()

	default:
		return ""
	}
}
