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
	"errors"
	"fmt"
	"go/ast"
	"go/token"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"fillmore-labs.com/quickassist/internal/loop"
	"fillmore-labs.com/quickassist/internal/lspedit"
	"fillmore-labs.com/quickassist/internal/plan"
)

var (
	// ErrNoLoop is returned when no for statement starts on the given line.
	ErrNoLoop = errors.New("no for statement on line")

	// ErrNotConvertible is returned for loops that can't be converted.
	ErrNotConvertible = errors.New("loop can't be converted")
)

// ConvertResult is the output of the convert command.
type ConvertResult struct {
	File    string `json:"file"`
	Line    int    `json:"line"`
	Verdict string `json:"verdict"`
	Label   string `json:"label"`

	// Text replaces the loop.
	Text string `json:"text"`

	// LSP is the edit as a workspace edit with linked editing ranges.
	LSP lspedit.Result `json:"lsp"`
}

func (a *app) convertCommand() *cobra.Command {
	var write bool

	cmd := &cobra.Command{
		Use:   "convert FILE:LINE",
		Short: "Convert the counting loop on a line into a range loop",
		Long: `Convert the counting loop starting on a line into a range loop.

The edit is printed together with the linked editing ranges of the range variable.
With --write the file is rewritten in place.`,
		Example: "  quickassist convert main.go:42",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			loc, err := ParseLine(args[0])
			if err != nil {
				return err
			}

			return a.convert(cmd, loc, write)
		},
	}

	cmd.Flags().BoolVarP(&write, "write", "w", false, "write the converted loop to the file")

	return cmd
}

func (a *app) convert(cmd *cobra.Command, loc Location, write bool) error {
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

	var found *loop.Analysis

	for c := range doc.Root.Preorder((*ast.ForStmt)(nil)) {
		if p := c.Node().Pos(); pos <= p && p < end {
			found = loop.New(doc.Pkg.TypesInfo, doc.GoVersion(), c)

			break
		}
	}

	if found == nil {
		return fmt.Errorf("%w %s:%d", ErrNoLoop, loc.File, loc.Line)
	}

	verdict := found.Check()

	a.logger.LogAttrs(ctx, slog.LevelDebug, "Checked loop",
		slog.String("file", file.Name()), slog.Int("line", loc.Line), slog.String("verdict", verdict.String()))

	if !verdict.Convertible() {
		return fmt.Errorf("%w (%s)", ErrNotConvertible, verdict)
	}

	planner := plan.Planner{
		Fset: doc.Pkg.Fset,
		Info: doc.Pkg.TypesInfo,
		Pkg:  doc.Pkg.Types,
		Src:  doc.Src,
	}

	p, err := planner.Plan(found.Shape(), found.Source(), a.config.Name)
	if err != nil {
		return err
	}

	exported, err := lspedit.Convert(file, doc.Src, p)
	if err != nil {
		return err
	}

	if write {
		if err := apply(file, doc.Src, p); err != nil {
			return err
		}

		a.logger.LogAttrs(ctx, slog.LevelInfo, "Converted loop", slog.String("file", file.Name()), slog.Int("line", loc.Line))
	}

	result := ConvertResult{
		File:    file.Name(),
		Line:    loc.Line,
		Verdict: verdict.String(),
		Label:   p.Label,
		Text:    string(p.NewText),
		LSP:     exported,
	}

	return encode(cmd.OutOrStdout(), a.config.Format, result)
}

// apply writes the edited source back to the file.
func apply(file *token.File, src []byte, p plan.EditPlan) error {
	stat, err := os.Stat(file.Name())
	if err != nil {
		return err
	}

	edited, err := p.Apply(src, file)
	if err != nil {
		return err
	}

	return os.WriteFile(file.Name(), edited, stat.Mode().Perm())
}
