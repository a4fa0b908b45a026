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

// Package plan builds the edit converting a counting loop into a range loop.
//
// An [EditPlan] is a single replacement of the loop statement. Linked positions are
// offsets into the replacement text, so they remain valid after the edit is applied.
package plan

import (
	"errors"
	"fmt"
	"go/token"

	"golang.org/x/tools/go/analysis"
)

// Label describes the loop conversion edit.
const Label = "Convert to range loop"

var (
	// ErrOffset is returned for positions outside of the source.
	ErrOffset = errors.New("position outside of source")

	// ErrOverlap is returned when edits overlap.
	ErrOverlap = errors.New("overlapping edits")

	// ErrNoLoop is returned when the shape has no for statement with a body.
	ErrNoLoop = errors.New("no loop statement")
)

// Range is a source range.
type Range struct {
	Pos, End token.Pos
}

// IsValid reports whether r denotes a range.
func (r Range) IsValid() bool { return r.Pos.IsValid() && r.Pos <= r.End }

// LinkedPosition is a region of the replacement text.
type LinkedPosition struct {
	// Offset is the byte offset into [EditPlan.NewText].
	Offset int

	// Length is the length in bytes.
	Length int

	// Definition marks the declaring position of the group.
	Definition bool
}

// LinkedGroup is a set of regions that are edited together.
type LinkedGroup struct {
	// Name is the current text of all positions.
	Name string

	// Proposals are alternative names, Name first.
	Proposals []string

	// Positions are in text order, the definition first.
	Positions []LinkedPosition
}

// EditPlan replaces the source range [Pos, End) by NewText.
type EditPlan struct {
	Label    string
	Pos, End token.Pos
	NewText  []byte

	// Deleted is the declaration removed from the loop body, if any.
	Deleted Range

	Groups []LinkedGroup
}

// SuggestedFix returns the plan as a single text edit.
func (p EditPlan) SuggestedFix() analysis.SuggestedFix {
	return analysis.SuggestedFix{
		Message:   p.Label,
		TextEdits: []analysis.TextEdit{{Pos: p.Pos, End: p.End, NewText: p.NewText}},
	}
}

// Apply returns a copy of src with the plan applied. src is the content of file.
// Either the whole plan is applied or an error is returned.
func (p EditPlan) Apply(src []byte, file *token.File) ([]byte, error) {
	start, end, err := offsets(file, len(src), p.Pos, p.End)
	if err != nil {
		return nil, err
	}

	out := make([]byte, 0, len(src)-(end-start)+len(p.NewText))
	out = append(out, src[:start]...)
	out = append(out, p.NewText...)
	out = append(out, src[end:]...)

	return out, nil
}

// offsets converts a position range into byte offsets of file.
func offsets(file *token.File, size int, pos, end token.Pos) (start, stop int, err error) {
	if file == nil || !pos.IsValid() || end < pos {
		return 0, 0, fmt.Errorf("range %d-%d: %w", pos, end, ErrOffset)
	}

	base := file.Base()

	start, stop = int(pos)-base, int(end)-base
	if start < 0 || stop > file.Size() || stop > size {
		return 0, 0, fmt.Errorf("range %d-%d of %s: %w", start, stop, file.Name(), ErrOffset)
	}

	return start, stop, nil
}
