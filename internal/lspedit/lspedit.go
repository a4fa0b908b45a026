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

// Package lspedit exports edit plans as Language Server Protocol edits.
package lspedit

import (
	"fmt"
	"go/token"
	"slices"
	"unicode/utf16"
	"unicode/utf8"

	"go.lsp.dev/protocol"
	"go.lsp.dev/uri"

	"fillmore-labs.com/quickassist/internal/plan"
)

// Result is an exported edit plan.
type Result struct {
	// Edit replaces the loop in the original document.
	Edit protocol.WorkspaceEdit `json:"edit"`

	// Linked has one entry per linked group, in the edited document.
	Linked []protocol.LinkedEditingRanges `json:"linked,omitempty"`
}

// Convert translates p into LSP positions. src is the content of file before the edit.
// Linked ranges are computed on the document after the edit.
func Convert(file *token.File, src []byte, p plan.EditPlan) (Result, error) {
	edited, err := p.Apply(src, file)
	if err != nil {
		return Result{}, err
	}

	start := int(p.Pos) - file.Base()
	end := int(p.End) - file.Base()

	before := newMapper(src)

	rng, err := before.rangeOf(start, end)
	if err != nil {
		return Result{}, err
	}

	doc := uri.File(file.Name())

	result := Result{
		Edit: protocol.WorkspaceEdit{
			Changes: map[protocol.DocumentURI][]protocol.TextEdit{
				doc: {{Range: rng, NewText: string(p.NewText)}},
			},
		},
	}

	after := newMapper(edited)

	for _, group := range p.Groups {
		ranges := make([]protocol.Range, 0, len(group.Positions))

		for _, pos := range group.Positions {
			from := start + pos.Offset

			r, err := after.rangeOf(from, from+pos.Length)
			if err != nil {
				return Result{}, fmt.Errorf("linked group %q: %w", group.Name, err)
			}

			ranges = append(ranges, r)
		}

		result.Linked = append(result.Linked, protocol.LinkedEditingRanges{Ranges: ranges})
	}

	return result, nil
}

// mapper converts byte offsets of a document into LSP positions.
type mapper struct {
	content []byte
	lines   []int // offsets of line starts
}

func newMapper(content []byte) *mapper {
	lines := []int{0}

	for i, c := range content {
		if c == '\n' {
			lines = append(lines, i+1)
		}
	}

	return &mapper{content: content, lines: lines}
}

func (m *mapper) rangeOf(start, end int) (protocol.Range, error) {
	s, err := m.position(start)
	if err != nil {
		return protocol.Range{}, err
	}

	e, err := m.position(end)
	if err != nil {
		return protocol.Range{}, err
	}

	return protocol.Range{Start: s, End: e}, nil
}

// position returns the zero based line and UTF-16 column of offset.
func (m *mapper) position(offset int) (protocol.Position, error) {
	if offset < 0 || offset > len(m.content) {
		return protocol.Position{}, fmt.Errorf("offset %d of %d: %w", offset, len(m.content), plan.ErrOffset)
	}

	line, found := slices.BinarySearch(m.lines, offset)
	if !found {
		line--
	}

	var char int

	for b := m.content[m.lines[line]:offset]; len(b) > 0; {
		r, size := utf8.DecodeRune(b)
		if n := utf16.RuneLen(r); n > 0 {
			char += n
		} else {
			char++
		}

		b = b[size:]
	}

	return protocol.Position{Line: uint32(line), Character: uint32(char)}, nil
}
