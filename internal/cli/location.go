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
	"go/token"
	"regexp"
	"strconv"
)

// ErrLocation is returned for malformed or out of range locations.
var ErrLocation = errors.New("invalid location")

// Location is a source range given on the command line. Lines and columns are 1-based,
// columns count bytes. The end column is exclusive.
type Location struct {
	File string

	Line, Col       int
	EndLine, EndCol int
}

var (
	rangePattern = regexp.MustCompile(`^(.+):(\d+):(\d+)-(\d+):(\d+)$`)
	linesPattern = regexp.MustCompile(`^(.+):(\d+)-(\d+)$`)
	linePattern  = regexp.MustCompile(`^(.+):(\d+)$`)
)

// ParseRange parses "FILE:LINE:COL-LINE:COL" or "FILE:LINE-LINE". A line range covers whole lines.
func ParseRange(s string) (Location, error) {
	if m := rangePattern.FindStringSubmatch(s); m != nil {
		n, err := numbers(m[2:])
		if err != nil {
			return Location{}, fmt.Errorf("%w %q: %w", ErrLocation, s, err)
		}

		return Location{File: m[1], Line: n[0], Col: n[1], EndLine: n[2], EndCol: n[3]}, nil
	}

	if m := linesPattern.FindStringSubmatch(s); m != nil {
		n, err := numbers(m[2:])
		if err != nil {
			return Location{}, fmt.Errorf("%w %q: %w", ErrLocation, s, err)
		}

		return Location{File: m[1], Line: n[0], EndLine: n[1]}, nil
	}

	return Location{}, fmt.Errorf("%w %q: want FILE:LINE:COL-LINE:COL or FILE:LINE-LINE", ErrLocation, s)
}

// ParseLine parses "FILE:LINE".
func ParseLine(s string) (Location, error) {
	m := linePattern.FindStringSubmatch(s)
	if m == nil {
		return Location{}, fmt.Errorf("%w %q: want FILE:LINE", ErrLocation, s)
	}

	n, err := numbers(m[2:])
	if err != nil {
		return Location{}, fmt.Errorf("%w %q: %w", ErrLocation, s, err)
	}

	return Location{File: m[1], Line: n[0], EndLine: n[0]}, nil
}

func numbers(ss []string) ([]int, error) {
	n := make([]int, 0, len(ss))

	for _, s := range ss {
		i, err := strconv.Atoi(s)
		if err != nil {
			return nil, err
		}

		n = append(n, i)
	}

	return n, nil
}

// Resolve converts the location into positions of file.
// A location without columns spans whole lines, including the final newline.
func (l Location) Resolve(file *token.File) (pos, end token.Pos, err error) {
	if l.Col == 0 {
		pos, err = lineStart(file, l.Line)
		if err != nil {
			return token.NoPos, token.NoPos, err
		}

		if l.EndLine < l.Line {
			return token.NoPos, token.NoPos, fmt.Errorf("%w: lines %d-%d", ErrLocation, l.Line, l.EndLine)
		}

		end, err = lineStart(file, l.EndLine+1)
		if err != nil {
			end = token.Pos(file.Base() + file.Size())
		}

		return pos, end, nil
	}

	if pos, err = position(file, l.Line, l.Col); err != nil {
		return token.NoPos, token.NoPos, err
	}

	if end, err = position(file, l.EndLine, l.EndCol); err != nil {
		return token.NoPos, token.NoPos, err
	}

	if end < pos {
		return token.NoPos, token.NoPos, fmt.Errorf("%w: end before start", ErrLocation)
	}

	return pos, end, nil
}

func lineStart(file *token.File, line int) (token.Pos, error) {
	if line < 1 || line > file.LineCount() {
		return token.NoPos, fmt.Errorf("%w: line %d outside of %s", ErrLocation, line, file.Name())
	}

	return file.LineStart(line), nil
}

func position(file *token.File, line, col int) (token.Pos, error) {
	start, err := lineStart(file, line)
	if err != nil {
		return token.NoPos, err
	}

	limit := token.Pos(file.Base() + file.Size())
	if line < file.LineCount() {
		limit = file.LineStart(line + 1)
	}

	pos := start + token.Pos(col-1)
	if col < 1 || pos > limit {
		return token.NoPos, fmt.Errorf("%w: column %d outside of line %d", ErrLocation, col, line)
	}

	return pos, nil
}
