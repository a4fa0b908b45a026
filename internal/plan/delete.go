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

package plan

import (
	"bytes"
	"go/ast"
	"go/token"
)

// deletion returns the range to delete for stmt. A statement alone on its line is
// deleted with the line, otherwise with a trailing semicolon.
func (b *builder) deletion(stmt ast.Node) (pos, end token.Pos, err error) {
	pos, end = statementBounds(stmt)

	start, stop, err := offsets(b.file, len(b.Src), pos, end)
	if err != nil {
		return token.NoPos, token.NoPos, err
	}

	src := b.Src

	from := start
	for from > 0 && isBlank(src[from-1]) {
		from--
	}

	to := stop
	for to < len(src) && isBlank(src[to]) {
		to++
	}

	if to < len(src) && src[to] == ';' {
		to++
		for to < len(src) && isBlank(src[to]) {
			to++
		}
	}

	sep := to

	if bytes.HasPrefix(src[to:], []byte("//")) {
		if i := bytes.IndexByte(src[to:], '\n'); i >= 0 {
			to += i
		}
	}

	if (from == 0 || src[from-1] == '\n') && to < len(src) && src[to] == '\n' {
		// whole line
		return pos - token.Pos(start-from), end + token.Pos(to+1-stop), nil
	}

	return pos, end + token.Pos(sep-stop), nil
}

// statementBounds returns the start and end positions of a statement, including comments.
//
// For var declarations, this includes doc comments before the declaration and line comments after it.
func statementBounds(stmt ast.Node) (pos, end token.Pos) {
	pos, end = stmt.Pos(), stmt.End()

	if declStmt, ok := stmt.(*ast.DeclStmt); ok {
		if g, ok := declStmt.Decl.(*ast.GenDecl); ok {
			if doc := g.Doc; doc != nil && doc.Pos() < pos {
				pos = doc.Pos()
			}

			if vspec, ok := g.Specs[len(g.Specs)-1].(*ast.ValueSpec); ok {
				if comment := vspec.Comment; comment != nil && end < comment.End() {
					end = comment.End()
				}
			}
		}
	}

	return pos, end
}

func isBlank(c byte) bool { return c == ' ' || c == '\t' }
