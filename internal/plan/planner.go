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
	"cmp"
	"fmt"
	"go/ast"
	"go/token"
	"go/types"
	"slices"

	"golang.org/x/tools/go/ast/edge"
	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/quickassist/internal/binding"
	"fillmore-labs.com/quickassist/internal/loop"
	"fillmore-labs.com/quickassist/internal/names"
	"fillmore-labs.com/quickassist/internal/occurrence"
)

// Planner builds edit plans for loops of one file.
type Planner struct {
	Fset *token.FileSet
	Info *types.Info
	Pkg  *types.Package

	// Src is the content of the file containing the loops.
	Src []byte
}

// Plan builds the conversion of a loop that passed [loop.Analysis.Check].
//
// suggestedName is used as the loop variable when it does not collide.
// A nil source ranges over the loop bound.
func (p Planner) Plan(shape loop.Shape, source *loop.Source, suggestedName string) (EditPlan, error) {
	stmt := shape.Stmt()
	if stmt == nil || stmt.Body == nil {
		return EditPlan{}, ErrNoLoop
	}

	file := p.Fset.File(stmt.Pos())
	if file == nil {
		return EditPlan{}, ErrOffset
	}

	excluded := binding.Names(nil,
		binding.VisibleBefore(p.Pkg, stmt.Pos()),
		binding.VisibleAfter(p.Pkg, stmt.End()),
		binding.DeclaredWithin(p.Info, shape.Body))

	typeName, dims := "int", 0
	if source != nil {
		typeName, dims = names.TypeName(source.Elem)
	}

	proposals := rank(suggestedName, names.Suggest(typeName, dims, excluded), excluded)

	b := &builder{Planner: p, file: file, stmt: stmt}

	if source == nil {
		return b.overBound(shape, proposals)
	}

	var sites []inspector.Cursor

	occurrences := occurrence.Find(p.Info, source.Binding, shape.Body)
	for _, c := range occurrences {
		if site, ok := p.site(shape, source, c); ok {
			sites = append(sites, site)
		}
	}

	if occurrences.Len() == 1 && len(sites) == 1 {
		if decl, v, ok := p.declaration(shape, source, sites[0]); ok {
			return b.elide(shape, source, decl, v, proposals)
		}
	}

	return b.replace(source, sites, proposals)
}

// rank puts an unused suggested name first.
func rank(suggested string, proposals []string, excluded map[string]struct{}) []string {
	if suggested == "" || !names.Usable(suggested, excluded) {
		return proposals
	}

	ranked := []string{suggested}
	for _, name := range proposals {
		if name != suggested {
			ranked = append(ranked, name)
		}
	}

	return ranked
}

// site returns the index expression "source[index]" of an occurrence.
func (p Planner) site(shape loop.Shape, source *loop.Source, c inspector.Cursor) (inspector.Cursor, bool) {
	if source.IsCall {
		return c, false
	}

	index, ok := occurrence.IndexAccess(c)
	if !ok {
		return c, false
	}

	n, ok := index.Node().(*ast.IndexExpr)
	if !ok {
		return c, false
	}

	id, ok := ast.Unparen(n.Index).(*ast.Ident)
	if !ok || !binding.Equal(p.Info.Uses[id], shape.IndexVar) {
		return c, false
	}

	return index, binding.SameAccess(p.Info, n.X, source.Expr)
}

// declaration returns the statement when site initializes a single variable declared
// directly in the loop body with the element type, and the variable name is not used
// for anything else in the body.
func (p Planner) declaration(shape loop.Shape, source *loop.Source, site inspector.Cursor) (inspector.Cursor, *types.Var, bool) {
	var (
		decl inspector.Cursor
		id   *ast.Ident
	)

	switch ek, _ := site.ParentEdge(); ek {
	case edge.AssignStmt_Rhs:
		decl = site.Parent()

		n := decl.Node().(*ast.AssignStmt)
		if n.Tok != token.DEFINE || len(n.Lhs) != 1 || len(n.Rhs) != 1 {
			return decl, nil, false
		}

		id, _ = n.Lhs[0].(*ast.Ident)

	case edge.ValueSpec_Values:
		spec := site.Parent()

		n := spec.Node().(*ast.ValueSpec)
		if len(n.Names) != 1 || len(n.Values) != 1 {
			return spec, nil, false
		}

		gen := spec.Parent()
		if g, ok := gen.Node().(*ast.GenDecl); !ok || g.Tok != token.VAR || len(g.Specs) != 1 {
			return gen, nil, false
		}

		decl, id = gen.Parent(), n.Names[0]

	default:
		return site, nil, false
	}

	if ek, _ := decl.ParentEdge(); ek != edge.BlockStmt_List || decl.Parent() != shape.Body {
		return decl, nil, false
	}

	if id == nil {
		return decl, nil, false
	}

	v, ok := p.Info.Defs[id].(*types.Var)
	if !ok || !types.Identical(v.Type(), source.Elem) {
		return decl, nil, false
	}

	for c := range shape.Body.Preorder((*ast.Ident)(nil)) {
		n := c.Node().(*ast.Ident)
		if n.Name != v.Name() {
			continue
		}

		if obj := p.Info.ObjectOf(n); obj != nil && !binding.Equal(obj, v) {
			return decl, nil, false // name used for another declaration
		}
	}

	return decl, v, true
}

// builder assembles the replacement text of one loop.
type builder struct {
	Planner
	file *token.File
	stmt *ast.ForStmt
}

// edit replaces a body range, optionally as a linked position.
type edit struct {
	pos, end token.Pos
	text     string
	linked   bool
}

// replace is the general path: every site is replaced by the loop variable.
func (b *builder) replace(source *loop.Source, sites []inspector.Cursor, proposals []string) (EditPlan, error) {
	name := proposals[0]

	src, err := b.sourceText(source)
	if err != nil {
		return EditPlan{}, err
	}

	if len(sites) == 0 {
		return b.render("for range "+src+" ", -1, nil, LinkedGroup{}, Range{})
	}

	edits := make([]edit, 0, len(sites))
	for _, c := range sites {
		n := c.Node()
		edits = append(edits, edit{pos: n.Pos(), end: n.End(), text: name, linked: true})
	}

	header := "for _, " + name + " := range " + src + " "
	group := LinkedGroup{Name: name, Proposals: proposals}

	return b.render(header, len("for _, "), edits, group, Range{})
}

// elide is the fast path: the declaration initialized by the single site is removed and
// the declared variable becomes the loop variable.
func (b *builder) elide(shape loop.Shape, source *loop.Source, decl inspector.Cursor, v *types.Var, proposals []string) (EditPlan, error) {
	name := v.Name()

	src, err := b.sourceText(source)
	if err != nil {
		return EditPlan{}, err
	}

	pos, end, err := b.deletion(decl.Node())
	if err != nil {
		return EditPlan{}, err
	}

	edits := []edit{{pos: pos, end: end}}
	for _, c := range occurrence.Find(b.Info, v, shape.Body) {
		n := c.Node()
		edits = append(edits, edit{pos: n.Pos(), end: n.End(), text: name, linked: true})
	}

	header := "for _, " + name + " := range " + src + " "
	group := LinkedGroup{Name: name, Proposals: rank(name, proposals, nil)}

	return b.render(header, len("for _, "), edits, group, Range{Pos: decl.Node().Pos(), End: decl.Node().End()})
}

// overBound ranges over the loop bound when no source is known, renaming the index.
func (b *builder) overBound(shape loop.Shape, proposals []string) (EditPlan, error) {
	name := proposals[0]

	bound, err := b.text(shape.Bound)
	if err != nil {
		return EditPlan{}, err
	}

	var edits []edit
	for _, c := range occurrence.Find(b.Info, shape.IndexVar, shape.Body) {
		n := c.Node()
		edits = append(edits, edit{pos: n.Pos(), end: n.End(), text: name, linked: true})
	}

	header := "for " + name + " := range " + bound + " "
	group := LinkedGroup{Name: name, Proposals: proposals}

	return b.render(header, len("for "), edits, group, Range{})
}

// sourceText returns the range clause operand. Array values are ranged by address.
func (b *builder) sourceText(source *loop.Source) (string, error) {
	src, err := b.text(source.Expr)
	if err != nil {
		return "", err
	}

	if source.IsArrayValue() {
		return "&" + src, nil
	}

	return src, nil
}

func (b *builder) text(n ast.Node) (string, error) {
	start, end, err := offsets(b.file, len(b.Src), n.Pos(), n.End())
	if err != nil {
		return "", err
	}

	return string(b.Src[start:end]), nil
}

// render writes header followed by the loop body with edits applied. defOffset is the
// offset of the loop variable in header, negative for none.
func (b *builder) render(header string, defOffset int, edits []edit, group LinkedGroup, deleted Range) (EditPlan, error) {
	body := b.stmt.Body

	start, end, err := offsets(b.file, len(b.Src), body.Lbrace, body.End())
	if err != nil {
		return EditPlan{}, err
	}

	slices.SortFunc(edits, func(x, y edit) int { return cmp.Compare(x.pos, y.pos) })

	var buf bytes.Buffer
	buf.Grow(len(header) + end - start)
	buf.WriteString(header) // ignore error

	if defOffset >= 0 {
		group.Positions = append(group.Positions, LinkedPosition{Offset: defOffset, Length: len(group.Name), Definition: true})
	}

	last := start
	for _, e := range edits {
		from, to, err := offsets(b.file, len(b.Src), e.pos, e.end)
		if err != nil {
			return EditPlan{}, err
		}

		if from < last || to > end {
			return EditPlan{}, fmt.Errorf("edit at %s: %w", b.Fset.Position(e.pos), ErrOverlap)
		}

		buf.Write(b.Src[last:from]) // ignore error

		if e.linked {
			group.Positions = append(group.Positions, LinkedPosition{Offset: buf.Len(), Length: len(e.text)})
		}

		buf.WriteString(e.text) // ignore error

		last = to
	}

	buf.Write(b.Src[last:end]) // ignore error

	plan := EditPlan{
		Label:   Label,
		Pos:     b.stmt.Pos(),
		End:     b.stmt.End(),
		NewText: buf.Bytes(),
		Deleted: deleted,
	}

	if len(group.Positions) > 0 {
		plan.Groups = []LinkedGroup{group}
	}

	return plan, nil
}
