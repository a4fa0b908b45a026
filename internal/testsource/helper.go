// Copyright 2025-2026 Oliver Eikemeier. All Rights Reserved.
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

// Package testsource provides utilities for parsing and analyzing Go source code in tests.
//
// It handles the boilerplate of parsing and type-checking Go source fragments,
// so tests of the loop, occurrence and selection analyses can focus on the code under test.
package testsource

import (
	"go/ast"
	"go/importer"
	"go/parser"
	"go/token"
	"go/types"
	"testing"

	"golang.org/x/tools/go/ast/edge"
	"golang.org/x/tools/go/ast/inspector"
)

const (
	testpkg  = "test"
	filename = "test.go"

	// GoVersion is the language version test sources are checked with.
	GoVersion = "go1.24"
)

// Source is a parsed and type checked test file.
type Source struct {
	Fset *token.FileSet
	File *ast.File
	Src  []byte
	Pkg  *types.Package
	Info *types.Info

	// Root is a cursor positioned at the file.
	Root inspector.Cursor
}

// TokenFile returns the [token.File] of the source.
func (s Source) TokenFile() *token.File {
	return s.Fset.File(s.File.FileStart)
}

// Parse parses a Go source code fragment into an AST.
// The provided source `src` is automatically wrapped in a function body `func _() { ... }`
// within a package `test`. This allows testing statement-level code fragments without
// manually constructing the surrounding package and function scaffolding.
//
// Call [Check] on the result when type information is needed.
//
// Returns:
//   - *token.FileSet: The file set containing the single source file.
//   - *ast.File: The parsed AST of the source file.
//   - *ast.FuncDecl: The function declaration wrapping the source code.
//   - inspector.Cursor: A cursor positioned at the wrapper function's Body field.
func Parse(tb testing.TB, src string) (fset *token.FileSet, f *ast.File, fn *ast.FuncDecl, body inspector.Cursor) {
	tb.Helper()

	fset = token.NewFileSet()

	f, err := parser.ParseFile(fset, filename, wrapSource(src), parser.SkipObjectResolution|parser.ParseComments)
	if err != nil {
		tb.Fatalf("Failed to parse source %q: %v", src, err)
	}

	fn, body = firstFuncDecl(f)
	if fn == nil {
		tb.Fatal("Can't find function")
	}

	return fset, f, fn, body
}

// Check performs type checking on the provided AST files.
// It creates and returns a fully type-checked *types.Package and *types.Info.
// Use this helper when testing components that require type information
// (e.g. for binding resolution, type identity, or scope queries).
func Check(tb testing.TB, fset *token.FileSet, f *ast.File) (*types.Package, *types.Info) {
	tb.Helper()

	return CheckVersion(tb, fset, f, GoVersion)
}

// CheckVersion is like [Check], with an explicit language version.
func CheckVersion(tb testing.TB, fset *token.FileSet, f *ast.File, goVersion string) (*types.Package, *types.Info) {
	tb.Helper()

	info := &types.Info{
		Types:        make(map[ast.Expr]types.TypeAndValue),
		Defs:         make(map[*ast.Ident]types.Object),
		Uses:         make(map[*ast.Ident]types.Object),
		Implicits:    make(map[ast.Node]types.Object),
		Selections:   make(map[*ast.SelectorExpr]*types.Selection),
		Scopes:       make(map[ast.Node]*types.Scope),
		FileVersions: make(map[*ast.File]string),
	}

	conf := types.Config{Importer: importer.Default(), GoVersion: goVersion}

	pkg, err := conf.Check(testpkg, fset, []*ast.File{f}, info)
	if err != nil {
		tb.Fatalf("failed to type Check source: %v", err)
	}

	return pkg, info
}

// Load parses and type checks a complete Go source file.
func Load(tb testing.TB, src string) Source {
	tb.Helper()

	return LoadVersion(tb, src, GoVersion)
}

// LoadVersion is like [Load], with an explicit language version.
func LoadVersion(tb testing.TB, src, goVersion string) Source {
	tb.Helper()

	fset := token.NewFileSet()

	f, err := parser.ParseFile(fset, filename, src, parser.SkipObjectResolution|parser.ParseComments)
	if err != nil {
		tb.Fatalf("Failed to parse source %q: %v", src, err)
	}

	pkg, info := CheckVersion(tb, fset, f, goVersion)
	root := inspector.New([]*ast.File{f}).Root()

	file, ok := root.FirstChild()
	if !ok {
		tb.Fatal("Can't find file")
	}

	return Source{Fset: fset, File: f, Src: []byte(src), Pkg: pkg, Info: info, Root: file}
}

// Func loads a statement fragment wrapped like [Parse] and returns it together
// with a cursor positioned at the wrapper function's body.
func Func(tb testing.TB, src string) (Source, inspector.Cursor) {
	tb.Helper()

	s := Load(tb, WrapSource(src))

	for c := range s.Root.Preorder((*ast.FuncDecl)(nil)) {
		return s, c.ChildAt(edge.FuncDecl_Body, -1)
	}

	tb.Fatal("Can't find function")

	return s, s.Root
}

// WrapSource wraps a statement fragment into a compilable file.
func WrapSource(src string) string {
	const (
		header = "package " + testpkg + "\n\nfunc _() {\n"
		suffix = "\n}\n"
	)

	return header + src + suffix
}

func wrapSource(src string) []byte {
	return []byte(WrapSource(src))
}

// First returns a cursor at the first node of type T in the subtree c.
func First[T ast.Node](tb testing.TB, c inspector.Cursor) (inspector.Cursor, T) {
	tb.Helper()

	var zero T
	for n := range c.Preorder(zero) {
		if node, ok := n.Node().(T); ok {
			return n, node
		}
	}

	tb.Fatalf("Can't find %T", zero)

	return c, zero
}

func firstFuncDecl(f *ast.File) (fn *ast.FuncDecl, body inspector.Cursor) {
	root := inspector.New([]*ast.File{f}).Root()
	for c := range root.Preorder((*ast.FuncDecl)(nil)) {
		fn, body = c.Node().(*ast.FuncDecl), c.ChildAt(edge.FuncDecl_Body, -1)

		return fn, body
	}

	return nil, root
}
