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
	"context"
	"errors"
	"fmt"
	"go/ast"
	"go/token"
	"log/slog"
	"os"
	"path/filepath"

	"golang.org/x/tools/go/ast/inspector"
	"golang.org/x/tools/go/packages"
)

var (
	// ErrLoad is returned when the package containing a file can't be loaded.
	ErrLoad = errors.New("can't load package")

	// ErrNotInPackage is returned when no loaded package contains the file.
	ErrNotInPackage = errors.New("file not part of a package")
)

const loadMode = packages.NeedName | packages.NeedFiles | packages.NeedCompiledGoFiles |
	packages.NeedImports | packages.NeedSyntax | packages.NeedTypes | packages.NeedTypesInfo

// Document is a type checked file with its package.
type Document struct {
	Pkg  *packages.Package
	File *ast.File
	Src  []byte

	// Root is a cursor positioned at the file.
	Root inspector.Cursor
}

// TokenFile returns the [token.File] of the document.
func (d Document) TokenFile() *token.File {
	return d.Pkg.Fset.File(d.File.FileStart)
}

// GoVersion returns the language version of the document.
func (d Document) GoVersion() string {
	return d.Pkg.TypesInfo.FileVersions[d.File]
}

// load type checks the package containing name.
func load(ctx context.Context, logger *slog.Logger, name string, tests bool) (Document, error) {
	path, err := filepath.Abs(name)
	if err != nil {
		return Document{}, err
	}

	src, err := os.ReadFile(path)
	if err != nil {
		return Document{}, err
	}

	stat, err := os.Stat(path)
	if err != nil {
		return Document{}, err
	}

	cfg := &packages.Config{
		Context: ctx,
		Mode:    loadMode,
		Dir:     filepath.Dir(path),
		Tests:   tests,
	}

	pkgs, err := packages.Load(cfg, "file="+path)
	if err != nil {
		return Document{}, fmt.Errorf("%w for %s: %w", ErrLoad, name, err)
	}

	for _, pkg := range pkgs {
		logger.LogAttrs(ctx, slog.LevelDebug, "Loaded package",
			slog.String("id", pkg.ID), slog.Int("files", len(pkg.Syntax)), slog.Int("errors", len(pkg.Errors)))

		if len(pkg.Errors) > 0 {
			errs := make([]error, 0, len(pkg.Errors))
			for _, e := range pkg.Errors {
				errs = append(errs, e)
			}

			return Document{}, fmt.Errorf("%w %s: %w", ErrLoad, pkg.ID, errors.Join(errs...))
		}

		for _, f := range pkg.Syntax {
			if tf := pkg.Fset.File(f.FileStart); tf == nil || !sameFile(tf.Name(), stat) {
				continue
			}

			root, ok := inspector.New([]*ast.File{f}).Root().FirstChild()
			if !ok {
				break
			}

			return Document{Pkg: pkg, File: f, Src: src, Root: root}, nil
		}
	}

	return Document{}, fmt.Errorf("%w: %s", ErrNotInPackage, name)
}

// sameFile reports whether name denotes the file described by stat.
func sameFile(name string, stat os.FileInfo) bool {
	other, err := os.Stat(name)

	return err == nil && os.SameFile(other, stat)
}
