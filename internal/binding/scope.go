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

package binding

import (
	"go/token"
	"go/types"

	"golang.org/x/tools/go/ast/inspector"
)

// VisibleBefore returns the declarations visible at pos, innermost scope first.
//
// Package and file level declarations are always visible, local declarations only
// when they are declared before pos. The universe scope is not included.
func VisibleBefore(pkg *types.Package, pos token.Pos) []types.Object {
	var objs []types.Object

	for scope := pkg.Scope().Innermost(pos); scope != nil && scope != types.Universe; scope = scope.Parent() {
		local := isLocal(pkg, scope)

		for _, name := range scope.Names() {
			obj := scope.Lookup(name)
			if local && obj.Pos() >= pos {
				continue
			}

			objs = append(objs, obj)
		}
	}

	return objs
}

// VisibleAfter returns the declarations of the function enclosing pos that are
// declared at or after pos, including those of nested scopes.
func VisibleAfter(pkg *types.Package, pos token.Pos) []types.Object {
	fun := functionScope(pkg, pos)
	if fun == nil {
		return nil
	}

	return appendDeclaredAfter(nil, fun, pos)
}

func appendDeclaredAfter(objs []types.Object, scope *types.Scope, pos token.Pos) []types.Object {
	for _, name := range scope.Names() {
		if obj := scope.Lookup(name); obj.Pos() >= pos {
			objs = append(objs, obj)
		}
	}

	for child := range scope.Children() {
		objs = appendDeclaredAfter(objs, child, pos)
	}

	return objs
}

// functionScope returns the outermost local scope enclosing pos.
func functionScope(pkg *types.Package, pos token.Pos) *types.Scope {
	var fun *types.Scope

	for scope := pkg.Scope().Innermost(pos); scope != nil && isLocal(pkg, scope); scope = scope.Parent() {
		fun = scope
	}

	return fun
}

// isLocal reports whether scope is neither the package nor a file scope.
func isLocal(pkg *types.Package, scope *types.Scope) bool {
	pscope := pkg.Scope()

	return scope != pscope && scope.Parent() != pscope && scope != types.Universe
}

// DeclaredWithin returns the objects declared in scopes of the subtree c, including
// implicit type switch variables. Scopes are visited in document order.
func DeclaredWithin(info *types.Info, c inspector.Cursor) []types.Object {
	var objs []types.Object

	for n := range c.Preorder() {
		scope := info.Scopes[n.Node()]
		if scope == nil {
			continue
		}

		for _, name := range scope.Names() {
			objs = append(objs, scope.Lookup(name))
		}
	}

	return objs
}

// Names collects the names of objects into a set.
func Names(set map[string]struct{}, objs ...[]types.Object) map[string]struct{} {
	if set == nil {
		set = make(map[string]struct{})
	}

	for _, list := range objs {
		for _, obj := range list {
			set[obj.Name()] = struct{}{}
		}
	}

	return set
}
