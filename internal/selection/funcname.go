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

package selection

import "go/types"

// FuncName identifies a function or method independent of its type checker object.
type FuncName struct {
	Path, Receiver, Name string
}

func (f FuncName) String() string {
	switch {
	case f.Receiver != "" && f.Path != "":
		return "(" + f.Path + "." + f.Receiver + ")." + f.Name

	case f.Receiver != "":
		return "(" + f.Receiver + ")." + f.Name

	case f.Path != "":
		return f.Path + "." + f.Name

	default:
		return f.Name
	}
}

// FuncNameOf returns the name of fun. Methods are named by their receiver base type.
func FuncNameOf(fun *types.Func) FuncName {
	name := FuncName{Name: fun.Name()}

	recv := fun.Signature().Recv()
	if recv == nil {
		name.Path = pkgPath(fun.Pkg())

		return name
	}

	t := types.Unalias(recv.Type())
	if ptr, ok := t.(*types.Pointer); ok {
		t = types.Unalias(ptr.Elem())
	}

	switch t := t.(type) {
	case *types.Named:
		obj := t.Obj()
		name.Path, name.Receiver = pkgPath(obj.Pkg()), obj.Name()

	case *types.Interface:
		name.Receiver = "interface"

	default:
		name.Receiver = "<invalid>"
	}

	return name
}

func pkgPath(pkg *types.Package) string {
	if pkg == nil {
		return ""
	}

	return pkg.Path()
}
