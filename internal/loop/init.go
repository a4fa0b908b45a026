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

package loop

import (
	"go/ast"
	"go/constant"
	"go/token"

	"fillmore-labs.com/quickassist/internal/occurrence"
)

// checkInit verifies the init statement assigns literal zero to the index, declares it
// inside the loop and that no other initialized variable is referenced in the body.
func (a *Analysis) checkInit() Verdict {
	init := a.shape.Init
	if init == nil || (init.Tok != token.DEFINE && init.Tok != token.ASSIGN) || len(init.Lhs) != len(init.Rhs) {
		return BadInit
	}

	index := -1

	for i, lhs := range init.Lhs {
		id, ok := lhs.(*ast.Ident)
		if !ok {
			return BadInit
		}

		if a.isIndex(id) {
			index = i
		}
	}

	if index < 0 {
		return BadInit
	}

	if !zero(init.Rhs[index]) {
		return NonZeroStart
	}

	if init.Tok != token.DEFINE {
		return IndexEscapes
	}

	for i, lhs := range init.Lhs {
		if i == index {
			continue
		}

		obj := a.info.ObjectOf(lhs.(*ast.Ident))
		if obj == nil {
			continue // blank
		}

		if occurrence.Find(a.info, obj, a.shape.Body).Len() > 0 {
			return TempReferenced
		}
	}

	return Convertible
}

// zero reports whether expr is an integer literal with value zero.
func zero(expr ast.Expr) bool {
	lit, ok := ast.Unparen(expr).(*ast.BasicLit)
	if !ok || lit.Kind != token.INT {
		return false
	}

	value := constant.MakeFromLiteral(lit.Value, token.INT, 0)

	return value.Kind() == constant.Int && constant.Sign(value) == 0
}
