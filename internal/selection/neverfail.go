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

import (
	"go/ast"
	"go/types"

	"golang.org/x/tools/go/types/typeutil"
)

// _neverFail are functions whose error result is always nil or conventionally unchecked.
var _neverFail = map[FuncName]struct{}{
	{Path: "bytes", Receiver: "Buffer", Name: "Write"}:       {},
	{Path: "bytes", Receiver: "Buffer", Name: "WriteByte"}:   {},
	{Path: "bytes", Receiver: "Buffer", Name: "WriteRune"}:   {},
	{Path: "bytes", Receiver: "Buffer", Name: "WriteString"}: {},

	{Path: "strings", Receiver: "Builder", Name: "Write"}:       {},
	{Path: "strings", Receiver: "Builder", Name: "WriteByte"}:   {},
	{Path: "strings", Receiver: "Builder", Name: "WriteRune"}:   {},
	{Path: "strings", Receiver: "Builder", Name: "WriteString"}: {},

	{Path: "fmt", Name: "Print"}:   {},
	{Path: "fmt", Name: "Printf"}:  {},
	{Path: "fmt", Name: "Println"}: {},

	{Path: "math/rand", Name: "Read"}:                   {},
	{Path: "math/rand", Receiver: "Rand", Name: "Read"}: {},
	{Path: "crypto/rand", Name: "Read"}:                 {},

	{Path: "hash/maphash", Receiver: "Hash", Name: "Write"}:       {},
	{Path: "hash/maphash", Receiver: "Hash", Name: "WriteByte"}:   {},
	{Path: "hash/maphash", Receiver: "Hash", Name: "WriteString"}: {},
}

// neverFails reports whether the error result of call can be ignored.
func neverFails(info *types.Info, call *ast.CallExpr) bool {
	fun, ok := typeutil.Callee(info, call).(*types.Func)
	if !ok {
		return false
	}

	_, ok = _neverFail[FuncNameOf(fun.Origin())]

	return ok
}
