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

	"golang.org/x/tools/go/ast/inspector"
	"golang.org/x/tools/go/types/typeutil"
)

// _noReturn are functions that panic or terminate the goroutine or the program.
var _noReturn = map[FuncName]struct{}{
	{Path: "log", Name: "Fatal"}:   {},
	{Path: "log", Name: "Fatalf"}:  {},
	{Path: "log", Name: "Fatalln"}: {},
	{Path: "log", Name: "Panic"}:   {},
	{Path: "log", Name: "Panicf"}:  {},
	{Path: "log", Name: "Panicln"}: {},

	{Path: "log", Receiver: "Logger", Name: "Fatal"}:   {},
	{Path: "log", Receiver: "Logger", Name: "Fatalf"}:  {},
	{Path: "log", Receiver: "Logger", Name: "Fatalln"}: {},
	{Path: "log", Receiver: "Logger", Name: "Panic"}:   {},
	{Path: "log", Receiver: "Logger", Name: "Panicf"}:  {},
	{Path: "log", Receiver: "Logger", Name: "Panicln"}: {},

	{Path: "os", Name: "Exit"}:        {},
	{Path: "syscall", Name: "Exit"}:   {},
	{Path: "runtime", Name: "Goexit"}: {},

	{Path: "testing", Receiver: "common", Name: "Fatal"}:   {},
	{Path: "testing", Receiver: "common", Name: "Fatalf"}:  {},
	{Path: "testing", Receiver: "common", Name: "FailNow"}: {},
	{Path: "testing", Receiver: "common", Name: "Skip"}:    {},
	{Path: "testing", Receiver: "common", Name: "Skipf"}:   {},
	{Path: "testing", Receiver: "common", Name: "SkipNow"}: {},

	{Path: "testing", Receiver: "TB", Name: "Fatal"}:   {},
	{Path: "testing", Receiver: "TB", Name: "Fatalf"}:  {},
	{Path: "testing", Receiver: "TB", Name: "FailNow"}: {},
	{Path: "testing", Receiver: "TB", Name: "Skip"}:    {},
	{Path: "testing", Receiver: "TB", Name: "Skipf"}:   {},
	{Path: "testing", Receiver: "TB", Name: "SkipNow"}: {},

	{Path: "go.uber.org/zap", Receiver: "Logger", Name: "Fatal"}:         {},
	{Path: "go.uber.org/zap", Receiver: "Logger", Name: "Panic"}:         {},
	{Path: "go.uber.org/zap", Receiver: "SugaredLogger", Name: "Fatal"}:  {},
	{Path: "go.uber.org/zap", Receiver: "SugaredLogger", Name: "Fatalf"}: {},
	{Path: "go.uber.org/zap", Receiver: "SugaredLogger", Name: "Panic"}:  {},
	{Path: "go.uber.org/zap", Receiver: "SugaredLogger", Name: "Panicf"}: {},
}

var builtinPanic = types.Universe.Lookup("panic").(*types.Builtin)

// neverReturns reports whether call panics or does not return to its caller.
// Such calls raise no error the caller could handle.
func neverReturns(info *types.Info, call *ast.CallExpr) bool {
	switch fun := typeutil.Callee(info, call).(type) {
	case *types.Builtin:
		return fun == builtinPanic

	case *types.Func:
		_, ok := _noReturn[FuncNameOf(fun.Origin())]

		return ok

	default:
		return false
	}
}

// uncheckedCalls returns the calls of the selection that panic or never return.
func (a *analysis) uncheckedCalls() []*ast.CallExpr {
	var calls []*ast.CallExpr

	a.inspect([]ast.Node{(*ast.CallExpr)(nil)}, func(c inspector.Cursor) {
		if call := c.Node().(*ast.CallExpr); neverReturns(a.info, call) {
			calls = append(calls, call)
		}
	})

	return calls
}
