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

package selection

import (
	"fmt"
	"go/token"
)

//go:generate go tool stringer -type Reason -linecomment

// Reason is a machine-checkable cause of a rejected selection.
type Reason uint8

const (
	// DoesNotCover indicates the selection covers no node.
	DoesNotCover Reason = iota + 1 // not-covered

	// NoEnclosingFunction indicates the selection is outside of a function body.
	NoEnclosingFunction // no-function

	// NonStatementSelection indicates partial nodes, expressions, case clauses or
	// statements of different lists are selected.
	NonStatementSelection // not-statements

	// CannotWrapFrameStatement indicates a statement bound to the enclosing function frame,
	// like defer, return or a branch leaving the selection.
	CannotWrapFrameStatement // frame-statement

	// NoUncaughtErrors indicates the selected statements discard no errors.
	NoUncaughtErrors // no-errors
)

// Message returns a human-readable description of r.
func (r Reason) Message() string {
	switch r {
	case DoesNotCover:
		return "selection does not cover any statement"
	case NoEnclosingFunction:
		return "selection is not inside a function body"
	case NonStatementSelection:
		return "only whole statements may be selected"
	case CannotWrapFrameStatement:
		return "selection contains a statement bound to the function frame"
	case NoUncaughtErrors:
		return "no uncaught errors in selection"
	default:
		return r.String()
	}
}

// Severity classifies a rejection.
type Severity uint8

// Fatal blocks the operation.
const Fatal Severity = 1

// Error is a rejected selection.
type Error struct {
	Reason   Reason
	Severity Severity

	// Pos and End locate the offending node, the selection when no node is responsible.
	Pos, End token.Pos
}

// Sentinel errors matching any [Error] with the same reason.
var (
	ErrDoesNotCover             = &Error{Reason: DoesNotCover, Severity: Fatal}
	ErrNoEnclosingFunction      = &Error{Reason: NoEnclosingFunction, Severity: Fatal}
	ErrNonStatementSelection    = &Error{Reason: NonStatementSelection, Severity: Fatal}
	ErrCannotWrapFrameStatement = &Error{Reason: CannotWrapFrameStatement, Severity: Fatal}
	ErrNoUncaughtErrors         = &Error{Reason: NoUncaughtErrors, Severity: Fatal}
)

func newError(reason Reason, pos, end token.Pos) *Error {
	return &Error{Reason: reason, Severity: Fatal, Pos: pos, End: end}
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s (%s)", e.Reason.Message(), e.Reason)
}

// Is matches errors with the same reason.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)

	return ok && t.Reason == e.Reason
}
