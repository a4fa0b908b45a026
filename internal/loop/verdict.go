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

// Verdict indicates whether a loop can be converted and, if not, the first failed precondition.
type Verdict uint8

//go:generate go tool stringer -type Verdict -linecomment
const (
	// Convertible indicates the loop can be converted to a range loop.
	Convertible Verdict = iota // ok

	// UnsupportedVersion indicates the file's language version predates per-iteration loop variables.
	UnsupportedVersion // ver

	// NoCondition indicates a missing condition or a condition other than "index < bound".
	NoCondition // cnd

	// NoSource indicates no unique indexable source could be inferred.
	NoSource // src

	// Unresolved indicates that the source, its type or the index could not be resolved.
	// This is usually caused by compile errors.
	Unresolved // unr

	// NotArray indicates the source is not an array, pointer to array or slice.
	NotArray // arr

	// BodyWrites indicates the body writes to the source, its elements or the index.
	BodyWrites // wrt

	// IndexMisused indicates the index is used other than as the index of the source.
	IndexMisused // idx

	// BadUpdate indicates the post statement is not "index++".
	BadUpdate // upd

	// BadInit indicates the init statement is not an assignment of the index.
	BadInit // ini

	// NonZeroStart indicates the index does not start at literal zero.
	NonZeroStart // zer

	// TempReferenced indicates another variable of the init statement is referenced in the body.
	TempReferenced // tmp

	// IndexEscapes indicates the index is declared outside the loop and would outlive it.
	IndexEscapes // esc
)

// Convertible indicates the loop passed all preconditions.
func (i Verdict) Convertible() bool { return i == Convertible }
