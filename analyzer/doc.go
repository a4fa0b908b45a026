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

// Package analyzer implements the forrange static analysis pass.
//
// # Overview
//
// forrange detects counting loops over a slice or array that can be written as a range loop.
//
// # Example
//
// Before:
//
//	for i := 0; i < len(items); i++ {
//	    item := items[i]
//	    process(item)
//	}
//
// After applying forrange's suggested fix:
//
//	for _, item := range items {
//	    process(item)
//	}
//
// # Preconditions
//
// A loop is converted only when
//
//   - the file's language version has per-iteration loop variables (go1.22),
//   - the condition is "i < len(s)" or compares against a length bound in the init statement,
//   - the index starts at literal zero and is incremented by "i++",
//   - the body reads the index only as "s[i]" and never writes to the source or its elements.
//
// Arrays are ranged by address, so the loop does not copy them.
//
// # Flags
//
//	-explain    report counting loops that can't be converted, with the failed precondition
//	-generated  check generated files
//	-name       preferred name of the range variable
//	-suggest    suggest conversions as fixes (default true)
package analyzer
