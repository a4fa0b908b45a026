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

import "go/ast"

//go:generate go tool stringer -type Mode -linecomment

// Mode is the position of a node relative to the selection.
type Mode uint8

const (
	// Before is a node ending at or before the selection start.
	Before Mode = iota // before

	// Covered is a node completely inside the selection.
	Covered // covered

	// Intersecting is a node overlapping a selection boundary or containing the selection.
	Intersecting // intersecting

	// After is a node starting at or after the selection end.
	After // after
)

// ModeOf classifies n relative to sel.
func ModeOf(n ast.Node, sel Range) Mode {
	switch pos, end := n.Pos(), n.End(); {
	case end <= sel.Pos:
		return Before

	case pos >= sel.End:
		return After

	case sel.Pos <= pos && end <= sel.End:
		return Covered

	default:
		return Intersecting
	}
}
