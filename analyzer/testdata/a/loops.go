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

package a

import "fmt"

type Point struct{ X, Y int }

func values() []int { return nil }

func sum(s []int) int {
	total := 0
	for i := 0; i < len(s); i++ { // want "Loop over s can be converted to range"
		n := s[i]
		total += n
	}

	return total
}

func show(names []string) {
	for i := 0; i < len(names); i++ { // want "Loop over names can be converted to range"
		fmt.Println(names[i])
	}
}

func xs(points []Point) []int {
	var out []int
	for i := 0; i < len(points); i++ { // want "Loop over points can be converted to range"
		out = append(out, points[i].X)
	}

	return out
}

func total(a [4]int) (sum int) {
	for i := 0; i < len(a); i++ { // want "Loop over a can be converted to range"
		sum += a[i]
	}

	return sum
}

func count() (n int) {
	for i := 0; i < len(values()); i++ { // want "Loop over values\\(\\) can be converted to range"
		n++
	}

	return n
}

func matrixSum(m [][]int) int {
	sum := 0
	for i := 0; i < len(m); i++ { // want "Loop over m can be converted to range"
		row := m[i]
		for j := 0; j < len(row); j++ { // want "Loop over row can be converted to range"
			sum += row[j]
		}
	}

	return sum
}

func zero(s []int) {
	for i := 0; i < len(s); i++ {
		s[i] = 0
	}
}

func pairs(s []int) {
	for i := 0; i < len(s); i++ {
		fmt.Println(i, s[i])
	}
}

func suppressed(s []int) {
	for i := 0; i < len(s); i++ { //nolint:forrange
		fmt.Println(s[i])
	}
}

//nolint:forrange
func suppressedFunc(s []int) {
	for i := 0; i < len(s); i++ {
		fmt.Println(s[i])
	}
}
