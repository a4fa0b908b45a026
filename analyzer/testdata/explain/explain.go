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

package explain

func values() []int { return nil }

func convertible(s []int) {
	for i := 0; i < len(s); i++ { // want `Loop over s can be converted to range \(fr:ok\)`
		println(s[i])
	}
}

func writes(s []int) {
	for i := 0; i < len(s); i++ { // want `Loop over s can't be converted to range \(fr:wrt\)`
		s[i] = 0
	}
}

func misused(s []int) {
	for i := 0; i < len(s); i++ { // want `Loop over s can't be converted to range \(fr:idx\)`
		println(i, s[i])
	}
}

func step(s []int) {
	for i := 0; i < len(s); i += 2 { // want `Loop over s can't be converted to range \(fr:upd\)`
		println(s[i])
	}
}

func start(s []int) {
	for i := 1; i < len(s); i++ { // want `Loop over s can't be converted to range \(fr:zer\)`
		println(s[i])
	}
}

func strings(str string) {
	for i := 0; i < len(str); i++ { // want `Loop over str can't be converted to range \(fr:arr\)`
		println(str[i])
	}
}

func called() {
	for i := 0; i < len(values()); i++ { // want `Loop over values\(\) can't be converted to range \(fr:idx\)`
		println(values()[i])
	}
}

func constant(s []int) {
	for i := 0; i < 10; i++ {
		println(s[i])
	}
}

func infinite(s []int) {
	for i := 0; ; i++ {
		println(s[i])
	}
}
