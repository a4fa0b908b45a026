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

// Package names suggests variable names for values of a given type.
package names

import (
	"go/token"
	"go/types"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Fallback names, appended to every suggestion list.
var fallback = [...]string{"elem", "v"}

// basicAbbrev maps basic type names to conventional short variable names.
var basicAbbrev = map[string]string{
	"bool":       "b",
	"byte":       "b",
	"complex64":  "c",
	"complex128": "c",
	"float32":    "f",
	"float64":    "f",
	"int":        "n",
	"int8":       "n",
	"int16":      "n",
	"int32":      "n",
	"int64":      "n",
	"rune":       "r",
	"string":     "s",
	"uint":       "n",
	"uint8":      "b",
	"uint16":     "n",
	"uint32":     "n",
	"uint64":     "n",
	"uintptr":    "p",
	"error":      "err",
	"any":        "x",
}

// Suggest returns ranked variable names for a value of the named type with dims
// array dimensions. Names in excluded, keywords and predeclared identifiers are never returned.
// The result is never empty.
func Suggest(typeName string, dims int, excluded map[string]struct{}) []string {
	var (
		names []string
		seen  = make(map[string]struct{})
	)

	add := func(name string) {
		if _, ok := seen[name]; ok || !Usable(name, excluded) {
			return
		}

		seen[name] = struct{}{}
		names = append(names, name)
	}

	derived := candidates(typeName, dims)
	for _, name := range derived {
		add(name)
	}

	if len(names) > 0 {
		return names
	}

	// everything collides: number the best candidate
	if name, ok := numbered(derived[0], excluded); ok {
		return []string{name}
	}

	return []string{"v_"}
}

// candidates returns the unfiltered names derived from typeName, followed by the fallbacks.
func candidates(typeName string, dims int) []string {
	var names []string

	if _, base, ok := strings.Cut(typeName, "."); ok {
		typeName = base
	}

	if abbrev, ok := basicAbbrev[typeName]; ok {
		if dims > 0 {
			names = append(names, plural(typeName))
		} else {
			names = append(names, abbrev)
		}
	} else if words := splitWords(typeName); len(words) > 0 {
		for i := range words {
			name := lowerCamel(words[i:])
			if dims > 0 {
				name = plural(name)
			}

			names = append(names, name)
		}
	}

	return append(names, fallback[:]...)
}

// numbered finds the first unused numbered variant of name.
func numbered(name string, excluded map[string]struct{}) (string, bool) {
	const maxTries = 99

	for c := 2; c < maxTries+2; c++ {
		if n := name + strconv.Itoa(c); Usable(n, excluded) {
			return n, true
		}
	}

	return "", false
}

// Usable reports whether name is a valid variable name that neither is in excluded nor
// shadows a predeclared identifier.
func Usable(name string, excluded map[string]struct{}) bool {
	if !token.IsIdentifier(name) || name == "_" {
		return false
	}

	if types.Universe.Lookup(name) != nil {
		return false
	}

	_, ok := excluded[name]

	return !ok
}

// TypeName returns the name of the element type t and the number of array or slice
// dimensions around it. Pointers are looked through, unnamed types have no name.
func TypeName(t types.Type) (name string, dims int) {
	for t != nil {
		switch u := types.Unalias(t).(type) {
		case *types.Slice:
			t = u.Elem()
			dims++

		case *types.Array:
			t = u.Elem()
			dims++

		case *types.Pointer:
			t = u.Elem()

		case *types.Named:
			return u.Obj().Name(), dims

		case *types.TypeParam:
			return u.Obj().Name(), dims

		case *types.Basic:
			return u.Name(), dims

		default:
			return "", dims
		}
	}

	return "", dims
}

// splitWords splits a mixed caps name into words, keeping acronyms together:
// "HTTPServer" is "HTTP", "Server".
func splitWords(name string) []string {
	var (
		words []string
		start int
		runes = []rune(name)
	)

	for i := 1; i < len(runes); i++ {
		prev, cur := runes[i-1], runes[i]

		switch {
		case cur == '_':
			if start < i {
				words = append(words, string(runes[start:i]))
			}

			start = i + 1

		case unicode.IsLower(prev) && unicode.IsUpper(cur),
			unicode.IsUpper(prev) && unicode.IsUpper(cur) && i+1 < len(runes) && unicode.IsLower(runes[i+1]):
			if start < i {
				words = append(words, string(runes[start:i]))
			}

			start = i
		}
	}

	if start < len(runes) {
		words = append(words, string(runes[start:]))
	}

	return words
}

// lowerCamel joins words with a lower case first word.
func lowerCamel(words []string) string {
	var b strings.Builder

	for i, w := range words {
		if i == 0 {
			b.WriteString(lowerFirst(w))

			continue
		}

		b.WriteString(w)
	}

	return b.String()
}

// lowerFirst lower cases a word, or the whole word when it is an acronym.
func lowerFirst(w string) string {
	if strings.ToUpper(w) == w {
		return strings.ToLower(w)
	}

	r, size := utf8.DecodeRuneInString(w)

	return string(unicode.ToLower(r)) + w[size:]
}

// plural returns a simple English plural of name.
func plural(name string) string {
	switch {
	case strings.HasSuffix(name, "s"), strings.HasSuffix(name, "x"),
		strings.HasSuffix(name, "sh"), strings.HasSuffix(name, "ch"):
		return name + "es"

	case strings.HasSuffix(name, "y") && len(name) > 1 && !strings.ContainsRune("aeiou", rune(name[len(name)-2])):
		return name[:len(name)-1] + "ies"

	default:
		return name + "s"
	}
}
