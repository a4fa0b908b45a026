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

package gclplugin

import forrange "fillmore-labs.com/quickassist/analyzer"

// Settings represents the configuration options for an instance of the [Plugin].
type Settings struct {
	// Explain reports counting loops that can't be converted.
	Explain *bool `json:"explain,omitzero"`
	// Suggest attaches conversions as suggested fixes.
	Suggest *bool `json:"suggest,omitzero"`
	// Name is the preferred name of range variables.
	Name *string `json:"name,omitzero"`
}

// Options converts [Settings] into a list of [forrange.Option] for the forrange analyzer.
// It processes settings and applies them only when explicitly set (non-nil).
func (s Settings) Options() []forrange.Option {
	var opts []forrange.Option

	opts = appendOption(opts, s.Explain, forrange.WithExplain)
	opts = appendOption(opts, s.Suggest, forrange.WithSuggestFixes)
	opts = appendOption(opts, s.Name, forrange.WithName)

	return opts
}

// appendOption appends a non-nil setting to a [forrange.Option] list.
func appendOption[T any](opts []forrange.Option, value *T, constructor func(T) forrange.Option) []forrange.Option {
	if value == nil {
		return opts
	}

	return append(opts, constructor(*value))
}
