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

package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// encode writes v to w in the given format.
//
// YAML output is derived from the JSON encoding, so both formats share field names.
func encode(w io.Writer, format string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding output: %w", err)
	}

	switch format {
	case FormatJSON:
		data = append(data, '\n')
		_, err := w.Write(data)

		return err

	case FormatYAML:
		var doc yaml.Node
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return fmt.Errorf("converting output: %w", err)
		}

		blockStyle(&doc)

		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)

		if err := enc.Encode(&doc); err != nil {
			return fmt.Errorf("encoding output: %w", err)
		}

		return enc.Close()

	default:
		return fmt.Errorf("%w %q", ErrFormat, format)
	}
}

// blockStyle resets the flow and quoting styles of a document parsed from JSON.
func blockStyle(n *yaml.Node) {
	switch n.Kind {
	case yaml.MappingNode, yaml.SequenceNode:
		if len(n.Content) > 0 {
			n.Style = 0
		}

	case yaml.ScalarNode:
		if n.Tag == "!!str" {
			n.Style = 0
		}
	}

	for _, c := range n.Content {
		blockStyle(c)
	}
}
