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

package cli_test

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	. "fillmore-labs.com/quickassist/internal/cli"
	"fillmore-labs.com/quickassist/internal/selection"
)

const demoSrc = `package main

import "os"

func sum(s []int) int {
	total := 0
	for i := 0; i < len(s); i++ {
		total += s[i]
	}

	return total
}

func write(name string) {
	f, _ := os.Create(name)
	f.WriteString("x")
	f.Close()
}

func main() {}
`

// demo writes a module with a single file and returns the file name.
func demo(tb testing.TB) string {
	tb.Helper()

	dir := tb.TempDir()

	require.NoError(tb, os.WriteFile(filepath.Join(dir, "go.mod"), []byte("module example.com/demo\n\ngo 1.24\n"), 0o600))

	name := filepath.Join(dir, "main.go")
	require.NoError(tb, os.WriteFile(name, []byte(demoSrc), 0o600))

	return name
}

func execute(tb testing.TB, args ...string) (string, error) {
	tb.Helper()

	var stdout, stderr bytes.Buffer

	err := Execute(context.Background(), args, &stdout, &stderr)

	return stdout.String(), err
}

func TestConvert(t *testing.T) {
	t.Parallel()

	name := demo(t)

	out, err := execute(t, "convert", "--format=json", name+":7")
	require.NoError(t, err)

	var result ConvertResult
	require.NoError(t, json.Unmarshal([]byte(out), &result))

	assert.Equal(t, "ok", result.Verdict)
	assert.Equal(t, 7, result.Line)
	assert.Equal(t, "for _, n := range s {\n\t\ttotal += n\n\t}", result.Text)

	require.Len(t, result.LSP.Edit.Changes, 1)
	require.Len(t, result.LSP.Linked, 1)
	assert.Len(t, result.LSP.Linked[0].Ranges, 2)

	src, err := os.ReadFile(name)
	require.NoError(t, err)
	assert.Equal(t, demoSrc, string(src), "file must not change without --write")
}

func TestConvertWrite(t *testing.T) {
	t.Parallel()

	name := demo(t)

	_, err := execute(t, "convert", "--write", "--name=value", name+":7")
	require.NoError(t, err)

	src, err := os.ReadFile(name)
	require.NoError(t, err)
	assert.Contains(t, string(src), "\tfor _, value := range s {\n\t\ttotal += value\n\t}\n")
}

func TestConvertYAML(t *testing.T) {
	t.Parallel()

	name := demo(t)

	out, err := execute(t, "convert", name+":7")
	require.NoError(t, err)

	var result map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(out), &result))

	assert.Equal(t, "ok", result["verdict"])
	assert.Equal(t, "Convert to range loop", result["label"])
	assert.Equal(t, "for _, n := range s {\n\t\ttotal += n\n\t}", result["text"])
}

func TestConvertRejected(t *testing.T) {
	t.Parallel()

	name := demo(t)

	tests := []struct {
		name string
		line string
		want error
	}{
		{"no loop", ":6", ErrNoLoop},
		{"outside", ":99", ErrLocation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := execute(t, "convert", name+tt.line)
			require.ErrorIs(t, err, tt.want)
		})
	}
}

func TestSurround(t *testing.T) {
	t.Parallel()

	name := demo(t)

	out, err := execute(t, "surround", "-f", "json", name+":16-17")
	require.NoError(t, err)

	var result SurroundResult
	require.NoError(t, json.Unmarshal([]byte(out), &result))

	assert.Equal(t, "example.com/demo.write", result.Function)
	assert.Equal(t, 2, result.Statements)
	assert.Equal(t, []string{"error"}, result.Errors)
	assert.Len(t, result.Sites, 2)
	assert.Empty(t, result.Captured)
}

func TestSurroundRejected(t *testing.T) {
	t.Parallel()

	name := demo(t)

	tests := []struct {
		name string
		sel  string
		want error
	}{
		{"no errors", ":6-6", selection.ErrNoUncaughtErrors},
		{"return", ":11-11", selection.ErrCannotWrapFrameStatement},
		{"expression", ":16:2-16:15", selection.ErrNonStatementSelection},
		{"malformed", ":16", ErrLocation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := execute(t, "surround", name+tt.sel)
			require.ErrorIs(t, err, tt.want)
		})
	}
}

func TestFormat(t *testing.T) {
	t.Parallel()

	name := demo(t)

	_, err := execute(t, "convert", "--format=xml", name+":7")
	require.ErrorIs(t, err, ErrFormat)
}
