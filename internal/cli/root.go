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

// Package cli implements the quickassist command line.
package cli

import (
	"context"
	"io"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// app is the state shared by all subcommands.
type app struct {
	viper  *viper.Viper
	config Config
	logger *slog.Logger
}

// NewCommand returns the quickassist root command. Diagnostics are logged to stderr.
func NewCommand(stderr io.Writer) *cobra.Command {
	a := &app{viper: viper.New()}

	root := &cobra.Command{
		Use:   "quickassist",
		Short: "Quick assists for Go source code",
		Long: `quickassist analyzes Go source locations and prints the edits of quick assists.

Configuration is read from flags, QUICKASSIST_* environment variables and
.quickassist.yaml in the working directory.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(a.viper, cmd.Flags())
			if err != nil {
				return err
			}

			level := slog.LevelInfo
			if cfg.Verbose {
				level = slog.LevelDebug
			}

			a.config = cfg
			a.logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
			a.logger.LogAttrs(cmd.Context(), slog.LevelDebug, "Configuration", slog.Any("config", cfg))

			return nil
		},
	}

	root.SetErrPrefix("quickassist:")
	registerConfigFlags(root.PersistentFlags())

	root.AddCommand(a.surroundCommand(), a.convertCommand())

	return root
}

// Execute runs the root command with args.
func Execute(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	root := NewCommand(stderr)
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	return root.ExecuteContext(ctx)
}
