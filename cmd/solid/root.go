// Copyright 2025 walteh LLC
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


package main

import (
	"context"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/solid/cmd/solid/commands"
	"github.com/walteh/solid/cmd/solid/opts"
	"github.com/walteh/solid/pkg/log"
)

// addRootFlags adds shared flags to the root command
func addRootFlags(cmd *cobra.Command, o *opts.RootOpts) {
	cmd.PersistentFlags().StringVarP(&o.ConfigFile, "config", "c", ".solid.yaml", "config file path")
	cmd.PersistentFlags().BoolVarP(&o.Debug, "debug", "d", false, "enable debug logging")
}

// setupLogging configures zerolog based on flags and returns a context carrying it
func setupLogging(ctx context.Context, debug bool) context.Context {
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}
	logger := zerolog.New(zerolog.NewConsoleWriter(func(w *zerolog.ConsoleWriter) {
		w.Out = os.Stderr
	})).Level(level).With().Timestamp().Logger()
	return logger.WithContext(ctx)
}

// newRootCmd builds the command tree writing user output to out
func newRootCmd(out io.Writer) (*cobra.Command, *opts.RootOpts) {
	o := &opts.RootOpts{}

	rootCmd := &cobra.Command{
		Use:   "solid",
		Short: "A workbench for SOLID design exercises",
		Long: `solid exercises small components built around SOLID principles:
exact rational and complex arithmetic, a generic calculator, boxes of
household items, invoice generators, notification services, a file
handler and printer/scanner devices.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := zerolog.InfoLevel
			if o.Debug {
				level = zerolog.DebugLevel
			}
			ctx := setupLogging(cmd.Context(), o.Debug)
			o.Logger = log.New(cmd.OutOrStdout(), level)
			cmd.SetContext(log.NewContext(ctx, o.Logger))
		},
	}
	rootCmd.SetOut(out)

	addRootFlags(rootCmd, o)

	rootCmd.AddCommand(
		commands.NewRationalCmd(o),
		commands.NewComplexCmd(o),
		commands.NewCalcCmd(o),
		commands.NewBoxCmd(o),
		commands.NewInvoiceCmd(o),
		commands.NewNotifyCmd(o),
		commands.NewFileCmd(o),
		commands.NewDeviceCmd(o),
		newVersionCmd(),
	)

	return rootCmd, o
}
