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


package commands

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/walteh/solid/cmd/solid/opts"
	"github.com/walteh/solid/pkg/device"
)

// NewDeviceCmd creates the device command
func NewDeviceCmd(o *opts.RootOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "device",
		Short: "Drive a printer, a scanner or a combined device",
	}

	run := func(use, short string, action func(ctx context.Context, cmd *cobra.Command) error) *cobra.Command {
		return &cobra.Command{
			Use:   use,
			Short: short,
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return action(cmd.Context(), cmd)
			},
		}
	}

	cmd.AddCommand(
		run("print", "Print with a plain printer", func(ctx context.Context, cmd *cobra.Command) error {
			return device.NewPrinter(cmd.OutOrStdout()).Print(ctx)
		}),
		run("scan", "Scan with a plain scanner", func(ctx context.Context, cmd *cobra.Command) error {
			return device.NewScanner(cmd.OutOrStdout()).Scan(ctx)
		}),
		run("both", "Print then scan with a combined device", func(ctx context.Context, cmd *cobra.Command) error {
			ps := device.NewPrinterScanner(cmd.OutOrStdout())
			if err := ps.Print(ctx); err != nil {
				return err
			}
			return ps.Scan(ctx)
		}),
	)

	return cmd
}
