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
	"fmt"

	"github.com/spf13/cobra"
	"github.com/walteh/solid/cmd/solid/opts"
	"github.com/walteh/solid/pkg/fileio"
	"github.com/walteh/solid/pkg/log"
)

// NewFileCmd creates the file command
func NewFileCmd(o *opts.RootOpts) *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "file",
		Short: "Read files and append lines to them",
	}
	cmd.PersistentFlags().StringVar(&dir, "dir", "", "resolve relative paths against this directory")

	cmd.AddCommand(
		&cobra.Command{
			Use:   "read PATH",
			Short: "Print a file",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				content, err := fileio.NewOSHandler(dir).ReadFile(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				_, err = fmt.Fprint(cmd.OutOrStdout(), content)
				return err
			},
		},
		&cobra.Command{
			Use:   "append PATH DATA",
			Short: "Append a line to a file, creating it if needed",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				if err := fileio.NewOSHandler(dir).AppendToFile(cmd.Context(), args[0], args[1]); err != nil {
					return err
				}
				log.FromContext(cmd.Context()).Successf("appended to %s", args[0])
				return nil
			},
		},
	)

	return cmd
}
