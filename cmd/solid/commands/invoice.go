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
	"strings"

	"github.com/spf13/cobra"
	"github.com/walteh/solid/cmd/solid/opts"
	"github.com/walteh/solid/pkg/invoice"
	"github.com/walteh/solid/pkg/log"
)

// NewInvoiceCmd creates the invoice command
func NewInvoiceCmd(o *opts.RootOpts) *cobra.Command {
	var (
		format string
		client string
		total  float64
		extra  string
	)

	cmd := &cobra.Command{
		Use:   "invoice",
		Short: "Render invoices from the config file, or one from flags",
		Long: fmt.Sprintf(`Invoice renders every invoice declared in the config file.
When --format is given a single invoice is built from flags instead.
Known formats: %s`, strings.Join(invoice.Formats(), ", ")),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := cmd.OutOrStdout()

			var gens []invoice.Generator
			if cmd.Flags().Changed("format") {
				gen, err := invoice.New(invoice.Format(format), client, total, extra)
				if err != nil {
					return err
				}
				gens = append(gens, gen)
			} else {
				cfg, err := o.Config(ctx)
				if err != nil {
					return err
				}
				gens, err = cfg.Generators()
				if err != nil {
					return err
				}
			}

			if len(gens) == 0 {
				log.FromContext(ctx).Warning("no invoices configured")
				return nil
			}

			for _, gen := range gens {
				if _, err := fmt.Fprintln(out, gen.Generate()); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "", "invoice format ("+strings.Join(invoice.Formats(), ", ")+")")
	cmd.Flags().StringVar(&client, "client", "", "client name")
	cmd.Flags().Float64Var(&total, "total", 0, "invoice total")
	cmd.Flags().StringVar(&extra, "extra", "", "pdf metadata or html styles")
	return cmd
}
