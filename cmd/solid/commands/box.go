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
	"github.com/walteh/solid/pkg/box"
	"github.com/walteh/solid/pkg/log"
	"gitlab.com/tozd/go/errors"
)

// NewBoxCmd creates the box command
func NewBoxCmd(o *opts.RootOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "box",
		Short: "Inspect the boxes declared in the config file",
	}

	cmd.AddCommand(newBoxListCmd(o), newBoxFindCmd(o), newBoxMatchCmd(o))
	return cmd
}

func loadBox(ctx context.Context, o *opts.RootOpts, name string) (*box.Box[box.Item], error) {
	cfg, err := o.Config(ctx)
	if err != nil {
		return nil, err
	}
	b, err := cfg.Box(name)
	if err != nil {
		return nil, errors.Errorf("loading box: %w", err)
	}
	return b, nil
}

func newBoxListCmd(o *opts.RootOpts) *cobra.Command {
	var table bool

	cmd := &cobra.Command{
		Use:   "list [BOX...]",
		Short: "List the items in each box (all boxes by default)",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			cfg, err := o.Config(ctx)
			if err != nil {
				return err
			}

			logger := log.FromContext(ctx)

			names := args
			if len(names) == 0 {
				names = cfg.BoxNames()
			}

			for _, name := range names {
				b, err := loadBox(ctx, o, name)
				if err != nil {
					return err
				}

				logger.Header("box " + name)
				if b.Len() == 0 {
					logger.Infof("box %q is empty", name)
					continue
				}

				if table {
					if err := logger.RenderTable(box.Columns, itemRows(b.Items())); err != nil {
						return err
					}
					logger.LogNewline()
					continue
				}

				if err := b.ListItems(ctx, cmd.OutOrStdout()); err != nil {
					return errors.Errorf("listing box %q: %w", name, err)
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&table, "table", "t", false, "render items as a table")
	return cmd
}

func newBoxFindCmd(o *opts.RootOpts) *cobra.Command {
	var (
		name    string
		weight  float64
		fragile bool
		value   float64
	)

	cmd := &cobra.Command{
		Use:   "find BOX",
		Short: "Find items by exactly one attribute",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			var match func(box.Item) bool
			switch {
			case cmd.Flags().Changed("name"):
				match = box.ByName(name)
			case cmd.Flags().Changed("weight"):
				match = box.ByWeight(weight)
			case cmd.Flags().Changed("fragile"):
				match = box.ByFragile(fragile)
			case cmd.Flags().Changed("value"):
				match = box.ByValue(value)
			default:
				return errors.New("one of --name, --weight, --fragile or --value is required")
			}

			b, err := loadBox(ctx, o, args[0])
			if err != nil {
				return err
			}

			logItems(ctx, args[0], b.FindItem(match))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "match items with this name")
	cmd.Flags().Float64Var(&weight, "weight", 0, "match items with this weight")
	cmd.Flags().BoolVar(&fragile, "fragile", false, "match items with this fragility")
	cmd.Flags().Float64Var(&value, "value", 0, "match items with this value")
	cmd.MarkFlagsMutuallyExclusive("name", "weight", "fragile", "value")
	return cmd
}

func newBoxMatchCmd(o *opts.RootOpts) *cobra.Command {
	return &cobra.Command{
		Use:   "match BOX PATTERN",
		Short: "Find items whose name matches a glob pattern",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			b, err := loadBox(ctx, o, args[0])
			if err != nil {
				return err
			}

			found, err := b.MatchName(args[1])
			if err != nil {
				return err
			}

			logItems(ctx, args[0], found)
			return nil
		},
	}
}

func logItems(ctx context.Context, boxName string, items []box.Item) {
	logger := log.FromContext(ctx)
	if len(items) == 0 {
		logger.Warningf("no matching items in box %q", boxName)
		return
	}
	for _, item := range items {
		logger.LogItem(ctx, log.ItemLine{
			Box:     boxName,
			Name:    item.Name,
			Detail:  item.String(),
			Fragile: item.Fragile != nil && *item.Fragile,
		})
	}
}

func itemRows(items []box.Item) [][]string {
	rows := make([][]string, 0, len(items))
	for _, item := range items {
		rows = append(rows, item.Row())
	}
	return rows
}
