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
	"fmt"

	"github.com/spf13/cobra"
	"github.com/walteh/solid/cmd/solid/opts"
	"github.com/walteh/solid/pkg/arith"
	"github.com/walteh/solid/pkg/log"
	"gitlab.com/tozd/go/errors"
)

// value is an arithmetic type that can be shown to the user
type value[T any] interface {
	arith.Arithmeticable[T]
	fmt.Stringer
}

// 🧮 binaryOp is one two-operand subcommand
type binaryOp struct {
	use    string
	short  string
	symbol string
}

var binaryOps = []binaryOp{
	{use: "add", short: "Add two values", symbol: "+"},
	{use: "sub", short: "Subtract the second value from the first", symbol: "-"},
	{use: "mul", short: "Multiply two values", symbol: "*"},
	{use: "div", short: "Divide the first value by the second", symbol: "/"},
}

func apply[T value[T]](op string, a, b T) (T, error) {
	switch op {
	case "add":
		return a.Add(b), nil
	case "sub":
		return a.Subtract(b), nil
	case "mul":
		return a.Multiply(b), nil
	case "div":
		return a.Divide(b)
	}
	var zero T
	return zero, errors.Errorf("unknown operation %q", op)
}

// sum folds every element of the collection with Add, starting from zero
func sum[T value[T]](zero T, c *arith.Collection[T]) (T, error) {
	total := zero
	for i := 0; i < c.NumberOfArithmeticables(); i++ {
		item, err := c.GetArithmeticable(i)
		if err != nil {
			return zero, err
		}
		total = total.Add(item)
	}
	return total, nil
}

func parseAll[T any](parse func(string) (T, error), args []string) ([]T, error) {
	out := make([]T, 0, len(args))
	for _, a := range args {
		v, err := parse(a)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

func report(ctx context.Context, r log.Result) error {
	log.FromContext(ctx).LogResult(ctx, r)
	return r.Err
}

// newValueCmd builds the add/sub/mul/div/sum tree for one value kind
func newValueCmd[T value[T]](o *opts.RootOpts, kind, short string, parse func(string) (T, error), zero T) *cobra.Command {
	cmd := &cobra.Command{
		Use:   kind,
		Short: short,
	}

	for _, op := range binaryOps {
		cmd.AddCommand(&cobra.Command{
			Use:   op.use + " A B",
			Short: op.short,
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				vals, err := parseAll(parse, args)
				if err != nil {
					return err
				}

				res, err := apply(op.use, vals[0], vals[1])
				r := log.Result{Kind: kind, Symbol: op.symbol, Operands: args, Err: err}
				if err == nil {
					r.Value = res.String()
				}
				return report(cmd.Context(), r)
			},
		})
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "sum VALUE...",
		Short: "Add every value through a collection",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			vals, err := parseAll(parse, args)
			if err != nil {
				return err
			}

			total, err := sum(zero, arith.NewCollection(vals...))
			r := log.Result{Kind: kind, Symbol: "+", Operands: args, Err: err}
			if err == nil {
				r.Value = total.String()
			}
			return report(cmd.Context(), r)
		},
	})

	return cmd
}
