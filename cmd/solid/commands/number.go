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
	"strconv"

	"github.com/spf13/cobra"
	"github.com/walteh/solid/cmd/solid/opts"
	"github.com/walteh/solid/pkg/calculator"
	"github.com/walteh/solid/pkg/log"
	"github.com/walteh/solid/pkg/number"
	"gitlab.com/tozd/go/errors"
)

// NewRationalCmd creates the rational arithmetic command
func NewRationalCmd(o *opts.RootOpts) *cobra.Command {
	return newValueCmd(o, "rational", "Exact fraction arithmetic (values like 1/2)", number.ParseRational, number.Rational{})
}

// NewComplexCmd creates the complex arithmetic command
func NewComplexCmd(o *opts.RootOpts) *cobra.Command {
	return newValueCmd(o, "complex", "Complex number arithmetic (values like 3+4i)", number.ParseComplex, number.Complex{})
}

// NewCalcCmd creates the float calculator command
func NewCalcCmd(o *opts.RootOpts) *cobra.Command {
	var calc calculator.Calculator[float64] = calculator.NewBasicCalculator[float64]()

	cmd := &cobra.Command{
		Use:   "calc",
		Short: "Two-operand calculator over floating-point numbers",
	}

	for _, op := range binaryOps {
		cmd.AddCommand(&cobra.Command{
			Use:   op.use + " A B",
			Short: op.short,
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				vals, err := parseAll(parseFloat, args)
				if err != nil {
					return err
				}

				res, err := calculate(calc, op.use, vals[0], vals[1])
				r := log.Result{Kind: "calc", Symbol: op.symbol, Operands: args, Err: err}
				if err == nil {
					r.Value = strconv.FormatFloat(res, 'f', -1, 64)
				}
				return report(cmd.Context(), r)
			},
		})
	}

	return cmd
}

func parseFloat(s string) (float64, error) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, errors.Errorf("parsing number %q: %w", s, err)
	}
	return f, nil
}

func calculate[T any](calc calculator.Calculator[T], op string, a, b T) (T, error) {
	switch op {
	case "add":
		return calc.Add(a, b), nil
	case "sub":
		return calc.Subtract(a, b), nil
	case "mul":
		return calc.Multiply(a, b), nil
	case "div":
		return calc.Divide(a, b)
	}
	var zero T
	return zero, errors.Errorf("unknown operation %q", op)
}
