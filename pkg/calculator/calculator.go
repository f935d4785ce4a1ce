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

// Package calculator holds a basic two-operand calculator.
package calculator

import (
	"github.com/walteh/solid/pkg/arith"
	"gitlab.com/tozd/go/errors"
	"golang.org/x/exp/constraints"
)

// 🔢 Number is any builtin integer or floating-point type
type Number interface {
	constraints.Integer | constraints.Float
}

// 🧮 Calculator performs binary arithmetic on T
type Calculator[T any] interface {
	Add(a, b T) T
	Subtract(a, b T) T
	Multiply(a, b T) T
	Divide(a, b T) (T, error)
}

var _ Calculator[float64] = BasicCalculator[float64]{}

// BasicCalculator implements Calculator for builtin numbers
type BasicCalculator[T Number] struct{}

// 🏭 NewBasicCalculator creates a calculator for T
func NewBasicCalculator[T Number]() BasicCalculator[T] {
	return BasicCalculator[T]{}
}

func (BasicCalculator[T]) Add(a, b T) T {
	return a + b
}

func (BasicCalculator[T]) Subtract(a, b T) T {
	return a - b
}

func (BasicCalculator[T]) Multiply(a, b T) T {
	return a * b
}

// Divide rejects a zero divisor for both integer and float T
func (BasicCalculator[T]) Divide(a, b T) (T, error) {
	if b == 0 {
		return 0, errors.Errorf("dividing %v by zero: %w", a, arith.ErrDivisionByZero)
	}
	return a / b, nil
}
