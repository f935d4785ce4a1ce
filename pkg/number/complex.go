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

package number

import (
	"math"
	"strconv"
	"strings"

	"github.com/walteh/solid/pkg/arith"
	"gitlab.com/tozd/go/errors"
)

var _ arith.Arithmeticable[Complex] = Complex{}

// 🌀 Complex is an immutable complex number with float64 parts
type Complex struct {
	re float64
	im float64
}

// 🏭 NewComplex creates real + imaginary·i
func NewComplex(real, imaginary float64) Complex {
	return Complex{re: real, im: imaginary}
}

// ParseComplex reads the forms accepted by strconv.ParseComplex ("3+4i", "-2i", "5")
func ParseComplex(s string) (Complex, error) {
	c, err := strconv.ParseComplex(strings.TrimSpace(s), 128)
	if err != nil {
		return Complex{}, errors.Errorf("parsing complex %q: %w", s, err)
	}
	return NewComplex(real(c), imag(c)), nil
}

// Real returns the real part
func (c Complex) Real() float64 {
	return c.re
}

// Imaginary returns the imaginary part
func (c Complex) Imaginary() float64 {
	return c.im
}

// Complex128 converts to the builtin complex type
func (c Complex) Complex128() complex128 {
	return complex(c.re, c.im)
}

func (c Complex) Add(other Complex) Complex {
	return Complex{re: c.re + other.re, im: c.im + other.im}
}

func (c Complex) Subtract(other Complex) Complex {
	return Complex{re: c.re - other.re, im: c.im - other.im}
}

// Multiply computes (a+bi)(c+di) = (ac-bd) + (ad+bc)i
func (c Complex) Multiply(other Complex) Complex {
	return Complex{
		re: c.re*other.re - c.im*other.im,
		im: c.re*other.im + c.im*other.re,
	}
}

// Divide computes (a+bi)/(c+di) with Smith's scaling, so tiny or huge
// divisors neither underflow to zero nor overflow to Inf in c²+d². Only the
// exact zero divisor is rejected.
func (c Complex) Divide(other Complex) (Complex, error) {
	if other.re == 0 && other.im == 0 {
		return Complex{}, errors.Errorf("dividing %s by %s: %w", c, other, arith.ErrDivisionByZero)
	}

	if math.Abs(other.re) >= math.Abs(other.im) {
		ratio := other.im / other.re
		denominator := other.re + other.im*ratio
		return Complex{
			re: (c.re + c.im*ratio) / denominator,
			im: (c.im - c.re*ratio) / denominator,
		}, nil
	}

	ratio := other.re / other.im
	denominator := other.re*ratio + other.im
	return Complex{
		re: (c.re*ratio + c.im) / denominator,
		im: (c.im*ratio - c.re) / denominator,
	}, nil
}

// String renders "0", "R", "Ii", "R+Ii" or "R-Ii"
func (c Complex) String() string {
	switch {
	case c.re == 0 && c.im == 0:
		return "0"
	case c.im == 0:
		return formatFloat(c.re)
	case c.re == 0:
		return formatFloat(c.im) + "i"
	case c.im > 0:
		return formatFloat(c.re) + "+" + formatFloat(c.im) + "i"
	default:
		// the minus sign comes from the imaginary part itself
		return formatFloat(c.re) + formatFloat(c.im) + "i"
	}
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
