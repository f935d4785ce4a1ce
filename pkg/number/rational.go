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
	"math/big"
	"strings"

	"github.com/walteh/solid/pkg/arith"
	"gitlab.com/tozd/go/errors"
)

var _ arith.Arithmeticable[Rational] = Rational{}

// ➗ Rational is an immutable fraction kept in lowest terms.
//
// Parts are arbitrary precision, so arithmetic never wraps. Reduction
// divides both parts by the gcd of their magnitudes, so the sign of each
// part is kept as given: NewRational(6, -8) is 3/-4. A zero numerator
// always reduces to 0/1.
type Rational struct {
	num *big.Int // nil means 0
	den *big.Int // nil means 1
}

// 🏭 NewRational creates numerator/denominator reduced to lowest terms
func NewRational(numerator, denominator int64) (Rational, error) {
	return NewRationalBig(big.NewInt(numerator), big.NewInt(denominator))
}

// NewRationalBig is NewRational for arbitrary precision parts; the
// arguments are not retained
func NewRationalBig(numerator, denominator *big.Int) (Rational, error) {
	if denominator.Sign() == 0 {
		return Rational{}, errors.Errorf("creating rational %d/0: %w", numerator, arith.ErrDivisionByZero)
	}
	return normalize(new(big.Int).Set(numerator), new(big.Int).Set(denominator)), nil
}

// MustRational is like NewRational but panics on a zero denominator
func MustRational(numerator, denominator int64) Rational {
	r, err := NewRational(numerator, denominator)
	if err != nil {
		panic(err)
	}
	return r
}

// ParseRational reads "N" or "N/D" with integers of any size
func ParseRational(s string) (Rational, error) {
	numText, denText, hasDen := strings.Cut(strings.TrimSpace(s), "/")

	num, ok := new(big.Int).SetString(strings.TrimSpace(numText), 10)
	if !ok {
		return Rational{}, errors.Errorf("parsing numerator of %q: not an integer", s)
	}

	den := big.NewInt(1)
	if hasDen {
		den, ok = new(big.Int).SetString(strings.TrimSpace(denText), 10)
		if !ok {
			return Rational{}, errors.Errorf("parsing denominator of %q: not an integer", s)
		}
	}

	return NewRationalBig(num, den)
}

// normalize takes ownership of num and den; den must not be zero
func normalize(num, den *big.Int) Rational {
	if num.Sign() == 0 {
		return Rational{num: new(big.Int), den: big.NewInt(1)}
	}
	g := new(big.Int).GCD(nil, nil, new(big.Int).Abs(num), new(big.Int).Abs(den))
	// exact division, so Quo keeps each sign
	return Rational{num: num.Quo(num, g), den: den.Quo(den, g)}
}

func (r Rational) n() *big.Int {
	if r.num == nil {
		return new(big.Int)
	}
	return r.num
}

func (r Rational) d() *big.Int {
	if r.den == nil {
		return big.NewInt(1)
	}
	return r.den
}

// Numerator returns a copy of the reduced numerator
func (r Rational) Numerator() *big.Int {
	return new(big.Int).Set(r.n())
}

// Denominator returns a copy of the reduced denominator; the zero Rational reports 1
func (r Rational) Denominator() *big.Int {
	return new(big.Int).Set(r.d())
}

func mul(a, b *big.Int) *big.Int {
	return new(big.Int).Mul(a, b)
}

func (r Rational) Add(other Rational) Rational {
	return normalize(
		new(big.Int).Add(mul(r.n(), other.d()), mul(other.n(), r.d())),
		mul(r.d(), other.d()),
	)
}

func (r Rational) Subtract(other Rational) Rational {
	return normalize(
		new(big.Int).Sub(mul(r.n(), other.d()), mul(other.n(), r.d())),
		mul(r.d(), other.d()),
	)
}

func (r Rational) Multiply(other Rational) Rational {
	return normalize(mul(r.n(), other.n()), mul(r.d(), other.d()))
}

// Divide multiplies by the reciprocal of other; a zero other is rejected
func (r Rational) Divide(other Rational) (Rational, error) {
	if other.IsZero() {
		return Rational{}, errors.Errorf("dividing %s by %s: %w", r, other, arith.ErrDivisionByZero)
	}
	return normalize(mul(r.n(), other.d()), mul(r.d(), other.n())), nil
}

// Equal reports whether both values have the same reduced parts
func (r Rational) Equal(other Rational) bool {
	return r.n().Cmp(other.n()) == 0 && r.d().Cmp(other.d()) == 0
}

// IsZero reports whether the value is 0
func (r Rational) IsZero() bool {
	return r.n().Sign() == 0
}

// Float64 returns the nearest float64
func (r Rational) Float64() float64 {
	f, _ := new(big.Rat).SetFrac(r.n(), r.d()).Float64()
	return f
}

// String renders "N" for whole numbers and "N/D" otherwise
func (r Rational) String() string {
	if r.d().IsInt64() && r.d().Int64() == 1 {
		return r.n().String()
	}
	return r.n().String() + "/" + r.d().String()
}
