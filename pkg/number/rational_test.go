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
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walteh/solid/pkg/arith"
)

func TestNewRational_Normalizes(t *testing.T) {
	tests := []struct {
		name    string
		num     int64
		den     int64
		wantNum int64
		wantDen int64
		want    string
	}{
		{name: "already_reduced", num: 1, den: 3, wantNum: 1, wantDen: 3, want: "1/3"},
		{name: "half", num: 3, den: 6, wantNum: 1, wantDen: 2, want: "1/2"},
		{name: "whole_number", num: 12, den: 4, wantNum: 3, wantDen: 1, want: "3"},
		{name: "negative_numerator", num: -6, den: 8, wantNum: -3, wantDen: 4, want: "-3/4"},
		{name: "negative_denominator_kept", num: 6, den: -8, wantNum: 3, wantDen: -4, want: "3/-4"},
		{name: "both_negative_kept", num: -6, den: -8, wantNum: -3, wantDen: -4, want: "-3/-4"},
		{name: "zero_numerator", num: 0, den: 5, wantNum: 0, wantDen: 1, want: "0"},
		{name: "zero_numerator_negative_denominator", num: 0, den: -5, wantNum: 0, wantDen: 1, want: "0"},
		{name: "coprime_large", num: 35, den: 64, wantNum: 35, wantDen: 64, want: "35/64"},
		{name: "min_int64_numerator", num: math.MinInt64, den: 6, wantNum: math.MinInt64 / 2, wantDen: 3, want: "-4611686018427387904/3"},
		{name: "min_int64_denominator", num: 6, den: math.MinInt64, wantNum: 3, wantDen: math.MinInt64 / 2, want: "3/-4611686018427387904"},
		{name: "min_int64_both", num: math.MinInt64, den: math.MinInt64, wantNum: -1, wantDen: -1, want: "-1/-1"},
		{name: "max_int64", num: math.MaxInt64, den: math.MaxInt64, wantNum: 1, wantDen: 1, want: "1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := NewRational(tt.num, tt.den)
			require.NoError(t, err)
			assert.Equal(t, big.NewInt(tt.wantNum), r.Numerator(), "numerator")
			assert.Equal(t, big.NewInt(tt.wantDen), r.Denominator(), "denominator")
			assert.Equal(t, tt.want, r.String(), "string form")
			assertReduced(t, r, tt.num, tt.den)
		})
	}
}

func TestNewRational_ZeroDenominator(t *testing.T) {
	_, err := NewRational(1, 0)
	require.Error(t, err)
	assert.ErrorIs(t, err, arith.ErrDivisionByZero)

	assert.Panics(t, func() { MustRational(1, 0) }, "MustRational should panic on zero denominator")
}

func TestRational_Arithmetic(t *testing.T) {
	third := MustRational(1, 3)
	twoThirds := MustRational(2, 3)
	sevenEighths := MustRational(7, 8)

	tests := []struct {
		name string
		got  func() (Rational, error)
		want string
	}{
		{name: "add", got: func() (Rational, error) { return third.Add(twoThirds), nil }, want: "1"},
		{name: "subtract", got: func() (Rational, error) { return third.Subtract(twoThirds), nil }, want: "-1/3"},
		{name: "multiply", got: func() (Rational, error) { return third.Multiply(twoThirds), nil }, want: "2/9"},
		{name: "divide", got: func() (Rational, error) { return third.Divide(sevenEighths) }, want: "8/21"},
		{name: "add_different_denominators", got: func() (Rational, error) {
			return MustRational(1, 2).Add(MustRational(1, 3)), nil
		}, want: "5/6"},
		{name: "subtract_to_zero", got: func() (Rational, error) { return third.Subtract(third), nil }, want: "0"},
		{name: "multiply_by_zero", got: func() (Rational, error) {
			return third.Multiply(MustRational(0, 9)), nil
		}, want: "0"},
		{name: "divide_by_negative_keeps_sign_on_denominator", got: func() (Rational, error) {
			return MustRational(1, 2).Divide(MustRational(-1, 3))
		}, want: "3/-2"},
		{name: "zero_value_acts_as_zero", got: func() (Rational, error) { return Rational{}.Add(third), nil }, want: "1/3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.got()
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestRational_DivideByZeroNumerator(t *testing.T) {
	_, err := MustRational(1, 2).Divide(MustRational(0, 1))
	require.Error(t, err)
	assert.ErrorIs(t, err, arith.ErrDivisionByZero)
	assert.Contains(t, err.Error(), "dividing 1/2 by 0")
}

func TestRational_OperandsAreNotMutated(t *testing.T) {
	a := MustRational(1, 3)
	b := MustRational(2, 3)

	_ = a.Add(b)
	_ = a.Subtract(b)
	_ = a.Multiply(b)
	_, err := a.Divide(b)
	require.NoError(t, err)

	assert.Equal(t, "1/3", a.String())
	assert.Equal(t, "2/3", b.String())
}

func TestRational_StringIsStable(t *testing.T) {
	r := MustRational(-4, 6)
	assert.Equal(t, r.String(), r.String(), "formatting twice should match")
	assert.Equal(t, "-2/3", r.String())
}

func TestRational_Float64(t *testing.T) {
	assert.InDelta(t, 0.75, MustRational(3, 4).Float64(), 1e-12)
	assert.InDelta(t, 0.0, Rational{}.Float64(), 1e-12)
	assert.True(t, Rational{}.IsZero())
	assert.False(t, MustRational(1, 9).IsZero())
}

func TestParseRational(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		want      string
		wantError string
	}{
		{name: "fraction", input: "3/6", want: "1/2"},
		{name: "whole", input: "-7", want: "-7"},
		{name: "spaces", input: " 2 / 4 ", want: "1/2"},
		{name: "zero_denominator", input: "1/0", wantError: "division by zero"},
		{name: "bad_numerator", input: "x/2", wantError: "parsing numerator"},
		{name: "bad_denominator", input: "1/y", wantError: "parsing denominator"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseRational(tt.input)
			if tt.wantError != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantError)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestRational_InCollection(t *testing.T) {
	c := arith.NewCollection[Rational]()
	r := MustRational(3, 6)
	c.AddArithmeticable(r)

	require.Equal(t, 1, c.NumberOfArithmeticables())
	got, err := c.GetArithmeticable(0)
	require.NoError(t, err)
	assert.Equal(t, r, got, "collection should return the appended value")

	_, err = arith.NewCollection[Rational]().GetArithmeticable(0)
	assert.ErrorIs(t, err, arith.ErrIndexOutOfRange)
}

// assertReduced checks that r equals n/d, its parts are coprime and each
// part carries the sign it was given
func assertReduced(t *testing.T, r Rational, n, d int64) {
	t.Helper()

	num, den := r.Numerator(), r.Denominator()
	require.NotZero(t, den.Sign(), "denominator must never be zero")

	g := new(big.Int).GCD(nil, nil, new(big.Int).Abs(num), new(big.Int).Abs(den))
	assert.Equal(t, int64(1), g.Int64(), "parts should be coprime: %s", r)

	// num/den == n/d  <=>  num*d == n*den
	lhs := new(big.Int).Mul(num, big.NewInt(d))
	rhs := new(big.Int).Mul(big.NewInt(n), den)
	assert.Zero(t, lhs.Cmp(rhs), "%s should equal %d/%d", r, n, d)

	if n == 0 {
		assert.Equal(t, "0", r.String())
		return
	}
	assert.Equal(t, n < 0, num.Sign() < 0, "numerator sign of %s", r)
	assert.Equal(t, d < 0, den.Sign() < 0, "denominator sign of %s", r)
}

func FuzzNewRational(f *testing.F) {
	f.Add(int64(1), int64(3))
	f.Add(int64(6), int64(-8))
	f.Add(int64(0), int64(-5))
	f.Add(int64(math.MinInt64), int64(6))
	f.Add(int64(math.MinInt64), int64(-1))
	f.Add(int64(math.MaxInt64), int64(math.MinInt64))

	f.Fuzz(func(t *testing.T, n, d int64) {
		r, err := NewRational(n, d)
		if d == 0 {
			require.ErrorIs(t, err, arith.ErrDivisionByZero)
			return
		}
		require.NoError(t, err)
		assertReduced(t, r, n, d)
	})
}

func TestRational_LargeOperands(t *testing.T) {
	twoPow32 := int64(1) << 32
	small := MustRational(1, twoPow32)

	tests := []struct {
		name string
		got  func() (Rational, error)
		want string
	}{
		{name: "multiply_past_int64", got: func() (Rational, error) {
			return small.Multiply(small), nil
		}, want: "1/18446744073709551616"},
		{name: "divide_past_int64", got: func() (Rational, error) {
			return small.Divide(MustRational(twoPow32, 1))
		}, want: "1/18446744073709551616"},
		{name: "add_coprime_denominators", got: func() (Rational, error) {
			return small.Add(MustRational(1, twoPow32+1)), nil
		}, want: "8589934593/18446744078004518912"},
		{name: "subtract_extremes", got: func() (Rational, error) {
			return MustRational(math.MinInt64, 1).Subtract(MustRational(math.MaxInt64, 1)), nil
		}, want: "-18446744073709551615"},
		{name: "parse_beyond_int64", got: func() (Rational, error) {
			return ParseRational("36893488147419103232/18446744073709551616")
		}, want: "2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.got()
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
			assert.NotZero(t, got.Denominator().Sign(), "denominator must never be zero")
		})
	}
}

func TestRational_Equal(t *testing.T) {
	assert.True(t, MustRational(2, 4).Equal(MustRational(1, 2)))
	assert.True(t, Rational{}.Equal(MustRational(0, 7)))
	assert.False(t, MustRational(1, 2).Equal(MustRational(-1, -2)), "signs are part of the value's form")
	assert.False(t, MustRational(1, 2).Equal(MustRational(1, 3)))
}
