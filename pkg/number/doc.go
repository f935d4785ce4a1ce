/*
Package number provides the Rational and Complex value types.

	      +----------------+
	      | Arithmeticable |
	      |   (pkg/arith)  |
	      +-------+--------+
	              |
	     +--------+--------+
	     |                 |
	+----+-----+     +-----+----+
	| Rational |     | Complex  |
	| (big.Int)|     | (float64)|
	+----------+     +----------+

🎯 Purpose:
- Exact fractions kept in lowest terms
- Complex numbers with the textbook identities
- Both usable inside an arith.Collection

⚡ Key Rules:
- Values are immutable; every operation returns a new value
- Rational reduces by the gcd of the magnitudes, so signs are kept as given
- Division by zero (zero denominator, zero rational, zero complex) returns
  arith.ErrDivisionByZero

🔍 Example:

	a := number.MustRational(1, 3)
	b := number.MustRational(2, 3)
	fmt.Println(a.Subtract(b)) // -1/3

	c, err := number.NewComplex(3, 4).Divide(number.NewComplex(7, 8))
	if err != nil {
		return err
	}
	fmt.Println(c.Real(), c.Imaginary())
*/
package number
