package pround

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// DefaultDigits is the number of decimals used for values without an
// uncertainty when the caller does not ask for anything else.
const DefaultDigits = 2

// Measurement is a value with its absolute uncertainty.
type Measurement struct {
	Value       float64 `json:"value" yaml:"value" toml:"value"`
	Uncertainty float64 `json:"uncertainty" yaml:"uncertainty" toml:"uncertainty"`
}

// Round renders m with [Round].
func (m Measurement) Round() (value, uncertainty string, err error) {
	return Round(m.Value, m.Uncertainty)
}

// Precision returns the number of decimals at which a measurement with
// uncertainty u is displayed: the position of the leading significant digit
// of u, one further when that digit is 1 or 2. The result is negative when u
// is 10 or larger.
//
// u must be positive and finite, otherwise Precision fails with
// [ErrInvalidUncertainty].
func Precision(u float64) (int, error) {
	if math.IsNaN(u) || math.IsInf(u, 0) || u <= 0 {
		return 0, fmt.Errorf("%w: %v", ErrInvalidUncertainty, u)
	}
	digit, exp := leadingDigit(u)
	precision := -exp
	if digit == 1 || digit == 2 {
		precision++
	}
	return precision, nil
}

// leadingDigit returns the first significant digit of a positive finite x and
// floor(log10(x)). Both come from the shortest decimal form of x, which keeps
// exact powers of ten such as 0.001 on the right side of the floor.
func leadingDigit(x float64) (digit, exp int) {
	s := strconv.FormatFloat(x, 'e', -1, 64)
	i := strings.IndexByte(s, 'e')
	exp, _ = strconv.Atoi(s[i+1:])
	return int(s[0] - '0'), exp
}

// Round rounds value and its uncertainty u to the same decimal place chosen
// by [Precision] and formats both with exactly max(precision, 0) decimals.
// For uncertainties of 10 or more both numbers are rounded to the tens,
// hundreds, ... place first.
//
// Ties round half to even on the exact binary value of each float.
func Round(value, u float64) (string, string, error) {
	precision, err := Precision(u)
	if err != nil {
		return "", "", err
	}
	if precision < 0 {
		value = roundTo(value, precision)
		u = roundTo(u, precision)
	}
	decimals := max(precision, 0)
	return strconv.FormatFloat(value, 'f', decimals, 64), strconv.FormatFloat(u, 'f', decimals, 64), nil
}

// RoundPlain formats value with exactly ndigits decimals. A negative ndigits
// rounds to the 10^-ndigits place and prints no decimals.
func RoundPlain(value float64, ndigits int) string {
	if ndigits < 0 {
		return strconv.FormatFloat(roundTo(value, ndigits), 'f', 0, 64)
	}
	return strconv.FormatFloat(value, 'f', ndigits, 64)
}

// roundTo rounds x to a multiple of 10^-precision for precision < 0.
func roundTo(x float64, precision int) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return x
	}
	scale := math.Pow10(-precision)
	return math.RoundToEven(x/scale) * scale
}
