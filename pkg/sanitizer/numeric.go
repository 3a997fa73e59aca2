package sanitizer

import (
	"math"
	"math/big"
	"reflect"
	"strconv"
	"strings"
)

// Integer represents the whole-number types handled by the sanitizer.
type Integer interface {
	~int | ~int16 | ~int32 | ~int64
}

// Float represents floating-point numeric types.
type Float interface {
	~float32 | ~float64
}

// ClampMax ensures a numeric value is not greater than the specified maximum.
func ClampMax[T Integer](value T, max T) T {
	if value > max {
		return max
	}
	return value
}

// ReplaceNegative returns fallback if value is negative, otherwise value.
func ReplaceNegative[T Integer](value T, fallback T) T {
	if value < 0 {
		return fallback
	}
	return value
}

// TruncateToDecimalPlaces cuts value toward zero after the given number of
// decimal places. It works on the shortest decimal form of value, so a value
// that already fits is returned unchanged and 4.35 stays 4.35. NaN and
// infinities are returned as is.
func TruncateToDecimalPlaces[T Float](value T, places int) T {
	if places < 0 {
		places = 0
	}

	f := float64(value)
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return value
	}

	bits := reflect.TypeFor[T]().Bits()
	s := strconv.FormatFloat(f, 'f', -1, bits)
	dot := strings.IndexByte(s, '.')
	if dot < 0 || len(s)-dot-1 <= places {
		return value
	}

	if places == 0 {
		s = s[:dot]
	} else {
		s = s[:dot+1+places]
	}

	truncated, err := strconv.ParseFloat(s, bits)
	if err != nil {
		return value
	}
	return T(truncated)
}

// truncateCoefficient cuts the decimal coef×10^exp toward zero after places
// decimal digits. The result keeps exp unless it had more than places
// fractional digits, in which case the exponent becomes -places.
func truncateCoefficient(coef *big.Int, exp, places int) (*big.Int, int) {
	if -exp <= places {
		return coef, exp
	}

	divisor := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(-exp-places)), nil)
	return new(big.Int).Quo(coef, divisor), -places
}
