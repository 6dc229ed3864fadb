package expr

import (
	"math"
	"math/big"
	"strconv"
	"strings"
)

// DefaultFractionDigits bounds the digits written after the radix point for
// non-integral results.
const DefaultFractionDigits = 20

// FormatBased renders v in the given base with upper-case digits, the way a
// solver shows computed values next to the puzzle rows. Integral values
// print exactly; fractional parts are expanded digit by digit in the base,
// up to fracDigits places, with trailing zeros trimmed.
func FormatBased(v float64, base, fracDigits int) (string, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return "", ErrNotFinite
	}
	if base < 2 || base > 36 {
		return "", ErrBadBase
	}

	neg := v < 0
	if neg {
		v = -v
	}
	ip, frac := math.Modf(v)

	var sb strings.Builder
	if neg {
		sb.WriteByte('-')
	}
	if ip < math.MaxInt64 {
		sb.WriteString(strconv.FormatInt(int64(ip), base))
	} else {
		bi, _ := big.NewFloat(ip).Int(nil)
		sb.WriteString(bi.Text(base))
	}

	if frac > 0 && fracDigits > 0 {
		digits := make([]byte, 0, fracDigits)
		for i := 0; i < fracDigits && frac > 0; i++ {
			frac *= float64(base)
			d, rest := math.Modf(frac)
			digits = append(digits, strconv.FormatInt(int64(d), base)[0])
			frac = rest
		}
		if trimmed := strings.TrimRight(string(digits), "0"); trimmed != "" {
			sb.WriteByte('.')
			sb.WriteString(trimmed)
		}
	}

	out := strings.ToUpper(sb.String())
	if out == "-0" {
		return "0", nil
	}

	return out, nil
}

// Compute evaluates s and formats the result in base, reporting whether
// both steps worked. On failure s itself is returned so a half-substituted
// formula still has something to show.
func Compute(s string, base, fracDigits int) (string, bool) {
	v, err := Evaluate(s)
	if err != nil {
		return s, false
	}
	out, err := FormatBased(v, base, fracDigits)
	if err != nil {
		return s, false
	}

	return out, true
}
