package jschema

import (
	"math/big"
	"strconv"
)

// rat wraps big.Rat so numeric keyword checks are exact instead of drifting
// through float64 arithmetic. Instance numbers are constructed from their
// source literal, schema bounds from their float64 model value.
type rat struct {
	*big.Rat
}

// newRatFromLiteral builds a rat from a JSON number literal. big.Rat accepts
// decimal and exponent notation directly.
func newRatFromLiteral(literal string) *rat {
	r := new(big.Rat)
	if _, ok := r.SetString(literal); !ok {
		return nil
	}
	return &rat{r}
}

// newRatFromFloat builds a rat from a schema keyword value. The float is
// taken through its shortest decimal form so that a keyword written as 0.1
// means exactly 1/10, not the nearest binary float.
func newRatFromFloat(value float64) *rat {
	return newRatFromLiteral(strconv.FormatFloat(value, 'g', -1, 64))
}

// isMultipleOf reports whether r is an integral multiple of m.
func (r *rat) isMultipleOf(m *rat) bool {
	if m.Sign() == 0 {
		return false
	}
	quotient := new(big.Rat).Quo(r.Rat, m.Rat)
	return quotient.IsInt()
}

// formatRat renders a rat the way a JSON number reads: integers plain,
// fractions as trimmed decimals.
func formatRat(r *rat) string {
	if r == nil {
		return "null"
	}
	if r.IsInt() {
		return r.Num().String()
	}
	f, _ := r.Float64()
	return strconv.FormatFloat(f, 'g', -1, 64)
}
