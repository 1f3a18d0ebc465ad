// Package money holds the numeric input policy and decimal-exact arithmetic
// shared by the calculator, the work order builder and the wire types.
//
// Every amount that originates from a form goes through Normalize: anything
// that is not a finite number becomes 0. Inputs are never rejected for being
// malformed.
package money

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Normalize coerces v to a finite float64, falling back to 0.
func Normalize(v any) float64 {
	var f float64
	switch n := v.(type) {
	case nil:
		return 0
	case float64:
		f = n
	case float32:
		f = float64(n)
	case int:
		f = float64(n)
	case int32:
		f = float64(n)
	case int64:
		f = float64(n)
	case uint:
		f = float64(n)
	case Amount:
		f = float64(n)
	case json.Number:
		return Normalize(string(n))
	case string:
		s := strings.TrimSpace(n)
		if s == "" {
			return 0
		}
		parsed, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0
		}
		f = parsed
	default:
		return 0
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}

// Amount is a form-supplied number. It decodes from a JSON number, a numeric
// string, an empty string or null; anything else decodes to 0.
type Amount float64

// UnmarshalJSON implements json.Unmarshaler. It never returns an error for a
// malformed value.
func (a *Amount) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*a = 0
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			*a = 0
			return nil
		}
		*a = Amount(Normalize(s))
		return nil
	}
	*a = Amount(Normalize(json.Number(data)))
	return nil
}

// Float64 returns the amount as a plain float.
func (a Amount) Float64() float64 {
	return Normalize(float64(a))
}

// Sum adds values using decimal arithmetic so that 0.1+0.2 stays 0.3.
func Sum(values ...float64) float64 {
	total := decimal.Zero
	for _, v := range values {
		total = total.Add(decimal.NewFromFloat(Normalize(v)))
	}
	f, _ := total.Float64()
	return f
}

// Sub returns a − b with decimal arithmetic.
func Sub(a, b float64) float64 {
	f, _ := decimal.NewFromFloat(Normalize(a)).Sub(decimal.NewFromFloat(Normalize(b))).Float64()
	return f
}

// Mul returns a × b with decimal arithmetic.
func Mul(a, b float64) float64 {
	f, _ := decimal.NewFromFloat(Normalize(a)).Mul(decimal.NewFromFloat(Normalize(b))).Float64()
	return f
}

// Max0 floors v at zero.
func Max0(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}

// Round2 rounds to cents for display.
func Round2(v float64) float64 {
	f, _ := decimal.NewFromFloat(Normalize(v)).Round(2).Float64()
	return f
}
