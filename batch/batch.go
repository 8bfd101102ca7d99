// Package batch carries the elementwise conventions shared by the
// toolbox functions: a validity mask parallel to the data, broadcasting
// of scalar arguments against slice arguments, and the placeholder
// substitution that keeps the polynomial kernels numerically defined on
// positions whose result is undefined.
package batch

import (
	"fmt"
	"math"
)

// Mask marks which positions of a slice hold no defined value. A nil
// Mask means every position is valid.
type Mask []bool

// Any reports whether at least one position is masked.
func (m Mask) Any() bool {
	for _, b := range m {
		if b {
			return true
		}
	}
	return false
}

// Union returns the positions masked in either m or o. Either argument
// may be nil.
func (m Mask) Union(o Mask) Mask {
	if m == nil {
		return o
	}
	if o == nil {
		return m
	}
	u := make(Mask, len(m))
	for i := range m {
		u[i] = m[i] || o[i]
	}
	return u
}

// FromNonFinite masks every position of data that is NaN or Inf.
// Returns nil when all positions are finite.
func FromNonFinite(data []float64) Mask {
	var m Mask
	for i, v := range data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			if m == nil {
				m = make(Mask, len(data))
			}
			m[i] = true
		}
	}
	return m
}

// Conform broadcasts each argument to length n. A length-1 argument is
// repeated; a length-n argument is returned as is. Any other length is
// an error.
func Conform(n int, args ...[]float64) ([][]float64, error) {
	out := make([][]float64, len(args))
	for k, a := range args {
		switch len(a) {
		case n:
			out[k] = a
		case 1:
			b := make([]float64, n)
			for i := range b {
				b[i] = a[0]
			}
			out[k] = b
		default:
			return nil, fmt.Errorf("batch: argument %d has length %d, want 1 or %d",
				k, len(a), n)
		}
	}
	return out, nil
}

// Fill returns a copy of data with placeholder substituted at masked
// positions. The substituted values only exist to keep downstream
// arithmetic finite; Restore reverses the substitution.
func Fill(data []float64, m Mask, placeholder float64) []float64 {
	out := make([]float64, len(data))
	copy(out, data)
	for i, masked := range m {
		if masked {
			out[i] = placeholder
		}
	}
	return out
}

// Restore writes NaN into data at every masked position, undoing any
// placeholder arithmetic before the result is returned to the caller.
func Restore(data []float64, m Mask) {
	for i, masked := range m {
		if masked {
			data[i] = math.NaN()
		}
	}
}

// ClampNonNegative returns a copy of data with negative values set to
// zero. Salinities are non-negative by definition; small negative
// values from instrument calibration are treated as fresh water rather
// than errors.
func ClampNonNegative(data []float64) []float64 {
	out := make([]float64, len(data))
	for i, v := range data {
		if v < 0 {
			v = 0
		}
		out[i] = v
	}
	return out
}
