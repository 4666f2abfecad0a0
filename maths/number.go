// Package maths provides elementary math primitives over scalars and
// numeric sequences. Sequences are plain slices of any numeric element type;
// functions never mutate their inputs and return newly allocated slices.
// Derived quantities are promoted to float64, pass-through transforms keep
// the input element type.
package maths

// Signed is the constraint for signed integer element types.
type Signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// Unsigned is the constraint for unsigned integer element types.
type Unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Integer is the constraint for integer element types.
type Integer interface {
	Signed | Unsigned
}

// Float is the constraint for floating-point element types.
type Float interface {
	~float32 | ~float64
}

// Real is the constraint for all supported numeric element types.
type Real interface {
	Integer | Float
}

// Float64s promotes a sequence to float64.
func Float64s[T Real](x []T) []float64 {
	out := make([]float64, len(x))
	for i, v := range x {
		out[i] = float64(v)
	}
	return out
}
