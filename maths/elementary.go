package maths

// GCD returns the greatest common divisor of m and n using the Euclidean
// algorithm on absolute values. GCD(0, 0) is 0.
func GCD[T Integer](m, n T) T {
	m = absInt(m)
	n = absInt(n)

	for n != 0 {
		m, n = n, m%n
	}
	return m
}

// Factorial returns the iterative product over 1..|n|. Factorial(0) is 1.
// Overflow for large n is the caller's responsibility and is not guarded.
func Factorial[T Integer](n T) T {
	n = absInt(n)

	f := T(1)
	for c := T(1); c <= n; c++ {
		f = f * c
	}
	return f
}

func absInt[T Integer](v T) T {
	if v < 0 {
		return -v
	}
	return v
}
