package maths

import "testing"

func TestGCD(t *testing.T) {
	cases := []struct {
		m, n, want int
	}{
		{12, 18, 6},
		{18, 12, 6},
		{0, 0, 0},
		{0, 5, 5},
		{7, 13, 1},
		{-12, 18, 6},
		{12, -18, 6},
	}
	for _, c := range cases {
		if got := GCD(c.m, c.n); got != c.want {
			t.Errorf("GCD(%d, %d) = %d, want %d", c.m, c.n, got, c.want)
		}
	}
}

func TestGCD_Unsigned(t *testing.T) {
	if got := GCD(uint(8), uint(12)); got != 4 {
		t.Errorf("GCD(8, 12) = %d, want 4", got)
	}
}

func TestFactorial(t *testing.T) {
	cases := []struct {
		n, want int
	}{
		{0, 1},
		{1, 1},
		{5, 120},
		{-4, 24},
	}
	for _, c := range cases {
		if got := Factorial(c.n); got != c.want {
			t.Errorf("Factorial(%d) = %d, want %d", c.n, got, c.want)
		}
	}
}

func TestFactorial_Int64(t *testing.T) {
	if got := Factorial(int64(10)); got != 3628800 {
		t.Errorf("Factorial(10) = %d, want 3628800", got)
	}
}
