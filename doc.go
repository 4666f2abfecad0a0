// Package statkit provides generic numeric computation over flat sequences:
// elementary math primitives, descriptive and inferential statistics, and
// two simple supervised estimators with scikit-learn-like Fit/Predict/Score
// contracts.
//
// Every function is generic over the sequence element type, so the same
// statistics run over []int, []float32 or []float64 without conversion at
// the call site. Derived quantities are always float64.
//
// # Packages
//
//   - maths: element-wise and aggregate primitives (GCD, Factorial, Prod,
//     Reciprocal, Linear, Power, Log, Exp, Sigmoid, near-duplicate Set)
//   - stats: means, dispersion, shape and robust statistics,
//     transformations, correlation, ranking, accuracy
//   - linear: SimpleLinearRegression (closed-form OLS) and
//     SimpleLogisticRegression (batch gradient descent)
//
// # Quick Start
//
// Fitting a line through points:
//
//	package main
//
//	import (
//	    "fmt"
//	    "log"
//
//	    "github.com/YuminosukeSato/statkit/linear"
//	)
//
//	func main() {
//	    x := []float64{1, 2, 3, 4}
//	    y := []float64{2, 4, 6, 8}
//
//	    lr := linear.NewSimpleLinearRegression[float64]()
//	    if err := lr.Fit(x, y); err != nil {
//	        log.Fatal(err)
//	    }
//
//	    fmt.Printf("coeff=%.2f intercept=%.2f\n", lr.Coeff(), lr.Intercept())
//	}
//
// # Error Handling
//
// Structural preconditions (sequence sizes, emptiness, value domains) fail
// eagerly with the typed errors in pkg/errors; degenerate correlation and
// R-squared denominators return NaN instead, which callers must check for.
// Iterative fitting routes non-convergence through the pkg/errors warning
// channel.
package statkit
