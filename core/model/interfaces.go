package model

import "github.com/YuminosukeSato/statkit/maths"

// Fitter is a model that learns from paired training sequences.
type Fitter[T maths.Real, L maths.Real] interface {
	Fit(x []T, y []L) error
}

// Predictor is a model that maps an input sequence to predictions.
type Predictor[T maths.Real, R maths.Real] interface {
	Predict(x []T) ([]R, error)
}

// Scorer is a model that evaluates its predictions against true targets.
type Scorer[T maths.Real, L maths.Real] interface {
	Score(x []T, y []L) (float64, error)
}
