package proctoring_test

import (
	"math"
	"testing"

	"github.com/NeuralTrust/TrustProctor/pkg/app/proctoring"
	"github.com/stretchr/testify/assert"
)

func unit(v []float64) []float64 {
	var norm float64
	for _, x := range v {
		norm += x * x
	}
	norm = math.Sqrt(norm)
	out := make([]float64, len(v))
	for i, x := range v {
		out[i] = x / norm
	}
	return out
}

func TestCosineSimilarity(t *testing.T) {
	tests := []struct {
		name string
		a, b []float64
		want float64
	}{
		{name: "identical unit vectors", a: unit([]float64{0.3, 0.4, 0.5}), b: unit([]float64{0.3, 0.4, 0.5}), want: 1},
		{name: "scaled vectors", a: []float64{1, 2, 3}, b: []float64{2, 4, 6}, want: 1},
		{name: "orthogonal", a: []float64{1, 0}, b: []float64{0, 1}, want: 0},
		{name: "opposite", a: []float64{1, 1}, b: []float64{-1, -1}, want: -1},
		{name: "zero vector", a: []float64{0.1, 0.2}, b: []float64{0, 0}, want: 0},
		{name: "both zero", a: []float64{0, 0}, b: []float64{0, 0}, want: 0},
		{name: "length mismatch", a: []float64{1, 2, 3}, b: []float64{1, 2}, want: 0},
		{name: "empty", a: nil, b: nil, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, proctoring.CosineSimilarity(tt.a, tt.b), 1e-9)
		})
	}
}

func TestCosineSimilarity_Symmetric(t *testing.T) {
	pairs := [][2][]float64{
		{{0.1, 0.9, -0.3}, {0.5, -0.2, 0.8}},
		{{1, 2, 3, 4}, {4, 3, 2, 1}},
		{{-1, 0.5}, {0.25, 0.75}},
	}
	for _, p := range pairs {
		assert.InDelta(t, proctoring.CosineSimilarity(p[0], p[1]), proctoring.CosineSimilarity(p[1], p[0]), 1e-12)
	}
}
