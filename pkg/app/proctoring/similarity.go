package proctoring

import (
	"errors"
	"math"
)

// ErrDimensionMismatch describes embeddings of different lengths. CosineSimilarity scores them 0.
var ErrDimensionMismatch = errors.New("embedding dimensions do not match")

// CosineSimilarity returns dot(a,b)/(|a|*|b|). It returns 0 when the lengths differ or either norm is 0.
func CosineSimilarity(a, b []float64) float64 {
	if len(a) != len(b) {
		return 0
	}
	var dot, normA, normB float64
	for i := range a {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}
	normA = math.Sqrt(normA)
	normB = math.Sqrt(normB)
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (normA * normB)
}
