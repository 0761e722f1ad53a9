package common

import "math"

// Float is the set of element types accepted by the vector helpers.
type Float interface {
	~float32 | ~float64
}

// CosineSimilarity calculates the cosine similarity between two vectors
// and returns the score along with a boolean indicating if the calculation was successful.
func CosineSimilarity[T Float](a, b []T) (float64, bool) {
	if len(a) == 0 || len(b) == 0 || len(a) != len(b) {
		return 0, false
	}

	var dotProduct float64
	var normA float64
	var normB float64

	for i := range a {
		x, y := float64(a[i]), float64(b[i])
		dotProduct += x * y
		normA += x * x
		normB += y * y
	}

	if normA == 0 || normB == 0 {
		return 0, false
	}

	return dotProduct / (math.Sqrt(normA) * math.Sqrt(normB)), true
}

// L2Norm returns the Euclidean norm of the vector.
func L2Norm[T Float](v []T) float64 {
	var sum float64
	for _, x := range v {
		sum += float64(x) * float64(x)
	}
	return math.Sqrt(sum)
}

// L2Normalize returns a copy of v scaled to unit length.
// It returns false when v is empty, has a zero norm or contains NaN/Inf values.
func L2Normalize[T Float](v []T) ([]T, bool) {
	norm := L2Norm(v)
	if len(v) == 0 || norm == 0 || math.IsNaN(norm) || math.IsInf(norm, 0) {
		return nil, false
	}

	out := make([]T, len(v))
	for i, x := range v {
		out[i] = T(float64(x) / norm)
	}
	return out, true
}
