package domain

import (
	"context"
	"fmt"

	"github.com/visionffe/visionffe-api/internal/common"
)

// EmbeddingVector is an L2-normalized image embedding.
type EmbeddingVector []float32

// Dimension returns the number of components of the vector.
func (v EmbeddingVector) Dimension() int {
	return len(v)
}

// Norm returns the Euclidean norm of the vector.
func (v EmbeddingVector) Norm() float64 {
	return common.L2Norm(v)
}

// ImageEmbedder turns an image reachable by URL into a fixed-length embedding.
type ImageEmbedder interface {
	// Embed fetches the image and returns its L2-normalized embedding.
	Embed(ctx context.Context, imageURL string) (EmbeddingVector, error)
	// Dimension returns the fixed output dimension D of the loaded model.
	Dimension() int
	// Model returns the name of the loaded model.
	Model() string
	// Loaded reports whether the model is available for inference.
	Loaded() bool
}

// EmbeddingErr is the single failure signal of an embedding attempt.
// No partial vector is ever returned alongside it.
type EmbeddingErr struct {
	ImageURL string
	cause    error
}

// NewEmbeddingErr creates a new EmbeddingErr for the given image.
func NewEmbeddingErr(imageURL string, cause error) *EmbeddingErr {
	return &EmbeddingErr{ImageURL: imageURL, cause: cause}
}

// Error returns the error message.
func (e *EmbeddingErr) Error() string {
	return fmt.Sprintf("embedding failed for %s: %v", e.ImageURL, e.cause)
}

// Unwrap returns the underlying cause.
func (e *EmbeddingErr) Unwrap() error {
	return e.cause
}
