package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsUnavailable(t *testing.T) {
	assert.True(t, IsUnavailable(NewUnavailableErr("embedder not loaded")))
	assert.True(t, IsUnavailable(fmt.Errorf("search: %w", NewUnavailableErr("index down"))))
	assert.False(t, IsUnavailable(NewValidationErr("bad")))
	assert.False(t, IsUnavailable(nil))
}

func TestEmbeddingErr(t *testing.T) {
	cause := errors.New("connection refused")
	err := NewEmbeddingErr("https://cdn/a.jpg", cause)

	assert.EqualError(t, err, "embedding failed for https://cdn/a.jpg: connection refused")
	assert.ErrorIs(t, err, cause)
}

func TestVisionErr(t *testing.T) {
	cause := errors.New("blocked")
	err := fmt.Errorf("extract: %w", NewVisionErr(VisionErrKind_Generation, "extract", cause))

	assert.True(t, IsVisionErrKind(err, VisionErrKind_Generation))
	assert.False(t, IsVisionErrKind(err, VisionErrKind_NoImage))
	assert.ErrorIs(t, err, cause)
	assert.EqualError(t, NewVisionErr(VisionErrKind_NoImage, "extract", nil), "vision extract failed (NO_IMAGE)")
}

func TestBlobUpload_Validate(t *testing.T) {
	assert.Equal(t, NewValidationErr("file is empty"), BlobUpload{Namespace: StorageNamespace_Temp}.Validate())
	assert.Equal(t, NewValidationErr("storage namespace is required"), BlobUpload{Data: []byte{1}}.Validate())
	assert.NoError(t, BlobUpload{Data: []byte{1}, Namespace: StorageNamespace_Furniture}.Validate())
}

func TestEmbeddingVector_Norm(t *testing.T) {
	v := EmbeddingVector{0.6, 0.8}
	assert.Equal(t, 2, v.Dimension())
	assert.InDelta(t, 1.0, v.Norm(), 1e-6)
}

func TestObjectName(t *testing.T) {
	tests := map[string]struct {
		url      string
		expected string
	}{
		"furniture":  {url: "https://cdn.example.com/furniture/0f1e2d3c4b5a69788796a5b4c3d2e1f0.jpg", expected: "0f1e2d3c4b5a69788796a5b4c3d2e1f0.jpg"},
		"nested":     {url: "https://cdn.example.com/projects/p1/extracted/abc.png", expected: "abc.png"},
		"query":      {url: "https://cdn.example.com/temp/abc.webp?v=1", expected: "abc.webp"},
		"no-path":    {url: "https://cdn.example.com", expected: ""},
		"root-path":  {url: "https://cdn.example.com/", expected: ""},
		"unparsable": {url: "://bad", expected: ""},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ObjectName(tt.url))
		})
	}
}
