package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClampTopK(t *testing.T) {
	tests := map[string]struct {
		k        int
		expected int
	}{
		"zero":      {k: 0, expected: 1},
		"negative":  {k: -4, expected: 1},
		"in-range":  {k: 5, expected: 5},
		"max":       {k: 100, expected: 100},
		"above-max": {k: 1000, expected: 100},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ClampTopK(tt.k))
		})
	}
}

func TestMetadata_Validate(t *testing.T) {
	tests := map[string]struct {
		metadata    Metadata
		expectedErr error
	}{
		"scalars": {
			metadata: Metadata{"category": "Sofas", "price": 499.0, "in_stock": true, "seats": 3},
		},
		"empty": {
			metadata: Metadata{},
		},
		"empty-key": {
			metadata:    Metadata{"": "x"},
			expectedErr: NewValidationErr("metadata keys must not be empty"),
		},
		"nested-value": {
			metadata:    Metadata{"dims": map[string]any{"w": 1}},
			expectedErr: NewValidationErr(`metadata value for "dims" must be a string, number or boolean`),
		},
		"list-value": {
			metadata:    Metadata{"tags": []string{"a"}},
			expectedErr: NewValidationErr(`metadata value for "tags" must be a string, number or boolean`),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.expectedErr, tt.metadata.Validate())
		})
	}
}

func TestMetadata_Merge(t *testing.T) {
	base := Metadata{"category": "Sofas", "image_url": "old"}
	merged := base.Merge(Metadata{"image_url": "https://cdn/x.jpg"})

	assert.Equal(t, Metadata{"category": "Sofas", "image_url": "https://cdn/x.jpg"}, merged)
	assert.Equal(t, "old", base["image_url"])
}

func TestMetadataFilter_Validate(t *testing.T) {
	assert.NoError(t, MetadataFilter{"category": "Sofas", "brand": "Acme"}.Validate())
	assert.Equal(t,
		NewValidationErr(`metadata field "image_url" is not filterable`),
		MetadataFilter{"image_url": "x"}.Validate(),
	)
}

func TestMetadataFilter_Matches(t *testing.T) {
	tests := map[string]struct {
		filter   MetadataFilter
		metadata Metadata
		expected bool
	}{
		"empty-filter-matches-all": {
			filter:   MetadataFilter{},
			metadata: Metadata{"category": "Sofas"},
			expected: true,
		},
		"exact-match": {
			filter:   MetadataFilter{"category": "Sofas"},
			metadata: Metadata{"category": "Sofas", "brand": "Acme"},
			expected: true,
		},
		"different-value": {
			filter:   MetadataFilter{"category": "Sofas"},
			metadata: Metadata{"category": "Arm Chairs"},
			expected: false,
		},
		"missing-key-excluded": {
			filter:   MetadataFilter{"category": "Sofas"},
			metadata: Metadata{"brand": "Acme"},
			expected: false,
		},
		"numeric-types-compare-by-value": {
			filter:   MetadataFilter{"collection": 2024},
			metadata: Metadata{"collection": 2024.0},
			expected: true,
		},
		"case-sensitive": {
			filter:   MetadataFilter{"category": "sofas"},
			metadata: Metadata{"category": "Sofas"},
			expected: false,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.filter.Matches(tt.metadata))
		})
	}
}

func TestIndexEntry_Validate(t *testing.T) {
	tests := map[string]struct {
		entry       IndexEntry
		dimension   int
		expectedErr error
	}{
		"valid": {
			entry:     IndexEntry{ID: "a.jpg", Vector: EmbeddingVector{0.6, 0.8}, Metadata: Metadata{"category": "Sofas"}},
			dimension: 2,
		},
		"dimension-unknown": {
			entry: IndexEntry{ID: "a.jpg", Vector: EmbeddingVector{1}},
		},
		"missing-id": {
			entry:       IndexEntry{Vector: EmbeddingVector{1}},
			dimension:   1,
			expectedErr: NewValidationErr("index entry id is required"),
		},
		"dimension-mismatch": {
			entry:       IndexEntry{ID: "a.jpg", Vector: EmbeddingVector{1, 0, 0}},
			dimension:   2,
			expectedErr: NewValidationErr("vector dimension 3 does not match index dimension 2"),
		},
		"empty-vector": {
			entry:       IndexEntry{ID: "a.jpg"},
			expectedErr: NewValidationErr("vector must not be empty"),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.expectedErr, tt.entry.Validate(tt.dimension))
		})
	}
}
