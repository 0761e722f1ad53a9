package domain

import (
	"context"
	"fmt"
	"slices"
)

const (
	// DefaultIndexNamespace is the vector index namespace used for the catalog.
	DefaultIndexNamespace = "__default__"
	// MinTopK is the smallest accepted number of neighbors per query.
	MinTopK = 1
	// MaxTopK is the largest accepted number of neighbors per query.
	MaxTopK = 100
	// DefaultTopK is used when a caller does not ask for a specific number of neighbors.
	DefaultTopK = 5
)

// Well-known metadata keys written by the pipeline.
const (
	MetadataKey_ImageURL  = "image_url"
	MetadataKey_ImagePath = "image_path"
	MetadataKey_Filename  = "filename"
	MetadataKey_Category  = "category"
)

// FilterableMetadataKeys is the allow-list of keys accepted in query filters.
var FilterableMetadataKeys = []string{
	MetadataKey_Category,
	"brand",
	"style",
	"material",
	"color",
	"collection",
}

// Metadata is a closed mapping of string keys to scalar values.
type Metadata map[string]any

// Validate checks that every key is non-empty and every value is a scalar.
func (m Metadata) Validate() error {
	for k, v := range m {
		if k == "" {
			return NewValidationErr("metadata keys must not be empty")
		}
		switch v.(type) {
		case string, bool, int, int32, int64, float32, float64:
		default:
			return NewValidationErr(fmt.Sprintf("metadata value for %q must be a string, number or boolean", k))
		}
	}
	return nil
}

// String returns the value stored under key when it is a string.
func (m Metadata) String(key string) string {
	if v, ok := m[key].(string); ok {
		return v
	}
	return ""
}

// Merge returns a copy of m with the entries of other applied on top.
func (m Metadata) Merge(other Metadata) Metadata {
	out := make(Metadata, len(m)+len(other))
	for k, v := range m {
		out[k] = v
	}
	for k, v := range other {
		out[k] = v
	}
	return out
}

// MetadataFilter is an exact-match filter over scalar metadata fields.
// Entries missing a filtered key never match.
type MetadataFilter map[string]any

// Validate checks that every filter key is in the allow-list.
func (f MetadataFilter) Validate() error {
	for k := range f {
		if !slices.Contains(FilterableMetadataKeys, k) {
			return NewValidationErr(fmt.Sprintf("metadata field %q is not filterable", k))
		}
	}
	return Metadata(f).Validate()
}

// Matches reports whether the metadata satisfies every filter clause.
func (f MetadataFilter) Matches(m Metadata) bool {
	for k, want := range f {
		got, ok := m[k]
		if !ok || !scalarEqual(got, want) {
			return false
		}
	}
	return true
}

// scalarEqual compares two scalars, treating all numeric types as float64.
func scalarEqual(a, b any) bool {
	fa, aNum := toFloat(a)
	fb, bNum := toFloat(b)
	if aNum && bNum {
		return fa == fb
	}
	return a == b
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	}
	return 0, false
}

// ClampTopK bounds k to the accepted range.
func ClampTopK(k int) int {
	return max(MinTopK, min(k, MaxTopK))
}

// IndexEntry is a vector stored in the index.
type IndexEntry struct {
	ID        string
	Namespace string
	Vector    EmbeddingVector
	Metadata  Metadata
}

// Validate checks the entry before it is written.
func (e IndexEntry) Validate(dimension int) error {
	if e.ID == "" {
		return NewValidationErr("index entry id is required")
	}
	if dimension > 0 && len(e.Vector) != dimension {
		return NewValidationErr(fmt.Sprintf("vector dimension %d does not match index dimension %d", len(e.Vector), dimension))
	}
	if len(e.Vector) == 0 {
		return NewValidationErr("vector must not be empty")
	}
	return e.Metadata.Validate()
}

// IndexQuery describes a nearest-neighbor query.
type IndexQuery struct {
	Vector          EmbeddingVector
	TopK            int
	Filter          MetadataFilter
	Namespace       string
	IncludeMetadata bool
}

// IndexMatch is one neighbor returned by a query.
type IndexMatch struct {
	ID       string
	Score    float64
	Metadata Metadata
}

// IndexStats summarizes the contents of the index.
type IndexStats struct {
	TotalVectorCount int
	Dimension        int
	IndexFullness    float64
	Namespaces       map[string]int
}

// VectorIndex stores embeddings with metadata and answers similarity queries.
type VectorIndex interface {
	// Upsert inserts or overwrites the entry identified by namespace and id.
	Upsert(ctx context.Context, entry IndexEntry) error
	// Query returns up to TopK entries ordered by descending cosine similarity.
	// Ties keep insertion order.
	Query(ctx context.Context, query IndexQuery) ([]IndexMatch, error)
	// Describe returns the index statistics.
	Describe(ctx context.Context) (IndexStats, error)
}
