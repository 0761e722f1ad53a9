package memindex

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/visionffe/visionffe-api/internal/common"
	"github.com/visionffe/visionffe-api/internal/domain"
	"github.com/visionffe/visionffe-api/internal/telemetry"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// BackendName is the VECTOR_INDEX_BACKEND value selecting the in-process index.
const BackendName = "memory"

type record struct {
	seq      uint64
	vector   domain.EmbeddingVector
	metadata domain.Metadata
}

// Index is an in-process domain.VectorIndex. It performs an exact scan on every query.
type Index struct {
	mu         sync.RWMutex
	dimension  int
	capacity   int
	nextSeq    uint64
	namespaces map[string]map[string]*record
}

// NewIndex creates an empty Index. A dimension of 0 is fixed by the first upsert.
func NewIndex(dimension, capacity int) *Index {
	return &Index{
		dimension:  dimension,
		capacity:   capacity,
		namespaces: map[string]map[string]*record{},
	}
}

// Upsert inserts the entry or overwrites the one stored under the same namespace and id.
// An overwrite keeps the original insertion position.
func (ix *Index) Upsert(ctx context.Context, entry domain.IndexEntry) error {
	_, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.String("index.id", entry.ID),
	))
	defer span.End()

	ix.mu.Lock()
	defer ix.mu.Unlock()

	if err := entry.Validate(ix.dimension); telemetry.RecordErrorAndStatus(span, err) {
		return err
	}
	if ix.dimension == 0 {
		ix.dimension = len(entry.Vector)
	}

	namespace := entry.Namespace
	if namespace == "" {
		namespace = domain.DefaultIndexNamespace
	}
	entries, ok := ix.namespaces[namespace]
	if !ok {
		entries = map[string]*record{}
		ix.namespaces[namespace] = entries
	}

	rec := &record{
		vector:   slices.Clone(entry.Vector),
		metadata: domain.Metadata{}.Merge(entry.Metadata),
	}
	if existing, found := entries[entry.ID]; found {
		rec.seq = existing.seq
	} else {
		ix.nextSeq++
		rec.seq = ix.nextSeq
	}
	entries[entry.ID] = rec

	telemetry.RecordErrorAndStatus(span, nil)
	return nil
}

type scored struct {
	id    string
	score float64
	rec   *record
}

// Query returns up to TopK entries by descending cosine similarity, ties in insertion order.
func (ix *Index) Query(ctx context.Context, query domain.IndexQuery) ([]domain.IndexMatch, error) {
	topK := domain.ClampTopK(query.TopK)
	_, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.Int("index.top_k", topK),
	))
	defer span.End()

	if err := query.Filter.Validate(); telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}

	ix.mu.RLock()
	defer ix.mu.RUnlock()

	if len(query.Vector) == 0 {
		err := domain.NewValidationErr("query vector must not be empty")
		telemetry.RecordErrorAndStatus(span, err)
		return nil, err
	}
	if ix.dimension > 0 && len(query.Vector) != ix.dimension {
		err := domain.NewValidationErr(fmt.Sprintf("vector dimension %d does not match index dimension %d", len(query.Vector), ix.dimension))
		telemetry.RecordErrorAndStatus(span, err)
		return nil, err
	}

	namespace := query.Namespace
	if namespace == "" {
		namespace = domain.DefaultIndexNamespace
	}

	candidates := make([]scored, 0, len(ix.namespaces[namespace]))
	for id, rec := range ix.namespaces[namespace] {
		if !query.Filter.Matches(rec.metadata) {
			continue
		}
		score, ok := common.CosineSimilarity(query.Vector, rec.vector)
		if !ok {
			continue
		}
		candidates = append(candidates, scored{id: id, score: score, rec: rec})
	}

	slices.SortFunc(candidates, func(a, b scored) int {
		switch {
		case a.score > b.score:
			return -1
		case a.score < b.score:
			return 1
		case a.rec.seq < b.rec.seq:
			return -1
		case a.rec.seq > b.rec.seq:
			return 1
		}
		return 0
	})

	matches := make([]domain.IndexMatch, 0, min(topK, len(candidates)))
	for _, c := range candidates[:min(topK, len(candidates))] {
		match := domain.IndexMatch{ID: c.id, Score: c.score}
		if query.IncludeMetadata {
			match.Metadata = domain.Metadata{}.Merge(c.rec.metadata)
		}
		matches = append(matches, match)
	}

	telemetry.RecordErrorAndStatus(span, nil)
	return matches, nil
}

// Describe returns the entry count per namespace and the index dimension.
func (ix *Index) Describe(ctx context.Context) (domain.IndexStats, error) {
	_, span := telemetry.Start(ctx)
	defer span.End()

	ix.mu.RLock()
	defer ix.mu.RUnlock()

	stats := domain.IndexStats{
		Dimension:  ix.dimension,
		Namespaces: make(map[string]int, len(ix.namespaces)),
	}
	for namespace, entries := range ix.namespaces {
		stats.Namespaces[namespace] = len(entries)
		stats.TotalVectorCount += len(entries)
	}
	if ix.capacity > 0 {
		stats.IndexFullness = float64(stats.TotalVectorCount) / float64(ix.capacity)
	}

	telemetry.RecordErrorAndStatus(span, nil)
	return stats, nil
}

// InitIndex is a Symbiont initializer for the in-process Index.
// It registers nothing when another vector index backend is selected.
type InitIndex struct {
	Embedder domain.ImageEmbedder `resolve:""`
	Backend  string               `config:"VECTOR_INDEX_BACKEND" default:"postgres"`
	Capacity int                  `config:"VECTOR_INDEX_CAPACITY" default:"0"`
}

// Initialize registers the Index as the domain.VectorIndex in the dependency container.
func (ii InitIndex) Initialize(ctx context.Context) (context.Context, error) {
	if ii.Backend != BackendName {
		return ctx, nil
	}
	depend.Register[domain.VectorIndex](NewIndex(ii.Embedder.Dimension(), ii.Capacity))
	return ctx, nil
}
