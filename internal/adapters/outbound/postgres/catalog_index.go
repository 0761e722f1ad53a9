package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/pgvector/pgvector-go"
	"github.com/visionffe/visionffe-api/internal/domain"
	"github.com/visionffe/visionffe-api/internal/telemetry"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// CatalogIndex implements domain.VectorIndex on top of pgvector.
// Scores are cosine similarities; equal scores keep insertion order through the seq column.
type CatalogIndex struct {
	sb        squirrel.StatementBuilderType
	dimension int
	capacity  int
}

// NewCatalogIndex creates a new CatalogIndex. A dimension of 0 disables the dimension check
// and a capacity of 0 reports an index fullness of 0.
func NewCatalogIndex(br squirrel.BaseRunner, dimension, capacity int) CatalogIndex {
	return CatalogIndex{
		sb:        squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar).RunWith(br),
		dimension: dimension,
		capacity:  capacity,
	}
}

// Upsert inserts the entry or overwrites the one stored under the same namespace and id.
func (ci CatalogIndex) Upsert(ctx context.Context, entry domain.IndexEntry) error {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.String("index.id", entry.ID),
	))
	defer span.End()

	if err := entry.Validate(ci.dimension); telemetry.RecordErrorAndStatus(span, err) {
		return err
	}

	namespace := entry.Namespace
	if namespace == "" {
		namespace = domain.DefaultIndexNamespace
	}

	metadata := entry.Metadata
	if metadata == nil {
		metadata = domain.Metadata{}
	}
	metadataJSON, err := json.Marshal(metadata)
	if telemetry.RecordErrorAndStatus(span, err) {
		return fmt.Errorf("failed to marshal metadata: %w", err)
	}

	_, err = ci.sb.
		Insert("catalog_items").
		Columns(
			"namespace",
			"id",
			"embedding",
			"metadata",
		).
		Values(
			namespace,
			entry.ID,
			pgvector.NewVector(entry.Vector),
			metadataJSON,
		).
		Suffix("ON CONFLICT (namespace, id) DO UPDATE SET embedding = EXCLUDED.embedding, metadata = EXCLUDED.metadata, updated_at = NOW()").
		ExecContext(spanCtx)

	if telemetry.RecordErrorAndStatus(span, err) {
		return fmt.Errorf("failed to upsert catalog item: %w", err)
	}
	return nil
}

// Query returns the nearest entries by cosine similarity.
func (ci CatalogIndex) Query(ctx context.Context, query domain.IndexQuery) ([]domain.IndexMatch, error) {
	topK := domain.ClampTopK(query.TopK)
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.Int("index.top_k", topK),
	))
	defer span.End()

	if len(query.Vector) == 0 {
		err := domain.NewValidationErr("query vector must not be empty")
		telemetry.RecordErrorAndStatus(span, err)
		return nil, err
	}
	if ci.dimension > 0 && len(query.Vector) != ci.dimension {
		err := domain.NewValidationErr(fmt.Sprintf("vector dimension %d does not match index dimension %d", len(query.Vector), ci.dimension))
		telemetry.RecordErrorAndStatus(span, err)
		return nil, err
	}
	if err := query.Filter.Validate(); telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}

	namespace := query.Namespace
	if namespace == "" {
		namespace = domain.DefaultIndexNamespace
	}

	qry := ci.sb.
		Select("id").
		Column(squirrel.Expr("1 - (embedding <=> ?) AS score", pgvector.NewVector(query.Vector))).
		Column("metadata").
		From("catalog_items").
		Where(squirrel.Eq{"namespace": namespace})

	if len(query.Filter) > 0 {
		filterJSON, err := json.Marshal(query.Filter)
		if telemetry.RecordErrorAndStatus(span, err) {
			return nil, fmt.Errorf("failed to marshal filter: %w", err)
		}
		qry = qry.Where(squirrel.Expr("metadata @> ?", filterJSON))
	}

	rows, err := qry.
		OrderBy("score DESC", "seq ASC").
		Limit(uint64(topK)).
		QueryContext(spanCtx)
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, fmt.Errorf("failed to query catalog items: %w", err)
	}
	defer rows.Close() //nolint:errcheck

	matches := make([]domain.IndexMatch, 0, topK)
	for rows.Next() {
		var (
			match        domain.IndexMatch
			metadataJSON []byte
		)
		if err := rows.Scan(&match.ID, &match.Score, &metadataJSON); telemetry.RecordErrorAndStatus(span, err) {
			return nil, err
		}
		if query.IncludeMetadata {
			if err := json.Unmarshal(metadataJSON, &match.Metadata); telemetry.RecordErrorAndStatus(span, err) {
				return nil, fmt.Errorf("failed to unmarshal metadata of %s: %w", match.ID, err)
			}
		}
		matches = append(matches, match)
	}
	if err := rows.Err(); telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}

	return matches, nil
}

// Describe returns the entry count per namespace and the index dimension.
func (ci CatalogIndex) Describe(ctx context.Context) (domain.IndexStats, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	rows, err := ci.sb.
		Select("namespace", "COUNT(*)").
		From("catalog_items").
		GroupBy("namespace").
		OrderBy("namespace").
		QueryContext(spanCtx)
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.IndexStats{}, fmt.Errorf("failed to describe catalog index: %w", err)
	}
	defer rows.Close() //nolint:errcheck

	stats := domain.IndexStats{
		Dimension:  ci.dimension,
		Namespaces: map[string]int{},
	}
	for rows.Next() {
		var (
			namespace string
			count     int
		)
		if err := rows.Scan(&namespace, &count); telemetry.RecordErrorAndStatus(span, err) {
			return domain.IndexStats{}, err
		}
		stats.Namespaces[namespace] = count
		stats.TotalVectorCount += count
	}
	if err := rows.Err(); telemetry.RecordErrorAndStatus(span, err) {
		return domain.IndexStats{}, err
	}

	if ci.capacity > 0 {
		stats.IndexFullness = float64(stats.TotalVectorCount) / float64(ci.capacity)
	}
	return stats, nil
}

// InitCatalogIndex is a Symbiont initializer for the pgvector CatalogIndex.
// It registers nothing when another vector index backend is selected.
type InitCatalogIndex struct {
	DB       *sql.DB              `resolve:""`
	Embedder domain.ImageEmbedder `resolve:""`
	Backend  string               `config:"VECTOR_INDEX_BACKEND" default:"postgres"`
	Capacity int                  `config:"VECTOR_INDEX_CAPACITY" default:"0"`
}

// Initialize registers the CatalogIndex as the domain.VectorIndex in the dependency container.
func (ici InitCatalogIndex) Initialize(ctx context.Context) (context.Context, error) {
	if ici.Backend != BackendName {
		return ctx, nil
	}
	depend.Register[domain.VectorIndex](NewCatalogIndex(ici.DB, ici.Embedder.Dimension(), ici.Capacity))
	return ctx, nil
}

// BackendName is the VECTOR_INDEX_BACKEND value selecting the pgvector index.
const BackendName = "postgres"
