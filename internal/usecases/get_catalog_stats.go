package usecases

import (
	"context"
	"fmt"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/visionffe/visionffe-api/internal/domain"
	"github.com/visionffe/visionffe-api/internal/telemetry"
)

// CatalogStats summarizes the catalog index.
type CatalogStats struct {
	TotalImages   int
	Dimension     int
	IndexFullness float64
	Model         string
}

// GetCatalogStats defines the interface for the GetCatalogStats use case.
type GetCatalogStats interface {
	Execute(ctx context.Context) (CatalogStats, error)
}

// GetCatalogStatsImpl is the implementation of the GetCatalogStats use case.
type GetCatalogStatsImpl struct {
	index    domain.VectorIndex
	embedder domain.ImageEmbedder
}

// NewGetCatalogStatsImpl creates a new instance of GetCatalogStatsImpl.
func NewGetCatalogStatsImpl(index domain.VectorIndex, embedder domain.ImageEmbedder) GetCatalogStatsImpl {
	return GetCatalogStatsImpl{index: index, embedder: embedder}
}

// Execute returns the index statistics and the embedding model name.
func (gcs GetCatalogStatsImpl) Execute(ctx context.Context) (CatalogStats, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	if _, err := domain.RequirePermission(spanCtx, domain.Permission_StatsRead); telemetry.RecordErrorAndStatus(span, err) {
		return CatalogStats{}, err
	}

	stats, err := gcs.index.Describe(spanCtx)
	if err != nil {
		err = fmt.Errorf("%w: %w", domain.NewUnavailableErr("vector index is unavailable"), err)
		telemetry.RecordErrorAndStatus(span, err)
		return CatalogStats{}, err
	}

	return CatalogStats{
		TotalImages:   stats.TotalVectorCount,
		Dimension:     stats.Dimension,
		IndexFullness: stats.IndexFullness,
		Model:         gcs.embedder.Model(),
	}, nil
}

// InitGetCatalogStats initializes the GetCatalogStats use case and registers it in the dependency container.
type InitGetCatalogStats struct {
	Index    domain.VectorIndex   `resolve:""`
	Embedder domain.ImageEmbedder `resolve:""`
}

// Initialize registers the GetCatalogStats use case.
func (igcs InitGetCatalogStats) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[GetCatalogStats](NewGetCatalogStatsImpl(igcs.Index, igcs.Embedder))
	return ctx, nil
}
