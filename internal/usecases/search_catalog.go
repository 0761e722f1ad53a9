package usecases

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/visionffe/visionffe-api/internal/domain"
	"github.com/visionffe/visionffe-api/internal/telemetry"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"
)

// SearchQuery is one query image, given either by URL or as an uploaded file.
type SearchQuery struct {
	ImageURL string
	File     *domain.FileUpload
}

// Identifier returns the URL or filename the caller used for the query.
func (q SearchQuery) Identifier() string {
	if q.File != nil {
		return q.File.Filename
	}
	return q.ImageURL
}

// SearchRequest is a batch of similarity queries.
type SearchRequest struct {
	Queries []SearchQuery
	TopK    int
}

// SearchMatch is one similar catalog item.
type SearchMatch struct {
	ID              string
	SimilarityScore float64
	Metadata        domain.Metadata
	ImagePath       string
	Filename        string
}

// SearchQueryResult is the outcome of one query.
type SearchQueryResult struct {
	QueryIdentifier string
	Success         bool
	Category        domain.Category
	Results         []SearchMatch
	FailedStep      PipelineStep
	Error           string
}

// SearchReport summarizes a search batch.
type SearchReport struct {
	TotalQueries      int
	Results           []SearchQueryResult
	TotalDatabaseSize int
}

// SearchCatalog defines the interface for the SearchCatalog use case.
type SearchCatalog interface {
	Execute(ctx context.Context, req SearchRequest) (SearchReport, error)
}

// SearchCatalogImpl finds catalog items similar to query images within the query's category.
type SearchCatalogImpl struct {
	uow          domain.UnitOfWork
	store        domain.ObjectStore
	embedder     domain.ImageEmbedder
	vision       domain.VisionAnalyzer
	index        domain.VectorIndex
	timeProvider domain.CurrentTimeProvider
	logger       *log.Logger
	concurrency  int
}

// NewSearchCatalogImpl creates a new instance of SearchCatalogImpl.
func NewSearchCatalogImpl(
	uow domain.UnitOfWork,
	store domain.ObjectStore,
	embedder domain.ImageEmbedder,
	vision domain.VisionAnalyzer,
	index domain.VectorIndex,
	timeProvider domain.CurrentTimeProvider,
	logger *log.Logger,
	concurrency int,
) SearchCatalogImpl {
	return SearchCatalogImpl{
		uow:          uow,
		store:        store,
		embedder:     embedder,
		vision:       vision,
		index:        index,
		timeProvider: timeProvider,
		logger:       logger,
		concurrency:  max(concurrency, 1),
	}
}

// Execute runs every query. Per-query failures are reported, never returned.
func (sci SearchCatalogImpl) Execute(ctx context.Context, req SearchRequest) (SearchReport, error) {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.Int("search.queries", len(req.Queries)),
		attribute.Int("search.top_k", req.TopK),
	))
	defer span.End()

	if _, err := domain.RequirePermission(spanCtx, domain.Permission_ImagesRead); telemetry.RecordErrorAndStatus(span, err) {
		return SearchReport{}, err
	}
	if err := validateSearchRequest(req); telemetry.RecordErrorAndStatus(span, err) {
		return SearchReport{}, err
	}
	if err := requirePipelineServices(sci.embedder, sci.store, hasFileQueries(req.Queries)); telemetry.RecordErrorAndStatus(span, err) {
		return SearchReport{}, err
	}

	stats, err := sci.index.Describe(spanCtx)
	if err != nil {
		err = domain.NewUnavailableErr(fmt.Sprintf("vector index is unavailable: %v", err))
		telemetry.RecordErrorAndStatus(span, err)
		return SearchReport{}, err
	}

	results := make([]SearchQueryResult, len(req.Queries))
	g, gctx := errgroup.WithContext(spanCtx)
	g.SetLimit(sci.concurrency)
	for i, query := range req.Queries {
		g.Go(func() error {
			results[i] = sci.search(gctx, query, req.TopK)
			return nil
		})
	}
	_ = g.Wait()

	telemetry.RecordErrorAndStatus(span, nil)
	return SearchReport{
		TotalQueries:      len(req.Queries),
		Results:           results,
		TotalDatabaseSize: stats.TotalVectorCount,
	}, nil
}

func (sci SearchCatalogImpl) search(ctx context.Context, query SearchQuery, topK int) SearchQueryResult {
	result := SearchQueryResult{QueryIdentifier: query.Identifier()}

	category, matches, err := sci.searchOne(ctx, query, topK)
	result.Category = category
	if err != nil {
		result.FailedStep, result.Error = splitStepErr(err)
		RecordStepFailure(ctx, workflowSearch, result.FailedStep)
		RecordPipelineItem(ctx, workflowSearch, false)
		sci.logger.Printf("SearchCatalog: query %q failed: %v", result.QueryIdentifier, err)
		return result
	}

	result.Success = true
	result.Results = matches
	RecordPipelineItem(ctx, workflowSearch, true)
	return result
}

func (sci SearchCatalogImpl) searchOne(ctx context.Context, query SearchQuery, topK int) (domain.Category, []SearchMatch, error) {
	imageURL := strings.TrimSpace(query.ImageURL)
	if query.File != nil {
		url, err := sci.store.Put(ctx, domain.BlobUpload{
			Data:        query.File.Data,
			Namespace:   domain.StorageNamespace_Temp,
			ContentType: query.File.ContentType,
			Filename:    query.File.Filename,
		})
		if err != nil {
			return "", nil, failAt(PipelineStep_Store, err)
		}
		imageURL = url
		defer sci.discard(ctx, url)
	}
	if imageURL == "" {
		return "", nil, failAt(PipelineStep_Validate, domain.NewValidationErr("query has no image"))
	}

	start := time.Now()
	category, err := sci.vision.Categorize(ctx, imageURL)
	RecordAICallDuration(ctx, "categorize", start)
	if err != nil {
		return "", nil, failAt(PipelineStep_Categorize, err)
	}

	start = time.Now()
	vector, err := sci.embedder.Embed(ctx, imageURL)
	RecordAICallDuration(ctx, "embed", start)
	if err != nil {
		return category, nil, failAt(PipelineStep_Embed, err)
	}

	matches, err := sci.index.Query(ctx, domain.IndexQuery{
		Vector:          vector,
		TopK:            topK,
		Filter:          domain.MetadataFilter{domain.MetadataKey_Category: string(category)},
		Namespace:       domain.DefaultIndexNamespace,
		IncludeMetadata: true,
	})
	if err != nil {
		return category, nil, failAt(PipelineStep_Query, err)
	}

	out := make([]SearchMatch, len(matches))
	for i, m := range matches {
		out[i] = formatMatch(m)
	}
	return category, out, nil
}

// discard schedules removal of a temporary query image once the query is done with it.
func (sci SearchCatalogImpl) discard(ctx context.Context, url string) {
	ctx = context.WithoutCancel(ctx)
	recordEvent(ctx, sci.uow, sci.logger, "SearchCatalog", func(outbox domain.OutboxRepository) error {
		return outbox.CreateBlobEvent(ctx, domain.BlobEvent{
			Type:      domain.EventType_BLOB_DISCARDED,
			URL:       url,
			Reason:    "search query image",
			CreatedAt: sci.timeProvider.Now(),
		})
	})
}

func formatMatch(m domain.IndexMatch) SearchMatch {
	imagePath := m.Metadata.String(domain.MetadataKey_ImagePath)
	if imagePath == "" {
		imagePath = m.Metadata.String(domain.MetadataKey_ImageURL)
	}
	return SearchMatch{
		ID:              m.ID,
		SimilarityScore: m.Score,
		Metadata:        m.Metadata,
		ImagePath:       imagePath,
		Filename:        m.Metadata.String(domain.MetadataKey_Filename),
	}
}

func validateSearchRequest(req SearchRequest) error {
	if len(req.Queries) == 0 {
		return domain.NewValidationErr("no queries provided")
	}
	if req.TopK < domain.MinTopK || req.TopK > domain.MaxTopK {
		return domain.NewValidationErr(fmt.Sprintf("top_k must be between %d and %d", domain.MinTopK, domain.MaxTopK))
	}
	return nil
}

func hasFileQueries(queries []SearchQuery) bool {
	for _, q := range queries {
		if q.File != nil {
			return true
		}
	}
	return false
}

// InitSearchCatalog initializes the SearchCatalog use case and registers it in the dependency container.
type InitSearchCatalog struct {
	Uow          domain.UnitOfWork          `resolve:""`
	Store        domain.ObjectStore         `resolve:""`
	Embedder     domain.ImageEmbedder       `resolve:""`
	Vision       domain.VisionAnalyzer      `resolve:""`
	Index        domain.VectorIndex         `resolve:""`
	TimeProvider domain.CurrentTimeProvider `resolve:""`
	Logger       *log.Logger                `resolve:""`
	Concurrency  int                        `config:"PIPELINE_CONCURRENCY" default:"4"`
}

// Initialize registers the SearchCatalog use case.
func (isc InitSearchCatalog) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[SearchCatalog](NewSearchCatalogImpl(
		isc.Uow, isc.Store, isc.Embedder, isc.Vision, isc.Index, isc.TimeProvider, isc.Logger, isc.Concurrency,
	))
	return ctx, nil
}
