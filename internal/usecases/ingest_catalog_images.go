package usecases

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/visionffe/visionffe-api/internal/domain"
	"github.com/visionffe/visionffe-api/internal/telemetry"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"
)

// CatalogUpload is one catalog image with its caller supplied metadata.
type CatalogUpload struct {
	File     domain.FileUpload
	Metadata domain.Metadata
}

// IngestItemResult is the outcome of ingesting one catalog image.
type IngestItemResult struct {
	Filename   string
	Success    bool
	ID         string
	ImageURL   string
	FailedStep PipelineStep
	Error      string
}

// IngestReport summarizes a catalog ingestion batch.
type IngestReport struct {
	Uploaded          int
	Failed            int
	TotalDatabaseSize int
	Items             []IngestItemResult
}

// IngestCatalogImages defines the interface for the IngestCatalogImages use case.
type IngestCatalogImages interface {
	Execute(ctx context.Context, uploads []CatalogUpload) (IngestReport, error)
}

// IngestCatalogImagesImpl stores, embeds and indexes catalog images.
type IngestCatalogImagesImpl struct {
	uow          domain.UnitOfWork
	store        domain.ObjectStore
	embedder     domain.ImageEmbedder
	index        domain.VectorIndex
	timeProvider domain.CurrentTimeProvider
	logger       *log.Logger
	concurrency  int
}

// NewIngestCatalogImagesImpl creates a new instance of IngestCatalogImagesImpl.
func NewIngestCatalogImagesImpl(
	uow domain.UnitOfWork,
	store domain.ObjectStore,
	embedder domain.ImageEmbedder,
	index domain.VectorIndex,
	timeProvider domain.CurrentTimeProvider,
	logger *log.Logger,
	concurrency int,
) IngestCatalogImagesImpl {
	return IngestCatalogImagesImpl{
		uow:          uow,
		store:        store,
		embedder:     embedder,
		index:        index,
		timeProvider: timeProvider,
		logger:       logger,
		concurrency:  max(concurrency, 1),
	}
}

// Execute ingests the batch. Per-item failures are reported, never returned.
func (ici IngestCatalogImagesImpl) Execute(ctx context.Context, uploads []CatalogUpload) (IngestReport, error) {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.Int("ingest.files", len(uploads)),
	))
	defer span.End()

	if _, err := domain.RequirePermission(spanCtx, domain.Permission_ImagesWrite); telemetry.RecordErrorAndStatus(span, err) {
		return IngestReport{}, err
	}
	if len(uploads) == 0 {
		err := domain.NewValidationErr("no files provided")
		telemetry.RecordErrorAndStatus(span, err)
		return IngestReport{}, err
	}
	if err := requirePipelineServices(ici.embedder, ici.store, true); telemetry.RecordErrorAndStatus(span, err) {
		return IngestReport{}, err
	}
	if _, err := ici.index.Describe(spanCtx); err != nil {
		err = domain.NewUnavailableErr(fmt.Sprintf("vector index is unavailable: %v", err))
		telemetry.RecordErrorAndStatus(span, err)
		return IngestReport{}, err
	}

	items := make([]IngestItemResult, len(uploads))
	g, gctx := errgroup.WithContext(spanCtx)
	g.SetLimit(ici.concurrency)
	for i, upload := range uploads {
		g.Go(func() error {
			items[i] = ici.ingest(gctx, upload)
			return nil
		})
	}
	_ = g.Wait()

	report := IngestReport{Items: items}
	for _, item := range items {
		if item.Success {
			report.Uploaded++
		} else {
			report.Failed++
		}
	}

	stats, err := ici.index.Describe(spanCtx)
	if err != nil {
		ici.logger.Printf("IngestCatalogImages: failed to describe index: %v", err)
	} else {
		report.TotalDatabaseSize = stats.TotalVectorCount
	}

	span.SetAttributes(
		attribute.Int("ingest.uploaded", report.Uploaded),
		attribute.Int("ingest.failed", report.Failed),
	)
	telemetry.RecordErrorAndStatus(span, nil)
	return report, nil
}

func (ici IngestCatalogImagesImpl) ingest(ctx context.Context, upload CatalogUpload) IngestItemResult {
	result := IngestItemResult{Filename: upload.File.Filename}

	id, url, err := ici.ingestFile(ctx, upload)
	result.ImageURL = url
	if err != nil {
		result.FailedStep, result.Error = splitStepErr(err)
		RecordStepFailure(ctx, workflowIngest, result.FailedStep)
		ici.logger.Printf("IngestCatalogImages: %s failed: %v", upload.File.Filename, err)
		RecordPipelineItem(ctx, workflowIngest, false)
		return result
	}

	result.Success = true
	result.ID = id
	RecordPipelineItem(ctx, workflowIngest, true)
	return result
}

func (ici IngestCatalogImagesImpl) ingestFile(ctx context.Context, upload CatalogUpload) (string, string, error) {
	metadata, err := canonicalMetadata(upload.Metadata)
	if err != nil {
		return "", "", failAt(PipelineStep_Validate, err)
	}

	url, err := ici.store.Put(ctx, domain.BlobUpload{
		Data:        upload.File.Data,
		Namespace:   domain.StorageNamespace_Furniture,
		ContentType: upload.File.ContentType,
		Filename:    upload.File.Filename,
	})
	if err != nil {
		return "", "", failAt(PipelineStep_Store, err)
	}

	start := time.Now()
	vector, err := ici.embedder.Embed(ctx, url)
	RecordAICallDuration(ctx, "embed", start)
	if err != nil {
		ici.recordOrphan(ctx, url, "embedding failed")
		return "", url, failAt(PipelineStep_Embed, err)
	}

	id := domain.ObjectName(url)
	metadata = metadata.Merge(domain.Metadata{
		domain.MetadataKey_ImageURL: url,
		domain.MetadataKey_Filename: upload.File.Filename,
	})

	err = ici.index.Upsert(ctx, domain.IndexEntry{
		ID:        id,
		Namespace: domain.DefaultIndexNamespace,
		Vector:    vector,
		Metadata:  metadata,
	})
	if err != nil {
		ici.recordOrphan(ctx, url, "index upsert failed")
		return "", url, failAt(PipelineStep_Upsert, err)
	}

	recordEvent(ctx, ici.uow, ici.logger, "IngestCatalogImages", func(outbox domain.OutboxRepository) error {
		return outbox.CreateCatalogEvent(ctx, domain.CatalogItemEvent{
			Type:      domain.EventType_CATALOG_ITEM_INDEXED,
			ItemID:    id,
			ImageURL:  url,
			Category:  metadata.String(domain.MetadataKey_Category),
			CreatedAt: ici.timeProvider.Now(),
		})
	})

	return id, url, nil
}

func (ici IngestCatalogImagesImpl) recordOrphan(ctx context.Context, url, reason string) {
	recordEvent(ctx, ici.uow, ici.logger, "IngestCatalogImages", func(outbox domain.OutboxRepository) error {
		return outbox.CreateBlobEvent(ctx, domain.BlobEvent{
			Type:      domain.EventType_BLOB_ORPHANED,
			URL:       url,
			Reason:    reason,
			CreatedAt: ici.timeProvider.Now(),
		})
	})
}

// canonicalMetadata validates caller metadata and rewrites a known category to its canonical label.
func canonicalMetadata(metadata domain.Metadata) (domain.Metadata, error) {
	out := metadata.Merge(nil)
	if err := out.Validate(); err != nil {
		return nil, err
	}

	raw, ok := out[domain.MetadataKey_Category]
	if !ok {
		return out, nil
	}
	value, isString := raw.(string)
	if !isString {
		return nil, domain.NewValidationErr("metadata category must be a string")
	}
	category, known := domain.LookupCategory(value)
	if !known {
		return nil, domain.NewValidationErr(fmt.Sprintf("unknown category %q", value))
	}
	out[domain.MetadataKey_Category] = string(category)
	return out, nil
}

// InitIngestCatalogImages initializes the IngestCatalogImages use case and registers it in the dependency container.
type InitIngestCatalogImages struct {
	Uow          domain.UnitOfWork          `resolve:""`
	Store        domain.ObjectStore         `resolve:""`
	Embedder     domain.ImageEmbedder       `resolve:""`
	Index        domain.VectorIndex         `resolve:""`
	TimeProvider domain.CurrentTimeProvider `resolve:""`
	Logger       *log.Logger                `resolve:""`
	Concurrency  int                        `config:"PIPELINE_CONCURRENCY" default:"4"`
}

// Initialize registers the IngestCatalogImages use case.
func (iici InitIngestCatalogImages) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[IngestCatalogImages](NewIngestCatalogImagesImpl(
		iici.Uow, iici.Store, iici.Embedder, iici.Index, iici.TimeProvider, iici.Logger, iici.Concurrency,
	))
	return ctx, nil
}
