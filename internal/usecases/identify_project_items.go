package usecases

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/google/uuid"
	"github.com/visionffe/visionffe-api/internal/domain"
	"github.com/visionffe/visionffe-api/internal/telemetry"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// IdentifyProjectItems defines the interface for the IdentifyProjectItems use case.
type IdentifyProjectItems interface {
	Execute(ctx context.Context, projectID uuid.UUID, files []domain.FileUpload, imageURLs []string) ([]string, error)
}

// IdentifyProjectItemsImpl is the implementation of the IdentifyProjectItems use case.
type IdentifyProjectItemsImpl struct {
	uow          domain.UnitOfWork
	store        domain.ObjectStore
	vision       domain.VisionAnalyzer
	timeProvider domain.CurrentTimeProvider
	logger       *log.Logger
	uploader     photoUploader
}

// NewIdentifyProjectItemsImpl creates a new instance of IdentifyProjectItemsImpl.
func NewIdentifyProjectItemsImpl(
	uow domain.UnitOfWork,
	store domain.ObjectStore,
	vision domain.VisionAnalyzer,
	timeProvider domain.CurrentTimeProvider,
	logger *log.Logger,
	concurrency int,
) IdentifyProjectItemsImpl {
	return IdentifyProjectItemsImpl{
		uow:          uow,
		store:        store,
		vision:       vision,
		timeProvider: timeProvider,
		logger:       logger,
		uploader:     photoUploader{store: store, logger: logger, concurrency: concurrency},
	}
}

// Execute stores any new photos on the project, then identifies items across all of the
// project's photos plus the request URLs. Request URLs are not saved on the project.
func (ipi IdentifyProjectItemsImpl) Execute(ctx context.Context, projectID uuid.UUID, files []domain.FileUpload, imageURLs []string) ([]string, error) {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.String("project.id", projectID.String()),
		attribute.Int("project.files", len(files)),
		attribute.Int("project.urls", len(imageURLs)),
	))
	defer span.End()

	principal, err := requireDesigner(spanCtx)
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}

	project, err := getOwnedProject(spanCtx, ipi.uow.Project(), projectID, principal.UserID)
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}

	if len(files) > 0 {
		project, err = ipi.storeNewPhotos(spanCtx, project, principal.UserID, files)
		if telemetry.RecordErrorAndStatus(span, err) {
			return nil, err
		}
	}

	images := append([]string{}, project.PhotoURLs...)
	for _, u := range imageURLs {
		if u = strings.TrimSpace(u); u != "" {
			images = append(images, u)
		}
	}
	if len(images) == 0 {
		err := domain.NewValidationErr("no images to analyze")
		telemetry.RecordErrorAndStatus(span, err)
		return nil, err
	}

	start := time.Now()
	items, err := ipi.vision.IdentifyItems(spanCtx, images)
	RecordAICallDuration(spanCtx, "identify_items", start)
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}

	span.SetAttributes(attribute.Int("project.items", len(items)))
	return items, nil
}

func (ipi IdentifyProjectItemsImpl) storeNewPhotos(ctx context.Context, project domain.Project, userID string, files []domain.FileUpload) (domain.Project, error) {
	if !ipi.store.Configured() {
		return domain.Project{}, domain.NewUnavailableErr("object storage is not configured")
	}

	urls, err := ipi.uploader.upload(ctx, "IdentifyProjectItems", project.ID, files)
	if err != nil {
		return domain.Project{}, err
	}
	return appendPhotos(ctx, ipi.uow, project.ID, userID, urls, ipi.timeProvider)
}

// InitIdentifyProjectItems initializes the IdentifyProjectItems use case and registers it in the dependency container.
type InitIdentifyProjectItems struct {
	Uow          domain.UnitOfWork          `resolve:""`
	Store        domain.ObjectStore         `resolve:""`
	Vision       domain.VisionAnalyzer      `resolve:""`
	TimeProvider domain.CurrentTimeProvider `resolve:""`
	Logger       *log.Logger                `resolve:""`
	Concurrency  int                        `config:"PIPELINE_CONCURRENCY" default:"4"`
}

// Initialize registers the IdentifyProjectItems use case.
func (iipi InitIdentifyProjectItems) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[IdentifyProjectItems](NewIdentifyProjectItemsImpl(
		iipi.Uow, iipi.Store, iipi.Vision, iipi.TimeProvider, iipi.Logger, iipi.Concurrency,
	))
	return ctx, nil
}
