package usecases

import (
	"context"
	"log"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/google/uuid"
	"github.com/visionffe/visionffe-api/internal/domain"
	"github.com/visionffe/visionffe-api/internal/telemetry"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// UploadProjectPhotos defines the interface for the UploadProjectPhotos use case.
type UploadProjectPhotos interface {
	Execute(ctx context.Context, projectID uuid.UUID, files []domain.FileUpload) (domain.Project, error)
}

// UploadProjectPhotosImpl is the implementation of the UploadProjectPhotos use case.
type UploadProjectPhotosImpl struct {
	uow          domain.UnitOfWork
	store        domain.ObjectStore
	timeProvider domain.CurrentTimeProvider
	uploader     photoUploader
}

// NewUploadProjectPhotosImpl creates a new instance of UploadProjectPhotosImpl.
func NewUploadProjectPhotosImpl(
	uow domain.UnitOfWork,
	store domain.ObjectStore,
	timeProvider domain.CurrentTimeProvider,
	logger *log.Logger,
	concurrency int,
) UploadProjectPhotosImpl {
	return UploadProjectPhotosImpl{
		uow:          uow,
		store:        store,
		timeProvider: timeProvider,
		uploader:     photoUploader{store: store, logger: logger, concurrency: concurrency},
	}
}

// Execute stores the photos and appends the successful URLs to the project in one save.
func (upi UploadProjectPhotosImpl) Execute(ctx context.Context, projectID uuid.UUID, files []domain.FileUpload) (domain.Project, error) {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.String("project.id", projectID.String()),
		attribute.Int("project.files", len(files)),
	))
	defer span.End()

	principal, err := requireDesigner(spanCtx)
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.Project{}, err
	}
	if len(files) == 0 {
		err := domain.NewValidationErr("no files provided")
		telemetry.RecordErrorAndStatus(span, err)
		return domain.Project{}, err
	}
	if !upi.store.Configured() {
		err := domain.NewUnavailableErr("object storage is not configured")
		telemetry.RecordErrorAndStatus(span, err)
		return domain.Project{}, err
	}

	if _, err := getOwnedProject(spanCtx, upi.uow.Project(), projectID, principal.UserID); telemetry.RecordErrorAndStatus(span, err) {
		return domain.Project{}, err
	}

	urls, err := upi.uploader.upload(spanCtx, "UploadProjectPhotos", projectID, files)
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.Project{}, err
	}

	project, err := appendPhotos(spanCtx, upi.uow, projectID, principal.UserID, urls, upi.timeProvider)
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.Project{}, err
	}
	return project, nil
}

// InitUploadProjectPhotos initializes the UploadProjectPhotos use case and registers it in the dependency container.
type InitUploadProjectPhotos struct {
	Uow          domain.UnitOfWork          `resolve:""`
	Store        domain.ObjectStore         `resolve:""`
	TimeProvider domain.CurrentTimeProvider `resolve:""`
	Logger       *log.Logger                `resolve:""`
	Concurrency  int                        `config:"PIPELINE_CONCURRENCY" default:"4"`
}

// Initialize registers the UploadProjectPhotos use case.
func (iupp InitUploadProjectPhotos) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[UploadProjectPhotos](NewUploadProjectPhotosImpl(
		iupp.Uow, iupp.Store, iupp.TimeProvider, iupp.Logger, iupp.Concurrency,
	))
	return ctx, nil
}
