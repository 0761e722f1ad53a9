package usecases

import (
	"context"
	"fmt"
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

// ExtractProjectItem defines the interface for the ExtractProjectItem use case.
type ExtractProjectItem interface {
	// Execute returns nil without error when the model produced no image for the item.
	Execute(ctx context.Context, projectID uuid.UUID, itemName string) (*domain.ExtractedItem, error)
}

// ExtractProjectItemImpl is the implementation of the ExtractProjectItem use case.
type ExtractProjectItemImpl struct {
	uow          domain.UnitOfWork
	store        domain.ObjectStore
	vision       domain.VisionAnalyzer
	timeProvider domain.CurrentTimeProvider
	logger       *log.Logger
}

// NewExtractProjectItemImpl creates a new instance of ExtractProjectItemImpl.
func NewExtractProjectItemImpl(
	uow domain.UnitOfWork,
	store domain.ObjectStore,
	vision domain.VisionAnalyzer,
	timeProvider domain.CurrentTimeProvider,
	logger *log.Logger,
) ExtractProjectItemImpl {
	return ExtractProjectItemImpl{
		uow:          uow,
		store:        store,
		vision:       vision,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Execute isolates the named item from the project's photos, stores the image and
// appends it to the project together with a PROJECT_ITEM.EXTRACTED event.
func (epi ExtractProjectItemImpl) Execute(ctx context.Context, projectID uuid.UUID, itemName string) (*domain.ExtractedItem, error) {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.String("project.id", projectID.String()),
		attribute.String("project.item", itemName),
	))
	defer span.End()

	principal, err := requireDesigner(spanCtx)
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}

	itemName = strings.TrimSpace(itemName)
	if itemName == "" {
		err := domain.NewValidationErr("item name is required")
		telemetry.RecordErrorAndStatus(span, err)
		return nil, err
	}
	if !epi.store.Configured() {
		err := domain.NewUnavailableErr("object storage is not configured")
		telemetry.RecordErrorAndStatus(span, err)
		return nil, err
	}

	project, err := getOwnedProject(spanCtx, epi.uow.Project(), projectID, principal.UserID)
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}
	if len(project.PhotoURLs) == 0 {
		err := domain.NewValidationErr("project has no photos")
		telemetry.RecordErrorAndStatus(span, err)
		return nil, err
	}

	start := time.Now()
	image, err := epi.vision.ExtractItem(spanCtx, project.PhotoURLs, itemName)
	RecordAICallDuration(spanCtx, "extract_item", start)
	if domain.IsVisionErrKind(err, domain.VisionErrKind_NoImage) {
		epi.logger.Printf("ExtractProjectItem: no image produced for %q in project %s", itemName, projectID)
		return nil, nil
	}
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}

	url, err := epi.store.Put(spanCtx, domain.BlobUpload{
		Data:        image.Data,
		Namespace:   domain.ProjectExtractedNamespace(projectID),
		ContentType: image.MimeType,
	})
	if err != nil {
		RecordStepFailure(spanCtx, workflowProject, PipelineStep_Store)
		if !domain.IsUnavailable(err) {
			err = fmt.Errorf("%w: %w", domain.NewUpstreamErr("failed to store extracted item"), err)
		}
		telemetry.RecordErrorAndStatus(span, err)
		return nil, err
	}

	item := domain.ExtractedItem{Name: itemName, URL: url}
	err = epi.uow.Execute(spanCtx, func(uow domain.UnitOfWork) error {
		project, err := getOwnedProject(spanCtx, uow.Project(), projectID, principal.UserID)
		if err != nil {
			return err
		}
		now := epi.timeProvider.Now()
		project.AddExtractedItem(item, now)
		if err := uow.Project().UpdateProject(spanCtx, project); err != nil {
			return err
		}
		return uow.Outbox().CreateProjectEvent(spanCtx, domain.ProjectItemEvent{
			Type:      domain.EventType_PROJECT_ITEM_EXTRACTED,
			ProjectID: projectID,
			Name:      item.Name,
			URL:       item.URL,
			CreatedAt: now,
		})
	})
	if telemetry.RecordErrorAndStatus(span, err) {
		bgCtx := context.WithoutCancel(spanCtx)
		recordEvent(bgCtx, epi.uow, epi.logger, "ExtractProjectItem", func(outbox domain.OutboxRepository) error {
			return outbox.CreateBlobEvent(bgCtx, domain.BlobEvent{
				Type:      domain.EventType_BLOB_ORPHANED,
				URL:       url,
				Reason:    "project update failed",
				CreatedAt: epi.timeProvider.Now(),
			})
		})
		return nil, err
	}

	RecordPipelineItem(spanCtx, workflowProject, true)
	return &item, nil
}

// InitExtractProjectItem initializes the ExtractProjectItem use case and registers it in the dependency container.
type InitExtractProjectItem struct {
	Uow          domain.UnitOfWork          `resolve:""`
	Store        domain.ObjectStore         `resolve:""`
	Vision       domain.VisionAnalyzer      `resolve:""`
	TimeProvider domain.CurrentTimeProvider `resolve:""`
	Logger       *log.Logger                `resolve:""`
}

// Initialize registers the ExtractProjectItem use case.
func (iepi InitExtractProjectItem) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[ExtractProjectItem](NewExtractProjectItemImpl(
		iepi.Uow, iepi.Store, iepi.Vision, iepi.TimeProvider, iepi.Logger,
	))
	return ctx, nil
}
