package usecases

import (
	"context"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/google/uuid"
	"github.com/visionffe/visionffe-api/internal/domain"
	"github.com/visionffe/visionffe-api/internal/telemetry"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// GetProject defines the interface for the GetProject use case.
type GetProject interface {
	Execute(ctx context.Context, id uuid.UUID) (domain.Project, error)
}

// GetProjectImpl is the implementation of the GetProject use case.
type GetProjectImpl struct {
	repo domain.ProjectRepository
}

// NewGetProjectImpl creates a new instance of GetProjectImpl.
func NewGetProjectImpl(repo domain.ProjectRepository) GetProjectImpl {
	return GetProjectImpl{repo: repo}
}

// Execute returns one of the caller's projects.
func (gpi GetProjectImpl) Execute(ctx context.Context, id uuid.UUID) (domain.Project, error) {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.String("project.id", id.String()),
	))
	defer span.End()

	principal, err := requireDesigner(spanCtx)
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.Project{}, err
	}

	project, err := getOwnedProject(spanCtx, gpi.repo, id, principal.UserID)
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.Project{}, err
	}
	return project, nil
}

// InitGetProject initializes the GetProject use case and registers it in the dependency container.
type InitGetProject struct {
	Repo domain.ProjectRepository `resolve:""`
}

// Initialize registers the GetProject use case.
func (igp InitGetProject) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[GetProject](NewGetProjectImpl(igp.Repo))
	return ctx, nil
}
