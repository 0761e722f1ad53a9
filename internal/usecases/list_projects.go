package usecases

import (
	"context"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/visionffe/visionffe-api/internal/domain"
	"github.com/visionffe/visionffe-api/internal/telemetry"
)

// ListProjects defines the interface for the ListProjects use case.
type ListProjects interface {
	Execute(ctx context.Context) ([]domain.Project, error)
}

// ListProjectsImpl is the implementation of the ListProjects use case.
type ListProjectsImpl struct {
	repo domain.ProjectRepository
}

// NewListProjectsImpl creates a new instance of ListProjectsImpl.
func NewListProjectsImpl(repo domain.ProjectRepository) ListProjectsImpl {
	return ListProjectsImpl{repo: repo}
}

// Execute returns the caller's projects, newest first.
func (lpi ListProjectsImpl) Execute(ctx context.Context) ([]domain.Project, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	principal, err := requireDesigner(spanCtx)
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}

	projects, err := lpi.repo.ListProjects(spanCtx, principal.UserID)
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}
	return projects, nil
}

// InitListProjects initializes the ListProjects use case and registers it in the dependency container.
type InitListProjects struct {
	Repo domain.ProjectRepository `resolve:""`
}

// Initialize registers the ListProjects use case.
func (ilp InitListProjects) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[ListProjects](NewListProjectsImpl(ilp.Repo))
	return ctx, nil
}
