package usecases

import (
	"context"
	"fmt"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/google/uuid"
	"github.com/visionffe/visionffe-api/internal/domain"
	"github.com/visionffe/visionffe-api/internal/telemetry"
)

// CreateProject defines the interface for the CreateProject use case.
type CreateProject interface {
	Execute(ctx context.Context, name string) (domain.Project, error)
}

// CreateProjectImpl is the implementation of the CreateProject use case.
type CreateProjectImpl struct {
	uow          domain.UnitOfWork
	timeProvider domain.CurrentTimeProvider
	createUUID   func() uuid.UUID
}

// NewCreateProjectImpl creates a new instance of CreateProjectImpl.
func NewCreateProjectImpl(uow domain.UnitOfWork, timeProvider domain.CurrentTimeProvider) CreateProjectImpl {
	return CreateProjectImpl{
		uow:          uow,
		timeProvider: timeProvider,
		createUUID:   uuid.New,
	}
}

// Execute creates an empty project owned by the caller.
func (cpi CreateProjectImpl) Execute(ctx context.Context, name string) (domain.Project, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	principal, err := requireDesigner(spanCtx)
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.Project{}, err
	}

	name, err = domain.NormalizeProjectName(name)
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.Project{}, err
	}

	now := cpi.timeProvider.Now()
	project := domain.Project{
		ID:             cpi.createUUID(),
		OwnerUserID:    principal.UserID,
		Name:           name,
		PhotoURLs:      []string{},
		ExtractedItems: []domain.ExtractedItem{},
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	err = cpi.uow.Execute(spanCtx, func(uow domain.UnitOfWork) error {
		exists, err := uow.Project().ProjectNameExists(spanCtx, principal.UserID, name)
		if err != nil {
			return err
		}
		if exists {
			return domain.NewConflictErr(fmt.Sprintf("a project named %q already exists", name))
		}
		return uow.Project().CreateProject(spanCtx, project)
	})
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.Project{}, err
	}

	return project, nil
}

// InitCreateProject initializes the CreateProject use case and registers it in the dependency container.
type InitCreateProject struct {
	Uow          domain.UnitOfWork          `resolve:""`
	TimeProvider domain.CurrentTimeProvider `resolve:""`
}

// Initialize registers the CreateProject use case.
func (icp InitCreateProject) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[CreateProject](NewCreateProjectImpl(icp.Uow, icp.TimeProvider))
	return ctx, nil
}
