package usecases

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/visionffe/visionffe-api/internal/domain"
	domain_mocks "github.com/visionffe/visionffe-api/internal/domain/mocks"
)

func TestCreateProjectImpl_Execute(t *testing.T) {
	fixedUUID := uuid.MustParse("123e4567-e89b-12d3-a456-426614174000")
	fixedTime := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	project := domain.Project{
		ID:             fixedUUID,
		OwnerUserID:    testUserID,
		Name:           "Loft redesign",
		PhotoURLs:      []string{},
		ExtractedItems: []domain.ExtractedItem{},
		CreatedAt:      fixedTime,
		UpdatedAt:      fixedTime,
	}

	tests := map[string]struct {
		ctx             context.Context
		name            string
		setExpectations func(uow *domain_mocks.MockUnitOfWork, repo *domain_mocks.MockProjectRepository)
		expectedProject domain.Project
		expectedErr     error
	}{
		"success": {
			ctx:  designerCtx(),
			name: "  Loft redesign ",
			setExpectations: func(uow *domain_mocks.MockUnitOfWork, repo *domain_mocks.MockProjectRepository) {
				repo.EXPECT().ProjectNameExists(mock.Anything, testUserID, "Loft redesign").Return(false, nil)
				repo.EXPECT().CreateProject(mock.Anything, project).Return(nil)
			},
			expectedProject: project,
		},
		"duplicate-name": {
			ctx:  designerCtx(),
			name: "Loft redesign",
			setExpectations: func(uow *domain_mocks.MockUnitOfWork, repo *domain_mocks.MockProjectRepository) {
				repo.EXPECT().ProjectNameExists(mock.Anything, testUserID, "Loft redesign").Return(true, nil)
			},
			expectedErr: domain.NewConflictErr(`a project named "Loft redesign" already exists`),
		},
		"repository-error": {
			ctx:  designerCtx(),
			name: "Loft redesign",
			setExpectations: func(uow *domain_mocks.MockUnitOfWork, repo *domain_mocks.MockProjectRepository) {
				repo.EXPECT().ProjectNameExists(mock.Anything, testUserID, "Loft redesign").Return(false, nil)
				repo.EXPECT().CreateProject(mock.Anything, mock.Anything).Return(errors.New("database error"))
			},
			expectedErr: errors.New("database error"),
		},
		"blank-name": {
			ctx:         designerCtx(),
			name:        "   ",
			expectedErr: domain.NewValidationErr("project name is required"),
		},
		"not-a-designer": {
			ctx:         permissionCtx(domain.Permission_ImagesRead),
			name:        "Loft redesign",
			expectedErr: domain.NewForbiddenErr("role designer required"),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			uow := domain_mocks.NewMockUnitOfWork(t)
			repo := domain_mocks.NewMockProjectRepository(t)
			timeProvider := domain_mocks.NewMockCurrentTimeProvider(t)
			expectTransactions(t, uow)
			uow.EXPECT().Project().Return(repo).Maybe()
			timeProvider.EXPECT().Now().Return(fixedTime).Maybe()
			if tt.setExpectations != nil {
				tt.setExpectations(uow, repo)
			}

			uc := NewCreateProjectImpl(uow, timeProvider)
			uc.createUUID = func() uuid.UUID { return fixedUUID }

			got, err := uc.Execute(tt.ctx, tt.name)
			assert.Equal(t, tt.expectedErr, err)
			assert.Equal(t, tt.expectedProject, got)
		})
	}
}

func TestInitCreateProject_Initialize(t *testing.T) {
	t.Cleanup(depend.ClearContainer)

	_, err := InitCreateProject{}.Initialize(context.Background())
	assert.NoError(t, err)

	registered, err := depend.Resolve[CreateProject]()
	assert.NoError(t, err)
	assert.NotNil(t, registered)
}
