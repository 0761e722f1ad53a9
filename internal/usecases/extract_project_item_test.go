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
)

func TestExtractProjectItemImpl_Execute(t *testing.T) {
	projectID := uuid.MustParse("123e4567-e89b-12d3-a456-426614174000")
	createdAt := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	fixedTime := createdAt.Add(time.Hour)
	photoURL := testBucketURL + "/projects/" + projectID.String() + "/room.jpg"
	extractedURL := testBucketURL + "/projects/" + projectID.String() + "/extracted/ab.png"

	project := domain.Project{
		ID:          projectID,
		OwnerUserID: testUserID,
		Name:        "Loft",
		PhotoURLs:   []string{photoURL},
		CreatedAt:   createdAt,
		UpdatedAt:   createdAt,
	}
	updated := project
	updated.ExtractedItems = []domain.ExtractedItem{{Name: "Velvet sofa", URL: extractedURL}}
	updated.UpdatedAt = fixedTime

	image := domain.ExtractedImage{Data: []byte("png"), MimeType: "image/png"}

	tests := map[string]struct {
		ctx             context.Context
		itemName        string
		setExpectations func(m projectMocks)
		expectedItem    *domain.ExtractedItem
		expectedErr     error
	}{
		"success": {
			ctx:      designerCtx(),
			itemName: " Velvet sofa ",
			setExpectations: func(m projectMocks) {
				m.store.EXPECT().Configured().Return(true)
				m.repo.EXPECT().GetProject(mock.Anything, projectID, testUserID).Return(project, true, nil)
				m.vision.EXPECT().ExtractItem(mock.Anything, []string{photoURL}, "Velvet sofa").Return(image, nil)
				m.store.EXPECT().Put(mock.Anything, domain.BlobUpload{
					Data:        image.Data,
					Namespace:   domain.ProjectExtractedNamespace(projectID),
					ContentType: "image/png",
				}).Return(extractedURL, nil)
				m.repo.EXPECT().UpdateProject(mock.Anything, updated).Return(nil)
				m.outbox.EXPECT().CreateProjectEvent(mock.Anything, domain.ProjectItemEvent{
					Type:      domain.EventType_PROJECT_ITEM_EXTRACTED,
					ProjectID: projectID,
					Name:      "Velvet sofa",
					URL:       extractedURL,
					CreatedAt: fixedTime,
				}).Return(nil)
			},
			expectedItem: &domain.ExtractedItem{Name: "Velvet sofa", URL: extractedURL},
		},
		"no-image-is-not-an-error": {
			ctx:      designerCtx(),
			itemName: "Ghost chair",
			setExpectations: func(m projectMocks) {
				m.store.EXPECT().Configured().Return(true)
				m.repo.EXPECT().GetProject(mock.Anything, projectID, testUserID).Return(project, true, nil)
				m.vision.EXPECT().ExtractItem(mock.Anything, mock.Anything, "Ghost chair").
					Return(domain.ExtractedImage{}, domain.NewVisionErr(domain.VisionErrKind_NoImage, "extract_item", nil))
			},
		},
		"generation-failure": {
			ctx:      designerCtx(),
			itemName: "Velvet sofa",
			setExpectations: func(m projectMocks) {
				m.store.EXPECT().Configured().Return(true)
				m.repo.EXPECT().GetProject(mock.Anything, projectID, testUserID).Return(project, true, nil)
				m.vision.EXPECT().ExtractItem(mock.Anything, mock.Anything, mock.Anything).
					Return(domain.ExtractedImage{}, domain.NewVisionErr(domain.VisionErrKind_Generation, "extract_item", nil))
			},
			expectedErr: domain.NewVisionErr(domain.VisionErrKind_Generation, "extract_item", nil),
		},
		"upload-failure-leaves-project-untouched": {
			ctx:      designerCtx(),
			itemName: "Velvet sofa",
			setExpectations: func(m projectMocks) {
				m.store.EXPECT().Configured().Return(true)
				m.repo.EXPECT().GetProject(mock.Anything, projectID, testUserID).Return(project, true, nil)
				m.vision.EXPECT().ExtractItem(mock.Anything, mock.Anything, mock.Anything).Return(image, nil)
				m.store.EXPECT().Put(mock.Anything, mock.Anything).Return("", domain.NewUnavailableErr("object storage is not configured"))
			},
			expectedErr: domain.NewUnavailableErr("object storage is not configured"),
		},
		"save-failure-records-orphan": {
			ctx:      designerCtx(),
			itemName: "Velvet sofa",
			setExpectations: func(m projectMocks) {
				m.store.EXPECT().Configured().Return(true)
				m.repo.EXPECT().GetProject(mock.Anything, projectID, testUserID).Return(project, true, nil)
				m.vision.EXPECT().ExtractItem(mock.Anything, mock.Anything, mock.Anything).Return(image, nil)
				m.store.EXPECT().Put(mock.Anything, mock.Anything).Return(extractedURL, nil)
				m.repo.EXPECT().UpdateProject(mock.Anything, mock.Anything).Return(errors.New("database error"))
				m.outbox.EXPECT().CreateBlobEvent(mock.Anything, domain.BlobEvent{
					Type:      domain.EventType_BLOB_ORPHANED,
					URL:       extractedURL,
					Reason:    "project update failed",
					CreatedAt: fixedTime,
				}).Return(nil)
			},
			expectedErr: errors.New("database error"),
		},
		"project-without-photos": {
			ctx:      designerCtx(),
			itemName: "Velvet sofa",
			setExpectations: func(m projectMocks) {
				m.store.EXPECT().Configured().Return(true)
				m.repo.EXPECT().GetProject(mock.Anything, projectID, testUserID).
					Return(domain.Project{ID: projectID, OwnerUserID: testUserID}, true, nil)
			},
			expectedErr: domain.NewValidationErr("project has no photos"),
		},
		"blank-item-name": {
			ctx:         designerCtx(),
			itemName:    "  ",
			expectedErr: domain.NewValidationErr("item name is required"),
		},
		"storage-not-configured": {
			ctx:      designerCtx(),
			itemName: "Velvet sofa",
			setExpectations: func(m projectMocks) {
				m.store.EXPECT().Configured().Return(false)
			},
			expectedErr: domain.NewUnavailableErr("object storage is not configured"),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			m := newProjectMocks(t, fixedTime)
			if tt.setExpectations != nil {
				tt.setExpectations(m)
			}

			uc := NewExtractProjectItemImpl(m.uow, m.store, m.vision, m.timeProvider, discardLogger())
			got, err := uc.Execute(tt.ctx, projectID, tt.itemName)

			assert.Equal(t, tt.expectedErr, err)
			assert.Equal(t, tt.expectedItem, got)
		})
	}
}

func TestInitExtractProjectItem_Initialize(t *testing.T) {
	t.Cleanup(depend.ClearContainer)

	_, err := InitExtractProjectItem{}.Initialize(context.Background())
	assert.NoError(t, err)

	registered, err := depend.Resolve[ExtractProjectItem]()
	assert.NoError(t, err)
	assert.NotNil(t, registered)
}
