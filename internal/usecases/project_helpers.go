package usecases

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/visionffe/visionffe-api/internal/domain"
	"golang.org/x/sync/errgroup"
)

// requireDesigner returns the calling user when it may work on projects.
func requireDesigner(ctx context.Context) (domain.Principal, error) {
	return domain.RequireRole(ctx, domain.Role_Designer)
}

// getOwnedProject loads a project owned by the user or fails with a NotFoundErr.
func getOwnedProject(ctx context.Context, repo domain.ProjectRepository, id uuid.UUID, userID string) (domain.Project, error) {
	project, found, err := repo.GetProject(ctx, id, userID)
	if err != nil {
		return domain.Project{}, err
	}
	if !found {
		return domain.Project{}, domain.NewNotFoundErr(fmt.Sprintf("project %s not found", id))
	}
	return project, nil
}

// photoUploader stores room photos under a project's namespace.
type photoUploader struct {
	store       domain.ObjectStore
	logger      *log.Logger
	concurrency int
}

// upload stores the files concurrently and returns the URLs of the successful uploads in input order.
// It fails only when every file fails.
func (pu photoUploader) upload(ctx context.Context, component string, projectID uuid.UUID, files []domain.FileUpload) ([]string, error) {
	if len(files) == 0 {
		return nil, nil
	}

	urls := make([]string, len(files))
	errs := make([]error, len(files))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(pu.concurrency, 1))
	for i, file := range files {
		g.Go(func() error {
			urls[i], errs[i] = pu.store.Put(gctx, domain.BlobUpload{
				Data:        file.Data,
				Namespace:   domain.ProjectPhotosNamespace(projectID),
				ContentType: file.ContentType,
				Filename:    file.Filename,
			})
			return nil
		})
	}
	_ = g.Wait()

	stored := make([]string, 0, len(files))
	for i, err := range errs {
		if err != nil {
			pu.logger.Printf("%s: failed to upload %s to project %s: %v", component, files[i].Filename, projectID, err)
			RecordStepFailure(ctx, workflowProject, PipelineStep_Store)
			continue
		}
		stored = append(stored, urls[i])
	}

	if len(stored) == 0 {
		joined := errors.Join(errs...)
		if domain.IsUnavailable(joined) {
			return nil, joined
		}
		return nil, fmt.Errorf("%w: %w", domain.NewUpstreamErr(fmt.Sprintf("failed to upload all %d photos", len(files))), joined)
	}
	return stored, nil
}

// appendPhotos saves the URLs on the project inside a unit of work and returns the updated project.
func appendPhotos(ctx context.Context, uow domain.UnitOfWork, projectID uuid.UUID, userID string, urls []string, timeProvider domain.CurrentTimeProvider) (domain.Project, error) {
	var updated domain.Project
	err := uow.Execute(ctx, func(uow domain.UnitOfWork) error {
		project, err := getOwnedProject(ctx, uow.Project(), projectID, userID)
		if err != nil {
			return err
		}
		project.AddPhotos(urls, timeProvider.Now())
		if err := uow.Project().UpdateProject(ctx, project); err != nil {
			return err
		}
		updated = project
		return nil
	})
	return updated, err
}
