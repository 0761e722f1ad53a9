package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/visionffe/visionffe-api/internal/domain"
	"github.com/visionffe/visionffe-api/internal/telemetry"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const uniqueViolationCode = "23505"

var (
	projectFields = []string{
		"id",
		"owner_user_id",
		"name",
		"photo_urls",
		"extracted_items",
		"created_at",
		"updated_at",
	}
)

// ProjectRepository implements the domain.ProjectRepository interface using PostgreSQL.
type ProjectRepository struct {
	sb squirrel.StatementBuilderType
}

// NewProjectRepository creates a new instance of ProjectRepository.
func NewProjectRepository(br squirrel.BaseRunner) ProjectRepository {
	return ProjectRepository{
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar).RunWith(br),
	}
}

// CreateProject inserts a new project.
func (pr ProjectRepository) CreateProject(ctx context.Context, project domain.Project) error {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.String("project.id", project.ID.String()),
	))
	defer span.End()

	photosJSON, itemsJSON, err := marshalProjectCollections(project)
	if telemetry.RecordErrorAndStatus(span, err) {
		return err
	}

	_, err = pr.sb.
		Insert("projects").
		Columns(
			projectFields...,
		).
		Values(
			project.ID,
			project.OwnerUserID,
			project.Name,
			photosJSON,
			itemsJSON,
			project.CreatedAt,
			project.UpdatedAt,
		).
		ExecContext(spanCtx)

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
		err = domain.NewConflictErr(fmt.Sprintf("a project named %q already exists", project.Name))
	}
	if telemetry.RecordErrorAndStatus(span, err) {
		return err
	}
	return nil
}

// GetProject retrieves a project by id, scoped to its owner.
func (pr ProjectRepository) GetProject(ctx context.Context, id uuid.UUID, ownerUserID string) (domain.Project, bool, error) {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.String("project.id", id.String()),
	))
	defer span.End()

	row := pr.sb.
		Select(
			projectFields...,
		).
		From("projects").
		Where(squirrel.Eq{"id": id, "owner_user_id": ownerUserID}).
		QueryRowContext(spanCtx)

	project, err := scanProject(row)
	if err == sql.ErrNoRows {
		span.SetAttributes(attribute.Bool("project.found", false))
		return domain.Project{}, false, nil
	}
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.Project{}, false, err
	}
	return project, true, nil
}

// ListProjects returns the projects of an owner, newest first.
func (pr ProjectRepository) ListProjects(ctx context.Context, ownerUserID string) ([]domain.Project, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	rows, err := pr.sb.
		Select(
			projectFields...,
		).
		From("projects").
		Where(squirrel.Eq{"owner_user_id": ownerUserID}).
		OrderBy("created_at DESC").
		QueryContext(spanCtx)
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}
	defer rows.Close() //nolint:errcheck

	projects := []domain.Project{}
	for rows.Next() {
		project, err := scanProject(rows)
		if telemetry.RecordErrorAndStatus(span, err) {
			return nil, err
		}
		projects = append(projects, project)
	}
	if err := rows.Err(); telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}
	return projects, nil
}

// UpdateProject saves the mutable collections of a project.
func (pr ProjectRepository) UpdateProject(ctx context.Context, project domain.Project) error {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.String("project.id", project.ID.String()),
	))
	defer span.End()

	photosJSON, itemsJSON, err := marshalProjectCollections(project)
	if telemetry.RecordErrorAndStatus(span, err) {
		return err
	}

	res, err := pr.sb.
		Update("projects").
		Set("photo_urls", photosJSON).
		Set("extracted_items", itemsJSON).
		Set("updated_at", project.UpdatedAt).
		Where(squirrel.Eq{"id": project.ID, "owner_user_id": project.OwnerUserID}).
		ExecContext(spanCtx)
	if telemetry.RecordErrorAndStatus(span, err) {
		return err
	}

	affected, err := res.RowsAffected()
	if telemetry.RecordErrorAndStatus(span, err) {
		return err
	}
	if affected == 0 {
		err = domain.NewNotFoundErr(fmt.Sprintf("project %s not found", project.ID))
		telemetry.RecordErrorAndStatus(span, err)
		return err
	}
	return nil
}

// ProjectNameExists reports whether the owner already has a project with the name.
func (pr ProjectRepository) ProjectNameExists(ctx context.Context, ownerUserID, name string) (bool, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	var exists bool
	err := pr.sb.
		Select("COUNT(1) > 0").
		From("projects").
		Where(squirrel.Eq{"owner_user_id": ownerUserID, "name": name}).
		QueryRowContext(spanCtx).
		Scan(&exists)
	if telemetry.RecordErrorAndStatus(span, err) {
		return false, err
	}
	return exists, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProject(row rowScanner) (domain.Project, error) {
	var (
		project    domain.Project
		photosJSON []byte
		itemsJSON  []byte
	)
	err := row.Scan(
		&project.ID,
		&project.OwnerUserID,
		&project.Name,
		&photosJSON,
		&itemsJSON,
		&project.CreatedAt,
		&project.UpdatedAt,
	)
	if err != nil {
		return domain.Project{}, err
	}

	project.PhotoURLs = []string{}
	if len(photosJSON) > 0 {
		if err := json.Unmarshal(photosJSON, &project.PhotoURLs); err != nil {
			return domain.Project{}, fmt.Errorf("failed to unmarshal photo urls: %w", err)
		}
	}
	project.ExtractedItems = []domain.ExtractedItem{}
	if len(itemsJSON) > 0 {
		if err := json.Unmarshal(itemsJSON, &project.ExtractedItems); err != nil {
			return domain.Project{}, fmt.Errorf("failed to unmarshal extracted items: %w", err)
		}
	}
	return project, nil
}

func marshalProjectCollections(project domain.Project) ([]byte, []byte, error) {
	photos := project.PhotoURLs
	if photos == nil {
		photos = []string{}
	}
	items := project.ExtractedItems
	if items == nil {
		items = []domain.ExtractedItem{}
	}

	photosJSON, err := json.Marshal(photos)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to marshal photo urls: %w", err)
	}
	itemsJSON, err := json.Marshal(items)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to marshal extracted items: %w", err)
	}
	return photosJSON, itemsJSON, nil
}
