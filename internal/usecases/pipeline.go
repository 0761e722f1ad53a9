package usecases

import (
	"context"
	"errors"
	"log"

	"github.com/visionffe/visionffe-api/internal/domain"
)

// PipelineStep names the step at which a batch item failed.
type PipelineStep string

const (
	PipelineStep_Validate   PipelineStep = "validate"
	PipelineStep_Store      PipelineStep = "store"
	PipelineStep_Categorize PipelineStep = "categorize"
	PipelineStep_Embed      PipelineStep = "embed"
	PipelineStep_Upsert     PipelineStep = "upsert"
	PipelineStep_Query      PipelineStep = "query"
)

const (
	workflowIngest  = "ingest"
	workflowSearch  = "search"
	workflowProject = "project"
)

// DefaultPipelineConcurrency bounds the number of batch items processed at once.
const DefaultPipelineConcurrency = 4

// stepErr is a per-item failure tagged with the step that produced it.
type stepErr struct {
	step PipelineStep
	err  error
}

func (e *stepErr) Error() string {
	return string(e.step) + ": " + e.err.Error()
}

func (e *stepErr) Unwrap() error {
	return e.err
}

// splitStepErr returns the failed step and the message of its cause.
func splitStepErr(err error) (PipelineStep, string) {
	var se *stepErr
	if errors.As(err, &se) {
		return se.step, se.err.Error()
	}
	return "", err.Error()
}

func failAt(step PipelineStep, err error) *stepErr {
	return &stepErr{step: step, err: err}
}

// recordEvent writes an outbox event in its own transaction. Failures are only logged.
func recordEvent(ctx context.Context, uow domain.UnitOfWork, logger *log.Logger, component string, write func(outbox domain.OutboxRepository) error) {
	err := uow.Execute(ctx, func(uow domain.UnitOfWork) error {
		return write(uow.Outbox())
	})
	if err != nil {
		logger.Printf("%s: failed to record event: %v", component, err)
	}
}

// requirePipelineServices fails fast when the embedder or the object store cannot serve requests.
func requirePipelineServices(embedder domain.ImageEmbedder, store domain.ObjectStore, needStore bool) error {
	if !embedder.Loaded() {
		return domain.NewUnavailableErr("embedding model is not loaded")
	}
	if needStore && !store.Configured() {
		return domain.NewUnavailableErr("object storage is not configured")
	}
	return nil
}
