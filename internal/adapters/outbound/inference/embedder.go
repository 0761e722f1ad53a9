package inference

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/visionffe/visionffe-api/internal/common"
	"github.com/visionffe/visionffe-api/internal/domain"
	"github.com/visionffe/visionffe-api/internal/telemetry"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/semaphore"
)

// Embedder implements domain.ImageEmbedder on top of a KServe model server.
type Embedder struct {
	client    KServeClient
	fetcher   domain.ImageFetcher
	preset    Preset
	inputName string
	loaded    bool
	timeout   time.Duration
	sem       *semaphore.Weighted
}

// NewEmbedder creates a new Embedder. It is not loaded until Load succeeds.
// A positive timeout bounds every call to the model server.
func NewEmbedder(client KServeClient, fetcher domain.ImageFetcher, preset Preset, maxConcurrency int, timeout time.Duration) *Embedder {
	return &Embedder{
		client:    client,
		fetcher:   fetcher,
		preset:    preset,
		inputName: "input",
		timeout:   timeout,
		sem:       semaphore.NewWeighted(int64(max(maxConcurrency, 1))),
	}
}

// Load reads the model metadata and marks the embedder as available.
func (e *Embedder) Load(ctx context.Context) error {
	ctx, cancel := e.withTimeout(ctx)
	defer cancel()

	meta, err := e.client.ModelMetadata(ctx, e.preset.Model)
	if err != nil {
		return fmt.Errorf("load model %s: %w", e.preset.Model, err)
	}
	if len(meta.Inputs) > 0 && meta.Inputs[0].Name != "" {
		e.inputName = meta.Inputs[0].Name
	}
	e.loaded = true
	return nil
}

// Embed implements domain.ImageEmbedder.Embed.
func (e *Embedder) Embed(ctx context.Context, imageURL string) (domain.EmbeddingVector, error) {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.String("embedding.model", e.preset.Model),
		attribute.String("image.url", imageURL),
	))
	defer span.End()

	vec, err := e.embed(spanCtx, imageURL)
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, domain.NewEmbeddingErr(imageURL, err)
	}
	return vec, nil
}

func (e *Embedder) embed(ctx context.Context, imageURL string) (domain.EmbeddingVector, error) {
	if !e.loaded {
		return nil, errors.New("embedding model is not loaded")
	}

	img, err := e.fetcher.Fetch(ctx, imageURL)
	if err != nil {
		return nil, fmt.Errorf("fetch image: %w", err)
	}

	tensor, err := e.preset.Preprocess(img.Data)
	if err != nil {
		return nil, err
	}

	inferCtx, cancel := e.withTimeout(ctx)
	defer cancel()

	if err := e.sem.Acquire(inferCtx, 1); err != nil {
		return nil, err
	}
	resp, err := e.client.Infer(inferCtx, e.preset.Model, InferRequest{
		Inputs: []InferInputTensor{{
			Name:     e.inputName,
			Shape:    e.preset.TensorShape(),
			Datatype: Datatype_FP32,
			Data:     tensor,
		}},
	})
	e.sem.Release(1)
	if err != nil {
		return nil, fmt.Errorf("infer: %w", err)
	}
	if len(resp.Outputs) == 0 {
		return nil, errors.New("infer: response has no outputs")
	}

	raw := resp.Outputs[0].Data
	if len(raw) != e.preset.Dimension {
		return nil, fmt.Errorf("embedding has dimension %d, expected %d", len(raw), e.preset.Dimension)
	}

	vec, ok := common.L2Normalize(raw)
	if !ok {
		return nil, errors.New("embedding has zero or non-finite norm")
	}

	out := make(domain.EmbeddingVector, len(vec))
	for i, v := range vec {
		out[i] = float32(v)
	}
	return out, nil
}

func (e *Embedder) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if e.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, e.timeout)
}

// Dimension implements domain.ImageEmbedder.Dimension.
func (e *Embedder) Dimension() int {
	return e.preset.Dimension
}

// Model implements domain.ImageEmbedder.Model.
func (e *Embedder) Model() string {
	return e.preset.Model
}

// Loaded implements domain.ImageEmbedder.Loaded.
func (e *Embedder) Loaded() bool {
	return e.loaded
}

// InitEmbedder initializes the ImageEmbedder dependency.
type InitEmbedder struct {
	Logger         *log.Logger         `resolve:""`
	HttpClient     *http.Client        `resolve:""`
	Fetcher        domain.ImageFetcher `resolve:""`
	Host           string              `config:"INFERENCE_HOST" default:"http://localhost:8085"`
	Preset         string              `config:"EMBEDDING_MODEL_PRESET" default:"nextbest"`
	MaxConcurrency int                 `config:"EMBEDDING_MAX_CONCURRENCY" default:"4"`
	Timeout        time.Duration       `config:"INFERENCE_TIMEOUT" default:"60s"`
}

// Initialize registers the embedder. A model server that cannot be reached leaves it registered but not loaded.
func (i InitEmbedder) Initialize(ctx context.Context) (context.Context, error) {
	preset, err := LookupPreset(i.Preset)
	if err != nil {
		return ctx, err
	}

	embedder := NewEmbedder(NewKServeClient(i.Host, i.HttpClient), i.Fetcher, preset, i.MaxConcurrency, i.Timeout)
	if err := embedder.Load(ctx); err != nil {
		i.Logger.Printf("InitEmbedder: model %s unavailable: %v", preset.Model, err)
	} else {
		i.Logger.Printf("InitEmbedder: loaded %s (preset %s, dimension %d)", preset.Model, preset.Name, preset.Dimension)
	}

	depend.Register[domain.ImageEmbedder](embedder)
	return ctx, nil
}
