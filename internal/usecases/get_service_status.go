package usecases

import (
	"context"
	"log"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/visionffe/visionffe-api/internal/domain"
	"github.com/visionffe/visionffe-api/internal/telemetry"
)

const (
	VectorIndexStatus_Connected   = "connected"
	VectorIndexStatus_Unavailable = "unavailable"
)

// ServiceStatus reports whether the service and its dependencies can serve requests.
type ServiceStatus struct {
	Status       string
	Model        string
	ModelLoaded  bool
	VectorIndex  string
	DatabaseSize int
}

// GetServiceStatus defines the interface for the GetServiceStatus use case.
type GetServiceStatus interface {
	Execute(ctx context.Context) ServiceStatus
}

// GetServiceStatusImpl is the implementation of the GetServiceStatus use case.
type GetServiceStatusImpl struct {
	index    domain.VectorIndex
	embedder domain.ImageEmbedder
	logger   *log.Logger
}

// NewGetServiceStatusImpl creates a new instance of GetServiceStatusImpl.
func NewGetServiceStatusImpl(index domain.VectorIndex, embedder domain.ImageEmbedder, logger *log.Logger) GetServiceStatusImpl {
	return GetServiceStatusImpl{index: index, embedder: embedder, logger: logger}
}

// Execute never fails. An unreachable index is reported as unavailable with a zero size.
func (gss GetServiceStatusImpl) Execute(ctx context.Context) ServiceStatus {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	status := ServiceStatus{
		Status:      "running",
		Model:       gss.embedder.Model(),
		ModelLoaded: gss.embedder.Loaded(),
		VectorIndex: VectorIndexStatus_Connected,
	}

	stats, err := gss.index.Describe(spanCtx)
	if err != nil {
		gss.logger.Printf("GetServiceStatus: vector index is unavailable: %v", err)
		status.VectorIndex = VectorIndexStatus_Unavailable
		return status
	}
	status.DatabaseSize = stats.TotalVectorCount
	return status
}

// InitGetServiceStatus initializes the GetServiceStatus use case and registers it in the dependency container.
type InitGetServiceStatus struct {
	Index    domain.VectorIndex   `resolve:""`
	Embedder domain.ImageEmbedder `resolve:""`
	Logger   *log.Logger          `resolve:""`
}

// Initialize registers the GetServiceStatus use case.
func (igss InitGetServiceStatus) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[GetServiceStatus](NewGetServiceStatusImpl(igss.Index, igss.Embedder, igss.Logger))
	return ctx, nil
}
