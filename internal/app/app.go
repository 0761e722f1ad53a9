package app

import (
	"github.com/cleitonmarx/symbiont"
	"github.com/visionffe/visionffe-api/internal/adapters/inbound/http"
	"github.com/visionffe/visionffe-api/internal/adapters/inbound/workers"
	"github.com/visionffe/visionffe-api/internal/adapters/outbound/config"
	"github.com/visionffe/visionffe-api/internal/adapters/outbound/gemini"
	"github.com/visionffe/visionffe-api/internal/adapters/outbound/imagefetch"
	"github.com/visionffe/visionffe-api/internal/adapters/outbound/inference"
	"github.com/visionffe/visionffe-api/internal/adapters/outbound/log"
	"github.com/visionffe/visionffe-api/internal/adapters/outbound/memindex"
	"github.com/visionffe/visionffe-api/internal/adapters/outbound/objectstore"
	"github.com/visionffe/visionffe-api/internal/adapters/outbound/postgres"
	"github.com/visionffe/visionffe-api/internal/adapters/outbound/pubsub"
	"github.com/visionffe/visionffe-api/internal/adapters/outbound/time"
	"github.com/visionffe/visionffe-api/internal/telemetry"
	"github.com/visionffe/visionffe-api/internal/usecases"
)

// NewVisionApp creates and returns a new instance of the VisionFFE application.
func NewVisionApp(initializers ...symbiont.Initializer) *symbiont.App {
	return symbiont.NewApp().
		Initialize(initializers...).
		Initialize(
			&log.InitLogger{},
			&telemetry.InitOpenTelemetry{},
			&telemetry.InitHttpClient{},
			&config.InitVaultProvider{},
			&postgres.InitDB{},
			&postgres.InitUnitOfWork{},
			&time.InitCurrentTimeProvider{},
			&imagefetch.InitClient{},
			&inference.InitEmbedder{},
			&postgres.InitCatalogIndex{},
			&memindex.InitIndex{},
			&objectstore.InitStore{},
			&gemini.InitVisionClient{},
			&pubsub.InitClient{},
			&pubsub.InitTopics{},
			&pubsub.InitPublisher{},

			&usecases.InitGetServiceStatus{},
			&usecases.InitGetCatalogStats{},
			&usecases.InitIngestCatalogImages{},
			&usecases.InitSearchCatalog{},
			&usecases.InitCreateProject{},
			&usecases.InitListProjects{},
			&usecases.InitGetProject{},
			&usecases.InitUploadProjectPhotos{},
			&usecases.InitIdentifyProjectItems{},
			&usecases.InitExtractProjectItem{},
			&usecases.InitDiscardBlob{},
			&usecases.InitRelayOutbox{},
		).
		Host(
			&http.VisionServer{},
			&workers.MessageRelay{},
			&workers.BlobJanitor{},
		).
		Introspect(&DependencyGraphIntrospector{})
}
