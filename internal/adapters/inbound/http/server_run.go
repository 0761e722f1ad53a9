package http

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/rs/cors"
	"github.com/visionffe/visionffe-api/internal/adapters/inbound/http/gen"
	"github.com/visionffe/visionffe-api/internal/telemetry"
	"github.com/visionffe/visionffe-api/internal/usecases"
)

var _ gen.ServerInterface = (*VisionServer)(nil)

const defaultMaxUploadMB = 32

// VisionServer is the REST API HTTP server for the VisionFFE pipeline.
type VisionServer struct {
	Port                       int                           `config:"HTTP_PORT" default:"8080"`
	MaxUploadMB                int                           `config:"HTTP_MAX_UPLOAD_MB" default:"32"`
	Logger                     *log.Logger                   `resolve:""`
	GetServiceStatusUseCase    usecases.GetServiceStatus     `resolve:""`
	IngestCatalogImagesUseCase usecases.IngestCatalogImages  `resolve:""`
	SearchCatalogUseCase       usecases.SearchCatalog        `resolve:""`
	GetCatalogStatsUseCase     usecases.GetCatalogStats      `resolve:""`
	CreateProjectUseCase       usecases.CreateProject        `resolve:""`
	ListProjectsUseCase        usecases.ListProjects         `resolve:""`
	GetProjectUseCase          usecases.GetProject           `resolve:""`
	UploadProjectPhotosUseCase usecases.UploadProjectPhotos  `resolve:""`
	IdentifyItemsUseCase       usecases.IdentifyProjectItems `resolve:""`
	ExtractItemUseCase         usecases.ExtractProjectItem   `resolve:""`
}

// Run starts the HTTP server for the VisionServer.
func (api VisionServer) Run(ctx context.Context) error {
	mux := http.NewServeMux()

	// Register introspection endpoint for debugging and testing purposes
	mux.HandleFunc("/introspect", IntrospectHandler)

	h := gen.HandlerWithOptions(api, gen.StdHTTPServerOptions{
		BaseRouter: mux,
		Middlewares: []gen.MiddlewareFunc{
			Authenticate,
			telemetry.Middleware("visionffe-api"),
		},
		ErrorHandlerFunc: func(w http.ResponseWriter, r *http.Request, err error) {
			respondError(w, badRequest(err.Error()))
		},
	})

	// Apply CORS at the top-level so preflight requests hit it, too.
	h = cors.AllowAll().Handler(h)

	s := &http.Server{
		Handler:           h,
		Addr:              fmt.Sprintf(":%d", api.Port),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		api.Logger.Printf("VisionServer: Listening on port %d", api.Port)
		errCh <- s.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		err := s.Shutdown(shutdownCtx)
		if err != nil {
			api.Logger.Printf("VisionServer: error during shutdown: %v", err)
		} else {
			api.Logger.Println("VisionServer: stopped")
		}
		return err
	case err := <-errCh:
		return err
	}
}

// IsReady checks if the VisionServer is ready by performing a health check.
func (api VisionServer) IsReady(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("http://:%d", api.Port), nil)
	if err != nil {
		return err
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}
	return nil
}

func (api VisionServer) maxUploadBytes() int64 {
	if api.MaxUploadMB <= 0 {
		return defaultMaxUploadMB << 20
	}
	return int64(api.MaxUploadMB) << 20
}
