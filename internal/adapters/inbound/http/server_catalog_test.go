package http

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/visionffe/visionffe-api/internal/adapters/inbound/http/gen"
	"github.com/visionffe/visionffe-api/internal/domain"
	"github.com/visionffe/visionffe-api/internal/usecases"
	"github.com/visionffe/visionffe-api/internal/usecases/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestVisionServer_GetServiceStatus(t *testing.T) {
	tests := map[string]struct {
		status       usecases.ServiceStatus
		expectedBody gen.ServiceStatus
	}{
		"connected": {
			status: usecases.ServiceStatus{
				Status:       "running",
				Model:        "clip-vit-b32",
				ModelLoaded:  true,
				VectorIndex:  usecases.VectorIndexStatus_Connected,
				DatabaseSize: 42,
			},
			expectedBody: gen.ServiceStatus{
				Status:       "running",
				Model:        "clip-vit-b32",
				ModelLoaded:  true,
				VectorIndex:  gen.Connected,
				DatabaseSize: 42,
			},
		},
		"index-unavailable": {
			status: usecases.ServiceStatus{
				Status:      "running",
				Model:       "clip-vit-b32",
				VectorIndex: usecases.VectorIndexStatus_Unavailable,
			},
			expectedBody: gen.ServiceStatus{
				Status:      "running",
				Model:       "clip-vit-b32",
				VectorIndex: gen.Unavailable,
			},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			uc := mocks.NewMockGetServiceStatus(t)
			uc.EXPECT().Execute(mock.Anything).Return(tt.status)

			server := &VisionServer{GetServiceStatusUseCase: uc, Logger: discardLogger()}

			w := httptest.NewRecorder()
			gen.Handler(server).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

			assert.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, tt.expectedBody, decodeJSON[gen.ServiceStatus](t, w))
		})
	}
}

func TestVisionServer_GetCatalogStats(t *testing.T) {
	tests := map[string]struct {
		setupMocks     func(*mocks.MockGetCatalogStats)
		expectedStatus int
		expectedBody   *gen.CatalogStats
		expectedError  *gen.ErrorResp
	}{
		"success": {
			setupMocks: func(m *mocks.MockGetCatalogStats) {
				m.EXPECT().Execute(mock.Anything).Return(usecases.CatalogStats{
					TotalImages:   10,
					Dimension:     512,
					IndexFullness: 0.25,
					Model:         "clip-vit-b32",
				}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody: &gen.CatalogStats{
				TotalImages:   10,
				Dimension:     512,
				IndexFullness: 0.25,
				Model:         "clip-vit-b32",
			},
		},
		"forbidden": {
			setupMocks: func(m *mocks.MockGetCatalogStats) {
				m.EXPECT().Execute(mock.Anything).
					Return(usecases.CatalogStats{}, domain.NewForbiddenErr("missing permission stats:read"))
			},
			expectedStatus: http.StatusForbidden,
			expectedError:  errResp(gen.FORBIDDEN, "missing permission stats:read"),
		},
		"index-unavailable": {
			setupMocks: func(m *mocks.MockGetCatalogStats) {
				m.EXPECT().Execute(mock.Anything).
					Return(usecases.CatalogStats{}, fmt.Errorf("%w: %w", domain.NewUnavailableErr("vector index is unavailable"), errors.New("dial tcp")))
			},
			expectedStatus: http.StatusServiceUnavailable,
			expectedError:  errResp(gen.UNAVAILABLE, "vector index is unavailable"),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			uc := mocks.NewMockGetCatalogStats(t)
			tt.setupMocks(uc)

			server := &VisionServer{GetCatalogStatsUseCase: uc, Logger: discardLogger()}

			w := httptest.NewRecorder()
			gen.Handler(server).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/database/stats", nil))

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedBody != nil {
				assert.Equal(t, *tt.expectedBody, decodeJSON[gen.CatalogStats](t, w))
			}
			if tt.expectedError != nil {
				assert.Equal(t, *tt.expectedError, decodeJSON[gen.ErrorResp](t, w))
			}
		})
	}
}

func TestVisionServer_UploadCatalogImages(t *testing.T) {
	sofa := testFile{name: "sofa.jpg", contentType: "image/jpeg", data: "sofa-bytes"}
	chair := testFile{name: "chair.png", contentType: "image/png", data: "chair-bytes"}

	tests := map[string]struct {
		files          []testFile
		fields         map[string][]string
		setupMocks     func(*mocks.MockIngestCatalogImages)
		expectedStatus int
		expectedBody   *gen.UploadResp
		expectedError  *gen.ErrorResp
	}{
		"success-with-partial-metadata": {
			files:  []testFile{sofa, chair},
			fields: map[string][]string{"metadata": {`[{"brand":"Acme","price":120}]`}},
			setupMocks: func(m *mocks.MockIngestCatalogImages) {
				m.EXPECT().Execute(mock.Anything, []usecases.CatalogUpload{
					{File: sofa.upload(), Metadata: domain.Metadata{"brand": "Acme", "price": float64(120)}},
					{File: chair.upload(), Metadata: domain.Metadata{}},
				}).Return(usecases.IngestReport{
					Uploaded:          1,
					Failed:            1,
					TotalDatabaseSize: 7,
					Items: []usecases.IngestItemResult{
						{Filename: "sofa.jpg", Success: true, ID: "sofa-id", ImageURL: "https://cdn.example.com/furniture/a.jpg"},
						{Filename: "chair.png", FailedStep: usecases.PipelineStep_Embed, Error: "embedding failed"},
					},
				}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody: &gen.UploadResp{
				Success:           true,
				Uploaded:          1,
				Failed:            1,
				TotalDatabaseSize: 7,
				Items: []gen.UploadItem{
					{Filename: "sofa.jpg", Success: true, Id: ptr("sofa-id"), ImageUrl: ptr("https://cdn.example.com/furniture/a.jpg")},
					{Filename: "chair.png", FailedStep: ptr(gen.Embed), Error: ptr("embedding failed")},
				},
			},
		},
		"invalid-metadata-json": {
			files:          []testFile{sofa},
			fields:         map[string][]string{"metadata": {`{not json`}},
			setupMocks:     func(m *mocks.MockIngestCatalogImages) {},
			expectedStatus: http.StatusBadRequest,
		},
		"more-metadata-than-files": {
			files:          []testFile{sofa},
			fields:         map[string][]string{"metadata": {`[{},{}]`}},
			setupMocks:     func(m *mocks.MockIngestCatalogImages) {},
			expectedStatus: http.StatusBadRequest,
			expectedError:  errResp(gen.BADREQUEST, "metadata has 2 entries for 1 files"),
		},
		"model-not-loaded": {
			files: []testFile{sofa},
			setupMocks: func(m *mocks.MockIngestCatalogImages) {
				m.EXPECT().Execute(mock.Anything, mock.Anything).
					Return(usecases.IngestReport{}, domain.NewUnavailableErr("embedding model is not loaded"))
			},
			expectedStatus: http.StatusServiceUnavailable,
			expectedError:  errResp(gen.UNAVAILABLE, "embedding model is not loaded"),
		},
		"unauthenticated": {
			files: []testFile{sofa},
			setupMocks: func(m *mocks.MockIngestCatalogImages) {
				m.EXPECT().Execute(mock.Anything, mock.Anything).
					Return(usecases.IngestReport{}, domain.NewUnauthorizedErr("authentication required"))
			},
			expectedStatus: http.StatusUnauthorized,
			expectedError:  errResp(gen.UNAUTHORIZED, "authentication required"),
		},
		"internal-error": {
			files: []testFile{sofa},
			setupMocks: func(m *mocks.MockIngestCatalogImages) {
				m.EXPECT().Execute(mock.Anything, mock.Anything).
					Return(usecases.IngestReport{}, errors.New("boom"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedError:  errResp(gen.INTERNALERROR, "internal server error"),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			uc := mocks.NewMockIngestCatalogImages(t)
			tt.setupMocks(uc)

			server := &VisionServer{IngestCatalogImagesUseCase: uc, Logger: discardLogger()}

			w := httptest.NewRecorder()
			gen.Handler(server).ServeHTTP(w, newMultipartRequest(t, "/api/upload", tt.files, tt.fields))

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedBody != nil {
				assert.Equal(t, *tt.expectedBody, decodeJSON[gen.UploadResp](t, w))
			}
			if tt.expectedError != nil {
				assert.Equal(t, *tt.expectedError, decodeJSON[gen.ErrorResp](t, w))
			}
		})
	}
}

func TestVisionServer_UploadCatalogImages_BodyTooLarge(t *testing.T) {
	uc := mocks.NewMockIngestCatalogImages(t)
	server := &VisionServer{IngestCatalogImagesUseCase: uc, Logger: discardLogger(), MaxUploadMB: 1}

	big := testFile{name: "big.jpg", contentType: "image/jpeg", data: strings.Repeat("x", 2<<20)}
	w := httptest.NewRecorder()
	gen.Handler(server).ServeHTTP(w, newMultipartRequest(t, "/api/upload", []testFile{big}, nil))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, *errResp(gen.BADREQUEST, "request body exceeds 1 MB"), decodeJSON[gen.ErrorResp](t, w))
}

func TestVisionServer_SearchCatalog(t *testing.T) {
	query := testFile{name: "query.jpg", contentType: "image/jpeg", data: "query-bytes"}
	queryUpload := query.upload()

	report := usecases.SearchReport{
		TotalQueries:      2,
		TotalDatabaseSize: 9,
		Results: []usecases.SearchQueryResult{
			{
				QueryIdentifier: "https://img.example.com/sofa.jpg",
				Success:         true,
				Category:        "Sofas",
				Results: []usecases.SearchMatch{
					{
						ID:              "sofa-1",
						SimilarityScore: 0.93,
						Metadata:        domain.Metadata{"category": "Sofas", "brand": "Acme"},
						ImagePath:       "https://cdn.example.com/furniture/sofa-1.jpg",
						Filename:        "sofa-1.jpg",
					},
				},
			},
			{
				QueryIdentifier: "https://img.example.com/broken.jpg",
				FailedStep:      usecases.PipelineStep_Embed,
				Error:           "embedding failed",
			},
		},
	}
	restReport := gen.SearchResp{
		Success:           true,
		TotalQueries:      2,
		TotalDatabaseSize: 9,
		Results: []gen.SearchQueryResult{
			{
				QueryIdentifier: "https://img.example.com/sofa.jpg",
				Success:         true,
				Category:        ptr("Sofas"),
				Results: []gen.SearchMatch{
					{
						Id:              "sofa-1",
						SimilarityScore: 0.93,
						Metadata:        map[string]interface{}{"category": "Sofas", "brand": "Acme"},
						ImagePath:       "https://cdn.example.com/furniture/sofa-1.jpg",
						Filename:        "sofa-1.jpg",
					},
				},
			},
			{
				QueryIdentifier: "https://img.example.com/broken.jpg",
				Results:         []gen.SearchMatch{},
				FailedStep:      ptr(gen.Embed),
				Error:           ptr("embedding failed"),
			},
		},
	}

	tests := map[string]struct {
		request        func(t *testing.T) *http.Request
		setupMocks     func(*mocks.MockSearchCatalog)
		expectedStatus int
		expectedBody   *gen.SearchResp
		expectedError  *gen.ErrorResp
	}{
		"json-urls-with-default-top-k": {
			request: func(t *testing.T) *http.Request {
				return newJSONRequest(t, http.MethodPost, "/api/search", gen.SearchReq{
					ImageUrls: []string{"https://img.example.com/sofa.jpg", "https://img.example.com/broken.jpg"},
				})
			},
			setupMocks: func(m *mocks.MockSearchCatalog) {
				m.EXPECT().Execute(mock.Anything, usecases.SearchRequest{
					TopK: 5,
					Queries: []usecases.SearchQuery{
						{ImageURL: "https://img.example.com/sofa.jpg"},
						{ImageURL: "https://img.example.com/broken.jpg"},
					},
				}).Return(report, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   &restReport,
		},
		"json-explicit-top-k-out-of-range": {
			request: func(t *testing.T) *http.Request {
				return newJSONRequest(t, http.MethodPost, "/api/search", gen.SearchReq{
					ImageUrls: []string{"https://img.example.com/sofa.jpg"},
					TopK:      ptr(101),
				})
			},
			setupMocks: func(m *mocks.MockSearchCatalog) {
				m.EXPECT().Execute(mock.Anything, usecases.SearchRequest{
					TopK:    101,
					Queries: []usecases.SearchQuery{{ImageURL: "https://img.example.com/sofa.jpg"}},
				}).Return(usecases.SearchReport{}, domain.NewValidationErr("top_k must be between 1 and 100"))
			},
			expectedStatus: http.StatusBadRequest,
			expectedError:  errResp(gen.BADREQUEST, "top_k must be between 1 and 100"),
		},
		"json-empty-queries": {
			request: func(t *testing.T) *http.Request {
				return newJSONRequest(t, http.MethodPost, "/api/search", gen.SearchReq{})
			},
			setupMocks: func(m *mocks.MockSearchCatalog) {
				m.EXPECT().Execute(mock.Anything, usecases.SearchRequest{TopK: 5}).
					Return(usecases.SearchReport{}, domain.NewValidationErr("at least one query image is required"))
			},
			expectedStatus: http.StatusBadRequest,
			expectedError:  errResp(gen.BADREQUEST, "at least one query image is required"),
		},
		"invalid-json": {
			request: func(t *testing.T) *http.Request {
				return newJSONRequest(t, http.MethodPost, "/api/search", []byte(`{"image_urls": "nope"}`))
			},
			setupMocks:     func(m *mocks.MockSearchCatalog) {},
			expectedStatus: http.StatusBadRequest,
		},
		"multipart-files": {
			request: func(t *testing.T) *http.Request {
				return newMultipartRequest(t, "/api/search", []testFile{query}, map[string][]string{"top_k": {"3"}})
			},
			setupMocks: func(m *mocks.MockSearchCatalog) {
				m.EXPECT().Execute(mock.Anything, usecases.SearchRequest{
					TopK:    3,
					Queries: []usecases.SearchQuery{{File: &queryUpload}},
				}).Return(usecases.SearchReport{TotalQueries: 1, Results: []usecases.SearchQueryResult{
					{QueryIdentifier: "query.jpg", Success: true, Category: "Sofas"},
				}}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody: &gen.SearchResp{
				Success:      true,
				TotalQueries: 1,
				Results: []gen.SearchQueryResult{
					{QueryIdentifier: "query.jpg", Success: true, Category: ptr("Sofas"), Results: []gen.SearchMatch{}},
				},
			},
		},
		"multipart-invalid-top-k": {
			request: func(t *testing.T) *http.Request {
				return newMultipartRequest(t, "/api/search", []testFile{query}, map[string][]string{"top_k": {"many"}})
			},
			setupMocks:     func(m *mocks.MockSearchCatalog) {},
			expectedStatus: http.StatusBadRequest,
			expectedError:  errResp(gen.BADREQUEST, "invalid top_k: many"),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			uc := mocks.NewMockSearchCatalog(t)
			tt.setupMocks(uc)

			server := &VisionServer{SearchCatalogUseCase: uc, Logger: discardLogger()}

			w := httptest.NewRecorder()
			gen.Handler(server).ServeHTTP(w, tt.request(t))

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedBody != nil {
				assert.Equal(t, *tt.expectedBody, decodeJSON[gen.SearchResp](t, w))
			}
			if tt.expectedError != nil {
				assert.Equal(t, *tt.expectedError, decodeJSON[gen.ErrorResp](t, w))
			}
		})
	}
}

func ptr[T any](v T) *T {
	return &v
}
