package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/visionffe/visionffe-api/internal/adapters/inbound/http/gen"
	"github.com/visionffe/visionffe-api/internal/domain"
	"github.com/visionffe/visionffe-api/internal/usecases"
)

func (api VisionServer) GetServiceStatus(w http.ResponseWriter, r *http.Request) {
	status := api.GetServiceStatusUseCase.Execute(r.Context())
	respondJSON(w, http.StatusOK, toServiceStatus(status))
}

func (api VisionServer) GetCatalogStats(w http.ResponseWriter, r *http.Request) {
	stats, err := api.GetCatalogStatsUseCase.Execute(r.Context())
	if err != nil {
		api.Logger.Printf("VisionServer: error getting catalog stats: %v", err)
		respondError(w, toError(err))
		return
	}
	respondJSON(w, http.StatusOK, toCatalogStats(stats))
}

func (api VisionServer) UploadCatalogImages(w http.ResponseWriter, r *http.Request) {
	if err := api.parseMultipart(w, r); err != nil {
		respondError(w, badRequest(err.Error()))
		return
	}
	files, err := readFiles(r)
	if err != nil {
		respondError(w, badRequest(err.Error()))
		return
	}

	var metadata []map[string]any
	if raw := strings.TrimSpace(r.FormValue("metadata")); raw != "" {
		if err := json.Unmarshal([]byte(raw), &metadata); err != nil {
			respondError(w, badRequest(fmt.Sprintf("invalid metadata: %v", err)))
			return
		}
	}
	if len(metadata) > len(files) {
		respondError(w, badRequest(fmt.Sprintf("metadata has %d entries for %d files", len(metadata), len(files))))
		return
	}

	uploads := make([]usecases.CatalogUpload, 0, len(files))
	for i, f := range files {
		upload := usecases.CatalogUpload{File: f, Metadata: domain.Metadata{}}
		if i < len(metadata) && metadata[i] != nil {
			upload.Metadata = domain.Metadata(metadata[i])
		}
		uploads = append(uploads, upload)
	}

	report, err := api.IngestCatalogImagesUseCase.Execute(r.Context(), uploads)
	if err != nil {
		api.Logger.Printf("VisionServer: error ingesting catalog images: %v", err)
		respondError(w, toError(err))
		return
	}
	respondJSON(w, http.StatusOK, toUploadResp(report))
}

func (api VisionServer) SearchCatalog(w http.ResponseWriter, r *http.Request) {
	req := usecases.SearchRequest{TopK: domain.DefaultTopK}

	if isMultipart(r) {
		if err := api.parseMultipart(w, r); err != nil {
			respondError(w, badRequest(err.Error()))
			return
		}
		files, err := readFiles(r)
		if err != nil {
			respondError(w, badRequest(err.Error()))
			return
		}
		if raw := strings.TrimSpace(r.FormValue("top_k")); raw != "" {
			topK, err := strconv.Atoi(raw)
			if err != nil {
				respondError(w, badRequest(fmt.Sprintf("invalid top_k: %s", raw)))
				return
			}
			req.TopK = topK
		}
		for i := range files {
			req.Queries = append(req.Queries, usecases.SearchQuery{File: &files[i]})
		}
	} else {
		var body gen.SearchCatalogJSONRequestBody
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			respondError(w, badRequest(fmt.Sprintf("invalid request body: %v", err)))
			return
		}
		if body.TopK != nil {
			req.TopK = *body.TopK
		}
		for _, u := range body.ImageUrls {
			req.Queries = append(req.Queries, usecases.SearchQuery{ImageURL: u})
		}
	}

	report, err := api.SearchCatalogUseCase.Execute(r.Context(), req)
	if err != nil {
		api.Logger.Printf("VisionServer: error searching catalog: %v", err)
		respondError(w, toError(err))
		return
	}
	respondJSON(w, http.StatusOK, toSearchResp(report))
}
