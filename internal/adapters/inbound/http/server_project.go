package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/google/uuid"
	"github.com/visionffe/visionffe-api/internal/adapters/inbound/http/gen"
	"github.com/visionffe/visionffe-api/internal/domain"
)

func (api VisionServer) ListProjects(w http.ResponseWriter, r *http.Request) {
	projects, err := api.ListProjectsUseCase.Execute(r.Context())
	if err != nil {
		api.Logger.Printf("VisionServer: error listing projects: %v", err)
		respondError(w, toError(err))
		return
	}

	resp := []gen.Project{}
	for _, p := range projects {
		resp = append(resp, toProject(p))
	}
	respondJSON(w, http.StatusOK, resp)
}

func (api VisionServer) CreateProject(w http.ResponseWriter, r *http.Request) {
	var req gen.CreateProjectJSONRequestBody
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, badRequest(fmt.Sprintf("invalid request body: %v", err)))
		return
	}

	project, err := api.CreateProjectUseCase.Execute(r.Context(), req.Name)
	if err != nil {
		api.Logger.Printf("VisionServer: error creating project: %v", err)
		respondError(w, toError(err))
		return
	}
	respondJSON(w, http.StatusCreated, toProject(project))
}

func (api VisionServer) GetProject(w http.ResponseWriter, r *http.Request, projectId gen.ProjectId) {
	project, err := api.GetProjectUseCase.Execute(r.Context(), uuid.UUID(projectId))
	if err != nil {
		respondError(w, toError(err))
		return
	}
	respondJSON(w, http.StatusOK, toProject(project))
}

func (api VisionServer) UploadProjectPhotos(w http.ResponseWriter, r *http.Request, projectId gen.ProjectId) {
	if err := api.parseMultipart(w, r); err != nil {
		respondError(w, badRequest(err.Error()))
		return
	}
	files, err := readFiles(r)
	if err != nil {
		respondError(w, badRequest(err.Error()))
		return
	}

	project, err := api.UploadProjectPhotosUseCase.Execute(r.Context(), uuid.UUID(projectId), files)
	if err != nil {
		api.Logger.Printf("VisionServer: error uploading photos to project %s: %v", projectId, err)
		respondError(w, toError(err))
		return
	}
	respondJSON(w, http.StatusOK, toProject(project))
}

func (api VisionServer) IdentifyProjectItems(w http.ResponseWriter, r *http.Request, projectId gen.ProjectId) {
	var (
		files []domain.FileUpload
		urls  []string
	)

	if isMultipart(r) {
		if err := api.parseMultipart(w, r); err != nil {
			respondError(w, badRequest(err.Error()))
			return
		}
		var err error
		if files, err = readFiles(r); err != nil {
			respondError(w, badRequest(err.Error()))
			return
		}
		urls = formValues(r, "urls")
	} else {
		var req gen.IdentifyProjectItemsJSONRequestBody
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
			respondError(w, badRequest(fmt.Sprintf("invalid request body: %v", err)))
			return
		}
		if req.Urls != nil {
			urls = *req.Urls
		}
	}

	items, err := api.IdentifyItemsUseCase.Execute(r.Context(), uuid.UUID(projectId), files, urls)
	if err != nil {
		api.Logger.Printf("VisionServer: error identifying items in project %s: %v", projectId, err)
		respondError(w, toError(err))
		return
	}
	if items == nil {
		items = []string{}
	}
	respondJSON(w, http.StatusOK, gen.IdentifyResp{Items: items})
}

func (api VisionServer) ExtractProjectItem(w http.ResponseWriter, r *http.Request, projectId gen.ProjectId) {
	var req gen.ExtractProjectItemJSONRequestBody
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, badRequest(fmt.Sprintf("invalid request body: %v", err)))
		return
	}

	item, err := api.ExtractItemUseCase.Execute(r.Context(), uuid.UUID(projectId), req.ItemName)
	if err != nil {
		api.Logger.Printf("VisionServer: error extracting %q from project %s: %v", req.ItemName, projectId, err)
		respondError(w, toError(err))
		return
	}
	if item == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	respondJSON(w, http.StatusOK, gen.ExtractResp{ImageUrl: item.URL, Name: item.Name})
}
