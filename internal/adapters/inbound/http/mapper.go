package http

import (
	"errors"

	"github.com/visionffe/visionffe-api/internal/adapters/inbound/http/gen"
	"github.com/visionffe/visionffe-api/internal/domain"
	"github.com/visionffe/visionffe-api/internal/usecases"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

func toError(err error) gen.ErrorResp {
	var (
		validationErr   *domain.ValidationErr
		notFoundErr     *domain.NotFoundErr
		unauthorizedErr *domain.UnauthorizedErr
		forbiddenErr    *domain.ForbiddenErr
		conflictErr     *domain.ConflictErr
		unavailableErr  *domain.UnavailableErr
		upstreamErr     *domain.UpstreamErr
		visionErr       *domain.VisionErr
		embeddingErr    *domain.EmbeddingErr
	)

	errResp := gen.ErrorResp{}
	switch {
	case errors.As(err, &validationErr):
		errResp.Error.Code = gen.BADREQUEST
		errResp.Error.Message = validationErr.Error()
	case errors.As(err, &notFoundErr):
		errResp.Error.Code = gen.NOTFOUND
		errResp.Error.Message = notFoundErr.Error()
	case errors.As(err, &unauthorizedErr):
		errResp.Error.Code = gen.UNAUTHORIZED
		errResp.Error.Message = unauthorizedErr.Error()
	case errors.As(err, &forbiddenErr):
		errResp.Error.Code = gen.FORBIDDEN
		errResp.Error.Message = forbiddenErr.Error()
	case errors.As(err, &conflictErr):
		errResp.Error.Code = gen.CONFLICT
		errResp.Error.Message = conflictErr.Error()
	case errors.As(err, &unavailableErr):
		errResp.Error.Code = gen.UNAVAILABLE
		errResp.Error.Message = unavailableErr.Error()
	case errors.As(err, &upstreamErr):
		errResp.Error.Code = gen.UPSTREAMERROR
		errResp.Error.Message = upstreamErr.Error()
	case errors.As(err, &visionErr):
		if visionErr.Kind == domain.VisionErrKind_InvalidInput {
			errResp.Error.Code = gen.BADREQUEST
		} else {
			errResp.Error.Code = gen.UPSTREAMERROR
		}
		errResp.Error.Message = visionErr.Error()
	case errors.As(err, &embeddingErr):
		errResp.Error.Code = gen.UPSTREAMERROR
		errResp.Error.Message = embeddingErr.Error()
	default:
		errResp.Error.Code = gen.INTERNALERROR
		errResp.Error.Message = "internal server error"
	}
	return errResp
}

func badRequest(message string) gen.ErrorResp {
	errResp := gen.ErrorResp{}
	errResp.Error.Code = gen.BADREQUEST
	errResp.Error.Message = message
	return errResp
}

func toProject(p domain.Project) gen.Project {
	resp := gen.Project{
		Id:             openapi_types.UUID(p.ID),
		OwnerUserId:    p.OwnerUserID,
		Name:           p.Name,
		PhotoUrls:      []string{},
		ExtractedItems: []gen.ExtractedItem{},
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
	resp.PhotoUrls = append(resp.PhotoUrls, p.PhotoURLs...)
	for _, item := range p.ExtractedItems {
		resp.ExtractedItems = append(resp.ExtractedItems, gen.ExtractedItem{Name: item.Name, Url: item.URL})
	}
	return resp
}

func toUploadResp(report usecases.IngestReport) gen.UploadResp {
	resp := gen.UploadResp{
		Success:           true,
		Uploaded:          report.Uploaded,
		Failed:            report.Failed,
		TotalDatabaseSize: report.TotalDatabaseSize,
		Items:             []gen.UploadItem{},
	}
	for _, item := range report.Items {
		out := gen.UploadItem{
			Filename: item.Filename,
			Success:  item.Success,
		}
		if item.Success {
			out.Id = &item.ID
			out.ImageUrl = &item.ImageURL
		} else {
			out.FailedStep = toPipelineStep(item.FailedStep)
			out.Error = &item.Error
		}
		resp.Items = append(resp.Items, out)
	}
	return resp
}

func toSearchResp(report usecases.SearchReport) gen.SearchResp {
	resp := gen.SearchResp{
		Success:           true,
		TotalQueries:      report.TotalQueries,
		TotalDatabaseSize: report.TotalDatabaseSize,
		Results:           []gen.SearchQueryResult{},
	}
	for _, result := range report.Results {
		out := gen.SearchQueryResult{
			QueryIdentifier: result.QueryIdentifier,
			Success:         result.Success,
			Results:         []gen.SearchMatch{},
		}
		if result.Category != "" {
			category := string(result.Category)
			out.Category = &category
		}
		if !result.Success {
			out.FailedStep = toPipelineStep(result.FailedStep)
			out.Error = &result.Error
		}
		for _, match := range result.Results {
			metadata := map[string]interface{}{}
			for k, v := range match.Metadata {
				metadata[k] = v
			}
			out.Results = append(out.Results, gen.SearchMatch{
				Id:              match.ID,
				SimilarityScore: match.SimilarityScore,
				Metadata:        metadata,
				ImagePath:       match.ImagePath,
				Filename:        match.Filename,
			})
		}
		resp.Results = append(resp.Results, out)
	}
	return resp
}

func toPipelineStep(step usecases.PipelineStep) *gen.PipelineStep {
	if step == "" {
		return nil
	}
	s := gen.PipelineStep(step)
	return &s
}

func toServiceStatus(status usecases.ServiceStatus) gen.ServiceStatus {
	return gen.ServiceStatus{
		Status:       status.Status,
		Model:        status.Model,
		ModelLoaded:  status.ModelLoaded,
		VectorIndex:  gen.ServiceStatusVectorIndex(status.VectorIndex),
		DatabaseSize: status.DatabaseSize,
	}
}

func toCatalogStats(stats usecases.CatalogStats) gen.CatalogStats {
	return gen.CatalogStats{
		TotalImages:   stats.TotalImages,
		Dimension:     stats.Dimension,
		IndexFullness: stats.IndexFullness,
		Model:         stats.Model,
	}
}
