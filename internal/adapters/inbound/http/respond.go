package http

import (
	"encoding/json"
	"net/http"

	"github.com/visionffe/visionffe-api/internal/adapters/inbound/http/gen"
)

func respondJSON(w http.ResponseWriter, statusCode int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(payload)
}

func respondError(w http.ResponseWriter, err gen.ErrorResp) {
	statusCode := http.StatusInternalServerError
	switch err.Error.Code {
	case gen.BADREQUEST:
		statusCode = http.StatusBadRequest
	case gen.NOTFOUND:
		statusCode = http.StatusNotFound
	case gen.UNAUTHORIZED:
		statusCode = http.StatusUnauthorized
	case gen.FORBIDDEN:
		statusCode = http.StatusForbidden
	case gen.CONFLICT:
		statusCode = http.StatusConflict
	case gen.UNAVAILABLE:
		statusCode = http.StatusServiceUnavailable
	case gen.UPSTREAMERROR:
		statusCode = http.StatusBadGateway
	}
	respondJSON(w, statusCode, err)
}
