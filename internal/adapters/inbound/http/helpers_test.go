package http

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/visionffe/visionffe-api/internal/adapters/inbound/http/gen"
	"github.com/visionffe/visionffe-api/internal/domain"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

var (
	projectID     = uuid.MustParse("0b9d6c55-3f2c-4a57-9a0e-2f1f3e6c8d11")
	domainProject = domain.Project{
		ID:          projectID,
		OwnerUserID: "user-1",
		Name:        "Living room",
		PhotoURLs:   []string{"https://cdn.example.com/projects/room.jpg"},
		ExtractedItems: []domain.ExtractedItem{
			{Name: "sofa", URL: "https://cdn.example.com/projects/extracted/sofa.png"},
		},
		CreatedAt: time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC),
		UpdatedAt: time.Date(2026, 3, 2, 9, 30, 0, 0, time.UTC),
	}
	restProject = gen.Project{
		Id:          openapi_types.UUID(projectID),
		OwnerUserId: "user-1",
		Name:        "Living room",
		PhotoUrls:   []string{"https://cdn.example.com/projects/room.jpg"},
		ExtractedItems: []gen.ExtractedItem{
			{Name: "sofa", Url: "https://cdn.example.com/projects/extracted/sofa.png"},
		},
		CreatedAt: domainProject.CreatedAt,
		UpdatedAt: domainProject.UpdatedAt,
	}
)

type testFile struct {
	name        string
	contentType string
	data        string
}

func (f testFile) upload() domain.FileUpload {
	return domain.FileUpload{Filename: f.name, ContentType: f.contentType, Data: []byte(f.data)}
}

// newMultipartRequest builds a multipart/form-data request with the files under the files field.
func newMultipartRequest(t *testing.T, target string, files []testFile, fields map[string][]string) *http.Request {
	t.Helper()

	body := &bytes.Buffer{}
	mw := multipart.NewWriter(body)
	for _, f := range files {
		h := textproto.MIMEHeader{}
		h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="files"; filename="%s"`, f.name))
		h.Set("Content-Type", f.contentType)
		part, err := mw.CreatePart(h)
		if err != nil {
			t.Fatalf("failed to create part: %v", err)
		}
		if _, err := part.Write([]byte(f.data)); err != nil {
			t.Fatalf("failed to write part: %v", err)
		}
	}
	for name, values := range fields {
		for _, v := range values {
			if err := mw.WriteField(name, v); err != nil {
				t.Fatalf("failed to write field: %v", err)
			}
		}
	}
	if err := mw.Close(); err != nil {
		t.Fatalf("failed to close multipart writer: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, target, body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func newJSONRequest(t *testing.T, method, target string, body any) *http.Request {
	t.Helper()

	var reader io.Reader
	if body != nil {
		if raw, ok := body.([]byte); ok {
			reader = bytes.NewReader(raw)
		} else {
			reader = bytes.NewReader(serializeJSON(t, body))
		}
	}
	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Content-Type", "application/json")
	return req
}

func decodeJSON[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()

	var v T
	if err := json.Unmarshal(w.Body.Bytes(), &v); err != nil {
		t.Fatalf("failed to unmarshal response %q: %v", w.Body.String(), err)
	}
	return v
}

// serializeJSON is a helper function to marshal a value to JSON for test requests.
func serializeJSON(t *testing.T, v any) []byte {
	t.Helper()

	data, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("failed to marshal JSON: %v", err)
	}
	return data
}

func discardLogger() *log.Logger {
	return log.New(io.Discard, "", 0)
}

func errResp(code gen.ErrorCode, message string) *gen.ErrorResp {
	return &gen.ErrorResp{Error: gen.Error{Code: code, Message: message}}
}
