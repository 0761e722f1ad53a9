package http

import (
	"errors"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/visionffe/visionffe-api/internal/domain"
)

const filesField = "files"

func isMultipart(r *http.Request) bool {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	return err == nil && mediaType == "multipart/form-data"
}

// parseMultipart bounds the body size and parses the form.
func (api VisionServer) parseMultipart(w http.ResponseWriter, r *http.Request) error {
	limit := api.maxUploadBytes()
	r.Body = http.MaxBytesReader(w, r.Body, limit)
	if err := r.ParseMultipartForm(limit); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return fmt.Errorf("request body exceeds %d MB", limit>>20)
		}
		return fmt.Errorf("invalid multipart form: %w", err)
	}
	return nil
}

// readFiles loads every part of the files field in form order.
func readFiles(r *http.Request) ([]domain.FileUpload, error) {
	if r.MultipartForm == nil {
		return nil, nil
	}
	headers := r.MultipartForm.File[filesField]
	files := make([]domain.FileUpload, 0, len(headers))
	for _, fh := range headers {
		file, err := readFile(fh)
		if err != nil {
			return nil, err
		}
		files = append(files, file)
	}
	return files, nil
}

func readFile(fh *multipart.FileHeader) (domain.FileUpload, error) {
	f, err := fh.Open()
	if err != nil {
		return domain.FileUpload{}, fmt.Errorf("failed to open %s: %w", fh.Filename, err)
	}
	defer f.Close() //nolint:errcheck

	data, err := io.ReadAll(f)
	if err != nil {
		return domain.FileUpload{}, fmt.Errorf("failed to read %s: %w", fh.Filename, err)
	}

	contentType := fh.Header.Get("Content-Type")
	if contentType == "" || contentType == "application/octet-stream" {
		contentType = http.DetectContentType(data)
	}

	return domain.FileUpload{
		Filename:    fh.Filename,
		ContentType: contentType,
		Data:        data,
	}, nil
}

// formValues returns the non-blank values of a repeated form field. Both the
// plain and the bracketed field names are accepted.
func formValues(r *http.Request, field string) []string {
	if r.MultipartForm == nil {
		return nil
	}
	var out []string
	for _, name := range []string{field, field + "[]"} {
		for _, v := range r.MultipartForm.Value[name] {
			if v = strings.TrimSpace(v); v != "" {
				out = append(out, v)
			}
		}
	}
	return out
}
