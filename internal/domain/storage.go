package domain

import (
	"context"
	"fmt"
	"net/url"
	"path"

	"github.com/google/uuid"
)

// StorageNamespace is the key prefix grouping stored blobs.
type StorageNamespace string

const (
	// StorageNamespace_Furniture holds catalog images.
	StorageNamespace_Furniture StorageNamespace = "furniture"
	// StorageNamespace_Temp holds query images uploaded for a single search.
	StorageNamespace_Temp StorageNamespace = "temp"
)

// ProjectPhotosNamespace returns the namespace for a project's room photos.
func ProjectPhotosNamespace(projectID uuid.UUID) StorageNamespace {
	return StorageNamespace(fmt.Sprintf("projects/%s", projectID))
}

// ProjectExtractedNamespace returns the namespace for a project's extracted item images.
func ProjectExtractedNamespace(projectID uuid.UUID) StorageNamespace {
	return StorageNamespace(fmt.Sprintf("projects/%s/extracted", projectID))
}

// BlobUpload is the input of a storage write.
type BlobUpload struct {
	Data        []byte
	Namespace   StorageNamespace
	ContentType string
	Filename    string
}

// Validate checks the upload before any network call.
func (b BlobUpload) Validate() error {
	if len(b.Data) == 0 {
		return NewValidationErr("file is empty")
	}
	if b.Namespace == "" {
		return NewValidationErr("storage namespace is required")
	}
	return nil
}

// ObjectStore writes and deletes blobs in public object storage.
type ObjectStore interface {
	// Put stores the blob under a fresh random key and returns its public URL.
	Put(ctx context.Context, upload BlobUpload) (string, error)
	// Delete removes the blob behind a public URL. It reports whether a blob was deleted.
	Delete(ctx context.Context, url string) (bool, error)
	// Configured reports whether bucket and credentials are present.
	Configured() bool
}

// FileUpload is a file received from a caller before it is stored.
type FileUpload struct {
	Filename    string
	ContentType string
	Data        []byte
}

// ObjectName returns the last path segment of a stored blob URL, which is its {hex}{ext} name.
func ObjectName(blobURL string) string {
	u, err := url.Parse(blobURL)
	if err != nil || u.Path == "" {
		return ""
	}
	name := path.Base(u.Path)
	if name == "/" || name == "." {
		return ""
	}
	return name
}
