package objectstore

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log"
	"net/http"
	"regexp"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/visionffe/visionffe-api/internal/domain"
)

type fakeS3 struct {
	putErr    error
	deleteErr error
	puts      []*s3.PutObjectInput
	bodies    [][]byte
	deletes   []*s3.DeleteObjectInput
	deadline  bool
}

func (f *fakeS3) PutObject(ctx context.Context, params *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	_, f.deadline = ctx.Deadline()
	f.puts = append(f.puts, params)
	body, _ := io.ReadAll(params.Body)
	f.bodies = append(f.bodies, body)
	if f.putErr != nil {
		return nil, f.putErr
	}
	return &s3.PutObjectOutput{}, nil
}

func (f *fakeS3) DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, _ ...func(*s3.Options)) (*s3.DeleteObjectOutput, error) {
	_, f.deadline = ctx.Deadline()
	f.deletes = append(f.deletes, params)
	if f.deleteErr != nil {
		return nil, f.deleteErr
	}
	return &s3.DeleteObjectOutput{}, nil
}

const publicURL = "https://cdn.example.com"

func TestStore_Put(t *testing.T) {
	projectID := uuid.MustParse("8a3c7c1e-0d7e-4b8f-9a55-0f0c6e0b1d11")
	pngData := []byte("\x89PNG\r\n\x1a\n0000")

	tests := map[string]struct {
		api                 *fakeS3
		upload              domain.BlobUpload
		expectedKeyPattern  string
		expectedContentType string
		expectedErr         bool
		expectedValidation  bool
	}{
		"filename-extension": {
			api:                 &fakeS3{},
			upload:              domain.BlobUpload{Data: []byte("jpeg"), Namespace: domain.StorageNamespace_Furniture, ContentType: "image/jpeg", Filename: "Sofa.JPG"},
			expectedKeyPattern:  `^furniture/[0-9a-f]{32}\.jpg$`,
			expectedContentType: "image/jpeg",
		},
		"extension-from-content-type": {
			api:                 &fakeS3{},
			upload:              domain.BlobUpload{Data: []byte("webp"), Namespace: domain.StorageNamespace_Temp, ContentType: "image/webp"},
			expectedKeyPattern:  `^temp/[0-9a-f]{32}\.webp$`,
			expectedContentType: "image/webp",
		},
		"sniffed-content-type": {
			api:                 &fakeS3{},
			upload:              domain.BlobUpload{Data: pngData, Namespace: domain.ProjectExtractedNamespace(projectID)},
			expectedKeyPattern:  `^projects/8a3c7c1e-0d7e-4b8f-9a55-0f0c6e0b1d11/extracted/[0-9a-f]{32}\.png$`,
			expectedContentType: "image/png",
		},
		"unsafe-extension-ignored": {
			api:                 &fakeS3{},
			upload:              domain.BlobUpload{Data: []byte("jpeg"), Namespace: domain.ProjectPhotosNamespace(projectID), ContentType: "image/jpeg", Filename: "room.j p g"},
			expectedKeyPattern:  `^projects/8a3c7c1e-0d7e-4b8f-9a55-0f0c6e0b1d11/[0-9a-f]{32}\.jpg$`,
			expectedContentType: "image/jpeg",
		},
		"empty-data": {
			api:                &fakeS3{},
			upload:             domain.BlobUpload{Namespace: domain.StorageNamespace_Furniture, Filename: "a.jpg"},
			expectedErr:        true,
			expectedValidation: true,
		},
		"put-error": {
			api:         &fakeS3{putErr: errors.New("access denied")},
			upload:      domain.BlobUpload{Data: []byte("jpeg"), Namespace: domain.StorageNamespace_Furniture, Filename: "a.jpg"},
			expectedErr: true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			store := NewStore(tt.api, "furniture-bucket", publicURL+"/", time.Second)
			require.True(t, store.Configured())

			url, err := store.Put(context.Background(), tt.upload)
			if tt.expectedErr {
				require.Error(t, err)
				var validationErr *domain.ValidationErr
				assert.Equal(t, tt.expectedValidation, errors.As(err, &validationErr))
				assert.Empty(t, url)
				return
			}

			require.NoError(t, err)
			require.Len(t, tt.api.puts, 1)
			put := tt.api.puts[0]
			key := aws.ToString(put.Key)
			assert.Regexp(t, regexp.MustCompile(tt.expectedKeyPattern), key)
			assert.Equal(t, "furniture-bucket", aws.ToString(put.Bucket))
			assert.Equal(t, tt.expectedContentType, aws.ToString(put.ContentType))
			assert.Equal(t, int64(len(tt.upload.Data)), aws.ToInt64(put.ContentLength))
			assert.True(t, bytes.Equal(tt.upload.Data, tt.api.bodies[0]))
			assert.Equal(t, publicURL+"/"+key, url)
			assert.True(t, tt.api.deadline)
		})
	}
}

func TestStore_Put_UniqueKeys(t *testing.T) {
	api := &fakeS3{}
	store := NewStore(api, "bucket", publicURL, 0)

	seen := map[string]bool{}
	for range 20 {
		url, err := store.Put(context.Background(), domain.BlobUpload{Data: []byte("x"), Namespace: domain.StorageNamespace_Temp, Filename: "q.png"})
		require.NoError(t, err)
		assert.False(t, seen[url])
		seen[url] = true
	}
	assert.False(t, api.deadline)
}

func TestStore_Delete(t *testing.T) {
	tests := map[string]struct {
		api         *fakeS3
		url         string
		expectedKey string
		expectedOK  bool
		expectedErr bool
	}{
		"inside-base": {
			api:         &fakeS3{},
			url:         publicURL + "/temp/0f1e2d3c4b5a69788796a5b4c3d2e1f0.jpg",
			expectedKey: "temp/0f1e2d3c4b5a69788796a5b4c3d2e1f0.jpg",
			expectedOK:  true,
		},
		"outside-base": {
			api:         &fakeS3{},
			url:         "https://other.example.com/temp/a.jpg",
			expectedErr: true,
		},
		"base-only": {
			api:         &fakeS3{},
			url:         publicURL + "/",
			expectedErr: true,
		},
		"delete-error": {
			api:         &fakeS3{deleteErr: errors.New("timeout")},
			url:         publicURL + "/furniture/a.jpg",
			expectedKey: "furniture/a.jpg",
			expectedErr: true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			store := NewStore(tt.api, "bucket", publicURL, time.Second)

			ok, err := store.Delete(context.Background(), tt.url)
			assert.Equal(t, tt.expectedOK, ok)
			if tt.expectedErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			if tt.expectedKey != "" {
				require.Len(t, tt.api.deletes, 1)
				assert.Equal(t, tt.expectedKey, aws.ToString(tt.api.deletes[0].Key))
				assert.Equal(t, "bucket", aws.ToString(tt.api.deletes[0].Bucket))
			} else {
				assert.Empty(t, tt.api.deletes)
			}
		})
	}
}

func TestStore_NotConfigured(t *testing.T) {
	store := NewStore(nil, "", "", time.Second)
	assert.False(t, store.Configured())

	_, err := store.Put(context.Background(), domain.BlobUpload{Data: []byte("x"), Namespace: domain.StorageNamespace_Temp})
	assert.True(t, domain.IsUnavailable(err))

	ok, err := store.Delete(context.Background(), publicURL+"/temp/a.jpg")
	assert.False(t, ok)
	assert.True(t, domain.IsUnavailable(err))
}

func TestInitStore_Initialize(t *testing.T) {
	tests := map[string]struct {
		init               InitStore
		expectedConfigured bool
		expectedLog        string
	}{
		"configured": {
			init: InitStore{
				Bucket:          "bucket",
				Endpoint:        "https://account.r2.cloudflarestorage.com",
				AccessKeyID:     "key",
				SecretAccessKey: "secret",
				PublicURL:       publicURL,
				Region:          "auto",
				Timeout:         time.Second,
			},
			expectedConfigured: true,
		},
		"missing-credentials": {
			init: InitStore{
				Bucket:          "bucket",
				Endpoint:        "https://account.r2.cloudflarestorage.com",
				AccessKeyID:     "-",
				SecretAccessKey: "-",
				PublicURL:       publicURL,
			},
			expectedLog: "missing R2_ACCESS_KEY_ID, R2_SECRET_ACCESS_KEY",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Cleanup(depend.ClearContainer)

			var logs bytes.Buffer
			tt.init.Logger = log.New(&logs, "", 0)
			tt.init.HttpClient = http.DefaultClient

			_, err := tt.init.Initialize(context.Background())
			require.NoError(t, err)

			store, err := depend.Resolve[domain.ObjectStore]()
			require.NoError(t, err)
			assert.Equal(t, tt.expectedConfigured, store.Configured())
			assert.Contains(t, logs.String(), tt.expectedLog)
		})
	}
}
