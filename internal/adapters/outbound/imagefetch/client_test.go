package imagefetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/visionffe/visionffe-api/internal/domain"
)

var pngSignature = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n', 0, 0, 0, 0}

func TestClient_Fetch(t *testing.T) {
	tests := map[string]struct {
		handler         http.HandlerFunc
		path            string
		maxBytes        int64
		timeout         time.Duration
		expectedErr     bool
		expectedType    string
		expectedDataLen int
	}{
		"declared-content-type": {
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "image/jpeg; charset=binary")
				w.Write([]byte("jpeg-bytes")) //nolint:errcheck
			},
			path:            "/chair.jpg",
			expectedType:    "image/jpeg",
			expectedDataLen: 10,
		},
		"sniffed-content-type": {
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/octet-stream")
				w.Write(pngSignature) //nolint:errcheck
			},
			path:            "/chair",
			expectedType:    "image/png",
			expectedDataLen: len(pngSignature),
		},
		"non-2xx": {
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusNotFound)
			},
			path:        "/missing.jpg",
			expectedErr: true,
		},
		"too-large": {
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write(make([]byte, 64)) //nolint:errcheck
			},
			path:        "/big.jpg",
			maxBytes:    32,
			expectedErr: true,
		},
		"empty-body": {
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
			},
			path:        "/empty.jpg",
			expectedErr: true,
		},
		"timeout": {
			handler: func(w http.ResponseWriter, r *http.Request) {
				select {
				case <-time.After(time.Second):
				case <-r.Context().Done():
				}
			},
			path:        "/slow.jpg",
			timeout:     20 * time.Millisecond,
			expectedErr: true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			server := httptest.NewServer(tt.handler)
			defer server.Close()

			client := NewClient(server.Client(), tt.timeout, tt.maxBytes)
			img, err := client.Fetch(context.Background(), server.URL+tt.path)
			if tt.expectedErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expectedType, img.ContentType)
			assert.Len(t, img.Data, tt.expectedDataLen)
		})
	}
}

func TestClient_Fetch_InvalidURL(t *testing.T) {
	client := NewClient(http.DefaultClient, time.Second, 0)

	for _, u := range []string{"", "not a url", "ftp://example.com/a.jpg", "file:///etc/passwd", "http://"} {
		_, err := client.Fetch(context.Background(), u)
		assert.Error(t, err, u)
	}
}

func TestInitClient_Initialize(t *testing.T) {
	t.Cleanup(depend.ClearContainer)

	i := InitClient{HttpClient: http.DefaultClient, Timeout: time.Second, MaxBytes: 1024}
	_, err := i.Initialize(context.Background())
	require.NoError(t, err)

	fetcher, err := depend.Resolve[domain.ImageFetcher]()
	require.NoError(t, err)
	assert.NotNil(t, fetcher)
}
