// Package objectstore stores blobs in S3-compatible object storage such as Cloudflare R2 or MinIO.
package objectstore

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"mime"
	"net/http"
	"path"
	"slices"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/google/uuid"
	"github.com/visionffe/visionffe-api/internal/domain"
	"github.com/visionffe/visionffe-api/internal/telemetry"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// s3API is the subset of the S3 client used by the store.
type s3API interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

var contentTypeExtensions = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
	"image/gif":  ".gif",
}

// Store implements domain.ObjectStore.
type Store struct {
	api        s3API
	bucket     string
	publicURL  string
	timeout    time.Duration
	configured bool
}

// NewStore creates a new Store. A nil api or an empty bucket or public URL leaves it unconfigured.
func NewStore(api s3API, bucket, publicURL string, timeout time.Duration) Store {
	publicURL = strings.TrimRight(publicURL, "/")
	return Store{
		api:        api,
		bucket:     bucket,
		publicURL:  publicURL,
		timeout:    timeout,
		configured: api != nil && bucket != "" && publicURL != "",
	}
}

// Configured implements domain.ObjectStore.Configured.
func (s Store) Configured() bool {
	return s.configured
}

// Put implements domain.ObjectStore.Put.
func (s Store) Put(ctx context.Context, upload domain.BlobUpload) (string, error) {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.String("storage.namespace", string(upload.Namespace)),
		attribute.Int("storage.bytes", len(upload.Data)),
	))
	defer span.End()

	url, err := s.put(spanCtx, upload)
	if telemetry.RecordErrorAndStatus(span, err) {
		return "", err
	}
	span.SetAttributes(attribute.String("storage.url", url))
	return url, nil
}

func (s Store) put(ctx context.Context, upload domain.BlobUpload) (string, error) {
	if !s.configured {
		return "", domain.NewUnavailableErr("object storage is not configured")
	}
	if err := upload.Validate(); err != nil {
		return "", err
	}

	contentType := upload.ContentType
	if contentType == "" {
		contentType = http.DetectContentType(upload.Data)
	}
	key := objectKey(upload.Namespace, extension(upload.Filename, contentType))

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	_, err := s.api.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(upload.Data),
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(int64(len(upload.Data))),
	})
	if err != nil {
		return "", fmt.Errorf("put object %s: %w", key, err)
	}

	return s.publicURL + "/" + key, nil
}

// Delete implements domain.ObjectStore.Delete.
func (s Store) Delete(ctx context.Context, url string) (bool, error) {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.String("storage.url", url),
	))
	defer span.End()

	err := s.delete(spanCtx, url)
	if telemetry.RecordErrorAndStatus(span, err) {
		return false, err
	}
	return true, nil
}

func (s Store) delete(ctx context.Context, url string) error {
	if !s.configured {
		return domain.NewUnavailableErr("object storage is not configured")
	}

	key, ok := strings.CutPrefix(url, s.publicURL+"/")
	if !ok || key == "" {
		return domain.NewValidationErr(fmt.Sprintf("url %q is outside the storage base url", url))
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	_, err := s.api.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("delete object %s: %w", key, err)
	}
	return nil
}

func (s Store) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, s.timeout)
}

// objectKey builds {namespace}/{random-128-bit-hex}{ext}.
func objectKey(namespace domain.StorageNamespace, ext string) string {
	id := uuid.New()
	return fmt.Sprintf("%s/%x%s", strings.Trim(string(namespace), "/"), id[:], ext)
}

// extension prefers the filename's extension and falls back to the content type.
func extension(filename, contentType string) string {
	if ext := strings.ToLower(path.Ext(filename)); isSafeExtension(ext) {
		return ext
	}
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return ""
	}
	if ext, ok := contentTypeExtensions[mediaType]; ok {
		return ext
	}
	if exts, err := mime.ExtensionsByType(mediaType); err == nil && len(exts) > 0 {
		return exts[0]
	}
	return ""
}

func isSafeExtension(ext string) bool {
	if len(ext) < 2 || len(ext) > 6 {
		return false
	}
	for _, r := range ext[1:] {
		if (r < 'a' || r > 'z') && (r < '0' || r > '9') {
			return false
		}
	}
	return true
}

// InitStore initializes the ObjectStore dependency.
type InitStore struct {
	Logger          *log.Logger   `resolve:""`
	HttpClient      *http.Client  `resolve:""`
	Bucket          string        `config:"R2_BUCKET" default:"-"`
	Endpoint        string        `config:"R2_ENDPOINT" default:"-"`
	AccessKeyID     string        `config:"R2_ACCESS_KEY_ID" default:"-"`
	SecretAccessKey string        `config:"R2_SECRET_ACCESS_KEY" default:"-"`
	PublicURL       string        `config:"R2_PUBLIC_URL" default:"-"`
	Region          string        `config:"R2_REGION" default:"auto"`
	Timeout         time.Duration `config:"STORAGE_TIMEOUT" default:"30s"`
}

// Initialize registers the domain.ObjectStore implementation. Missing settings register an unconfigured store.
func (i InitStore) Initialize(ctx context.Context) (context.Context, error) {
	missing := i.missingSettings()
	if len(missing) > 0 {
		i.Logger.Printf("InitStore: object storage is not configured, missing %s", strings.Join(missing, ", "))
		depend.Register[domain.ObjectStore](NewStore(nil, "", "", i.Timeout))
		return ctx, nil
	}

	client := s3.New(s3.Options{
		Region:           i.Region,
		BaseEndpoint:     aws.String(i.Endpoint),
		Credentials:      credentials.NewStaticCredentialsProvider(i.AccessKeyID, i.SecretAccessKey, ""),
		UsePathStyle:     true,
		RetryMaxAttempts: 1,
		HTTPClient:       i.HttpClient,
	})

	depend.Register[domain.ObjectStore](NewStore(client, i.Bucket, i.PublicURL, i.Timeout))
	return ctx, nil
}

func (i InitStore) missingSettings() []string {
	var missing []string
	for key, value := range map[string]string{
		"R2_BUCKET":            i.Bucket,
		"R2_ENDPOINT":          i.Endpoint,
		"R2_ACCESS_KEY_ID":     i.AccessKeyID,
		"R2_SECRET_ACCESS_KEY": i.SecretAccessKey,
		"R2_PUBLIC_URL":        i.PublicURL,
	} {
		if value == "" || value == "-" {
			missing = append(missing, key)
		}
	}
	slices.Sort(missing)
	return missing
}
