package imagefetch

import (
	"context"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/visionffe/visionffe-api/internal/domain"
	"github.com/visionffe/visionffe-api/internal/telemetry"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// Client downloads images over HTTP with a per-call timeout and a size cap.
type Client struct {
	http     *http.Client
	timeout  time.Duration
	maxBytes int64
}

// NewClient creates a new image Client.
func NewClient(httpClient *http.Client, timeout time.Duration, maxBytes int64) Client {
	return Client{
		http:     httpClient,
		timeout:  timeout,
		maxBytes: maxBytes,
	}
}

// Fetch implements domain.ImageFetcher.Fetch.
func (c Client) Fetch(ctx context.Context, imageURL string) (domain.FetchedImage, error) {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.String("image.url", imageURL),
	))
	defer span.End()

	img, err := c.fetch(spanCtx, imageURL)
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.FetchedImage{}, err
	}
	span.SetAttributes(attribute.Int("image.bytes", len(img.Data)))
	return img, nil
}

func (c Client) fetch(ctx context.Context, imageURL string) (domain.FetchedImage, error) {
	u, err := url.Parse(imageURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return domain.FetchedImage{}, fmt.Errorf("invalid image url %q", imageURL)
	}

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return domain.FetchedImage{}, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return domain.FetchedImage{}, fmt.Errorf("http do: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return domain.FetchedImage{}, fmt.Errorf("non-2xx response: %s", resp.Status)
	}

	if c.maxBytes > 0 && resp.ContentLength > c.maxBytes {
		return domain.FetchedImage{}, fmt.Errorf("image is %d bytes, limit is %d", resp.ContentLength, c.maxBytes)
	}

	var body io.Reader = resp.Body
	if c.maxBytes > 0 {
		body = io.LimitReader(resp.Body, c.maxBytes+1)
	}
	data, err := io.ReadAll(body)
	if err != nil {
		return domain.FetchedImage{}, fmt.Errorf("read response: %w", err)
	}
	if c.maxBytes > 0 && int64(len(data)) > c.maxBytes {
		return domain.FetchedImage{}, fmt.Errorf("image exceeds %d bytes", c.maxBytes)
	}
	if len(data) == 0 {
		return domain.FetchedImage{}, fmt.Errorf("image at %q is empty", imageURL)
	}

	return domain.FetchedImage{
		Data:        data,
		ContentType: contentType(resp.Header.Get("Content-Type"), data),
	}, nil
}

// contentType prefers a declared image/* media type and sniffs the bytes otherwise.
func contentType(header string, data []byte) string {
	if mediaType, _, err := mime.ParseMediaType(header); err == nil && strings.HasPrefix(mediaType, "image/") {
		return mediaType
	}
	sniffed, _, _ := mime.ParseMediaType(http.DetectContentType(data))
	return sniffed
}

// InitClient registers the image fetcher.
type InitClient struct {
	HttpClient *http.Client  `resolve:""`
	Timeout    time.Duration `config:"IMAGE_FETCH_TIMEOUT" default:"10s"`
	MaxBytes   int           `config:"IMAGE_FETCH_MAX_BYTES" default:"20971520"`
}

// Initialize registers the domain.ImageFetcher implementation.
func (i InitClient) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[domain.ImageFetcher](NewClient(i.HttpClient, i.Timeout, int64(i.MaxBytes)))
	return ctx, nil
}
