package domain

import "context"

// FetchedImage is the raw content of an image downloaded by URL.
type FetchedImage struct {
	Data        []byte
	ContentType string
}

// ImageFetcher downloads images reachable by URL.
type ImageFetcher interface {
	// Fetch downloads the image, bounded by the configured timeout and size cap.
	Fetch(ctx context.Context, imageURL string) (FetchedImage, error)
}
