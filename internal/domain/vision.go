package domain

import (
	"context"
	"errors"
	"fmt"
)

// VisionErrKind classifies a failed vision call.
type VisionErrKind string

const (
	// VisionErrKind_InvalidInput is a caller problem, such as no images or an empty item name.
	VisionErrKind_InvalidInput VisionErrKind = "INVALID_INPUT"
	// VisionErrKind_Generation covers transport failures, upstream errors and blocked prompts.
	VisionErrKind_Generation VisionErrKind = "GENERATION"
	// VisionErrKind_MalformedResponse is a response that could not be interpreted.
	VisionErrKind_MalformedResponse VisionErrKind = "MALFORMED_RESPONSE"
	// VisionErrKind_NoImage is an extraction that produced no image part.
	VisionErrKind_NoImage VisionErrKind = "NO_IMAGE"
)

// VisionErr is the single categorized failure of a vision call.
type VisionErr struct {
	Kind      VisionErrKind
	Operation string
	cause     error
}

// NewVisionErr creates a new VisionErr.
func NewVisionErr(kind VisionErrKind, operation string, cause error) *VisionErr {
	return &VisionErr{Kind: kind, Operation: operation, cause: cause}
}

// Error returns the error message.
func (e *VisionErr) Error() string {
	if e.cause == nil {
		return fmt.Sprintf("vision %s failed (%s)", e.Operation, e.Kind)
	}
	return fmt.Sprintf("vision %s failed (%s): %v", e.Operation, e.Kind, e.cause)
}

// Unwrap returns the underlying cause.
func (e *VisionErr) Unwrap() error {
	return e.cause
}

// IsVisionErrKind reports whether err wraps a VisionErr of the given kind.
func IsVisionErrKind(err error, kind VisionErrKind) bool {
	var ve *VisionErr
	return errors.As(err, &ve) && ve.Kind == kind
}

// ExtractedImage is the isolated item image produced by an extraction.
type ExtractedImage struct {
	Data     []byte
	MimeType string
}

// VisionAnalyzer wraps the multimodal model used for room and item analysis.
type VisionAnalyzer interface {
	// IdentifyItems returns the distinct furniture, decor and lighting items seen across the images.
	IdentifyItems(ctx context.Context, imageURLs []string) ([]string, error)
	// ExtractItem returns an isolated image of the named item.
	ExtractItem(ctx context.Context, imageURLs []string, itemName string) (ExtractedImage, error)
	// Categorize maps one image onto the canonical category set.
	Categorize(ctx context.Context, imageURL string) (Category, error)
}
