package gemini

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/visionffe/visionffe-api/internal/domain"
	"github.com/visionffe/visionffe-api/internal/telemetry"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const (
	operationIdentify   = "identify_items"
	operationExtract    = "extract_item"
	operationCategorize = "categorize"
)

// VisionClient implements domain.VisionAnalyzer with Gemini multimodal models.
type VisionClient struct {
	api        APIClient
	fetcher    domain.ImageFetcher
	logger     *log.Logger
	prompts    promptSet
	textModel  string
	imageModel string
	timeout    time.Duration
}

// NewVisionClient creates a new VisionClient.
func NewVisionClient(
	api APIClient,
	fetcher domain.ImageFetcher,
	logger *log.Logger,
	textModel, imageModel string,
	timeout time.Duration,
) (VisionClient, error) {
	prompts, err := loadPrompts()
	if err != nil {
		return VisionClient{}, err
	}
	return VisionClient{
		api:        api,
		fetcher:    fetcher,
		logger:     logger,
		prompts:    prompts,
		textModel:  textModel,
		imageModel: imageModel,
		timeout:    timeout,
	}, nil
}

// IdentifyItems implements domain.VisionAnalyzer.IdentifyItems.
func (c VisionClient) IdentifyItems(ctx context.Context, imageURLs []string) ([]string, error) {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.String("ai.model", c.textModel),
		attribute.Int("ai.images", len(imageURLs)),
	))
	defer span.End()

	items, err := c.identifyItems(spanCtx, imageURLs)
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}
	span.SetAttributes(attribute.Int("ai.items", len(items)))
	return items, nil
}

func (c VisionClient) identifyItems(ctx context.Context, imageURLs []string) ([]string, error) {
	if len(imageURLs) == 0 {
		return nil, domain.NewVisionErr(domain.VisionErrKind_InvalidInput, operationIdentify, errors.New("at least one image is required"))
	}

	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	resp, err := c.generate(ctx, operationIdentify, c.textModel, imageURLs, c.prompts.identify.Instruction, c.prompts.identify)
	if err != nil {
		return nil, err
	}

	names, err := parseItemNames(resp.Text())
	if err != nil {
		c.logger.Printf("VisionClient: malformed %s response: %q", operationIdentify, resp.Text())
		return nil, domain.NewVisionErr(domain.VisionErrKind_MalformedResponse, operationIdentify, err)
	}

	return uniqueItemNames(names), nil
}

// ExtractItem implements domain.VisionAnalyzer.ExtractItem.
func (c VisionClient) ExtractItem(ctx context.Context, imageURLs []string, itemName string) (domain.ExtractedImage, error) {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.String("ai.model", c.imageModel),
		attribute.Int("ai.images", len(imageURLs)),
		attribute.String("ai.item_name", itemName),
	))
	defer span.End()

	img, err := c.extractItem(spanCtx, imageURLs, itemName)
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.ExtractedImage{}, err
	}
	return img, nil
}

func (c VisionClient) extractItem(ctx context.Context, imageURLs []string, itemName string) (domain.ExtractedImage, error) {
	itemName = strings.TrimSpace(itemName)
	if itemName == "" {
		return domain.ExtractedImage{}, domain.NewVisionErr(domain.VisionErrKind_InvalidInput, operationExtract, errors.New("item name is required"))
	}
	if len(imageURLs) == 0 {
		return domain.ExtractedImage{}, domain.NewVisionErr(domain.VisionErrKind_InvalidInput, operationExtract, errors.New("at least one image is required"))
	}

	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	instruction := fmt.Sprintf(c.prompts.extract.Instruction, itemName)
	resp, err := c.generate(ctx, operationExtract, c.imageModel, imageURLs, instruction, c.prompts.extract)
	if err != nil {
		return domain.ExtractedImage{}, err
	}

	for _, part := range resp.Candidates[0].Content.Parts {
		if part.InlineData == nil || !strings.HasPrefix(part.InlineData.MimeType, "image/") {
			continue
		}
		data, err := base64.StdEncoding.DecodeString(part.InlineData.Data)
		if err != nil {
			c.logger.Printf("VisionClient: malformed %s image payload for %q: %v", operationExtract, itemName, err)
			return domain.ExtractedImage{}, domain.NewVisionErr(domain.VisionErrKind_MalformedResponse, operationExtract, err)
		}
		return domain.ExtractedImage{Data: data, MimeType: part.InlineData.MimeType}, nil
	}

	return domain.ExtractedImage{}, domain.NewVisionErr(domain.VisionErrKind_NoImage, operationExtract, fmt.Errorf("no image was extracted for %q", itemName))
}

// Categorize implements domain.VisionAnalyzer.Categorize.
func (c VisionClient) Categorize(ctx context.Context, imageURL string) (domain.Category, error) {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.String("ai.model", c.textModel),
		attribute.String("image.url", imageURL),
	))
	defer span.End()

	category, err := c.categorize(spanCtx, imageURL)
	if telemetry.RecordErrorAndStatus(span, err) {
		return "", err
	}
	span.SetAttributes(attribute.String("ai.category", string(category)))
	return category, nil
}

func (c VisionClient) categorize(ctx context.Context, imageURL string) (domain.Category, error) {
	if strings.TrimSpace(imageURL) == "" {
		return "", domain.NewVisionErr(domain.VisionErrKind_InvalidInput, operationCategorize, errors.New("image is required"))
	}

	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	resp, err := c.generate(ctx, operationCategorize, c.textModel, []string{imageURL}, c.prompts.categorize.Instruction, c.prompts.categorize)
	if err != nil {
		return "", err
	}

	text := resp.Text()
	if !json.Valid([]byte(stripCodeFence(text))) {
		c.logger.Printf("VisionClient: malformed %s response: %q", operationCategorize, text)
	}
	return domain.ParseCategory(text), nil
}

// generate sends the images inline followed by the instruction and checks that a candidate came back.
func (c VisionClient) generate(
	ctx context.Context,
	operation, model string,
	imageURLs []string,
	instruction string,
	prompt promptTemplate,
) (*GenerateContentResponse, error) {
	parts := make([]Part, 0, len(imageURLs)+1)
	for _, u := range imageURLs {
		img, err := c.fetcher.Fetch(ctx, u)
		if err != nil {
			return nil, domain.NewVisionErr(domain.VisionErrKind_Generation, operation, fmt.Errorf("fetch image: %w", err))
		}
		mimeType := img.ContentType
		if !strings.HasPrefix(mimeType, "image/") {
			mimeType = "image/jpeg"
		}
		parts = append(parts, Part{InlineData: &InlineData{
			MimeType: mimeType,
			Data:     base64.StdEncoding.EncodeToString(img.Data),
		}})
	}
	parts = append(parts, Part{Text: instruction})

	resp, err := c.api.GenerateContent(ctx, model, GenerateContentRequest{
		Contents:         []Content{{Role: "user", Parts: parts}},
		GenerationConfig: prompt.generationConfig(),
	})
	if err != nil {
		return nil, domain.NewVisionErr(domain.VisionErrKind_Generation, operation, err)
	}
	if resp.PromptFeedback != nil && resp.PromptFeedback.BlockReason != "" {
		return nil, domain.NewVisionErr(domain.VisionErrKind_Generation, operation, fmt.Errorf("prompt blocked: %s", resp.PromptFeedback.BlockReason))
	}
	if len(resp.Candidates) == 0 {
		return nil, domain.NewVisionErr(domain.VisionErrKind_Generation, operation, errors.New("no candidates in response"))
	}
	return resp, nil
}

func (c VisionClient) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if c.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, c.timeout)
}

// parseItemNames decodes a JSON array of strings. Anything else, including null, is rejected.
func parseItemNames(text string) ([]string, error) {
	raw := strings.TrimSpace(stripCodeFence(text))
	if !strings.HasPrefix(raw, "[") {
		return nil, errors.New("response is not a JSON array")
	}
	var names []string
	if err := json.Unmarshal([]byte(raw), &names); err != nil {
		return nil, err
	}
	return names, nil
}

// uniqueItemNames trims names, drops empty ones and merges case-insensitive duplicates keeping the first spelling.
func uniqueItemNames(names []string) []string {
	seen := make(map[string]struct{}, len(names))
	out := make([]string, 0, len(names))
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		key := strings.ToLower(name)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, name)
	}
	return out
}

// stripCodeFence removes a surrounding markdown code fence, if any.
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimPrefix(s, "json")
	return strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(s), "```"))
}

// InitVisionClient initializes the VisionAnalyzer dependency.
type InitVisionClient struct {
	Logger     *log.Logger         `resolve:""`
	HttpClient *http.Client        `resolve:""`
	Fetcher    domain.ImageFetcher `resolve:""`
	BaseURL    string              `config:"GEMINI_BASE_URL" default:"https://generativelanguage.googleapis.com/v1beta"`
	APIKey     string              `config:"GEMINI_API_KEY" default:"-"`
	TextModel  string              `config:"GEMINI_TEXT_MODEL" default:"gemini-2.5-flash"`
	ImageModel string              `config:"GEMINI_IMAGE_MODEL" default:"gemini-2.5-flash-image"`
	Timeout    time.Duration       `config:"AI_TIMEOUT" default:"120s"`
}

// Initialize registers the domain.VisionAnalyzer implementation.
func (i InitVisionClient) Initialize(ctx context.Context) (context.Context, error) {
	apiKey := i.APIKey
	if apiKey == "-" {
		apiKey = ""
		i.Logger.Print("InitVisionClient: GEMINI_API_KEY is not set, vision calls will be rejected upstream")
	}

	client, err := NewVisionClient(
		NewAPIClient(i.BaseURL, apiKey, i.HttpClient),
		i.Fetcher,
		i.Logger,
		i.TextModel,
		i.ImageModel,
		i.Timeout,
	)
	if err != nil {
		return ctx, err
	}

	depend.Register[domain.VisionAnalyzer](client)
	return ctx, nil
}
