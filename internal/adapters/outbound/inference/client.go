// Package inference embeds images with a vision backbone served over the
// Open Inference Protocol (KServe v2 REST).
package inference

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

// KServeClient is a thin client for the Open Inference Protocol REST API.
type KServeClient struct {
	baseURL string
	http    *http.Client
}

// NewKServeClient creates a new client
func NewKServeClient(baseURL string, httpClient *http.Client) KServeClient {
	return KServeClient{
		baseURL: baseURL,
		http:    httpClient,
	}
}

// Infer runs a forward pass of the model.
func (c KServeClient) Infer(ctx context.Context, model string, req InferRequest) (*InferResponse, error) {
	if model == "" {
		return nil, errors.New("model is required")
	}
	if len(req.Inputs) == 0 {
		return nil, errors.New("inputs are required")
	}

	httpReq, err := c.newRequest(ctx, http.MethodPost, req, "v2", "models", model, "infer")
	if err != nil {
		return nil, err
	}

	var out InferResponse
	if err := c.do(httpReq, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ModelMetadata reads the model metadata, failing when the model is not available.
func (c KServeClient) ModelMetadata(ctx context.Context, model string) (*ModelMetadata, error) {
	if model == "" {
		return nil, errors.New("model is required")
	}

	httpReq, err := c.newRequest(ctx, http.MethodGet, nil, "v2", "models", model)
	if err != nil {
		return nil, err
	}

	var out ModelMetadata
	if err := c.do(httpReq, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c KServeClient) do(httpReq *http.Request, out any) error {
	resp, err := c.http.Do(httpReq)
	if err != nil {
		return fmt.Errorf("http do: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var errResp ErrorResponse
		if json.Unmarshal(respBody, &errResp) == nil && errResp.Error != "" {
			return fmt.Errorf("non-2xx response: %s: %s", resp.Status, errResp.Error)
		}
		return fmt.Errorf("non-2xx response: %s: %s", resp.Status, string(respBody))
	}

	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("unmarshal response: %w", err)
	}
	return nil
}

func (c KServeClient) newRequest(ctx context.Context, method string, body any, path ...string) (*http.Request, error) {
	endpoint, err := url.JoinPath(c.baseURL, path...)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL: %w", err)
	}
	var bodyReader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshal request: %w", err)
		}
		bodyReader = bytes.NewReader(b)
	}
	req, err := http.NewRequestWithContext(ctx, method, endpoint, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return req, nil
}
