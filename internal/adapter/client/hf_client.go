package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// zeroShotRequest is the Hugging Face Inference API request payload for
// zero-shot pipelines.
type zeroShotRequest struct {
	Inputs     string             `json:"inputs"`
	Parameters zeroShotParameters `json:"parameters"`
}

type zeroShotParameters struct {
	CandidateLabels []string `json:"candidate_labels"`
	MultiLabel      bool     `json:"multi_label"`
}

// ZeroShotTextResponse is the response shape of zero-shot text
// classification: parallel label/score slices, descending by score.
type ZeroShotTextResponse struct {
	Sequence string    `json:"sequence"`
	Labels   []string  `json:"labels"`
	Scores   []float64 `json:"scores"`
}

// ZeroShotImageResult is one entry of a zero-shot image classification
// response, which is a plain array of label/score pairs.
type ZeroShotImageResult struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

// HFClient is an HTTP client for the Hugging Face Inference API.
type HFClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewHFClient creates a new Inference API client. The apiKey may be
// empty; unauthenticated requests are rate-limited but valid.
func NewHFClient(baseURL, apiKey string, timeout time.Duration) *HFClient {
	return &HFClient{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// ZeroShotText classifies text against the candidate labels using the
// given zero-shot model.
func (c *HFClient) ZeroShotText(ctx context.Context, model, input string, candidateLabels []string) (*ZeroShotTextResponse, error) {
	body, err := c.post(ctx, model, input, candidateLabels)
	if err != nil {
		return nil, err
	}

	var result ZeroShotTextResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	if len(result.Labels) == 0 || len(result.Labels) != len(result.Scores) {
		return nil, fmt.Errorf("malformed zero-shot response: %d labels, %d scores", len(result.Labels), len(result.Scores))
	}

	return &result, nil
}

// ZeroShotImage classifies the image behind the given locator against
// the candidate labels using the given zero-shot image model.
func (c *HFClient) ZeroShotImage(ctx context.Context, model, imageURL string, candidateLabels []string) ([]ZeroShotImageResult, error) {
	body, err := c.post(ctx, model, imageURL, candidateLabels)
	if err != nil {
		return nil, err
	}

	var results []ZeroShotImageResult
	if err := json.Unmarshal(body, &results); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	if len(results) == 0 {
		return nil, fmt.Errorf("empty zero-shot image response")
	}

	return results, nil
}

func (c *HFClient) post(ctx context.Context, model, input string, candidateLabels []string) ([]byte, error) {
	reqBody := zeroShotRequest{
		Inputs: input,
		Parameters: zeroShotParameters{
			CandidateLabels: candidateLabels,
		},
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/models/"+model, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("inference API returned status %d: %s", resp.StatusCode, string(body))
	}

	return body, nil
}
