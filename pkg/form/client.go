package form

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"site-mailer/pkg/models"
)

// Client defines the interface for talking to the submission endpoints
type Client interface {
	Submit(ctx context.Context, variant models.Variant, req models.SubmissionRequest) (models.SubmissionResult, error)
	Health(ctx context.Context) (models.HealthStatus, error)
}

type clientImpl struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a client for the API mounted at baseURL, e.g.
// "https://api.veriden.com/api". A nil httpClient means http.DefaultClient.
func NewClient(baseURL string, httpClient *http.Client) Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &clientImpl{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
	}
}

// Submit posts the variant's fields once. A parseable JSON body is returned
// as-is whatever the status code; anything else is an error.
func (c *clientImpl) Submit(ctx context.Context, variant models.Variant, req models.SubmissionRequest) (models.SubmissionResult, error) {
	var result models.SubmissionResult

	jsonPayload, err := json.Marshal(variant.Project(req))
	if err != nil {
		return result, fmt.Errorf("error creating payload: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+variant.Path, bytes.NewReader(jsonPayload))
	if err != nil {
		return result, fmt.Errorf("error creating request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")

	body, status, err := c.do(httpReq)
	if err != nil {
		return result, err
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return result, fmt.Errorf("error parsing response (status %d): %w", status, err)
	}
	return result, nil
}

func (c *clientImpl) Health(ctx context.Context) (models.HealthStatus, error) {
	var status models.HealthStatus

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/health", nil)
	if err != nil {
		return status, fmt.Errorf("error creating request: %w", err)
	}

	body, code, err := c.do(httpReq)
	if err != nil {
		return status, err
	}
	if code != http.StatusOK {
		return status, fmt.Errorf("error from health endpoint: status %d: %s", code, string(body))
	}
	if err := json.Unmarshal(body, &status); err != nil {
		return status, fmt.Errorf("error parsing response: %w", err)
	}
	if _, err := time.Parse(time.RFC3339Nano, status.Timestamp); err != nil {
		return status, fmt.Errorf("error parsing health timestamp: %w", err)
	}
	return status, nil
}

func (c *clientImpl) do(req *http.Request) ([]byte, int, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("error calling %s: %w", req.URL.Path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, fmt.Errorf("error reading response: %w", err)
	}
	return body, resp.StatusCode, nil
}
