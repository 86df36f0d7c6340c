// internal/llm/client.go
package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"trip-planner/internal/common/errors"
	"trip-planner/internal/common/logger"
)

// Client calls the GenAI generation API.
type Client interface {
	Generate(ctx context.Context, req *GenerateRequest) (*GenerateResponse, error)
}

// GenerateRequest is the generation call input.
type GenerateRequest struct {
	Prompt      string  `json:"prompt"`
	MaxTokens   int     `json:"max_tokens"`
	Temperature float64 `json:"temperature"`
	Model       string  `json:"model,omitempty"`
}

// GenerateResponse is the generation call output.
type GenerateResponse struct {
	Text       string  `json:"text"`
	Confidence float64 `json:"confidence"`
}

// Config holds the GenAI API settings.
type Config struct {
	BaseURL     string
	APIKey      string
	Model       string
	MaxTokens   int
	Temperature float64
	Timeout     time.Duration
	MaxRetries  int
}

type httpClient struct {
	config *Config
	client *http.Client
	logger logger.Logger
}

// NewClient creates a GenAI API client. The HTTP client carries no timeout of
// its own, the per-call context bounds every request.
func NewClient(config *Config, log logger.Logger) Client {
	if config.MaxRetries == 0 {
		config.MaxRetries = 2
	}
	return &httpClient{
		config: config,
		client: &http.Client{},
		logger: log.WithFields(map[string]interface{}{
			"component": "llm-client",
		}),
	}
}

func (c *httpClient) Generate(ctx context.Context, genReq *GenerateRequest) (*GenerateResponse, error) {
	if genReq.MaxTokens == 0 {
		genReq.MaxTokens = c.config.MaxTokens
	}
	if genReq.Temperature == 0 {
		genReq.Temperature = c.config.Temperature
	}
	if genReq.Model == "" {
		genReq.Model = c.config.Model
	}

	ctx, cancel := context.WithTimeout(ctx, c.config.Timeout)
	defer cancel()

	body, _ := json.Marshal(genReq)

	var resp *http.Response
	var lastErr error

	for attempt := 0; attempt <= c.config.MaxRetries; attempt++ {
		if attempt > 0 {
			backoff := time.Duration(100*(1<<(attempt-1))) * time.Millisecond
			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				return nil, errors.NewLLMTimeoutError()
			}
		}

		req, err := http.NewRequestWithContext(ctx, "POST", c.config.BaseURL+"/api/ai/generate", bytes.NewReader(body))
		if err != nil {
			return nil, errors.NewLLMGenerationFailedError(err)
		}
		req.Header.Set("Content-Type", "application/json")
		if c.config.APIKey != "" {
			req.Header.Set("Authorization", "Bearer "+c.config.APIKey)
		}

		resp, lastErr = c.client.Do(req)
		if lastErr == nil {
			if resp.StatusCode == http.StatusOK {
				break
			}
			resp.Body.Close()
			lastErr = fmt.Errorf("status %d", resp.StatusCode)
			resp = nil
		}

		if ctx.Err() != nil {
			return nil, errors.NewLLMTimeoutError()
		}
	}

	if lastErr != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return nil, errors.NewLLMTimeoutError()
		}
		return nil, errors.NewLLMGenerationFailedError(lastErr)
	}
	if resp == nil {
		return nil, errors.NewLLMGenerationFailedError(fmt.Errorf("no successful response after retries"))
	}
	defer resp.Body.Close()

	var apiResponse GenerateResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResponse); err != nil {
		return nil, errors.NewLLMGenerationFailedError(fmt.Errorf("decode error: %v", err))
	}

	if strings.TrimSpace(apiResponse.Text) == "" {
		return nil, errors.NewLLMGenerationFailedError(fmt.Errorf("empty generation"))
	}
	if apiResponse.Confidence < 0.0 || apiResponse.Confidence > 1.0 {
		apiResponse.Confidence = 0.5
	}

	c.logger.Debug("generation completed", map[string]interface{}{
		"confidence": apiResponse.Confidence,
		"chars":      len(apiResponse.Text),
	})

	return &apiResponse, nil
}
