// Package scoring calls an OpenAI-compatible chat completions endpoint to
// grade a resume against a recruitment post.
package scoring

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Result is the parsed outcome of one scoring call.
type Result struct {
	Score   int    `json:"score"`
	Result  string `json:"result"`
	Summary string `json:"summary"`
}

// Client talks to a chat completions API. The zero value is not usable;
// construct one with NewClient.
type Client struct {
	endpoint string
	apiKey   string
	model    string
	http     *http.Client
}

func NewClient(endpoint, apiKey, model string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		endpoint: endpoint,
		apiKey:   apiKey,
		model:    model,
		http:     &http.Client{Timeout: timeout},
	}
}

// Enabled reports whether the client has credentials to make calls.
func (c *Client) Enabled() bool {
	return c.apiKey != ""
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

const systemPrompt = `You are a recruiter grading how well an applicant fits a team recruitment post.
Respond with a single JSON object and nothing else, in this exact shape:
{"score": <integer 0-100>, "result": "<one short verdict line>", "summary": "<2-3 sentence assessment>"}`

// Score grades the applicant material against the post context. It returns an
// error on transport failures, non-2xx responses, or unparseable model output.
func (c *Client) Score(ctx context.Context, applicantMaterial, postContext string) (*Result, error) {
	if !c.Enabled() {
		return nil, fmt.Errorf("scoring client is not configured")
	}

	userPrompt := fmt.Sprintf("Recruitment post:\n%s\n\nApplicant material:\n%s", postContext, applicantMaterial)
	body, err := json.Marshal(chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userPrompt},
		},
		Temperature: 0.2,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode scoring request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build scoring request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("scoring request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("failed to read scoring response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("scoring endpoint returned status %d: %s", resp.StatusCode, truncate(string(raw), 200))
	}

	var cr chatResponse
	if err := json.Unmarshal(raw, &cr); err != nil {
		return nil, fmt.Errorf("failed to decode scoring response: %w", err)
	}
	if cr.Error != nil {
		return nil, fmt.Errorf("scoring endpoint error: %s", cr.Error.Message)
	}
	if len(cr.Choices) == 0 {
		return nil, fmt.Errorf("scoring response contained no choices")
	}

	return parseResult(cr.Choices[0].Message.Content)
}

// parseResult extracts the JSON object from the model reply. Models sometimes
// wrap the object in a markdown code fence, so strip that first.
func parseResult(content string) (*Result, error) {
	content = strings.TrimSpace(content)
	if strings.HasPrefix(content, "```") {
		content = strings.TrimPrefix(content, "```json")
		content = strings.TrimPrefix(content, "```")
		content = strings.TrimSuffix(strings.TrimSpace(content), "```")
		content = strings.TrimSpace(content)
	}

	var res Result
	if err := json.Unmarshal([]byte(content), &res); err != nil {
		return nil, fmt.Errorf("model reply was not valid JSON: %w", err)
	}
	if res.Score < 0 {
		res.Score = 0
	}
	if res.Score > 100 {
		res.Score = 100
	}
	return &res, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
