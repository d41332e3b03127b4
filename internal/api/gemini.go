package api

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/tidwall/gjson"
	"github.com/valyala/fasthttp"

	"spirit11/internal/config"
)

// GeminiClient talks to the Google generative-language REST API.
type GeminiClient struct {
	apiKey  string
	model   string
	baseURL string
	client  *fasthttp.Client
}

func NewGeminiClient(cfg *config.Config) *GeminiClient {
	return &GeminiClient{
		apiKey:  cfg.GeminiAPIKey,
		model:   cfg.GeminiModel,
		baseURL: strings.TrimRight(cfg.GeminiBaseURL, "/"),
		client: &fasthttp.Client{
			MaxConnsPerHost:     32,
			ReadTimeout:         30 * time.Second,
			WriteTimeout:        10 * time.Second,
			MaxIdleConnDuration: 1 * time.Minute,
		},
	}
}

type generateRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Role  string `json:"role,omitempty"`
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

// Generate sends a single-turn prompt and returns the text of the first
// candidate.
func (c *GeminiClient) Generate(ctx context.Context, prompt string) (string, error) {
	body, err := json.Marshal(generateRequest{
		Contents: []content{{Role: "user", Parts: []part{{Text: prompt}}}},
	})
	if err != nil {
		return "", fmt.Errorf("failed to encode request: %w", err)
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent", c.baseURL, c.model)
	respBody, err := doRequest(ctx, c, url, body)
	if err != nil {
		return "", err
	}

	if msg := gjson.GetBytes(respBody, "error.message"); msg.Exists() {
		return "", fmt.Errorf("gemini error: %s", msg.String())
	}
	if reason := gjson.GetBytes(respBody, "promptFeedback.blockReason"); reason.Exists() {
		return "", fmt.Errorf("prompt blocked: %s", reason.String())
	}

	var sb strings.Builder
	for _, t := range gjson.GetBytes(respBody, "candidates.0.content.parts.#.text").Array() {
		sb.WriteString(t.String())
	}
	if sb.Len() == 0 {
		return "", fmt.Errorf("gemini returned no candidates")
	}
	return sb.String(), nil
}

func doRequest(ctx context.Context, client *GeminiClient, url string, body []byte) ([]byte, error) {
	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(url)
	req.Header.SetMethod(fasthttp.MethodPost)
	req.Header.SetContentType("application/json")
	req.Header.Set("x-goog-api-key", client.apiKey)
	req.SetBody(body)

	deadline, ok := ctx.Deadline()
	if ok {
		if err := client.client.DoDeadline(req, resp, deadline); err != nil {
			return nil, err
		}
	} else {
		if err := client.client.Do(req, resp); err != nil {
			return nil, err
		}
	}

	if resp.StatusCode() != fasthttp.StatusOK {
		return nil, fmt.Errorf("API error: %d", resp.StatusCode())
	}

	// resp is released on return, so the body has to be copied out.
	out := make([]byte, len(resp.Body()))
	copy(out, resp.Body())
	return out, nil
}
