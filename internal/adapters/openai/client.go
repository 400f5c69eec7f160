// Package openai provides the generative-model adapter. It sends the mood
// interpretation prompt to an OpenAI-compatible chat completions endpoint
// and parses the structured JSON response into a candidate PlaylistSpec.
// Any output that is not strict JSON matching the schema is reported as a
// failure; the adapter never invents a spec.
package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/vibechef/vibechef/internal/core/domain"
	"github.com/vibechef/vibechef/internal/core/ports"
)

const (
	defaultBaseURL = "https://api.openai.com/v1"
	defaultModel   = "gpt-4o-mini"

	// Per-attempt bound on the model call. The interpreter proceeds to the
	// deterministic path the moment this elapses.
	callTimeout = 5 * time.Second
	// One extra attempt, and only on parse failure.
	maxParseRetries = 1

	temperature = 0.2
	maxTokens   = 600
)

const systemPrompt = "You are a Music-Curation Assistant. Given user inputs (emotion, activity, music description, numeric scores, explicit flag, and preferred genres), return EXACTLY ONE JSON object that matches schema version 1.0.0. DO NOT return any prose or explanation.\n" +
	"Schema rules:\n" +
	"- genres: 1-5 normalized genres (lowercase).\n" +
	"- mood_descriptors: 1-6 short words.\n" +
	"- audio_features: [low, high] ranges for energy/valence/danceability/acousticness/instrumentalness as floats 0.0-1.0; tempo_bpm as integers 50-200.\n" +
	"- constraints: include avoid_explicit boolean.\n" +
	"- metadata: include interpretation_confidence (0.0-1.0), suggested_playlist_name, mood_summary, processing_notes, fallback_used (bool).\n" +
	"Clamp out-of-range numeric values and describe the clamp in processing_notes.\n" +
	"Return only JSON."

// Client calls an OpenAI-compatible chat completions API.
type Client struct {
	apiKey     string
	baseURL    string
	model      string
	httpClient *http.Client
}

// compile-time interface assertion
var _ ports.SpecGenerator = (*Client)(nil)

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type responseFormat struct {
	Type string `json:"type"`
}

type chatRequest struct {
	Model          string         `json:"model"`
	Temperature    float64        `json:"temperature"`
	MaxTokens      int            `json:"max_tokens"`
	ResponseFormat responseFormat `json:"response_format"`
	Messages       []chatMessage  `json:"messages"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// NewClient constructs a Client. An empty baseURL targets the public
// OpenAI endpoint; tests point it at a local fake.
func NewClient(apiKey, baseURL string) *Client {
	baseURL = strings.TrimRight(baseURL, "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		apiKey:  apiKey,
		baseURL: baseURL,
		model:   defaultModel,
		httpClient: &http.Client{
			Timeout: callTimeout + time.Second,
		},
	}
}

// GenerateSpec implements ports.SpecGenerator. Transport failures and
// server errors come back as Retryable, client errors and persistent parse
// failures as Fatal; the interpreter treats both the same way.
func (c *Client) GenerateSpec(ctx context.Context, in ports.PromptInput) ports.GenerateResult {
	userPayload, err := buildUserPrompt(in)
	if err != nil {
		return fatal(fmt.Sprintf("build prompt: %v", err))
	}

	for attempt := 0; ; attempt++ {
		content, result := c.requestCompletion(ctx, userPayload)
		if result != nil {
			return *result
		}

		var spec domain.PlaylistSpec
		if err := json.Unmarshal([]byte(content), &spec); err != nil {
			if attempt < maxParseRetries {
				continue
			}
			return fatal(fmt.Sprintf("unparseable model output: %v", err))
		}
		return ports.GenerateResult{Outcome: ports.OutcomeSuccess, Spec: spec}
	}
}

// requestCompletion performs one bounded call. On success it returns the
// raw message content and a nil result; otherwise the terminal result.
func (c *Client) requestCompletion(ctx context.Context, userPayload string) (string, *ports.GenerateResult) {
	callCtx, cancel := context.WithTimeout(ctx, callTimeout)
	defer cancel()

	body, err := json.Marshal(chatRequest{
		Model:          c.model,
		Temperature:    temperature,
		MaxTokens:      maxTokens,
		ResponseFormat: responseFormat{Type: "json_object"},
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userPayload},
		},
	})
	if err != nil {
		return "", fatalPtr(fmt.Sprintf("marshal request: %v", err))
	}

	req, err := http.NewRequestWithContext(callCtx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", fatalPtr(fmt.Sprintf("build request: %v", err))
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(callCtx.Err(), context.DeadlineExceeded) {
			return "", retryablePtr("model call timed out")
		}
		return "", retryablePtr(fmt.Sprintf("request failed: %v", err))
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= http.StatusInternalServerError {
		return "", retryablePtr(fmt.Sprintf("status %d", resp.StatusCode))
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fatalPtr(fmt.Sprintf("status %d", resp.StatusCode))
	}

	var parsed chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", retryablePtr(fmt.Sprintf("decode response: %v", err))
	}
	if parsed.Error != nil {
		return "", fatalPtr(parsed.Error.Message)
	}
	if len(parsed.Choices) == 0 || strings.TrimSpace(parsed.Choices[0].Message.Content) == "" {
		return "", fatalPtr("empty model response")
	}

	return parsed.Choices[0].Message.Content, nil
}

func fatal(reason string) ports.GenerateResult {
	return ports.GenerateResult{Outcome: ports.OutcomeFatal, Reason: reason}
}

func fatalPtr(reason string) *ports.GenerateResult {
	r := fatal(reason)
	return &r
}

func retryablePtr(reason string) *ports.GenerateResult {
	r := ports.GenerateResult{Outcome: ports.OutcomeRetryable, Reason: reason}
	return &r
}
