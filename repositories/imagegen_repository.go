package repositories

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"recipe-pipeline/domain"
)

const (
	defaultPollInterval    = 5 * time.Second
	defaultMaxPollAttempts = 60
)

// ImageGenClient drives the external image generation service: one POST to
// submit the prompt, then bounded fixed-interval polling of the status
// endpoint. The service's processing time is roughly constant, so there is
// no backoff.
type ImageGenClient struct {
	client          *http.Client
	endpoint        string
	apiKey          string
	width           int
	height          int
	safetyTolerance int
	pollInterval    time.Duration
	maxPollAttempts int
}

type ImageGenOption func(*ImageGenClient)

func WithPollInterval(d time.Duration) ImageGenOption {
	return func(c *ImageGenClient) { c.pollInterval = d }
}

func WithMaxPollAttempts(n int) ImageGenOption {
	return func(c *ImageGenClient) { c.maxPollAttempts = n }
}

func WithImageSize(width, height int) ImageGenOption {
	return func(c *ImageGenClient) {
		c.width = width
		c.height = height
	}
}

func NewImageGenClient(endpoint, apiKey string, opts ...ImageGenOption) *ImageGenClient {
	c := &ImageGenClient{
		client:          &http.Client{Timeout: 30 * time.Second},
		endpoint:        endpoint,
		apiKey:          apiKey,
		width:           1024,
		height:          768,
		safetyTolerance: 2,
		pollInterval:    defaultPollInterval,
		maxPollAttempts: defaultMaxPollAttempts,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type submitRequest struct {
	Prompt          string `json:"prompt"`
	Width           int    `json:"width"`
	Height          int    `json:"height"`
	SafetyTolerance int    `json:"safety_tolerance"`
}

type submitResponse struct {
	ID string `json:"id"`
}

type pollResponse struct {
	Status string `json:"status"`
	Result struct {
		Sample string `json:"sample"`
	} `json:"result"`
}

// GenerateImage submits the prompt and polls until the task reaches a
// terminal state. It returns the transient sample URL on success,
// domain.ErrGenerationFailed when the service rejects the task, and
// domain.ErrGenerationTimeout when the poll budget runs out.
func (c *ImageGenClient) GenerateImage(ctx context.Context, prompt string) (string, error) {
	taskID, err := c.submit(ctx, prompt)
	if err != nil {
		return "", err
	}

	for attempt := 1; attempt <= c.maxPollAttempts; attempt++ {
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(c.pollInterval):
		}

		poll, err := c.poll(ctx, taskID)
		if err != nil {
			log.Printf("Poll attempt %d/%d for task %s failed: %v", attempt, c.maxPollAttempts, taskID, err)
			continue
		}

		switch domain.NextTaskStatus(poll) {
		case domain.TaskReady:
			return poll.SampleURL, nil
		case domain.TaskError:
			return "", fmt.Errorf("%w: task %s reported status %q", domain.ErrGenerationFailed, taskID, poll.Status)
		}
	}
	return "", fmt.Errorf("%w: task %s not ready after %d attempts", domain.ErrGenerationTimeout, taskID, c.maxPollAttempts)
}

func (c *ImageGenClient) submit(ctx context.Context, prompt string) (string, error) {
	body, err := json.Marshal(submitRequest{
		Prompt:          prompt,
		Width:           c.width,
		Height:          c.height,
		SafetyTolerance: c.safetyTolerance,
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal submit request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-key", c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to submit generation request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		payload, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("generation submit returned status %d: %s", resp.StatusCode, payload)
	}

	var sub submitResponse
	if err := json.NewDecoder(resp.Body).Decode(&sub); err != nil {
		return "", fmt.Errorf("failed to decode submit response: %w", err)
	}
	if sub.ID == "" {
		return "", fmt.Errorf("generation submit response carried no task id")
	}
	return sub.ID, nil
}

func (c *ImageGenClient) poll(ctx context.Context, taskID string) (domain.PollResult, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("%s?id=%s", c.endpoint, taskID), nil)
	if err != nil {
		return domain.PollResult{}, err
	}
	req.Header.Set("x-key", c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return domain.PollResult{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return domain.PollResult{}, fmt.Errorf("poll returned status %d", resp.StatusCode)
	}

	var poll pollResponse
	if err := json.NewDecoder(resp.Body).Decode(&poll); err != nil {
		return domain.PollResult{}, fmt.Errorf("failed to decode poll response: %w", err)
	}
	return domain.PollResult{Status: poll.Status, SampleURL: poll.Result.Sample}, nil
}
