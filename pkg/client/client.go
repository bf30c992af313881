// Package client is a typed HTTP client for the interview coach API. It is
// bound to the same contract registry the server registers its routes from.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"sort"
	"sync"
	"time"

	"interview-coach/internal/contract"
	"interview-coach/internal/models"
)

// APIError is any non-2xx response, decoded from the server's error body.
type APIError struct {
	StatusCode int
	Message    string
	Field      string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Message)
}

type Client struct {
	baseURL    string
	httpClient *http.Client
	registry   contract.Registry

	mu    sync.Mutex
	cache map[string][]byte
}

func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
		registry:   contract.NewRegistry(),
		cache:      make(map[string][]byte),
	}
}

// CreateInterview starts a new practice session.
func (c *Client) CreateInterview(ctx context.Context, req models.CreateInterviewRequest) (*models.Conversation, error) {
	ep := c.registry.InterviewsCreate

	var conversation models.Conversation
	if err := c.do(ctx, ep.Method, ep.Path, req, http.StatusCreated, &conversation); err != nil {
		return nil, err
	}

	c.invalidate(c.registry.InterviewsList.Path)
	return &conversation, nil
}

// GetInterview fetches a session with its ordered transcript and, once the
// session has ended, its feedback.
func (c *Client) GetInterview(ctx context.Context, id string) (*models.Conversation, error) {
	ep := c.registry.InterviewsGet
	path := contract.BuildPath(ep.Path, map[string]any{"id": id})

	var conversation models.Conversation
	if err := c.getCached(ctx, path, &conversation); err != nil {
		return nil, err
	}
	return &conversation, nil
}

// ListInterviews fetches all sessions, most recently started first.
func (c *Client) ListInterviews(ctx context.Context) ([]models.Conversation, error) {
	ep := c.registry.InterviewsList

	var conversations []models.Conversation
	if err := c.getCached(ctx, ep.Path, &conversations); err != nil {
		return nil, err
	}

	sortByStartedAtDesc(conversations)
	return conversations, nil
}

// AddMessage appends a candidate message. The interviewer's reply arrives out
// of band; poll with WatchInterview to observe it.
func (c *Client) AddMessage(ctx context.Context, id, content string) (*models.Message, error) {
	ep := c.registry.InterviewsAddMessage
	path := contract.BuildPath(ep.Path, map[string]any{"id": id})

	var message models.Message
	if err := c.do(ctx, ep.Method, path, models.AddMessageRequest{Content: content}, http.StatusCreated, &message); err != nil {
		return nil, err
	}

	c.invalidate(contract.BuildPath(c.registry.InterviewsGet.Path, map[string]any{"id": id}))
	return &message, nil
}

// EndInterview ends the session and returns its feedback.
func (c *Client) EndInterview(ctx context.Context, id string) (*models.Feedback, error) {
	ep := c.registry.InterviewsEnd
	path := contract.BuildPath(ep.Path, map[string]any{"id": id})

	var feedback models.Feedback
	if err := c.do(ctx, ep.Method, path, nil, http.StatusOK, &feedback); err != nil {
		return nil, err
	}

	c.invalidate(
		contract.BuildPath(c.registry.InterviewsGet.Path, map[string]any{"id": id}),
		c.registry.InterviewsList.Path,
	)
	return &feedback, nil
}

// AnalyzeResume submits resume text for job matching.
func (c *Client) AnalyzeResume(ctx context.Context, text string) (*models.AnalyzeResumeResponse, error) {
	ep := c.registry.ResumeAnalyze

	var result models.AnalyzeResumeResponse
	if err := c.do(ctx, ep.Method, ep.Path, models.AnalyzeResumeRequest{Text: text}, http.StatusOK, &result); err != nil {
		return nil, err
	}

	// Matched jobs land in the job store server-side.
	c.invalidate(c.registry.JobsList.Path)
	return &result, nil
}

// ExtractResume uploads a resume PDF and returns its extracted text, ready to
// be passed to AnalyzeResume.
func (c *Client) ExtractResume(ctx context.Context, filename string, content io.Reader) (*models.ExtractResumeResponse, error) {
	ep := c.registry.ResumeExtract

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("resume", filename)
	if err != nil {
		return nil, fmt.Errorf("failed to build multipart form: %w", err)
	}
	if _, err := io.Copy(part, content); err != nil {
		return nil, fmt.Errorf("failed to read resume content: %w", err)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("failed to finalize multipart form: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, ep.Method, c.baseURL+ep.Path, &buf)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		apiErr := &APIError{StatusCode: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}
		var errBody models.ErrorResponse
		if json.Unmarshal(body, &errBody) == nil && errBody.Message != "" {
			apiErr.Message = errBody.Message
			apiErr.Field = errBody.Field
		}
		return nil, apiErr
	}

	var result models.ExtractResumeResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	return &result, nil
}

// ListJobs fetches all stored job listings.
func (c *Client) ListJobs(ctx context.Context) ([]models.Job, error) {
	ep := c.registry.JobsList

	var jobs []models.Job
	if err := c.getCached(ctx, ep.Path, &jobs); err != nil {
		return nil, err
	}
	return jobs, nil
}

// WatchInterview polls the session on a fixed interval while it is
// in_progress, invoking onUpdate with each snapshot. It returns nil once the
// session is completed and ctx.Err() if cancelled first; either way the
// polling stops deterministically.
func (c *Client) WatchInterview(ctx context.Context, id string, interval time.Duration, onUpdate func(*models.Conversation)) error {
	detailPath := contract.BuildPath(c.registry.InterviewsGet.Path, map[string]any{"id": id})

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		// Polling must observe server truth, never a stale cache entry.
		c.invalidate(detailPath)

		conversation, err := c.GetInterview(ctx, id)
		if err != nil {
			return err
		}
		if onUpdate != nil {
			onUpdate(conversation)
		}
		if conversation.Status == models.StatusCompleted {
			return nil
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}

func (c *Client) getCached(ctx context.Context, path string, out interface{}) error {
	c.mu.Lock()
	cached, ok := c.cache[path]
	c.mu.Unlock()

	if ok {
		return json.Unmarshal(cached, out)
	}

	body, err := c.request(ctx, http.MethodGet, path, nil, http.StatusOK)
	if err != nil {
		return err
	}

	c.mu.Lock()
	c.cache[path] = body
	c.mu.Unlock()

	return json.Unmarshal(body, out)
}

func (c *Client) do(ctx context.Context, method, path string, payload interface{}, wantStatus int, out interface{}) error {
	body, err := c.request(ctx, method, path, payload, wantStatus)
	if err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	return json.Unmarshal(body, out)
}

func (c *Client) request(ctx context.Context, method, path string, payload interface{}, wantStatus int) ([]byte, error) {
	var reqBody io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request: %w", err)
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != wantStatus {
		apiErr := &APIError{StatusCode: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}
		var errBody models.ErrorResponse
		if json.Unmarshal(body, &errBody) == nil && errBody.Message != "" {
			apiErr.Message = errBody.Message
			apiErr.Field = errBody.Field
		}
		return nil, apiErr
	}

	return body, nil
}

func (c *Client) invalidate(paths ...string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, path := range paths {
		delete(c.cache, path)
	}
}

func sortByStartedAtDesc(conversations []models.Conversation) {
	sort.Slice(conversations, func(i, j int) bool {
		return conversations[i].StartedAt.After(conversations[j].StartedAt)
	})
}
