// Package syncclient is the desktop side of the cloud sync protocol: every
// call is a JSON POST to the single sync endpoint, distinguished by the
// action field.
package syncclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"classwindow/models"
)

// Client talks to one sync endpoint
type Client struct {
	endpoint   string
	httpClient *http.Client
}

func New(endpoint string) *Client {
	return &Client{
		endpoint:   endpoint,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

// do posts the payload and decodes the standard response envelope. Protocol
// failures come back with a nil error and Success=false; err is reserved for
// transport and decoding problems.
func (c *Client) do(ctx context.Context, payload map[string]any) (*models.SyncResponse, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("sync request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("sync request: unexpected status %d", resp.StatusCode)
	}

	var out models.SyncResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return &out, nil
}

// Register creates a class under the school code
func (c *Client) Register(ctx context.Context, schoolCode, classCode, password string) (*models.SyncResponse, error) {
	return c.do(ctx, map[string]any{
		"action":     "register",
		"schoolCode": schoolCode,
		"classCode":  classCode,
		"password":   password,
	})
}

// Upload replaces the class's homework list with the local one
func (c *Client) Upload(ctx context.Context, schoolCode, classCode, password string, homework []models.Homework) (*models.SyncResponse, error) {
	return c.do(ctx, map[string]any{
		"action":       "upload",
		"schoolCode":   schoolCode,
		"classCode":    classCode,
		"password":     password,
		"homeworkData": homework,
	})
}

// Download fetches the class's homework with teacher credentials
func (c *Client) Download(ctx context.Context, schoolCode, classCode, password string) (*models.SyncResponse, error) {
	return c.do(ctx, map[string]any{
		"action":     "download",
		"schoolCode": schoolCode,
		"classCode":  classCode,
		"password":   password,
	})
}

// StudentAccess fetches the class's homework without a password
func (c *Client) StudentAccess(ctx context.Context, schoolCode, classCode string) (*models.SyncResponse, error) {
	return c.do(ctx, map[string]any{
		"action":     "student",
		"schoolCode": schoolCode,
		"classCode":  classCode,
	})
}

// TeacherLogin verifies credentials; the response carries the class data on
// success so login doubles as an initial download.
func (c *Client) TeacherLogin(ctx context.Context, schoolCode, classCode, password string) (*models.SyncResponse, error) {
	return c.do(ctx, map[string]any{
		"action":     "teacherLogin",
		"schoolCode": schoolCode,
		"classCode":  classCode,
		"password":   password,
	})
}

// AddHomework appends one entry server-side without a password
func (c *Client) AddHomework(ctx context.Context, schoolCode, classCode string, hw models.Homework) (*models.SyncResponse, error) {
	return c.do(ctx, map[string]any{
		"action":     "addHomework",
		"schoolCode": schoolCode,
		"classCode":  classCode,
		"subject":    hw.Subject,
		"content":    hw.Content,
		"dueDate":    hw.DueDate,
	})
}

// DeleteHomework removes the entry at index server-side
func (c *Client) DeleteHomework(ctx context.Context, schoolCode, classCode string, index int) (*models.SyncResponse, error) {
	return c.do(ctx, map[string]any{
		"action":     "deleteHomework",
		"schoolCode": schoolCode,
		"classCode":  classCode,
		"index":      index,
	})
}

// UploadTemplates replaces the class's template list with the local one
func (c *Client) UploadTemplates(ctx context.Context, schoolCode, classCode, password string, templates []models.Template) (*models.SyncResponse, error) {
	return c.do(ctx, map[string]any{
		"action":     "templateSync",
		"schoolCode": schoolCode,
		"classCode":  classCode,
		"password":   password,
		"syncAction": "upload",
		"templates":  templates,
	})
}

// DownloadTemplates fetches the class's template list
func (c *Client) DownloadTemplates(ctx context.Context, schoolCode, classCode, password string) (*models.SyncResponse, error) {
	return c.do(ctx, map[string]any{
		"action":     "templateSync",
		"schoolCode": schoolCode,
		"classCode":  classCode,
		"password":   password,
		"syncAction": "download",
	})
}
