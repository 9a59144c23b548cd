package panel

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// requestTimeout bounds every single HTTP attempt.
const requestTimeout = 10 * time.Second

// Notification mirrors the wire format of the notifications API.
type Notification struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	Priority  string    `json:"priority"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	IsRead    bool      `json:"is_read"`
	Actions   []Action  `json:"actions,omitempty"`
	RelatedID string    `json:"related_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// Action is one of the command buttons attached to a notification.
type Action struct {
	Label   string `json:"label"`
	ID      string `json:"action"`
	Variant string `json:"variant"`
}

// APIError is a structured error answer from the server. It is not
// retried: the server understood the request and rejected it.
type APIError struct {
	Status  int
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %s (%d): %s", e.Code, e.Status, e.Message)
}

// Client talks to the notifications API over HTTP.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
}

func NewClient(baseURL, token string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		http:    &http.Client{Timeout: requestTimeout},
	}
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *APIError       `json:"error"`
}

type listPayload struct {
	Notifications []Notification `json:"notifications"`
	UnreadCount   int64          `json:"unread_count"`
}

type actionPayload struct {
	Result string `json:"result"`
}

func (c *Client) ListNotifications(ctx context.Context) ([]Notification, error) {
	var payload listPayload
	if err := c.do(ctx, http.MethodGet, "/notifications", &payload); err != nil {
		return nil, err
	}
	return payload.Notifications, nil
}

func (c *Client) MarkRead(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodPost, "/notifications/"+id+"/read", nil)
}

func (c *Client) MarkAllRead(ctx context.Context) error {
	return c.do(ctx, http.MethodPut, "/notifications/read-all", nil)
}

func (c *Client) ExecuteAction(ctx context.Context, id, actionID string) (string, error) {
	var payload actionPayload
	path := "/notifications/" + id + "/actions/" + actionID
	if err := c.do(ctx, http.MethodPost, path, &payload); err != nil {
		return "", err
	}
	return payload.Result, nil
}

func (c *Client) do(ctx context.Context, method, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}

	if !env.Success {
		apiErr := env.Error
		if apiErr == nil {
			apiErr = &APIError{Code: "UNKNOWN", Message: "request failed"}
		}
		apiErr.Status = resp.StatusCode
		return apiErr
	}

	if out != nil {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("decode data: %w", err)
		}
	}
	return nil
}
