package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/thibautlfr-studylab/mdd-cli/internal/client/models"
	"github.com/thibautlfr-studylab/mdd-cli/internal/logging"
)

// HTTPClient is the concrete Client speaking JSON over HTTP.
type HTTPClient struct {
	baseURL        string
	http           *http.Client
	log            logging.Logger
	onUnauthorized func()
}

func NewHTTPClient(baseURL string, timeout time.Duration, tokens TokenProvider, log logging.Logger) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http: &http.Client{
			Timeout:   timeout,
			Transport: newTransport(nil, tokens),
		},
		log: log.With("component", "api"),
	}
}

// SetUnauthorizedHook registers the callback invoked whenever the server
// answers 401. The hook runs before the error is returned; the error is
// returned regardless.
func (c *HTTPClient) SetUnauthorizedHook(fn func()) {
	c.onUnauthorized = fn
}

func (c *HTTPClient) Register(ctx context.Context, req models.RegisterRequest) (*models.AuthResponse, error) {
	out := &models.AuthResponse{}
	if err := c.do(ctx, http.MethodPost, "/api/auth/register", req, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) Login(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error) {
	out := &models.AuthResponse{}
	if err := c.do(ctx, http.MethodPost, "/api/auth/login", req, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) Topics(ctx context.Context) ([]models.Topic, error) {
	var out []models.Topic
	if err := c.do(ctx, http.MethodGet, "/api/topics", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) UserSubscriptions(ctx context.Context, userID int64) ([]models.Subscription, error) {
	var out []models.Subscription
	path := fmt.Sprintf("/api/subscriptions/user/%d", userID)
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) SubscribedTopicIDs(ctx context.Context, userID int64) ([]int64, error) {
	var out []int64
	path := fmt.Sprintf("/api/subscriptions/user/%d/topic-ids", userID)
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) Subscribe(ctx context.Context, req models.SubscribeRequest) (*models.Subscription, error) {
	out := &models.Subscription{}
	if err := c.do(ctx, http.MethodPost, "/api/subscriptions", req, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) Unsubscribe(ctx context.Context, userID, topicID int64) (*models.MessageResponse, error) {
	out := &models.MessageResponse{}
	path := fmt.Sprintf("/api/subscriptions/user/%d/topic/%d", userID, topicID)
	if err := c.do(ctx, http.MethodDelete, path, nil, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) Feed(ctx context.Context, userID int64, ascending bool) ([]models.Post, error) {
	var out []models.Post
	path := fmt.Sprintf("/api/posts/feed/%d?ascending=%t", userID, ascending)
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) Post(ctx context.Context, id int64) (*models.Post, error) {
	out := &models.Post{}
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/posts/%d", id), nil, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) CreatePost(ctx context.Context, userID int64, req models.CreatePostRequest) (*models.Post, error) {
	out := &models.Post{}
	path := fmt.Sprintf("/api/posts/user/%d", userID)
	if err := c.do(ctx, http.MethodPost, path, req, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) CommentsForPost(ctx context.Context, postID int64) ([]models.Comment, error) {
	var out []models.Comment
	path := fmt.Sprintf("/api/comments/post/%d", postID)
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) AddComment(ctx context.Context, postID, userID int64, req models.CreateCommentRequest) (*models.Comment, error) {
	out := &models.Comment{}
	path := fmt.Sprintf("/api/comments/post/%d/user/%d", postID, userID)
	if err := c.do(ctx, http.MethodPost, path, req, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) UpdateProfile(ctx context.Context, id int64, req models.UpdateProfileRequest) (*models.User, error) {
	out := &models.User{}
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/api/users/%d", id), req, out); err != nil {
		return nil, err
	}
	return out, nil
}

// do performs one round trip: encode the body (if any), send, and either
// decode the success payload into out or map the failure.
func (c *HTTPClient) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= http.StatusBadRequest {
		return c.mapError(ctx, method, path, resp)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("failed to decode response body: %w", err)
		}
	}
	return nil
}

// mapError turns a non-2xx response into an *APIError carrying the server's
// message when one is present. A 401 additionally fires the unauthorized
// hook; the error is still returned so the calling form sees it.
func (c *HTTPClient) mapError(ctx context.Context, method, path string, resp *http.Response) error {
	apiErr := &APIError{Status: resp.StatusCode, Message: errorMessage(resp.Body)}

	if resp.StatusCode == http.StatusUnauthorized {
		c.log.Warn(ctx, "server rejected credentials", "method", method, "path", path)
		if c.onUnauthorized != nil {
			c.onUnauthorized()
		}
	}
	return apiErr
}

// errorMessage extracts a user-facing message from an error body. The
// server uses {"message": ...}; {"error": ...} is tolerated. Anything else
// falls back to a generic message.
func errorMessage(body io.Reader) string {
	raw, err := io.ReadAll(io.LimitReader(body, 64<<10))
	if err != nil {
		return genericErrorMessage
	}

	var parsed struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return genericErrorMessage
	}
	if parsed.Message != "" {
		return parsed.Message
	}
	if parsed.Error != "" {
		return parsed.Error
	}
	return genericErrorMessage
}
