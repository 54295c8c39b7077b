package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/werlleyg/boilerplate-api/internal/logger"
	"github.com/werlleyg/boilerplate-api/models"
)

const (
	defaultTimeout       = 15 * time.Second
	defaultRetryWaitTime = 200 * time.Millisecond
)

// HTTPClientConfig configures [NewHTTPAccountsClient].
type HTTPClientConfig struct {
	// BaseURL is the server root, e.g. "http://localhost:8080".
	BaseURL string
	Timeout time.Duration
	// RetryCount is the number of extra attempts for GET requests that fail
	// with a transport error or a 502, 503 or 504 response.
	RetryCount int
}

type httpAccountsClient struct {
	client *resty.Client
	logger *logger.Logger

	mu    sync.RWMutex
	token string
}

func NewHTTPAccountsClient(cfg HTTPClientConfig, log *logger.Logger) (AccountsClient, error) {
	if strings.TrimSpace(cfg.BaseURL) == "" {
		return nil, errEmptyBaseURL
	}
	if _, err := url.ParseRequestURI(cfg.BaseURL); err != nil {
		return nil, fmt.Errorf("invalid base URL %q: %w", cfg.BaseURL, err)
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}

	h := &httpAccountsClient{logger: log}
	h.client = resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout).
		SetHeader("Accept", "application/json").
		SetRetryCount(cfg.RetryCount).
		SetRetryWaitTime(defaultRetryWaitTime).
		AddRetryCondition(retryIdempotent).
		OnAfterResponse(h.logResponse)

	return h, nil
}

func (h *httpAccountsClient) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpAccountsClient) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpAccountsClient) Login(ctx context.Context, req models.AuthenticateRequest) (models.SessionResponse, error) {
	var session models.SessionResponse
	if err := h.do(h.request(ctx).SetBody(req), http.MethodPost, "/session", &session); err != nil {
		return models.SessionResponse{}, fmt.Errorf("login: %w", err)
	}

	h.SetToken(session.Token)
	return session, nil
}

func (h *httpAccountsClient) CreateUser(ctx context.Context, req models.CreateUserRequest) (models.UserResponse, error) {
	var user models.UserResponse
	if err := h.do(h.request(ctx).SetBody(req), http.MethodPost, "/users/create", &user); err != nil {
		return models.UserResponse{}, fmt.Errorf("create user: %w", err)
	}

	return user, nil
}

func (h *httpAccountsClient) ListUsers(ctx context.Context) ([]models.UserResponse, error) {
	var users []models.UserResponse
	if err := h.do(h.authedRequest(ctx), http.MethodGet, "/users", &users); err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	return users, nil
}

func (h *httpAccountsClient) GetUser(ctx context.Context, id string) (models.UserResponse, error) {
	var user models.UserResponse
	req := h.authedRequest(ctx).SetPathParam("id", id)
	if err := h.do(req, http.MethodGet, "/users/{id}", &user); err != nil {
		return models.UserResponse{}, fmt.Errorf("get user %s: %w", id, err)
	}

	return user, nil
}

func (h *httpAccountsClient) UpdateUser(ctx context.Context, id string, body models.UpdateUserRequest) (models.UserResponse, error) {
	var user models.UserResponse
	req := h.authedRequest(ctx).SetPathParam("id", id).SetBody(body)
	if err := h.do(req, http.MethodPut, "/users/update/{id}", &user); err != nil {
		return models.UserResponse{}, fmt.Errorf("update user %s: %w", id, err)
	}

	return user, nil
}

func (h *httpAccountsClient) DeleteUser(ctx context.Context, id string) error {
	req := h.authedRequest(ctx).SetPathParam("id", id)
	if err := h.do(req, http.MethodDelete, "/users/delete/{id}", nil); err != nil {
		return fmt.Errorf("delete user %s: %w", id, err)
	}

	return nil
}

func (h *httpAccountsClient) Version(ctx context.Context) (models.AppVersion, error) {
	var version models.AppVersion
	if err := h.do(h.request(ctx), http.MethodGet, "/version", &version); err != nil {
		return models.AppVersion{}, fmt.Errorf("version: %w", err)
	}

	return version, nil
}

func (h *httpAccountsClient) Ready(ctx context.Context) error {
	if err := h.do(h.request(ctx), http.MethodGet, "/readyz", nil); err != nil {
		return fmt.Errorf("readiness: %w", err)
	}

	return nil
}

// do sends req and decodes a successful body into out when out is not nil.
func (h *httpAccountsClient) do(req *resty.Request, method, path string, out any) error {
	resp, err := req.Execute(method, path)
	if err != nil {
		return fmt.Errorf("%s %s request: %w", method, path, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	if out == nil || len(resp.Body()) == 0 {
		return nil
	}
	if err = json.Unmarshal(resp.Body(), out); err != nil {
		return fmt.Errorf("decode %s %s response: %w", method, path, err)
	}

	return nil
}

func (h *httpAccountsClient) request(ctx context.Context) *resty.Request {
	return h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json")
}

func (h *httpAccountsClient) authedRequest(ctx context.Context) *resty.Request {
	req := h.request(ctx)
	if token := h.Token(); token != "" {
		req.SetAuthToken(token)
	}
	return req
}

func (h *httpAccountsClient) logResponse(_ *resty.Client, resp *resty.Response) error {
	h.logger.Debug().
		Str("method", resp.Request.Method).
		Str("url", resp.Request.URL).
		Int("status", resp.StatusCode()).
		Dur("elapsed", resp.Time()).
		Msg("accounts API call")

	return nil
}

func retryIdempotent(resp *resty.Response, err error) bool {
	if resp == nil || resp.Request == nil || resp.Request.Method != http.MethodGet {
		return false
	}
	if err != nil {
		return true
	}

	switch resp.StatusCode() {
	case http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		return true
	default:
		return false
	}
}
