package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/renato0307/muxdeck/internal/domain"
	"github.com/renato0307/muxdeck/internal/logging"
	"github.com/renato0307/muxdeck/internal/ports"
)

const defaultUnaryTimeout = 10 * time.Second

// Client talks to the session manager HTTP API
type Client struct {
	baseURL      *url.URL
	client       *http.Client
	cookie       string
	unaryTimeout time.Duration
}

// Verify interface compliance at compile time
var _ ports.Backend = (*Client)(nil)

// Option configures a Client
type Option func(*Client)

// WithCookie sends cookie verbatim on every request
func WithCookie(cookie string) Option {
	return func(c *Client) {
		c.cookie = strings.TrimSpace(cookie)
	}
}

// WithUnaryTimeout bounds each request that has no earlier deadline
func WithUnaryTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.unaryTimeout = timeout
	}
}

// New creates a Client for the backend at baseURL
func New(baseURL string, opts ...Option) (*Client, error) {
	return NewWithClient(baseURL, &http.Client{}, opts...)
}

// NewWithClient creates a Client using the given http.Client
func NewWithClient(baseURL string, client *http.Client, opts ...Option) (*Client, error) {
	u, err := url.Parse(strings.TrimRight(strings.TrimSpace(baseURL), "/"))
	if err != nil {
		return nil, fmt.Errorf("invalid backend URL %q: %w", baseURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("invalid backend URL %q: scheme must be http or https", baseURL)
	}
	if client == nil {
		client = &http.Client{}
	}
	c := &Client{
		baseURL:      u,
		client:       client,
		unaryTimeout: defaultUnaryTimeout,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Origin returns the backend base URL
func (c *Client) Origin() *url.URL {
	u := *c.baseURL
	return &u
}

// Cookie returns the session cookie sent with requests
func (c *Client) Cookie() string {
	return c.cookie
}

// RequestError is a failed backend call. Message is the backend's
// {"error": ...} text when present.
type RequestError struct {
	Message    string
	StatusCode int
}

func (e *RequestError) Error() string {
	if e == nil {
		return ""
	}
	message := strings.TrimSpace(e.Message)
	switch {
	case message != "":
		return message
	case e.StatusCode > 0:
		return fmt.Sprintf("http %d", e.StatusCode)
	default:
		return "backend error"
	}
}

// Is makes errors.Is(err, domain.ErrBackend) match
func (e *RequestError) Is(target error) bool {
	return target == domain.ErrBackend
}

// NotFound reports whether the backend answered 404
func (e *RequestError) NotFound() bool {
	return e != nil && e.StatusCode == http.StatusNotFound
}

type errorResponse struct {
	Error string `json:"error"`
}

type sessionsResponse struct {
	errorResponse
	Sessions []domain.Session `json:"sessions"`
}

type hostsResponse struct {
	errorResponse
	Hosts []domain.Host `json:"hosts"`
}

type hostResponse struct {
	errorResponse
	Host *domain.Host `json:"host"`
}

type createResponse struct {
	errorResponse
	HostID      string `json:"host_id"`
	SessionName string `json:"session_name"`
}

// ListSessions implements SessionReader.ListSessions
func (c *Client) ListSessions(ctx context.Context) ([]domain.Session, error) {
	var resp sessionsResponse
	if err := c.do(ctx, http.MethodGet, "/api/sessions", nil, &resp); err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}
	if resp.Sessions == nil {
		resp.Sessions = []domain.Session{}
	}
	return resp.Sessions, nil
}

// CreateSession implements SessionWriter.CreateSession
func (c *Client) CreateSession(ctx context.Context, hostID, name string) (domain.SessionKey, error) {
	key := domain.NewSessionKey(hostID, name)
	body := map[string]string{"session_name": key.Name, "host_id": key.HostID}

	var resp createResponse
	if err := c.do(ctx, http.MethodPost, "/api/session/create", body, &resp); err != nil {
		return domain.SessionKey{}, fmt.Errorf("failed to create session %s: %w", key, err)
	}
	if resp.SessionName != "" {
		key.Name = resp.SessionName
	}
	if resp.HostID != "" {
		key.HostID = resp.HostID
	}
	return key, nil
}

// RenameSession implements SessionWriter.RenameSession
func (c *Client) RenameSession(ctx context.Context, key domain.SessionKey, newName string) error {
	body := map[string]string{"old_name": key.Name, "new_name": newName, "host_id": key.HostID}
	if err := c.do(ctx, http.MethodPost, "/api/session/rename", body, nil); err != nil {
		return fmt.Errorf("failed to rename session %s: %w", key, err)
	}
	return nil
}

// DeleteSession implements SessionWriter.DeleteSession
func (c *Client) DeleteSession(ctx context.Context, key domain.SessionKey) error {
	body := map[string]string{"session_name": key.Name, "host_id": key.HostID}
	if err := c.do(ctx, http.MethodPost, "/api/session/delete", body, nil); err != nil {
		return fmt.Errorf("failed to delete session %s: %w", key, err)
	}
	return nil
}

// ListHosts implements HostReader.ListHosts
func (c *Client) ListHosts(ctx context.Context) ([]domain.Host, error) {
	var resp hostsResponse
	if err := c.do(ctx, http.MethodGet, "/api/hosts", nil, &resp); err != nil {
		return nil, fmt.Errorf("failed to list hosts: %w", err)
	}
	for i := range resp.Hosts {
		if resp.Hosts[i].Color == "" {
			resp.Hosts[i].Color = domain.HostColor(resp.Hosts[i].ID)
		}
	}
	return resp.Hosts, nil
}

// AddHost implements HostWriter.AddHost
func (c *Client) AddHost(ctx context.Context, in domain.HostInput) (domain.Host, error) {
	in = in.Normalize()
	var resp hostResponse
	if err := c.do(ctx, http.MethodPost, "/api/hosts", in, &resp); err != nil {
		return domain.Host{}, fmt.Errorf("failed to add host %s: %w", in.Hostname, err)
	}
	if resp.Host == nil {
		return domain.Host{
			Enabled:  in.Enabled,
			Hostname: in.Hostname,
			Name:     in.Name,
			Port:     in.Port,
			Username: in.Username,
		}, nil
	}
	host := *resp.Host
	host.Color = domain.HostColor(host.ID)
	return host, nil
}

// UpdateHost implements HostWriter.UpdateHost
func (c *Client) UpdateHost(ctx context.Context, id string, in domain.HostInput) error {
	in = in.Normalize()
	err := c.do(ctx, http.MethodPut, "/api/hosts/"+url.PathEscape(id), in, nil)
	if err != nil {
		var reqErr *RequestError
		if errors.As(err, &reqErr) && reqErr.NotFound() {
			return fmt.Errorf("failed to update host %s: %w", id, domain.ErrHostNotFound)
		}
		return fmt.Errorf("failed to update host %s: %w", id, err)
	}
	return nil
}

// DeleteHost implements HostWriter.DeleteHost
func (c *Client) DeleteHost(ctx context.Context, id string) error {
	if err := c.do(ctx, http.MethodDelete, "/api/hosts/"+url.PathEscape(id), nil, nil); err != nil {
		return fmt.Errorf("failed to delete host %s: %w", id, err)
	}
	return nil
}

// do sends one JSON request and decodes the reply into out.
// A body carrying {"error": ...} is a failure even with a 2xx status.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	reqCtx := ctx
	if c.unaryTimeout > 0 {
		if deadline, ok := ctx.Deadline(); !ok || time.Until(deadline) > c.unaryTimeout {
			var cancel context.CancelFunc
			reqCtx, cancel = context.WithTimeout(ctx, c.unaryTimeout)
			defer cancel()
		}
	}

	var reqBody io.Reader
	if body != nil {
		buf := &bytes.Buffer{}
		if err := json.NewEncoder(buf).Encode(body); err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reqBody = buf
	}

	req, err := http.NewRequestWithContext(reqCtx, method, c.baseURL.String()+path, reqBody)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.cookie != "" {
		req.Header.Set("Cookie", c.cookie)
	}

	start := time.Now()
	resp, err := c.client.Do(req)
	if err != nil {
		logging.Logger.Error("Backend request failed", "method", method, "path", path, "error", err)
		return err
	}
	defer resp.Body.Close() //nolint:errcheck

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	logging.Logger.Debug("Backend request",
		"method", method,
		"path", path,
		"status", resp.StatusCode,
		"duration", time.Since(start))

	var er errorResponse
	_ = json.Unmarshal(payload, &er)
	if resp.StatusCode >= 400 || er.Error != "" {
		message := er.Error
		if message == "" {
			message = strings.TrimSpace(string(payload))
		}
		return &RequestError{StatusCode: resp.StatusCode, Message: message}
	}

	if out == nil || len(bytes.TrimSpace(payload)) == 0 {
		return nil
	}
	if err := json.Unmarshal(payload, out); err != nil {
		return fmt.Errorf("decode %s %s response: %w", method, path, err)
	}
	return nil
}
