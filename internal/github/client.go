// Package github is a minimal client for the repository secrets endpoints
// of the GitHub REST API.
package github

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	kerrors "github.com/PolarWolf314/ghsecrets/internal/errors"
)

const (
	// DefaultBaseURL is the public GitHub REST API.
	DefaultBaseURL = "https://api.github.com"

	// APIVersion is sent as X-GitHub-Api-Version.
	APIVersion = "2022-11-28"

	// DefaultTimeout bounds each request made by a client built without WithTimeout.
	DefaultTimeout = 30 * time.Second

	userAgent = "ghsecrets"

	// maxErrorBody caps how much of an error response is kept for diagnostics.
	maxErrorBody = 64 * 1024
)

// App selects which GitHub secret store a client writes to.
type App string

const (
	AppActions    App = "actions"
	AppDependabot App = "dependabot"
	AppCodespaces App = "codespaces"
)

// ParseApp validates a secret store name. An empty name means actions.
func ParseApp(name string) (App, error) {
	switch App(strings.ToLower(strings.TrimSpace(name))) {
	case "", AppActions:
		return AppActions, nil
	case AppDependabot:
		return AppDependabot, nil
	case AppCodespaces:
		return AppCodespaces, nil
	default:
		return "", fmt.Errorf("%w: %q (expected actions, dependabot or codespaces)", kerrors.ErrInvalidApp, name)
	}
}

// PublicKey is a repository's sealed-box public key.
type PublicKey struct {
	KeyID string `json:"key_id"`
	Key   string `json:"key"`
}

// EncryptedSecret is the body of a secret PUT request.
type EncryptedSecret struct {
	EncryptedValue string `json:"encrypted_value"`
	KeyID          string `json:"key_id"`
}

// APIError is returned for any response with an unexpected status code.
type APIError struct {
	Method     string
	URL        string
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s %s: %d %s", e.Method, e.URL, e.StatusCode, e.Body)
}

// Client is a minimal GitHub API client bound to one repository and secret store.
type Client struct {
	hc      *http.Client
	baseURL string
	token   string
	owner   string
	repo    string
	app     App
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL points the client at a GitHub Enterprise or test server.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		if baseURL != "" {
			c.baseURL = strings.TrimRight(baseURL, "/")
		}
	}
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.hc = hc
		}
	}
}

// WithTimeout sets the per-request timeout. Zero disables it.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.hc.Timeout = timeout
	}
}

// WithApp selects the secret store.
func WithApp(app App) Option {
	return func(c *Client) {
		if app != "" {
			c.app = app
		}
	}
}

// NewClient creates a client for repository ("owner/name") authenticated with token.
func NewClient(repository, token string, opts ...Option) (*Client, error) {
	owner, repo, ok := strings.Cut(repository, "/")
	if !ok || owner == "" || repo == "" || strings.Contains(repo, "/") {
		return nil, fmt.Errorf("%w: %q", kerrors.ErrInvalidRepo, repository)
	}

	c := &Client{
		hc:      &http.Client{Timeout: DefaultTimeout},
		baseURL: DefaultBaseURL,
		token:   token,
		owner:   owner,
		repo:    repo,
		app:     AppActions,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Repository returns the "owner/name" the client is bound to.
func (c *Client) Repository() string {
	return c.owner + "/" + c.repo
}

// App returns the secret store the client writes to.
func (c *Client) App() App {
	return c.app
}

func (c *Client) secretsURL(elem ...string) string {
	parts := []string{c.baseURL, "repos", url.PathEscape(c.owner), url.PathEscape(c.repo), string(c.app), "secrets"}
	for _, e := range elem {
		parts = append(parts, url.PathEscape(e))
	}
	return strings.Join(parts, "/")
}

func (c *Client) newRequest(ctx context.Context, method, target string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return nil, err
	}

	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Accept", "application/vnd.github+json")
	req.Header.Set("X-GitHub-Api-Version", APIVersion)
	req.Header.Set("User-Agent", userAgent)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return req, nil
}

// PublicKey fetches the current public key of the repository's secret store.
func (c *Client) PublicKey(ctx context.Context) (*PublicKey, error) {
	target := c.secretsURL("public-key")
	req, err := c.newRequest(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", kerrors.ErrPublicKeyFetch, err)
	}

	resp, err := c.hc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", kerrors.ErrPublicKeyFetch, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: %w", kerrors.ErrPublicKeyFetch, newAPIError(req, resp))
	}

	var key PublicKey
	if err := json.NewDecoder(resp.Body).Decode(&key); err != nil {
		return nil, fmt.Errorf("%w: decoding response: %v", kerrors.ErrMalformedPublicKey, err)
	}
	if key.KeyID == "" || key.Key == "" {
		return nil, kerrors.ErrMalformedPublicKey
	}

	return &key, nil
}

// PutSecret creates or updates the named secret. Only 201 (created) and
// 204 (updated) count as success; anything else returns an *APIError
// wrapped in ErrUploadFailed.
func (c *Client) PutSecret(ctx context.Context, name string, secret EncryptedSecret) error {
	payload, err := json.Marshal(secret)
	if err != nil {
		return fmt.Errorf("%w: encoding body: %v", kerrors.ErrUploadFailed, err)
	}

	req, err := c.newRequest(ctx, http.MethodPut, c.secretsURL(name), bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("%w: %v", kerrors.ErrUploadFailed, err)
	}

	resp, err := c.hc.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", kerrors.ErrUploadFailed, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusCreated, http.StatusNoContent:
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	default:
		return fmt.Errorf("%w: %w", kerrors.ErrUploadFailed, newAPIError(req, resp))
	}
}

func newAPIError(req *http.Request, resp *http.Response) *APIError {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	return &APIError{
		Method:     req.Method,
		URL:        req.URL.Redacted(),
		StatusCode: resp.StatusCode,
		Body:       strings.TrimSpace(string(body)),
	}
}
