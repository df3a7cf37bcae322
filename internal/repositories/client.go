// Package repositories implements the remote store over the backend's
// REST API. It is the only layer that talks to the network; it holds no
// item state and maps every failure into the domain error taxonomy.
package repositories

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/yashwalhekar/adminpanelfrontend/internal/domain"
	"github.com/yashwalhekar/adminpanelfrontend/internal/session"
)

const defaultTimeout = 15 * time.Second

// Client issues authenticated requests against the admin backend.
type Client struct {
	baseURL string
	http    *http.Client
	session *session.Session
	logger  *zap.Logger
}

// NewClient creates a client for the given base URL, e.g.
// "http://localhost:5000/api". Every request carries the session's
// bearer token when one is present.
func NewClient(baseURL string, timeout time.Duration, sess *session.Session, logger *zap.Logger) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		session: sess,
		logger:  logger,
	}
}

// LoginResult is the payload of a successful login.
type LoginResult struct {
	Token string      `json:"token"`
	User  domain.User `json:"user"`
}

// Login authenticates the operator and stores the issued token in the
// session on success.
func (c *Client) Login(ctx context.Context, email, password string) (LoginResult, error) {
	body, err := json.Marshal(map[string]string{"email": email, "password": password})
	if err != nil {
		return LoginResult{}, err
	}

	data, err := c.do(ctx, http.MethodPost, "/auth/login", bytes.NewReader(body), "application/json")
	if err != nil {
		return LoginResult{}, err
	}

	var result LoginResult
	if err := json.Unmarshal(data, &result); err != nil {
		return LoginResult{}, &domain.TransportError{Op: "login", Err: err}
	}
	if result.Token == "" {
		return LoginResult{}, &domain.TransportError{Op: "login", Err: fmt.Errorf("no token in response")}
	}

	if err := c.session.SetToken(result.Token); err != nil {
		c.logger.Warn("token issued but not persisted", zap.Error(err))
	}
	return result, nil
}

// do performs one request and maps the response into the error taxonomy:
// network failures and 5xx become TransportError, 401 clears the session
// and becomes ErrAuthExpired, 404 becomes ErrNotFound, and any other 4xx
// becomes ValidationError carrying the backend's message.
func (c *Client) do(ctx context.Context, method, path string, body io.Reader, contentType string) ([]byte, error) {
	op := method + " " + path

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, &domain.TransportError{Op: op, Err: err}
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if token := c.session.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Error("request failed",
			zap.String("op", op),
			zap.Error(err),
		)
		return nil, &domain.TransportError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &domain.TransportError{Op: op, Err: err}
	}

	c.logger.Debug("request completed",
		zap.String("op", op),
		zap.Int("status", resp.StatusCode),
		zap.Duration("duration", time.Since(start)),
	)

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return data, nil
	case resp.StatusCode == http.StatusUnauthorized:
		c.session.Clear()
		return nil, domain.ErrAuthExpired
	case resp.StatusCode == http.StatusNotFound:
		return nil, domain.ErrNotFound
	case resp.StatusCode >= 400 && resp.StatusCode < 500:
		return nil, &domain.ValidationError{
			Status:  resp.StatusCode,
			Message: errorMessage(data),
		}
	default:
		return nil, &domain.TransportError{
			Op:  op,
			Err: fmt.Errorf("unexpected status %d", resp.StatusCode),
		}
	}
}

// errorMessage pulls a human-readable message out of the backend's error
// envelope. The backend is not consistent about the key, so both common
// ones are checked.
func errorMessage(data []byte) string {
	var envelope struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(data, &envelope); err != nil {
		return ""
	}
	if envelope.Message != "" {
		return envelope.Message
	}
	return envelope.Error
}
