// Package api is the HTTP implementation of the remote-store and auth
// collaborators. It speaks the backend's JSON wire format and maps wire
// failures onto the apperr taxonomy; nothing above this package sees an HTTP
// status code.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"todoterm/internal/apperr"
	"todoterm/internal/model"
	"todoterm/internal/session"
)

// Client implements todo.Store plus the auth endpoints. A bearer token from
// the credential store is attached to every todo request; auth requests go
// out bare.
type Client struct {
	baseURL string
	http    *http.Client
	creds   session.CredentialStore
	log     zerolog.Logger
}

func NewClient(baseURL string, creds session.CredentialStore, log zerolog.Logger) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 15 * time.Second},
		creds:   creds,
		log:     log,
	}
}

// wireError is the backend's JSON failure envelope.
type wireError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (c *Client) request(ctx context.Context, op, method, path string, body any, withToken bool) (*http.Response, error) {
	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshal %s: %w", op, err)
		}
		rd = bytes.NewReader(b)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, rd)
	if err != nil {
		return nil, fmt.Errorf("build %s: %w", op, err)
	}
	req.Header.Set("Content-Type", "application/json")
	if withToken {
		token, err := c.creds.Get(ctx, session.TokenKey)
		if err != nil {
			return nil, fmt.Errorf("read token: %w", err)
		}
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}
	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warn().Err(err).Str("op", op).Msg("request failed")
		return nil, apperr.Transport(op, err)
	}
	return resp, nil
}

// fail drains the response body and turns a non-2xx status into the matching
// taxonomy error.
func (c *Client) fail(op string, resp *http.Response) error {
	defer resp.Body.Close()
	var we wireError
	_ = json.NewDecoder(resp.Body).Decode(&we)

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return apperr.ErrNotFound
	case resp.StatusCode == http.StatusBadRequest,
		resp.StatusCode == http.StatusUnauthorized,
		resp.StatusCode == http.StatusConflict:
		if we.Code != "" {
			return apperr.Auth(we.Code, we.Message)
		}
		return apperr.Transport(op, fmt.Errorf("status %d", resp.StatusCode))
	default:
		c.log.Warn().Int("status", resp.StatusCode).Str("op", op).Msg("unexpected status")
		return apperr.Transport(op, fmt.Errorf("status %d", resp.StatusCode))
	}
}

func decodeInto(resp *http.Response, v any) error {
	defer resp.Body.Close()
	if v == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func (c *Client) List(ctx context.Context) ([]model.Todo, error) {
	resp, err := c.request(ctx, "list todos", http.MethodGet, "/todos", nil, true)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, c.fail("list todos", resp)
	}
	var out []model.Todo
	if err := decodeInto(resp, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) Get(ctx context.Context, id string) (model.Todo, error) {
	resp, err := c.request(ctx, "get todo", http.MethodGet, "/todos/"+id, nil, true)
	if err != nil {
		return model.Todo{}, err
	}
	if resp.StatusCode != http.StatusOK {
		return model.Todo{}, c.fail("get todo", resp)
	}
	var out model.Todo
	if err := decodeInto(resp, &out); err != nil {
		return model.Todo{}, err
	}
	return out, nil
}

func (c *Client) Create(ctx context.Context, t model.Todo) (model.Todo, error) {
	resp, err := c.request(ctx, "create todo", http.MethodPost, "/todos", t, true)
	if err != nil {
		return model.Todo{}, err
	}
	if resp.StatusCode != http.StatusCreated {
		return model.Todo{}, c.fail("create todo", resp)
	}
	var out model.Todo
	if err := decodeInto(resp, &out); err != nil {
		return model.Todo{}, err
	}
	return out, nil
}

func (c *Client) Update(ctx context.Context, id string, t model.Todo) error {
	resp, err := c.request(ctx, "update todo", http.MethodPut, "/todos/"+id, t, true)
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNoContent {
		return c.fail("update todo", resp)
	}
	return decodeInto(resp, nil)
}

func (c *Client) Delete(ctx context.Context, id string) error {
	resp, err := c.request(ctx, "delete todo", http.MethodDelete, "/todos/"+id, nil, true)
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusNoContent {
		return c.fail("delete todo", resp)
	}
	return decodeInto(resp, nil)
}
