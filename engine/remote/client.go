// Package remote implements the engine interfaces on top of the CST
// automation bridge: a sidecar process that owns the COM link to the
// studio and accepts JSON calls over HTTP. Every engine method maps to
// one bridge call named after the studio automation object model.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/cockroachdb/errors"
	"github.com/effective-security/xlog"
	"github.com/google/uuid"

	"github.com/hermes-rf/cstmcp/engine"
)

var logger = xlog.NewPackageLogger("github.com/hermes-rf/cstmcp", "remote")

const defaultCallPath = "/v1/call"

// Client is an HTTP client for the automation bridge. A single client is
// safe for concurrent use; serialization of conflicting automation calls
// is the bridge's responsibility.
type Client struct {
	baseURL    string
	callPath   string
	authToken  string
	httpClient *http.Client
}

// NewClient creates a bridge client for the given base URL.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    baseURL,
		callPath:   defaultCallPath,
		httpClient: http.DefaultClient,
	}
}

// WithHTTPClient overrides the HTTP client.
func (c *Client) WithHTTPClient(hc *http.Client) *Client {
	c.httpClient = hc
	return c
}

// WithAuthToken sets a bearer token sent with every bridge call.
func (c *Client) WithAuthToken(token string) *Client {
	c.authToken = token
	return c
}

// Project returns an engine handle whose facets forward to this bridge.
func (c *Client) Project() *engine.Project {
	return &engine.Project{
		Build:   &buildService{c},
		Solver:  &solverService{c},
		Results: &resultsService{c},
		Params:  &parameterService{c},
		File:    &projectService{c},
	}
}

// OpenFile asks the bridge to open a .cst project file. The bridge keeps
// one active project per connection; opening a second file closes the
// first.
func (c *Client) OpenFile(ctx context.Context, path string) error {
	return c.call(ctx, "Project.openFile", map[string]any{"path": path}, nil)
}

type bridgeRequest struct {
	ID     string `json:"id"`
	Method string `json:"method"`
	Params any    `json:"params,omitempty"`
}

type bridgeError struct {
	Code    int    `json:"code,omitempty"`
	Message string `json:"message"`
}

type bridgeResponse struct {
	ID     string          `json:"id"`
	Result json.RawMessage `json:"result,omitempty"`
	Error  *bridgeError    `json:"error,omitempty"`
}

// call performs one bridge round trip. A non-nil out receives the decoded
// result. Failures of any kind are reported as engine failures carrying
// the bridge's diagnostic text.
func (c *Client) call(ctx context.Context, method string, params, out any) error {
	body, err := json.Marshal(bridgeRequest{
		ID:     uuid.NewString(),
		Method: method,
		Params: params,
	})
	if err != nil {
		return errors.Wrapf(err, "failed to marshal %s params", method)
	}

	logger.ContextKV(ctx, xlog.DEBUG, "method", method)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+c.callPath, bytes.NewReader(body))
	if err != nil {
		return errors.Wrap(err, "failed to create bridge request")
	}
	req.Header.Set("Content-Type", "application/json")
	if c.authToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.authToken)
	}

	httpResp, err := c.httpClient.Do(req)
	if err != nil {
		return engine.WrapEngineFailure(err, "bridge call "+method+" failed")
	}
	defer func() { _ = httpResp.Body.Close() }()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return engine.WrapEngineFailure(err, "failed to read bridge response")
	}
	if httpResp.StatusCode != http.StatusOK {
		return engine.WrapEngineFailure(
			errors.Newf("bridge returned status %d: %s", httpResp.StatusCode, string(respBody)),
			method)
	}

	var resp bridgeResponse
	if err := json.Unmarshal(respBody, &resp); err != nil {
		return engine.ParseFailuref("invalid bridge response for %s: %v", method, err)
	}
	if resp.Error != nil {
		return engine.WrapEngineFailure(errors.New(resp.Error.Message), method)
	}
	if out != nil {
		if len(resp.Result) == 0 {
			return engine.IncompleteResultsf("bridge returned no result for %s", method)
		}
		if err := json.Unmarshal(resp.Result, out); err != nil {
			return engine.ParseFailuref("failed to decode %s result: %v", method, err)
		}
	}
	return nil
}
