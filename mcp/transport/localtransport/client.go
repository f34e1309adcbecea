package localtransport

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"

	"github.com/cockroachdb/errors"

	"github.com/hermes-rf/cstmcp/mcp/transport"
)

// McpProxyRequest is a serialized JSON-RPC payload plus transport headers.
type McpProxyRequest struct {
	Body    []byte            `json:"body"`
	Headers map[string]string `json:"headers"`
}

// McpProxyResponse is the reply produced by a Handler.
type McpProxyResponse struct {
	Type    transport.BaseMessageType `json:"type"`
	Status  int                       `json:"status"`
	Body    []byte                    `json:"body"`
	Headers map[string]string         `json:"headers"`
}

// Handler processes MCP requests on behalf of a client transport, either
// locally or by proxying them to a remote server.
type Handler interface {
	HandleMCP(ctx context.Context, req *McpProxyRequest) (*McpProxyResponse, error)
}

// LocalMcpClientTransport is the client side of the in-process transport.
type LocalMcpClientTransport struct {
	messageHandler func(ctx context.Context, message *transport.BaseJsonRpcMessage)
	errorHandler   func(error)
	closeHandler   func()
	mu             sync.RWMutex
	handler        Handler
	headers        map[string]string
}

// NewLocalClientTransport creates a client transport backed by the given
// handler.
func NewLocalClientTransport(handler Handler) *LocalMcpClientTransport {
	return &LocalMcpClientTransport{
		handler: handler,
		headers: make(map[string]string),
	}
}

// WithHeader adds a header sent with every request.
func (t *LocalMcpClientTransport) WithHeader(key, value string) *LocalMcpClientTransport {
	t.headers[key] = value
	return t
}

// Start implements Transport.Start. The client transport is stateless.
func (t *LocalMcpClientTransport) Start(ctx context.Context) error {
	return nil
}

// Send implements Transport.Send
func (t *LocalMcpClientTransport) Send(ctx context.Context, message *transport.BaseJsonRpcMessage) error {
	jsonData, err := json.Marshal(message)
	if err != nil {
		return errors.Wrap(err, "failed to marshal message")
	}

	resp, err := t.handler.HandleMCP(ctx, &McpProxyRequest{
		Body:    jsonData,
		Headers: t.headers,
	})
	if err != nil {
		return err
	}

	if resp.Status != http.StatusOK {
		return errors.Errorf("server returned error: %d", resp.Status)
	}

	if len(resp.Body) == 0 {
		return nil
	}

	var reply transport.BaseJsonRpcMessage
	if err := json.Unmarshal(resp.Body, &reply); err != nil {
		return errors.Errorf("received invalid response")
	}

	t.mu.RLock()
	handler := t.messageHandler
	t.mu.RUnlock()

	if handler != nil {
		handler(ctx, &reply)
	}
	return nil
}

// Close implements Transport.Close
func (t *LocalMcpClientTransport) Close() error {
	if t.closeHandler != nil {
		t.closeHandler()
	}
	return nil
}

// SetCloseHandler implements Transport.SetCloseHandler
func (t *LocalMcpClientTransport) SetCloseHandler(handler func()) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.closeHandler = handler
}

// SetErrorHandler implements Transport.SetErrorHandler
func (t *LocalMcpClientTransport) SetErrorHandler(handler func(error)) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.errorHandler = handler
}

// SetMessageHandler implements Transport.SetMessageHandler
func (t *LocalMcpClientTransport) SetMessageHandler(handler func(ctx context.Context, message *transport.BaseJsonRpcMessage)) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.messageHandler = handler
}

var _ transport.Transport = (*LocalMcpClientTransport)(nil)
