// Package testingutils provides test doubles for the MCP transport layer.
package testingutils

import (
	"context"
	"sync"

	"github.com/hermes-rf/cstmcp/mcp/transport"
)

// MockTransport records every message the server sends so tests can assert
// on notifications and responses without a real connection.
type MockTransport struct {
	mu             sync.Mutex
	started        bool
	closed         bool
	messages       []transport.BaseJsonRpcMessage
	messageHandler func(ctx context.Context, message *transport.BaseJsonRpcMessage)
	errorHandler   func(error)
	closeHandler   func()
}

func NewMockTransport() *MockTransport {
	return &MockTransport{}
}

// Start implements Transport.Start
func (t *MockTransport) Start(ctx context.Context) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.started = true
	return nil
}

// Send implements Transport.Send
func (t *MockTransport) Send(ctx context.Context, message *transport.BaseJsonRpcMessage) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.messages = append(t.messages, *message)
	return nil
}

// Close implements Transport.Close
func (t *MockTransport) Close() error {
	t.mu.Lock()
	closeHandler := t.closeHandler
	t.closed = true
	t.mu.Unlock()

	if closeHandler != nil {
		closeHandler()
	}
	return nil
}

// SetCloseHandler implements Transport.SetCloseHandler
func (t *MockTransport) SetCloseHandler(handler func()) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.closeHandler = handler
}

// SetErrorHandler implements Transport.SetErrorHandler
func (t *MockTransport) SetErrorHandler(handler func(error)) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.errorHandler = handler
}

// SetMessageHandler implements Transport.SetMessageHandler
func (t *MockTransport) SetMessageHandler(handler func(ctx context.Context, message *transport.BaseJsonRpcMessage)) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.messageHandler = handler
}

// GetMessages returns a copy of every message sent so far.
func (t *MockTransport) GetMessages() []transport.BaseJsonRpcMessage {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]transport.BaseJsonRpcMessage, len(t.messages))
	copy(out, t.messages)
	return out
}

// Started reports whether Start was called.
func (t *MockTransport) Started() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.started
}

// ReceiveMessage injects a message as if it arrived from the remote side.
func (t *MockTransport) ReceiveMessage(ctx context.Context, message *transport.BaseJsonRpcMessage) {
	t.mu.Lock()
	handler := t.messageHandler
	t.mu.Unlock()
	if handler != nil {
		handler(ctx, message)
	}
}

var _ transport.Transport = (*MockTransport)(nil)
