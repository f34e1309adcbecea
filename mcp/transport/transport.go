package transport

import (
	"context"
)

// RequestId is a JSON-RPC request identifier.
type RequestId int64

// JsonRpcBody is the payload of a JSON-RPC result.
type JsonRpcBody any

// Transport is the minimal contract a JSON-RPC message pipe must satisfy.
// Implementations include stdio, stateless HTTP and in-process transports.
type Transport interface {
	// Start begins processing messages. Depending on the implementation this
	// may block until the transport is closed.
	Start(ctx context.Context) error

	// Send delivers a message to the remote side.
	Send(ctx context.Context, message *BaseJsonRpcMessage) error

	// Close terminates the connection.
	Close() error

	// SetCloseHandler sets the callback invoked when the connection closes
	// for any reason, including a call to Close.
	SetCloseHandler(handler func())

	// SetErrorHandler sets the callback for out-of-band errors. Errors are
	// not necessarily fatal.
	SetErrorHandler(handler func(error))

	// SetMessageHandler sets the callback for each received message
	// (request, notification, response or error).
	SetMessageHandler(handler func(ctx context.Context, message *BaseJsonRpcMessage))
}
